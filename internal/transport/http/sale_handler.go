package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/get_sale"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_sales"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/register_sale"
)

// SaleHandler handles HTTP requests for sales.
type SaleHandler struct {
	registerUseCase *register_sale.Interactor
	getQuery        *get_sale.Query
	listQuery       *list_sales.Query
}

// NewSaleHandler creates a new HTTP sale handler.
func NewSaleHandler(
	registerUseCase *register_sale.Interactor,
	getQuery *get_sale.Query,
	listQuery *list_sales.Query,
) *SaleHandler {
	return &SaleHandler{
		registerUseCase: registerUseCase,
		getQuery:        getQuery,
		listQuery:       listQuery,
	}
}

// SaleLineBody is one cart line in a sale registration request.
type SaleLineBody struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int64   `json:"quantity"`
}

// SaleBody is the JSON shape of a sale registration request.
type SaleBody struct {
	Lines          []SaleLineBody `json:"lines"`
	Total          *float64       `json:"total,omitempty"`
	UserID         string         `json:"user_id"`
	IdempotencyKey string         `json:"idempotency_key,omitempty"`
}

// SaleLineResponse is one line item of a sale in responses.
type SaleLineResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int64   `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// SaleResponse is the JSON shape of a sale in responses.
type SaleResponse struct {
	SaleID string             `json:"sale_id"`
	UserID string             `json:"user_id"`
	Lines  []SaleLineResponse `json:"lines"`
	Total  float64            `json:"total"`
	Status string             `json:"status"`
	Date   time.Time          `json:"date"`
}

// Register handles POST /api/v1/sales.
func (h *SaleHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body SaleBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	lines := make([]register_sale.RequestLine, 0, len(body.Lines))
	for _, line := range body.Lines {
		unitPrice, err := domain.NewMoneyFromFloat(line.UnitPrice)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		lines = append(lines, register_sale.RequestLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: unitPrice,
			Quantity:  line.Quantity,
		})
	}

	req := &register_sale.Request{
		Lines:          lines,
		UserID:         body.UserID,
		IdempotencyKey: body.IdempotencyKey,
	}
	if body.Total != nil {
		total, err := domain.NewMoneyFromFloat(*body.Total)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		req.Total = total
	}

	resp, err := h.registerUseCase.Execute(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"sale_id": resp.SaleID})
}

// Get handles GET /api/v1/sales/{id}.
func (h *SaleHandler) Get(w http.ResponseWriter, r *http.Request) {
	saleID := mux.Vars(r)["id"]

	dto, err := h.getQuery.Execute(r.Context(), &get_sale.Request{SaleID: saleID})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saleToResponse(dto))
}

// List handles GET /api/v1/sales.
func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", raw))
			return
		}
		limit = parsed
	}

	dtos, err := h.listQuery.Execute(r.Context(), &list_sales.Request{Limit: limit})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]*SaleResponse, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, saleToResponse(dto))
	}
	writeJSON(w, http.StatusOK, out)
}

func saleToResponse(dto *contracts.SaleDTO) *SaleResponse {
	lines := make([]SaleLineResponse, 0, len(dto.Lines))
	for _, line := range dto.Lines {
		lines = append(lines, SaleLineResponse{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal,
		})
	}
	return &SaleResponse{
		SaleID: dto.SaleID,
		UserID: dto.UserID,
		Lines:  lines,
		Total:  dto.Total,
		Status: dto.Status,
		Date:   dto.Date,
	}
}
