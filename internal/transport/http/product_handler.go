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
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/find_product_by_barcode"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/get_product"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_low_stock"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_products"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/bulk_update_prices"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/create_product"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/delete_product"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/update_product"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	createUseCase     *create_product.Interactor
	updateUseCase     *update_product.Interactor
	deleteUseCase     *delete_product.Interactor
	bulkUpdateUseCase *bulk_update_prices.Interactor
	getQuery          *get_product.Query
	listQuery         *list_products.Query
	barcodeQuery      *find_product_by_barcode.Query
	lowStockQuery     *list_low_stock.Query
}

// NewProductHandler creates a new HTTP product handler.
func NewProductHandler(
	createUseCase *create_product.Interactor,
	updateUseCase *update_product.Interactor,
	deleteUseCase *delete_product.Interactor,
	bulkUpdateUseCase *bulk_update_prices.Interactor,
	getQuery *get_product.Query,
	listQuery *list_products.Query,
	barcodeQuery *find_product_by_barcode.Query,
	lowStockQuery *list_low_stock.Query,
) *ProductHandler {
	return &ProductHandler{
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		bulkUpdateUseCase: bulkUpdateUseCase,
		getQuery:          getQuery,
		listQuery:         listQuery,
		barcodeQuery:      barcodeQuery,
		lowStockQuery:     lowStockQuery,
	}
}

// ProductBody is the JSON shape of a product create request.
type ProductBody struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	PurchasePrice float64 `json:"purchase_price"`
	SalePrice     float64 `json:"sale_price"`
	Stock         int64   `json:"stock"`
	MinStock      *int64  `json:"min_stock,omitempty"`
	Barcode       *int64  `json:"barcode,omitempty"`
	SupplierID    string  `json:"supplier_id"`
	FamilyID      string  `json:"family_id,omitempty"`
}

// ProductPatchBody is the JSON shape of a product update request.
// Absent fields are left unchanged.
type ProductPatchBody struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	PurchasePrice *float64 `json:"purchase_price,omitempty"`
	SalePrice     *float64 `json:"sale_price,omitempty"`
	Stock         *int64   `json:"stock,omitempty"`
	MinStock      *int64   `json:"min_stock"`
	HasMinStock   bool     `json:"-"`
	Barcode       *int64   `json:"barcode"`
	HasBarcode    bool     `json:"-"`
	SupplierID    *string  `json:"supplier_id,omitempty"`
	FamilyID      *string  `json:"family_id,omitempty"`
}

// ProductResponse is the JSON shape of a product in responses.
type ProductResponse struct {
	ProductID     string    `json:"product_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	PurchasePrice float64   `json:"purchase_price"`
	SalePrice     float64   `json:"sale_price"`
	Stock         int64     `json:"stock"`
	MinStock      *int64    `json:"min_stock,omitempty"`
	Barcode       *int64    `json:"barcode,omitempty"`
	SupplierID    string    `json:"supplier_id"`
	FamilyID      string    `json:"family_id,omitempty"`
	LowStock      bool      `json:"low_stock"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BulkPriceUpdateBody is the JSON shape of a bulk price update request.
type BulkPriceUpdateBody struct {
	ScopeKind string  `json:"scope_kind"` // "supplier" or "family"
	ScopeID   string  `json:"scope_id"`
	Mode      string  `json:"mode"` // "percentage" or "fixed"
	Value     float64 `json:"value"`
	Decrease  bool    `json:"decrease"`
}

// Create handles POST /api/v1/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body ProductBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	purchase, err := domain.NewMoneyFromFloat(body.PurchasePrice)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sale, err := domain.NewMoneyFromFloat(body.SalePrice)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	productID, err := h.createUseCase.Execute(r.Context(), &create_product.Request{
		Name:          body.Name,
		Description:   body.Description,
		PurchasePrice: purchase,
		SalePrice:     sale,
		Stock:         body.Stock,
		MinStock:      body.MinStock,
		Barcode:       body.Barcode,
		SupplierID:    body.SupplierID,
		FamilyID:      body.FamilyID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"product_id": productID})
}

// Update handles PUT /api/v1/products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	// Decode into a raw map first to distinguish absent fields from nulls
	// for the clearable columns.
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	var body ProductPatchBody
	merged, err := json.Marshal(raw)
	if err == nil {
		err = json.Unmarshal(merged, &body)
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	_, body.HasMinStock = raw["min_stock"]
	_, body.HasBarcode = raw["barcode"]

	req := &update_product.Request{
		ProductID:   productID,
		Name:        body.Name,
		Description: body.Description,
		Stock:       body.Stock,
		MinStock:    body.MinStock,
		SetMinStock: body.HasMinStock,
		Barcode:     body.Barcode,
		SetBarcode:  body.HasBarcode,
		SupplierID:  body.SupplierID,
		FamilyID:    body.FamilyID,
	}
	if body.PurchasePrice != nil {
		price, err := domain.NewMoneyFromFloat(*body.PurchasePrice)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		req.PurchasePrice = price
	}
	if body.SalePrice != nil {
		price, err := domain.NewMoneyFromFloat(*body.SalePrice)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		req.SalePrice = price
	}

	if err := h.updateUseCase.Execute(r.Context(), req); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Delete handles DELETE /api/v1/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	if err := h.deleteUseCase.Execute(r.Context(), &delete_product.Request{ProductID: productID}); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Get handles GET /api/v1/products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	dto, err := h.getQuery.Execute(r.Context(), &get_product.Request{ProductID: productID})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productToResponse(dto))
}

// List handles GET /api/v1/products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	limit := 0
	if raw := params.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", raw))
			return
		}
		limit = parsed
	}

	dtos, err := h.listQuery.Execute(r.Context(), &list_products.Request{
		SupplierID: params.Get("supplier_id"),
		FamilyID:   params.Get("family_id"),
		Limit:      limit,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productsToResponse(dtos))
}

// GetByBarcode handles GET /api/v1/products/barcode/{code}.
func (h *ProductHandler) GetByBarcode(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["code"]
	barcode, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid barcode %q", raw))
		return
	}

	dto, err := h.barcodeQuery.Execute(r.Context(), &find_product_by_barcode.Request{Barcode: barcode})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productToResponse(dto))
}

// ListLowStock handles GET /api/v1/products/low-stock.
func (h *ProductHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.lowStockQuery.Execute(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productsToResponse(dtos))
}

// BulkUpdatePrices handles POST /api/v1/products/bulk-price-update.
// The API accepts only positive magnitudes; decreases are requested with
// the decrease flag rather than a negative value.
func (h *ProductHandler) BulkUpdatePrices(w http.ResponseWriter, r *http.Request) {
	var body BulkPriceUpdateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if body.Value <= 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("value must be greater than zero"))
		return
	}
	value := body.Value
	if body.Decrease {
		value = -value
	}

	scope := domain.Scope{Kind: domain.ScopeKind(body.ScopeKind), ID: body.ScopeID}
	if err := scope.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	adjustment := domain.PriceAdjustment{Mode: domain.AdjustmentMode(body.Mode), Value: value}
	if err := adjustment.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	resp, err := h.bulkUpdateUseCase.Execute(r.Context(), &bulk_update_prices.Request{
		Scope:      scope,
		Adjustment: adjustment,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"updated_count": resp.UpdatedCount})
}

func productToResponse(dto *contracts.ProductDTO) *ProductResponse {
	return &ProductResponse{
		ProductID:     dto.ProductID,
		Name:          dto.Name,
		Description:   dto.Description,
		PurchasePrice: dto.PurchasePrice,
		SalePrice:     dto.SalePrice,
		Stock:         dto.Stock,
		MinStock:      dto.MinStock,
		Barcode:       dto.Barcode,
		SupplierID:    dto.SupplierID,
		FamilyID:      dto.FamilyID,
		LowStock:      dto.LowStock,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	}
}

func productsToResponse(dtos []*contracts.ProductDTO) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, productToResponse(dto))
	}
	return out
}
