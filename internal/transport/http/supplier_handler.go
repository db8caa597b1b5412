package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/get_supplier"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_suppliers"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/create_supplier"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/delete_supplier"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/update_supplier"
)

// SupplierHandler handles HTTP requests for suppliers.
type SupplierHandler struct {
	createUseCase *create_supplier.Interactor
	updateUseCase *update_supplier.Interactor
	deleteUseCase *delete_supplier.Interactor
	getQuery      *get_supplier.Query
	listQuery     *list_suppliers.Query
}

// NewSupplierHandler creates a new HTTP supplier handler.
func NewSupplierHandler(
	createUseCase *create_supplier.Interactor,
	updateUseCase *update_supplier.Interactor,
	deleteUseCase *delete_supplier.Interactor,
	getQuery *get_supplier.Query,
	listQuery *list_suppliers.Query,
) *SupplierHandler {
	return &SupplierHandler{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		getQuery:      getQuery,
		listQuery:     listQuery,
	}
}

// SupplierBody is the JSON shape of a supplier create request.
type SupplierBody struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// SupplierPatchBody is the JSON shape of a supplier update request.
type SupplierPatchBody struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// SupplierResponse is the JSON shape of a supplier in responses.
type SupplierResponse struct {
	SupplierID string    `json:"supplier_id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	Address    string    `json:"address,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Create handles POST /api/v1/suppliers.
func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body SupplierBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	supplierID, err := h.createUseCase.Execute(r.Context(), &create_supplier.Request{
		Name:    body.Name,
		Phone:   body.Phone,
		Email:   body.Email,
		Address: body.Address,
		Notes:   body.Notes,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"supplier_id": supplierID})
}

// Update handles PUT /api/v1/suppliers/{id}.
func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	supplierID := mux.Vars(r)["id"]

	var body SupplierPatchBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	err := h.updateUseCase.Execute(r.Context(), &update_supplier.Request{
		SupplierID: supplierID,
		Name:       body.Name,
		Phone:      body.Phone,
		Email:      body.Email,
		Address:    body.Address,
		Notes:      body.Notes,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Delete handles DELETE /api/v1/suppliers/{id}.
func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	supplierID := mux.Vars(r)["id"]

	if err := h.deleteUseCase.Execute(r.Context(), &delete_supplier.Request{SupplierID: supplierID}); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Get handles GET /api/v1/suppliers/{id}.
func (h *SupplierHandler) Get(w http.ResponseWriter, r *http.Request) {
	supplierID := mux.Vars(r)["id"]

	dto, err := h.getQuery.Execute(r.Context(), &get_supplier.Request{SupplierID: supplierID})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, supplierToResponse(dto))
}

// List handles GET /api/v1/suppliers.
func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.listQuery.Execute(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]*SupplierResponse, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, supplierToResponse(dto))
	}
	writeJSON(w, http.StatusOK, out)
}

func supplierToResponse(dto *contracts.SupplierDTO) *SupplierResponse {
	return &SupplierResponse{
		SupplierID: dto.SupplierID,
		Name:       dto.Name,
		Phone:      dto.Phone,
		Email:      dto.Email,
		Address:    dto.Address,
		Notes:      dto.Notes,
		CreatedAt:  dto.CreatedAt,
		UpdatedAt:  dto.UpdatedAt,
	}
}
