package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_families"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/create_family"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/delete_family"
)

// FamilyHandler handles HTTP requests for product families.
type FamilyHandler struct {
	createUseCase *create_family.Interactor
	deleteUseCase *delete_family.Interactor
	listQuery     *list_families.Query
}

// NewFamilyHandler creates a new HTTP family handler.
func NewFamilyHandler(
	createUseCase *create_family.Interactor,
	deleteUseCase *delete_family.Interactor,
	listQuery *list_families.Query,
) *FamilyHandler {
	return &FamilyHandler{
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
		listQuery:     listQuery,
	}
}

// FamilyBody is the JSON shape of a family create request.
type FamilyBody struct {
	Name string `json:"name"`
}

// FamilyResponse is the JSON shape of a family in responses.
type FamilyResponse struct {
	FamilyID  string    `json:"family_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Create handles POST /api/v1/families.
func (h *FamilyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body FamilyBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	familyID, err := h.createUseCase.Execute(r.Context(), &create_family.Request{Name: body.Name})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"family_id": familyID})
}

// Delete handles DELETE /api/v1/families/{id}.
func (h *FamilyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	familyID := mux.Vars(r)["id"]

	resp, err := h.deleteUseCase.Execute(r.Context(), &delete_family.Request{FamilyID: familyID})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"detached_products": resp.DetachedProducts})
}

// List handles GET /api/v1/families.
func (h *FamilyHandler) List(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.listQuery.Execute(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]*FamilyResponse, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, &FamilyResponse{
			FamilyID:  dto.FamilyID,
			Name:      dto.Name,
			CreatedAt: dto.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
