package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

// writeDomainError maps domain errors onto HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrSupplierNotFound),
		errors.Is(err, domain.ErrFamilyNotFound),
		errors.Is(err, domain.ErrSaleNotFound):
		writeError(w, http.StatusNotFound, err)

	case errors.Is(err, domain.ErrSupplierInUse),
		errors.Is(err, domain.ErrFamilyInUse),
		errors.Is(err, domain.ErrBarcodeInUse),
		errors.Is(err, domain.ErrInsufficientStock):
		writeError(w, http.StatusConflict, err)

	case errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrEmptySupplier),
		errors.Is(err, domain.ErrInvalidPurchasePrice),
		errors.Is(err, domain.ErrInvalidSalePrice),
		errors.Is(err, domain.ErrInvalidStock),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidUnitPrice),
		errors.Is(err, domain.ErrEmptySale),
		errors.Is(err, domain.ErrTotalMismatch),
		errors.Is(err, domain.ErrInvalidAdjustment):
		writeError(w, http.StatusBadRequest, err)

	default:
		logrus.WithError(err).Error("request failed")
		writeError(w, http.StatusBadGateway, err)
	}
}
