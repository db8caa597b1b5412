package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter builds the /api/v1 route table.
func NewRouter(
	products *ProductHandler,
	suppliers *SupplierHandler,
	families *FamilyHandler,
	sales *SaleHandler,
	events *EventsHandler,
) http.Handler {
	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	// Static product routes must be registered before the {id} routes.
	api.HandleFunc("/products/bulk-price-update", products.BulkUpdatePrices).Methods(http.MethodPost)
	api.HandleFunc("/products/low-stock", products.ListLowStock).Methods(http.MethodGet)
	api.HandleFunc("/products/barcode/{code}", products.GetByBarcode).Methods(http.MethodGet)
	api.HandleFunc("/products", products.Create).Methods(http.MethodPost)
	api.HandleFunc("/products", products.List).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", products.Get).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", products.Update).Methods(http.MethodPut)
	api.HandleFunc("/products/{id}", products.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/suppliers", suppliers.Create).Methods(http.MethodPost)
	api.HandleFunc("/suppliers", suppliers.List).Methods(http.MethodGet)
	api.HandleFunc("/suppliers/{id}", suppliers.Get).Methods(http.MethodGet)
	api.HandleFunc("/suppliers/{id}", suppliers.Update).Methods(http.MethodPut)
	api.HandleFunc("/suppliers/{id}", suppliers.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/families", families.Create).Methods(http.MethodPost)
	api.HandleFunc("/families", families.List).Methods(http.MethodGet)
	api.HandleFunc("/families/{id}", families.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/sales", sales.Register).Methods(http.MethodPost)
	api.HandleFunc("/sales", sales.List).Methods(http.MethodGet)
	api.HandleFunc("/sales/{id}", sales.Get).Methods(http.MethodGet)

	api.HandleFunc("/events", events.List).Methods(http.MethodGet)

	return LoggingMiddleware(router)
}
