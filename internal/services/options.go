package services

import (
	"context"
	"net/http"

	"cloud.google.com/go/spanner"
	"github.com/pkg/errors"

	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/find_product_by_barcode"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/get_product"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/get_sale"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/get_supplier"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_events"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_families"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_low_stock"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_products"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_sales"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_suppliers"
	"github.com/light-bringer/inventory-service/internal/app/inventory/repo"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/bulk_update_prices"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/create_family"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/create_product"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/create_supplier"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/delete_family"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/delete_product"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/delete_supplier"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/register_sale"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/update_product"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/update_supplier"
	"github.com/light-bringer/inventory-service/internal/pkg/clock"
	"github.com/light-bringer/inventory-service/internal/pkg/committer"
	"github.com/light-bringer/inventory-service/internal/pkg/config"
	transport "github.com/light-bringer/inventory-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Handler       http.Handler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Spanner client")
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)

	// 3. Create repositories
	productRepo := repo.NewProductRepo(spannerClient, clk)
	supplierRepo := repo.NewSupplierRepo(spannerClient)
	familyRepo := repo.NewFamilyRepo(spannerClient)
	saleRepo := repo.NewSaleRepo(spannerClient)
	outboxRepo := repo.NewOutboxRepo()

	productReadModel := repo.NewProductReadModel(spannerClient)
	salesReadModel := repo.NewSalesReadModel(spannerClient)
	directoryReadModel := repo.NewDirectoryReadModel(spannerClient)
	eventsReadModel := repo.NewEventsReadModel(spannerClient)

	// 4. Create command use cases (write operations)
	createProductUseCase := create_product.NewInteractor(productRepo, supplierRepo, familyRepo, outboxRepo, comm, clk)
	updateProductUseCase := update_product.NewInteractor(productRepo, supplierRepo, familyRepo, outboxRepo, comm, clk)
	deleteProductUseCase := delete_product.NewInteractor(productRepo, outboxRepo, comm, clk)
	bulkUpdateUseCase := bulk_update_prices.NewInteractor(productRepo, outboxRepo, comm, clk)
	registerSaleUseCase := register_sale.NewInteractor(saleRepo, productRepo, outboxRepo, comm)
	createSupplierUseCase := create_supplier.NewInteractor(supplierRepo, outboxRepo, comm, clk)
	updateSupplierUseCase := update_supplier.NewInteractor(supplierRepo, outboxRepo, comm, clk)
	deleteSupplierUseCase := delete_supplier.NewInteractor(supplierRepo, productRepo, outboxRepo, comm, clk)
	createFamilyUseCase := create_family.NewInteractor(familyRepo, outboxRepo, comm, clk)
	deleteFamilyUseCase := delete_family.NewInteractor(familyRepo, productRepo, outboxRepo, comm, clk, familyDeletePolicy(cfg))

	// 5. Create query use cases (read operations)
	getProductQuery := get_product.NewQuery(productReadModel)
	listProductsQuery := list_products.NewQuery(productReadModel)
	barcodeQuery := find_product_by_barcode.NewQuery(productReadModel)
	lowStockQuery := list_low_stock.NewQuery(productReadModel)
	getSaleQuery := get_sale.NewQuery(salesReadModel)
	listSalesQuery := list_sales.NewQuery(salesReadModel)
	getSupplierQuery := get_supplier.NewQuery(directoryReadModel)
	listSuppliersQuery := list_suppliers.NewQuery(directoryReadModel)
	listFamiliesQuery := list_families.NewQuery(directoryReadModel)
	listEventsQuery := list_events.NewQuery(eventsReadModel)

	// 6. Create HTTP handlers and router
	productHandler := transport.NewProductHandler(
		createProductUseCase,
		updateProductUseCase,
		deleteProductUseCase,
		bulkUpdateUseCase,
		getProductQuery,
		listProductsQuery,
		barcodeQuery,
		lowStockQuery,
	)
	supplierHandler := transport.NewSupplierHandler(
		createSupplierUseCase,
		updateSupplierUseCase,
		deleteSupplierUseCase,
		getSupplierQuery,
		listSuppliersQuery,
	)
	familyHandler := transport.NewFamilyHandler(
		createFamilyUseCase,
		deleteFamilyUseCase,
		listFamiliesQuery,
	)
	saleHandler := transport.NewSaleHandler(
		registerSaleUseCase,
		getSaleQuery,
		listSalesQuery,
	)
	eventsHandler := transport.NewEventsHandler(listEventsQuery)

	router := transport.NewRouter(productHandler, supplierHandler, familyHandler, saleHandler, eventsHandler)

	return &ServiceOptions{
		SpannerClient: spannerClient,
		Handler:       router,
	}, nil
}

// familyDeletePolicy maps the configured policy name onto the domain type.
// Unknown values fall back to restrict, the safe default.
func familyDeletePolicy(cfg *config.Config) domain.FamilyDeletePolicy {
	if cfg.FamilyDeletePolicy == string(domain.FamilyDeleteDetach) {
		return domain.FamilyDeleteDetach
	}
	return domain.FamilyDeleteRestrict
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
