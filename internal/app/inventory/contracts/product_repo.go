package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
)

// ProductRepository defines the interface for product persistence.
// Repositories return mutations, they don't apply them: usecases stage the
// mutations into a commit plan and apply the plan atomically.
type ProductRepository interface {
	// InsertMut creates a mutation for inserting a new product
	InsertMut(product *domain.Product) (*spanner.Mutation, error)

	// UpdateMut creates a mutation for updating a product (only dirty fields)
	UpdateMut(product *domain.Product) (*spanner.Mutation, error)

	// DeleteMut creates a mutation for deleting a product
	DeleteMut(productID string) *spanner.Mutation

	// ClearFamilyMut creates a mutation that removes a product's family
	// reference, used by the detach family-deletion policy
	ClearFamilyMut(productID string) *spanner.Mutation

	// GetByID retrieves a product by ID, reconstructing the domain aggregate
	GetByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListByScope retrieves all products matching a bulk-update scope
	// (by supplier or by family). Zero matches is not an error.
	ListByScope(ctx context.Context, scope domain.Scope) ([]*domain.Product, error)

	// FindByBarcode retrieves the product owning a barcode, or
	// domain.ErrProductNotFound when no product carries it
	FindByBarcode(ctx context.Context, barcode int64) (*domain.Product, error)

	// CountBySupplier counts products referencing a supplier
	CountBySupplier(ctx context.Context, supplierID string) (int64, error)

	// CountByFamily counts products referencing a family
	CountByFamily(ctx context.Context, familyID string) (int64, error)
}
