package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
)

// SupplierRepository defines the interface for supplier persistence.
type SupplierRepository interface {
	// InsertMut creates a mutation for inserting a new supplier
	InsertMut(supplier *domain.Supplier) *spanner.Mutation

	// UpdateMut creates a mutation replacing a supplier's editable fields
	UpdateMut(supplier *domain.Supplier) *spanner.Mutation

	// DeleteMut creates a mutation for deleting a supplier
	DeleteMut(supplierID string) *spanner.Mutation

	// GetByID retrieves a supplier by ID
	GetByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// Exists checks if a supplier exists
	Exists(ctx context.Context, supplierID string) (bool, error)
}

// FamilyRepository defines the interface for family persistence.
type FamilyRepository interface {
	// InsertMut creates a mutation for inserting a new family
	InsertMut(family *domain.Family) *spanner.Mutation

	// DeleteMut creates a mutation for deleting a family
	DeleteMut(familyID string) *spanner.Mutation

	// GetByID retrieves a family by ID
	GetByID(ctx context.Context, familyID string) (*domain.Family, error)

	// Exists checks if a family exists
	Exists(ctx context.Context, familyID string) (bool, error)
}
