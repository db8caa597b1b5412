package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
)

// SaleRepository defines the interface for sale persistence.
// Sales are append-only: there is no update or delete surface.
type SaleRepository interface {
	// InsertMut creates a mutation for inserting a sale record
	InsertMut(sale *domain.Sale) (*spanner.Mutation, error)

	// FindIDByIdempotencyKey returns the ID of an existing sale created
	// with the given key, or domain.ErrSaleNotFound. Lets retried
	// registrations be deduplicated instead of double-recorded.
	FindIDByIdempotencyKey(ctx context.Context, key string) (string, error)
}
