package list_low_stock

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
)

// Query handles the low stock report query use case.
type Query struct {
	readModel contracts.ProductReadModel
}

// NewQuery creates a new low stock report query.
func NewQuery(readModel contracts.ProductReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves products at or below their minimum-stock threshold.
func (q *Query) Execute(ctx context.Context) ([]*contracts.ProductDTO, error) {
	return q.readModel.ListLowStock(ctx)
}
