package get_sale

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
)

// Request contains the sale ID to retrieve.
type Request struct {
	SaleID string
}

// Query handles the get sale query use case.
type Query struct {
	readModel contracts.SalesReadModel
}

// NewQuery creates a new get sale query.
func NewQuery(readModel contracts.SalesReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a sale by ID.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.SaleDTO, error) {
	return q.readModel.GetSaleByID(ctx, req.SaleID)
}
