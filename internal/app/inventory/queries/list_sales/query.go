package list_sales

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
)

// Request contains listing options for the sales history.
type Request struct {
	Limit int
}

// Query handles the list sales query use case.
type Query struct {
	readModel contracts.SalesReadModel
}

// NewQuery creates a new list sales query.
func NewQuery(readModel contracts.SalesReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves sales ordered by date, newest first.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.SaleDTO, error) {
	return q.readModel.ListSales(ctx, req.Limit)
}
