package list_products

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
)

// Request contains optional filters for listing products.
type Request struct {
	SupplierID string
	FamilyID   string
	Limit      int
}

// Query handles the list products query use case.
type Query struct {
	readModel contracts.ProductReadModel
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.ProductReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves products matching the filters, ordered by name.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.ProductDTO, error) {
	return q.readModel.ListProducts(ctx, &contracts.ListFilter{
		SupplierID: req.SupplierID,
		FamilyID:   req.FamilyID,
		Limit:      req.Limit,
	})
}
