package get_supplier

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
)

// Request contains the supplier ID to retrieve.
type Request struct {
	SupplierID string
}

// Query handles the get supplier query use case.
type Query struct {
	readModel contracts.DirectoryReadModel
}

// NewQuery creates a new get supplier query.
func NewQuery(readModel contracts.DirectoryReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a supplier by ID.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.SupplierDTO, error) {
	return q.readModel.GetSupplierByID(ctx, req.SupplierID)
}
