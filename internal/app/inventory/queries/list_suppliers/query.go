package list_suppliers

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
)

// Query handles the list suppliers query use case.
type Query struct {
	readModel contracts.DirectoryReadModel
}

// NewQuery creates a new list suppliers query.
func NewQuery(readModel contracts.DirectoryReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves all suppliers ordered by name.
func (q *Query) Execute(ctx context.Context) ([]*contracts.SupplierDTO, error) {
	return q.readModel.ListSuppliers(ctx)
}
