package list_families

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
)

// Query handles the list families query use case.
type Query struct {
	readModel contracts.DirectoryReadModel
}

// NewQuery creates a new list families query.
func NewQuery(readModel contracts.DirectoryReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves all families ordered by name.
func (q *Query) Execute(ctx context.Context) ([]*contracts.FamilyDTO, error) {
	return q.readModel.ListFamilies(ctx)
}
