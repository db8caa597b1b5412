package list_events

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
)

// Request contains filters for listing outbox events.
type Request struct {
	Status string
	Limit  int
}

// Query handles the list events query use case.
type Query struct {
	readModel contracts.EventsReadModel
}

// NewQuery creates a new list events query.
func NewQuery(readModel contracts.EventsReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves outbox events, optionally filtered by status.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.EventDTO, error) {
	return q.readModel.ListEvents(ctx, req.Status, req.Limit)
}
