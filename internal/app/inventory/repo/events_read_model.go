package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/models/m_outbox"
	"github.com/light-bringer/inventory-service/internal/pkg/query"
)

// EventsReadModel implements outbox event queries for inspection tooling.
type EventsReadModel struct {
	client *spanner.Client
}

// NewEventsReadModel creates a new EventsReadModel.
func NewEventsReadModel(client *spanner.Client) contracts.EventsReadModel {
	return &EventsReadModel{client: client}
}

// ListEvents retrieves outbox events, optionally filtered by status.
func (rm *EventsReadModel) ListEvents(ctx context.Context, status string, limit int) ([]*contracts.EventDTO, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	builder := query.From(m_outbox.TableName).
		Select(m_outbox.Columns()...).
		OrderBy(m_outbox.CreatedAt, query.Desc).
		Limit(int64(limit))

	if status != "" {
		builder = builder.Where(query.Eq(m_outbox.Status, status))
	}

	iter := rm.client.Single().Query(ctx, builder.Build())
	defer iter.Stop()

	events := make([]*contracts.EventDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate events: %w", err)
		}

		var data m_outbox.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse event: %w", err)
		}

		payload := ""
		if data.Payload.Valid {
			raw, err := json.Marshal(data.Payload.Value)
			if err == nil {
				payload = string(raw)
			}
		}

		events = append(events, &contracts.EventDTO{
			EventID:     data.EventID,
			EventType:   data.EventType,
			AggregateID: data.AggregateID,
			Payload:     payload,
			Status:      data.Status,
			CreatedAt:   data.CreatedAt,
		})
	}
	return events, nil
}
