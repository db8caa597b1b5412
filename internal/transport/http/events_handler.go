package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_events"
)

// EventsHandler handles HTTP requests for outbox event inspection.
type EventsHandler struct {
	listQuery *list_events.Query
}

// NewEventsHandler creates a new HTTP events handler.
func NewEventsHandler(listQuery *list_events.Query) *EventsHandler {
	return &EventsHandler{listQuery: listQuery}
}

// EventResponse is the JSON shape of an outbox event in responses.
type EventResponse struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	AggregateID string    `json:"aggregate_id"`
	Payload     string    `json:"payload"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// List handles GET /api/v1/events.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	limit := 0
	if raw := params.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", raw))
			return
		}
		limit = parsed
	}

	dtos, err := h.listQuery.Execute(r.Context(), &list_events.Request{
		Status: params.Get("status"),
		Limit:  limit,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]*EventResponse, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, &EventResponse{
			EventID:     dto.EventID,
			EventType:   dto.EventType,
			AggregateID: dto.AggregateID,
			Payload:     dto.Payload,
			Status:      dto.Status,
			CreatedAt:   dto.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
