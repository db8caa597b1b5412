package main

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_events"
	"github.com/light-bringer/inventory-service/internal/app/inventory/repo"
	"github.com/light-bringer/inventory-service/internal/pkg/config"
)

// Small inspection tool: prints the newest outbox events so a developer can
// verify that writes are producing events without opening a Spanner console.
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	query := list_events.NewQuery(repo.NewEventsReadModel(client))

	events, err := query.Execute(ctx, &list_events.Request{Limit: 10})
	if err != nil {
		log.Fatalf("Failed to list events: %v", err)
	}

	if len(events) == 0 {
		fmt.Println("No events found!")
		return
	}

	fmt.Println("Events in outbox_events table:")
	for i, event := range events {
		fmt.Printf("%d. %s - %s (aggregate: %s, status: %s)\n",
			i+1, event.EventType, event.EventID, event.AggregateID, event.Status)
	}
	fmt.Printf("\nTotal: %d events\n", len(events))
}
