package bulk_update_prices

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/pkg/clock"
	"github.com/light-bringer/inventory-service/internal/pkg/committer"
)

// Request contains the data needed to bulk-adjust prices in a scope.
type Request struct {
	Scope      domain.Scope
	Adjustment domain.PriceAdjustment
}

// Response reports the outcome of a bulk price adjustment.
type Response struct {
	UpdatedCount int
}

// Interactor handles the bulk price update use case.
type Interactor struct {
	repo       contracts.ProductRepository
	outboxRepo contracts.OutboxRepository
	committer  committer.Applier
	clock      clock.Clock
}

// NewInteractor creates a new bulk price update interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	outboxRepo contracts.OutboxRepository,
	committer committer.Applier,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute adjusts the purchase price of every product in the scope and moves
// the sale price by the same amount, preserving each product's margin. All
// row updates and the bulk-update event land in one atomic commit; on any
// failure nothing is applied.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate request
	if err := req.Scope.Validate(); err != nil {
		return nil, err
	}
	if err := req.Adjustment.Validate(); err != nil {
		return nil, err
	}

	// 2. Load every product in scope
	products, err := i.repo.ListByScope(ctx, req.Scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list products in scope: %w", err)
	}

	// Empty scope is a successful no-op
	if len(products) == 0 {
		return &Response{UpdatedCount: 0}, nil
	}

	// 3. Apply the adjustment per aggregate and stage mutations
	plan := committer.NewPlan()
	for _, product := range products {
		if err := product.ApplyPriceAdjustment(req.Adjustment); err != nil {
			return nil, err
		}
		mut, err := i.repo.UpdateMut(product)
		if err != nil {
			return nil, fmt.Errorf("failed to build update for product %s: %w", product.ID(), err)
		}
		plan.Add(mut)
	}

	// 4. Stage one event for the whole run
	event := &domain.PricesBulkUpdatedEvent{
		ScopeKind:    string(req.Scope.Kind),
		ScopeID:      req.Scope.ID,
		Mode:         string(req.Adjustment.Mode),
		Value:        req.Adjustment.Value,
		UpdatedCount: len(products),
		AppliedAt:    i.clock.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize event: %w", err)
	}
	outboxEvent := i.outboxRepo.EnrichEvent(event, string(payload))
	plan.Add(i.outboxRepo.InsertMut(outboxEvent))

	// 5. Apply plan
	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &Response{UpdatedCount: len(products)}, nil
}
