package delete_family

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/pkg/clock"
	"github.com/light-bringer/inventory-service/internal/pkg/committer"
)

// Request contains the data needed to delete a family.
type Request struct {
	FamilyID string
}

// Response reports the outcome of a family deletion.
type Response struct {
	DetachedProducts int
}

// Interactor handles the delete family use case. Behavior toward
// referencing products is selected by policy at wiring time: restrict
// rejects the deletion, detach clears the references in the same batch.
type Interactor struct {
	repo        contracts.FamilyRepository
	productRepo contracts.ProductRepository
	outboxRepo  contracts.OutboxRepository
	committer   committer.Applier
	clock       clock.Clock
	policy      domain.FamilyDeletePolicy
}

// NewInteractor creates a new delete family interactor.
func NewInteractor(
	repo contracts.FamilyRepository,
	productRepo contracts.ProductRepository,
	outboxRepo contracts.OutboxRepository,
	committer committer.Applier,
	clock clock.Clock,
	policy domain.FamilyDeletePolicy,
) *Interactor {
	return &Interactor{
		repo:        repo,
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		committer:   committer,
		clock:       clock,
		policy:      policy,
	}
}

// Execute deletes a family according to the configured policy.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.FamilyID == "" {
		return nil, domain.ErrFamilyNotFound
	}

	exists, err := i.repo.Exists(ctx, req.FamilyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrFamilyNotFound
	}

	plan := committer.NewPlan()
	detached := 0

	switch i.policy {
	case domain.FamilyDeleteDetach:
		products, err := i.productRepo.ListByScope(ctx, domain.Scope{
			Kind: domain.ScopeFamily,
			ID:   req.FamilyID,
		})
		if err != nil {
			return nil, err
		}
		for _, product := range products {
			plan.Add(i.productRepo.ClearFamilyMut(product.ID()))
		}
		detached = len(products)

	default: // restrict
		count, err := i.productRepo.CountByFamily(ctx, req.FamilyID)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, fmt.Errorf("%d products reference family %s: %w", count, req.FamilyID, domain.ErrFamilyInUse)
		}
	}

	plan.Add(i.repo.DeleteMut(req.FamilyID))

	event := &domain.FamilyDeletedEvent{
		FamilyID:         req.FamilyID,
		DetachedProducts: detached,
		DeletedAt:        i.clock.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize event: %w", err)
	}
	outboxEvent := i.outboxRepo.EnrichEvent(event, string(payload))
	plan.Add(i.outboxRepo.InsertMut(outboxEvent))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &Response{DetachedProducts: detached}, nil
}
