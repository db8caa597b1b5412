package create_family

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/pkg/clock"
	"github.com/light-bringer/inventory-service/internal/pkg/committer"
)

// Request contains the data needed to create a family.
type Request struct {
	Name string
}

// Interactor handles the create family use case.
type Interactor struct {
	repo       contracts.FamilyRepository
	outboxRepo contracts.OutboxRepository
	committer  committer.Applier
	clock      clock.Clock
}

// NewInteractor creates a new create family interactor.
func NewInteractor(
	repo contracts.FamilyRepository,
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

// Execute creates a new family.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	familyID := uuid.New().String()
	now := i.clock.Now()

	family, err := domain.NewFamily(familyID, req.Name, now)
	if err != nil {
		return "", err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(family))

	event := &domain.FamilyCreatedEvent{
		FamilyID:  family.ID,
		Name:      family.Name,
		CreatedAt: now,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("failed to serialize event: %w", err)
	}
	outboxEvent := i.outboxRepo.EnrichEvent(event, string(payload))
	plan.Add(i.outboxRepo.InsertMut(outboxEvent))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}
	return family.ID, nil
}
