package create_supplier

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

// Request contains the data needed to create a supplier.
type Request struct {
	Name    string
	Phone   string
	Email   string
	Address string
	Notes   string
}

// Interactor handles the create supplier use case.
type Interactor struct {
	repo       contracts.SupplierRepository
	outboxRepo contracts.OutboxRepository
	committer  committer.Applier
	clock      clock.Clock
}

// NewInteractor creates a new create supplier interactor.
func NewInteractor(
	repo contracts.SupplierRepository,
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

// Execute creates a new supplier.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	supplierID := uuid.New().String()
	now := i.clock.Now()

	supplier, err := domain.NewSupplier(supplierID, req.Name, req.Phone, req.Email, req.Address, req.Notes, now)
	if err != nil {
		return "", err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(supplier))

	event := &domain.SupplierCreatedEvent{
		SupplierID: supplier.ID,
		Name:       supplier.Name,
		CreatedAt:  now,
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
	return supplier.ID, nil
}
