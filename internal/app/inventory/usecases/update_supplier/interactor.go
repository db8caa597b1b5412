package update_supplier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/pkg/clock"
	"github.com/light-bringer/inventory-service/internal/pkg/committer"
)

// Request contains the data needed to update a supplier.
// Nil pointers mean "leave unchanged".
type Request struct {
	SupplierID string
	Name       *string
	Phone      *string
	Email      *string
	Address    *string
	Notes      *string
}

// Interactor handles the update supplier use case.
type Interactor struct {
	repo       contracts.SupplierRepository
	outboxRepo contracts.OutboxRepository
	committer  committer.Applier
	clock      clock.Clock
}

// NewInteractor creates a new update supplier interactor.
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

// Execute updates a supplier's contact fields.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.SupplierID == "" {
		return domain.ErrSupplierNotFound
	}

	supplier, err := i.repo.GetByID(ctx, req.SupplierID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return domain.ErrEmptyName
		}
		supplier.Name = *req.Name
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if req.Notes != nil {
		supplier.Notes = *req.Notes
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.UpdateMut(supplier))

	event := &domain.SupplierUpdatedEvent{
		SupplierID: supplier.ID,
		Name:       supplier.Name,
		UpdatedAt:  i.clock.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}
	outboxEvent := i.outboxRepo.EnrichEvent(event, string(payload))
	plan.Add(i.outboxRepo.InsertMut(outboxEvent))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
