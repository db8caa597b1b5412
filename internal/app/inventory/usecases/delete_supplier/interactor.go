package delete_supplier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/pkg/clock"
	"github.com/light-bringer/inventory-service/internal/pkg/committer"
)

// Request contains the data needed to delete a supplier.
type Request struct {
	SupplierID string
}

// Interactor handles the delete supplier use case.
type Interactor struct {
	repo        contracts.SupplierRepository
	productRepo contracts.ProductRepository
	outboxRepo  contracts.OutboxRepository
	committer   committer.Applier
	clock       clock.Clock
}

// NewInteractor creates a new delete supplier interactor.
func NewInteractor(
	repo contracts.SupplierRepository,
	productRepo contracts.ProductRepository,
	outboxRepo contracts.OutboxRepository,
	committer committer.Applier,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:        repo,
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		committer:   committer,
		clock:       clock,
	}
}

// Execute deletes a supplier. A supplier referenced by any product cannot
// be deleted; the products must be moved or removed first.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.SupplierID == "" {
		return domain.ErrSupplierNotFound
	}

	exists, err := i.repo.Exists(ctx, req.SupplierID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrSupplierNotFound
	}

	count, err := i.productRepo.CountBySupplier(ctx, req.SupplierID)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%d products reference supplier %s: %w", count, req.SupplierID, domain.ErrSupplierInUse)
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.DeleteMut(req.SupplierID))

	event := &domain.SupplierDeletedEvent{
		SupplierID: req.SupplierID,
		DeletedAt:  i.clock.Now(),
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
