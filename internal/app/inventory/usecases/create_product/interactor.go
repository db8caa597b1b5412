package create_product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/pkg/clock"
	"github.com/light-bringer/inventory-service/internal/pkg/committer"
)

// Request contains the data needed to create a product.
type Request struct {
	Name          string
	Description   string
	PurchasePrice *domain.Money
	SalePrice     *domain.Money
	Stock         int64
	MinStock      *int64
	Barcode       *int64
	SupplierID    string
	FamilyID      string
}

// Interactor handles the create product use case.
type Interactor struct {
	repo         contracts.ProductRepository
	supplierRepo contracts.SupplierRepository
	familyRepo   contracts.FamilyRepository
	outboxRepo   contracts.OutboxRepository
	committer    committer.Applier
	clock        clock.Clock
}

// NewInteractor creates a new create product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	supplierRepo contracts.SupplierRepository,
	familyRepo contracts.FamilyRepository,
	outboxRepo contracts.OutboxRepository,
	committer committer.Applier,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:         repo,
		supplierRepo: supplierRepo,
		familyRepo:   familyRepo,
		outboxRepo:   outboxRepo,
		committer:    committer,
		clock:        clock,
	}
}

// Execute creates a new product.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	// 1. Referenced supplier and family must exist
	if req.SupplierID == "" {
		return "", domain.ErrEmptySupplier
	}
	exists, err := i.supplierRepo.Exists(ctx, req.SupplierID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", domain.ErrSupplierNotFound
	}
	if req.FamilyID != "" {
		exists, err := i.familyRepo.Exists(ctx, req.FamilyID)
		if err != nil {
			return "", err
		}
		if !exists {
			return "", domain.ErrFamilyNotFound
		}
	}

	// 2. Barcode must not be owned by another product
	if req.Barcode != nil {
		if err := i.checkBarcodeFree(ctx, *req.Barcode, ""); err != nil {
			return "", err
		}
	}

	// 3. Create the aggregate
	productID := uuid.New().String()
	now := i.clock.Now()

	product, err := domain.NewProduct(
		productID,
		req.Name,
		req.Description,
		req.PurchasePrice,
		req.SalePrice,
		req.Stock,
		req.MinStock,
		req.Barcode,
		req.SupplierID,
		req.FamilyID,
		now,
		i.clock,
	)
	if err != nil {
		return "", err
	}

	// 4. Create commit plan
	plan := committer.NewPlan()

	mut, err := i.repo.InsertMut(product)
	if err != nil {
		return "", fmt.Errorf("failed to build product insert: %w", err)
	}
	plan.Add(mut)

	// 5. Add outbox events
	for _, event := range product.DomainEvents() {
		payload, err := json.Marshal(event)
		if err != nil {
			return "", fmt.Errorf("failed to serialize event: %w", err)
		}
		outboxEvent := i.outboxRepo.EnrichEvent(event, string(payload))
		plan.Add(i.outboxRepo.InsertMut(outboxEvent))
	}

	// 6. Apply plan
	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return product.ID(), nil
}

func (i *Interactor) checkBarcodeFree(ctx context.Context, barcode int64, ownerID string) error {
	owner, err := i.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil
		}
		return err
	}
	if owner.ID() != ownerID {
		return domain.ErrBarcodeInUse
	}
	return nil
}
