package update_product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/pkg/clock"
	"github.com/light-bringer/inventory-service/internal/pkg/committer"
)

// Request contains the data needed to update a product. Nil pointers mean
// "leave unchanged"; prices must be supplied as a pair so the pricing
// invariant is checked against the final values.
type Request struct {
	ProductID     string
	Name          *string
	Description   *string
	PurchasePrice *domain.Money
	SalePrice     *domain.Money
	Stock         *int64
	MinStock      *int64
	SetMinStock   bool
	Barcode       *int64
	SetBarcode    bool
	SupplierID    *string
	FamilyID      *string
}

// Interactor handles the update product use case.
type Interactor struct {
	repo         contracts.ProductRepository
	supplierRepo contracts.SupplierRepository
	familyRepo   contracts.FamilyRepository
	outboxRepo   contracts.OutboxRepository
	committer    committer.Applier
	clock        clock.Clock
}

// NewInteractor creates a new update product interactor.
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

// Execute updates a product, writing only the fields that changed.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.ProductID == "" {
		return domain.ErrProductNotFound
	}

	// 1. Load aggregate
	product, err := i.repo.GetByID(ctx, req.ProductID)
	if err != nil {
		return err
	}
	defer product.ClearEvents()

	// 2. Apply field changes through the aggregate
	if req.Name != nil {
		if err := product.SetName(*req.Name); err != nil {
			return err
		}
	}
	if req.Description != nil {
		product.SetDescription(*req.Description)
	}

	if req.PurchasePrice != nil || req.SalePrice != nil {
		purchase := product.PurchasePrice()
		sale := product.SalePrice()
		if req.PurchasePrice != nil {
			purchase = req.PurchasePrice
		}
		if req.SalePrice != nil {
			sale = req.SalePrice
		}
		if err := product.SetPrices(purchase, sale); err != nil {
			return err
		}
	}

	if req.Stock != nil {
		if err := product.SetStock(*req.Stock); err != nil {
			return err
		}
	}
	if req.SetMinStock {
		product.SetMinStock(req.MinStock)
	}

	if req.SetBarcode {
		if req.Barcode != nil {
			if err := i.checkBarcodeFree(ctx, *req.Barcode, product.ID()); err != nil {
				return err
			}
		}
		product.SetBarcode(req.Barcode)
	}

	if req.SupplierID != nil {
		exists, err := i.supplierRepo.Exists(ctx, *req.SupplierID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrSupplierNotFound
		}
		if err := product.SetSupplier(*req.SupplierID); err != nil {
			return err
		}
	}
	if req.FamilyID != nil {
		if *req.FamilyID != "" {
			exists, err := i.familyRepo.Exists(ctx, *req.FamilyID)
			if err != nil {
				return err
			}
			if !exists {
				return domain.ErrFamilyNotFound
			}
		}
		product.SetFamily(*req.FamilyID)
	}

	product.FinalizeUpdate(i.clock.Now())

	// 3. Create commit plan
	plan := committer.NewPlan()

	mut, err := i.repo.UpdateMut(product)
	if err != nil {
		return fmt.Errorf("failed to build product update: %w", err)
	}
	plan.Add(mut)

	// 4. Add outbox events
	for _, event := range product.DomainEvents() {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to serialize event: %w", err)
		}
		outboxEvent := i.outboxRepo.EnrichEvent(event, string(payload))
		plan.Add(i.outboxRepo.InsertMut(outboxEvent))
	}

	// 5. Apply plan
	if plan.IsEmpty() {
		return nil // No changes
	}
	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
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
