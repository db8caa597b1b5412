// Package usecasetest provides in-memory fakes for the contracts interfaces
// so interactor tests run without a Spanner client.
package usecasetest

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/pkg/committer"
)

// ProductRepo is an in-memory ProductRepository.
type ProductRepo struct {
	Products      map[string]*domain.Product
	ScopeProducts []*domain.Product
	ListErr       error
	BarcodeOwner  map[int64]*domain.Product
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{
		Products:     make(map[string]*domain.Product),
		BarcodeOwner: make(map[int64]*domain.Product),
	}
}

func (r *ProductRepo) InsertMut(product *domain.Product) (*spanner.Mutation, error) {
	return spanner.InsertMap("products", map[string]interface{}{"product_id": product.ID()}), nil
}

func (r *ProductRepo) UpdateMut(product *domain.Product) (*spanner.Mutation, error) {
	if !product.Changes().HasChanges() {
		return nil, nil
	}
	return spanner.UpdateMap("products", map[string]interface{}{"product_id": product.ID()}), nil
}

func (r *ProductRepo) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete("products", spanner.Key{productID})
}

func (r *ProductRepo) ClearFamilyMut(productID string) *spanner.Mutation {
	return spanner.UpdateMap("products", map[string]interface{}{"product_id": productID, "family_id": nil})
}

func (r *ProductRepo) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, ok := r.Products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (r *ProductRepo) ListByScope(ctx context.Context, scope domain.Scope) ([]*domain.Product, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	return r.ScopeProducts, nil
}

func (r *ProductRepo) FindByBarcode(ctx context.Context, barcode int64) (*domain.Product, error) {
	product, ok := r.BarcodeOwner[barcode]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (r *ProductRepo) CountBySupplier(ctx context.Context, supplierID string) (int64, error) {
	var count int64
	for _, p := range r.Products {
		if p.SupplierID() == supplierID {
			count++
		}
	}
	return count, nil
}

func (r *ProductRepo) CountByFamily(ctx context.Context, familyID string) (int64, error) {
	var count int64
	for _, p := range r.Products {
		if p.FamilyID() == familyID {
			count++
		}
	}
	return count, nil
}

// SupplierRepo is an in-memory SupplierRepository.
type SupplierRepo struct {
	Suppliers map[string]*domain.Supplier
}

func NewSupplierRepo() *SupplierRepo {
	return &SupplierRepo{Suppliers: make(map[string]*domain.Supplier)}
}

func (r *SupplierRepo) InsertMut(supplier *domain.Supplier) *spanner.Mutation {
	return spanner.InsertMap("suppliers", map[string]interface{}{"supplier_id": supplier.ID})
}

func (r *SupplierRepo) UpdateMut(supplier *domain.Supplier) *spanner.Mutation {
	return spanner.UpdateMap("suppliers", map[string]interface{}{"supplier_id": supplier.ID})
}

func (r *SupplierRepo) DeleteMut(supplierID string) *spanner.Mutation {
	return spanner.Delete("suppliers", spanner.Key{supplierID})
}

func (r *SupplierRepo) GetByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	supplier, ok := r.Suppliers[supplierID]
	if !ok {
		return nil, domain.ErrSupplierNotFound
	}
	return supplier, nil
}

func (r *SupplierRepo) Exists(ctx context.Context, supplierID string) (bool, error) {
	_, ok := r.Suppliers[supplierID]
	return ok, nil
}

// FamilyRepo is an in-memory FamilyRepository.
type FamilyRepo struct {
	Families map[string]*domain.Family
}

func NewFamilyRepo() *FamilyRepo {
	return &FamilyRepo{Families: make(map[string]*domain.Family)}
}

func (r *FamilyRepo) InsertMut(family *domain.Family) *spanner.Mutation {
	return spanner.InsertMap("families", map[string]interface{}{"family_id": family.ID})
}

func (r *FamilyRepo) DeleteMut(familyID string) *spanner.Mutation {
	return spanner.Delete("families", spanner.Key{familyID})
}

func (r *FamilyRepo) GetByID(ctx context.Context, familyID string) (*domain.Family, error) {
	family, ok := r.Families[familyID]
	if !ok {
		return nil, domain.ErrFamilyNotFound
	}
	return family, nil
}

func (r *FamilyRepo) Exists(ctx context.Context, familyID string) (bool, error) {
	_, ok := r.Families[familyID]
	return ok, nil
}

// SaleRepo is an in-memory SaleRepository.
type SaleRepo struct {
	Inserted []*domain.Sale
	ByKey    map[string]string
}

func NewSaleRepo() *SaleRepo {
	return &SaleRepo{ByKey: make(map[string]string)}
}

func (r *SaleRepo) InsertMut(sale *domain.Sale) (*spanner.Mutation, error) {
	r.Inserted = append(r.Inserted, sale)
	return spanner.InsertMap("sales", map[string]interface{}{"sale_id": sale.ID()}), nil
}

func (r *SaleRepo) FindIDByIdempotencyKey(ctx context.Context, key string) (string, error) {
	saleID, ok := r.ByKey[key]
	if !ok {
		return "", domain.ErrSaleNotFound
	}
	return saleID, nil
}

// OutboxRepo is an in-memory OutboxRepository recording enriched events.
type OutboxRepo struct {
	Events []*contracts.OutboxEvent
}

func NewOutboxRepo() *OutboxRepo {
	return &OutboxRepo{}
}

func (r *OutboxRepo) InsertMut(event *contracts.OutboxEvent) *spanner.Mutation {
	r.Events = append(r.Events, event)
	return spanner.InsertMap("outbox_events", map[string]interface{}{"event_id": event.EventID})
}

func (r *OutboxRepo) EnrichEvent(event domain.DomainEvent, payload string) *contracts.OutboxEvent {
	return &contracts.OutboxEvent{
		EventID:     fmt.Sprintf("evt-%d", len(r.Events)+1),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		Status:      "pending",
	}
}

// Applier is an in-memory committer.Applier recording applied plans.
type Applier struct {
	Applied        []*committer.CommitPlan
	GuardedPlans   []*committer.CommitPlan
	GuardedDemands [][]committer.StockDemand
	Err            error
	GuardErr       error
}

func NewApplier() *Applier {
	return &Applier{}
}

func (a *Applier) Apply(ctx context.Context, plan *committer.CommitPlan) error {
	if a.Err != nil {
		return a.Err
	}
	a.Applied = append(a.Applied, plan)
	return nil
}

func (a *Applier) ApplyWithStockGuard(ctx context.Context, demands []committer.StockDemand, plan *committer.CommitPlan) error {
	if a.GuardErr != nil {
		return a.GuardErr
	}
	a.GuardedDemands = append(a.GuardedDemands, demands)
	a.GuardedPlans = append(a.GuardedPlans, plan)
	return nil
}
