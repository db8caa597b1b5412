package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// ProductCreatedEvent is emitted when a product is created.
type ProductCreatedEvent struct {
	ProductID     string
	Name          string
	SupplierID    string
	FamilyID      string
	PurchasePrice string
	SalePrice     string
	Stock         int64
	CreatedAt     time.Time
}

func (e *ProductCreatedEvent) EventType() string   { return "product.created" }
func (e *ProductCreatedEvent) AggregateID() string { return e.ProductID }

// ProductUpdatedEvent is emitted when product details are updated.
type ProductUpdatedEvent struct {
	ProductID string
	Name      string
	UpdatedAt time.Time
}

func (e *ProductUpdatedEvent) EventType() string   { return "product.updated" }
func (e *ProductUpdatedEvent) AggregateID() string { return e.ProductID }

// ProductDeletedEvent is emitted when a product is removed by an admin.
type ProductDeletedEvent struct {
	ProductID string
	DeletedAt time.Time
}

func (e *ProductDeletedEvent) EventType() string   { return "product.deleted" }
func (e *ProductDeletedEvent) AggregateID() string { return e.ProductID }

// PricesBulkUpdatedEvent is emitted once per bulk price adjustment run.
type PricesBulkUpdatedEvent struct {
	ScopeKind    string
	ScopeID      string
	Mode         string
	Value        float64
	UpdatedCount int
	AppliedAt    time.Time
}

func (e *PricesBulkUpdatedEvent) EventType() string   { return "product.prices.bulk_updated" }
func (e *PricesBulkUpdatedEvent) AggregateID() string { return e.ScopeID }

// SaleRegisteredEvent is emitted when a sale is durably recorded.
type SaleRegisteredEvent struct {
	SaleID    string
	UserID    string
	Total     string
	LineCount int
}

func (e *SaleRegisteredEvent) EventType() string   { return "sale.registered" }
func (e *SaleRegisteredEvent) AggregateID() string { return e.SaleID }

// SupplierCreatedEvent is emitted when a supplier is created.
type SupplierCreatedEvent struct {
	SupplierID string
	Name       string
	CreatedAt  time.Time
}

func (e *SupplierCreatedEvent) EventType() string   { return "supplier.created" }
func (e *SupplierCreatedEvent) AggregateID() string { return e.SupplierID }

// SupplierUpdatedEvent is emitted when a supplier's contact fields change.
type SupplierUpdatedEvent struct {
	SupplierID string
	Name       string
	UpdatedAt  time.Time
}

func (e *SupplierUpdatedEvent) EventType() string   { return "supplier.updated" }
func (e *SupplierUpdatedEvent) AggregateID() string { return e.SupplierID }

// SupplierDeletedEvent is emitted when a supplier is deleted.
type SupplierDeletedEvent struct {
	SupplierID string
	DeletedAt  time.Time
}

func (e *SupplierDeletedEvent) EventType() string   { return "supplier.deleted" }
func (e *SupplierDeletedEvent) AggregateID() string { return e.SupplierID }

// FamilyCreatedEvent is emitted when a family is created.
type FamilyCreatedEvent struct {
	FamilyID  string
	Name      string
	CreatedAt time.Time
}

func (e *FamilyCreatedEvent) EventType() string   { return "family.created" }
func (e *FamilyCreatedEvent) AggregateID() string { return e.FamilyID }

// FamilyDeletedEvent is emitted when a family is deleted.
// DetachedProducts is the number of products whose family reference was
// cleared in the same batch (zero under the restrict policy).
type FamilyDeletedEvent struct {
	FamilyID         string
	DetachedProducts int
	DeletedAt        time.Time
}

func (e *FamilyDeletedEvent) EventType() string   { return "family.deleted" }
func (e *FamilyDeletedEvent) AggregateID() string { return e.FamilyID }
