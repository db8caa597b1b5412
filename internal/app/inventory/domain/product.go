package domain

import (
	"time"

	"github.com/light-bringer/inventory-service/internal/pkg/clock"
)

// Field names for change tracking
const (
	FieldName          = "name"
	FieldDescription   = "description"
	FieldPurchasePrice = "purchase_price"
	FieldSalePrice     = "sale_price"
	FieldStock         = "stock"
	FieldMinStock      = "min_stock"
	FieldBarcode       = "barcode"
	FieldSupplier      = "supplier_id"
	FieldFamily        = "family_id"
)

// Product is the aggregate root for catalog and inventory management.
// The pricing invariant (sale price strictly above purchase price) is
// enforced on construction and on every explicit price write. Bulk price
// adjustments preserve the existing absolute margin instead, so a product
// already violating the invariant passes through unchanged in relative terms.
type Product struct {
	id            string
	name          string
	description   string
	purchasePrice *Money
	salePrice     *Money
	stock         int64
	minStock      *int64
	barcode       *int64
	supplierID    string
	familyID      string
	createdAt     time.Time
	updatedAt     time.Time

	clock clock.Clock

	// Change tracking for optimized repository updates
	changes *ChangeTracker

	// Domain events to be published
	events []DomainEvent
}

// NewProduct creates a new Product aggregate (for creation).
func NewProduct(
	id, name, description string,
	purchasePrice, salePrice *Money,
	stock int64,
	minStock, barcode *int64,
	supplierID, familyID string,
	now time.Time,
	clk clock.Clock,
) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if supplierID == "" {
		return nil, ErrEmptySupplier
	}
	if purchasePrice == nil || !purchasePrice.IsPositive() {
		return nil, ErrInvalidPurchasePrice
	}
	if salePrice == nil || !salePrice.GreaterThan(purchasePrice) {
		return nil, ErrInvalidSalePrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	p := &Product{
		id:            id,
		name:          name,
		description:   description,
		purchasePrice: purchasePrice.Copy(),
		salePrice:     salePrice.Copy(),
		stock:         stock,
		minStock:      minStock,
		barcode:       barcode,
		supplierID:    supplierID,
		familyID:      familyID,
		createdAt:     now,
		updatedAt:     now,
		clock:         clk,
		changes:       NewChangeTracker(),
		events:        make([]DomainEvent, 0),
	}

	// Mark all fields as dirty for new product
	p.changes.MarkDirty(FieldName)
	p.changes.MarkDirty(FieldDescription)
	p.changes.MarkDirty(FieldPurchasePrice)
	p.changes.MarkDirty(FieldSalePrice)
	p.changes.MarkDirty(FieldStock)
	p.changes.MarkDirty(FieldMinStock)
	p.changes.MarkDirty(FieldBarcode)
	p.changes.MarkDirty(FieldSupplier)
	p.changes.MarkDirty(FieldFamily)

	p.recordEvent(&ProductCreatedEvent{
		ProductID:     p.id,
		Name:          p.name,
		SupplierID:    p.supplierID,
		FamilyID:      p.familyID,
		PurchasePrice: p.purchasePrice.String(),
		SalePrice:     p.salePrice.String(),
		Stock:         p.stock,
		CreatedAt:     p.createdAt,
	})

	return p, nil
}

// ReconstructProduct reconstitutes a Product from database (for loading existing products).
func ReconstructProduct(
	id, name, description string,
	purchasePrice, salePrice *Money,
	stock int64,
	minStock, barcode *int64,
	supplierID, familyID string,
	createdAt, updatedAt time.Time,
	clk clock.Clock,
) *Product {
	return &Product{
		id:            id,
		name:          name,
		description:   description,
		purchasePrice: purchasePrice,
		salePrice:     salePrice,
		stock:         stock,
		minStock:      minStock,
		barcode:       barcode,
		supplierID:    supplierID,
		familyID:      familyID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		clock:         clk,
		changes:       NewChangeTracker(), // Start with clean slate
		events:        make([]DomainEvent, 0),
	}
}

// Getters
func (p *Product) ID() string                  { return p.id }
func (p *Product) Name() string                { return p.name }
func (p *Product) Description() string         { return p.description }
func (p *Product) PurchasePrice() *Money       { return p.purchasePrice.Copy() }
func (p *Product) SalePrice() *Money           { return p.salePrice.Copy() }
func (p *Product) Stock() int64                { return p.stock }
func (p *Product) MinStock() *int64            { return p.minStock }
func (p *Product) Barcode() *int64             { return p.barcode }
func (p *Product) SupplierID() string          { return p.supplierID }
func (p *Product) FamilyID() string            { return p.familyID }
func (p *Product) CreatedAt() time.Time        { return p.createdAt }
func (p *Product) UpdatedAt() time.Time        { return p.updatedAt }
func (p *Product) Changes() *ChangeTracker     { return p.changes }
func (p *Product) DomainEvents() []DomainEvent { return p.events }

// Margin returns the current absolute margin (sale price minus purchase price).
func (p *Product) Margin() *Money {
	return p.salePrice.Subtract(p.purchasePrice)
}

// SetName updates the product name.
func (p *Product) SetName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	p.name = name
	p.changes.MarkDirty(FieldName)
	return nil
}

// SetDescription updates the product description.
func (p *Product) SetDescription(description string) {
	p.description = description
	p.changes.MarkDirty(FieldDescription)
}

// SetPrices replaces both prices, re-validating the pricing invariant.
func (p *Product) SetPrices(purchasePrice, salePrice *Money) error {
	if purchasePrice == nil || !purchasePrice.IsPositive() {
		return ErrInvalidPurchasePrice
	}
	if salePrice == nil || !salePrice.GreaterThan(purchasePrice) {
		return ErrInvalidSalePrice
	}
	p.purchasePrice = purchasePrice.Copy()
	p.salePrice = salePrice.Copy()
	p.changes.MarkDirty(FieldPurchasePrice)
	p.changes.MarkDirty(FieldSalePrice)
	return nil
}

// SetStock replaces the absolute stock level (admin correction, not sales).
func (p *Product) SetStock(stock int64) error {
	if stock < 0 {
		return ErrInvalidStock
	}
	p.stock = stock
	p.changes.MarkDirty(FieldStock)
	return nil
}

// SetMinStock updates the optional minimum-stock threshold (nil clears it).
func (p *Product) SetMinStock(minStock *int64) {
	p.minStock = minStock
	p.changes.MarkDirty(FieldMinStock)
}

// SetBarcode updates the optional barcode (nil clears it). Uniqueness across
// products is checked by the usecase against the store, not here.
func (p *Product) SetBarcode(barcode *int64) {
	p.barcode = barcode
	p.changes.MarkDirty(FieldBarcode)
}

// SetSupplier updates the supplier reference.
func (p *Product) SetSupplier(supplierID string) error {
	if supplierID == "" {
		return ErrEmptySupplier
	}
	p.supplierID = supplierID
	p.changes.MarkDirty(FieldSupplier)
	return nil
}

// SetFamily updates the optional family reference (empty clears it).
func (p *Product) SetFamily(familyID string) {
	p.familyID = familyID
	p.changes.MarkDirty(FieldFamily)
}

// ApplyPriceAdjustment recomputes both prices from the adjustment while
// preserving the current absolute margin:
//
//	newPurchase = adjust(purchase), rounded to cents
//	newSale     = newPurchase + (sale - purchase), rounded to cents
//
// No floor is enforced on the result; a non-positive new purchase price is
// carried through, matching the bulk-update policy.
func (p *Product) ApplyPriceAdjustment(adj PriceAdjustment) error {
	if err := adj.Validate(); err != nil {
		return err
	}

	margin := p.Margin()
	newPurchase := adj.ApplyTo(p.purchasePrice)
	newSale := newPurchase.Add(margin).RoundToCents()

	p.purchasePrice = newPurchase
	p.salePrice = newSale
	p.changes.MarkDirty(FieldPurchasePrice)
	p.changes.MarkDirty(FieldSalePrice)
	return nil
}

// FinalizeUpdate emits a single update event when any field changed.
// Called by update usecases after the last setter.
func (p *Product) FinalizeUpdate(now time.Time) {
	if !p.changes.HasChanges() {
		return
	}
	p.recordEvent(&ProductUpdatedEvent{
		ProductID: p.id,
		Name:      p.name,
		UpdatedAt: now,
	})
}

// IsBelowMinStock reports whether the stock has reached the minimum-stock
// threshold. Products without a threshold never report low.
func (p *Product) IsBelowMinStock() bool {
	return p.minStock != nil && p.stock <= *p.minStock
}

// recordEvent adds a domain event to the list of events.
func (p *Product) recordEvent(event DomainEvent) {
	p.events = append(p.events, event)
}

// ClearEvents clears all recorded domain events (called after publishing).
func (p *Product) ClearEvents() {
	p.events = make([]DomainEvent, 0)
}
