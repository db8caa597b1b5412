package contracts

import (
	"context"
	"time"
)

// ProductDTO is a data transfer object for product queries.
// Prices carry approximate float representations for display.
type ProductDTO struct {
	ProductID     string
	Name          string
	Description   string
	PurchasePrice float64
	SalePrice     float64
	Stock         int64
	MinStock      *int64
	Barcode       *int64
	SupplierID    string
	FamilyID      string
	LowStock      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ListFilter defines filtering options for listing products.
type ListFilter struct {
	SupplierID string
	FamilyID   string
	Limit      int
}

// SupplierDTO is a data transfer object for supplier queries.
type SupplierDTO struct {
	SupplierID string
	Name       string
	Phone      string
	Email      string
	Address    string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FamilyDTO is a data transfer object for family queries.
type FamilyDTO struct {
	FamilyID  string
	Name      string
	CreatedAt time.Time
}

// SaleLineDTO is one line item within a sale query result.
type SaleLineDTO struct {
	ProductID string
	Name      string
	UnitPrice float64
	Quantity  int64
	Subtotal  float64
}

// SaleDTO is a data transfer object for sale queries.
type SaleDTO struct {
	SaleID string
	UserID string
	Lines  []SaleLineDTO
	Total  float64
	Status string
	Date   time.Time
}

// EventDTO is a data transfer object for outbox inspection.
type EventDTO struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string
	Status      string
	CreatedAt   time.Time
}

// ProductReadModel defines the interface for product queries.
// Read models can bypass the domain layer for performance.
type ProductReadModel interface {
	// GetProductByID retrieves a product DTO by ID
	GetProductByID(ctx context.Context, productID string) (*ProductDTO, error)

	// GetProductByBarcode retrieves a product DTO by its barcode
	GetProductByBarcode(ctx context.Context, barcode int64) (*ProductDTO, error)

	// ListProducts retrieves products with optional supplier/family filters
	ListProducts(ctx context.Context, filter *ListFilter) ([]*ProductDTO, error)

	// ListLowStock retrieves products at or below their minimum-stock threshold
	ListLowStock(ctx context.Context) ([]*ProductDTO, error)
}

// SalesReadModel defines the interface for sales-history queries.
type SalesReadModel interface {
	// GetSaleByID retrieves a sale DTO by ID
	GetSaleByID(ctx context.Context, saleID string) (*SaleDTO, error)

	// ListSales retrieves sales ordered by date, newest first
	ListSales(ctx context.Context, limit int) ([]*SaleDTO, error)
}

// DirectoryReadModel defines the interface for supplier/family listings
// (the pickers the bulk price update scope selector is populated from).
type DirectoryReadModel interface {
	// ListSuppliers retrieves all suppliers ordered by name
	ListSuppliers(ctx context.Context) ([]*SupplierDTO, error)

	// GetSupplierByID retrieves a supplier DTO by ID
	GetSupplierByID(ctx context.Context, supplierID string) (*SupplierDTO, error)

	// ListFamilies retrieves all families ordered by name
	ListFamilies(ctx context.Context) ([]*FamilyDTO, error)
}

// EventsReadModel defines the interface for outbox event queries.
type EventsReadModel interface {
	// ListEvents retrieves outbox events, optionally filtered by status
	ListEvents(ctx context.Context, status string, limit int) ([]*EventDTO, error)
}
