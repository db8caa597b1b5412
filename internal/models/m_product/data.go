package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the products table.
type Data struct {
	ProductID                string
	Name                     string
	Description              string
	PurchasePriceNumerator   int64
	PurchasePriceDenominator int64
	SalePriceNumerator       int64
	SalePriceDenominator     int64
	Stock                    int64
	MinStock                 spanner.NullInt64
	Barcode                  spanner.NullInt64
	SupplierID               string
	FamilyID                 spanner.NullString
	CreatedAt                time.Time
	UpdatedAt                time.Time
}
