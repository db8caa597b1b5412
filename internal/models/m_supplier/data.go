package m_supplier

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the suppliers table.
type Data struct {
	SupplierID string
	Name       string
	Phone      string
	Email      string
	Address    spanner.NullString
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
