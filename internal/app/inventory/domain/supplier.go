package domain

import "time"

// Supplier is a lightweight aggregate: it carries no invariants of its own
// beyond a non-empty name. The deletion guard (no supplier removed while
// products reference it) lives in the delete usecase because it needs a
// store-side count.
type Supplier struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Address   string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSupplier creates a Supplier, validating required fields.
func NewSupplier(id, name, phone, email, address, notes string, now time.Time) (*Supplier, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Supplier{
		ID:        id,
		Name:      name,
		Phone:     phone,
		Email:     email,
		Address:   address,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
