package domain

import "time"

// Family is a product category. Deletion behavior is a wiring-time policy
// choice, see FamilyDeletePolicy.
type Family struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// NewFamily creates a Family, validating required fields.
func NewFamily(id, name string, now time.Time) (*Family, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Family{ID: id, Name: name, CreatedAt: now}, nil
}

// FamilyDeletePolicy selects how family deletion treats referencing products.
// The restrict policy mirrors the supplier deletion guard; the detach policy
// clears family references in the same atomic batch as the delete.
type FamilyDeletePolicy string

const (
	FamilyDeleteRestrict FamilyDeletePolicy = "restrict"
	FamilyDeleteDetach   FamilyDeletePolicy = "detach"
)
