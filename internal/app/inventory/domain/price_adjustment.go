package domain

import (
	"fmt"
	"math"
	"math/big"
)

// ScopeKind selects which foreign key a bulk price update filters on.
type ScopeKind string

const (
	ScopeSupplier ScopeKind = "supplier"
	ScopeFamily   ScopeKind = "family"
)

// Scope identifies the set of products a bulk price update applies to.
type Scope struct {
	Kind ScopeKind
	ID   string
}

// Validate checks the scope selector.
func (s Scope) Validate() error {
	if s.Kind != ScopeSupplier && s.Kind != ScopeFamily {
		return fmt.Errorf("unknown scope kind %q", s.Kind)
	}
	if s.ID == "" {
		return fmt.Errorf("scope id is required")
	}
	return nil
}

// AdjustmentMode selects how the purchase price is recomputed.
type AdjustmentMode string

const (
	AdjustPercentage AdjustmentMode = "percentage"
	AdjustFixed      AdjustmentMode = "fixed"
)

// PriceAdjustment describes a bulk change to purchase prices. The sign of
// Value is not constrained here: negative values are valid decreases, which
// keeps the adjustment reusable for discounts. Positivity is enforced at the
// API boundary instead.
type PriceAdjustment struct {
	Mode  AdjustmentMode
	Value float64
}

// Validate checks the adjustment for structural validity only.
func (a PriceAdjustment) Validate() error {
	if a.Mode != AdjustPercentage && a.Mode != AdjustFixed {
		return fmt.Errorf("unknown adjustment mode %q", a.Mode)
	}
	if math.IsNaN(a.Value) || math.IsInf(a.Value, 0) {
		return ErrInvalidAdjustment
	}
	return nil
}

// ApplyTo computes the new purchase price for the given current purchase
// price, rounded to cents. Percentage mode multiplies by (1 + value/100);
// fixed mode adds the value.
func (a PriceAdjustment) ApplyTo(purchase *Money) *Money {
	delta := ratFromFloat(a.Value)

	switch a.Mode {
	case AdjustPercentage:
		factor := new(big.Rat).Add(big.NewRat(1, 1), new(big.Rat).Quo(delta, big.NewRat(100, 1)))
		return purchase.MultiplyByRat(factor).RoundToCents()
	default: // AdjustFixed
		return purchase.Add(NewMoneyFromRat(delta)).RoundToCents()
	}
}

// ratFromFloat converts an adjustment value to an exact rational. Values
// arrive as JSON numbers, so the decimal-string round trip matches what the
// caller typed rather than the raw binary float.
func ratFromFloat(v float64) *big.Rat {
	rat, ok := new(big.Rat).SetString(fmt.Sprintf("%v", v))
	if !ok {
		return new(big.Rat).SetFloat64(v)
	}
	return rat
}
