package domain

import (
	"fmt"
)

// SaleStatus is the lifecycle status of a sale. No cancellation or refund
// state is modeled; every registered sale is completed.
type SaleStatus string

const SaleCompleted SaleStatus = "completed"

// LineItem is one product entry within a sale, carrying a quantity and a
// price snapshot taken at cart time.
type LineItem struct {
	ProductID string
	Name      string
	UnitPrice *Money
	Quantity  int64
	Subtotal  *Money
}

// Sale is an immutable record of a completed checkout. It is created only
// through NewSale and never mutated after persistence. The persisted
// timestamp is assigned by the store at commit time, so the aggregate does
// not carry one.
type Sale struct {
	id             string
	userID         string
	lines          []LineItem
	total          *Money
	status         SaleStatus
	idempotencyKey string
}

// NewSale validates cart lines and builds a Sale. All lines must pass before
// any of them is accepted (fail-fast, no partial state). The total is always
// recomputed from the lines server-side; a caller-supplied total differing
// from the recomputed sum by more than one cent is rejected rather than
// trusted.
func NewSale(id string, lines []LineItem, claimedTotal *Money, userID, idempotencyKey string) (*Sale, error) {
	if len(lines) == 0 {
		return nil, ErrEmptySale
	}

	total, _ := NewMoney(0, 1)
	built := make([]LineItem, 0, len(lines))
	for _, line := range lines {
		if line.ProductID == "" {
			return nil, fmt.Errorf("line %q: %w", line.Name, ErrProductNotFound)
		}
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("product %s: %w", lineLabel(line), ErrInvalidQuantity)
		}
		if line.UnitPrice == nil || !line.UnitPrice.IsPositive() {
			return nil, fmt.Errorf("product %s: %w", lineLabel(line), ErrInvalidUnitPrice)
		}

		subtotal := line.UnitPrice.MultiplyByInt(line.Quantity).RoundToCents()

		built = append(built, LineItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice.Copy(),
			Quantity:  line.Quantity,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	if claimedTotal != nil {
		diff := total.Subtract(claimedTotal)
		if diff.IsNegative() {
			diff = claimedTotal.Subtract(total)
		}
		cent, _ := NewMoney(1, 100)
		if diff.GreaterThan(cent) {
			return nil, fmt.Errorf("claimed %s, computed %s: %w", claimedTotal, total, ErrTotalMismatch)
		}
	}

	return &Sale{
		id:             id,
		userID:         userID,
		lines:          built,
		total:          total,
		status:         SaleCompleted,
		idempotencyKey: idempotencyKey,
	}, nil
}

// Getters
func (s *Sale) ID() string             { return s.id }
func (s *Sale) UserID() string         { return s.userID }
func (s *Sale) Lines() []LineItem      { return s.lines }
func (s *Sale) Total() *Money          { return s.total.Copy() }
func (s *Sale) Status() SaleStatus     { return s.status }
func (s *Sale) IdempotencyKey() string { return s.idempotencyKey }

func lineLabel(line LineItem) string {
	if line.Name != "" {
		return line.Name
	}
	return line.ProductID
}
