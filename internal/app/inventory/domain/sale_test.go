package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleLine(t *testing.T, productID string, unitCents, quantity int64) LineItem {
	t.Helper()
	return LineItem{
		ProductID: productID,
		Name:      "item " + productID,
		UnitPrice: money(t, unitCents, 100),
		Quantity:  quantity,
	}
}

func TestNewSale(t *testing.T) {
	t.Run("computes subtotals and total", func(t *testing.T) {
		lines := []LineItem{
			saleLine(t, "p1", 250, 2), // 5.00
			saleLine(t, "p2", 199, 3), // 5.97
		}

		sale, err := NewSale("sale-1", lines, nil, "user-1", "")
		require.NoError(t, err)

		assert.Equal(t, "sale-1", sale.ID())
		assert.Equal(t, SaleCompleted, sale.Status())
		require.Len(t, sale.Lines(), 2)
		assert.Equal(t, "5.00", sale.Lines()[0].Subtotal.String())
		assert.Equal(t, "5.97", sale.Lines()[1].Subtotal.String())
		assert.Equal(t, "10.97", sale.Total().String())
	})

	t.Run("empty sale rejected", func(t *testing.T) {
		_, err := NewSale("sale-1", nil, nil, "user-1", "")
		assert.ErrorIs(t, err, ErrEmptySale)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		_, err := NewSale("sale-1", []LineItem{saleLine(t, "p1", 250, 0)}, nil, "user-1", "")
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		_, err := NewSale("sale-1", []LineItem{saleLine(t, "p1", 250, -2)}, nil, "user-1", "")
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("non-positive unit price rejected", func(t *testing.T) {
		line := saleLine(t, "p1", 0, 1)
		_, err := NewSale("sale-1", []LineItem{line}, nil, "user-1", "")
		assert.ErrorIs(t, err, ErrInvalidUnitPrice)
	})

	t.Run("missing product id rejected", func(t *testing.T) {
		line := saleLine(t, "", 250, 1)
		_, err := NewSale("sale-1", []LineItem{line}, nil, "user-1", "")
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("fail-fast on any bad line", func(t *testing.T) {
		lines := []LineItem{
			saleLine(t, "p1", 250, 2),
			saleLine(t, "p2", 199, 0),
		}
		_, err := NewSale("sale-1", lines, nil, "user-1", "")
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestNewSale_ClaimedTotal(t *testing.T) {
	lines := []LineItem{saleLine(t, "p1", 250, 2)} // 5.00

	t.Run("matching total accepted", func(t *testing.T) {
		sale, err := NewSale("sale-1", lines, money(t, 500, 100), "user-1", "")
		require.NoError(t, err)
		assert.Equal(t, "5.00", sale.Total().String())
	})

	t.Run("within one cent accepted", func(t *testing.T) {
		_, err := NewSale("sale-1", lines, money(t, 501, 100), "user-1", "")
		assert.NoError(t, err)
	})

	t.Run("beyond one cent rejected", func(t *testing.T) {
		_, err := NewSale("sale-1", lines, money(t, 510, 100), "user-1", "")
		assert.ErrorIs(t, err, ErrTotalMismatch)
	})

	t.Run("recomputed total wins over claimed", func(t *testing.T) {
		sale, err := NewSale("sale-1", lines, money(t, 501, 100), "user-1", "")
		require.NoError(t, err)
		assert.Equal(t, "5.00", sale.Total().String())
	})
}

func TestNewSale_IdempotencyKey(t *testing.T) {
	lines := []LineItem{saleLine(t, "p1", 250, 1)}

	sale, err := NewSale("sale-1", lines, nil, "user-1", "retry-key-7")
	require.NoError(t, err)
	assert.Equal(t, "retry-key-7", sale.IdempotencyKey())
}
