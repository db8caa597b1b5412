package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/inventory-service/internal/pkg/clock"
)

func money(t *testing.T, numerator, denominator int64) *Money {
	t.Helper()
	m, err := NewMoney(numerator, denominator)
	require.NoError(t, err)
	return m
}

func newTestProduct(t *testing.T) *Product {
	t.Helper()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p, err := NewProduct(
		"prod-1",
		"Hammer",
		"claw hammer",
		money(t, 1000, 100), // 10.00
		money(t, 1550, 100), // 15.50
		20,
		nil,
		nil,
		"sup-1",
		"fam-1",
		now,
		clock.NewMockClock(now),
	)
	require.NoError(t, err)
	p.ClearEvents()
	p.Changes().Clear()
	return p
}

func TestNewProduct(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	purchase := money(t, 1000, 100)
	sale := money(t, 1500, 100)

	t.Run("valid product", func(t *testing.T) {
		p, err := NewProduct("prod-1", "Hammer", "", purchase, sale, 5, nil, nil, "sup-1", "", now, clk)
		require.NoError(t, err)
		assert.Equal(t, "prod-1", p.ID())
		assert.Equal(t, int64(5), p.Stock())
		assert.True(t, p.Changes().HasChanges())

		events := p.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "product.created", events[0].EventType())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := NewProduct("p", "", "", purchase, sale, 5, nil, nil, "sup-1", "", now, clk)
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("empty supplier rejected", func(t *testing.T) {
		_, err := NewProduct("p", "Hammer", "", purchase, sale, 5, nil, nil, "", "", now, clk)
		assert.ErrorIs(t, err, ErrEmptySupplier)
	})

	t.Run("non-positive purchase price rejected", func(t *testing.T) {
		_, err := NewProduct("p", "Hammer", "", money(t, 0, 1), sale, 5, nil, nil, "sup-1", "", now, clk)
		assert.ErrorIs(t, err, ErrInvalidPurchasePrice)
	})

	t.Run("sale price not above purchase rejected", func(t *testing.T) {
		_, err := NewProduct("p", "Hammer", "", purchase, purchase, 5, nil, nil, "sup-1", "", now, clk)
		assert.ErrorIs(t, err, ErrInvalidSalePrice)
	})

	t.Run("negative stock rejected", func(t *testing.T) {
		_, err := NewProduct("p", "Hammer", "", purchase, sale, -1, nil, nil, "sup-1", "", now, clk)
		assert.ErrorIs(t, err, ErrInvalidStock)
	})
}

func TestProduct_Margin(t *testing.T) {
	p := newTestProduct(t)
	assert.Equal(t, "5.50", p.Margin().String())
}

func TestProduct_SetPrices(t *testing.T) {
	t.Run("valid price change", func(t *testing.T) {
		p := newTestProduct(t)
		err := p.SetPrices(money(t, 1200, 100), money(t, 1800, 100))
		require.NoError(t, err)
		assert.Equal(t, "12.00", p.PurchasePrice().String())
		assert.True(t, p.Changes().Dirty(FieldPurchasePrice))
		assert.True(t, p.Changes().Dirty(FieldSalePrice))
	})

	t.Run("invariant enforced on explicit writes", func(t *testing.T) {
		p := newTestProduct(t)
		err := p.SetPrices(money(t, 1200, 100), money(t, 1100, 100))
		assert.ErrorIs(t, err, ErrInvalidSalePrice)
	})
}

func TestProduct_ApplyPriceAdjustment(t *testing.T) {
	t.Run("percentage preserves margin", func(t *testing.T) {
		p := newTestProduct(t) // purchase 10.00, sale 15.50, margin 5.50
		marginBefore := p.Margin()

		err := p.ApplyPriceAdjustment(PriceAdjustment{Mode: AdjustPercentage, Value: 10})
		require.NoError(t, err)

		assert.Equal(t, "11.00", p.PurchasePrice().String())
		assert.Equal(t, "16.50", p.SalePrice().String())
		assert.True(t, marginBefore.Equals(p.Margin()))
	})

	t.Run("fixed preserves margin", func(t *testing.T) {
		p := newTestProduct(t)

		err := p.ApplyPriceAdjustment(PriceAdjustment{Mode: AdjustFixed, Value: 2.50})
		require.NoError(t, err)

		assert.Equal(t, "12.50", p.PurchasePrice().String())
		assert.Equal(t, "18.00", p.SalePrice().String())
	})

	t.Run("marks price fields dirty", func(t *testing.T) {
		p := newTestProduct(t)

		require.NoError(t, p.ApplyPriceAdjustment(PriceAdjustment{Mode: AdjustFixed, Value: 1}))
		assert.True(t, p.Changes().Dirty(FieldPurchasePrice))
		assert.True(t, p.Changes().Dirty(FieldSalePrice))
		assert.False(t, p.Changes().Dirty(FieldName))
	})

	t.Run("decrease below invariant passes through", func(t *testing.T) {
		p := newTestProduct(t)

		// purchase goes negative, sale keeps the 5.50 margin
		err := p.ApplyPriceAdjustment(PriceAdjustment{Mode: AdjustFixed, Value: -12})
		require.NoError(t, err)
		assert.Equal(t, "-2.00", p.PurchasePrice().String())
		assert.Equal(t, "3.50", p.SalePrice().String())
	})
}

func TestProduct_SetStock(t *testing.T) {
	p := newTestProduct(t)

	require.NoError(t, p.SetStock(3))
	assert.Equal(t, int64(3), p.Stock())

	assert.ErrorIs(t, p.SetStock(-1), ErrInvalidStock)
}

func TestProduct_FinalizeUpdate(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("emits one event when dirty", func(t *testing.T) {
		p := newTestProduct(t)
		require.NoError(t, p.SetName("Sledgehammer"))

		p.FinalizeUpdate(now)

		events := p.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "product.updated", events[0].EventType())
		assert.Equal(t, "prod-1", events[0].AggregateID())
	})

	t.Run("no event without changes", func(t *testing.T) {
		p := newTestProduct(t)
		p.FinalizeUpdate(now)
		assert.Empty(t, p.DomainEvents())
	})
}

func TestProduct_IsBelowMinStock(t *testing.T) {
	p := newTestProduct(t)

	assert.False(t, p.IsBelowMinStock(), "no threshold set")

	threshold := int64(25)
	p.SetMinStock(&threshold)
	assert.True(t, p.IsBelowMinStock())

	threshold = 5
	p.SetMinStock(&threshold)
	assert.False(t, p.IsBelowMinStock())
}
