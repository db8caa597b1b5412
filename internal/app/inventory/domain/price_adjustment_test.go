package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope_Validate(t *testing.T) {
	t.Run("supplier scope", func(t *testing.T) {
		assert.NoError(t, Scope{Kind: ScopeSupplier, ID: "sup-1"}.Validate())
	})

	t.Run("family scope", func(t *testing.T) {
		assert.NoError(t, Scope{Kind: ScopeFamily, ID: "fam-1"}.Validate())
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		assert.Error(t, Scope{Kind: "category", ID: "x"}.Validate())
	})

	t.Run("empty id rejected", func(t *testing.T) {
		assert.Error(t, Scope{Kind: ScopeSupplier}.Validate())
	})
}

func TestPriceAdjustment_Validate(t *testing.T) {
	t.Run("negative value is a valid decrease", func(t *testing.T) {
		assert.NoError(t, PriceAdjustment{Mode: AdjustPercentage, Value: -10}.Validate())
	})

	t.Run("NaN rejected", func(t *testing.T) {
		err := PriceAdjustment{Mode: AdjustFixed, Value: math.NaN()}.Validate()
		assert.ErrorIs(t, err, ErrInvalidAdjustment)
	})

	t.Run("infinity rejected", func(t *testing.T) {
		err := PriceAdjustment{Mode: AdjustPercentage, Value: math.Inf(1)}.Validate()
		assert.ErrorIs(t, err, ErrInvalidAdjustment)
	})

	t.Run("unknown mode rejected", func(t *testing.T) {
		assert.Error(t, PriceAdjustment{Mode: "multiply", Value: 2}.Validate())
	})
}

func TestPriceAdjustment_ApplyTo(t *testing.T) {
	t.Run("percentage increase", func(t *testing.T) {
		purchase, _ := NewMoney(1000, 100) // 10.00
		adj := PriceAdjustment{Mode: AdjustPercentage, Value: 10}

		result := adj.ApplyTo(purchase)
		assert.Equal(t, "11.00", result.String())
	})

	t.Run("percentage decrease", func(t *testing.T) {
		purchase, _ := NewMoney(1000, 100)
		adj := PriceAdjustment{Mode: AdjustPercentage, Value: -25}

		result := adj.ApplyTo(purchase)
		assert.Equal(t, "7.50", result.String())
	})

	t.Run("percentage result rounds to cents", func(t *testing.T) {
		purchase, _ := NewMoney(999, 100) // 9.99
		adj := PriceAdjustment{Mode: AdjustPercentage, Value: 10}

		// 9.99 * 1.10 = 10.989 -> 10.99
		result := adj.ApplyTo(purchase)
		assert.Equal(t, "10.99", result.String())
	})

	t.Run("fixed increase", func(t *testing.T) {
		purchase, _ := NewMoney(1050, 100) // 10.50
		adj := PriceAdjustment{Mode: AdjustFixed, Value: 2.25}

		result := adj.ApplyTo(purchase)
		assert.Equal(t, "12.75", result.String())
	})

	t.Run("fixed zero is a no-op", func(t *testing.T) {
		purchase, _ := NewMoney(1050, 100)
		adj := PriceAdjustment{Mode: AdjustFixed, Value: 0}

		result := adj.ApplyTo(purchase)
		assert.True(t, purchase.Equals(result))
	})

	t.Run("fixed decrease below zero passes through", func(t *testing.T) {
		purchase, _ := NewMoney(100, 100) // 1.00
		adj := PriceAdjustment{Mode: AdjustFixed, Value: -5}

		result := adj.ApplyTo(purchase)
		assert.Equal(t, "-4.00", result.String())
	})

	t.Run("percentage compounds across runs", func(t *testing.T) {
		purchase, _ := NewMoney(10000, 100) // 100.00
		adj := PriceAdjustment{Mode: AdjustPercentage, Value: 10}

		once := adj.ApplyTo(purchase)
		twice := adj.ApplyTo(once)
		require.Equal(t, "110.00", once.String())
		// 110 * 1.10 = 121, not 120
		assert.Equal(t, "121.00", twice.String())
	})
}
