package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid money creation", func(t *testing.T) {
		m, err := NewMoney(100, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(100), m.Numerator())
		assert.Equal(t, int64(1), m.Denominator())
	})

	t.Run("zero denominator returns error", func(t *testing.T) {
		_, err := NewMoney(100, 0)
		assert.Error(t, err)
	})

	t.Run("negative numerator allowed", func(t *testing.T) {
		m, err := NewMoney(-100, 1)
		require.NoError(t, err)
		assert.True(t, m.IsNegative())
	})
}

func TestNewMoneyFromFloat(t *testing.T) {
	t.Run("rounds to cents", func(t *testing.T) {
		m, err := NewMoneyFromFloat(12.345)
		require.NoError(t, err)
		assert.Equal(t, "12.35", m.String())
	})

	t.Run("exact two decimal value", func(t *testing.T) {
		m, err := NewMoneyFromFloat(19.99)
		require.NoError(t, err)
		assert.Equal(t, "19.99", m.String())
		assert.Equal(t, int64(1999), m.Numerator())
		assert.Equal(t, int64(100), m.Denominator())
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	m1, _ := NewMoney(100, 1)
	m2, _ := NewMoney(50, 1)

	assert.Equal(t, 150.0, m1.Add(m2).Float64())
	assert.Equal(t, 50.0, m1.Subtract(m2).Float64())
	assert.Equal(t, 300.0, m1.MultiplyByInt(3).Float64())
}

func TestMoney_RoundToCents(t *testing.T) {
	t.Run("rounds half up", func(t *testing.T) {
		m, _ := NewMoney(12345, 1000) // 12.345
		assert.Equal(t, "12.35", m.RoundToCents().String())
	})

	t.Run("rounds down below half", func(t *testing.T) {
		m, _ := NewMoney(12344, 1000) // 12.344
		assert.Equal(t, "12.34", m.RoundToCents().String())
	})

	t.Run("rounds half away from zero for negatives", func(t *testing.T) {
		m, _ := NewMoney(-125, 1000) // -0.125
		assert.Equal(t, "-0.13", m.RoundToCents().String())
	})

	t.Run("whole cents pass through", func(t *testing.T) {
		m, _ := NewMoney(1999, 100)
		assert.True(t, m.Equals(m.RoundToCents()))
	})
}

func TestMoney_Comparisons(t *testing.T) {
	small, _ := NewMoney(10, 1)
	large, _ := NewMoney(20, 1)
	equal, _ := NewMoney(100, 10)

	assert.True(t, small.LessThan(large))
	assert.True(t, large.GreaterThan(small))
	assert.True(t, small.Equals(equal))
	assert.False(t, small.Equals(large))
}

func TestMoney_Signs(t *testing.T) {
	zero, _ := NewMoney(0, 1)
	positive, _ := NewMoney(5, 1)
	negative, _ := NewMoney(-5, 1)

	assert.True(t, zero.IsZero())
	assert.True(t, positive.IsPositive())
	assert.True(t, negative.IsNegative())
	assert.False(t, zero.IsPositive())
	assert.False(t, zero.IsNegative())
}

func TestMoney_Copy(t *testing.T) {
	original, _ := NewMoney(100, 1)
	copied := original.Copy()

	modified := copied.Add(copied)
	assert.Equal(t, 100.0, original.Float64())
	assert.Equal(t, 200.0, modified.Float64())
}
