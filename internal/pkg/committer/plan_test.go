package committer

import (
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
)

func TestCommitPlan_Add(t *testing.T) {
	plan := NewPlan()
	assert.True(t, plan.IsEmpty())

	plan.Add(spanner.Delete("products", spanner.Key{"p1"}))
	assert.False(t, plan.IsEmpty())
	assert.Equal(t, 1, plan.Count())
}

func TestCommitPlan_AddNilIgnored(t *testing.T) {
	plan := NewPlan()
	plan.Add(nil)

	assert.True(t, plan.IsEmpty())
	assert.Equal(t, 0, plan.Count())
}

func TestCommitPlan_AddMultiple(t *testing.T) {
	plan := NewPlan()
	plan.AddMultiple([]*spanner.Mutation{
		spanner.Delete("products", spanner.Key{"p1"}),
		nil,
		spanner.Delete("products", spanner.Key{"p2"}),
	})

	assert.Equal(t, 2, plan.Count())
	assert.Len(t, plan.Mutations(), 2)
}

func TestMergeDemands_CombinesSameProduct(t *testing.T) {
	merged := mergeDemands([]StockDemand{
		{ProductID: "p1", Quantity: 6},
		{ProductID: "p2", Quantity: 1},
		{ProductID: "p1", Quantity: 6},
	})

	assert.Equal(t, []StockDemand{
		{ProductID: "p1", Quantity: 12},
		{ProductID: "p2", Quantity: 1},
	}, merged)
}

func TestMergeDemands_DistinctProductsUntouched(t *testing.T) {
	demands := []StockDemand{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 4},
	}

	assert.Equal(t, demands, mergeDemands(demands))
}

func TestStockShortfallError_Message(t *testing.T) {
	err := &StockShortfallError{ProductID: "p1", Requested: 5, Available: 2}

	assert.Contains(t, err.Error(), "p1")
	assert.Contains(t, err.Error(), "requested 5")
	assert.Contains(t, err.Error(), "available 2")
}
