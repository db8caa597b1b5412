package bulk_update_prices

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/usecasetest"
	"github.com/light-bringer/inventory-service/internal/pkg/clock"
)

func testProduct(t *testing.T, id string, purchaseCents, saleCents int64) *domain.Product {
	t.Helper()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	purchase, err := domain.NewMoney(purchaseCents, 100)
	require.NoError(t, err)
	sale, err := domain.NewMoney(saleCents, 100)
	require.NoError(t, err)
	return domain.ReconstructProduct(
		id, "product "+id, "", purchase, sale, 10, nil, nil,
		"sup-1", "fam-1", now, now, clock.NewMockClock(now),
	)
}

func TestExecute_AdjustsEveryProductInScope(t *testing.T) {
	repo := usecasetest.NewProductRepo()
	repo.ScopeProducts = []*domain.Product{
		testProduct(t, "p1", 1000, 1550), // margin 5.50
		testProduct(t, "p2", 2000, 2600), // margin 6.00
	}
	outbox := usecasetest.NewOutboxRepo()
	applier := usecasetest.NewApplier()
	interactor := NewInteractor(repo, outbox, applier, clock.NewMockClock(time.Now()))

	resp, err := interactor.Execute(context.Background(), &Request{
		Scope:      domain.Scope{Kind: domain.ScopeSupplier, ID: "sup-1"},
		Adjustment: domain.PriceAdjustment{Mode: domain.AdjustPercentage, Value: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.UpdatedCount)

	// Margins survive the adjustment
	assert.Equal(t, "11.00", repo.ScopeProducts[0].PurchasePrice().String())
	assert.Equal(t, "16.50", repo.ScopeProducts[0].SalePrice().String())
	assert.Equal(t, "22.00", repo.ScopeProducts[1].PurchasePrice().String())
	assert.Equal(t, "28.00", repo.ScopeProducts[1].SalePrice().String())

	// One commit: two product updates plus the bulk event
	require.Len(t, applier.Applied, 1)
	assert.Equal(t, 3, applier.Applied[0].Count())

	require.Len(t, outbox.Events, 1)
	assert.Equal(t, "product.prices.bulk_updated", outbox.Events[0].EventType)
}

func TestExecute_EmptyScopeIsNoOp(t *testing.T) {
	repo := usecasetest.NewProductRepo()
	applier := usecasetest.NewApplier()
	interactor := NewInteractor(repo, usecasetest.NewOutboxRepo(), applier, clock.NewMockClock(time.Now()))

	resp, err := interactor.Execute(context.Background(), &Request{
		Scope:      domain.Scope{Kind: domain.ScopeFamily, ID: "fam-9"},
		Adjustment: domain.PriceAdjustment{Mode: domain.AdjustFixed, Value: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.UpdatedCount)
	assert.Empty(t, applier.Applied)
}

func TestExecute_InvalidScopeRejected(t *testing.T) {
	interactor := NewInteractor(usecasetest.NewProductRepo(), usecasetest.NewOutboxRepo(), usecasetest.NewApplier(), clock.NewMockClock(time.Now()))

	_, err := interactor.Execute(context.Background(), &Request{
		Scope:      domain.Scope{Kind: "category", ID: "x"},
		Adjustment: domain.PriceAdjustment{Mode: domain.AdjustFixed, Value: 1},
	})
	assert.Error(t, err)
}

func TestExecute_ListErrorPropagates(t *testing.T) {
	repo := usecasetest.NewProductRepo()
	repo.ListErr = errors.New("spanner unavailable")
	applier := usecasetest.NewApplier()
	interactor := NewInteractor(repo, usecasetest.NewOutboxRepo(), applier, clock.NewMockClock(time.Now()))

	_, err := interactor.Execute(context.Background(), &Request{
		Scope:      domain.Scope{Kind: domain.ScopeSupplier, ID: "sup-1"},
		Adjustment: domain.PriceAdjustment{Mode: domain.AdjustFixed, Value: 1},
	})
	require.Error(t, err)
	assert.Empty(t, applier.Applied)
}

func TestExecute_CommitErrorNothingReported(t *testing.T) {
	repo := usecasetest.NewProductRepo()
	repo.ScopeProducts = []*domain.Product{testProduct(t, "p1", 1000, 1550)}
	applier := usecasetest.NewApplier()
	applier.Err = errors.New("aborted")
	interactor := NewInteractor(repo, usecasetest.NewOutboxRepo(), applier, clock.NewMockClock(time.Now()))

	resp, err := interactor.Execute(context.Background(), &Request{
		Scope:      domain.Scope{Kind: domain.ScopeSupplier, ID: "sup-1"},
		Adjustment: domain.PriceAdjustment{Mode: domain.AdjustPercentage, Value: 5},
	})
	require.Error(t, err)
	assert.Nil(t, resp)
}
