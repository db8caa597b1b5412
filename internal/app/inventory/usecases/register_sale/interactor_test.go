package register_sale

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/usecasetest"
	"github.com/light-bringer/inventory-service/internal/pkg/clock"
	"github.com/light-bringer/inventory-service/internal/pkg/committer"
)

func stockedProduct(t *testing.T, id string, stock int64) *domain.Product {
	t.Helper()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	purchase, err := domain.NewMoney(500, 100)
	require.NoError(t, err)
	sale, err := domain.NewMoney(900, 100)
	require.NoError(t, err)
	return domain.ReconstructProduct(
		id, "product "+id, "", purchase, sale, stock, nil, nil,
		"sup-1", "", now, now, clock.NewMockClock(now),
	)
}

func priceOf(t *testing.T, cents int64) *domain.Money {
	t.Helper()
	m, err := domain.NewMoney(cents, 100)
	require.NoError(t, err)
	return m
}

func newFixture(t *testing.T) (*usecasetest.SaleRepo, *usecasetest.ProductRepo, *usecasetest.OutboxRepo, *usecasetest.Applier, *Interactor) {
	t.Helper()
	saleRepo := usecasetest.NewSaleRepo()
	productRepo := usecasetest.NewProductRepo()
	outbox := usecasetest.NewOutboxRepo()
	applier := usecasetest.NewApplier()
	return saleRepo, productRepo, outbox, applier, NewInteractor(saleRepo, productRepo, outbox, applier)
}

func TestExecute_RegistersSaleWithStockDemands(t *testing.T) {
	saleRepo, productRepo, outbox, applier, interactor := newFixture(t)
	productRepo.Products["p1"] = stockedProduct(t, "p1", 10)
	productRepo.Products["p2"] = stockedProduct(t, "p2", 4)

	resp, err := interactor.Execute(context.Background(), &Request{
		Lines: []RequestLine{
			{ProductID: "p1", Name: "a", UnitPrice: priceOf(t, 900), Quantity: 2},
			{ProductID: "p2", Name: "b", UnitPrice: priceOf(t, 450), Quantity: 4},
		},
		UserID: "user-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.SaleID)

	require.Len(t, saleRepo.Inserted, 1)
	assert.Equal(t, "36.00", saleRepo.Inserted[0].Total().String())

	// Commit went through the stock guard with one demand per product
	require.Len(t, applier.GuardedDemands, 1)
	assert.ElementsMatch(t, []committer.StockDemand{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 4},
	}, applier.GuardedDemands[0])

	require.Len(t, outbox.Events, 1)
	assert.Equal(t, "sale.registered", outbox.Events[0].EventType)
	assert.Empty(t, applier.Applied, "must not use the unguarded path")
}

func TestExecute_InsufficientStockPreValidation(t *testing.T) {
	_, productRepo, _, applier, interactor := newFixture(t)
	productRepo.Products["p1"] = stockedProduct(t, "p1", 1)

	_, err := interactor.Execute(context.Background(), &Request{
		Lines:  []RequestLine{{ProductID: "p1", Name: "a", UnitPrice: priceOf(t, 900), Quantity: 2}},
		UserID: "user-1",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, applier.GuardedPlans)
}

func TestExecute_DuplicateProductLinesCheckedAgainstCombinedQuantity(t *testing.T) {
	_, productRepo, _, applier, interactor := newFixture(t)
	productRepo.Products["p1"] = stockedProduct(t, "p1", 10)

	// Each line alone fits within stock 10; together they do not.
	_, err := interactor.Execute(context.Background(), &Request{
		Lines: []RequestLine{
			{ProductID: "p1", Name: "a", UnitPrice: priceOf(t, 900), Quantity: 6},
			{ProductID: "p1", Name: "a", UnitPrice: priceOf(t, 900), Quantity: 6},
		},
		UserID: "user-1",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, applier.GuardedPlans)
}

func TestExecute_DuplicateProductLinesAggregateIntoOneDemand(t *testing.T) {
	saleRepo, productRepo, _, applier, interactor := newFixture(t)
	productRepo.Products["p1"] = stockedProduct(t, "p1", 10)

	resp, err := interactor.Execute(context.Background(), &Request{
		Lines: []RequestLine{
			{ProductID: "p1", Name: "a", UnitPrice: priceOf(t, 900), Quantity: 3},
			{ProductID: "p1", Name: "a", UnitPrice: priceOf(t, 900), Quantity: 4},
		},
		UserID: "user-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.SaleID)

	// The sale keeps both lines; the guard sees a single combined demand,
	// so both decrements land instead of the last one winning.
	require.Len(t, saleRepo.Inserted, 1)
	assert.Len(t, saleRepo.Inserted[0].Lines(), 2)
	require.Len(t, applier.GuardedDemands, 1)
	assert.Equal(t, []committer.StockDemand{{ProductID: "p1", Quantity: 7}}, applier.GuardedDemands[0])
}

func TestExecute_ShortfallAtCommitMapsToInsufficientStock(t *testing.T) {
	_, productRepo, _, applier, interactor := newFixture(t)
	productRepo.Products["p1"] = stockedProduct(t, "p1", 5)
	applier.GuardErr = &committer.StockShortfallError{ProductID: "p1", Requested: 2, Available: 1}

	_, err := interactor.Execute(context.Background(), &Request{
		Lines:  []RequestLine{{ProductID: "p1", Name: "a", UnitPrice: priceOf(t, 900), Quantity: 2}},
		UserID: "user-1",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestExecute_UnknownProductRejected(t *testing.T) {
	_, _, _, _, interactor := newFixture(t)

	_, err := interactor.Execute(context.Background(), &Request{
		Lines:  []RequestLine{{ProductID: "ghost", Name: "a", UnitPrice: priceOf(t, 900), Quantity: 1}},
		UserID: "user-1",
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestExecute_TotalMismatchRejected(t *testing.T) {
	_, productRepo, _, _, interactor := newFixture(t)
	productRepo.Products["p1"] = stockedProduct(t, "p1", 10)

	_, err := interactor.Execute(context.Background(), &Request{
		Lines:  []RequestLine{{ProductID: "p1", Name: "a", UnitPrice: priceOf(t, 900), Quantity: 2}},
		Total:  priceOf(t, 9999),
		UserID: "user-1",
	})
	assert.ErrorIs(t, err, domain.ErrTotalMismatch)
}

func TestExecute_IdempotentRetryReturnsExistingSale(t *testing.T) {
	saleRepo, productRepo, _, applier, interactor := newFixture(t)
	productRepo.Products["p1"] = stockedProduct(t, "p1", 10)
	saleRepo.ByKey["retry-7"] = "sale-previous"

	resp, err := interactor.Execute(context.Background(), &Request{
		Lines:          []RequestLine{{ProductID: "p1", Name: "a", UnitPrice: priceOf(t, 900), Quantity: 1}},
		UserID:         "user-1",
		IdempotencyKey: "retry-7",
	})
	require.NoError(t, err)
	assert.Equal(t, "sale-previous", resp.SaleID)
	assert.Empty(t, saleRepo.Inserted, "no new sale written")
	assert.Empty(t, applier.GuardedPlans)
}

func TestExecute_EmptySaleRejected(t *testing.T) {
	_, _, _, _, interactor := newFixture(t)

	_, err := interactor.Execute(context.Background(), &Request{UserID: "user-1"})
	assert.ErrorIs(t, err, domain.ErrEmptySale)
}
