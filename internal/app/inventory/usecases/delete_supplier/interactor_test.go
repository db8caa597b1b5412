package delete_supplier

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/usecasetest"
	"github.com/light-bringer/inventory-service/internal/pkg/clock"
)

func supplierProduct(t *testing.T, id, supplierID string) *domain.Product {
	t.Helper()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	purchase, err := domain.NewMoney(500, 100)
	require.NoError(t, err)
	sale, err := domain.NewMoney(900, 100)
	require.NoError(t, err)
	return domain.ReconstructProduct(
		id, "product "+id, "", purchase, sale, 1, nil, nil,
		supplierID, "", now, now, clock.NewMockClock(now),
	)
}

func TestExecute_DeletesUnreferencedSupplier(t *testing.T) {
	supplierRepo := usecasetest.NewSupplierRepo()
	supplierRepo.Suppliers["sup-1"] = &domain.Supplier{ID: "sup-1", Name: "Acme"}
	outbox := usecasetest.NewOutboxRepo()
	applier := usecasetest.NewApplier()
	interactor := NewInteractor(supplierRepo, usecasetest.NewProductRepo(), outbox, applier, clock.NewMockClock(time.Now()))

	err := interactor.Execute(context.Background(), &Request{SupplierID: "sup-1"})
	require.NoError(t, err)

	require.Len(t, applier.Applied, 1)
	assert.Equal(t, 2, applier.Applied[0].Count(), "delete plus the outbox event")
	require.Len(t, outbox.Events, 1)
	assert.Equal(t, "supplier.deleted", outbox.Events[0].EventType)
}

func TestExecute_ReferencedSupplierRejected(t *testing.T) {
	supplierRepo := usecasetest.NewSupplierRepo()
	supplierRepo.Suppliers["sup-1"] = &domain.Supplier{ID: "sup-1", Name: "Acme"}
	productRepo := usecasetest.NewProductRepo()
	productRepo.Products["p1"] = supplierProduct(t, "p1", "sup-1")
	applier := usecasetest.NewApplier()
	interactor := NewInteractor(supplierRepo, productRepo, usecasetest.NewOutboxRepo(), applier, clock.NewMockClock(time.Now()))

	err := interactor.Execute(context.Background(), &Request{SupplierID: "sup-1"})
	assert.ErrorIs(t, err, domain.ErrSupplierInUse)
	assert.Empty(t, applier.Applied)
}

func TestExecute_UnknownSupplier(t *testing.T) {
	interactor := NewInteractor(usecasetest.NewSupplierRepo(), usecasetest.NewProductRepo(), usecasetest.NewOutboxRepo(), usecasetest.NewApplier(), clock.NewMockClock(time.Now()))

	err := interactor.Execute(context.Background(), &Request{SupplierID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
}
