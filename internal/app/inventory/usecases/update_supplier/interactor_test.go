package update_supplier

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

func strPtr(s string) *string { return &s }

func TestExecute_PatchesFieldsAndEmitsEvent(t *testing.T) {
	supplierRepo := usecasetest.NewSupplierRepo()
	supplierRepo.Suppliers["sup-1"] = &domain.Supplier{ID: "sup-1", Name: "Acme", Phone: "111"}
	outbox := usecasetest.NewOutboxRepo()
	applier := usecasetest.NewApplier()
	interactor := NewInteractor(supplierRepo, outbox, applier, clock.NewMockClock(time.Now()))

	err := interactor.Execute(context.Background(), &Request{
		SupplierID: "sup-1",
		Phone:      strPtr("222"),
	})
	require.NoError(t, err)

	assert.Equal(t, "222", supplierRepo.Suppliers["sup-1"].Phone)
	assert.Equal(t, "Acme", supplierRepo.Suppliers["sup-1"].Name, "untouched field kept")

	require.Len(t, applier.Applied, 1)
	assert.Equal(t, 2, applier.Applied[0].Count(), "update plus the outbox event")
	require.Len(t, outbox.Events, 1)
	assert.Equal(t, "supplier.updated", outbox.Events[0].EventType)
	assert.Equal(t, "sup-1", outbox.Events[0].AggregateID)
}

func TestExecute_EmptyNameRejected(t *testing.T) {
	supplierRepo := usecasetest.NewSupplierRepo()
	supplierRepo.Suppliers["sup-1"] = &domain.Supplier{ID: "sup-1", Name: "Acme"}
	applier := usecasetest.NewApplier()
	interactor := NewInteractor(supplierRepo, usecasetest.NewOutboxRepo(), applier, clock.NewMockClock(time.Now()))

	err := interactor.Execute(context.Background(), &Request{SupplierID: "sup-1", Name: strPtr("")})
	assert.ErrorIs(t, err, domain.ErrEmptyName)
	assert.Empty(t, applier.Applied)
}

func TestExecute_UnknownSupplier(t *testing.T) {
	interactor := NewInteractor(usecasetest.NewSupplierRepo(), usecasetest.NewOutboxRepo(), usecasetest.NewApplier(), clock.NewMockClock(time.Now()))

	err := interactor.Execute(context.Background(), &Request{SupplierID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
}
