package create_family

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

func TestExecute_CreatesFamilyWithEvent(t *testing.T) {
	outbox := usecasetest.NewOutboxRepo()
	applier := usecasetest.NewApplier()
	interactor := NewInteractor(usecasetest.NewFamilyRepo(), outbox, applier, clock.NewMockClock(time.Now()))

	familyID, err := interactor.Execute(context.Background(), &Request{Name: "Beverages"})
	require.NoError(t, err)
	assert.NotEmpty(t, familyID)

	require.Len(t, applier.Applied, 1)
	assert.Equal(t, 2, applier.Applied[0].Count(), "insert plus the outbox event")
	require.Len(t, outbox.Events, 1)
	assert.Equal(t, "family.created", outbox.Events[0].EventType)
	assert.Equal(t, familyID, outbox.Events[0].AggregateID)
}

func TestExecute_EmptyNameRejected(t *testing.T) {
	applier := usecasetest.NewApplier()
	interactor := NewInteractor(usecasetest.NewFamilyRepo(), usecasetest.NewOutboxRepo(), applier, clock.NewMockClock(time.Now()))

	_, err := interactor.Execute(context.Background(), &Request{Name: ""})
	assert.ErrorIs(t, err, domain.ErrEmptyName)
	assert.Empty(t, applier.Applied)
}
