package delete_family

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

func familyProduct(t *testing.T, id, familyID string) *domain.Product {
	t.Helper()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	purchase, err := domain.NewMoney(500, 100)
	require.NoError(t, err)
	sale, err := domain.NewMoney(900, 100)
	require.NoError(t, err)
	return domain.ReconstructProduct(
		id, "product "+id, "", purchase, sale, 1, nil, nil,
		"sup-1", familyID, now, now, clock.NewMockClock(now),
	)
}

func newFixture(policy domain.FamilyDeletePolicy) (*Interactor, *usecasetest.FamilyRepo, *usecasetest.ProductRepo, *usecasetest.OutboxRepo, *usecasetest.Applier) {
	familyRepo := usecasetest.NewFamilyRepo()
	productRepo := usecasetest.NewProductRepo()
	outbox := usecasetest.NewOutboxRepo()
	applier := usecasetest.NewApplier()
	interactor := NewInteractor(familyRepo, productRepo, outbox, applier, clock.NewMockClock(time.Now()), policy)
	return interactor, familyRepo, productRepo, outbox, applier
}

func TestExecute_RestrictRejectsReferencedFamily(t *testing.T) {
	interactor, familyRepo, productRepo, _, applier := newFixture(domain.FamilyDeleteRestrict)
	familyRepo.Families["fam-1"] = &domain.Family{ID: "fam-1", Name: "Beverages"}
	productRepo.Products["p1"] = familyProduct(t, "p1", "fam-1")

	resp, err := interactor.Execute(context.Background(), &Request{FamilyID: "fam-1"})
	assert.ErrorIs(t, err, domain.ErrFamilyInUse)
	assert.Nil(t, resp)
	assert.Empty(t, applier.Applied)
}

func TestExecute_RestrictDeletesUnreferencedFamily(t *testing.T) {
	interactor, familyRepo, _, outbox, applier := newFixture(domain.FamilyDeleteRestrict)
	familyRepo.Families["fam-1"] = &domain.Family{ID: "fam-1", Name: "Beverages"}

	resp, err := interactor.Execute(context.Background(), &Request{FamilyID: "fam-1"})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.DetachedProducts)

	require.Len(t, applier.Applied, 1)
	assert.Equal(t, 2, applier.Applied[0].Count(), "delete plus the outbox event")
	require.Len(t, outbox.Events, 1)
	assert.Equal(t, "family.deleted", outbox.Events[0].EventType)
}

func TestExecute_DetachClearsReferencesInSamePlan(t *testing.T) {
	interactor, familyRepo, productRepo, outbox, applier := newFixture(domain.FamilyDeleteDetach)
	familyRepo.Families["fam-1"] = &domain.Family{ID: "fam-1", Name: "Beverages"}
	productRepo.ScopeProducts = []*domain.Product{
		familyProduct(t, "p1", "fam-1"),
		familyProduct(t, "p2", "fam-1"),
		familyProduct(t, "p3", "fam-1"),
	}

	resp, err := interactor.Execute(context.Background(), &Request{FamilyID: "fam-1"})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.DetachedProducts)

	require.Len(t, applier.Applied, 1)
	assert.Equal(t, 5, applier.Applied[0].Count(), "three detaches, the delete and the outbox event")
	require.Len(t, outbox.Events, 1)
}

func TestExecute_UnknownFamily(t *testing.T) {
	interactor, _, _, _, applier := newFixture(domain.FamilyDeleteRestrict)

	resp, err := interactor.Execute(context.Background(), &Request{FamilyID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrFamilyNotFound)
	assert.Nil(t, resp)
	assert.Empty(t, applier.Applied)
}
