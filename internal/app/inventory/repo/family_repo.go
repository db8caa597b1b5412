package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/models/m_family"
)

// FamilyRepo implements FamilyRepository for Spanner.
type FamilyRepo struct {
	client *spanner.Client
	model  *m_family.Model
}

// NewFamilyRepo creates a new FamilyRepo.
func NewFamilyRepo(client *spanner.Client) contracts.FamilyRepository {
	return &FamilyRepo{
		client: client,
		model:  m_family.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new family.
func (r *FamilyRepo) InsertMut(family *domain.Family) *spanner.Mutation {
	return r.model.InsertMut(&m_family.Data{
		FamilyID:  family.ID,
		Name:      family.Name,
		CreatedAt: family.CreatedAt,
	})
}

// DeleteMut creates a mutation for deleting a family.
func (r *FamilyRepo) DeleteMut(familyID string) *spanner.Mutation {
	return r.model.DeleteMut(familyID)
}

// GetByID retrieves a family by ID.
func (r *FamilyRepo) GetByID(ctx context.Context, familyID string) (*domain.Family, error) {
	row, err := r.client.Single().ReadRow(ctx, m_family.TableName, spanner.Key{familyID}, m_family.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrFamilyNotFound
		}
		return nil, fmt.Errorf("failed to read family: %w", err)
	}

	var data m_family.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse family: %w", err)
	}

	return &domain.Family{
		ID:        data.FamilyID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}, nil
}

// Exists checks if a family exists.
func (r *FamilyRepo) Exists(ctx context.Context, familyID string) (bool, error) {
	_, err := r.client.Single().ReadRow(ctx, m_family.TableName, spanner.Key{familyID}, []string{m_family.FamilyID})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check family existence: %w", err)
	}
	return true, nil
}
