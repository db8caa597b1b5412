package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/models/m_supplier"
)

// SupplierRepo implements SupplierRepository for Spanner.
type SupplierRepo struct {
	client *spanner.Client
	model  *m_supplier.Model
}

// NewSupplierRepo creates a new SupplierRepo.
func NewSupplierRepo(client *spanner.Client) contracts.SupplierRepository {
	return &SupplierRepo{
		client: client,
		model:  m_supplier.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new supplier.
func (r *SupplierRepo) InsertMut(supplier *domain.Supplier) *spanner.Mutation {
	return r.model.InsertMut(r.domainToData(supplier))
}

// UpdateMut creates a mutation replacing a supplier's editable fields.
func (r *SupplierRepo) UpdateMut(supplier *domain.Supplier) *spanner.Mutation {
	return r.model.UpdateMut(supplier.ID, map[string]interface{}{
		m_supplier.Name:    supplier.Name,
		m_supplier.Phone:   supplier.Phone,
		m_supplier.Email:   supplier.Email,
		m_supplier.Address: nullString(supplier.Address),
		m_supplier.Notes:   supplier.Notes,
	})
}

// DeleteMut creates a mutation for deleting a supplier.
func (r *SupplierRepo) DeleteMut(supplierID string) *spanner.Mutation {
	return r.model.DeleteMut(supplierID)
}

// GetByID retrieves a supplier by ID.
func (r *SupplierRepo) GetByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	row, err := r.client.Single().ReadRow(ctx, m_supplier.TableName, spanner.Key{supplierID}, m_supplier.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrSupplierNotFound
		}
		return nil, fmt.Errorf("failed to read supplier: %w", err)
	}

	var data m_supplier.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse supplier: %w", err)
	}

	return r.dataToDomain(&data), nil
}

// Exists checks if a supplier exists.
func (r *SupplierRepo) Exists(ctx context.Context, supplierID string) (bool, error) {
	_, err := r.client.Single().ReadRow(ctx, m_supplier.TableName, spanner.Key{supplierID}, []string{m_supplier.SupplierID})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check supplier existence: %w", err)
	}
	return true, nil
}

func (r *SupplierRepo) domainToData(supplier *domain.Supplier) *m_supplier.Data {
	return &m_supplier.Data{
		SupplierID: supplier.ID,
		Name:       supplier.Name,
		Phone:      supplier.Phone,
		Email:      supplier.Email,
		Address:    nullString(supplier.Address),
		Notes:      supplier.Notes,
		CreatedAt:  supplier.CreatedAt,
		UpdatedAt:  supplier.UpdatedAt,
	}
}

func (r *SupplierRepo) dataToDomain(data *m_supplier.Data) *domain.Supplier {
	address := ""
	if data.Address.Valid {
		address = data.Address.StringVal
	}
	return &domain.Supplier{
		ID:        data.SupplierID,
		Name:      data.Name,
		Phone:     data.Phone,
		Email:     data.Email,
		Address:   address,
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
