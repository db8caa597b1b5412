package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/models/m_family"
	"github.com/light-bringer/inventory-service/internal/models/m_supplier"
	"github.com/light-bringer/inventory-service/internal/pkg/query"
)

// DirectoryReadModel implements supplier and family listings.
type DirectoryReadModel struct {
	client *spanner.Client
}

// NewDirectoryReadModel creates a new DirectoryReadModel.
func NewDirectoryReadModel(client *spanner.Client) contracts.DirectoryReadModel {
	return &DirectoryReadModel{client: client}
}

// ListSuppliers retrieves all suppliers ordered by name.
func (rm *DirectoryReadModel) ListSuppliers(ctx context.Context) ([]*contracts.SupplierDTO, error) {
	stmt := query.From(m_supplier.TableName).
		Select(m_supplier.Columns()...).
		OrderBy(m_supplier.Name, query.Asc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	suppliers := make([]*contracts.SupplierDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate suppliers: %w", err)
		}

		var data m_supplier.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse supplier: %w", err)
		}
		suppliers = append(suppliers, supplierDataToDTO(&data))
	}
	return suppliers, nil
}

// GetSupplierByID retrieves a supplier DTO by ID.
func (rm *DirectoryReadModel) GetSupplierByID(ctx context.Context, supplierID string) (*contracts.SupplierDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_supplier.TableName, spanner.Key{supplierID}, m_supplier.Columns())
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
	return supplierDataToDTO(&data), nil
}

// ListFamilies retrieves all families ordered by name.
func (rm *DirectoryReadModel) ListFamilies(ctx context.Context) ([]*contracts.FamilyDTO, error) {
	stmt := query.From(m_family.TableName).
		Select(m_family.Columns()...).
		OrderBy(m_family.Name, query.Asc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	families := make([]*contracts.FamilyDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate families: %w", err)
		}

		var data m_family.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse family: %w", err)
		}
		families = append(families, &contracts.FamilyDTO{
			FamilyID:  data.FamilyID,
			Name:      data.Name,
			CreatedAt: data.CreatedAt,
		})
	}
	return families, nil
}

func supplierDataToDTO(data *m_supplier.Data) *contracts.SupplierDTO {
	address := ""
	if data.Address.Valid {
		address = data.Address.StringVal
	}
	return &contracts.SupplierDTO{
		SupplierID: data.SupplierID,
		Name:       data.Name,
		Phone:      data.Phone,
		Email:      data.Email,
		Address:    address,
		Notes:      data.Notes,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
