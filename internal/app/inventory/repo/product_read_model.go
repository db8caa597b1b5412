package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/models/m_product"
	"github.com/light-bringer/inventory-service/internal/pkg/query"
)

const defaultListLimit = 100

// ProductReadModel implements product queries against Spanner directly,
// without going through the domain aggregate.
type ProductReadModel struct {
	client *spanner.Client
}

// NewProductReadModel creates a new ProductReadModel.
func NewProductReadModel(client *spanner.Client) contracts.ProductReadModel {
	return &ProductReadModel{client: client}
}

// GetProductByID retrieves a product DTO by ID.
func (rm *ProductReadModel) GetProductByID(ctx context.Context, productID string) (*contracts.ProductDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}
	return productDataToDTO(&data), nil
}

// GetProductByBarcode retrieves a product DTO by its barcode.
func (rm *ProductReadModel) GetProductByBarcode(ctx context.Context, barcode int64) (*contracts.ProductDTO, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.Columns()...).
		Where(query.Eq(m_product.Barcode, barcode)).
		Limit(1).
		Build()

	products, err := rm.queryProducts(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.ErrProductNotFound
	}
	return products[0], nil
}

// ListProducts retrieves products with optional supplier/family filters.
func (rm *ProductReadModel) ListProducts(ctx context.Context, filter *contracts.ListFilter) ([]*contracts.ProductDTO, error) {
	builder := query.From(m_product.TableName).
		Select(m_product.Columns()...).
		OrderBy(m_product.Name, query.Asc)

	limit := int64(defaultListLimit)
	if filter != nil {
		if filter.SupplierID != "" {
			builder = builder.Where(query.Eq(m_product.SupplierID, filter.SupplierID))
		}
		if filter.FamilyID != "" {
			builder = builder.Where(query.Eq(m_product.FamilyID, filter.FamilyID))
		}
		if filter.Limit > 0 {
			limit = int64(filter.Limit)
		}
	}
	builder = builder.Limit(limit)

	return rm.queryProducts(ctx, builder.Build())
}

// ListLowStock retrieves products at or below their minimum-stock threshold.
func (rm *ProductReadModel) ListLowStock(ctx context.Context) ([]*contracts.ProductDTO, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.Columns()...).
		Where(query.IsNotNull(m_product.MinStock)).
		Where(query.ColumnLte(m_product.Stock, m_product.MinStock)).
		OrderBy(m_product.Name, query.Asc).
		Build()

	return rm.queryProducts(ctx, stmt)
}

func (rm *ProductReadModel) queryProducts(ctx context.Context, stmt spanner.Statement) ([]*contracts.ProductDTO, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	products := make([]*contracts.ProductDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}
		products = append(products, productDataToDTO(&data))
	}
	return products, nil
}

func productDataToDTO(data *m_product.Data) *contracts.ProductDTO {
	var minStock, barcode *int64
	if data.MinStock.Valid {
		v := data.MinStock.Int64
		minStock = &v
	}
	if data.Barcode.Valid {
		v := data.Barcode.Int64
		barcode = &v
	}

	familyID := ""
	if data.FamilyID.Valid {
		familyID = data.FamilyID.StringVal
	}

	return &contracts.ProductDTO{
		ProductID:     data.ProductID,
		Name:          data.Name,
		Description:   data.Description,
		PurchasePrice: ratToFloat(data.PurchasePriceNumerator, data.PurchasePriceDenominator),
		SalePrice:     ratToFloat(data.SalePriceNumerator, data.SalePriceDenominator),
		Stock:         data.Stock,
		MinStock:      minStock,
		Barcode:       barcode,
		SupplierID:    data.SupplierID,
		FamilyID:      familyID,
		LowStock:      minStock != nil && data.Stock <= *minStock,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func ratToFloat(numerator, denominator int64) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator)
}
