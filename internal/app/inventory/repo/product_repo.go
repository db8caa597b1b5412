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
	"github.com/light-bringer/inventory-service/internal/pkg/clock"
	"github.com/light-bringer/inventory-service/internal/pkg/query"
)

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	client *spanner.Client
	model  *m_product.Model
	clock  clock.Clock
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(client *spanner.Client, clk clock.Clock) contracts.ProductRepository {
	return &ProductRepo{
		client: client,
		model:  m_product.NewModel(),
		clock:  clk,
	}
}

// InsertMut creates a mutation for inserting a new product.
func (r *ProductRepo) InsertMut(product *domain.Product) (*spanner.Mutation, error) {
	data, err := r.domainToData(product)
	if err != nil {
		return nil, err
	}
	return r.model.InsertMut(data), nil
}

// UpdateMut creates a mutation for updating a product (only dirty fields).
func (r *ProductRepo) UpdateMut(product *domain.Product) (*spanner.Mutation, error) {
	changes := product.Changes()
	if !changes.HasChanges() {
		return nil, nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldName) {
		updates[m_product.Name] = product.Name()
	}

	if changes.Dirty(domain.FieldDescription) {
		updates[m_product.Description] = product.Description()
	}

	if changes.Dirty(domain.FieldPurchasePrice) {
		price := product.PurchasePrice()
		updates[m_product.PurchasePriceNumerator] = price.Numerator()
		updates[m_product.PurchasePriceDenominator] = price.Denominator()
	}

	if changes.Dirty(domain.FieldSalePrice) {
		price := product.SalePrice()
		updates[m_product.SalePriceNumerator] = price.Numerator()
		updates[m_product.SalePriceDenominator] = price.Denominator()
	}

	if changes.Dirty(domain.FieldStock) {
		updates[m_product.Stock] = product.Stock()
	}

	if changes.Dirty(domain.FieldMinStock) {
		updates[m_product.MinStock] = nullInt64(product.MinStock())
	}

	if changes.Dirty(domain.FieldBarcode) {
		updates[m_product.Barcode] = nullInt64(product.Barcode())
	}

	if changes.Dirty(domain.FieldSupplier) {
		updates[m_product.SupplierID] = product.SupplierID()
	}

	if changes.Dirty(domain.FieldFamily) {
		updates[m_product.FamilyID] = nullString(product.FamilyID())
	}

	if len(updates) == 0 {
		return nil, nil
	}

	return r.model.UpdateMut(product.ID(), updates), nil
}

// DeleteMut creates a mutation for deleting a product.
func (r *ProductRepo) DeleteMut(productID string) *spanner.Mutation {
	return r.model.DeleteMut(productID)
}

// ClearFamilyMut creates a mutation clearing a product's family reference.
func (r *ProductRepo) ClearFamilyMut(productID string) *spanner.Mutation {
	return r.model.UpdateMut(productID, map[string]interface{}{
		m_product.FamilyID: spanner.NullString{},
	})
}

// GetByID retrieves a product by ID, reconstructing the domain aggregate.
func (r *ProductRepo) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	row, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns())
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

	return r.dataToDomain(&data)
}

// ListByScope retrieves all products matching a bulk-update scope.
func (r *ProductRepo) ListByScope(ctx context.Context, scope domain.Scope) ([]*domain.Product, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.Columns()...).
		Where(query.Eq(scopeColumn(scope), scope.ID)).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	products := make([]*domain.Product, 0)
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

		product, err := r.dataToDomain(&data)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

// FindByBarcode retrieves the product owning a barcode.
func (r *ProductRepo) FindByBarcode(ctx context.Context, barcode int64) (*domain.Product, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.Columns()...).
		Where(query.Eq(m_product.Barcode, barcode)).
		Limit(1).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query product by barcode: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	return r.dataToDomain(&data)
}

// CountBySupplier counts products referencing a supplier.
func (r *ProductRepo) CountBySupplier(ctx context.Context, supplierID string) (int64, error) {
	return r.count(ctx, query.Eq(m_product.SupplierID, supplierID))
}

// CountByFamily counts products referencing a family.
func (r *ProductRepo) CountByFamily(ctx context.Context, familyID string) (int64, error) {
	return r.count(ctx, query.Eq(m_product.FamilyID, familyID))
}

func (r *ProductRepo) count(ctx context.Context, condition query.Condition) (int64, error) {
	stmt := query.From(m_product.TableName).
		Where(condition).
		Count().
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	var count int64
	if err := row.Columns(&count); err != nil {
		return 0, fmt.Errorf("failed to parse count: %w", err)
	}
	return count, nil
}

// domainToData converts a domain Product to database Data.
func (r *ProductRepo) domainToData(product *domain.Product) (*m_product.Data, error) {
	purchase := product.PurchasePrice()
	sale := product.SalePrice()

	return &m_product.Data{
		ProductID:                product.ID(),
		Name:                     product.Name(),
		Description:              product.Description(),
		PurchasePriceNumerator:   purchase.Numerator(),
		PurchasePriceDenominator: purchase.Denominator(),
		SalePriceNumerator:       sale.Numerator(),
		SalePriceDenominator:     sale.Denominator(),
		Stock:                    product.Stock(),
		MinStock:                 nullInt64(product.MinStock()),
		Barcode:                  nullInt64(product.Barcode()),
		SupplierID:               product.SupplierID(),
		FamilyID:                 nullString(product.FamilyID()),
		CreatedAt:                product.CreatedAt(),
		UpdatedAt:                product.UpdatedAt(),
	}, nil
}

// dataToDomain converts database Data to a domain Product.
func (r *ProductRepo) dataToDomain(data *m_product.Data) (*domain.Product, error) {
	purchase, err := domain.NewMoney(data.PurchasePriceNumerator, data.PurchasePriceDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid purchase price: %w", err)
	}
	sale, err := domain.NewMoney(data.SalePriceNumerator, data.SalePriceDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid sale price: %w", err)
	}

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

	return domain.ReconstructProduct(
		data.ProductID,
		data.Name,
		data.Description,
		purchase,
		sale,
		data.Stock,
		minStock,
		barcode,
		data.SupplierID,
		familyID,
		data.CreatedAt,
		data.UpdatedAt,
		r.clock,
	), nil
}

func scopeColumn(scope domain.Scope) string {
	if scope.Kind == domain.ScopeFamily {
		return m_product.FamilyID
	}
	return m_product.SupplierID
}

func nullInt64(v *int64) spanner.NullInt64 {
	if v == nil {
		return spanner.NullInt64{}
	}
	return spanner.NullInt64{Int64: *v, Valid: true}
}

func nullString(v string) spanner.NullString {
	if v == "" {
		return spanner.NullString{}
	}
	return spanner.NullString{StringVal: v, Valid: true}
}
