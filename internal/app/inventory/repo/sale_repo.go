package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/models/m_sale"
	"github.com/light-bringer/inventory-service/internal/pkg/query"
)

// SaleRepo implements SaleRepository for Spanner.
type SaleRepo struct {
	client *spanner.Client
	model  *m_sale.Model
}

// NewSaleRepo creates a new SaleRepo.
func NewSaleRepo(client *spanner.Client) contracts.SaleRepository {
	return &SaleRepo{
		client: client,
		model:  m_sale.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a sale record.
func (r *SaleRepo) InsertMut(sale *domain.Sale) (*spanner.Mutation, error) {
	lines := make([]m_sale.LineData, 0, len(sale.Lines()))
	for _, line := range sale.Lines() {
		lines = append(lines, m_sale.LineData{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice.String(),
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal.String(),
		})
	}

	total := sale.Total()
	data := &m_sale.Data{
		SaleID:           sale.ID(),
		UserID:           sale.UserID(),
		Items:            m_sale.EncodeLines(lines),
		TotalNumerator:   total.Numerator(),
		TotalDenominator: total.Denominator(),
		Status:           string(sale.Status()),
		IdempotencyKey:   nullString(sale.IdempotencyKey()),
	}
	return r.model.InsertMut(data), nil
}

// FindIDByIdempotencyKey returns the ID of a sale previously created with
// the given key, or domain.ErrSaleNotFound when no such sale exists.
func (r *SaleRepo) FindIDByIdempotencyKey(ctx context.Context, key string) (string, error) {
	stmt := query.From(m_sale.TableName).
		Select(m_sale.SaleID).
		Where(query.Eq(m_sale.IdempotencyKey, key)).
		Limit(1).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return "", domain.ErrSaleNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query sale by idempotency key: %w", err)
	}

	var saleID string
	if err := row.Columns(&saleID); err != nil {
		return "", fmt.Errorf("failed to parse sale ID: %w", err)
	}
	return saleID, nil
}
