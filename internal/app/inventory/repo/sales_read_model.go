package repo

import (
	"context"
	"fmt"
	"strconv"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/models/m_sale"
	"github.com/light-bringer/inventory-service/internal/pkg/query"
)

// SalesReadModel implements sales-history queries against Spanner.
type SalesReadModel struct {
	client *spanner.Client
}

// NewSalesReadModel creates a new SalesReadModel.
func NewSalesReadModel(client *spanner.Client) contracts.SalesReadModel {
	return &SalesReadModel{client: client}
}

// GetSaleByID retrieves a sale DTO by ID.
func (rm *SalesReadModel) GetSaleByID(ctx context.Context, saleID string) (*contracts.SaleDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_sale.TableName, spanner.Key{saleID}, m_sale.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrSaleNotFound
		}
		return nil, fmt.Errorf("failed to read sale: %w", err)
	}

	var data m_sale.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse sale: %w", err)
	}
	return saleDataToDTO(&data)
}

// ListSales retrieves sales ordered by date, newest first.
func (rm *SalesReadModel) ListSales(ctx context.Context, limit int) ([]*contracts.SaleDTO, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	stmt := query.From(m_sale.TableName).
		Select(m_sale.Columns()...).
		OrderBy(m_sale.CreatedAt, query.Desc).
		Limit(int64(limit)).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	sales := make([]*contracts.SaleDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate sales: %w", err)
		}

		var data m_sale.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse sale: %w", err)
		}

		dto, err := saleDataToDTO(&data)
		if err != nil {
			return nil, err
		}
		sales = append(sales, dto)
	}
	return sales, nil
}

func saleDataToDTO(data *m_sale.Data) (*contracts.SaleDTO, error) {
	lines, err := m_sale.DecodeLines(data.Items)
	if err != nil {
		return nil, err
	}

	lineDTOs := make([]contracts.SaleLineDTO, 0, len(lines))
	for _, line := range lines {
		lineDTOs = append(lineDTOs, contracts.SaleLineDTO{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: parsePrice(line.UnitPrice),
			Quantity:  line.Quantity,
			Subtotal:  parsePrice(line.Subtotal),
		})
	}

	return &contracts.SaleDTO{
		SaleID: data.SaleID,
		UserID: data.UserID,
		Lines:  lineDTOs,
		Total:  ratToFloat(data.TotalNumerator, data.TotalDenominator),
		Status: data.Status,
		Date:   data.CreatedAt,
	}, nil
}

func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
