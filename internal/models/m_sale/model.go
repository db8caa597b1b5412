package m_sale

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the sales table.
// Sales are immutable once created, so there is no UpdateMut.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// Columns returns all column names, in Data field order.
func Columns() []string {
	return []string{
		SaleID,
		UserID,
		Items,
		TotalNumerator,
		TotalDenominator,
		Status,
		IdempotencyKey,
		CreatedAt,
	}
}

// InsertMut creates a Spanner mutation for inserting a sale. The created_at
// column is assigned by the store at commit time, never by the caller.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns(),
		[]interface{}{
			data.SaleID,
			data.UserID,
			data.Items,
			data.TotalNumerator,
			data.TotalDenominator,
			data.Status,
			data.IdempotencyKey,
			spanner.CommitTimestamp,
		},
	)
}
