package m_supplier

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the suppliers table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// Columns returns all column names, in Data field order.
func Columns() []string {
	return []string{
		SupplierID,
		Name,
		Phone,
		Email,
		Address,
		Notes,
		CreatedAt,
		UpdatedAt,
	}
}

// InsertMut creates a Spanner mutation for inserting a supplier.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns(),
		[]interface{}{
			data.SupplierID,
			data.Name,
			data.Phone,
			data.Email,
			data.Address,
			data.Notes,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific supplier fields.
func (m *Model) UpdateMut(supplierID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, SupplierID)
	values = append(values, supplierID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut creates a Spanner mutation for deleting a supplier.
func (m *Model) DeleteMut(supplierID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{supplierID})
}
