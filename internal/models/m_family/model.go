package m_family

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the families table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// Columns returns all column names, in Data field order.
func Columns() []string {
	return []string{FamilyID, Name, CreatedAt}
}

// InsertMut creates a Spanner mutation for inserting a family.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns(),
		[]interface{}{
			data.FamilyID,
			data.Name,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a family.
func (m *Model) DeleteMut(familyID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{familyID})
}
