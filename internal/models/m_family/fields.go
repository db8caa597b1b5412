package m_family

// Field name constants for the families table.
const (
	TableName = "families"

	FamilyID  = "family_id"
	Name      = "name"
	CreatedAt = "created_at"
)
