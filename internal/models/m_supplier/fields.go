package m_supplier

// Field name constants for the suppliers table.
const (
	TableName = "suppliers"

	SupplierID = "supplier_id"
	Name       = "name"
	Phone      = "phone"
	Email      = "email"
	Address    = "address"
	Notes      = "notes"
	CreatedAt  = "created_at"
	UpdatedAt  = "updated_at"
)
