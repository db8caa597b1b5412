package m_sale

// Field name constants for the sales table.
const (
	TableName = "sales"

	SaleID           = "sale_id"
	UserID           = "user_id"
	Items            = "items"
	TotalNumerator   = "total_numerator"
	TotalDenominator = "total_denominator"
	Status           = "status"
	IdempotencyKey   = "idempotency_key"
	CreatedAt        = "created_at"
)
