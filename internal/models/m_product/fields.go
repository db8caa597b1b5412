package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID                  = "product_id"
	Name                       = "name"
	Description                = "description"
	PurchasePriceNumerator     = "purchase_price_numerator"
	PurchasePriceDenominator   = "purchase_price_denominator"
	SalePriceNumerator         = "sale_price_numerator"
	SalePriceDenominator       = "sale_price_denominator"
	Stock                      = "stock"
	MinStock                   = "min_stock"
	Barcode                    = "barcode"
	SupplierID                 = "supplier_id"
	FamilyID                   = "family_id"
	CreatedAt                  = "created_at"
	UpdatedAt                  = "updated_at"
)
