package find_product_by_barcode

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
)

// Request contains the barcode to look up.
type Request struct {
	Barcode int64
}

// Query handles the barcode lookup query use case.
type Query struct {
	readModel contracts.ProductReadModel
}

// NewQuery creates a new barcode lookup query.
func NewQuery(readModel contracts.ProductReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves the product owning the barcode.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ProductDTO, error) {
	return q.readModel.GetProductByBarcode(ctx, req.Barcode)
}
