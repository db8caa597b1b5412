package domain

import "errors"

// Domain errors as sentinel values
var (
	// Not-found errors
	ErrProductNotFound  = errors.New("product not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrFamilyNotFound   = errors.New("family not found")
	ErrSaleNotFound     = errors.New("sale not found")

	// Validation errors
	ErrEmptyName            = errors.New("name cannot be empty")
	ErrEmptySupplier        = errors.New("product supplier cannot be empty")
	ErrInvalidPurchasePrice = errors.New("purchase price must be positive")
	ErrInvalidSalePrice     = errors.New("sale price must be greater than purchase price")
	ErrInvalidStock         = errors.New("stock cannot be negative")
	ErrInvalidQuantity      = errors.New("line quantity must be a positive integer")
	ErrInvalidUnitPrice     = errors.New("line unit price must be positive")
	ErrEmptySale            = errors.New("sale must contain at least one line")
	ErrTotalMismatch        = errors.New("sale total does not match sum of line subtotals")
	ErrInvalidAdjustment    = errors.New("price adjustment value must be a finite number")

	// Consistency errors
	ErrSupplierInUse     = errors.New("supplier has associated products and cannot be deleted")
	ErrFamilyInUse       = errors.New("family has associated products and cannot be deleted")
	ErrBarcodeInUse      = errors.New("barcode is already assigned to another product")
	ErrInsufficientStock = errors.New("insufficient stock")
)
