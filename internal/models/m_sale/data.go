package m_sale

import (
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the sales table.
type Data struct {
	SaleID           string
	UserID           string
	Items            spanner.NullJSON
	TotalNumerator   int64
	TotalDenominator int64
	Status           string
	IdempotencyKey   spanner.NullString
	CreatedAt        time.Time
}

// LineData is the JSON shape of one line item inside the Items column.
// Prices are stored as decimal strings to keep the column human-readable.
type LineData struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int64  `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

// EncodeLines wraps line items for the Items JSON column.
func EncodeLines(lines []LineData) spanner.NullJSON {
	return spanner.NullJSON{Value: lines, Valid: true}
}

// DecodeLines extracts line items from the Items JSON column.
func DecodeLines(items spanner.NullJSON) ([]LineData, error) {
	if !items.Valid {
		return nil, nil
	}

	raw, err := json.Marshal(items.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode sale items: %w", err)
	}

	var lines []LineData
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("failed to decode sale items: %w", err)
	}
	return lines, nil
}
