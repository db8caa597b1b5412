package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name", "supplier_id").
		Build()

	assert.Equal(t, "SELECT product_id, name, supplier_id FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("products").Build()

	assert.Equal(t, "SELECT * FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SingleWhereCondition(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Where(Eq("supplier_id", "sup-1")).
		Build()

	assert.Equal(t, "SELECT product_id, name FROM products WHERE supplier_id = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "sup-1",
	}, stmt.Params)
}

func TestBuilder_MultipleWhereConditions(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Where(Eq("supplier_id", "sup-1")).
		Where(Eq("family_id", "fam-1")).
		Build()

	assert.Equal(t, "SELECT product_id, name FROM products WHERE supplier_id = @p0 AND family_id = @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "sup-1",
		"p1": "fam-1",
	}, stmt.Params)
}

func TestBuilder_IsNotNull(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		Where(IsNotNull("min_stock")).
		Build()

	assert.Equal(t, "SELECT product_id FROM products WHERE min_stock IS NOT NULL", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_ColumnComparison(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		Where(IsNotNull("min_stock")).
		Where(ColumnLte("stock", "min_stock")).
		Build()

	assert.Equal(t, "SELECT product_id FROM products WHERE min_stock IS NOT NULL AND stock <= min_stock", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_OrderByAsc(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		OrderBy("name", Asc).
		Build()

	assert.Equal(t, "SELECT product_id, name FROM products ORDER BY name ASC", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_OrderByDesc(t *testing.T) {
	stmt := From("sales").
		Select("sale_id").
		OrderBy("created_at", Desc).
		Build()

	assert.Equal(t, "SELECT sale_id FROM sales ORDER BY created_at DESC", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_Limit(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Limit(10).
		Build()

	assert.Equal(t, "SELECT product_id, name FROM products LIMIT @limit", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"limit": int64(10),
	}, stmt.Params)
}

func TestBuilder_Count(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Where(Eq("supplier_id", "sup-1")).
		Limit(5).
		Count().
		Build()

	assert.Equal(t, "SELECT COUNT(*) FROM products WHERE supplier_id = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "sup-1",
	}, stmt.Params)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("products").Select("product_id")

	withFilter := base.Where(Eq("supplier_id", "sup-1"))
	plain := base.Build()
	filtered := withFilter.Build()

	assert.Equal(t, "SELECT product_id FROM products", plain.SQL)
	assert.Equal(t, "SELECT product_id FROM products WHERE supplier_id = @p0", filtered.SQL)
}
