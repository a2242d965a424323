package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// productBaseQuery joins the whole catalog around products in one pass. The
// LEFT JOINs keep products without prices or attribute sets in the result;
// hydrateProducts collapses the row blow-up back into a nested graph.
//
// The ORDER BY pins the nesting order of attribute sets, items and prices so
// the API output does not depend on whatever row order the planner picks.
const productBaseQuery = `
	SELECT
		p.id, p.name, p.in_stock, p.description, p.gallery, p.brand, p.category_id,
		c.name,
		pr.id, pr.amount, pr.currency_id,
		cur.label, cur.symbol,
		attr_set.id, attr_set.name, attr_set.type,
		ai.id, ai.display_value, ai.value
	FROM products p
	JOIN categories c ON p.category_id = c.id
	LEFT JOIN prices pr ON pr.product_id = p.id
	LEFT JOIN currencies cur ON pr.currency_id = cur.id
	LEFT JOIN attribute_sets attr_set ON attr_set.product_id = p.id
	LEFT JOIN attributes ai ON ai.attribute_set_id = attr_set.id`

const productOrderClause = ` ORDER BY p.id, attr_set.id, ai.id, pr.id`

// ListProducts returns all products, or only those in the given category
// when categoryID is non-empty.
func (r *ProductsRepository) ListProducts(categoryID string) ([]Product, error) {
	query := productBaseQuery
	var args []any
	if categoryID != "" {
		query += ` WHERE p.category_id = ?`
		args = append(args, categoryID)
	}
	query += productOrderClause

	rows, err := r.db.Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parsed, err := scanProductRows(rows)
	if err != nil {
		return nil, err
	}
	return hydrateProducts(parsed), nil
}

// GetProduct returns one fully hydrated product by id.
func (r *ProductsRepository) GetProduct(id string) (*Product, error) {
	rows, err := r.db.Raw(productBaseQuery+` WHERE p.id = ?`+productOrderClause, id).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parsed, err := scanProductRows(rows)
	if err != nil {
		return nil, err
	}
	products := hydrateProducts(parsed)
	if len(products) == 0 {
		return nil, ErrProductNotFound
	}
	return &products[0], nil
}
