package models

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// productRow is one row of the denormalized catalog join. The product and
// category columns repeat for every joined price / attribute combination;
// the price and attribute blocks are nullable because of the LEFT JOINs.
type productRow struct {
	ID          string
	Name        string
	InStock     bool
	Description sql.NullString
	Gallery     pq.StringArray
	Brand       string
	CategoryID  string

	CategoryName string

	PriceID         sql.NullString
	PriceAmount     decimal.NullDecimal
	PriceCurrencyID sql.NullString

	CurrencyLabel  sql.NullString
	CurrencySymbol sql.NullString

	SetID   sql.NullString
	SetName sql.NullString
	SetType sql.NullString

	ItemID           sql.NullString
	ItemDisplayValue sql.NullString
	ItemValue        sql.NullString
}

// scanProductRows decodes the full result set of the catalog join in the
// column order of productBaseQuery.
func scanProductRows(rows *sql.Rows) ([]productRow, error) {
	var out []productRow
	for rows.Next() {
		var r productRow
		if err := rows.Scan(
			&r.ID, &r.Name, &r.InStock, &r.Description, &r.Gallery, &r.Brand, &r.CategoryID,
			&r.CategoryName,
			&r.PriceID, &r.PriceAmount, &r.PriceCurrencyID,
			&r.CurrencyLabel, &r.CurrencySymbol,
			&r.SetID, &r.SetName, &r.SetType,
			&r.ItemID, &r.ItemDisplayValue, &r.ItemValue,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// hydrateProducts rebuilds the nested product graph from the flat join rows.
//
// The join multiplies rows (a product with two attribute sets of three items
// and one price shows up six times), so every entity is deduplicated by id:
// identity maps for products, categories, attribute sets and currencies, and
// seen-sets for prices and attribute items. Nesting order follows first
// appearance in the row stream, which the base query pins with its ORDER BY.
func hydrateProducts(rows []productRow) []Product {
	products := make(map[string]*Product)
	categories := make(map[string]Category)
	sets := make(map[string]*AttributeSet)
	currencies := make(map[string]Currency)
	seenPrices := make(map[string]bool)
	seenItems := make(map[string]bool)

	var order []string
	setsByProduct := make(map[string][]*AttributeSet)

	for _, row := range rows {
		product, ok := products[row.ID]
		if !ok {
			product = &Product{
				ID:          row.ID,
				Name:        row.Name,
				Brand:       row.Brand,
				InStock:     row.InStock,
				Description: row.Description.String,
				Gallery:     row.Gallery,
				CategoryID:  row.CategoryID,
			}
			products[row.ID] = product
			order = append(order, row.ID)
		}

		category, ok := categories[row.CategoryID]
		if !ok {
			category = Category{ID: row.CategoryID, Name: row.CategoryName}
			categories[row.CategoryID] = category
		}
		product.Category = category

		if row.SetID.Valid {
			set, ok := sets[row.SetID.String]
			if !ok {
				set = &AttributeSet{
					ID:        row.SetID.String,
					Name:      row.SetName.String,
					Type:      row.SetType.String,
					ProductID: row.ID,
				}
				sets[row.SetID.String] = set
				setsByProduct[row.ID] = append(setsByProduct[row.ID], set)
			}

			if row.ItemID.Valid && !seenItems[row.ItemID.String] {
				set.Items = append(set.Items, Attribute{
					ID:             row.ItemID.String,
					DisplayValue:   row.ItemDisplayValue.String,
					Value:          row.ItemValue.String,
					AttributeSetID: row.SetID.String,
				})
				seenItems[row.ItemID.String] = true
			}
		}

		if row.PriceID.Valid && !seenPrices[row.PriceID.String] {
			currency, ok := currencies[row.PriceCurrencyID.String]
			if !ok {
				currency = Currency{
					ID:     row.PriceCurrencyID.String,
					Label:  row.CurrencyLabel.String,
					Symbol: row.CurrencySymbol.String,
				}
				currencies[row.PriceCurrencyID.String] = currency
			}
			product.Prices = append(product.Prices, Price{
				ID:         row.PriceID.String,
				Amount:     row.PriceAmount.Decimal,
				CurrencyID: row.PriceCurrencyID.String,
				ProductID:  row.ID,
				Currency:   currency,
			})
			seenPrices[row.PriceID.String] = true
		}
	}

	out := make([]Product, 0, len(order))
	for _, id := range order {
		product := products[id]
		for _, set := range setsByProduct[id] {
			product.Attributes = append(product.Attributes, *set)
		}
		out = append(out, *product)
	}
	return out
}
