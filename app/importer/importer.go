// Package importer loads a catalog seed JSON file into the database.
//
// The import runs through the upsert repositories, so it is idempotent:
// re-running it on an already seeded database updates rows in place instead
// of duplicating them.
package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"github.com/valenieksvladislavs/ScandiWebTest2025/models"
)

// Store is the write side of the catalog the importer needs.
type Store interface {
	SaveCategory(*models.Category) error
	SaveCurrency(*models.Currency) error
	SaveProduct(*models.Product) error
	SaveAttributeSet(*models.AttributeSet) error
	SaveAttribute(*models.Attribute) error
	SavePrice(*models.Price) error
}

type Importer struct {
	store Store
}

func NewImporter(store Store) *Importer {
	return &Importer{
		store: store,
	}
}

type seed struct {
	Data struct {
		Categories []struct {
			Name string `json:"name"`
		} `json:"categories"`
		Products []seedProduct `json:"products"`
	} `json:"data"`
}

type seedProduct struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Brand       string             `json:"brand"`
	InStock     bool               `json:"inStock"`
	Description string             `json:"description"`
	Gallery     []string           `json:"gallery"`
	Category    string             `json:"category"`
	Attributes  []seedAttributeSet `json:"attributes"`
	Prices      []seedPrice        `json:"prices"`
}

type seedAttributeSet struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Items []seedAttribute `json:"items"`
}

type seedAttribute struct {
	ID           string `json:"id"`
	DisplayValue string `json:"displayValue"`
	Value        string `json:"value"`
}

type seedPrice struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency struct {
		Label  string `json:"label"`
		Symbol string `json:"symbol"`
	} `json:"currency"`
}

// RunFile imports the seed file at the given path.
func (i *Importer) RunFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return i.Run(f)
}

// Run imports a seed JSON document.
func (i *Importer) Run(r io.Reader) error {
	var s seed
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return fmt.Errorf("decode seed: %w", err)
	}

	categories := make(map[string]bool)
	for _, c := range s.Data.Categories {
		// "all" is a virtual category the UI synthesizes, not a real row.
		if c.Name == "all" {
			continue
		}
		if err := i.store.SaveCategory(&models.Category{ID: c.Name, Name: c.Name}); err != nil {
			return fmt.Errorf("save category %q: %w", c.Name, err)
		}
		categories[c.Name] = true
	}

	currencies := make(map[string]bool)
	for _, p := range s.Data.Products {
		for _, price := range p.Prices {
			label := price.Currency.Label
			if currencies[label] {
				continue
			}
			currency := &models.Currency{ID: label, Label: label, Symbol: price.Currency.Symbol}
			if err := i.store.SaveCurrency(currency); err != nil {
				return fmt.Errorf("save currency %q: %w", label, err)
			}
			currencies[label] = true
		}
	}

	for _, p := range s.Data.Products {
		if !categories[p.Category] {
			return fmt.Errorf("product %q references unknown category %q", p.ID, p.Category)
		}

		product := &models.Product{
			ID:          p.ID,
			Name:        p.Name,
			Brand:       p.Brand,
			InStock:     p.InStock,
			Description: p.Description,
			Gallery:     p.Gallery,
			CategoryID:  p.Category,
		}
		if err := i.store.SaveProduct(product); err != nil {
			return fmt.Errorf("save product %q: %w", p.ID, err)
		}

		for _, set := range p.Attributes {
			setID := p.ID + "-" + set.ID
			if err := i.store.SaveAttributeSet(&models.AttributeSet{
				ID:        setID,
				Name:      set.Name,
				Type:      set.Type,
				ProductID: p.ID,
			}); err != nil {
				return fmt.Errorf("save attribute set %q: %w", setID, err)
			}

			for _, item := range set.Items {
				itemID := setID + "-" + item.ID
				if err := i.store.SaveAttribute(&models.Attribute{
					ID:             itemID,
					DisplayValue:   item.DisplayValue,
					Value:          item.Value,
					AttributeSetID: setID,
				}); err != nil {
					return fmt.Errorf("save attribute %q: %w", itemID, err)
				}
			}
		}

		for _, price := range p.Prices {
			priceID := p.ID + "-" + price.Currency.Label
			if err := i.store.SavePrice(&models.Price{
				ID:         priceID,
				Amount:     price.Amount,
				CurrencyID: price.Currency.Label,
				ProductID:  p.ID,
			}); err != nil {
				return fmt.Errorf("save price %q: %w", priceID, err)
			}
		}
	}

	slog.Info("seed import finished",
		"categories", len(categories),
		"currencies", len(currencies),
		"products", len(s.Data.Products),
	)
	return nil
}
