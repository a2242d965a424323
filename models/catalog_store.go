package models

import (
	"gorm.io/gorm"
)

// CatalogStore bundles the upsert repositories for every seeded entity.
// It is the write-side counterpart of the hydrating read path and is what
// the seed importer runs against.
type CatalogStore struct {
	categories *Repository[Category, *Category]
	currencies *Repository[Currency, *Currency]
	products   *Repository[Product, *Product]
	sets       *Repository[AttributeSet, *AttributeSet]
	attributes *Repository[Attribute, *Attribute]
	prices     *Repository[Price, *Price]
}

func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{
		categories: NewRepository[Category, *Category](db),
		currencies: NewRepository[Currency, *Currency](db),
		products:   NewRepository[Product, *Product](db),
		sets:       NewRepository[AttributeSet, *AttributeSet](db),
		attributes: NewRepository[Attribute, *Attribute](db),
		prices:     NewRepository[Price, *Price](db),
	}
}

func (s *CatalogStore) SaveCategory(c *Category) error         { return s.categories.Save(c) }
func (s *CatalogStore) SaveCurrency(c *Currency) error         { return s.currencies.Save(c) }
func (s *CatalogStore) SaveProduct(p *Product) error           { return s.products.Save(p) }
func (s *CatalogStore) SaveAttributeSet(a *AttributeSet) error { return s.sets.Save(a) }
func (s *CatalogStore) SaveAttribute(a *Attribute) error       { return s.attributes.Save(a) }
func (s *CatalogStore) SavePrice(p *Price) error               { return s.prices.Save(p) }
