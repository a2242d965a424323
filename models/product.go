package models

import (
	"github.com/lib/pq"
)

// Product represents a product in the catalog.
// It includes its category, a list of configurable attribute sets and one
// price per currency.
type Product struct {
	ID          string         `gorm:"primaryKey"`
	Name        string         `gorm:"not null"`
	Brand       string         `gorm:"not null"`
	InStock     bool           `gorm:"not null"`
	Description string
	Gallery     pq.StringArray `gorm:"type:text[]"`
	CategoryID  string         `gorm:"not null"`
	Category    Category       `gorm:"foreignKey:CategoryID"`
	Attributes  []AttributeSet `gorm:"foreignKey:ProductID"`
	Prices      []Price        `gorm:"foreignKey:ProductID"`
}

func (p *Product) TableName() string {
	return "products"
}

func (p *Product) GetID() string   { return p.ID }
func (p *Product) SetID(id string) { p.ID = id }

// AttributeSet groups the selectable values of one product attribute,
// e.g. "Size" or "Color". Type drives the storefront rendering: "swatch"
// sets render as color patches, everything else as text buttons.
type AttributeSet struct {
	ID        string      `gorm:"primaryKey"`
	Name      string      `gorm:"not null"`
	Type      string      `gorm:"not null"`
	ProductID string      `gorm:"not null"`
	Items     []Attribute `gorm:"foreignKey:AttributeSetID"`
}

func (s *AttributeSet) TableName() string {
	return "attribute_sets"
}

func (s *AttributeSet) GetID() string   { return s.ID }
func (s *AttributeSet) SetID(id string) { s.ID = id }

// Attribute is a single selectable value within an attribute set.
// DisplayValue is the human label ("Green"), Value the raw value
// ("#44FF03" for swatches, "XL" for text sets).
type Attribute struct {
	ID             string `gorm:"primaryKey"`
	DisplayValue   string `gorm:"column:display_value;not null"`
	Value          string `gorm:"not null"`
	AttributeSetID string `gorm:"not null"`
}

func (a *Attribute) TableName() string {
	return "attributes"
}

func (a *Attribute) GetID() string   { return a.ID }
func (a *Attribute) SetID(id string) { a.ID = id }
