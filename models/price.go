package models

import (
	"github.com/shopspring/decimal"
)

// Price is a product price in one currency.
type Price struct {
	ID         string          `gorm:"primaryKey"`
	Amount     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CurrencyID string          `gorm:"not null"`
	ProductID  string          `gorm:"not null"`
	Currency   Currency        `gorm:"foreignKey:CurrencyID"`
}

func (p *Price) TableName() string {
	return "prices"
}

func (p *Price) GetID() string   { return p.ID }
func (p *Price) SetID(id string) { p.ID = id }

// Currency holds the display data for a currency, e.g. label "USD",
// symbol "$". The id is the ISO code.
type Currency struct {
	ID     string `gorm:"primaryKey"`
	Label  string `gorm:"not null"`
	Symbol string `gorm:"not null"`
}

func (c *Currency) TableName() string {
	return "currencies"
}

func (c *Currency) GetID() string   { return c.ID }
func (c *Currency) SetID(id string) { c.ID = id }
