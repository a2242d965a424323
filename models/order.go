package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a placed checkout. Total is computed server-side from the line
// items at creation time and never changes afterwards; there is no update or
// cancel path.
type Order struct {
	ID        string          `gorm:"primaryKey"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status    string          `gorm:"not null;default:pending"`
	CreatedAt time.Time       `gorm:"not null"`
	Items     []OrderItem     `gorm:"foreignKey:OrderID"`
}

func (o *Order) TableName() string {
	return "orders"
}

// OrderItem is one line of an order. Name, Price and Attributes are a
// snapshot of the product state and the shopper's selection at the time the
// order was placed, so later catalog edits do not rewrite order history.
// Attributes holds the selection map JSON-encoded, e.g. {"Size":"M"}.
type OrderItem struct {
	ID         string          `gorm:"primaryKey"`
	OrderID    string          `gorm:"not null"`
	ProductID  string          `gorm:"not null"`
	Name       string          `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity   int             `gorm:"not null"`
	Attributes string          `gorm:"type:text"`
}

func (i *OrderItem) TableName() string {
	return "order_items"
}
