package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderLine is one submitted checkout line: the product reference plus the
// snapshot data the client sends (name, unit price, selected attributes).
type OrderLine struct {
	ProductID  string
	Name       string
	Price      decimal.Decimal
	Quantity   int
	Attributes string
}

// OrderTotal sums price times quantity over the submitted lines.
func OrderTotal(items []OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

type OrdersRepository struct {
	db *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		db: db,
	}
}

// CreateOrder persists one order and its items atomically. The order and
// every item land together or not at all: any insert error rolls the whole
// transaction back and is returned to the caller.
func (r *OrdersRepository) CreateOrder(items []OrderLine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		order := &Order{
			ID:        uuid.NewString(),
			Total:     OrderTotal(items),
			Status:    "pending",
			CreatedAt: time.Now(),
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, line := range items {
			item := &OrderItem{
				ID:         uuid.NewString(),
				OrderID:    order.ID,
				ProductID:  line.ProductID,
				Name:       line.Name,
				Price:      line.Price,
				Quantity:   line.Quantity,
				Attributes: line.Attributes,
			}
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
