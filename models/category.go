package models

// Category represents a product category.
// The id doubles as the category slug (e.g. "clothes", "tech"), matching the
// identifiers used by the seed data and the storefront UI.
type Category struct {
	ID   string `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func (c *Category) TableName() string {
	return "categories"
}

func (c *Category) GetID() string   { return c.ID }
func (c *Category) SetID(id string) { c.ID = id }
