package models

import (
	"gorm.io/gorm"
)

// CategoriesRepository is the generic repository specialized for categories.
type CategoriesRepository struct {
	*Repository[Category, *Category]
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{Repository: NewRepository[Category, *Category](db)}
}

// GetAllCategories lists every category in the catalog.
func (r *CategoriesRepository) GetAllCategories() ([]Category, error) {
	return r.GetAll()
}
