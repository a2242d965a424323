package graphql

import (
	"errors"
	"log/slog"

	"github.com/valenieksvladislavs/ScandiWebTest2025/models"
)

type CategoryProvider interface {
	GetAllCategories() ([]models.Category, error)
}

type ProductProvider interface {
	ListProducts(categoryID string) ([]models.Product, error)
	GetProduct(id string) (*models.Product, error)
}

type OrderPlacer interface {
	CreateOrder(items []models.OrderLine) error
}

// Resolver backs the schema's root fields. Repositories come in through the
// constructor so the schema carries no global state.
type Resolver struct {
	categories CategoryProvider
	products   ProductProvider
	orders     OrderPlacer
}

func NewResolver(c CategoryProvider, p ProductProvider, o OrderPlacer) *Resolver {
	return &Resolver{
		categories: c,
		products:   p,
		orders:     o,
	}
}

func (r *Resolver) Categories() ([]models.Category, error) {
	return r.categories.GetAllCategories()
}

func (r *Resolver) Products(category string) ([]models.Product, error) {
	return r.products.ListProducts(category)
}

// Product resolves to nil (a GraphQL null) when the id does not exist;
// a missing product is not an error for the storefront.
func (r *Resolver) Product(id string) (*models.Product, error) {
	product, err := r.products.GetProduct(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return product, nil
}

// CreateOrder reports only success or failure to the client. A failed
// transaction is logged server-side and surfaces as false, never as a
// partial order.
func (r *Resolver) CreateOrder(items []models.OrderLine) bool {
	if err := r.orders.CreateOrder(items); err != nil {
		slog.Error("order placement failed", "error", err, "items", len(items))
		return false
	}
	return true
}
