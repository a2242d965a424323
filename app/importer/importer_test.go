package importer

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/valenieksvladislavs/ScandiWebTest2025/models"
)

// --- Mock Store ---

type MockStore struct {
	Categories []models.Category
	Currencies []models.Currency
	Products   []models.Product
	Sets       []models.AttributeSet
	Attributes []models.Attribute
	Prices     []models.Price

	ProductErr error
}

func (m *MockStore) SaveCategory(c *models.Category) error {
	m.Categories = append(m.Categories, *c)
	return nil
}

func (m *MockStore) SaveCurrency(c *models.Currency) error {
	m.Currencies = append(m.Currencies, *c)
	return nil
}

func (m *MockStore) SaveProduct(p *models.Product) error {
	if m.ProductErr != nil {
		return m.ProductErr
	}
	m.Products = append(m.Products, *p)
	return nil
}

func (m *MockStore) SaveAttributeSet(s *models.AttributeSet) error {
	m.Sets = append(m.Sets, *s)
	return nil
}

func (m *MockStore) SaveAttribute(a *models.Attribute) error {
	m.Attributes = append(m.Attributes, *a)
	return nil
}

func (m *MockStore) SavePrice(p *models.Price) error {
	m.Prices = append(m.Prices, *p)
	return nil
}

const seedJSON = `{
  "data": {
    "categories": [
      {"name": "all"},
      {"name": "clothes"},
      {"name": "tech"}
    ],
    "products": [
      {
        "id": "huarache-x-stussy-le",
        "name": "Nike Air Huarache Le",
        "brand": "Nike x Stussy",
        "inStock": true,
        "description": "<p>Great sneakers for everyday use!</p>",
        "gallery": ["https://img/huarache-1.png", "https://img/huarache-2.png"],
        "category": "clothes",
        "attributes": [
          {
            "id": "Size",
            "name": "Size",
            "type": "text",
            "items": [
              {"id": "40", "displayValue": "40", "value": "40"},
              {"id": "41", "displayValue": "41", "value": "41"}
            ]
          }
        ],
        "prices": [
          {"amount": 144.69, "currency": {"label": "USD", "symbol": "$"}}
        ]
      },
      {
        "id": "ps-5",
        "name": "PlayStation 5",
        "brand": "Sony",
        "inStock": false,
        "description": "<p>A good gaming console.</p>",
        "gallery": ["https://img/ps5.png"],
        "category": "tech",
        "attributes": [
          {
            "id": "Color",
            "name": "Color",
            "type": "swatch",
            "items": [
              {"id": "Green", "displayValue": "Green", "value": "#44FF03"}
            ]
          }
        ],
        "prices": [
          {"amount": 844.02, "currency": {"label": "USD", "symbol": "$"}}
        ]
      }
    ]
  }
}`

// --- Tests ---

func TestImporterRun(t *testing.T) {
	store := &MockStore{}
	imp := NewImporter(store)

	err := imp.Run(strings.NewReader(seedJSON))
	assert.NoError(t, err)

	// "all" is skipped, real categories keyed by slug.
	assert.Len(t, store.Categories, 2)
	assert.Equal(t, models.Category{ID: "clothes", Name: "clothes"}, store.Categories[0])
	assert.Equal(t, models.Category{ID: "tech", Name: "tech"}, store.Categories[1])

	// USD appears in both products but is saved once.
	assert.Len(t, store.Currencies, 1)
	assert.Equal(t, models.Currency{ID: "USD", Label: "USD", Symbol: "$"}, store.Currencies[0])

	assert.Len(t, store.Products, 2)
	sneakers := store.Products[0]
	assert.Equal(t, "huarache-x-stussy-le", sneakers.ID)
	assert.Equal(t, "Nike x Stussy", sneakers.Brand)
	assert.True(t, sneakers.InStock)
	assert.Equal(t, "clothes", sneakers.CategoryID)
	assert.Len(t, sneakers.Gallery, 2)

	assert.Len(t, store.Sets, 2)
	assert.Equal(t, "huarache-x-stussy-le-Size", store.Sets[0].ID)
	assert.Equal(t, "text", store.Sets[0].Type)
	assert.Equal(t, "huarache-x-stussy-le", store.Sets[0].ProductID)

	// Attribute values survive the import byte for byte.
	assert.Len(t, store.Attributes, 3)
	assert.Equal(t, "huarache-x-stussy-le-Size-40", store.Attributes[0].ID)
	assert.Equal(t, "40", store.Attributes[0].DisplayValue)
	assert.Equal(t, "40", store.Attributes[0].Value)
	assert.Equal(t, "huarache-x-stussy-le-Size", store.Attributes[0].AttributeSetID)
	assert.Equal(t, "Green", store.Attributes[2].DisplayValue)
	assert.Equal(t, "#44FF03", store.Attributes[2].Value)

	assert.Len(t, store.Prices, 2)
	assert.Equal(t, "huarache-x-stussy-le-USD", store.Prices[0].ID)
	assert.True(t, store.Prices[0].Amount.Equal(decimal.RequireFromString("144.69")))
	assert.Equal(t, "USD", store.Prices[0].CurrencyID)
	assert.True(t, store.Prices[1].Amount.Equal(decimal.RequireFromString("844.02")))
}

func TestImporterUnknownCategory(t *testing.T) {
	seed := `{
	  "data": {
	    "categories": [{"name": "clothes"}],
	    "products": [
	      {"id": "p1", "name": "P1", "brand": "B", "inStock": true, "category": "tech"}
	    ]
	  }
	}`

	imp := NewImporter(&MockStore{})
	err := imp.Run(strings.NewReader(seed))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestImporterMalformedSeed(t *testing.T) {
	imp := NewImporter(&MockStore{})
	err := imp.Run(strings.NewReader(`{not json`))
	assert.Error(t, err)
}

func TestImporterStoreErrorStopsImport(t *testing.T) {
	store := &MockStore{ProductErr: errors.New("insert failed")}
	imp := NewImporter(store)

	err := imp.Run(strings.NewReader(seedJSON))
	assert.Error(t, err)
	assert.Empty(t, store.Sets)
	assert.Empty(t, store.Prices)
}
