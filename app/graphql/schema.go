package graphql

import (
	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"

	"github.com/valenieksvladislavs/ScandiWebTest2025/models"
)

// NewSchema builds the storefront schema around the given resolver. All
// types are constructed here, once per schema, instead of living in package
// globals.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	currencyType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Currency",
		Fields: graphql.Fields{
			"label": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Currency).Label, nil
				},
			},
			"symbol": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Currency).Symbol, nil
				},
			},
		},
	})

	priceType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Price",
		Fields: graphql.Fields{
			"amount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Price).Amount.InexactFloat64(), nil
				},
			},
			"currency": &graphql.Field{
				Type: currencyType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Price).Currency, nil
				},
			},
		},
	})

	attributeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Attribute",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Attribute).ID, nil
				},
			},
			"displayValue": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Attribute).DisplayValue, nil
				},
			},
			"value": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Attribute).Value, nil
				},
			},
		},
	})

	attributeSetType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AttributeSet",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.AttributeSet).ID, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.AttributeSet).Name, nil
				},
			},
			"type": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.AttributeSet).Type, nil
				},
			},
			"items": &graphql.Field{
				Type: graphql.NewList(attributeType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.AttributeSet).Items, nil
				},
			},
		},
	})

	categoryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Category",
		Fields: graphql.Fields{
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Category).Name, nil
				},
			},
		},
	})

	productType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Product).ID, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Product).Name, nil
				},
			},
			"brand": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Product).Brand, nil
				},
			},
			"inStock": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Product).InStock, nil
				},
			},
			"gallery": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return []string(p.Source.(models.Product).Gallery), nil
				},
			},
			"description": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Product).Description, nil
				},
			},
			"category": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Product).Category.Name, nil
				},
			},
			"attributes": &graphql.Field{
				Type: graphql.NewList(attributeSetType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Product).Attributes, nil
				},
			},
			"prices": &graphql.Field{
				Type: graphql.NewList(priceType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Product).Prices, nil
				},
			},
		},
	})

	orderItemInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "OrderItemInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"productId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"name":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"price":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
			"quantity":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			// JSON-encoded selection map, e.g. {"Size":"M","Color":"#000"}.
			"attributes": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"categories": &graphql.Field{
				Type: graphql.NewList(categoryType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Categories()
				},
			},
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"category": &graphql.ArgumentConfig{
						Type:        graphql.String,
						Description: "Filter products by category",
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					category, _ := p.Args["category"].(string)
					return r.Products(category)
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{
						Type:        graphql.NewNonNull(graphql.String),
						Description: "Product ID",
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					product, err := r.Product(p.Args["id"].(string))
					if err != nil || product == nil {
						return nil, err
					}
					return *product, nil
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createOrder": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"items": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(orderItemInput))),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					items := decodeOrderItems(p.Args["items"])
					return r.CreateOrder(items), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

// decodeOrderItems converts the coerced OrderItemInput list into order lines.
// Argument coercion has already enforced presence and scalar types of the
// non-null fields.
func decodeOrderItems(arg interface{}) []models.OrderLine {
	raw, _ := arg.([]interface{})
	items := make([]models.OrderLine, 0, len(raw))
	for _, entry := range raw {
		fields, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		productID, _ := fields["productId"].(string)
		name, _ := fields["name"].(string)
		quantity, _ := fields["quantity"].(int)
		line := models.OrderLine{
			ProductID:  productID,
			Name:       name,
			Price:      decimalFromArg(fields["price"]),
			Quantity:   quantity,
			Attributes: "{}",
		}
		if attrs, ok := fields["attributes"].(string); ok && attrs != "" {
			line.Attributes = attrs
		}
		items = append(items, line)
	}
	return items
}

func decimalFromArg(v interface{}) decimal.Decimal {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n)
	case int:
		return decimal.NewFromInt(int64(n))
	}
	return decimal.Zero
}
