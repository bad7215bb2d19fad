package linq

import (
	"cmp"

	"github.com/shopspring/decimal"
	"github.com/vegasq/linqcat/model"
)

// ProductsGroupedByCategoryAndStock groups products by category and, within a
// category, by units in stock.
//
// Categories appear in first-encountered order. Stock groups are ordered by
// units in stock descending and list the unit prices in input order.
func ProductsGroupedByCategoryAndStock(products []model.Product) ([]model.CategoryGroup, error) {
	if err := requireCollection("products", products); err != nil {
		return nil, err
	}

	categories := groupBy(products, func(p model.Product) string { return p.Category })

	result := make([]model.CategoryGroup, 0, len(categories))
	for _, category := range categories {
		result = append(result, model.CategoryGroup{
			Category:    category.key,
			StockGroups: stockGroups(category.items),
		})
	}
	return result, nil
}

func stockGroups(products []model.Product) []model.StockPriceGroup {
	byStock := orderBy(products, desc(func(a, b model.Product) int {
		return cmp.Compare(a.UnitsInStock, b.UnitsInStock)
	}))

	groups := groupBy(byStock, func(p model.Product) int { return p.UnitsInStock })

	result := make([]model.StockPriceGroup, 0, len(groups))
	for _, g := range groups {
		prices := make([]decimal.Decimal, 0, len(g.items))
		for _, p := range g.items {
			prices = append(prices, p.UnitPrice)
		}
		result = append(result, model.StockPriceGroup{UnitsInStock: g.key, Prices: prices})
	}
	return result
}

// ProductsBoundedByThreeTiers returns exactly three tiers in the order cheap,
// middle, expensive. A tier holds the products priced at or below its
// threshold and above the previous threshold. Products priced above expensive
// belong to no tier.
//
// The thresholds are expected to satisfy cheap <= middle <= expensive and are
// not validated.
func ProductsBoundedByThreeTiers(products []model.Product, cheap, middle, expensive decimal.Decimal) ([]PriceTier, error) {
	if err := requireCollection("products", products); err != nil {
		return nil, err
	}

	within := func(lower *decimal.Decimal, upper decimal.Decimal) func(model.Product) bool {
		return func(p model.Product) bool {
			if lower != nil && !p.UnitPrice.GreaterThan(*lower) {
				return false
			}
			return p.UnitPrice.LessThanOrEqual(upper)
		}
	}

	return []PriceTier{
		{Threshold: cheap, Products: filter(products, within(nil, cheap))},
		{Threshold: middle, Products: filter(products, within(&cheap, middle))},
		{Threshold: expensive, Products: filter(products, within(&middle, expensive))},
	}, nil
}
