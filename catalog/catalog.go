// Package catalog exposes the queries of package linq by name and flattens
// their typed results into rows for package output.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vegasq/linqcat/linq"
	"github.com/vegasq/linqcat/model"
	"github.com/vegasq/linqcat/reader"
)

// ErrUnknownOperation is returned by Lookup and Run for an unregistered name.
var ErrUnknownOperation = errors.New("unknown operation")

// Params carries the numeric arguments some operations take.
type Params struct {
	Limit     decimal.Decimal
	Cheap     decimal.Decimal
	Middle    decimal.Decimal
	Expensive decimal.Decimal
}

// Result is the flattened output of one operation.
type Result struct {
	Columns []string
	Rows    []map[string]interface{}
}

// Operation is a named query.
type Operation struct {
	Name        string
	Description string
	Columns     []string
	run         func(ds *reader.Dataset, p Params) ([]map[string]interface{}, error)
}

var customerColumns = []string{"company_name", "city", "country", "order_total", "order_count"}

var operations = map[string]Operation{
	"high-value": {
		Name:        "high-value",
		Description: "customers whose order total is above -limit-value",
		Columns:     customerColumns,
		run: func(ds *reader.Dataset, p Params) ([]map[string]interface{}, error) {
			customers, err := linq.HighValueCustomers(ds.Customers, p.Limit)
			return customerRows(customers), err
		},
	},
	"matching-suppliers": {
		Name:        "matching-suppliers",
		Description: "every customer with the suppliers in its city and country",
		Columns:     []string{"company_name", "city", "country", "supplier_count"},
		run: func(ds *reader.Dataset, p Params) ([]map[string]interface{}, error) {
			pairs, err := linq.CustomersWithMatchingSuppliers(ds.Customers, ds.Suppliers)
			return supplierPairRows(pairs), err
		},
	},
	"matching-suppliers-grouped": {
		Name:        "matching-suppliers-grouped",
		Description: "matching-suppliers computed through a supplier location index",
		Columns:     []string{"company_name", "city", "country", "supplier_count"},
		run: func(ds *reader.Dataset, p Params) ([]map[string]interface{}, error) {
			pairs, err := linq.CustomersWithMatchingSuppliersGrouped(ds.Customers, ds.Suppliers)
			return supplierPairRows(pairs), err
		},
	},
	"order-above": {
		Name:        "order-above",
		Description: "customers with a single order above -limit-value",
		Columns:     customerColumns,
		run: func(ds *reader.Dataset, p Params) ([]map[string]interface{}, error) {
			customers, err := linq.CustomersWithOrderAbove(ds.Customers, p.Limit)
			return customerRows(customers), err
		},
	},
	"first-order": {
		Name:        "first-order",
		Description: "customers with the date of their first order",
		Columns:     []string{"company_name", "first_order_date", "order_total"},
		run: func(ds *reader.Dataset, p Params) ([]map[string]interface{}, error) {
			entries, err := linq.CustomersWithFirstOrderDate(ds.Customers)
			return entryRows(entries), err
		},
	},
	"entry-cohort": {
		Name:        "entry-cohort",
		Description: "first-order ranked by year, month, total descending and name",
		Columns:     []string{"company_name", "first_order_date", "order_total"},
		run: func(ds *reader.Dataset, p Params) ([]map[string]interface{}, error) {
			entries, err := linq.CustomersRankedByEntryCohort(ds.Customers)
			return entryRows(entries), err
		},
	},
	"incomplete-profile": {
		Name:        "incomplete-profile",
		Description: "customers with a malformed phone, postal code or region",
		Columns:     []string{"company_name", "phone", "postal_code", "region"},
		run: func(ds *reader.Dataset, p Params) ([]map[string]interface{}, error) {
			customers, err := linq.CustomersWithIncompleteProfile(ds.Customers)
			rows := make([]map[string]interface{}, 0, len(customers))
			for _, c := range customers {
				rows = append(rows, map[string]interface{}{
					"company_name": c.CompanyName,
					"phone":        c.Phone,
					"postal_code":  c.PostalCode,
					"region":       c.Region,
				})
			}
			return rows, err
		},
	},
	"category-stock": {
		Name:        "category-stock",
		Description: "product prices grouped by category and units in stock",
		Columns:     []string{"category", "units_in_stock", "prices"},
		run: func(ds *reader.Dataset, p Params) ([]map[string]interface{}, error) {
			groups, err := linq.ProductsGroupedByCategoryAndStock(ds.Products)
			rows := make([]map[string]interface{}, 0)
			for _, g := range groups {
				for _, s := range g.StockGroups {
					rows = append(rows, map[string]interface{}{
						"category":       g.Category,
						"units_in_stock": s.UnitsInStock,
						"prices":         decimalStrings(s.Prices),
					})
				}
			}
			return rows, err
		},
	},
	"price-tiers": {
		Name:        "price-tiers",
		Description: "products bounded by -cheap, -middle and -expensive",
		Columns:     []string{"threshold", "product_count", "prices"},
		run: func(ds *reader.Dataset, p Params) ([]map[string]interface{}, error) {
			tiers, err := linq.ProductsBoundedByThreeTiers(ds.Products, p.Cheap, p.Middle, p.Expensive)
			rows := make([]map[string]interface{}, 0, len(tiers))
			for _, tier := range tiers {
				prices := make([]decimal.Decimal, 0, len(tier.Products))
				for _, product := range tier.Products {
					prices = append(prices, product.UnitPrice)
				}
				rows = append(rows, map[string]interface{}{
					"threshold":     tier.Threshold,
					"product_count": len(tier.Products),
					"prices":        decimalStrings(prices),
				})
			}
			return rows, err
		},
	},
	"city-stats": {
		Name:        "city-stats",
		Description: "average income and order intensity per city",
		Columns:     []string{"city", "average_income", "average_intensity"},
		run: func(ds *reader.Dataset, p Params) ([]map[string]interface{}, error) {
			stats, err := linq.CityIncomeStats(ds.Customers)
			rows := make([]map[string]interface{}, 0, len(stats))
			for _, s := range stats {
				rows = append(rows, map[string]interface{}{
					"city":              s.City,
					"average_income":    s.AverageIncome,
					"average_intensity": s.AverageIntensity,
				})
			}
			return rows, err
		},
	},
	"country-codes": {
		Name:        "country-codes",
		Description: "distinct supplier countries by length and first letter, concatenated",
		Columns:     []string{"country_codes"},
		run: func(ds *reader.Dataset, p Params) ([]map[string]interface{}, error) {
			codes, err := linq.ConcatenatedDistinctCountryCodes(ds.Suppliers)
			return []map[string]interface{}{{"country_codes": codes}}, err
		},
	},
}

// Names returns the registered operation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Operations returns all registered operations in name order.
func Operations() []Operation {
	ops := make([]Operation, 0, len(operations))
	for _, name := range Names() {
		ops = append(ops, operations[name])
	}
	return ops
}

// Lookup returns the operation registered under name.
func Lookup(name string) (Operation, error) {
	op, ok := operations[name]
	if !ok {
		return Operation{}, fmt.Errorf("%w %q (known: %s)", ErrUnknownOperation, name, strings.Join(Names(), ", "))
	}
	return op, nil
}

// Run executes the named operation over ds.
//
// A collection the operation needs but ds does not hold is reported with an
// error wrapping linq.ErrInvalidArgument.
func Run(name string, ds *reader.Dataset, p Params) (*Result, error) {
	op, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return op.Run(ds, p)
}

// Run executes the operation over ds.
func (op Operation) Run(ds *reader.Dataset, p Params) (*Result, error) {
	if ds == nil {
		return nil, fmt.Errorf("%s: %w: dataset must not be nil", op.Name, linq.ErrInvalidArgument)
	}

	rows, err := op.run(ds, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op.Name, err)
	}
	return &Result{Columns: op.Columns, Rows: rows}, nil
}

func customerRows(customers []model.Customer) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, map[string]interface{}{
			"company_name": c.CompanyName,
			"city":         c.City,
			"country":      c.Country,
			"order_total":  c.OrderTotal(),
			"order_count":  c.OrderCount(),
		})
	}
	return rows
}

func supplierPairRows(pairs []linq.CustomerSuppliers) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(pairs))
	for _, pair := range pairs {
		rows = append(rows, map[string]interface{}{
			"company_name":   pair.Customer.CompanyName,
			"city":           pair.Customer.City,
			"country":        pair.Customer.Country,
			"supplier_count": len(pair.Suppliers),
		})
	}
	return rows
}

func entryRows(entries []linq.CustomerEntry) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, map[string]interface{}{
			"company_name":     e.Customer.CompanyName,
			"first_order_date": e.FirstOrderDate,
			"order_total":      e.Customer.OrderTotal(),
		})
	}
	return rows
}

func decimalStrings(values []decimal.Decimal) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		result = append(result, v.String())
	}
	return result
}
