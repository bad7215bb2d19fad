package linq

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/vegasq/linqcat/model"
)

// location is the value suppliers and customers are correlated on
type location struct {
	city    string
	country string
}

func supplierLocation(s model.Supplier) location {
	return location{city: s.City, country: s.Country}
}

func customerLocation(c model.Customer) location {
	return location{city: c.City, country: c.Country}
}

// CustomersWithMatchingSuppliers pairs every customer with the suppliers that
// share its city and country. All customers are returned, in input order,
// including those without a matching supplier.
func CustomersWithMatchingSuppliers(customers []model.Customer, suppliers []model.Supplier) ([]CustomerSuppliers, error) {
	if err := requireCollection("customers", customers); err != nil {
		return nil, err
	}
	if err := requireCollection("suppliers", suppliers); err != nil {
		return nil, err
	}

	result := make([]CustomerSuppliers, 0, len(customers))
	for _, c := range customers {
		loc := customerLocation(c)
		result = append(result, CustomerSuppliers{
			Customer: c,
			Suppliers: filter(suppliers, func(s model.Supplier) bool {
				return supplierLocation(s) == loc
			}),
		})
	}
	return result, nil
}

// CustomersWithMatchingSuppliersGrouped returns the same pairs as
// CustomersWithMatchingSuppliers. Suppliers are grouped by location once and
// each customer is looked up in that index instead of scanning all suppliers.
func CustomersWithMatchingSuppliersGrouped(customers []model.Customer, suppliers []model.Supplier) ([]CustomerSuppliers, error) {
	if err := requireCollection("customers", customers); err != nil {
		return nil, err
	}
	if err := requireCollection("suppliers", suppliers); err != nil {
		return nil, err
	}

	byLocation := make(map[location][]model.Supplier)
	for _, g := range groupBy(suppliers, supplierLocation) {
		byLocation[g.key] = g.items
	}

	result := make([]CustomerSuppliers, 0, len(customers))
	for _, c := range customers {
		matched := byLocation[customerLocation(c)]
		if matched == nil {
			matched = []model.Supplier{}
		}
		// customers in the same location must not share a slice
		result = append(result, CustomerSuppliers{Customer: c, Suppliers: slices.Clone(matched)})
	}
	return result, nil
}

// ConcatenatedDistinctCountryCodes orders supplier countries by length and
// then by first character, removes duplicates keeping the first occurrence,
// and joins them without a separator.
//
// Countries of equal length that start with the same character keep their
// input order. An empty country sorts before any other of length zero.
func ConcatenatedDistinctCountryCodes(suppliers []model.Supplier) (string, error) {
	if err := requireCollection("suppliers", suppliers); err != nil {
		return "", err
	}

	countries := make([]string, 0, len(suppliers))
	for _, s := range suppliers {
		countries = append(countries, s.Country)
	}

	sorted := orderBy(countries,
		asc(func(a, b string) int { return len(a) - len(b) }),
		asc(func(a, b string) int { return strings.Compare(firstChar(a), firstChar(b)) }),
	)

	seen := make(map[string]bool)
	var b strings.Builder
	for _, country := range sorted {
		if seen[country] {
			continue
		}
		seen[country] = true
		b.WriteString(country)
	}
	return b.String(), nil
}

// firstChar returns the first rune of s as a string, or "" for an empty string
func firstChar(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}
