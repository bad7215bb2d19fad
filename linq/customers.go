package linq

import (
	"cmp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vegasq/linqcat/model"
)

// HighValueCustomers returns the customers whose order totals sum to strictly
// more than limit, in input order.
func HighValueCustomers(customers []model.Customer, limit decimal.Decimal) ([]model.Customer, error) {
	if err := requireCollection("customers", customers); err != nil {
		return nil, err
	}

	return filter(customers, func(c model.Customer) bool {
		return c.OrderTotal().GreaterThan(limit)
	}), nil
}

// CustomersWithOrderAbove returns the customers having at least one order
// whose total is strictly above limit.
func CustomersWithOrderAbove(customers []model.Customer, limit decimal.Decimal) ([]model.Customer, error) {
	if err := requireCollection("customers", customers); err != nil {
		return nil, err
	}

	return filter(customers, func(c model.Customer) bool {
		for _, o := range c.Orders {
			if o.Total.GreaterThan(limit) {
				return true
			}
		}
		return false
	}), nil
}

// CustomersWithFirstOrderDate pairs every customer that has orders with the
// date of its earliest order. Customers without orders are left out.
func CustomersWithFirstOrderDate(customers []model.Customer) ([]CustomerEntry, error) {
	if err := requireCollection("customers", customers); err != nil {
		return nil, err
	}

	return firstOrderEntries(customers), nil
}

// CustomersRankedByEntryCohort returns the result of CustomersWithFirstOrderDate
// ordered by entry year, then entry month, then order total descending, then
// company name. Entries equal on all four keys keep their input order.
func CustomersRankedByEntryCohort(customers []model.Customer) ([]CustomerEntry, error) {
	if err := requireCollection("customers", customers); err != nil {
		return nil, err
	}

	return orderBy(firstOrderEntries(customers),
		asc(func(a, b CustomerEntry) int {
			return cmp.Compare(a.FirstOrderDate.Year(), b.FirstOrderDate.Year())
		}),
		asc(func(a, b CustomerEntry) int {
			return cmp.Compare(a.FirstOrderDate.Month(), b.FirstOrderDate.Month())
		}),
		desc(func(a, b CustomerEntry) int {
			return a.Customer.OrderTotal().Cmp(b.Customer.OrderTotal())
		}),
		asc(func(a, b CustomerEntry) int {
			return strings.Compare(a.Customer.CompanyName, b.Customer.CompanyName)
		}),
	), nil
}

func firstOrderEntries(customers []model.Customer) []CustomerEntry {
	entries := make([]CustomerEntry, 0, len(customers))
	for _, c := range customers {
		if !c.HasOrders() {
			continue
		}
		entries = append(entries, CustomerEntry{Customer: c, FirstOrderDate: firstOrderDate(c.Orders)})
	}
	return entries
}

// firstOrderDate expects at least one order
func firstOrderDate(orders []model.Order) time.Time {
	first := orders[0].OrderDate
	for _, o := range orders[1:] {
		if o.OrderDate.Before(first) {
			first = o.OrderDate
		}
	}
	return first
}

// CustomersWithIncompleteProfile returns the customers with at least one of:
// a phone number not starting with "(", a postal code that is not an integer,
// or a missing or blank region.
func CustomersWithIncompleteProfile(customers []model.Customer) ([]model.Customer, error) {
	if err := requireCollection("customers", customers); err != nil {
		return nil, err
	}

	return filter(customers, func(c model.Customer) bool {
		return !strings.HasPrefix(c.Phone, "(") || !isIntegerPostalCode(c.PostalCode) || isBlank(c.Region)
	}), nil
}

// isIntegerPostalCode accepts an optionally signed 32-bit integer surrounded
// by whitespace.
func isIntegerPostalCode(code string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(code), 10, 32)
	return err == nil
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// CityIncomeStats returns one row per distinct city, in the order cities are
// first encountered.
//
// The two averages are rounded differently: income is rounded to the nearest
// integer with halves away from zero, intensity is truncated toward zero.
func CityIncomeStats(customers []model.Customer) ([]CityStats, error) {
	if err := requireCollection("customers", customers); err != nil {
		return nil, err
	}

	groups := groupBy(customers, func(c model.Customer) string { return c.City })

	stats := make([]CityStats, 0, len(groups))
	for _, g := range groups {
		stats = append(stats, CityStats{
			City:             g.key,
			AverageIncome:    averageIncome(g.items),
			AverageIntensity: averageIntensity(g.items),
		})
	}
	return stats, nil
}

// averageIncome expects a non-empty group
func averageIncome(customers []model.Customer) int {
	sum := decimal.Zero
	for _, c := range customers {
		sum = sum.Add(c.OrderTotal())
	}
	return int(sum.DivRound(decimal.NewFromInt(int64(len(customers))), 0).IntPart())
}

// averageIntensity expects a non-empty group
func averageIntensity(customers []model.Customer) int {
	orders := 0
	for _, c := range customers {
		orders += c.OrderCount()
	}
	return orders / len(customers)
}
