package linq

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vegasq/linqcat/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}

func order(total string, at time.Time) model.Order {
	return model.Order{Total: dec(total), OrderDate: at}
}

// customer builds a customer whose profile is complete
func customer(name, city, country string, orders ...model.Order) model.Customer {
	return model.Customer{
		CompanyName: name,
		City:        city,
		Country:     country,
		Region:      strPtr("WA"),
		PostalCode:  "98124",
		Phone:       "(206) 555-0100",
		Orders:      orders,
	}
}

func companyNames(customers []model.Customer) []string {
	names := make([]string, 0, len(customers))
	for _, c := range customers {
		names = append(names, c.CompanyName)
	}
	return names
}

func entryNames(entries []CustomerEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Customer.CompanyName)
	}
	return names
}

func priceStrings(prices []decimal.Decimal) []string {
	result := make([]string, 0, len(prices))
	for _, p := range prices {
		result = append(result, p.String())
	}
	return result
}

func productPrices(products []model.Product) []string {
	result := make([]string, 0, len(products))
	for _, p := range products {
		result = append(result, p.UnitPrice.String())
	}
	return result
}

// sampleCustomers covers customers with and without orders in three cities
func sampleCustomers() []model.Customer {
	return []model.Customer{
		customer("Alfreds Futterkiste", "Berlin", "Germany",
			order("814.50", day(1997, 8, 25)),
			order("878.00", day(1997, 10, 3)),
		),
		customer("Ana Trujillo", "México D.F.", "Mexico",
			order("88.80", day(1996, 9, 18)),
		),
		customer("Around the Horn", "London", "UK",
			order("480.00", day(1996, 11, 15)),
			order("1200.00", day(1997, 2, 21)),
			order("403.20", day(1996, 12, 16)),
		),
		customer("Paris spécialités", "Paris", "France"),
		customer("Seven Seas Imports", "London", "UK",
			order("1500.00", day(1996, 11, 20)),
		),
	}
}

func sampleSuppliers() []model.Supplier {
	return []model.Supplier{
		{City: "London", Country: "UK"},
		{City: "Berlin", Country: "Germany"},
		{City: "London", Country: "Canada"},
		{City: "New Orleans", Country: "USA"},
		{City: "London", Country: "UK"},
	}
}
