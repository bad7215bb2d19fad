package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a single order placed by a customer.
type Order struct {
	Total     decimal.Decimal
	OrderDate time.Time
}

// Customer is a company together with the orders it owns.
//
// Region is nil when the source has no value for it. Orders may be empty.
type Customer struct {
	CompanyName string
	City        string
	Country     string
	Region      *string
	PostalCode  string
	Phone       string
	Orders      []Order
}

// OrderTotal returns the sum of Total across all orders.
func (c Customer) OrderTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, o := range c.Orders {
		sum = sum.Add(o.Total)
	}
	return sum
}

// OrderCount returns the number of orders.
func (c Customer) OrderCount() int {
	return len(c.Orders)
}

// HasOrders reports whether the customer placed at least one order.
func (c Customer) HasOrders() bool {
	return len(c.Orders) > 0
}

// Supplier is identified for correlation purposes by its location only.
type Supplier struct {
	City    string
	Country string
}

// Product is a catalogue item.
type Product struct {
	Category     string
	UnitsInStock int
	UnitPrice    decimal.Decimal
}

// CategoryGroup holds the products of one category, grouped again by stock level.
type CategoryGroup struct {
	Category    string
	StockGroups []StockPriceGroup
}

// StockPriceGroup holds the unit prices of products that share a stock level.
type StockPriceGroup struct {
	UnitsInStock int
	Prices       []decimal.Decimal
}
