package linq

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vegasq/linqcat/model"
)

// CustomerSuppliers pairs a customer with the suppliers located in the same
// city and country.
type CustomerSuppliers struct {
	Customer  model.Customer
	Suppliers []model.Supplier
}

// CustomerEntry pairs a customer with the date of its earliest order.
type CustomerEntry struct {
	Customer       model.Customer
	FirstOrderDate time.Time
}

// PriceTier holds the products whose unit price falls at or below Threshold
// and above the previous tier's threshold.
type PriceTier struct {
	Threshold decimal.Decimal
	Products  []model.Product
}

// CityStats summarizes the customers of one city.
//
// AverageIncome is the mean order total rounded half away from zero.
// AverageIntensity is the mean order count truncated toward zero.
type CityStats struct {
	City             string
	AverageIncome    int
	AverageIntensity int
}
