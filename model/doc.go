// Package model defines the records the query catalogue operates on.
//
// Two datasets are modelled:
//   - Customers, each owning an ordered list of Orders
//   - Suppliers and Products, which are independent of customers
//
// Suppliers are correlated with customers by value (City and Country), never
// by a key. CategoryGroup and StockPriceGroup are output shapes built by the
// nested grouping query and are owned by the caller.
//
// Money values use github.com/shopspring/decimal so that sums and averages
// are exact before any rounding is applied.
package model
