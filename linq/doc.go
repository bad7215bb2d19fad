// Package linq implements a fixed catalogue of declarative queries over the
// customer/order and supplier/product datasets defined in package model.
//
// Every query is a pure function. Inputs are never modified and results are
// computed eagerly, so the returned slices are complete and owned by the
// caller when the function returns. Calling a query twice with the same
// input yields equal results.
//
// # Queries
//
// Customer queries:
//   - HighValueCustomers: order sum strictly above a limit
//   - CustomersWithOrderAbove: any single order above a limit
//   - CustomersWithFirstOrderDate: earliest order date per customer
//   - CustomersRankedByEntryCohort: the above, ordered by entry year and month
//   - CustomersWithIncompleteProfile: phone, postal code or region is malformed
//   - CityIncomeStats: per-city average income and order intensity
//
// Correlated queries:
//   - CustomersWithMatchingSuppliers: suppliers in the customer's city and country
//   - CustomersWithMatchingSuppliersGrouped: same result through a location index
//
// Product and supplier queries:
//   - ProductsGroupedByCategoryAndStock: two-level grouping
//   - ProductsBoundedByThreeTiers: price tiers bounded by three thresholds
//   - ConcatenatedDistinctCountryCodes: distinct ordered country names
//
// # Error Handling
//
// A nil collection argument is rejected with an error wrapping
// ErrInvalidArgument before any traversal happens. An empty, non-nil slice is
// valid input. Malformed record values, such as a postal code that is not a
// number, are data conditions handled by the queries and never errors.
//
//	customers, err := linq.HighValueCustomers(nil, decimal.NewFromInt(100))
//	if errors.Is(err, linq.ErrInvalidArgument) {
//	    // ...
//	}
package linq
