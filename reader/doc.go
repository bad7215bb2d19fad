// Package reader loads the customer, supplier and product datasets from
// Apache Parquet files and writes them back.
//
// # Files
//
// A dataset directory holds up to three files:
//
//	customers.parquet   company_name, city, country, region (optional),
//	                    postal_code, phone, orders (repeated total, order_date)
//	suppliers.parquet   city, country
//	products.parquet    category, units_in_stock, unit_price
//
// Money columns are stored as decimal strings so that no precision is lost.
//
// # Basic Usage
//
//	ds, err := reader.LoadDataset("testdata/northwind")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(ds.Customers), len(ds.Suppliers), len(ds.Products))
//
// Single record kinds can be read directly. Paths may be glob patterns, in
// which case the records of every matching file are concatenated in path
// order:
//
//	customers, err := reader.ReadCustomers("data/customers-*.parquet")
//
// The package uses github.com/parquet-go/parquet-go for the underlying
// parquet file operations.
package reader
