package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vegasq/linqcat/model"
	"github.com/vegasq/linqcat/reader"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func order(total string, at time.Time) model.Order {
	return model.Order{Total: decimal.RequireFromString(total), OrderDate: at}
}

func region(s string) *string {
	return &s
}

func main() {
	customers := []model.Customer{
		{CompanyName: "Alfreds Futterkiste", City: "Berlin", Country: "Germany", PostalCode: "12209", Phone: "030-0074321",
			Orders: []model.Order{order("814.50", date(1997, 8, 25)), order("878.00", date(1997, 10, 3)), order("330.00", date(1998, 1, 15))}},
		{CompanyName: "Ana Trujillo Emparedados y helados", City: "México D.F.", Country: "Mexico", PostalCode: "05021", Phone: "(5) 555-4729",
			Orders: []model.Order{order("88.80", date(1996, 9, 18)), order("479.75", date(1997, 8, 8))}},
		{CompanyName: "Around the Horn", City: "London", Country: "UK", PostalCode: "WA1 1DP", Phone: "(171) 555-7788",
			Orders: []model.Order{order("480.00", date(1996, 11, 15)), order("403.20", date(1996, 12, 16)), order("1200.00", date(1997, 2, 21))}},
		{CompanyName: "Great Lakes Food Market", City: "Eugene", Country: "USA", Region: region("OR"), PostalCode: "97403", Phone: "(503) 555-7555",
			Orders: []model.Order{order("1152.50", date(1997, 2, 21)), order("2233.60", date(1997, 5, 13))}},
		{CompanyName: "Hungry Coyote Import Store", City: "Elgin", Country: "USA", Region: region("OR"), PostalCode: "97827", Phone: "(503) 555-6874",
			Orders: []model.Order{order("480.00", date(1996, 12, 6))}},
		{CompanyName: "Lonesome Pine Restaurant", City: "Portland", Country: "USA", Region: region("OR"), PostalCode: "97219", Phone: "(503) 555-9573",
			Orders: []model.Order{order("1416.00", date(1996, 12, 6)), order("392.20", date(1997, 7, 15))}},
		{CompanyName: "Paris spécialités", City: "Paris", Country: "France", Region: region(" "), PostalCode: "75012", Phone: "(1) 42.34.22.66"},
		{CompanyName: "Seven Seas Imports", City: "London", Country: "UK", PostalCode: "OX15 4NB", Phone: "(171) 555-1717",
			Orders: []model.Order{order("1500.00", date(1996, 11, 20))}},
		{CompanyName: "The Big Cheese", City: "Portland", Country: "USA", Region: region("OR"), PostalCode: "97201", Phone: "(503) 555-3612",
			Orders: []model.Order{order("336.00", date(1996, 12, 20)), order("3127.00", date(1998, 3, 4))}},
	}

	suppliers := []model.Supplier{
		{City: "London", Country: "UK"},
		{City: "New Orleans", Country: "USA"},
		{City: "Ann Arbor", Country: "USA"},
		{City: "Tokyo", Country: "Japan"},
		{City: "Berlin", Country: "Germany"},
		{City: "Paris", Country: "France"},
		{City: "Bend", Country: "USA"},
		{City: "Montréal", Country: "Canada"},
		{City: "London", Country: "UK"},
	}

	products := []model.Product{
		{Category: "Beverages", UnitsInStock: 39, UnitPrice: decimal.RequireFromString("18.00")},
		{Category: "Beverages", UnitsInStock: 17, UnitPrice: decimal.RequireFromString("19.00")},
		{Category: "Condiments", UnitsInStock: 13, UnitPrice: decimal.RequireFromString("10.00")},
		{Category: "Condiments", UnitsInStock: 53, UnitPrice: decimal.RequireFromString("22.00")},
		{Category: "Produce", UnitsInStock: 15, UnitPrice: decimal.RequireFromString("30.00")},
		{Category: "Beverages", UnitsInStock: 17, UnitPrice: decimal.RequireFromString("263.50")},
		{Category: "Condiments", UnitsInStock: 0, UnitPrice: decimal.RequireFromString("21.35")},
		{Category: "Produce", UnitsInStock: 20, UnitPrice: decimal.RequireFromString("53.00")},
	}

	dir := "northwind"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal(err)
	}
	if err := reader.WriteCustomers(filepath.Join(dir, reader.CustomersFile), customers); err != nil {
		log.Fatal(err)
	}
	if err := reader.WriteSuppliers(filepath.Join(dir, reader.SuppliersFile), suppliers); err != nil {
		log.Fatal(err)
	}
	if err := reader.WriteProducts(filepath.Join(dir, reader.ProductsFile), products); err != nil {
		log.Fatal(err)
	}

	log.Printf("Generated %s with %d customers, %d suppliers, %d products", dir, len(customers), len(suppliers), len(products))
}
