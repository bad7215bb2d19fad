package reader

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vegasq/linqcat/model"
)

// On-disk row layouts. Decimals are kept as strings.

type orderRow struct {
	Total     string    `parquet:"total"`
	OrderDate time.Time `parquet:"order_date"`
}

type customerRow struct {
	CompanyName string     `parquet:"company_name"`
	City        string     `parquet:"city"`
	Country     string     `parquet:"country"`
	Region      *string    `parquet:"region,optional"`
	PostalCode  string     `parquet:"postal_code"`
	Phone       string     `parquet:"phone"`
	Orders      []orderRow `parquet:"orders"`
}

type supplierRow struct {
	City    string `parquet:"city"`
	Country string `parquet:"country"`
}

type productRow struct {
	Category     string `parquet:"category"`
	UnitsInStock int64  `parquet:"units_in_stock"`
	UnitPrice    string `parquet:"unit_price"`
}

func (r customerRow) toModel() (model.Customer, error) {
	orders := make([]model.Order, 0, len(r.Orders))
	for i, o := range r.Orders {
		total, err := decimal.NewFromString(o.Total)
		if err != nil {
			return model.Customer{}, fmt.Errorf("customer %q order %d: invalid total %q: %w", r.CompanyName, i, o.Total, err)
		}
		orders = append(orders, model.Order{Total: total, OrderDate: o.OrderDate.UTC()})
	}

	return model.Customer{
		CompanyName: r.CompanyName,
		City:        r.City,
		Country:     r.Country,
		Region:      r.Region,
		PostalCode:  r.PostalCode,
		Phone:       r.Phone,
		Orders:      orders,
	}, nil
}

func fromCustomer(c model.Customer) customerRow {
	orders := make([]orderRow, 0, len(c.Orders))
	for _, o := range c.Orders {
		orders = append(orders, orderRow{Total: o.Total.String(), OrderDate: o.OrderDate})
	}

	return customerRow{
		CompanyName: c.CompanyName,
		City:        c.City,
		Country:     c.Country,
		Region:      c.Region,
		PostalCode:  c.PostalCode,
		Phone:       c.Phone,
		Orders:      orders,
	}
}

func (r supplierRow) toModel() (model.Supplier, error) {
	return model.Supplier{City: r.City, Country: r.Country}, nil
}

func fromSupplier(s model.Supplier) supplierRow {
	return supplierRow{City: s.City, Country: s.Country}
}

func (r productRow) toModel() (model.Product, error) {
	price, err := decimal.NewFromString(r.UnitPrice)
	if err != nil {
		return model.Product{}, fmt.Errorf("product in %q: invalid unit price %q: %w", r.Category, r.UnitPrice, err)
	}
	return model.Product{Category: r.Category, UnitsInStock: int(r.UnitsInStock), UnitPrice: price}, nil
}

func fromProduct(p model.Product) productRow {
	return productRow{Category: p.Category, UnitsInStock: int64(p.UnitsInStock), UnitPrice: p.UnitPrice.String()}
}
