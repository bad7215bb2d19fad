package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vegasq/linqcat/catalog"
	"github.com/vegasq/linqcat/linq"
	"github.com/vegasq/linqcat/model"
	"github.com/vegasq/linqcat/reader"
	"go.uber.org/zap"
)

// writeDataset creates a dataset directory with customers and suppliers only
func writeDataset(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	customers := []model.Customer{
		{
			CompanyName: "Around the Horn", City: "London", Country: "UK",
			PostalCode: "WA1 1DP", Phone: "(171) 555-7788",
			Orders: []model.Order{
				{Total: decimal.RequireFromString("480"), OrderDate: time.Date(1996, 11, 15, 0, 0, 0, 0, time.UTC)},
				{Total: decimal.RequireFromString("1200"), OrderDate: time.Date(1997, 2, 21, 0, 0, 0, 0, time.UTC)},
			},
		},
		{
			CompanyName: "Seven Seas Imports", City: "London", Country: "UK",
			PostalCode: "OX15 4NB", Phone: "(171) 555-1717",
			Orders: []model.Order{
				{Total: decimal.RequireFromString("1500"), OrderDate: time.Date(1996, 11, 20, 0, 0, 0, 0, time.UTC)},
			},
		},
	}
	if err := reader.WriteCustomers(filepath.Join(dir, reader.CustomersFile), customers); err != nil {
		t.Fatalf("WriteCustomers() error = %v", err)
	}

	suppliers := []model.Supplier{{City: "London", Country: "UK"}, {City: "Tokyo", Country: "Japan"}}
	if err := reader.WriteSuppliers(filepath.Join(dir, reader.SuppliersFile), suppliers); err != nil {
		t.Fatalf("WriteSuppliers() error = %v", err)
	}

	return dir
}

func testConfig(dir, op, format string) config {
	return config{
		op:     op,
		format: format,
		dir:    dir,
		params: catalog.Params{
			Limit:     decimal.NewFromInt(1600),
			Cheap:     decimal.NewFromInt(10),
			Middle:    decimal.NewFromInt(20),
			Expensive: decimal.NewFromInt(50),
		},
	}
}

func TestExecute_HighValueJSON(t *testing.T) {
	dir := writeDataset(t)

	var buf bytes.Buffer
	if err := execute(testConfig(dir, "high-value", "jsonl"), &buf, zap.NewNop()); err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("execute() produced %d lines, want 1:\n%s", len(lines), buf.String())
	}

	var row map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &row); err != nil {
		t.Fatalf("invalid JSON line: %v", err)
	}
	if row["company_name"] != "Around the Horn" {
		t.Errorf("company_name = %v, want Around the Horn", row["company_name"])
	}
	if row["order_total"] != "1680" {
		t.Errorf("order_total = %v, want 1680", row["order_total"])
	}
}

func TestExecute_CityStatsCSV(t *testing.T) {
	dir := writeDataset(t)

	var buf bytes.Buffer
	if err := execute(testConfig(dir, "city-stats", "csv"), &buf, zap.NewNop()); err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	want := "city,average_income,average_intensity\nLondon,1590,1\n"
	if buf.String() != want {
		t.Errorf("execute() output = %q, want %q", buf.String(), want)
	}
}

func TestExecute_CountryCodesTable(t *testing.T) {
	dir := writeDataset(t)

	var buf bytes.Buffer
	if err := execute(testConfig(dir, "country-codes", "table"), &buf, zap.NewNop()); err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(buf.String(), "UKJapan") {
		t.Errorf("execute() output missing UKJapan:\n%s", buf.String())
	}
}

func TestExecute_MissingProducts(t *testing.T) {
	dir := writeDataset(t)

	err := execute(testConfig(dir, "price-tiers", "csv"), &bytes.Buffer{}, zap.NewNop())
	if !errors.Is(err, linq.ErrInvalidArgument) {
		t.Errorf("execute() error = %v, want invalid argument for missing products", err)
	}
}

func TestExecute_UsageErrors(t *testing.T) {
	dir := writeDataset(t)

	tests := []struct {
		name    string
		cfg     config
		wantErr error
	}{
		{"missing dir", testConfig("", "city-stats", "csv"), errUsage},
		{"missing op", testConfig(dir, "", "csv"), errUsage},
		{"unknown op", testConfig(dir, "nope", "csv"), catalog.ErrUnknownOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execute(tt.cfg, &bytes.Buffer{}, zap.NewNop())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("execute() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	schemaAndOp := testConfig(dir, "city-stats", "csv")
	schemaAndOp.schema = true
	if err := execute(schemaAndOp, &bytes.Buffer{}, zap.NewNop()); !errors.Is(err, errUsage) {
		t.Errorf("execute() with -schema and -op error = %v, want usage error", err)
	}

	if err := execute(testConfig(dir, "city-stats", "xml"), &bytes.Buffer{}, zap.NewNop()); err == nil {
		t.Error("execute() with an unknown format should fail")
	}

	if err := execute(testConfig(filepath.Join(dir, "missing"), "city-stats", "csv"), &bytes.Buffer{}, zap.NewNop()); err == nil ||
		!strings.Contains(err.Error(), "not found") {
		t.Errorf("execute() on a missing dataset error = %v, want not found", err)
	}
}

func TestExecute_List(t *testing.T) {
	cfg := config{list: true, format: "csv"}

	var buf bytes.Buffer
	if err := execute(cfg, &buf, zap.NewNop()); err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(catalog.Names())+1 {
		t.Errorf("list produced %d lines, want %d", len(lines), len(catalog.Names())+1)
	}
	if lines[0] != "name,description" {
		t.Errorf("list header = %q", lines[0])
	}
}

func TestExecute_Schema(t *testing.T) {
	dir := writeDataset(t)
	cfg := testConfig(dir, "", "csv")
	cfg.schema = true

	var buf bytes.Buffer
	if err := execute(cfg, &buf, zap.NewNop()); err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"customers.parquet,company_name", "customers.parquet,orders.total", "suppliers.parquet,country"} {
		if !strings.Contains(out, want) {
			t.Errorf("schema output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "products.parquet") {
		t.Errorf("schema output lists a missing file:\n%s", out)
	}
}

func TestNewLogger(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		logger, err := newLogger(verbose)
		if err != nil {
			t.Fatalf("newLogger(%v) error = %v", verbose, err)
		}
		if got := logger.Core().Enabled(zap.DebugLevel); got != verbose {
			t.Errorf("newLogger(%v) debug enabled = %v", verbose, got)
		}
	}
}
