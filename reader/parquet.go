package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/vegasq/linqcat/model"
)

// Dataset file names inside a dataset directory.
const (
	CustomersFile = "customers.parquet"
	SuppliersFile = "suppliers.parquet"
	ProductsFile  = "products.parquet"
)

// maxFiles bounds how many files a single glob pattern may expand to.
const maxFiles = 1000

// Dataset is the set of collections the queries run over.
//
// A collection is nil when its file was not present.
type Dataset struct {
	Customers []model.Customer
	Suppliers []model.Supplier
	Products  []model.Product
}

// LoadDataset reads the dataset files found in dir. Missing files are not an
// error and leave the matching collection nil.
func LoadDataset(dir string) (*Dataset, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat dataset directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("dataset path %s is not a directory", dir)
	}

	ds := &Dataset{}

	if path, ok := existing(dir, CustomersFile); ok {
		if ds.Customers, err = ReadCustomers(path); err != nil {
			return nil, err
		}
	}
	if path, ok := existing(dir, SuppliersFile); ok {
		if ds.Suppliers, err = ReadSuppliers(path); err != nil {
			return nil, err
		}
	}
	if path, ok := existing(dir, ProductsFile); ok {
		if ds.Products, err = ReadProducts(path); err != nil {
			return nil, err
		}
	}

	return ds, nil
}

func existing(dir, name string) (string, bool) {
	path := filepath.Join(dir, name)
	_, err := os.Stat(path)
	return path, err == nil
}

// ReadCustomers reads customers from a file or glob pattern.
func ReadCustomers(pattern string) ([]model.Customer, error) {
	return readRecords(pattern, customerRow.toModel)
}

// ReadSuppliers reads suppliers from a file or glob pattern.
func ReadSuppliers(pattern string) ([]model.Supplier, error) {
	return readRecords(pattern, supplierRow.toModel)
}

// ReadProducts reads products from a file or glob pattern.
func ReadProducts(pattern string) ([]model.Product, error) {
	return readRecords(pattern, productRow.toModel)
}

// WriteCustomers writes customers to path, replacing any existing file.
func WriteCustomers(path string, customers []model.Customer) error {
	return writeRecords(path, customers, fromCustomer)
}

// WriteSuppliers writes suppliers to path, replacing any existing file.
func WriteSuppliers(path string, suppliers []model.Supplier) error {
	return writeRecords(path, suppliers, fromSupplier)
}

// WriteProducts writes products to path, replacing any existing file.
func WriteProducts(path string, products []model.Product) error {
	return writeRecords(path, products, fromProduct)
}

func readRecords[R any, M any](pattern string, convert func(R) (M, error)) ([]M, error) {
	paths, err := expandPattern(pattern)
	if err != nil {
		return nil, err
	}

	records := make([]M, 0)
	for _, path := range paths {
		rows, err := readFile[R](path)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			record, err := convert(row)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			records = append(records, record)
		}
	}

	return records, nil
}

// expandPattern resolves a glob pattern to a sorted list of paths. A path
// without wildcards is returned as is so that a missing file reports the
// underlying open error.
func expandPattern(pattern string) ([]string, error) {
	if !strings.ContainsAny(pattern, "*?[") {
		return []string{pattern}, nil
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match pattern: %s", pattern)
	}
	if len(matches) > maxFiles {
		return nil, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles)
	}

	sort.Strings(matches)
	return matches, nil
}

func readFile[R any](path string) ([]R, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file %s: %w", path, err)
	}

	reader := parquet.NewGenericReader[R](pqFile)
	defer func() { _ = reader.Close() }()

	rows := make([]R, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read rows from %s: %w", path, err)
	}

	return rows[:n], nil
}

func writeRecords[M any, R any](path string, records []M, convert func(M) R) error {
	rows := make([]R, 0, len(records))
	for _, record := range records {
		rows = append(rows, convert(record))
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	writer := parquet.NewGenericWriter[R](file)
	if _, err := writer.Write(rows); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write rows to %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to close parquet writer for %s: %w", path, err)
	}

	return file.Close()
}

// Column describes one leaf column of a dataset file.
type Column struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Optional bool   `json:"optional"`
	Repeated bool   `json:"repeated"`
}

// Columns lists the leaf columns of a parquet file. Nested fields use dot
// notation, for example "orders.total".
func Columns(path string) ([]Column, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file %s: %w", path, err)
	}

	var columns []Column
	for _, field := range pqFile.Schema().Fields() {
		columns = append(columns, leafColumns(field, "", false)...)
	}
	return columns, nil
}

func leafColumns(field parquet.Field, prefix string, parentRepeated bool) []Column {
	name := field.Name()
	if prefix != "" {
		name = prefix + "." + name
	}
	repeated := parentRepeated || field.Repeated()

	if !field.Leaf() {
		var columns []Column
		for _, child := range field.Fields() {
			columns = append(columns, leafColumns(child, name, repeated)...)
		}
		return columns
	}

	return []Column{{
		Name:     name,
		Type:     field.Type().String(),
		Optional: field.Optional(),
		Repeated: repeated,
	}}
}
