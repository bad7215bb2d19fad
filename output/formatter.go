package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format writes rows in the formatter's specific format
	Format(rows []map[string]interface{}) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// New returns the formatter registered under name. Columns fix the column
// order for formats that have one.
func New(name string, w io.Writer, columns ...string) (Formatter, error) {
	switch name {
	case "json", "jsonl":
		return NewJSONFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w, columns...), nil
	case "table":
		return NewTableFormatter(w, columns...), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (supported: json, jsonl, csv, table)", name)
	}
}

// resolveColumns returns columns when set, otherwise the sorted union of the
// keys of all rows. Rows of one result may have different keys.
func resolveColumns(columns []string, rows []map[string]interface{}) []string {
	if len(columns) > 0 {
		return columns
	}

	columnSet := make(map[string]bool)
	for _, row := range rows {
		for col := range row {
			columnSet[col] = true
		}
	}

	resolved := make([]string, 0, len(columnSet))
	for col := range columnSet {
		resolved = append(resolved, col)
	}
	sort.Strings(resolved)
	return resolved
}

// formatValue converts a value to its text form
func formatValue(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case *string:
		if val == nil {
			return ""
		}
		return *val
	case decimal.Decimal:
		return val.String()
	case time.Time:
		return val.Format(time.RFC3339)
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	case []string:
		return strings.Join(val, ";")
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, formatValue(item))
		}
		return strings.Join(parts, ";")
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
