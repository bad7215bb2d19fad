package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vegasq/linqcat/catalog"
	"github.com/vegasq/linqcat/output"
	"github.com/vegasq/linqcat/reader"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	opFlag      = flag.String("op", "", "Operation to run (see -list)")
	formatFlag  = flag.String("f", "table", "Output format: json, jsonl, csv, table")
	listFlag    = flag.Bool("list", false, "List available operations")
	schemaFlag  = flag.Bool("schema", false, "Show the columns of the dataset files instead of running an operation")
	verboseFlag = flag.Bool("v", false, "Enable debug logging on stderr")

	limitValue = decimal.Zero
	cheap      = decimal.Zero
	middle     = decimal.Zero
	expensive  = decimal.Zero
)

func init() {
	flag.TextVar(&limitValue, "limit-value", decimal.Zero, "Order value limit for high-value and order-above")
	flag.TextVar(&cheap, "cheap", decimal.NewFromInt(10), "Upper price bound of the cheap tier")
	flag.TextVar(&middle, "middle", decimal.NewFromInt(20), "Upper price bound of the middle tier")
	flag.TextVar(&expensive, "expensive", decimal.NewFromInt(50), "Upper price bound of the expensive tier")
}

// config is the parsed command line
type config struct {
	op      string
	format  string
	dir     string
	list    bool
	schema  bool
	verbose bool
	params  catalog.Params
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <dataset-dir>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Runs a catalogue query over a customer, supplier and product dataset.\n\n")
		fmt.Fprintf(os.Stderr, "IMPORTANT: All flags must come BEFORE the dataset directory.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -list\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -op city-stats testdata/northwind\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -op high-value -limit-value 1000 -f csv testdata/northwind\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -schema testdata/northwind\n", os.Args[0])
	}

	flag.Parse()

	cfg := config{
		op:      *opFlag,
		format:  *formatFlag,
		dir:     flag.Arg(0),
		list:    *listFlag,
		schema:  *schemaFlag,
		verbose: *verboseFlag,
		params: catalog.Params{
			Limit:     limitValue,
			Cheap:     cheap,
			Middle:    middle,
			Expensive: expensive,
		},
	}

	logger, err := newLogger(cfg.verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := execute(cfg, os.Stdout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr)
			flag.Usage()
		}
		os.Exit(1)
	}
}

// errUsage marks command line mistakes
var errUsage = errors.New("usage")

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func execute(cfg config, stdout io.Writer, logger *zap.Logger) error {
	if cfg.list {
		return listOperations(cfg.format, stdout)
	}

	if cfg.dir == "" {
		return fmt.Errorf("%w: missing dataset directory argument", errUsage)
	}

	if cfg.schema {
		if cfg.op != "" {
			return fmt.Errorf("%w: -schema and -op cannot be used together", errUsage)
		}
		return showSchema(cfg.dir, cfg.format, stdout)
	}

	if cfg.op == "" {
		return fmt.Errorf("%w: missing -op", errUsage)
	}
	op, err := catalog.Lookup(cfg.op)
	if err != nil {
		return err
	}

	formatter, err := output.New(cfg.format, stdout, op.Columns...)
	if err != nil {
		return err
	}

	start := time.Now()
	ds, err := reader.LoadDataset(cfg.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("dataset '%s' not found", cfg.dir)
		}
		return err
	}
	logger.Debug("dataset loaded",
		zap.String("dir", cfg.dir),
		zap.Int("customers", len(ds.Customers)),
		zap.Int("suppliers", len(ds.Suppliers)),
		zap.Int("products", len(ds.Products)),
		zap.Duration("elapsed", time.Since(start)),
	)

	start = time.Now()
	result, err := op.Run(ds, cfg.params)
	if err != nil {
		logger.Warn("operation failed", zap.String("op", op.Name), zap.Error(err))
		return err
	}
	logger.Debug("operation completed",
		zap.String("op", op.Name),
		zap.Int("rows", len(result.Rows)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if err := formatter.Format(result.Rows); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}

func listOperations(format string, stdout io.Writer) error {
	formatter, err := output.New(format, stdout, "name", "description")
	if err != nil {
		return err
	}

	rows := make([]map[string]interface{}, 0)
	for _, op := range catalog.Operations() {
		rows = append(rows, map[string]interface{}{"name": op.Name, "description": op.Description})
	}
	return formatter.Format(rows)
}

func showSchema(dir, format string, stdout io.Writer) error {
	formatter, err := output.New(format, stdout, "file", "name", "type", "optional", "repeated")
	if err != nil {
		return err
	}

	rows := make([]map[string]interface{}, 0)
	for _, name := range []string{reader.CustomersFile, reader.SuppliersFile, reader.ProductsFile} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		columns, err := reader.Columns(path)
		if err != nil {
			return err
		}
		for _, c := range columns {
			rows = append(rows, map[string]interface{}{
				"file":     name,
				"name":     c.Name,
				"type":     c.Type,
				"optional": c.Optional,
				"repeated": c.Repeated,
			})
		}
	}
	return formatter.Format(rows)
}
