// Package output renders query results.
//
// Every formatter consumes rows represented as []map[string]interface{}, the
// shape produced by package catalog. Three formats are supported:
//
//   - JSON Lines: one JSON object per row
//   - CSV: header row followed by one record per row
//   - Table: aligned plain text table for terminals
//
// CSV and table output use the column order given to the constructor. When
// no columns are given, the sorted union of all row keys is used.
//
//	formatter := output.NewTableFormatter(os.Stdout, "city", "average_income")
//	if err := formatter.Format(rows); err != nil {
//	    log.Fatal(err)
//	}
package output
