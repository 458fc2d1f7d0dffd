package core_test

import (
	"context"
	"os"
	"path/filepath"

	"csvnorm/internal/core"
)

// Example shows the full pipeline over a headerless file: the first
// data row drives column inference and is still emitted as a record.
func Example() {
	dir, _ := os.MkdirTemp("", "csvnorm")
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "transactions.csv")
	content := "2024-01-15,USD,completed,\"1,234.56\",Office Supplies\n" +
		"2024-01-16,USD,pending,3.50,Coffee\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		panic(err)
	}

	proc := core.NewProcessor(core.Options{}, nil)
	report := proc.ProcessFile(context.Background(), path)
	if report.Fatal != nil {
		panic(report.Fatal)
	}

	core.WriteRecords(os.Stdout, core.FormatJSONL, report.Records)
	// Output:
	// {"transaction_date":"2024-01-15","description":"Office Supplies","amount":"1234.56","currency":"USD","status":"completed"}
	// {"transaction_date":"2024-01-16","description":"Coffee","amount":"3.50","currency":"USD","status":"pending"}
}
