package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wedmac/wedmac-admin/internal/client/importer"
	"github.com/wedmac/wedmac-admin/internal/common"
)

func (a *App) importFile(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: import <file.csv|file.xlsx>")
		return
	}

	rows, err := a.leads.ParseFile(args[0])
	if err != nil {
		if errors.Is(err, common.ErrEmptyWorkbook) {
			fmt.Println("The file is empty or could not be read.")
			return
		}
		fmt.Printf("error: %v\n", err)
		return
	}

	a.pending = rows
	a.results = nil
	a.submitted = 0

	preview := importer.Preview(rows, a.config.PreviewLimit)
	for i, lead := range preview {
		body, _ := json.Marshal(lead)
		fmt.Printf("%4d  %s\n", i+1, body)
	}
	if len(rows) > len(preview) {
		fmt.Printf("... %d more rows not shown\n", len(rows)-len(preview))
	}
	fmt.Printf("Parsed %d rows. Type 'submit' to send them.\n", len(rows))
}

func (a *App) submitBatch(ctx context.Context) {
	result, err := a.leads.Submit(ctx, a.pending)
	if err != nil {
		if errors.Is(err, common.ErrNothingToSubmit) {
			fmt.Println("Nothing to submit. Run 'import <file>' first.")
			return
		}
		a.results = nil
		a.printAdminError(err)
		return
	}

	a.results = result.Results
	a.submitted = len(a.pending)
	a.pending = nil

	if result.Results == nil {
		if result.Message != "" {
			fmt.Println(result.Message)
		} else {
			fmt.Println("Submitted, but the server returned no per-row results.")
		}
		return
	}

	created := 0
	for i, r := range result.Results {
		if r.Success {
			created++
			continue
		}
		fmt.Printf("row %d failed: %s\n", i+1, r.Detail())
	}
	fmt.Printf("%d of %d rows created. Type 'export' to save a report.\n", created, len(result.Results))
}

func (a *App) exportResults(args []string) {
	if len(a.results) == 0 {
		fmt.Println("No submission results to export.")
		return
	}

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	path, err := a.leads.ExportReport(dir, a.results)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Printf("Report written to %s\n", path)
}
