package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/wedmac/wedmac-admin/internal/client/models"
)

// WriteReport renders the per-row outcome list as CSV: a 1-based row index,
// a success/error label, and the serialized server payload for that row.
// Result i corresponds to submitted row i.
func WriteReport(w io.Writer, results []models.ImportResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"row", "status", "details"}); err != nil {
		return err
	}

	for i, r := range results {
		status := "error"
		if r.Success {
			status = "success"
		}
		if err := cw.Write([]string{fmt.Sprintf("%d", i+1), status, r.Detail()}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReportFileName names the downloadable report with the given date.
func ReportFileName(now time.Time) string {
	return "bulk-import-results-" + now.Format("2006-01-02") + ".csv"
}

// ExportReport writes the report into dir under a date-stamped name and
// returns the full path.
func ExportReport(dir string, results []models.ImportResult) (string, error) {
	path := filepath.Join(dir, ReportFileName(time.Now()))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := WriteReport(f, results); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
