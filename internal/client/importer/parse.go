package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/wedmac/wedmac-admin/internal/client/models"
	"github.com/wedmac/wedmac-admin/internal/common"
)

// DefaultPreviewLimit caps how many parsed rows are rendered before
// submission. All parsed rows are retained and submitted regardless.
const DefaultPreviewLimit = 200

// ParseFile decodes a spreadsheet into normalized lead records. The format
// is chosen by extension: .csv, or .xlsx/.xls for workbooks. The first
// worksheet wins; the first row is the header row.
func ParseFile(path string) ([]models.Lead, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ParseCSV(f)
	case ".xlsx", ".xls":
		return ParseXLSX(f)
	default:
		return nil, fmt.Errorf("unsupported file type %q (expected .csv, .xlsx or .xls)", filepath.Ext(path))
	}
}

// ParseCSV decodes CSV content. Rows may have ragged lengths; cells beyond
// the header row are ignored.
func ParseCSV(r io.Reader) ([]models.Lead, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, common.ErrEmptyWorkbook
	}
	return normalizeRows(records[0], records[1:])
}

// ParseXLSX decodes the first worksheet of a workbook. Cells are read raw so
// serial-encoded dates reach the normalizer undisturbed.
func ParseXLSX(r io.Reader) ([]models.Lead, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, common.ErrEmptyWorkbook
	}

	rows, err := wb.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, common.ErrEmptyWorkbook
	}
	return normalizeRows(rows[0], rows[1:])
}

func normalizeRows(headers []string, rows [][]string) ([]models.Lead, error) {
	leads := make([]models.Lead, 0, len(rows))
	for _, cells := range rows {
		lead := NormalizeRecord(headers, cells)
		if len(lead) == 0 {
			continue
		}
		leads = append(leads, lead)
	}
	if len(leads) == 0 {
		return nil, common.ErrEmptyWorkbook
	}
	return leads, nil
}

// Preview returns the display slice of rows, capped at limit. A limit of
// zero or less falls back to DefaultPreviewLimit.
func Preview(rows []models.Lead, limit int) []models.Lead {
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}
	if len(rows) <= limit {
		return rows
	}
	return rows[:limit]
}
