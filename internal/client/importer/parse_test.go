package importer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wedmac/wedmac-admin/internal/client/models"
	"github.com/wedmac/wedmac-admin/internal/common"
)

func TestParseCSV_NormalizesHeadersAndValues(t *testing.T) {
	csvData := "Name,Mobile,City\nAnjali,9123456789,Delhi\n"

	leads, err := ParseCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, leads, 1)

	require.Equal(t, models.Lead{
		"name":     "Anjali",
		"phone":    "9123456789",
		"location": "Delhi",
	}, leads[0])
}

func TestParseCSV_SkipsBlankRows(t *testing.T) {
	csvData := "Name,Mobile\nAnjali,9123456789\n,\nRaviKumar,9988776655\n"

	leads, err := ParseCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, leads, 2)
}

func TestParseCSV_RaggedRowsTolerated(t *testing.T) {
	csvData := "Name,Mobile,City\nAnjali,9123456789\nRavi,9988776655,Mumbai,extra\n"

	leads, err := ParseCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, leads, 2)
	require.NotContains(t, leads[0], "location")
	require.Equal(t, "Mumbai", leads[1]["location"])
}

func TestParseCSV_EmptyInput(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	require.ErrorIs(t, err, common.ErrEmptyWorkbook)

	_, err = ParseCSV(strings.NewReader("Name,Mobile\n"))
	require.ErrorIs(t, err, common.ErrEmptyWorkbook)
}

func TestParseFile_RejectsUnknownExtension(t *testing.T) {
	_, err := ParseFile("leads.pdf")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported file type")
}

func TestPreview_CapsDisplayOnly(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Mobile\n")
	for i := 0; i < 250; i++ {
		fmt.Fprintf(&sb, "9%09d\n", i)
	}

	leads, err := ParseCSV(strings.NewReader(sb.String()))
	require.NoError(t, err)
	require.Len(t, leads, 250, "all rows retained for submission")

	require.Len(t, Preview(leads, 0), DefaultPreviewLimit)
	require.Len(t, Preview(leads, 10), 10)
	require.Len(t, Preview(leads[:5], 10), 5)
}
