package testutil

import (
	"archive/zip"
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// SampleHeader lists every source column, in the order the bank export uses.
var SampleHeader = []string{
	"client_id", "age", "job", "marital", "education", "credit_default", "mortgage",
	"month", "day", "contact_duration", "number_contacts", "previous_campaign_contacts",
	"previous_outcome", "cons_price_idx", "euribor_three_months", "campaign_outcome",
}

// SampleRows is the two-row reference dataset.
var SampleRows = [][]string{
	{"1", "56", "admin.", "married", "unknown", "yes", "no", "mar", "3", "261", "1", "0", "success", "93.2", "4.9", "no"},
	{"2", "57", "blue-collar", "single", "basic.4y", "no", "yes", "jul", "17", "149", "2", "1", "nonexistent", "94.1", "1.3", "yes"},
}

// SampleCSV renders SampleHeader and SampleRows as CSV text.
var SampleCSV = BuildCSV(SampleHeader, SampleRows)

// BuildCSV renders a header and rows as comma-separated text. Cells are
// written verbatim, so tests can produce deliberately malformed content.
func BuildCSV(header []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(strings.Join(header, ","))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}
	return b.String()
}

// ZipMember is one file to store in a test archive.
type ZipMember struct {
	Name    string
	Content []byte
}

// CSVMember builds a ZipMember from CSV text.
func CSVMember(name, content string) ZipMember {
	return ZipMember{Name: name, Content: []byte(content)}
}

// XLSXMember builds a ZipMember holding a single-sheet workbook.
func XLSXMember(t *testing.T, name string, header []string, rows [][]string) ZipMember {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	all := append([][]string{header}, rows...)
	for r, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		require.NoError(t, err)
		values := make([]interface{}, len(row))
		for i, v := range row {
			values[i] = v
		}
		require.NoError(t, f.SetSheetRow(sheet, cell, &values))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return ZipMember{Name: name, Content: buf.Bytes()}
}

// WriteZip writes members, in order, to a zip archive at path.
func WriteZip(t *testing.T, path string, members ...ZipMember) {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, m := range members {
		w, err := zw.Create(m.Name)
		require.NoError(t, err)
		_, err = w.Write(m.Content)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

// WriteFile writes content to path, failing the test on error.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
