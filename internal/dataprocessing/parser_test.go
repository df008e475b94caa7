package dataprocessing

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "campaignclean/internal/errors"
	"campaignclean/internal/shared/testutil"
)

func TestParseCSV(t *testing.T) {
	sheet, err := ParseCSV("bank.csv", strings.NewReader(testutil.SampleCSV), ',')
	require.NoError(t, err)

	assert.Equal(t, "bank.csv", sheet.Member)
	assert.Equal(t, testutil.SampleHeader, sheet.Header)
	assert.Equal(t, testutil.SampleRows, sheet.Rows)
}

func TestParseCSV_Variants(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		delimiter rune
		header    []string
		rows      [][]string
	}{
		{
			name:      "byte order mark",
			content:   "\uFEFFclient_id,age\n1,30\n",
			delimiter: ',',
			header:    []string{"client_id", "age"},
			rows:      [][]string{{"1", "30"}},
		},
		{
			name:      "byte order mark before quoted header",
			content:   "\uFEFF\"client_id\",\"job\"\n1,admin.\n",
			delimiter: ',',
			header:    []string{"client_id", "job"},
			rows:      [][]string{{"1", "admin."}},
		},
		{
			name:      "quoted fields",
			content:   "client_id,job\n1,\"admin., senior\"\n",
			delimiter: ',',
			header:    []string{"client_id", "job"},
			rows:      [][]string{{"1", "admin., senior"}},
		},
		{
			name:      "header only",
			content:   "client_id,age\n",
			delimiter: ',',
			header:    []string{"client_id", "age"},
			rows:      [][]string{},
		},
		{
			name:      "semicolon delimiter",
			content:   "client_id;age\n1;30\n",
			delimiter: ';',
			header:    []string{"client_id", "age"},
			rows:      [][]string{{"1", "30"}},
		},
		{
			name:      "crlf and blank lines",
			content:   "client_id,age\r\n\r\n1,30\r\n",
			delimiter: ',',
			header:    []string{"client_id", "age"},
			rows:      [][]string{{"1", "30"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, err := ParseCSV("m.csv", strings.NewReader(tt.content), tt.delimiter)
			require.NoError(t, err)
			assert.Equal(t, tt.header, sheet.Header)
			assert.Equal(t, tt.rows, sheet.Rows)
		})
	}
}

func TestParseCSV_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"ragged row", "client_id,age\n1,30,extra\n"},
		{"short row", "client_id,age\n1\n"},
		{"bare quote", "client_id,age\n1,3\"0\n"},
		{"unterminated quote", "client_id,age\n1,\"30\n"},
		{"empty member", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV("bad.csv", strings.NewReader(tt.content), ',')
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing), err.Error())
			assert.Contains(t, err.Error(), "bad.csv")
		})
	}
}

func TestParseWorkbook(t *testing.T) {
	header := []string{"client_id", "age", "education"}
	rows := [][]string{
		{"1", "56", "unknown"},
		{"2", "57"},
	}
	member := testutil.XLSXMember(t, "bank.xlsx", header, rows)

	sheet, err := ParseWorkbook(member.Name, bytes.NewReader(member.Content))
	require.NoError(t, err)

	assert.Equal(t, header, sheet.Header)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, []string{"1", "56", "unknown"}, sheet.Rows[0])
	assert.Equal(t, []string{"2", "57", ""}, sheet.Rows[1], "short rows are padded to the header width")
}

func TestParseWorkbook_Malformed(t *testing.T) {
	_, err := ParseWorkbook("broken.xlsx", strings.NewReader("not a workbook"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
	assert.Contains(t, err.Error(), "broken.xlsx")
}

func TestParseWorkbook_Empty(t *testing.T) {
	member := testutil.XLSXMember(t, "empty.xlsx", nil, nil)

	_, err := ParseWorkbook(member.Name, bytes.NewReader(member.Content))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
}
