package dataprocessing

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	apperrors "campaignclean/internal/errors"
)

const utf8BOM = "\uFEFF"

// Sheet is the parsed content of one archive member: a header and its data rows.
type Sheet struct {
	Member string
	Header []string
	Rows   [][]string
}

// ParseCSV reads a delimited member. The first record is the header and every
// following record must have the same number of fields. A leading byte order
// mark is dropped before parsing so a quoted first header still parses.
func ParseCSV(name string, r io.Reader, delimiter rune) (*Sheet, error) {
	reader := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	reader.Comma = delimiter

	records, err := reader.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, apperrors.NewParsingError("malformed csv member", err).
				WithContext("member", name).
				WithContext("line", parseErr.Line)
		}
		return nil, apperrors.NewIOError("failed to read csv member", err).
			WithContext("member", name)
	}
	if len(records) == 0 {
		return nil, apperrors.NewParsingError("member has no header row", nil).
			WithContext("member", name)
	}

	return newSheet(name, records), nil
}

// ParseWorkbook reads the first sheet of an .xlsx member. The first row is the
// header. Trailing empty cells dropped by the workbook are restored so every
// row is at least as wide as the header; blank rows are skipped.
func ParseWorkbook(name string, r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to open workbook member", err).
			WithContext("member", name)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewParsingError("workbook has no sheets", nil).
			WithContext("member", name)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read workbook rows", err).
			WithContext("member", name).
			WithContext("sheet", sheets[0])
	}

	var records [][]string
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		records = append(records, row)
	}
	if len(records) == 0 {
		return nil, apperrors.NewParsingError("member has no header row", nil).
			WithContext("member", name)
	}

	width := len(records[0])
	for i, row := range records {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			records[i] = padded
		}
	}

	return newSheet(name, records), nil
}

// newSheet trims a byte order mark left in the first header cell, which
// workbook members can carry.
func newSheet(name string, records [][]string) *Sheet {
	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	return &Sheet{Member: name, Header: header, Rows: records[1:]}
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
