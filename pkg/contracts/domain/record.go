package domain

// UnifiedRecord is one source row as read from an archive member.
// Values are kept as raw strings; a column the source member did not carry
// has no entry at all.
type UnifiedRecord struct {
	values map[string]string
}

// NewUnifiedRecord builds a record from a header and the matching row cells.
// Cells beyond the header are ignored; header columns without a cell are left unset.
func NewUnifiedRecord(header, cells []string) UnifiedRecord {
	values := make(map[string]string, len(header))
	for i, column := range header {
		if i >= len(cells) {
			break
		}
		values[column] = cells[i]
	}
	return UnifiedRecord{values: values}
}

// Get returns the raw value of a column and whether the record carries it.
func (r UnifiedRecord) Get(column string) (string, bool) {
	v, ok := r.values[column]
	return v, ok
}

// Value returns the raw value of a column, or "" when the record does not carry it.
func (r UnifiedRecord) Value(column string) string {
	return r.values[column]
}

// Len returns the number of columns the record carries.
func (r UnifiedRecord) Len() int {
	return len(r.values)
}

// UnifiedSet is the concatenation of every parsed row from every archive member,
// in encounter order. Columns is the ordered union of all member headers.
type UnifiedSet struct {
	Columns []string        `json:"columns"`
	Records []UnifiedRecord `json:"-"`
}

// Append adds a member's rows to the set, extending Columns with any header
// names not seen before.
func (s *UnifiedSet) Append(header []string, rows [][]string) {
	seen := make(map[string]bool, len(s.Columns))
	for _, c := range s.Columns {
		seen[c] = true
	}
	for _, c := range header {
		if !seen[c] {
			s.Columns = append(s.Columns, c)
			seen[c] = true
		}
	}

	for _, row := range rows {
		s.Records = append(s.Records, NewUnifiedRecord(header, row))
	}
}

// HasColumn reports whether any member contributed the named column.
func (s *UnifiedSet) HasColumn(column string) bool {
	for _, c := range s.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// Len returns the number of unified records.
func (s *UnifiedSet) Len() int {
	return len(s.Records)
}
