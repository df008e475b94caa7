package domain

// NullString is a string that may be absent. An absent value is distinct from
// the empty string and from any literal placeholder such as "unknown".
type NullString struct {
	Value string
	Valid bool
}

// Some wraps a present value.
func Some(s string) NullString {
	return NullString{Value: s, Valid: true}
}

// Absent returns the missing value.
func Absent() NullString {
	return NullString{}
}

// String renders the value for output; absent values render as "".
func (n NullString) String() string {
	if !n.Valid {
		return ""
	}
	return n.Value
}

// Flag is a binary 0/1 output column.
type Flag uint8

const (
	FlagFalse Flag = 0
	FlagTrue  Flag = 1
)

func (f Flag) String() string {
	if f == FlagTrue {
		return "1"
	}
	return "0"
}
