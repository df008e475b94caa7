package dataprocessing

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"campaignclean/pkg/contracts/domain"
)

// ReferenceYear is the year stamped on every last_contact_date.
const ReferenceYear = "2022"

// monthNumbers maps lower-case English month abbreviations to their
// two-digit number.
var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"may": "05", "jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

// lower folds s to lower case. A Caser keeps state between calls, so a fresh
// one is taken each time.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// TextRule rewrites a raw text value. Substitutions run in order, then the
// result is matched against the null tokens.
type TextRule struct {
	Column        string
	Substitutions []Substitution
	// NullTokens are exact, case-sensitive results that become absent.
	NullTokens []string
}

// Substitution replaces every occurrence of Old with New.
type Substitution struct {
	Old string
	New string
}

// Apply normalizes raw. A missing value passes through as the empty string.
func (r TextRule) Apply(raw string) domain.NullString {
	v := raw
	for _, s := range r.Substitutions {
		v = strings.ReplaceAll(v, s.Old, s.New)
	}
	for _, tok := range r.NullTokens {
		if v == tok {
			return domain.Absent()
		}
	}
	return domain.Some(v)
}

// FlagRule maps a raw value to 1 when its trimmed, lower-cased form equals
// Target, and to Default otherwise. Missing values get Default.
type FlagRule struct {
	Column  string
	Target  string
	Default domain.Flag
}

// Apply evaluates the rule against raw.
func (r FlagRule) Apply(raw string) domain.Flag {
	if lower(strings.TrimSpace(raw)) == r.Target {
		return domain.FlagTrue
	}
	return r.Default
}

// Client column rules.
var (
	JobRule = TextRule{
		Column: domain.ColJob,
		Substitutions: []Substitution{
			{Old: ".", New: ""},
			{Old: "-", New: "_"},
		},
	}

	EducationRule = TextRule{
		Column:        domain.ColEducation,
		Substitutions: []Substitution{{Old: ".", New: "_"}},
		NullTokens:    []string{"unknown"},
	}

	CreditDefaultRule = FlagRule{Column: domain.ColCreditDefault, Target: "yes", Default: domain.FlagFalse}
	MortgageRule      = FlagRule{Column: domain.ColMortgage, Target: "yes", Default: domain.FlagFalse}
)

// Campaign column rules.
var (
	PreviousOutcomeRule = FlagRule{Column: domain.ColPreviousOutcome, Target: "success", Default: domain.FlagFalse}
	CampaignOutcomeRule = FlagRule{Column: domain.ColCampaignOutcome, Target: "yes", Default: domain.FlagFalse}
)

// MonthNumber maps a month abbreviation (any case) to its two-digit number.
// Unknown abbreviations are absent.
func MonthNumber(month string) domain.NullString {
	if n, ok := monthNumbers[lower(month)]; ok {
		return domain.Some(n)
	}
	return domain.Absent()
}

// ZeroPad left-pads s with zeros to width, keeping a leading sign in front.
// Values already at least width long are returned unchanged.
func ZeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := strings.Repeat("0", width-len(s))
	if s != "" && (s[0] == '+' || s[0] == '-') {
		return s[:1] + pad + s[1:]
	}
	return pad + s
}

// LastContactDate builds "2022-MM-DD" from raw day and month values. An
// unknown month is absent and absent values render empty, so "may"/"5" gives
// "2022-05-05" while "sept"/"5" gives "2022--05" with no placeholder text.
// Day values are not range checked.
func LastContactDate(day, month string) string {
	return ReferenceYear + "-" + MonthNumber(month).String() + "-" + ZeroPad(day, 2)
}
