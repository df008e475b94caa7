package domain

// Source columns consumed by the normalizer.
const (
	ColClientID                 = "client_id"
	ColAge                      = "age"
	ColJob                      = "job"
	ColMarital                  = "marital"
	ColEducation                = "education"
	ColCreditDefault            = "credit_default"
	ColMortgage                 = "mortgage"
	ColNumberContacts           = "number_contacts"
	ColContactDuration          = "contact_duration"
	ColPreviousCampaignContacts = "previous_campaign_contacts"
	ColPreviousOutcome          = "previous_outcome"
	ColCampaignOutcome          = "campaign_outcome"
	ColDay                      = "day"
	ColMonth                    = "month"
	ColConsPriceIdx             = "cons_price_idx"
	ColEuriborThreeMonths       = "euribor_three_months"

	// ColLastContactDate is derived from day and month.
	ColLastContactDate = "last_contact_date"
)

// ClientColumns is the header of client.csv.
var ClientColumns = []string{
	ColClientID, ColAge, ColJob, ColMarital, ColEducation, ColCreditDefault, ColMortgage,
}

// CampaignColumns is the header of campaign.csv.
var CampaignColumns = []string{
	ColClientID, ColNumberContacts, ColContactDuration, ColPreviousCampaignContacts,
	ColPreviousOutcome, ColCampaignOutcome, ColLastContactDate,
}

// EconomicsColumns is the header of economics.csv.
var EconomicsColumns = []string{
	ColClientID, ColConsPriceIdx, ColEuriborThreeMonths,
}

// ClientRecord is one row of the client table.
type ClientRecord struct {
	ClientID      string     `json:"client_id"`
	Age           string     `json:"age"`
	Job           string     `json:"job"`
	Marital       string     `json:"marital"`
	Education     NullString `json:"education"`
	CreditDefault Flag       `json:"credit_default"`
	Mortgage      Flag       `json:"mortgage"`
}

// Row renders the record in ClientColumns order.
func (r ClientRecord) Row() []string {
	return []string{
		r.ClientID,
		r.Age,
		r.Job,
		r.Marital,
		r.Education.String(),
		r.CreditDefault.String(),
		r.Mortgage.String(),
	}
}

// CampaignRecord is one row of the campaign table.
type CampaignRecord struct {
	ClientID                 string `json:"client_id"`
	NumberContacts           string `json:"number_contacts"`
	ContactDuration          string `json:"contact_duration"`
	PreviousCampaignContacts string `json:"previous_campaign_contacts"`
	PreviousOutcome          Flag   `json:"previous_outcome"`
	CampaignOutcome          Flag   `json:"campaign_outcome"`
	LastContactDate          string `json:"last_contact_date"`
}

// Row renders the record in CampaignColumns order.
func (r CampaignRecord) Row() []string {
	return []string{
		r.ClientID,
		r.NumberContacts,
		r.ContactDuration,
		r.PreviousCampaignContacts,
		r.PreviousOutcome.String(),
		r.CampaignOutcome.String(),
		r.LastContactDate,
	}
}

// EconomicsRecord is one row of the economics table.
type EconomicsRecord struct {
	ClientID           string `json:"client_id"`
	ConsPriceIdx       string `json:"cons_price_idx"`
	EuriborThreeMonths string `json:"euribor_three_months"`
}

// Row renders the record in EconomicsColumns order.
func (r EconomicsRecord) Row() []string {
	return []string{r.ClientID, r.ConsPriceIdx, r.EuriborThreeMonths}
}

// Table is a named output table ready for serialization.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Len returns the number of data rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Row is implemented by every derived record type.
type Row interface {
	Row() []string
}

// NewTable renders records into a Table.
func NewTable[R Row](name string, columns []string, records []R) Table {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = r.Row()
	}
	return Table{Name: name, Columns: columns, Rows: rows}
}
