package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullString(t *testing.T) {
	assert.Equal(t, "", Absent().String())
	assert.False(t, Absent().Valid)
	assert.Equal(t, "basic_4y", Some("basic_4y").String())

	// An empty present value is not the same as an absent one.
	assert.NotEqual(t, Absent(), Some(""))
	assert.NotEqual(t, Absent(), Some("unknown"))
}

func TestFlag(t *testing.T) {
	assert.Equal(t, "1", FlagTrue.String())
	assert.Equal(t, "0", FlagFalse.String())
	assert.Equal(t, "0", Flag(7).String())
}

func TestUnifiedRecord(t *testing.T) {
	r := NewUnifiedRecord([]string{"client_id", "age", "job"}, []string{"7", "41"})

	v, ok := r.Get("client_id")
	assert.True(t, ok)
	assert.Equal(t, "7", v)

	_, ok = r.Get("job")
	assert.False(t, ok, "header column without a cell stays unset")
	assert.Equal(t, "", r.Value("job"))
	assert.Equal(t, 2, r.Len())
}

func TestUnifiedSet_Append(t *testing.T) {
	var set UnifiedSet
	set.Append([]string{"client_id", "age"}, [][]string{{"1", "30"}, {"2", "40"}})
	set.Append([]string{"client_id", "job"}, [][]string{{"1", "admin."}})

	require.Equal(t, 3, set.Len())
	assert.Equal(t, []string{"client_id", "age", "job"}, set.Columns)
	assert.True(t, set.HasColumn("job"))
	assert.False(t, set.HasColumn("month"))

	// Duplicates are kept as independent rows.
	assert.Equal(t, "1", set.Records[0].Value("client_id"))
	assert.Equal(t, "1", set.Records[2].Value("client_id"))
	_, ok := set.Records[2].Get("age")
	assert.False(t, ok)
}

func TestRecordRows(t *testing.T) {
	client := ClientRecord{
		ClientID: "1", Age: "30", Job: "admin", Marital: "married",
		Education: Absent(), CreditDefault: FlagTrue, Mortgage: FlagFalse,
	}
	assert.Equal(t, []string{"1", "30", "admin", "married", "", "1", "0"}, client.Row())
	assert.Len(t, client.Row(), len(ClientColumns))

	campaign := CampaignRecord{
		ClientID: "1", NumberContacts: "2", ContactDuration: "261",
		PreviousCampaignContacts: "0", PreviousOutcome: FlagTrue,
		CampaignOutcome: FlagFalse, LastContactDate: "2022-03-03",
	}
	assert.Len(t, campaign.Row(), len(CampaignColumns))
	assert.Equal(t, "2022-03-03", campaign.Row()[6])

	econ := EconomicsRecord{ClientID: "1", ConsPriceIdx: "93.2", EuriborThreeMonths: "4.9"}
	assert.Equal(t, []string{"1", "93.2", "4.9"}, econ.Row())
}

func TestNewTable(t *testing.T) {
	records := []EconomicsRecord{
		{ClientID: "1", ConsPriceIdx: "93.2", EuriborThreeMonths: "4.9"},
		{ClientID: "2", ConsPriceIdx: "94.1", EuriborThreeMonths: "1.3"},
	}
	table := NewTable("economics", EconomicsColumns, records)

	assert.Equal(t, "economics", table.Name)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"2", "94.1", "1.3"}, table.Rows[1])
}
