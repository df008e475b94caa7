package exporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaignclean/internal/config"
	apperrors "campaignclean/internal/errors"
	"campaignclean/internal/shared/testutil"
	"campaignclean/pkg/contracts/domain"
)

// Setup test environment
func setupTestEnv(t *testing.T) (*CSVWriter, string) {
	t.Helper()

	outDir := filepath.Join(t.TempDir(), "output")
	logger, _ := testutil.NewRecordingLogger()
	writer := NewCSVWriter(&config.Paths{OutputDir: outDir}, logger)
	return writer, outDir
}

func clientTable() domain.Table {
	return domain.NewTable("client", domain.ClientColumns, []domain.ClientRecord{
		{ClientID: "1", Age: "56", Job: "admin", Marital: "married", Education: domain.Absent(), CreditDefault: domain.FlagTrue},
		{ClientID: "2", Age: "57", Job: "blue_collar", Marital: "single", Education: domain.Some("basic_4y"), Mortgage: domain.FlagTrue},
	})
}

func TestWriteTable(t *testing.T) {
	writer, outDir := setupTestEnv(t)

	require.NoError(t, writer.WriteTable("client.csv", clientTable()))

	content, err := os.ReadFile(filepath.Join(outDir, "client.csv"))
	require.NoError(t, err)
	assert.Equal(t,
		"client_id,age,job,marital,education,credit_default,mortgage\n"+
			"1,56,admin,married,,1,0\n"+
			"2,57,blue_collar,single,basic_4y,0,1\n",
		string(content))
}

func TestWriteTable_Overwrites(t *testing.T) {
	writer, outDir := setupTestEnv(t)
	path := filepath.Join(outDir, "client.csv")

	require.NoError(t, os.MkdirAll(outDir, 0755))
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("stale content\n", 100)), 0644))

	require.NoError(t, writer.WriteTable(path, clientTable()))
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(first), "stale")

	require.NoError(t, writer.WriteTable(path, clientTable()))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second, "reruns must be byte-identical")
	assert.NotEqual(t, []byte{0xEF, 0xBB, 0xBF}, first[:3])
}

func TestWriteTable_QuotesWhenNeeded(t *testing.T) {
	writer, outDir := setupTestEnv(t)
	table := domain.Table{
		Name:    "economics",
		Columns: domain.EconomicsColumns,
		Rows:    [][]string{{"1", "93,2", "4.9"}},
	}

	require.NoError(t, writer.WriteTable("economics.csv", table))

	content, err := os.ReadFile(filepath.Join(outDir, "economics.csv"))
	require.NoError(t, err)
	assert.Equal(t, "client_id,cons_price_idx,euribor_three_months\n1,\"93,2\",4.9\n", string(content))
}

func TestWriteTable_HeaderOnly(t *testing.T) {
	writer, outDir := setupTestEnv(t)

	require.NoError(t, writer.WriteTable("campaign.csv", domain.NewTable("campaign", domain.CampaignColumns, []domain.CampaignRecord{})))

	content, err := os.ReadFile(filepath.Join(outDir, "campaign.csv"))
	require.NoError(t, err)
	assert.Equal(t, "client_id,number_contacts,contact_duration,previous_campaign_contacts,previous_outcome,campaign_outcome,last_contact_date\n", string(content))
}

func TestWriteTable_Unwritable(t *testing.T) {
	writer, outDir := setupTestEnv(t)

	// a directory where the file should go
	target := filepath.Join(outDir, "client.csv")
	require.NoError(t, os.MkdirAll(target, 0755))

	err := writer.WriteTable(target, clientTable())
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeIO))
	assert.Contains(t, err.Error(), target)
}
