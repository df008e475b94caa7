package dataprocessing

import (
	apperrors "campaignclean/internal/errors"
	"campaignclean/pkg/contracts/domain"
)

// ClientSourceColumns are the unified columns read by TransformClient.
var ClientSourceColumns = []string{
	domain.ColClientID, domain.ColAge, domain.ColJob, domain.ColMarital,
	domain.ColEducation, domain.ColCreditDefault, domain.ColMortgage,
}

// CampaignSourceColumns are the unified columns read by TransformCampaign.
var CampaignSourceColumns = []string{
	domain.ColClientID, domain.ColNumberContacts, domain.ColContactDuration,
	domain.ColPreviousCampaignContacts, domain.ColPreviousOutcome,
	domain.ColCampaignOutcome, domain.ColDay, domain.ColMonth,
}

// EconomicsSourceColumns are the unified columns read by TransformEconomics.
var EconomicsSourceColumns = []string{
	domain.ColClientID, domain.ColConsPriceIdx, domain.ColEuriborThreeMonths,
}

// RequiredColumns returns every column consumed by the three transforms,
// without duplicates.
func RequiredColumns() []string {
	seen := make(map[string]bool)
	var out []string
	for _, group := range [][]string{ClientSourceColumns, CampaignSourceColumns, EconomicsSourceColumns} {
		for _, c := range group {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

// RequireColumns fails with a schema error naming every required column the
// set does not carry.
func RequireColumns(set *domain.UnifiedSet) error {
	var missing []string
	for _, c := range RequiredColumns() {
		if !set.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return apperrors.NewSchemaError(missing)
	}
	return nil
}
