package dataprocessing

import (
	"campaignclean/pkg/contracts/domain"
)

// TransformClient derives one ClientRecord per unified record, in order.
func TransformClient(set *domain.UnifiedSet) []domain.ClientRecord {
	out := make([]domain.ClientRecord, 0, set.Len())
	for _, r := range set.Records {
		out = append(out, domain.ClientRecord{
			ClientID:      r.Value(domain.ColClientID),
			Age:           r.Value(domain.ColAge),
			Job:           JobRule.Apply(r.Value(JobRule.Column)).String(),
			Marital:       r.Value(domain.ColMarital),
			Education:     EducationRule.Apply(r.Value(EducationRule.Column)),
			CreditDefault: CreditDefaultRule.Apply(r.Value(CreditDefaultRule.Column)),
			Mortgage:      MortgageRule.Apply(r.Value(MortgageRule.Column)),
		})
	}
	return out
}

// TransformCampaign derives one CampaignRecord per unified record, in order.
// The raw day and month columns only feed last_contact_date.
func TransformCampaign(set *domain.UnifiedSet) []domain.CampaignRecord {
	out := make([]domain.CampaignRecord, 0, set.Len())
	for _, r := range set.Records {
		out = append(out, domain.CampaignRecord{
			ClientID:                 r.Value(domain.ColClientID),
			NumberContacts:           r.Value(domain.ColNumberContacts),
			ContactDuration:          r.Value(domain.ColContactDuration),
			PreviousCampaignContacts: r.Value(domain.ColPreviousCampaignContacts),
			PreviousOutcome:          PreviousOutcomeRule.Apply(r.Value(PreviousOutcomeRule.Column)),
			CampaignOutcome:          CampaignOutcomeRule.Apply(r.Value(CampaignOutcomeRule.Column)),
			LastContactDate:          LastContactDate(r.Value(domain.ColDay), r.Value(domain.ColMonth)),
		})
	}
	return out
}

// TransformEconomics projects the economic indicators of every unified record.
func TransformEconomics(set *domain.UnifiedSet) []domain.EconomicsRecord {
	out := make([]domain.EconomicsRecord, 0, set.Len())
	for _, r := range set.Records {
		out = append(out, domain.EconomicsRecord{
			ClientID:           r.Value(domain.ColClientID),
			ConsPriceIdx:       r.Value(domain.ColConsPriceIdx),
			EuriborThreeMonths: r.Value(domain.ColEuriborThreeMonths),
		})
	}
	return out
}
