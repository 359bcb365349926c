package models

// StateRebateProfile mirrors the per-state JSON documents under
// /data/states/{xx}.json on the static site. Every field is optional in the
// source data; renderers must tolerate zero values.
type StateRebateProfile struct {
	StateCode         string               `json:"state_code"`
	StateName         string               `json:"state_name"`
	HomesHearStatus   string               `json:"homes_hear_status"` // "launched", "pending" or empty
	HomesHearDetails  string               `json:"homes_hear_details,omitempty"`
	IncomeThresholds  *IncomeThresholds    `json:"income_thresholds,omitempty"`
	NetMetering       string               `json:"net_metering,omitempty"`
	StateEnergyOffice string               `json:"state_energy_office,omitempty"`
	StateTaxCredits   []StateTaxCredit     `json:"state_tax_credits,omitempty"`
	RebatePrograms    []StateRebateProgram `json:"state_rebate_programs,omitempty"`
	TopUtilities      []Utility            `json:"top_utilities,omitempty"`
}

// IncomeThresholds holds the HOMES/HEAR income qualification bands.
type IncomeThresholds struct {
	LowIncome80AMI       string `json:"low_income_80_ami,omitempty"`
	ModerateIncome150AMI string `json:"moderate_income_150_ami,omitempty"`
}

type StateTaxCredit struct {
	Name          string `json:"name"`
	Amount        string `json:"amount,omitempty"`
	EligibleItems string `json:"eligible_items,omitempty"`
}

type StateRebateProgram struct {
	Name        string `json:"name"`
	Amount      string `json:"amount,omitempty"`
	Description string `json:"description,omitempty"`
}

type Utility struct {
	Name     string           `json:"name"`
	Programs []UtilityProgram `json:"programs,omitempty"`
}

type UtilityProgram struct {
	Name        string `json:"name"`
	Amount      string `json:"amount,omitempty"`
	Description string `json:"description,omitempty"`
}

// AffiliateCatalog mirrors /affiliates.json: category key → category.
type AffiliateCatalog map[string]AffiliateCategory

type AffiliateCategory struct {
	Label    string             `json:"label"`
	Partners []AffiliatePartner `json:"partners"`
}

type AffiliatePartner struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}
