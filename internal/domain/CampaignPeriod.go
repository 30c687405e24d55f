package domain

// CampaignPeriod guarda os impactos de uma campanha em um período.
// Period é um rótulo livre (ex: 2023-01), ordenado como texto.
type CampaignPeriod struct {
	ID             int64  `json:"id"`
	CampaignName   string `json:"campaign_name"`
	Period         string `json:"period"`
	PeopleImpacts  int64  `json:"impactos_periodo_personas"`
	VehicleImpacts int64  `json:"impactos_periodo_vehiculos"`
}
