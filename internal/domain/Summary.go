package domain

// UnknownGroup é a chave usada quando o campo de agrupamento vem vazio
const UnknownGroup = "Unknown"

type SiteTypeSummary struct {
	FurnitureType string `json:"tipo_de_mueble"`
	Count         int    `json:"count"`
	TotalImpacts  int64  `json:"total_impacts"`
}

type MunicipalitySummary struct {
	Municipality string `json:"municipality"`
	Count        int    `json:"count"`
	TotalImpacts int64  `json:"total_impacts"`
}

// SitesSummary agrega os sitios de uma campanha por tipo de mueble e por município
type SitesSummary struct {
	TotalSites     int                    `json:"total_sites"`
	ByType         []*SiteTypeSummary     `json:"by_type"`
	ByMunicipality []*MunicipalitySummary `json:"by_municipality"`
}

type PeriodData struct {
	Period         string `json:"period"`
	PeopleImpacts  int64  `json:"people_impacts"`
	VehicleImpacts int64  `json:"vehicle_impacts"`
}

// PeriodsSummary lista os períodos de uma campanha ordenados pelo rótulo
type PeriodsSummary struct {
	TotalPeriods int           `json:"total_periods"`
	Data         []*PeriodData `json:"data"`
}

type DemographicData struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// CampaignSummary é a projeção demográfica fixa de uma campanha
type CampaignSummary struct {
	NSEDistribution    []DemographicData `json:"nse_distribution"`
	AgeDistribution    []DemographicData `json:"age_distribution"`
	GenderDistribution []DemographicData `json:"gender_distribution"`
}
