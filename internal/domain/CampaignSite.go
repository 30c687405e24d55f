package domain

// CampaignSite é um sitio (mobiliário) onde a campanha foi exibida.
// A ligação com a campanha é feita apenas pelo nome.
type CampaignSite struct {
	ID                int64   `json:"id"`
	CampaignName      string  `json:"campaign_name"`
	SiteCode          string  `json:"codigo_del_sitio"`
	FurnitureType     string  `json:"tipo_de_mueble"`
	AdType            string  `json:"tipo_de_anuncio"`
	State             string  `json:"estado"`
	Municipality      string  `json:"municipio"`
	MetroArea         string  `json:"zm"`
	BiweeklyFrequency float64 `json:"frecuencia_catorcenal"`
	MonthlyFrequency  float64 `json:"frecuencia_mensual"`
	BiweeklyImpacts   int64   `json:"impactos_catorcenal"`
	MonthlyImpacts    int64   `json:"impactos_mensuales"`
	MonthlyReach      float64 `json:"alcance_mensual"`
}
