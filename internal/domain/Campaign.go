// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"strings"
	"time"
)

// Date é uma data sem horário, serializada como YYYY-MM-DD
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		d.Time = time.Time{}
		return nil
	}

	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return err
	}

	d.Time = parsed
	return nil
}

// Campaign é a campanha agregada, identificada pelo nome
type Campaign struct {
	Name                string  `json:"name"`
	CampaignType        string  `json:"tipo_campania"`
	StartDate           Date    `json:"fecha_inicio"`
	EndDate             Date    `json:"fecha_fin"`
	MetroZoneUniverse   int64   `json:"universo_zona_metro"`
	PeopleImpacts       int64   `json:"impactos_personas"`
	VehicleImpacts      int64   `json:"impactos_vehiculos"`
	CalculatedFrequency float64 `json:"frecuencia_calculada"`
	AverageFrequency    float64 `json:"frecuencia_promedio"`
	Reach               int64   `json:"alcance"`

	NSEAB    float64 `json:"nse_ab"`
	NSEC     float64 `json:"nse_c"`
	NSECPlus float64 `json:"nse_cmas"`
	NSED     float64 `json:"nse_d"`
	NSEDPlus float64 `json:"nse_dmas"`
	NSEE     float64 `json:"nse_e"`

	Age0To14  float64 `json:"edad_0a14"`
	Age15To19 float64 `json:"edad_15a19"`
	Age20To24 float64 `json:"edad_20a24"`
	Age25To34 float64 `json:"edad_25a34"`
	Age35To44 float64 `json:"edad_35a44"`
	Age45To64 float64 `json:"edad_45a64"`
	Age65Plus float64 `json:"edad_65mas"`

	Men   float64 `json:"hombres"`
	Women float64 `json:"mujeres"`
}

// CampaignListItem é a campanha como aparece na listagem paginada
type CampaignListItem struct {
	Campaign
	SitesCount   int `json:"sites_count"`
	PeriodsCount int `json:"periods_count"`
}

// CampaignDetail é a campanha com todos os períodos e sitios
type CampaignDetail struct {
	Campaign
	Periods []*CampaignPeriod `json:"periods"`
	Sites   []*CampaignSite   `json:"sites"`
}
