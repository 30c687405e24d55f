// Package summarizing agrega em memória as linhas já carregadas de uma campanha.
// Nenhuma função aqui acessa o banco.
package summarizing

import (
	"sort"

	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

// groupAccumulator mantém os grupos na ordem da primeira ocorrência
type groupAccumulator struct {
	index  map[string]int
	keys   []string
	counts []int
	totals []int64
}

func newGroupAccumulator() *groupAccumulator {
	return &groupAccumulator{index: make(map[string]int)}
}

func (g *groupAccumulator) add(key string, impacts int64) {
	if key == "" {
		key = domain.UnknownGroup
	}

	i, ok := g.index[key]
	if !ok {
		i = len(g.keys)
		g.index[key] = i
		g.keys = append(g.keys, key)
		g.counts = append(g.counts, 0)
		g.totals = append(g.totals, 0)
	}

	g.counts[i]++
	g.totals[i] += impacts
}

// SummarizeSites agrupa os sitios por tipo de mueble e por município, somando os impactos mensais
func SummarizeSites(sites []*domain.CampaignSite) *domain.SitesSummary {
	byType := newGroupAccumulator()
	byMunicipality := newGroupAccumulator()

	for _, site := range sites {
		byType.add(site.FurnitureType, site.MonthlyImpacts)
		byMunicipality.add(site.Municipality, site.MonthlyImpacts)
	}

	summary := &domain.SitesSummary{
		TotalSites:     len(sites),
		ByType:         make([]*domain.SiteTypeSummary, 0, len(byType.keys)),
		ByMunicipality: make([]*domain.MunicipalitySummary, 0, len(byMunicipality.keys)),
	}

	for i, key := range byType.keys {
		summary.ByType = append(summary.ByType, &domain.SiteTypeSummary{
			FurnitureType: key,
			Count:         byType.counts[i],
			TotalImpacts:  byType.totals[i],
		})
	}

	for i, key := range byMunicipality.keys {
		summary.ByMunicipality = append(summary.ByMunicipality, &domain.MunicipalitySummary{
			Municipality: key,
			Count:        byMunicipality.counts[i],
			TotalImpacts: byMunicipality.totals[i],
		})
	}

	return summary
}

// SummarizePeriods ordena os períodos pelo rótulo em ordem lexicográfica.
// Rótulos iguais mantêm a ordem de armazenamento.
func SummarizePeriods(periods []*domain.CampaignPeriod) *domain.PeriodsSummary {
	data := make([]*domain.PeriodData, 0, len(periods))
	for _, p := range periods {
		data = append(data, &domain.PeriodData{
			Period:         p.Period,
			PeopleImpacts:  p.PeopleImpacts,
			VehicleImpacts: p.VehicleImpacts,
		})
	}

	sort.SliceStable(data, func(i, j int) bool {
		return data[i].Period < data[j].Period
	})

	return &domain.PeriodsSummary{
		TotalPeriods: len(periods),
		Data:         data,
	}
}

// SummarizeDemographics projeta os percentuais da campanha em três distribuições de tamanho fixo
func SummarizeDemographics(campaign *domain.Campaign) *domain.CampaignSummary {
	return &domain.CampaignSummary{
		NSEDistribution: []domain.DemographicData{
			{Label: "AB", Value: campaign.NSEAB},
			{Label: "C", Value: campaign.NSEC},
			{Label: "C+", Value: campaign.NSECPlus},
			{Label: "D", Value: campaign.NSED},
			{Label: "D+", Value: campaign.NSEDPlus},
			{Label: "E", Value: campaign.NSEE},
		},
		AgeDistribution: []domain.DemographicData{
			{Label: "0-14", Value: campaign.Age0To14},
			{Label: "15-19", Value: campaign.Age15To19},
			{Label: "20-24", Value: campaign.Age20To24},
			{Label: "25-34", Value: campaign.Age25To34},
			{Label: "35-44", Value: campaign.Age35To44},
			{Label: "45-64", Value: campaign.Age45To64},
			{Label: "65+", Value: campaign.Age65Plus},
		},
		GenderDistribution: []domain.DemographicData{
			{Label: "Hombres", Value: campaign.Men},
			{Label: "Mujeres", Value: campaign.Women},
		},
	}
}
