package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

const campaignSitesTable = "campaign_sites"

var campaignSiteInsertColumns = []string{
	"campaign_name",
	"codigo_del_sitio",
	"tipo_de_mueble",
	"tipo_de_anuncio",
	"estado",
	"municipio",
	"zm",
	"frecuencia_catorcenal",
	"frecuencia_mensual",
	"impactos_catorcenal",
	"impactos_mensuales",
	"alcance_mensual",
}

type CampaignSiteRepository interface {
	ListByCampaign(ctx context.Context, campaignName string) ([]*domain.CampaignSite, error)
	CountByCampaign(ctx context.Context, campaignName string) (int, error)
	InsertBatch(ctx context.Context, q postgres.Queryer, sites []*domain.CampaignSite) error
}

type campaignSiteRepository struct {
	conn postgres.Queryer
}

func NewCampaignSiteRepository(conn postgres.Queryer) CampaignSiteRepository {
	return &campaignSiteRepository{
		conn: conn,
	}
}

func campaignSitesQuery(campaignName string) squirrel.SelectBuilder {
	return squirrel.
		Select(append([]string{"id"}, campaignSiteInsertColumns...)...).
		From(campaignSitesTable).
		Where(squirrel.Eq{"campaign_name": campaignName}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *campaignSiteRepository) ListByCampaign(ctx context.Context, campaignName string) ([]*domain.CampaignSite, error) {
	query, args, err := campaignSitesQuery(campaignName).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sites := make([]*domain.CampaignSite, 0)
	for rows.Next() {
		site, err := scanCampaignSite(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear sitio: %w", err)
		}
		sites = append(sites, site)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sites, nil
}

func (r *campaignSiteRepository) CountByCampaign(ctx context.Context, campaignName string) (int, error) {
	return countByCampaign(ctx, r.conn, campaignSitesTable, campaignName)
}

func (r *campaignSiteRepository) InsertBatch(ctx context.Context, q postgres.Queryer, sites []*domain.CampaignSite) error {
	for start := 0; start < len(sites); start += insertBatchSize {
		end := min(start+insertBatchSize, len(sites))

		query := squirrel.StatementBuilder.
			Insert(campaignSitesTable).
			Columns(campaignSiteInsertColumns...).
			PlaceholderFormat(squirrel.Dollar)

		for _, s := range sites[start:end] {
			query = query.Values(
				s.CampaignName,
				s.SiteCode,
				s.FurnitureType,
				s.AdType,
				s.State,
				s.Municipality,
				s.MetroArea,
				s.BiweeklyFrequency,
				s.MonthlyFrequency,
				s.BiweeklyImpacts,
				s.MonthlyImpacts,
				s.MonthlyReach,
			)
		}

		if err := execInsert(ctx, q, query); err != nil {
			return fmt.Errorf("erro ao inserir sitios: %w", err)
		}
	}

	return nil
}

func scanCampaignSite(row rowScanner) (*domain.CampaignSite, error) {
	var (
		site                                     domain.CampaignSite
		code, furniture, adType, state, city, zm sql.NullString
		biweeklyFreq, monthlyFreq, monthlyReach  sql.NullFloat64
		biweeklyImpacts, monthlyImpacts          sql.NullInt64
	)

	err := row.Scan(
		&site.ID,
		&site.CampaignName,
		&code,
		&furniture,
		&adType,
		&state,
		&city,
		&zm,
		&biweeklyFreq,
		&monthlyFreq,
		&biweeklyImpacts,
		&monthlyImpacts,
		&monthlyReach,
	)
	if err != nil {
		return nil, err
	}

	site.SiteCode = code.String
	site.FurnitureType = furniture.String
	site.AdType = adType.String
	site.State = state.String
	site.Municipality = city.String
	site.MetroArea = zm.String
	site.BiweeklyFrequency = biweeklyFreq.Float64
	site.MonthlyFrequency = monthlyFreq.Float64
	site.BiweeklyImpacts = biweeklyImpacts.Int64
	site.MonthlyImpacts = monthlyImpacts.Int64
	site.MonthlyReach = monthlyReach.Float64

	return &site, nil
}
