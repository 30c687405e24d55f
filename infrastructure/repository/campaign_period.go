package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

const campaignPeriodsTable = "campaign_periods"

type CampaignPeriodRepository interface {
	ListByCampaign(ctx context.Context, campaignName string) ([]*domain.CampaignPeriod, error)
	CountByCampaign(ctx context.Context, campaignName string) (int, error)
	InsertBatch(ctx context.Context, q postgres.Queryer, periods []*domain.CampaignPeriod) error
}

type campaignPeriodRepository struct {
	conn postgres.Queryer
}

func NewCampaignPeriodRepository(conn postgres.Queryer) CampaignPeriodRepository {
	return &campaignPeriodRepository{
		conn: conn,
	}
}

func campaignPeriodsQuery(campaignName string) squirrel.SelectBuilder {
	return squirrel.
		Select("id", "campaign_name", "period", "impactos_periodo_personas", "impactos_periodo_vehiculos").
		From(campaignPeriodsTable).
		Where(squirrel.Eq{"campaign_name": campaignName}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *campaignPeriodRepository) ListByCampaign(ctx context.Context, campaignName string) ([]*domain.CampaignPeriod, error) {
	query, args, err := campaignPeriodsQuery(campaignName).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	periods := make([]*domain.CampaignPeriod, 0)
	for rows.Next() {
		var (
			period           domain.CampaignPeriod
			people, vehicles sql.NullInt64
		)

		if err := rows.Scan(&period.ID, &period.CampaignName, &period.Period, &people, &vehicles); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}

		period.PeopleImpacts = people.Int64
		period.VehicleImpacts = vehicles.Int64
		periods = append(periods, &period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}

func (r *campaignPeriodRepository) CountByCampaign(ctx context.Context, campaignName string) (int, error) {
	return countByCampaign(ctx, r.conn, campaignPeriodsTable, campaignName)
}

func (r *campaignPeriodRepository) InsertBatch(ctx context.Context, q postgres.Queryer, periods []*domain.CampaignPeriod) error {
	for start := 0; start < len(periods); start += insertBatchSize {
		end := min(start+insertBatchSize, len(periods))

		query := squirrel.StatementBuilder.
			Insert(campaignPeriodsTable).
			Columns("campaign_name", "period", "impactos_periodo_personas", "impactos_periodo_vehiculos").
			PlaceholderFormat(squirrel.Dollar)

		for _, p := range periods[start:end] {
			query = query.Values(p.CampaignName, p.Period, p.PeopleImpacts, p.VehicleImpacts)
		}

		if err := execInsert(ctx, q, query); err != nil {
			return fmt.Errorf("erro ao inserir períodos: %w", err)
		}
	}

	return nil
}
