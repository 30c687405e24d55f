package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/database/postgres"
)

func execInsert(ctx context.Context, q postgres.Queryer, query squirrel.InsertBuilder) error {
	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = q.ExecContext(ctx, sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func countByCampaign(ctx context.Context, conn postgres.Queryer, table, campaignName string) (int, error) {
	query, args, err := countByCampaignQuery(table, campaignName).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query de contagem: %w", err)
	}

	var total int
	if err := conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar %s da campanha %s: %w", table, campaignName, err)
	}

	return total, nil
}

func countByCampaignQuery(table, campaignName string) squirrel.SelectBuilder {
	return squirrel.
		Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"campaign_name": campaignName}).
		PlaceholderFormat(squirrel.Dollar)
}
