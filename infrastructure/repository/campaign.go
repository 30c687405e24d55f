// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

const (
	campaignsTable = "campaigns"

	// limite de parâmetros do postgres é 65535; 500 linhas cabem para qualquer tabela
	insertBatchSize = 500
)

var campaignColumns = []string{
	"name",
	"tipo_campania",
	"fecha_inicio",
	"fecha_fin",
	"universo_zona_metro",
	"impactos_personas",
	"impactos_vehiculos",
	"frecuencia_calculada",
	"frecuencia_promedio",
	"alcance",
	"nse_ab",
	"nse_c",
	"nse_cmas",
	"nse_d",
	"nse_dmas",
	"nse_e",
	"edad_0a14",
	"edad_15a19",
	"edad_20a24",
	"edad_25a34",
	"edad_35a44",
	"edad_45a64",
	"edad_65mas",
	"hombres",
	"mujeres",
}

type CampaignRepository interface {
	List(ctx context.Context, filters domain.CampaignFilters) ([]*domain.Campaign, int, error)
	GetByName(ctx context.Context, name string) (*domain.Campaign, error)
	Count(ctx context.Context) (int, error)
	InsertBatch(ctx context.Context, q postgres.Queryer, campaigns []*domain.Campaign) error
}

type campaignRepository struct {
	conn postgres.Queryer
}

func NewCampaignRepository(conn postgres.Queryer) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

// campaignFilterPredicates monta os predicados da listagem; todos são combinados com AND.
// O intervalo de datas usa sobreposição inclusiva e só entra quando as duas pontas existem.
func campaignFilterPredicates(filters domain.CampaignFilters) []squirrel.Sqlizer {
	predicates := make([]squirrel.Sqlizer, 0, 4)

	if filters.CampaignType != "" {
		predicates = append(predicates, squirrel.Eq{"tipo_campania": filters.CampaignType})
	}

	if filters.HasDateRange() {
		predicates = append(predicates,
			squirrel.LtOrEq{"fecha_inicio": *filters.EndDate},
			squirrel.GtOrEq{"fecha_fin": *filters.StartDate},
		)
	}

	if filters.Search != "" {
		predicates = append(predicates, squirrel.ILike{"name": "%" + filters.Search + "%"})
	}

	return predicates
}

func applyPredicates(builder squirrel.SelectBuilder, predicates []squirrel.Sqlizer) squirrel.SelectBuilder {
	for _, predicate := range predicates {
		builder = builder.Where(predicate)
	}
	return builder
}

func campaignCountQuery(filters domain.CampaignFilters) squirrel.SelectBuilder {
	builder := squirrel.
		Select("COUNT(*)").
		From(campaignsTable).
		PlaceholderFormat(squirrel.Dollar)

	return applyPredicates(builder, campaignFilterPredicates(filters))
}

func campaignPageQuery(filters domain.CampaignFilters) squirrel.SelectBuilder {
	builder := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		OrderBy("name ASC").
		Offset(uint64(filters.Skip)).
		Limit(uint64(filters.Limit)).
		PlaceholderFormat(squirrel.Dollar)

	return applyPredicates(builder, campaignFilterPredicates(filters))
}

func (r *campaignRepository) List(ctx context.Context, filters domain.CampaignFilters) ([]*domain.Campaign, int, error) {
	countSQL, countArgs, err := campaignCountQuery(filters).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query de contagem: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar campanhas: %w", err)
	}

	campaigns := make([]*domain.Campaign, 0, filters.Limit)

	// skip além do total: página vazia, mas o total continua correto
	if total == 0 || filters.Skip >= total {
		return campaigns, total, nil
	}

	pageSQL, pageArgs, err := campaignPageQuery(filters).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, total, nil
}

// GetByName retorna nil, nil quando a campanha não existe
func (r *campaignRepository) GetByName(ctx context.Context, name string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"name": name}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign, err := scanCampaign(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar campanha %s: %w", name, err)
	}

	return campaign, nil
}

func (r *campaignRepository) Count(ctx context.Context) (int, error) {
	query, args, err := campaignCountQuery(domain.CampaignFilters{}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query de contagem: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar campanhas: %w", err)
	}

	return total, nil
}

func (r *campaignRepository) InsertBatch(ctx context.Context, q postgres.Queryer, campaigns []*domain.Campaign) error {
	for start := 0; start < len(campaigns); start += insertBatchSize {
		end := min(start+insertBatchSize, len(campaigns))

		query := squirrel.StatementBuilder.
			Insert(campaignsTable).
			Columns(campaignColumns...).
			PlaceholderFormat(squirrel.Dollar)

		for _, c := range campaigns[start:end] {
			query = query.Values(
				c.Name,
				c.CampaignType,
				c.StartDate.Time,
				c.EndDate.Time,
				c.MetroZoneUniverse,
				c.PeopleImpacts,
				c.VehicleImpacts,
				c.CalculatedFrequency,
				c.AverageFrequency,
				c.Reach,
				c.NSEAB,
				c.NSEC,
				c.NSECPlus,
				c.NSED,
				c.NSEDPlus,
				c.NSEE,
				c.Age0To14,
				c.Age15To19,
				c.Age20To24,
				c.Age25To34,
				c.Age35To44,
				c.Age45To64,
				c.Age65Plus,
				c.Men,
				c.Women,
			)
		}

		if err := execInsert(ctx, q, query); err != nil {
			return fmt.Errorf("erro ao inserir campanhas: %w", err)
		}
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanCampaign converte colunas numéricas nulas em zero
func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	var (
		c                                       domain.Campaign
		universe, people, vehicles, reach       sql.NullInt64
		calculatedFreq, averageFreq             sql.NullFloat64
		nseAB, nseC, nseCPlus, nseD, nseDPlus   sql.NullFloat64
		nseE                                    sql.NullFloat64
		age0, age15, age20, age25, age35, age45 sql.NullFloat64
		age65, men, women                       sql.NullFloat64
	)

	err := row.Scan(
		&c.Name,
		&c.CampaignType,
		&c.StartDate.Time,
		&c.EndDate.Time,
		&universe,
		&people,
		&vehicles,
		&calculatedFreq,
		&averageFreq,
		&reach,
		&nseAB,
		&nseC,
		&nseCPlus,
		&nseD,
		&nseDPlus,
		&nseE,
		&age0,
		&age15,
		&age20,
		&age25,
		&age35,
		&age45,
		&age65,
		&men,
		&women,
	)
	if err != nil {
		return nil, err
	}

	c.StartDate = domain.NewDate(c.StartDate.Time)
	c.EndDate = domain.NewDate(c.EndDate.Time)

	c.MetroZoneUniverse = universe.Int64
	c.PeopleImpacts = people.Int64
	c.VehicleImpacts = vehicles.Int64
	c.Reach = reach.Int64
	c.CalculatedFrequency = calculatedFreq.Float64
	c.AverageFrequency = averageFreq.Float64

	c.NSEAB = nseAB.Float64
	c.NSEC = nseC.Float64
	c.NSECPlus = nseCPlus.Float64
	c.NSED = nseD.Float64
	c.NSEDPlus = nseDPlus.Float64
	c.NSEE = nseE.Float64

	c.Age0To14 = age0.Float64
	c.Age15To19 = age15.Float64
	c.Age20To24 = age20.Float64
	c.Age25To34 = age25.Float64
	c.Age35To44 = age35.Float64
	c.Age45To64 = age45.Float64
	c.Age65Plus = age65.Float64

	c.Men = men.Float64
	c.Women = women.Float64

	return &c, nil
}
