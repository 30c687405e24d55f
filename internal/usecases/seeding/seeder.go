// Package seeding carrega as campanhas a partir dos CSVs exportados.
// A carga roda uma única vez: com campanhas no banco ela não faz nada.
package seeding

import (
	"context"
	"database/sql"
	"io/fs"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/pkg/log"
	"github.com/vfg2006/campaign-analytics-api/pkg/utils"
)

const (
	CampaignsFile = "bd_campanias_agrupado.csv"
	PeriodsFile   = "bd_campanias_periodos.csv"
	SitesFile     = "bd_campanias_sitios.csv"
)

var campaignColumns = []string{
	"name", "tipo_campania", "fecha_inicio", "fecha_fin",
	"universo_zona_metro", "impactos_personas", "impactos_vehiculos",
	"frecuencia_calculada", "frecuencia_promedio", "alcance",
	"nse_ab", "nse_c", "nse_cmas", "nse_d", "nse_dmas", "nse_e",
	"edad_0a14", "edad_15a19", "edad_20a24", "edad_25a34", "edad_35a44", "edad_45a64", "edad_65mas",
	"hombres", "mujeres",
}

var periodColumns = []string{
	"name", "period", "impactos_periodo_personas", "impactos_periodo_vehiculos",
}

var siteColumns = []string{
	"name", "codigo_del_sitio", "tipo_de_mueble", "tipo_de_anuncio", "estado", "municipio", "zm",
	"frecuencia_catorcenal", "frecuencia_mensual", "impactos_catorcenal", "impactos_mensuales", "alcance_mensual",
}

// TxRunner executa uma função dentro de uma transação
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

type Result struct {
	RunID     string
	Skipped   bool
	Campaigns int
	Periods   int
	Sites     int
}

type Seeder struct {
	tx                 TxRunner
	campaignRepository repository.CampaignRepository
	siteRepository     repository.CampaignSiteRepository
	periodRepository   repository.CampaignPeriodRepository
	data               fs.FS
}

func NewSeeder(
	tx TxRunner,
	campaignRepository repository.CampaignRepository,
	siteRepository repository.CampaignSiteRepository,
	periodRepository repository.CampaignPeriodRepository,
	dataDir string,
) *Seeder {
	return &Seeder{
		tx:                 tx,
		campaignRepository: campaignRepository,
		siteRepository:     siteRepository,
		periodRepository:   periodRepository,
		data:               os.DirFS(dataDir),
	}
}

// Run carrega os três arquivos numa única transação; qualquer erro desfaz tudo
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id da carga")
	}

	result := &Result{RunID: runID}
	logger := log.ForContext(ctx).WithField("seed_run_id", runID)

	existing, err := s.campaignRepository.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao verificar campanhas existentes")
	}

	if existing > 0 {
		logger.WithField("campaigns_existing", existing).Info("Banco já possui campanhas, carga ignorada")
		result.Skipped = true
		return result, nil
	}

	campaigns, err := s.loadCampaigns()
	if err != nil {
		return nil, err
	}

	periods, err := s.loadPeriods()
	if err != nil {
		return nil, err
	}

	sites, err := s.loadSites()
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.campaignRepository.InsertBatch(ctx, tx, campaigns); err != nil {
			return err
		}
		if err := s.periodRepository.InsertBatch(ctx, tx, periods); err != nil {
			return err
		}
		return s.siteRepository.InsertBatch(ctx, tx, sites)
	})
	if err != nil {
		logger.WithError(err).Error("Carga desfeita")
		return nil, errors.Wrap(err, "erro ao gravar carga")
	}

	result.Campaigns = len(campaigns)
	result.Periods = len(periods)
	result.Sites = len(sites)

	logger.WithFields(log.Fields{
		"seed_campaigns": result.Campaigns,
		"seed_periods":   result.Periods,
		"seed_sites":     result.Sites,
	}).Info("Carga concluída")

	return result, nil
}

// loadCampaigns mantém a primeira ocorrência de cada nome
func (s *Seeder) loadCampaigns() ([]*domain.Campaign, error) {
	table, err := readCSV(s.data, CampaignsFile, campaignColumns)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(table.rows))
	campaigns := make([]*domain.Campaign, 0, len(table.rows))
	duplicated := 0

	for i := range table.rows {
		r := table.record(i)

		c := &domain.Campaign{
			Name:                r.text("name"),
			CampaignType:        r.text("tipo_campania"),
			StartDate:           r.date("fecha_inicio"),
			EndDate:             r.date("fecha_fin"),
			MetroZoneUniverse:   r.int64("universo_zona_metro"),
			PeopleImpacts:       r.int64("impactos_personas"),
			VehicleImpacts:      r.int64("impactos_vehiculos"),
			CalculatedFrequency: r.float("frecuencia_calculada"),
			AverageFrequency:    r.float("frecuencia_promedio"),
			Reach:               r.int64("alcance"),
			NSEAB:               r.float("nse_ab"),
			NSEC:                r.float("nse_c"),
			NSECPlus:            r.float("nse_cmas"),
			NSED:                r.float("nse_d"),
			NSEDPlus:            r.float("nse_dmas"),
			NSEE:                r.float("nse_e"),
			Age0To14:            r.float("edad_0a14"),
			Age15To19:           r.float("edad_15a19"),
			Age20To24:           r.float("edad_20a24"),
			Age25To34:           r.float("edad_25a34"),
			Age35To44:           r.float("edad_35a44"),
			Age45To64:           r.float("edad_45a64"),
			Age65Plus:           r.float("edad_65mas"),
			Men:                 r.float("hombres"),
			Women:               r.float("mujeres"),
		}
		if r.err != nil {
			return nil, r.err
		}
		if strings.TrimSpace(c.Name) == "" {
			return nil, errors.Errorf("%s linha %d: campanha sem nome", CampaignsFile, r.line)
		}

		if _, ok := seen[c.Name]; ok {
			duplicated++
			continue
		}
		seen[c.Name] = struct{}{}
		campaigns = append(campaigns, c)
	}

	if duplicated > 0 {
		log.L.WithField("seed_duplicated_campaigns", duplicated).Warn("Campanhas duplicadas ignoradas")
	}

	return campaigns, nil
}

func (s *Seeder) loadPeriods() ([]*domain.CampaignPeriod, error) {
	table, err := readCSV(s.data, PeriodsFile, periodColumns)
	if err != nil {
		return nil, err
	}

	periods := make([]*domain.CampaignPeriod, 0, len(table.rows))
	for i := range table.rows {
		r := table.record(i)

		p := &domain.CampaignPeriod{
			CampaignName:   r.text("name"),
			Period:         r.text("period"),
			PeopleImpacts:  r.int64("impactos_periodo_personas"),
			VehicleImpacts: r.int64("impactos_periodo_vehiculos"),
		}
		if r.err != nil {
			return nil, r.err
		}

		periods = append(periods, p)
	}

	return periods, nil
}

func (s *Seeder) loadSites() ([]*domain.CampaignSite, error) {
	table, err := readCSV(s.data, SitesFile, siteColumns)
	if err != nil {
		return nil, err
	}

	sites := make([]*domain.CampaignSite, 0, len(table.rows))
	for i := range table.rows {
		r := table.record(i)

		site := &domain.CampaignSite{
			CampaignName:      r.text("name"),
			SiteCode:          r.text("codigo_del_sitio"),
			FurnitureType:     r.text("tipo_de_mueble"),
			AdType:            r.text("tipo_de_anuncio"),
			State:             r.text("estado"),
			Municipality:      r.text("municipio"),
			MetroArea:         r.text("zm"),
			BiweeklyFrequency: r.float("frecuencia_catorcenal"),
			MonthlyFrequency:  r.float("frecuencia_mensual"),
			BiweeklyImpacts:   r.int64("impactos_catorcenal"),
			MonthlyImpacts:    r.int64("impactos_mensuales"),
			MonthlyReach:      r.float("alcance_mensual"),
		}
		if r.err != nil {
			return nil, r.err
		}

		sites = append(sites, site)
	}

	return sites, nil
}
