// Comando avulso que aplica o schema e carrega os CSVs, com a mesma
// proteção usada na subida da API: se já houver campanhas, nada é gravado.
//
//	go run ./infrastructure/migration/script -data ./data
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/migration"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/seeding"
	"github.com/vfg2006/campaign-analytics-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)

	dataDir := flag.String("data", cfg.Seed.DataDir, "diretório com os arquivos bd_campanias_*.csv")
	skipMigrations := flag.Bool("skip-migrations", false, "não aplica as migrações antes da carga")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	logrus.Info("Iniciando script de carga...")
	startTime := time.Now()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if !*skipMigrations {
		if err := migration.Up(cfg.Database.DSN); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	seeder := seeding.NewSeeder(
		conn,
		repository.NewCampaignRepository(conn),
		repository.NewCampaignSiteRepository(conn),
		repository.NewCampaignPeriodRepository(conn),
		*dataDir,
	)

	result, err := seeder.Run(ctx)
	if err != nil {
		logrus.WithError(err).Error("Carga abortada, nenhuma linha foi gravada")
		os.Exit(1)
	}

	logrus.WithFields(logrus.Fields{
		"run_id":    result.RunID,
		"skipped":   result.Skipped,
		"campaigns": result.Campaigns,
		"periods":   result.Periods,
		"sites":     result.Sites,
		"elapsed":   time.Since(startTime).String(),
	}).Info("Script de carga finalizado")
}
