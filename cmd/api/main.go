package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/migration"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-analytics-api/internal/api"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/seeding"
	"github.com/vfg2006/campaign-analytics-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Migration.Enabled {
		if err := migration.Up(cfg.Database.DSN); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	campaignRepo := repository.NewCampaignRepository(pgConn)
	siteRepo := repository.NewCampaignSiteRepository(pgConn)
	periodRepo := repository.NewCampaignPeriodRepository(pgConn)

	// a carga termina antes do servidor aceitar requisições
	if cfg.Seed.Enabled {
		seeder := seeding.NewSeeder(pgConn, campaignRepo, siteRepo, periodRepo, cfg.Seed.DataDir)
		if _, err := seeder.Run(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao carregar dados iniciais")
		}
	}

	campaignService := campaigning.NewService(campaignRepo, siteRepo, periodRepo)

	server := api.New(cfg, campaignService)
	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
