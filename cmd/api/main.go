package main

import (
	"context"

	"github.com/vfg2006/campaign-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/peach"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/peach/peachclient"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/campaign-dashboard-api/internal/api"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/scheduler"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/syncing"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
	"github.com/vfg2006/campaign-dashboard-api/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	log.L.Infof("log level set to %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.New()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Migrations.Enabled {
		if err := migration.CreateTables(pgConn.DB()); err != nil {
			log.L.WithError(err).Fatal("migration: failed to create tables")
		}
		log.L.Info("migration: tables are up to date")
	}

	campaignRepo := repository.NewCampaignRepository(pgConn)
	hourlyRepo := repository.NewHourlyMetricRepository(pgConn)
	hierarchyRepo := repository.NewHierarchyRepository(pgConn)
	historyRepo := repository.NewSyncHistoryRepository(pgConn)

	peachClient := peachclient.NewClient(cfg.Peach, peachclient.WithMetrics(m))
	peachIntegrator := peach.New(peachClient)

	pipeline := syncing.NewPipeline(
		campaignRepo,
		hourlyRepo,
		hierarchyRepo,
		historyRepo,
		peachIntegrator,
		syncing.NewPipelineConfig(cfg.CampaignSync),
		m,
	)

	campaignSyncService := scheduler.NewCampaignSyncService(pipeline, historyRepo, cfg, m)
	if err := campaignSyncService.Start(ctx); err != nil {
		log.L.WithError(err).Error("scheduler: failed to start campaign sync")
	}

	campaignService := campaigning.NewService(campaignRepo, hourlyRepo, hierarchyRepo, m)

	server, err := api.New(cfg, campaignService, campaignSyncService, m)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}

	campaignSyncService.Stop()
	campaignSyncService.Wait()
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("postgres: failed to connect")
	}

	log.L.Info("postgres: connection established")
	return conn
}
