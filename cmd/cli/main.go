// Command cli executa a sincronização e as consultas de diagnóstico do
// warehouse fora do servidor HTTP.
//
// Uso:
//
//	go run ./cmd/cli sync [-dry-run]
//	go run ./cmd/cli sync-historical -start-date=2025-08-01 -end-date=2025-08-31 [-batch-hours=168] [-test-batches=N] [-dry-run]
//	go run ./cmd/cli status [-detailed]
//	go run ./cmd/cli debug-campaign <id>
//
// A configuração vem das mesmas variáveis de ambiente e do .env usados pela API.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/vfg2006/campaign-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/peach"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/peach/peachclient"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/campaign-dashboard-api/internal/cli"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/syncing"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.WithError(err).Error("config: failed to load")
		return 1
	}
	log.Setup(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.L.WithError(err).Error("postgres: failed to connect")
		return 1
	}
	defer conn.Close()

	if cfg.Migrations.Enabled {
		if err := migration.CreateTables(conn.DB()); err != nil {
			log.L.WithError(err).Error("migration: failed to create tables")
			return 1
		}
	}

	campaignRepo := repository.NewCampaignRepository(conn)
	hourlyRepo := repository.NewHourlyMetricRepository(conn)
	hierarchyRepo := repository.NewHierarchyRepository(conn)
	historyRepo := repository.NewSyncHistoryRepository(conn)

	vendor := peach.New(peachclient.NewClient(cfg.Peach))
	pipelineConfig := syncing.NewPipelineConfig(cfg.CampaignSync)

	app := &cli.CLI{
		Syncer:    syncing.NewPipeline(campaignRepo, hourlyRepo, hierarchyRepo, historyRepo, vendor, pipelineConfig, nil),
		Vendor:    vendor,
		Assembler: campaigning.NewService(campaignRepo, hourlyRepo, hierarchyRepo, nil),
		Campaigns: campaignRepo,
		Hourly:    hourlyRepo,
		Hierarchy: hierarchyRepo,
		History:   historyRepo,
		Settings: cli.Settings{
			PeachURL:    cfg.Peach.URL,
			DatabaseURL: cfg.Database.URL,
			HoursBack:   pipelineConfig.HoursBack,
		},
		Out: os.Stdout,
	}

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, cli.ErrUsage) {
			log.L.WithError(err).Debug("cli: command failed")
		}
		return 1
	}

	return 0
}
