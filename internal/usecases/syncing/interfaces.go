package syncing

import (
	"context"
	"time"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// VendorIntegrator define a origem dos dados sincronizados para o warehouse
type VendorIntegrator interface {
	// FetchCampaigns obtém todas as campanhas; uma campanha inválida falha a busca inteira
	FetchCampaigns(ctx context.Context) ([]domain.Campaign, error)

	// FetchHourlyMetrics obtém as linhas horárias das últimas hoursBack horas
	FetchHourlyMetrics(ctx context.Context, campaignID int64, hoursBack int) ([]domain.HourlyMetricRow, error)

	// FetchHourlyMetricsRange obtém as linhas horárias de uma janela fixa, usada no backfill
	FetchHourlyMetricsRange(ctx context.Context, campaignID int64, start, end time.Time) ([]domain.HourlyMetricRow, error)
}

// Runner executa uma sincronização completa
type Runner interface {
	RunFullSync(ctx context.Context) (*domain.SyncResult, error)
}
