package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/syncing"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
	"github.com/vfg2006/campaign-dashboard-api/pkg/metrics"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

var ErrDispatcherStopped = errors.New("sync dispatcher is stopped")

//go:generate mockgen -source=campaign_sync.go -destination=mocks/campaign_sync.go -package=mocks

// SyncDispatcher submete sincronizações sem aguardar o resultado
type SyncDispatcher interface {
	Dispatch(ctx context.Context) error
	History(ctx context.Context, limit int) ([]domain.SyncHistory, error)
}

// CampaignSyncConfig representa a configuração do agendador de campanhas
type CampaignSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CampaignSyncService gerencia a sincronização agendada e as disparadas manualmente
type CampaignSyncService struct {
	scheduler   *gocron.Scheduler
	config      CampaignSyncConfig
	runner      syncing.Runner
	historyRepo repository.SyncHistoryRepository
	metrics     *metrics.Metrics

	mu      sync.Mutex
	stopped bool
	running sync.WaitGroup
}

func NewCampaignSyncService(
	runner syncing.Runner,
	historyRepo repository.SyncHistoryRepository,
	appConfig *config.Config,
	m *metrics.Metrics,
) *CampaignSyncService {
	syncConfig := CampaignSyncConfig{
		CronSchedule: appConfig.CampaignSync.CronSchedule,
		SyncEnabled:  appConfig.CampaignSync.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"sync_enabled":        syncConfig.SyncEnabled,
		"hours_back":          appConfig.CampaignSync.HoursBack,
		"max_concurrent_jobs": appConfig.CampaignSync.MaxConcurrentJobs,
		"request_delay_ms":    appConfig.CampaignSync.RequestDelayMs,
	}).Info("scheduler: campaign sync configuration loaded")

	return &CampaignSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      syncConfig,
		runner:      runner,
		historyRepo: historyRepo,
		metrics:     m,
	}
}

// Start agenda a sincronização periódica quando habilitada
func (s *CampaignSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("scheduler: scheduled campaign sync disabled by configuration")
		return nil
	}

	// execuções agendadas não se sobrepõem; disparos manuais seguem independentes
	_, err := s.scheduler.Cron(s.config.CronSchedule).SingletonMode().Do(s.scheduledSync)
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de campanhas: %w", err)
	}

	s.scheduler.StartAsync()
	log.L.WithField("cron", s.config.CronSchedule).Info("scheduler: campaign sync scheduled")

	go func() {
		<-ctx.Done()
		log.L.Info("scheduler: stopping campaign sync scheduler")
		s.Stop()
	}()

	return nil
}

// Stop encerra o agendador e recusa novos disparos; execuções em andamento continuam
func (s *CampaignSyncService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	s.scheduler.Stop()
}

// Dispatch inicia uma sincronização desvinculada do contexto da requisição.
// Não há deduplicação: dois disparos executam duas sincronizações.
func (s *CampaignSyncService) Dispatch(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return ErrDispatcherStopped
	}

	runCtx := context.WithoutCancel(ctx)
	s.metrics.IncSyncDispatch()
	s.running.Add(1)

	go func() {
		defer s.running.Done()
		s.run(runCtx, "manual")
	}()

	return nil
}

// Wait bloqueia até que as sincronizações disparadas terminem
func (s *CampaignSyncService) Wait() {
	s.running.Wait()
}

func (s *CampaignSyncService) scheduledSync() {
	ctx, _ := log.WithCorrelationID(context.Background())
	s.run(ctx, "scheduled")
}

func (s *CampaignSyncService) run(ctx context.Context, trigger string) {
	logger := log.ForContext(ctx).WithField("trigger", trigger)

	defer func() {
		if r := recover(); r != nil {
			logger.WithField("error", fmt.Sprint(r)).Error("scheduler: campaign sync panicked")
		}
	}()

	result, err := s.runner.RunFullSync(ctx)
	if err != nil {
		logger.WithError(err).Error("scheduler: campaign sync failed")
		return
	}

	logger.WithFields(log.Fields{
		"run_id":           result.RunID,
		"duration_seconds": result.DurationSeconds,
		"errors":           len(result.Errors),
	}).Info("scheduler: campaign sync finished")
}

// History retorna as execuções mais recentes; limit fora do intervalo usa o padrão ou o máximo
func (s *CampaignSyncService) History(ctx context.Context, limit int) ([]domain.SyncHistory, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	return s.historyRepo.GetSyncHistory(ctx, limit)
}
