package syncing

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/campaign-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/mapping"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
	"github.com/vfg2006/campaign-dashboard-api/pkg/metrics"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

// PipelineConfig representa os parâmetros de uma sincronização completa
type PipelineConfig struct {
	HoursBack         int
	MaxConcurrentJobs int
	RequestDelay      time.Duration
}

func NewPipelineConfig(cfg config.CampaignSync) PipelineConfig {
	pc := PipelineConfig{
		HoursBack:         cfg.HoursBack,
		MaxConcurrentJobs: cfg.MaxConcurrentJobs,
		RequestDelay:      time.Duration(cfg.RequestDelayMs) * time.Millisecond,
	}
	if pc.HoursBack <= 0 {
		pc.HoursBack = 24
	}
	if pc.MaxConcurrentJobs < 1 {
		pc.MaxConcurrentJobs = 1
	}
	return pc
}

// Pipeline sincroniza campanhas, métricas horárias e hierarquias
type Pipeline struct {
	config        PipelineConfig
	campaignRepo  repository.CampaignRepository
	hourlyRepo    repository.HourlyMetricRepository
	hierarchyRepo repository.HierarchyRepository
	historyRepo   repository.SyncHistoryRepository
	vendor        VendorIntegrator
	metrics       *metrics.Metrics
}

func NewPipeline(
	campaignRepo repository.CampaignRepository,
	hourlyRepo repository.HourlyMetricRepository,
	hierarchyRepo repository.HierarchyRepository,
	historyRepo repository.SyncHistoryRepository,
	vendor VendorIntegrator,
	cfg PipelineConfig,
	m *metrics.Metrics,
) *Pipeline {
	return &Pipeline{
		config:        cfg,
		campaignRepo:  campaignRepo,
		hourlyRepo:    hourlyRepo,
		hierarchyRepo: hierarchyRepo,
		historyRepo:   historyRepo,
		vendor:        vendor,
		metrics:       m,
	}
}

// run acumula o estado de uma execução; os passos concorrentes usam mu
type run struct {
	mu     sync.Mutex
	result *domain.SyncResult
	logger log.Logger
}

func (r *run) addError(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.result.Errors = append(r.result.Errors, fmt.Sprintf(format, args...))
}

func (r *run) apiCall() {
	r.mu.Lock()
	r.result.APICalls++
	r.mu.Unlock()
}

// RunFullSync executa os três passos em sequência. Falhas por campanha são
// registradas em errors; falhas ao buscar campanhas interrompem a execução.
func (p *Pipeline) RunFullSync(ctx context.Context) (*domain.SyncResult, error) {
	startedAt := time.Now()
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da sincronização: %w", err)
	}
	logger := log.ForContext(ctx).WithField("run_id", runID)

	syncID, err := p.historyRepo.StartSync(ctx, runID, domain.SyncTypeFull)
	if err != nil {
		p.metrics.ObserveSync(domain.SyncStatusFailed, time.Since(startedAt))
		return nil, fmt.Errorf("erro ao registrar início da sincronização: %w", err)
	}

	r := &run{
		logger: logger,
		result: &domain.SyncResult{
			RunID:  runID,
			SyncID: syncID,
			Status: domain.SyncStatusRunning,
			Errors: []string{},
		},
	}
	logger.WithField("sync_id", syncID).Info("sync: full synchronization started")

	if err := p.syncCampaigns(ctx, r); err != nil {
		return p.finish(ctx, r, startedAt, err)
	}

	campaigns, err := p.campaignRepo.GetCampaigns(ctx, 0, 0)
	if err != nil {
		return p.finish(ctx, r, startedAt, fmt.Errorf("erro ao listar campanhas armazenadas: %w", err))
	}

	p.syncHourlyMetrics(ctx, r, campaigns)
	p.syncHierarchies(ctx, r, campaigns)

	return p.finish(ctx, r, startedAt, nil)
}

func (p *Pipeline) syncCampaigns(ctx context.Context, r *run) error {
	campaigns, err := p.vendor.FetchCampaigns(ctx)
	r.apiCall()
	if err != nil {
		return fmt.Errorf("erro ao buscar campanhas: %w", err)
	}

	for i := range campaigns {
		campaign := &campaigns[i]
		inserted, err := p.campaignRepo.UpsertCampaign(ctx, campaign)
		if err != nil {
			r.logger.WithFields(log.Fields{
				"campaign_id": campaign.ID,
				"error":       err.Error(),
			}).Error("sync: failed to store campaign")
			r.addError("campaign %d: %v", campaign.ID, err)
			continue
		}
		if inserted {
			r.result.Campaigns.Inserted++
		} else {
			r.result.Campaigns.Updated++
		}
	}

	r.logger.WithFields(log.Fields{
		"inserted": r.result.Campaigns.Inserted,
		"updated":  r.result.Campaigns.Updated,
	}).Info("sync: campaigns synchronized")

	return nil
}

func (p *Pipeline) syncHourlyMetrics(ctx context.Context, r *run, campaigns []domain.Campaign) {
	semaphore := make(chan struct{}, p.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, campaign := range campaigns {
		if ctx.Err() != nil {
			r.addError("metrics: %v", ctx.Err())
			break
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(campaignID int64) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			p.syncCampaignMetrics(ctx, r, campaignID)
			p.wait(ctx)
		}(campaign.ID)
	}

	wg.Wait()

	r.logger.WithFields(log.Fields{
		"processed": r.result.Metrics.Processed,
		"stored":    r.result.Metrics.Stored,
		"errors":    r.result.Metrics.Errors,
	}).Info("sync: hourly metrics synchronized")
}

func (p *Pipeline) syncCampaignMetrics(ctx context.Context, r *run, campaignID int64) {
	rows, err := p.vendor.FetchHourlyMetrics(ctx, campaignID, p.config.HoursBack)
	r.apiCall()
	if err != nil {
		r.logger.WithFields(log.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Warn("sync: failed to fetch hourly metrics, skipping campaign")
		r.addError("metrics for campaign %d: %v", campaignID, err)
		r.mu.Lock()
		r.result.Metrics.Errors++
		r.mu.Unlock()
		return
	}

	stored, failed := len(rows), 0
	if len(rows) > 0 {
		if err := p.hourlyRepo.UpsertHourlyData(ctx, rows); err != nil {
			r.logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"rows":        len(rows),
				"error":       err.Error(),
			}).Error("sync: failed to store hourly metrics, batch rolled back")
			stored, failed = 0, len(rows)
		}
	}

	r.mu.Lock()
	r.result.Metrics.Processed += len(rows)
	r.result.Metrics.Stored += stored
	r.result.Metrics.Errors += failed
	r.mu.Unlock()
}

// wait aplica o intervalo entre requisições sem segurar o cancelamento
func (p *Pipeline) wait(ctx context.Context) {
	if p.config.RequestDelay <= 0 {
		return
	}
	timer := time.NewTimer(p.config.RequestDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (p *Pipeline) syncHierarchies(ctx context.Context, r *run, campaigns []domain.Campaign) {
	rules, err := p.hierarchyRepo.GetHierarchyRules(ctx)
	if err != nil {
		r.logger.WithError(err).Warn("sync: failed to load hierarchy rules, using defaults")
		r.addError("hierarchy rules: %v", err)
		rules = nil
	}

	mapper := mapping.NewMapper(rules)
	for _, campaign := range campaigns {
		result := mapper.Map(campaign.Name)
		h := result.Hierarchy

		err := p.hierarchyRepo.UpsertCampaignHierarchy(ctx, &domain.HierarchyMapping{
			CampaignID:        campaign.ID,
			CampaignName:      campaign.Name,
			Network:           h.Network,
			Domain:            h.Domain,
			Placement:         h.Placement,
			Targeting:         h.Targeting,
			Special:           h.Special,
			MappingConfidence: h.MappingConfidence,
		})
		if err != nil {
			r.logger.WithFields(log.Fields{
				"campaign_id": campaign.ID,
				"error":       err.Error(),
			}).Error("sync: failed to store hierarchy mapping")
			r.addError("hierarchy for campaign %d: %v", campaign.ID, err)
			r.result.Hierarchies.Errors++
			continue
		}
		r.result.Hierarchies.Mapped++
	}

	r.logger.WithFields(log.Fields{
		"mapped": r.result.Hierarchies.Mapped,
		"errors": r.result.Hierarchies.Errors,
		"rules":  len(mapper.Rules()),
	}).Info("sync: hierarchy mapping finished")
}

func (p *Pipeline) finish(ctx context.Context, r *run, startedAt time.Time, runErr error) (*domain.SyncResult, error) {
	result := r.result
	result.CompletedAt = time.Now().UTC()
	result.DurationSeconds = utils.RoundWithTwoDecimalPlace(time.Since(startedAt).Seconds())

	completion := repository.SyncCompletion{APICallsMade: result.APICalls}
	if runErr != nil {
		result.Status = domain.SyncStatusFailed
		result.Errors = append(result.Errors, fmt.Sprintf("pipeline failed: %v", runErr))
		completion.Status = domain.SyncStatusFailed
	} else {
		result.Status = domain.SyncStatusCompleted
		completion.Status = domain.SyncStatusCompleted
		completion.RecordsProcessed = result.Campaigns.Inserted + result.Campaigns.Updated + result.Metrics.Processed
		completion.RecordsInserted = result.Campaigns.Inserted + result.Metrics.Stored
		completion.RecordsUpdated = result.Campaigns.Updated
	}
	completion.ErrorMessage = strings.Join(result.Errors, "; ")

	// o registro de histórico usa um contexto próprio para não perder o status final
	if err := p.historyRepo.CompleteSync(context.WithoutCancel(ctx), result.SyncID, completion); err != nil {
		r.logger.WithError(err).Error("sync: failed to record sync completion")
	}

	p.metrics.ObserveSync(result.Status, time.Since(startedAt))

	logger := r.logger.WithFields(log.Fields{
		"status":           result.Status,
		"duration_seconds": result.DurationSeconds,
		"errors":           len(result.Errors),
	})
	if runErr != nil {
		logger.WithError(runErr).Error("sync: full synchronization failed")
		return result, runErr
	}
	logger.Info("sync: full synchronization completed")

	return result, nil
}
