package syncing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/campaign-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

const (
	// MaxBatchHours é a maior janela aceita pela Peach AI em uma requisição
	MaxBatchHours     = 168
	DefaultBatchHours = MaxBatchHours
)

// TimeWindow é um intervalo [Start, End] consultado em um lote
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// BatchReport descreve um lote processado
type BatchReport struct {
	Index   int
	Total   int
	Window  TimeWindow
	Fetched int
	Stored  int
	Errors  []string
}

// HistoricalRequest representa um backfill de métricas horárias entre duas datas
type HistoricalRequest struct {
	Start      time.Time
	End        time.Time
	BatchHours int
	// MaxBatches limita a quantidade de lotes; zero processa todos
	MaxBatches int
	OnBatch    func(BatchReport)
}

// NewHistoricalRequest monta o pedido a partir de datas YYYY-MM-DD em UTC.
// O dia final é incluído até 23:59:59.
func NewHistoricalRequest(startDate, endDate string, batchHours, maxBatches int) (HistoricalRequest, error) {
	start, err := utils.ParseDate(startDate)
	if err != nil || start == nil {
		return HistoricalRequest{}, fmt.Errorf("%w: start date %q", ErrInvalidDate, startDate)
	}

	end, err := utils.ParseDate(endDate)
	if err != nil || end == nil {
		return HistoricalRequest{}, fmt.Errorf("%w: end date %q", ErrInvalidDate, endDate)
	}

	req := HistoricalRequest{
		Start:      *start,
		End:        end.Add(24*time.Hour - time.Second),
		BatchHours: batchHours,
		MaxBatches: maxBatches,
	}

	return req, req.Validate()
}

func (r HistoricalRequest) Validate() error {
	if r.BatchHours < 1 || r.BatchHours > MaxBatchHours {
		return ErrInvalidBatchHours
	}
	if r.MaxBatches < 0 {
		return ErrInvalidBatchLimit
	}
	if r.Start.After(r.End) {
		return ErrInvalidHistoricalRange
	}
	return nil
}

// TotalHours conta as horas cobertas pelo intervalo, incluindo a hora parcial final
func (r HistoricalRequest) TotalHours() int {
	return int(r.End.Sub(r.Start).Hours()) + 1
}

// Windows divide o intervalo em janelas consecutivas de BatchHours horas
func (r HistoricalRequest) Windows() []TimeWindow {
	if r.BatchHours < 1 {
		return nil
	}

	step := time.Duration(r.BatchHours) * time.Hour
	var windows []TimeWindow
	for current := r.Start; current.Before(r.End); {
		if r.MaxBatches > 0 && len(windows) == r.MaxBatches {
			break
		}

		next := current.Add(step)
		if next.After(r.End) {
			next = r.End
		}
		windows = append(windows, TimeWindow{Start: current, End: next})
		current = next
	}

	return windows
}

// SyncHistorical carrega métricas horárias de todas as campanhas armazenadas,
// janela a janela. Erros de uma campanha ou de um lote não interrompem o backfill.
func (p *Pipeline) SyncHistorical(ctx context.Context, req HistoricalRequest) (*domain.HistoricalSyncResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	startedAt := time.Now()
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da sincronização: %w", err)
	}
	logger := log.ForContext(ctx).WithField("run_id", runID)

	campaigns, err := p.campaignRepo.GetCampaigns(ctx, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar campanhas armazenadas: %w", err)
	}
	if len(campaigns) == 0 {
		return nil, ErrNoCampaigns
	}

	syncID, err := p.historyRepo.StartSync(ctx, runID, domain.SyncTypeHistorical)
	if err != nil {
		p.metrics.ObserveSync(domain.SyncStatusFailed, time.Since(startedAt))
		return nil, fmt.Errorf("erro ao registrar início da sincronização: %w", err)
	}

	windows := req.Windows()
	result := &domain.HistoricalSyncResult{
		RunID:        runID,
		SyncID:       syncID,
		Status:       domain.SyncStatusRunning,
		TotalBatches: len(windows),
		Errors:       []string{},
	}
	logger.WithFields(log.Fields{
		"sync_id": syncID,
		"batch":   len(windows),
	}).Info("sync: historical synchronization started")

	processed := 0
	for i, window := range windows {
		if ctx.Err() != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("batch %d: %v", i+1, ctx.Err()))
			break
		}

		report := p.syncHistoricalBatch(ctx, logger, campaigns, window)
		report.Index, report.Total = i+1, len(windows)

		result.APICalls += len(campaigns)
		result.TotalRecords += report.Stored
		result.Errors = append(result.Errors, report.Errors...)
		processed += report.Fetched
		// um lote em que todas as campanhas falharam não conta como concluído
		if len(report.Errors) < len(campaigns) {
			result.BatchesCompleted++
		}

		logger.WithFields(log.Fields{
			"batch":  report.Index,
			"stored": report.Stored,
			"errors": len(report.Errors),
		}).Info("sync: historical batch finished")

		if req.OnBatch != nil {
			req.OnBatch(report)
		}

		if i < len(windows)-1 {
			p.wait(ctx)
		}
	}

	var runErr error
	switch {
	case ctx.Err() != nil:
		runErr = ctx.Err()
	case result.TotalBatches > 0 && result.BatchesCompleted == 0:
		runErr = ErrNoBatchCompleted
	}

	result.CompletedAt = time.Now().UTC()
	result.DurationSeconds = utils.RoundWithTwoDecimalPlace(time.Since(startedAt).Seconds())

	completion := repository.SyncCompletion{
		Status:           domain.SyncStatusCompleted,
		RecordsProcessed: processed,
		RecordsInserted:  result.TotalRecords,
		APICallsMade:     result.APICalls,
	}
	result.Status = domain.SyncStatusCompleted
	if runErr != nil {
		result.Status = domain.SyncStatusFailed
		completion.Status = domain.SyncStatusFailed
		result.Errors = append(result.Errors, fmt.Sprintf("historical sync failed: %v", runErr))
	}
	completion.ErrorMessage = strings.Join(result.Errors, "; ")

	if err := p.historyRepo.CompleteSync(context.WithoutCancel(ctx), syncID, completion); err != nil {
		logger.WithError(err).Error("sync: failed to record sync completion")
	}

	p.metrics.ObserveSync(result.Status, time.Since(startedAt))

	logger = logger.WithFields(log.Fields{
		"status": result.Status,
		"stored": result.TotalRecords,
		"errors": len(result.Errors),
	})
	if runErr != nil {
		logger.WithError(runErr).Error("sync: historical synchronization failed")
		return result, runErr
	}
	logger.Info("sync: historical synchronization completed")

	return result, nil
}

func (p *Pipeline) syncHistoricalBatch(ctx context.Context, logger log.Logger, campaigns []domain.Campaign, window TimeWindow) BatchReport {
	report := BatchReport{Window: window}

	for _, campaign := range campaigns {
		rows, err := p.vendor.FetchHourlyMetricsRange(ctx, campaign.ID, window.Start, window.End)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaign.ID,
				"error":       err.Error(),
			}).Warn("sync: failed to fetch historical metrics, skipping campaign")
			report.Errors = append(report.Errors, fmt.Sprintf("window %s campaign %d: %v", window.Start.Format(time.DateTime), campaign.ID, err))
			continue
		}

		report.Fetched += len(rows)
		if len(rows) == 0 {
			continue
		}

		if err := p.hourlyRepo.UpsertHourlyData(ctx, rows); err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaign.ID,
				"rows":        len(rows),
				"error":       err.Error(),
			}).Error("sync: failed to store historical metrics, batch rolled back")
			report.Errors = append(report.Errors, fmt.Sprintf("window %s campaign %d: store: %v", window.Start.Format(time.DateTime), campaign.ID, err))
			continue
		}
		report.Stored += len(rows)
	}

	return report
}
