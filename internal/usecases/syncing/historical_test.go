package syncing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

func TestNewHistoricalRequest(t *testing.T) {
	req, err := NewHistoricalRequest("2025-08-01", "2025-08-01", DefaultBatchHours, 0)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), req.Start)
	assert.Equal(t, time.Date(2025, 8, 1, 23, 59, 59, 0, time.UTC), req.End)
	assert.Equal(t, 24, req.TotalHours())
	assert.Len(t, req.Windows(), 1)
}

func TestNewHistoricalRequestErrors(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		batchHours int
		maxBatches int
		want       error
	}{
		{"data inicial inválida", "01/08/2025", "2025-08-02", 168, 0, ErrInvalidDate},
		{"data final vazia", "2025-08-01", "", 168, 0, ErrInvalidDate},
		{"intervalo invertido", "2025-08-02", "2025-08-01", 168, 0, ErrInvalidHistoricalRange},
		{"lote zerado", "2025-08-01", "2025-08-02", 0, 0, ErrInvalidBatchHours},
		{"lote acima do limite", "2025-08-01", "2025-08-02", 169, 0, ErrInvalidBatchHours},
		{"limite de lotes negativo", "2025-08-01", "2025-08-02", 24, -1, ErrInvalidBatchLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHistoricalRequest(tt.start, tt.end, tt.batchHours, tt.maxBatches)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHistoricalRequestWindows(t *testing.T) {
	day := func(d, h int) time.Time { return time.Date(2025, 8, d, h, 0, 0, 0, time.UTC) }
	lastSecond := func(d int) time.Time { return time.Date(2025, 8, d, 23, 59, 59, 0, time.UTC) }

	tests := []struct {
		name       string
		start, end string
		batchHours int
		maxBatches int
		want       []TimeWindow
	}{
		{
			name: "um dia em lotes de seis horas", start: "2025-08-01", end: "2025-08-01", batchHours: 6,
			want: []TimeWindow{
				{day(1, 0), day(1, 6)},
				{day(1, 6), day(1, 12)},
				{day(1, 12), day(1, 18)},
				{day(1, 18), lastSecond(1)},
			},
		},
		{
			name: "dez dias em lotes de uma semana", start: "2025-08-01", end: "2025-08-10", batchHours: 168,
			want: []TimeWindow{
				{day(1, 0), day(8, 0)},
				{day(8, 0), lastSecond(10)},
			},
		},
		{
			name: "limite de lotes", start: "2025-08-01", end: "2025-08-10", batchHours: 24, maxBatches: 2,
			want: []TimeWindow{
				{day(1, 0), day(2, 0)},
				{day(2, 0), day(3, 0)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewHistoricalRequest(tt.start, tt.end, tt.batchHours, tt.maxBatches)
			require.NoError(t, err)

			assert.Equal(t, tt.want, req.Windows())
		})
	}
}

func TestSyncHistorical(t *testing.T) {
	m := metrics.New()
	pipeline, pm := newTestPipeline(t, m)
	campaigns := []domain.Campaign{{ID: 1}, {ID: 2}}

	req, err := NewHistoricalRequest("2025-08-01", "2025-08-01", 12, 0)
	require.NoError(t, err)
	var reports []BatchReport
	req.OnBatch = func(r BatchReport) { reports = append(reports, r) }

	first, second := req.Windows()[0], req.Windows()[1]

	pm.campaigns.EXPECT().GetCampaigns(gomock.Any(), 0, 0).Return(campaigns, nil)
	pm.history.EXPECT().StartSync(gomock.Any(), gomock.Any(), domain.SyncTypeHistorical).Return(int64(20), nil)

	pm.vendor.EXPECT().FetchHourlyMetricsRange(gomock.Any(), int64(1), first.Start, first.End).
		Return([]domain.HourlyMetricRow{{CampaignID: 1, UnixHour: 1}, {CampaignID: 1, UnixHour: 2}}, nil)
	pm.vendor.EXPECT().FetchHourlyMetricsRange(gomock.Any(), int64(2), first.Start, first.End).
		Return(nil, errors.New("rate limited"))
	pm.vendor.EXPECT().FetchHourlyMetricsRange(gomock.Any(), int64(1), second.Start, second.End).
		Return([]domain.HourlyMetricRow{{CampaignID: 1, UnixHour: 13}}, nil)
	pm.vendor.EXPECT().FetchHourlyMetricsRange(gomock.Any(), int64(2), second.Start, second.End).
		Return([]domain.HourlyMetricRow{}, nil)

	pm.hourly.EXPECT().UpsertHourlyData(gomock.Any(), gomock.Len(2)).Return(nil)
	pm.hourly.EXPECT().UpsertHourlyData(gomock.Any(), gomock.Len(1)).Return(nil)

	var completion repository.SyncCompletion
	pm.history.EXPECT().CompleteSync(gomock.Any(), int64(20), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, c repository.SyncCompletion) error {
			completion = c
			return nil
		})

	result, err := pipeline.SyncHistorical(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.SyncStatusCompleted, result.Status)
	assert.Equal(t, int64(20), result.SyncID)
	assert.Equal(t, 3, result.TotalRecords)
	assert.Equal(t, 2, result.BatchesCompleted)
	assert.Equal(t, 2, result.TotalBatches)
	assert.Equal(t, 4, result.APICalls)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "campaign 2")

	require.Len(t, reports, 2)
	assert.Equal(t, 1, reports[0].Index)
	assert.Equal(t, 2, reports[0].Total)
	assert.Equal(t, 2, reports[0].Stored)
	assert.Len(t, reports[0].Errors, 1)
	assert.Equal(t, second, reports[1].Window)
	assert.Equal(t, 1, reports[1].Stored)

	assert.Equal(t, domain.SyncStatusCompleted, completion.Status)
	assert.Equal(t, 3, completion.RecordsProcessed)
	assert.Equal(t, 3, completion.RecordsInserted)
	assert.Equal(t, 4, completion.APICallsMade)
	assert.Contains(t, completion.ErrorMessage, "rate limited")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SyncRuns.WithLabelValues(domain.SyncStatusCompleted)))
}

func TestSyncHistoricalFailsWhenEveryBatchFails(t *testing.T) {
	pipeline, pm := newTestPipeline(t, nil)

	req, err := NewHistoricalRequest("2025-08-01", "2025-08-01", 168, 0)
	require.NoError(t, err)

	pm.campaigns.EXPECT().GetCampaigns(gomock.Any(), 0, 0).Return([]domain.Campaign{{ID: 1}}, nil)
	pm.history.EXPECT().StartSync(gomock.Any(), gomock.Any(), domain.SyncTypeHistorical).Return(int64(21), nil)
	pm.vendor.EXPECT().FetchHourlyMetricsRange(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).
		Return([]domain.HourlyMetricRow{{CampaignID: 1}}, nil)
	pm.hourly.EXPECT().UpsertHourlyData(gomock.Any(), gomock.Any()).Return(errors.New("deadlock detected"))

	var completion repository.SyncCompletion
	pm.history.EXPECT().CompleteSync(gomock.Any(), int64(21), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, c repository.SyncCompletion) error {
			completion = c
			return nil
		})

	result, err := pipeline.SyncHistorical(context.Background(), req)

	require.ErrorIs(t, err, ErrNoBatchCompleted)
	require.NotNil(t, result)
	assert.Equal(t, domain.SyncStatusFailed, result.Status)
	assert.Equal(t, 0, result.TotalRecords)
	assert.Equal(t, 0, result.BatchesCompleted)
	assert.Equal(t, domain.SyncStatusFailed, completion.Status)
	assert.Equal(t, 1, completion.RecordsProcessed)
	assert.Contains(t, completion.ErrorMessage, "deadlock")
}

func TestSyncHistoricalStopsOnCancel(t *testing.T) {
	pipeline, pm := newTestPipeline(t, nil)

	req, err := NewHistoricalRequest("2025-08-01", "2025-08-02", 24, 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pm.campaigns.EXPECT().GetCampaigns(gomock.Any(), 0, 0).Return([]domain.Campaign{{ID: 1}}, nil)
	pm.history.EXPECT().StartSync(gomock.Any(), gomock.Any(), domain.SyncTypeHistorical).Return(int64(22), nil)
	pm.history.EXPECT().CompleteSync(gomock.Any(), int64(22), gomock.Any()).Return(nil)

	result, err := pipeline.SyncHistorical(ctx, req)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, domain.SyncStatusFailed, result.Status)
	assert.Equal(t, 0, result.BatchesCompleted)
	assert.Equal(t, 2, result.TotalBatches)
}

func TestSyncHistoricalRequiresCampaigns(t *testing.T) {
	pipeline, pm := newTestPipeline(t, nil)

	req, err := NewHistoricalRequest("2025-08-01", "2025-08-01", 168, 0)
	require.NoError(t, err)

	pm.campaigns.EXPECT().GetCampaigns(gomock.Any(), 0, 0).Return([]domain.Campaign{}, nil)

	result, err := pipeline.SyncHistorical(context.Background(), req)

	assert.ErrorIs(t, err, ErrNoCampaigns)
	assert.Nil(t, result)
}

func TestSyncHistoricalRejectsInvalidRequest(t *testing.T) {
	pipeline, _ := newTestPipeline(t, nil)

	result, err := pipeline.SyncHistorical(context.Background(), HistoricalRequest{BatchHours: 200})

	assert.ErrorIs(t, err, ErrInvalidBatchHours)
	assert.Nil(t, result)
}
