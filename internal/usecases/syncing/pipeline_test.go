package syncing

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/repository"
	repomocks "github.com/vfg2006/campaign-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/syncing/mocks"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
	"github.com/vfg2006/campaign-dashboard-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

type pipelineMocks struct {
	campaigns *repomocks.MockCampaignRepository
	hourly    *repomocks.MockHourlyMetricRepository
	hierarchy *repomocks.MockHierarchyRepository
	history   *repomocks.MockSyncHistoryRepository
	vendor    *mocks.MockVendorIntegrator
}

func newTestPipeline(t *testing.T, m *metrics.Metrics) (*Pipeline, pipelineMocks) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	pm := pipelineMocks{
		campaigns: repomocks.NewMockCampaignRepository(ctrl),
		hourly:    repomocks.NewMockHourlyMetricRepository(ctrl),
		hierarchy: repomocks.NewMockHierarchyRepository(ctrl),
		history:   repomocks.NewMockSyncHistoryRepository(ctrl),
		vendor:    mocks.NewMockVendorIntegrator(ctrl),
	}

	cfg := PipelineConfig{HoursBack: 24, MaxConcurrentJobs: 2}
	return NewPipeline(pm.campaigns, pm.hourly, pm.hierarchy, pm.history, pm.vendor, cfg, m), pm
}

func TestNewPipelineConfig(t *testing.T) {
	cfg := NewPipelineConfig(config.CampaignSync{HoursBack: 0, MaxConcurrentJobs: 0, RequestDelayMs: 250})

	assert.Equal(t, 24, cfg.HoursBack)
	assert.Equal(t, 1, cfg.MaxConcurrentJobs)
	assert.Equal(t, int64(250), cfg.RequestDelay.Milliseconds())
}

func TestRunFullSync(t *testing.T) {
	m := metrics.New()
	pipeline, pm := newTestPipeline(t, m)
	ctx := context.Background()

	campaigns := []domain.Campaign{
		{ID: 1, Name: "Facebook Mobile Spring"},
		{ID: 2, Name: "Something else"},
	}

	pm.history.EXPECT().StartSync(gomock.Any(), gomock.Any(), domain.SyncTypeFull).Return(int64(10), nil)
	pm.vendor.EXPECT().FetchCampaigns(gomock.Any()).Return(campaigns, nil)
	pm.campaigns.EXPECT().UpsertCampaign(gomock.Any(), gomock.Any()).Return(true, nil)
	pm.campaigns.EXPECT().UpsertCampaign(gomock.Any(), gomock.Any()).Return(false, nil)
	pm.campaigns.EXPECT().GetCampaigns(gomock.Any(), 0, 0).Return(campaigns, nil)

	pm.vendor.EXPECT().FetchHourlyMetrics(gomock.Any(), int64(1), 24).Return([]domain.HourlyMetricRow{
		{CampaignID: 1, UnixHour: 100},
		{CampaignID: 1, UnixHour: 101},
	}, nil)
	pm.vendor.EXPECT().FetchHourlyMetrics(gomock.Any(), int64(2), 24).Return(nil, errors.New("timeout"))
	pm.hourly.EXPECT().UpsertHourlyData(gomock.Any(), gomock.Len(2)).Return(nil)

	pm.hierarchy.EXPECT().GetHierarchyRules(gomock.Any()).Return([]domain.HierarchyRule{
		{RuleName: "Facebook Mobile", PatternType: domain.PatternContains, PatternValue: "Facebook Mobile",
			Network: "Facebook", Domain: "Social Media", Placement: "Mobile", Targeting: "Mobile Users",
			Special: "Standard", Priority: 981, IsActive: true},
	}, nil)

	var mapped []domain.HierarchyMapping
	pm.hierarchy.EXPECT().UpsertCampaignHierarchy(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mapping *domain.HierarchyMapping) error {
			mapped = append(mapped, *mapping)
			return nil
		}).Times(2)

	var completion repository.SyncCompletion
	pm.history.EXPECT().CompleteSync(gomock.Any(), int64(10), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, c repository.SyncCompletion) error {
			completion = c
			return nil
		})

	result, err := pipeline.RunFullSync(ctx)

	require.NoError(t, err)
	assert.Equal(t, domain.SyncStatusCompleted, result.Status)
	assert.Equal(t, int64(10), result.SyncID)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, domain.CampaignSyncStats{Inserted: 1, Updated: 1}, result.Campaigns)
	assert.Equal(t, domain.MetricsSyncStats{Processed: 2, Stored: 2, Errors: 1}, result.Metrics)
	assert.Equal(t, domain.HierarchySyncStats{Mapped: 2}, result.Hierarchies)
	assert.Equal(t, 3, result.APICalls)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "campaign 2")

	require.Len(t, mapped, 2)
	assert.Equal(t, "Facebook", mapped[0].Network)
	assert.InDelta(t, 0.3, mapped[0].MappingConfidence, 1e-9)
	assert.Equal(t, "Unknown", mapped[1].Network)
	assert.Equal(t, 0.1, mapped[1].MappingConfidence)

	assert.Equal(t, domain.SyncStatusCompleted, completion.Status)
	assert.Equal(t, 4, completion.RecordsProcessed)
	assert.Equal(t, 3, completion.RecordsInserted)
	assert.Equal(t, 1, completion.RecordsUpdated)
	assert.Equal(t, 3, completion.APICallsMade)
	assert.Contains(t, completion.ErrorMessage, "timeout")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SyncRuns.WithLabelValues(domain.SyncStatusCompleted)))
}

func TestRunFullSyncFailsWhenCampaignFetchFails(t *testing.T) {
	m := metrics.New()
	pipeline, pm := newTestPipeline(t, m)

	pm.history.EXPECT().StartSync(gomock.Any(), gomock.Any(), domain.SyncTypeFull).Return(int64(11), nil)
	pm.vendor.EXPECT().FetchCampaigns(gomock.Any()).Return(nil, errors.New("invalid or expired bearer token"))

	var completion repository.SyncCompletion
	pm.history.EXPECT().CompleteSync(gomock.Any(), int64(11), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, c repository.SyncCompletion) error {
			completion = c
			return nil
		})

	result, err := pipeline.RunFullSync(context.Background())

	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, domain.SyncStatusFailed, result.Status)
	assert.Equal(t, domain.SyncStatusFailed, completion.Status)
	assert.Equal(t, 0, completion.RecordsProcessed)
	assert.Contains(t, completion.ErrorMessage, "bearer token")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SyncRuns.WithLabelValues(domain.SyncStatusFailed)))
}

func TestRunFullSyncFailsWhenHistoryUnavailable(t *testing.T) {
	pipeline, pm := newTestPipeline(t, nil)

	pm.history.EXPECT().StartSync(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection refused"))

	result, err := pipeline.RunFullSync(context.Background())

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestRunFullSyncContinuesWithoutRules(t *testing.T) {
	pipeline, pm := newTestPipeline(t, nil)
	campaigns := []domain.Campaign{{ID: 3, Name: "Campaign"}}

	pm.history.EXPECT().StartSync(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(12), nil)
	pm.vendor.EXPECT().FetchCampaigns(gomock.Any()).Return(campaigns, nil)
	pm.campaigns.EXPECT().UpsertCampaign(gomock.Any(), gomock.Any()).Return(false, errors.New("duplicate"))
	pm.campaigns.EXPECT().GetCampaigns(gomock.Any(), 0, 0).Return(campaigns, nil)
	pm.vendor.EXPECT().FetchHourlyMetrics(gomock.Any(), int64(3), 24).Return([]domain.HourlyMetricRow{{CampaignID: 3}}, nil)
	pm.hourly.EXPECT().UpsertHourlyData(gomock.Any(), gomock.Any()).Return(errors.New("constraint"))
	pm.hierarchy.EXPECT().GetHierarchyRules(gomock.Any()).Return(nil, errors.New("relation does not exist"))
	pm.hierarchy.EXPECT().UpsertCampaignHierarchy(gomock.Any(), gomock.Any()).Return(errors.New("write failed"))
	pm.history.EXPECT().CompleteSync(gomock.Any(), int64(12), gomock.Any()).Return(nil)

	result, err := pipeline.RunFullSync(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.SyncStatusCompleted, result.Status)
	assert.Equal(t, domain.CampaignSyncStats{}, result.Campaigns)
	assert.Equal(t, domain.MetricsSyncStats{Processed: 1, Stored: 0, Errors: 1}, result.Metrics)
	assert.Equal(t, domain.HierarchySyncStats{Mapped: 0, Errors: 1}, result.Hierarchies)
	assert.Len(t, result.Errors, 3)
}
