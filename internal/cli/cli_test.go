package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/campaign-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-dashboard-api/internal/cli/mocks"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/syncing"
	syncmocks "github.com/vfg2006/campaign-dashboard-api/internal/usecases/syncing/mocks"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

type cliMocks struct {
	syncer    *mocks.MockSyncer
	assembler *mocks.MockCampaignAssembler
	vendor    *syncmocks.MockVendorIntegrator
	campaigns *repomocks.MockCampaignRepository
	hourly    *repomocks.MockHourlyMetricRepository
	hierarchy *repomocks.MockHierarchyRepository
	history   *repomocks.MockSyncHistoryRepository
}

func newTestCLI(t *testing.T) (*CLI, cliMocks, *bytes.Buffer) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	m := cliMocks{
		syncer:    mocks.NewMockSyncer(ctrl),
		assembler: mocks.NewMockCampaignAssembler(ctrl),
		vendor:    syncmocks.NewMockVendorIntegrator(ctrl),
		campaigns: repomocks.NewMockCampaignRepository(ctrl),
		hourly:    repomocks.NewMockHourlyMetricRepository(ctrl),
		hierarchy: repomocks.NewMockHierarchyRepository(ctrl),
		history:   repomocks.NewMockSyncHistoryRepository(ctrl),
	}

	out := &bytes.Buffer{}
	c := &CLI{
		Syncer:    m.syncer,
		Vendor:    m.vendor,
		Assembler: m.assembler,
		Campaigns: m.campaigns,
		Hourly:    m.hourly,
		Hierarchy: m.hierarchy,
		History:   m.history,
		Settings: Settings{
			PeachURL:    "https://api.peach.test",
			DatabaseURL: "localhost:5432/campaigns",
			HoursBack:   24,
		},
		Out: out,
	}

	return c, m, out
}

func TestRunUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"sem comando", nil, "Usage: campaign-cli"},
		{"comando desconhecido", []string{"export"}, `unknown command "export"`},
		{"flag desconhecida", []string{"sync", "-force"}, "flag provided but not defined"},
		{"histórico sem datas", []string{"sync-historical", "-start-date", "2025-08-01"}, "-start-date and -end-date are required"},
		{"debug sem id", []string{"debug-campaign"}, "exactly one campaign id"},
		{"debug com id inválido", []string{"debug-campaign", "abc"}, `invalid campaign id "abc"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, out := newTestCLI(t)

			err := c.Run(context.Background(), tt.args)

			assert.ErrorIs(t, err, ErrUsage)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestSyncDryRun(t *testing.T) {
	c, _, out := newTestCLI(t)

	err := c.Run(context.Background(), []string{"sync", "-dry-run"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "DRY RUN")
	assert.Contains(t, out.String(), "API URL: https://api.peach.test")
	assert.Contains(t, out.String(), "Hours back: 24")
}

func TestSync(t *testing.T) {
	c, m, out := newTestCLI(t)

	m.syncer.EXPECT().RunFullSync(gomock.Any()).Return(&domain.SyncResult{
		Status:          domain.SyncStatusCompleted,
		DurationSeconds: 3.5,
		Campaigns:       domain.CampaignSyncStats{Inserted: 2, Updated: 5},
		Metrics:         domain.MetricsSyncStats{Processed: 48, Stored: 47, Errors: 1},
		Hierarchies:     domain.HierarchySyncStats{Mapped: 7},
		APICalls:        8,
		Errors:          []string{"metrics for campaign 9: timeout"},
	}, nil)

	err := c.Run(context.Background(), []string{"sync"})

	require.NoError(t, err)
	output := out.String()
	assert.Contains(t, output, "completed in 3.50 seconds")
	assert.Contains(t, output, "Campaigns: 2 inserted, 5 updated")
	assert.Contains(t, output, "Hourly Metrics: 48 processed, 47 stored")
	assert.Contains(t, output, "Hierarchies: 7 mapped")
	assert.Contains(t, output, "Warnings (1)")
	assert.Contains(t, output, "campaign 9: timeout")
}

func TestSyncFailure(t *testing.T) {
	c, m, out := newTestCLI(t)
	m.syncer.EXPECT().RunFullSync(gomock.Any()).
		Return(&domain.SyncResult{Status: domain.SyncStatusFailed}, errors.New("invalid or expired bearer token"))

	err := c.Sync(context.Background(), false)

	assert.EqualError(t, err, "invalid or expired bearer token")
	assert.Contains(t, out.String(), "ERROR: synchronization failed")
}

func TestSyncHistoricalDryRun(t *testing.T) {
	c, _, out := newTestCLI(t)

	err := c.Run(context.Background(), []string{
		"sync-historical", "-start-date", "2025-08-01", "-end-date", "2025-08-10", "-test-batches", "1", "-dry-run",
	})

	require.NoError(t, err)
	output := out.String()
	assert.Contains(t, output, "TESTING MODE: limited to 1 batches")
	assert.Contains(t, output, "Total Duration: 240 hours")
	assert.Contains(t, output, "Batch Size: 168 hours per batch")
	assert.Contains(t, output, "Total Batches: 1")
}

func TestSyncHistoricalRejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts HistoricalOptions
		want error
	}{
		{"data inválida", HistoricalOptions{StartDate: "2025-13-01", EndDate: "2025-08-01", BatchHours: 24}, syncing.ErrInvalidDate},
		{"intervalo invertido", HistoricalOptions{StartDate: "2025-08-02", EndDate: "2025-08-01", BatchHours: 24}, syncing.ErrInvalidHistoricalRange},
		{"lote grande demais", HistoricalOptions{StartDate: "2025-08-01", EndDate: "2025-08-01", BatchHours: 200}, syncing.ErrInvalidBatchHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, out := newTestCLI(t)

			err := c.SyncHistorical(context.Background(), tt.opts)

			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, out.String(), "ERROR:")
		})
	}
}

func TestSyncHistorical(t *testing.T) {
	c, m, out := newTestCLI(t)

	m.syncer.EXPECT().SyncHistorical(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req syncing.HistoricalRequest) (*domain.HistoricalSyncResult, error) {
			assert.Equal(t, 168, req.BatchHours)
			assert.Equal(t, 0, req.MaxBatches)
			windows := req.Windows()
			require.Len(t, windows, 2)

			req.OnBatch(syncing.BatchReport{Index: 1, Total: 2, Window: windows[0], Stored: 7})
			req.OnBatch(syncing.BatchReport{Index: 2, Total: 2, Window: windows[1], Errors: []string{"campaign 3: boom"}})

			return &domain.HistoricalSyncResult{
				Status:           domain.SyncStatusCompleted,
				TotalRecords:     7,
				BatchesCompleted: 2,
				TotalBatches:     2,
				Errors:           []string{"campaign 3: boom"},
			}, nil
		})

	err := c.Run(context.Background(), []string{
		"sync-historical", "-start-date", "2025-08-01", "-end-date", "2025-08-10",
	})

	require.NoError(t, err)
	output := out.String()
	assert.Contains(t, output, "Batch   1/2 [ 50.0%] | 2025-08-01 00:00 - 2025-08-08 00:00")
	assert.Contains(t, output, "  + Stored 7 records")
	assert.Contains(t, output, "Batch   2/2 [100.0%] | 2025-08-08 00:00 - 2025-08-10 23:59")
	assert.Contains(t, output, "  - campaign 3: boom")
	assert.Contains(t, output, "Processed 7 records across 2/2 batches")
}

func TestSyncHistoricalFailure(t *testing.T) {
	c, m, out := newTestCLI(t)
	m.syncer.EXPECT().SyncHistorical(gomock.Any(), gomock.Any()).Return(nil, syncing.ErrNoCampaigns)

	err := c.SyncHistorical(context.Background(), HistoricalOptions{
		StartDate: "2025-08-01", EndDate: "2025-08-01", BatchHours: 168,
	})

	assert.ErrorIs(t, err, syncing.ErrNoCampaigns)
	assert.Contains(t, out.String(), "run a full sync first")
}

func TestStatus(t *testing.T) {
	c, m, out := newTestCLI(t)
	started := time.Date(2025, 8, 1, 6, 0, 0, 0, time.UTC)

	m.campaigns.EXPECT().GetCampaignsCount(gomock.Any()).Return(int64(12), nil)
	m.history.EXPECT().GetSyncHistory(gomock.Any(), 5).Return([]domain.SyncHistory{
		{SyncType: domain.SyncTypeFull, Status: domain.SyncStatusCompleted, StartTime: started, RecordsProcessed: 300},
		{SyncType: domain.SyncTypeHistorical, Status: domain.SyncStatusFailed, StartTime: started.Add(-time.Hour)},
	}, nil)

	err := c.Run(context.Background(), []string{"status"})

	require.NoError(t, err)
	output := out.String()
	assert.Contains(t, output, "Total Campaigns: 12")
	assert.Contains(t, output, "[COMPLETED] full_sync - 2025-08-01 06:00:00.000000 (300 records)")
	assert.Contains(t, output, "[FAILED] historical_sync")
	assert.NotContains(t, output, "API Connectivity")
}

func TestStatusDetailed(t *testing.T) {
	c, m, out := newTestCLI(t)

	campaigns := make([]domain.Campaign, 0, 13)
	mappings := []domain.HierarchyMapping{{CampaignID: 1, Network: "Facebook"}, {CampaignID: 2, Network: domain.UnknownHierarchyValue}}
	for i := int64(1); i <= 13; i++ {
		campaigns = append(campaigns, domain.Campaign{ID: i, Name: fmt.Sprintf("Campaign %d", i)})
	}

	m.campaigns.EXPECT().GetCampaignsCount(gomock.Any()).Return(int64(13), nil)
	m.history.EXPECT().GetSyncHistory(gomock.Any(), 5).Return(nil, nil)
	m.vendor.EXPECT().FetchCampaigns(gomock.Any()).Return(nil, errors.New("connection refused"))
	m.hierarchy.EXPECT().GetHierarchyRules(gomock.Any()).Return(make([]domain.HierarchyRule, 4), nil)
	m.campaigns.EXPECT().GetCampaigns(gomock.Any(), 0, 0).Return(campaigns, nil)
	m.hierarchy.EXPECT().GetAllHierarchies(gomock.Any()).Return(mappings, nil)

	err := c.Status(context.Background(), true)

	require.NoError(t, err)
	output := out.String()
	assert.Contains(t, output, "No sync history found")
	assert.Contains(t, output, "Peach AI: Unavailable (connection refused)")
	assert.Contains(t, output, "Total Rules: 4")
	assert.Contains(t, output, "Unmapped Campaigns (12)")
	assert.Contains(t, output, "- Campaign 2 (ID: 2)")
	assert.NotContains(t, output, "(ID: 1)\n")
	assert.Contains(t, output, "... and 2 more")
}

func TestStatusRepositoryError(t *testing.T) {
	c, m, out := newTestCLI(t)
	m.campaigns.EXPECT().GetCampaignsCount(gomock.Any()).Return(int64(0), errors.New("connection refused"))

	err := c.Status(context.Background(), false)

	assert.Error(t, err)
	assert.Contains(t, out.String(), "failed to count campaigns")
}

func TestDebugCampaign(t *testing.T) {
	c, m, out := newTestCLI(t)
	description := "Spring push"
	campaign := &domain.Campaign{ID: 42, Name: "Facebook Mobile Spring", Description: &description, IsServing: true, TrafficWeight: 3}

	rows := make([]domain.HourlyMetricRow, 0, 7)
	for i := int64(0); i < 7; i++ {
		rows = append(rows, domain.HourlyMetricRow{CampaignID: 42, UnixHour: 480000 + i, Sessions: 10, Registrations: 2, Messages: i, Media: 1, PaymentMethods: 1, TermsAcceptances: 1})
	}

	m.campaigns.EXPECT().GetCampaignByID(gomock.Any(), int64(42)).Return(campaign, nil)
	m.hierarchy.EXPECT().GetCampaignHierarchy(gomock.Any(), int64(42)).Return(&domain.HierarchyMapping{
		CampaignID: 42, Network: "Facebook", Domain: "Social Media", Placement: "Mobile", MappingConfidence: 0.3,
	}, nil)
	m.hourly.EXPECT().GetHourlyData(gomock.Any(), int64(42), domain.HourlyMetricFilters{}).Return(rows, nil)
	m.assembler.EXPECT().Assemble(gomock.Any(), *campaign).Return(&domain.CampaignResponse{
		Status:  domain.CampaignStatusLive,
		Metrics: domain.CampaignMetrics{Sessions: 70, Registrations: 14, RegPercentage: 20, CCConvPercentage: 33.3333},
	}, nil)

	err := c.Run(context.Background(), []string{"debug-campaign", "42"})

	require.NoError(t, err)
	output := out.String()
	assert.Contains(t, output, "DEBUGGING CAMPAIGN ID: 42")
	assert.Contains(t, output, "Description: Spring push")
	assert.Contains(t, output, "Network: Facebook")
	assert.Contains(t, output, "Confidence: 0.30")
	assert.Contains(t, output, "Total Registrations: 14")
	assert.Contains(t, output, "Total Messages: 21")
	assert.Contains(t, output, "Based on 7 hourly records")
	assert.Contains(t, output, "... and 2 older records")
	assert.Contains(t, output, "Hour 5 (")
	assert.NotContains(t, output, "Hour 6 (")
	assert.Contains(t, output, "Reg%: 20.00%")
	assert.Contains(t, output, "CC Conv%: 33.33%")
}

func TestDebugCampaignWithoutData(t *testing.T) {
	c, m, out := newTestCLI(t)
	campaign := &domain.Campaign{ID: 5, Name: "Fresh"}

	m.campaigns.EXPECT().GetCampaignByID(gomock.Any(), int64(5)).Return(campaign, nil)
	m.hierarchy.EXPECT().GetCampaignHierarchy(gomock.Any(), int64(5)).Return(nil, nil)
	m.hourly.EXPECT().GetHourlyData(gomock.Any(), int64(5), gomock.Any()).Return(nil, nil)
	m.assembler.EXPECT().Assemble(gomock.Any(), *campaign).Return(nil, errors.New("boom"))

	err := c.DebugCampaign(context.Background(), 5)

	require.NoError(t, err)
	output := out.String()
	assert.Contains(t, output, "Description: None")
	assert.Contains(t, output, "No hierarchy mapping found")
	assert.Contains(t, output, "No hourly data found")
	assert.Contains(t, output, "failed to calculate performance: boom")
}

func TestDebugCampaignNotFound(t *testing.T) {
	c, m, out := newTestCLI(t)
	m.campaigns.EXPECT().GetCampaignByID(gomock.Any(), int64(99)).Return(nil, nil)

	err := c.DebugCampaign(context.Background(), 99)

	assert.ErrorIs(t, err, campaigning.ErrCampaignNotFound)
	assert.Contains(t, out.String(), "campaign 99 not found")
}
