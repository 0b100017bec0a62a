package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

var campaignRowColumns = []string{
	"id", "name", "description", "tracking_url", "serving_url", "is_serving", "traffic_weight",
	"slug", "path", "deleted_at", "created_at", "updated_at", "sync_timestamp",
}

func newMockConn(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return postgres.NewFromDB(db), mock
}

func TestCampaignRepository_GetCampaigns(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewCampaignRepository(conn)

	rows := sqlmock.NewRows(campaignRowColumns).
		AddRow(int64(1), "Alpha", nil, "https://t.example.com", "https://peach.ai/a", true, 10, "alpha", "/a", nil, "2024-01-01T00:00:00Z", "2024-01-02T00:00:00Z", "2024-01-03T00:00:00Z").
		AddRow(int64(2), "Beta", "desc", "", "", false, 0, "beta", "/b", "2024-02-01T00:00:00Z", "2024-01-01T00:00:00Z", "2024-01-01T00:00:00Z", "2024-01-03T00:00:00Z")

	mock.ExpectQuery(regexp.QuoteMeta("FROM campaigns c ORDER BY c.name ASC, c.id ASC LIMIT 20 OFFSET 40")).
		WillReturnRows(rows)

	campaigns, err := repo.GetCampaigns(context.Background(), 20, 40)
	require.NoError(t, err)
	require.Len(t, campaigns, 2)

	assert.Equal(t, int64(1), campaigns[0].ID)
	assert.Nil(t, campaigns[0].Description)
	assert.True(t, campaigns[0].IsServing)
	require.NotNil(t, campaigns[1].Description)
	assert.Equal(t, "desc", *campaigns[1].Description)
	require.NotNil(t, campaigns[1].DeletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepository_GetCampaignsWithoutLimit(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewCampaignRepository(conn)

	mock.ExpectQuery(`ORDER BY c\.name ASC, c\.id ASC$`).
		WillReturnRows(sqlmock.NewRows(campaignRowColumns))

	campaigns, err := repo.GetCampaigns(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, campaigns)
	assert.NotNil(t, campaigns)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepository_GetCampaignByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewCampaignRepository(conn)

		mock.ExpectQuery(regexp.QuoteMeta("FROM campaigns c WHERE c.id = $1")).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(campaignRowColumns).
				AddRow(int64(5), "Five", nil, "", "https://x.example.com/p", true, 0, "", "", nil, "2024-01-01", "2024-01-01", "2024-01-01"))

		campaign, err := repo.GetCampaignByID(context.Background(), 5)
		require.NoError(t, err)
		require.NotNil(t, campaign)
		assert.Equal(t, "Five", campaign.Name)
	})

	t.Run("not found returns nil without error", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewCampaignRepository(conn)

		mock.ExpectQuery(regexp.QuoteMeta("FROM campaigns c WHERE c.id = $1")).
			WithArgs(int64(999)).
			WillReturnRows(sqlmock.NewRows(campaignRowColumns))

		campaign, err := repo.GetCampaignByID(context.Background(), 999)
		require.NoError(t, err)
		assert.Nil(t, campaign)
	})

	t.Run("database failure is wrapped", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewCampaignRepository(conn)

		mock.ExpectQuery(regexp.QuoteMeta("FROM campaigns c WHERE c.id = $1")).
			WillReturnError(errors.New("connection reset"))

		campaign, err := repo.GetCampaignByID(context.Background(), 1)
		assert.Nil(t, campaign)
		assert.ErrorContains(t, err, "connection reset")
	})
}

func TestCampaignRepository_GetCampaignsCount(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewCampaignRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM campaigns c")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(41)))

	count, err := repo.GetCampaignsCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(41), count)
}

func TestCampaignRepository_UpsertCampaign(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewCampaignRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO campaigns")).
		WillReturnRows(sqlmock.NewRows([]string{"inserted"}).AddRow(false))

	inserted, err := repo.UpsertCampaign(context.Background(), &domain.Campaign{ID: 7, Name: "Seven"})
	require.NoError(t, err)
	assert.False(t, inserted)

	_, err = repo.UpsertCampaign(context.Background(), nil)
	assert.Error(t, err)
}

func TestHourlyMetricRepository_GetHourlyData(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewHourlyMetricRepository(conn)

	columns := []string{
		"campaign_id", "unix_hour", "sessions", "registrations", "credit_cards", "email_accounts",
		"google_accounts", "total_accounts", "messages", "companion_chats", "chat_room_user_chats",
		"total_user_chats", "media", "payment_methods", "converted_users", "terms_acceptances", "sync_timestamp",
	}

	start, end := int64(474000), int64(474023)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE (hd.campaign_id = $1 AND hd.unix_hour >= $2 AND hd.unix_hour <= $3) ORDER BY hd.unix_hour ASC")).
		WithArgs(int64(5), start, end).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(5), start, int64(100), int64(10), int64(2), int64(6), int64(4), int64(10), int64(0), int64(0), int64(0), int64(0), int64(0), int64(2), int64(0), int64(0), "2024-01-01"))

	rows, err := repo.GetHourlyData(context.Background(), 5, domain.HourlyMetricFilters{StartHour: &start, EndHour: &end})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(100), rows[0].Sessions)
	assert.Equal(t, int64(2), rows[0].CreditCards)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHourlyMetricRepository_UpsertHourlyData(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewHourlyMetricRepository(conn)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (campaign_id, unix_hour) DO UPDATE SET")).
		WithArgs(int64(5), int64(474000), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (campaign_id, unix_hour) DO UPDATE SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpsertHourlyData(context.Background(), []domain.HourlyMetricRow{
		{CampaignID: 5, UnixHour: 474000},
		{CampaignID: 5, UnixHour: 474001},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHourlyMetricRepository_UpsertHourlyDataRollsBack(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewHourlyMetricRepository(conn)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO hourly_data")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO hourly_data")).
		WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})
	mock.ExpectRollback()

	err := repo.UpsertHourlyData(context.Background(), []domain.HourlyMetricRow{
		{CampaignID: 5, UnixHour: 474000},
		{CampaignID: 99, UnixHour: 474001},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "23503")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHourlyMetricRepository_UpsertHourlyDataEmpty(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewHourlyMetricRepository(conn)

	require.NoError(t, repo.UpsertHourlyData(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHierarchyRepository_GetCampaignHierarchy(t *testing.T) {
	columns := []string{
		"campaign_id", "campaign_name", "network", "domain", "placement",
		"targeting", "special", "mapping_confidence", "created_at", "updated_at",
	}

	t.Run("absent mapping", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewHierarchyRepository(conn)

		mock.ExpectQuery(regexp.QuoteMeta("FROM campaign_hierarchy ch WHERE ch.campaign_id = $1")).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(columns))

		mapping, err := repo.GetCampaignHierarchy(context.Background(), 3)
		require.NoError(t, err)
		assert.Nil(t, mapping)
	})

	t.Run("listing is ordered by network, domain and placement", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewHierarchyRepository(conn)

		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY ch.network, ch.domain, ch.placement")).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(1), "Google Search Brand", "Google", "Search Network", "Text", "Search Users", "Intent", 0.5, "2024-01-01", "2024-01-01"))

		mappings, err := repo.GetAllHierarchies(context.Background())
		require.NoError(t, err)
		require.Len(t, mappings, 1)
		assert.Equal(t, "Google", mappings[0].Network)
	})
}

func TestHierarchyRepository_GetHierarchyRules(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewHierarchyRepository(conn)

	columns := []string{
		"id", "rule_name", "pattern_type", "pattern_value", "network", "domain",
		"placement", "targeting", "special", "priority", "is_active",
	}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE hr.is_active = $1 ORDER BY hr.priority DESC, hr.id ASC")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), "TikTok Video", "contains", "TikTok", "TikTok", "Social Media", nil, "Gen Z", "Viral", 981, true))

	rules, err := repo.GetHierarchyRules(context.Background())
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, domain.PatternContains, rules[0].PatternType)
	assert.Equal(t, "", rules[0].Placement)
	assert.Equal(t, 981, rules[0].Priority)
}

func TestSyncHistoryRepository(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewSyncHistoryRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sync_history (run_id,sync_type,start_time,status) VALUES ($1,$2,$3,$4) RETURNING id")).
		WithArgs("abc", domain.SyncTypeFull, sqlmock.AnyArg(), domain.SyncStatusRunning).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE sync_history SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM sync_history sh ORDER BY sh.start_time DESC LIMIT 50")).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "run_id", "sync_type", "start_time", "end_time", "status",
			"records_processed", "records_inserted", "records_updated", "api_calls_made", "error_message",
		}).AddRow(int64(12), "abc", domain.SyncTypeFull, now, nil, domain.SyncStatusRunning, 0, 0, 0, 0, nil))

	ctx := context.Background()

	id, err := repo.StartSync(ctx, "abc", domain.SyncTypeFull)
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	err = repo.CompleteSync(ctx, id, SyncCompletion{Status: domain.SyncStatusCompleted, RecordsProcessed: 3})
	require.NoError(t, err)

	history, err := repo.GetSyncHistory(ctx, 50)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Nil(t, history[0].EndTime)
	assert.Nil(t, history[0].ErrorMessage)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryError(t *testing.T) {
	err := queryError(&pq.Error{Code: "23505", Message: "duplicate key"})
	assert.ErrorContains(t, err, "código: 23505")

	err = queryError(errors.New("timeout"))
	assert.ErrorContains(t, err, "erro ao executar a query: timeout")
}
