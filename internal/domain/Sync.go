package domain

import "time"

const (
	SyncTypeFull       = "full_sync"
	SyncTypeHistorical = "historical_sync"

	SyncStatusRunning   = "running"
	SyncStatusCompleted = "completed"
	SyncStatusFailed    = "failed"
	SyncStatusIdle      = "idle"
)

// SyncHistory é uma execução registrada na tabela sync_history
type SyncHistory struct {
	ID               int64      `json:"id"`
	RunID            string     `json:"run_id"`
	SyncType         string     `json:"sync_type"`
	StartTime        time.Time  `json:"start_time"`
	EndTime          *time.Time `json:"end_time"`
	Status           string     `json:"status"`
	RecordsProcessed int        `json:"records_processed"`
	RecordsInserted  int        `json:"records_inserted"`
	RecordsUpdated   int        `json:"records_updated"`
	APICallsMade     int        `json:"api_calls_made"`
	ErrorMessage     *string    `json:"error_message"`
}

type CampaignSyncStats struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

type MetricsSyncStats struct {
	Processed int `json:"processed"`
	Stored    int `json:"stored"`
	Errors    int `json:"errors"`
}

type HierarchySyncStats struct {
	Mapped int `json:"mapped"`
	Errors int `json:"errors"`
}

// SyncResult é o resumo de uma sincronização completa
type SyncResult struct {
	RunID           string             `json:"run_id"`
	SyncID          int64              `json:"sync_id"`
	Status          string             `json:"status"`
	DurationSeconds float64            `json:"duration_seconds"`
	Campaigns       CampaignSyncStats  `json:"campaigns"`
	Metrics         MetricsSyncStats   `json:"metrics"`
	Hierarchies     HierarchySyncStats `json:"hierarchies"`
	APICalls        int                `json:"api_calls"`
	Errors          []string           `json:"errors"`
	CompletedAt     time.Time          `json:"completed_at"`
}

// HistoricalSyncResult é o resumo de um backfill em lotes
type HistoricalSyncResult struct {
	RunID            string    `json:"run_id"`
	SyncID           int64     `json:"sync_id"`
	Status           string    `json:"status"`
	DurationSeconds  float64   `json:"duration_seconds"`
	TotalRecords     int       `json:"total_records"`
	BatchesCompleted int       `json:"batches_completed"`
	TotalBatches     int       `json:"total_batches"`
	APICalls         int       `json:"api_calls"`
	Errors           []string  `json:"errors"`
	CompletedAt      time.Time `json:"completed_at"`
}

// SyncStatus é o placeholder exposto em /api/sync/status
type SyncStatus struct {
	Status          string   `json:"status"`
	LastSync        string   `json:"last_sync"`
	CampaignsSynced int      `json:"campaigns_synced"`
	Errors          []string `json:"errors"`
}

func IdleSyncStatus() SyncStatus {
	return SyncStatus{
		Status:   SyncStatusIdle,
		Errors:   []string{},
		LastSync: "",
	}
}
