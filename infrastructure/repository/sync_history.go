package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

const syncHistoryTable = "sync_history sh"

// SyncCompletion são os contadores gravados ao final de uma execução
type SyncCompletion struct {
	Status           string
	RecordsProcessed int
	RecordsInserted  int
	RecordsUpdated   int
	APICallsMade     int
	ErrorMessage     string
}

type SyncHistoryRepository interface {
	StartSync(ctx context.Context, runID, syncType string) (int64, error)
	CompleteSync(ctx context.Context, syncID int64, completion SyncCompletion) error
	GetSyncHistory(ctx context.Context, limit int) ([]domain.SyncHistory, error)
}

type syncHistoryRepository struct {
	conn postgres.Queryer
}

func NewSyncHistoryRepository(conn postgres.Queryer) SyncHistoryRepository {
	return &syncHistoryRepository{
		conn: conn,
	}
}

func (r *syncHistoryRepository) StartSync(ctx context.Context, runID, syncType string) (int64, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("sync_history").
		Columns("run_id", "sync_type", "start_time", "status").
		Values(runID, syncType, time.Now().UTC(), domain.SyncStatusRunning).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id int64
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, queryError(err)
	}

	return id, nil
}

func (r *syncHistoryRepository) CompleteSync(ctx context.Context, syncID int64, completion SyncCompletion) error {
	var errorMessage *string
	if completion.ErrorMessage != "" {
		errorMessage = &completion.ErrorMessage
	}

	query, args, err := squirrel.StatementBuilder.
		Update("sync_history").
		Set("end_time", time.Now().UTC()).
		Set("status", completion.Status).
		Set("records_processed", completion.RecordsProcessed).
		Set("records_inserted", completion.RecordsInserted).
		Set("records_updated", completion.RecordsUpdated).
		Set("api_calls_made", completion.APICallsMade).
		Set("error_message", errorMessage).
		Where(squirrel.Eq{"id": syncID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = r.conn.Exec(ctx, query, args...); err != nil {
		return queryError(err)
	}

	return nil
}

func (r *syncHistoryRepository) GetSyncHistory(ctx context.Context, limit int) ([]domain.SyncHistory, error) {
	query, args, err := squirrel.
		Select(
			"sh.id",
			"sh.run_id",
			"sh.sync_type",
			"sh.start_time",
			"sh.end_time",
			"sh.status",
			"sh.records_processed",
			"sh.records_inserted",
			"sh.records_updated",
			"sh.api_calls_made",
			"sh.error_message",
		).
		From(syncHistoryTable).
		OrderBy("sh.start_time DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, queryError(err)
	}
	defer rows.Close()

	history := make([]domain.SyncHistory, 0)
	for rows.Next() {
		var item domain.SyncHistory
		var endTime sql.NullTime
		var errorMessage sql.NullString

		err := rows.Scan(
			&item.ID,
			&item.RunID,
			&item.SyncType,
			&item.StartTime,
			&endTime,
			&item.Status,
			&item.RecordsProcessed,
			&item.RecordsInserted,
			&item.RecordsUpdated,
			&item.APICallsMade,
			&errorMessage,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico: %w", err)
		}

		if endTime.Valid {
			item.EndTime = &endTime.Time
		}
		if errorMessage.Valid {
			item.ErrorMessage = &errorMessage.String
		}

		history = append(history, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return history, nil
}
