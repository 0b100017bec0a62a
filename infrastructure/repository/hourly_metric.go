package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

const hourlyDataTable = "hourly_data hd"

var hourlyDataColumns = []string{
	"hd.campaign_id",
	"hd.unix_hour",
	"hd.sessions",
	"hd.registrations",
	"hd.credit_cards",
	"hd.email_accounts",
	"hd.google_accounts",
	"hd.total_accounts",
	"hd.messages",
	"hd.companion_chats",
	"hd.chat_room_user_chats",
	"hd.total_user_chats",
	"hd.media",
	"hd.payment_methods",
	"hd.converted_users",
	"hd.terms_acceptances",
	"hd.sync_timestamp",
}

type HourlyMetricRepository interface {
	GetHourlyData(ctx context.Context, campaignID int64, filters domain.HourlyMetricFilters) ([]domain.HourlyMetricRow, error)
	UpsertHourlyData(ctx context.Context, rows []domain.HourlyMetricRow) error
}

type hourlyMetricRepository struct {
	conn postgres.Conn
}

func NewHourlyMetricRepository(conn postgres.Conn) HourlyMetricRepository {
	return &hourlyMetricRepository{
		conn: conn,
	}
}

func (r *hourlyMetricRepository) GetHourlyData(ctx context.Context, campaignID int64, filters domain.HourlyMetricFilters) ([]domain.HourlyMetricRow, error) {
	conditions := squirrel.And{squirrel.Eq{"hd.campaign_id": campaignID}}
	if filters.StartHour != nil {
		conditions = append(conditions, squirrel.GtOrEq{"hd.unix_hour": *filters.StartHour})
	}
	if filters.EndHour != nil {
		conditions = append(conditions, squirrel.LtOrEq{"hd.unix_hour": *filters.EndHour})
	}

	query, args, err := squirrel.
		Select(hourlyDataColumns...).
		From(hourlyDataTable).
		Where(conditions).
		OrderBy("hd.unix_hour ASC").
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

	result := make([]domain.HourlyMetricRow, 0)
	for rows.Next() {
		var row domain.HourlyMetricRow
		err := rows.Scan(
			&row.CampaignID,
			&row.UnixHour,
			&row.Sessions,
			&row.Registrations,
			&row.CreditCards,
			&row.EmailAccounts,
			&row.GoogleAccounts,
			&row.TotalAccounts,
			&row.Messages,
			&row.CompanionChats,
			&row.ChatRoomUserChats,
			&row.TotalUserChats,
			&row.Media,
			&row.PaymentMethods,
			&row.ConvertedUsers,
			&row.TermsAcceptances,
			&row.SyncTimestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha horária: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

// UpsertHourlyData grava as linhas de uma campanha em uma única transação;
// qualquer falha desfaz o lote inteiro
func (r *hourlyMetricRepository) UpsertHourlyData(ctx context.Context, rows []domain.HourlyMetricRow) error {
	if len(rows) == 0 {
		return nil
	}

	timestamp := syncTimestamp()
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i := range rows {
			query, args, err := upsertHourlyQuery(&rows[i], timestamp)
			if err != nil {
				return err
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return queryError(err)
			}
		}
		return nil
	})
}

func upsertHourlyQuery(row *domain.HourlyMetricRow, timestamp string) (string, []interface{}, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("hourly_data").
		Columns(
			"campaign_id", "unix_hour", "sessions", "registrations", "credit_cards",
			"email_accounts", "google_accounts", "total_accounts", "messages", "companion_chats",
			"chat_room_user_chats", "total_user_chats", "media", "payment_methods",
			"converted_users", "terms_acceptances", "sync_timestamp",
		).
		Values(
			row.CampaignID,
			row.UnixHour,
			row.Sessions,
			row.Registrations,
			row.CreditCards,
			row.EmailAccounts,
			row.GoogleAccounts,
			row.TotalAccounts,
			row.Messages,
			row.CompanionChats,
			row.ChatRoomUserChats,
			row.TotalUserChats,
			row.Media,
			row.PaymentMethods,
			row.ConvertedUsers,
			row.TermsAcceptances,
			timestamp,
		).
		Suffix(`
			ON CONFLICT (campaign_id, unix_hour) DO UPDATE SET
				sessions = EXCLUDED.sessions,
				registrations = EXCLUDED.registrations,
				credit_cards = EXCLUDED.credit_cards,
				email_accounts = EXCLUDED.email_accounts,
				google_accounts = EXCLUDED.google_accounts,
				total_accounts = EXCLUDED.total_accounts,
				messages = EXCLUDED.messages,
				companion_chats = EXCLUDED.companion_chats,
				chat_room_user_chats = EXCLUDED.chat_room_user_chats,
				total_user_chats = EXCLUDED.total_user_chats,
				media = EXCLUDED.media,
				payment_methods = EXCLUDED.payment_methods,
				converted_users = EXCLUDED.converted_users,
				terms_acceptances = EXCLUDED.terms_acceptances,
				sync_timestamp = EXCLUDED.sync_timestamp
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return query, args, nil
}
