package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

const campaignTable = "campaigns c"

var campaignColumns = []string{
	"c.id",
	"c.name",
	"c.description",
	"c.tracking_url",
	"c.serving_url",
	"c.is_serving",
	"c.traffic_weight",
	"c.slug",
	"c.path",
	"c.deleted_at",
	"c.created_at",
	"c.updated_at",
	"c.sync_timestamp",
}

type CampaignRepository interface {
	// GetCampaigns retorna uma página ordenada por nome; limit <= 0 retorna todas
	GetCampaigns(ctx context.Context, limit, offset int) ([]domain.Campaign, error)
	GetCampaignByID(ctx context.Context, id int64) (*domain.Campaign, error)
	GetCampaignsCount(ctx context.Context) (int64, error)
	// UpsertCampaign retorna true quando a campanha foi inserida
	UpsertCampaign(ctx context.Context, campaign *domain.Campaign) (bool, error)
}

type campaignRepository struct {
	conn postgres.Queryer
}

func NewCampaignRepository(conn postgres.Queryer) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) GetCampaigns(ctx context.Context, limit, offset int) ([]domain.Campaign, error) {
	queryBuilder := squirrel.
		Select(campaignColumns...).
		From(campaignTable).
		OrderBy("c.name ASC", "c.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}
	if offset > 0 {
		queryBuilder = queryBuilder.Offset(uint64(offset))
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, queryError(err)
	}
	defer rows.Close()

	campaigns := make([]domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, *campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func (r *campaignRepository) GetCampaignByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignTable).
		Where(squirrel.Eq{"c.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign, err := scanCampaign(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, queryError(err)
	}

	return campaign, nil
}

func (r *campaignRepository) GetCampaignsCount(ctx context.Context) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(campaignTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, queryError(err)
	}

	return count, nil
}

func (r *campaignRepository) UpsertCampaign(ctx context.Context, campaign *domain.Campaign) (bool, error) {
	if campaign == nil {
		return false, errors.New("campanha não pode ser nula")
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("campaigns").
		Columns(
			"id", "name", "description", "tracking_url", "is_serving", "serving_url",
			"traffic_weight", "deleted_at", "created_at", "updated_at", "slug", "path", "sync_timestamp",
		).
		Values(
			campaign.ID,
			campaign.Name,
			campaign.Description,
			campaign.TrackingURL,
			campaign.IsServing,
			campaign.ServingURL,
			campaign.TrafficWeight,
			campaign.DeletedAt,
			campaign.CreatedAt,
			campaign.UpdatedAt,
			campaign.Slug,
			campaign.Path,
			syncTimestamp(),
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				description = EXCLUDED.description,
				tracking_url = EXCLUDED.tracking_url,
				is_serving = EXCLUDED.is_serving,
				serving_url = EXCLUDED.serving_url,
				traffic_weight = EXCLUDED.traffic_weight,
				deleted_at = EXCLUDED.deleted_at,
				created_at = EXCLUDED.created_at,
				updated_at = EXCLUDED.updated_at,
				slug = EXCLUDED.slug,
				path = EXCLUDED.path,
				sync_timestamp = EXCLUDED.sync_timestamp
			RETURNING (xmax = 0) AS inserted
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var inserted bool
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&inserted); err != nil {
		return false, queryError(err)
	}

	return inserted, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCampaign(row scanner) (*domain.Campaign, error) {
	var (
		campaign    domain.Campaign
		description sql.NullString
		deletedAt   sql.NullString
	)

	err := row.Scan(
		&campaign.ID,
		&campaign.Name,
		&description,
		&campaign.TrackingURL,
		&campaign.ServingURL,
		&campaign.IsServing,
		&campaign.TrafficWeight,
		&campaign.Slug,
		&campaign.Path,
		&deletedAt,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
		&campaign.SyncTimestamp,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		campaign.Description = &description.String
	}
	if deletedAt.Valid {
		campaign.DeletedAt = &deletedAt.String
	}

	return &campaign, nil
}
