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

const (
	hierarchyTable      = "campaign_hierarchy ch"
	hierarchyRulesTable = "hierarchy_rules hr"
)

var hierarchyColumns = []string{
	"ch.campaign_id",
	"ch.campaign_name",
	"ch.network",
	"ch.domain",
	"ch.placement",
	"ch.targeting",
	"ch.special",
	"ch.mapping_confidence",
	"ch.created_at::TEXT",
	"ch.updated_at::TEXT",
}

type HierarchyRepository interface {
	GetCampaignHierarchy(ctx context.Context, campaignID int64) (*domain.HierarchyMapping, error)
	GetAllHierarchies(ctx context.Context) ([]domain.HierarchyMapping, error)
	UpsertCampaignHierarchy(ctx context.Context, mapping *domain.HierarchyMapping) error
	GetHierarchyRules(ctx context.Context) ([]domain.HierarchyRule, error)
}

type hierarchyRepository struct {
	conn postgres.Queryer
}

func NewHierarchyRepository(conn postgres.Queryer) HierarchyRepository {
	return &hierarchyRepository{
		conn: conn,
	}
}

func (r *hierarchyRepository) GetCampaignHierarchy(ctx context.Context, campaignID int64) (*domain.HierarchyMapping, error) {
	query, args, err := squirrel.
		Select(hierarchyColumns...).
		From(hierarchyTable).
		Where(squirrel.Eq{"ch.campaign_id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	mapping, err := scanHierarchy(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, queryError(err)
	}

	return mapping, nil
}

func (r *hierarchyRepository) GetAllHierarchies(ctx context.Context) ([]domain.HierarchyMapping, error) {
	query, args, err := squirrel.
		Select(hierarchyColumns...).
		From(hierarchyTable).
		OrderBy("ch.network", "ch.domain", "ch.placement").
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

	mappings := make([]domain.HierarchyMapping, 0)
	for rows.Next() {
		mapping, err := scanHierarchy(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear hierarquia: %w", err)
		}
		mappings = append(mappings, *mapping)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return mappings, nil
}

func (r *hierarchyRepository) UpsertCampaignHierarchy(ctx context.Context, mapping *domain.HierarchyMapping) error {
	if mapping == nil {
		return errors.New("hierarquia não pode ser nula")
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("campaign_hierarchy").
		Columns(
			"campaign_id", "campaign_name", "network", "domain",
			"placement", "targeting", "special", "mapping_confidence",
		).
		Values(
			mapping.CampaignID,
			mapping.CampaignName,
			mapping.Network,
			mapping.Domain,
			mapping.Placement,
			mapping.Targeting,
			mapping.Special,
			mapping.MappingConfidence,
		).
		Suffix(`
			ON CONFLICT (campaign_id) DO UPDATE SET
				campaign_name = EXCLUDED.campaign_name,
				network = EXCLUDED.network,
				domain = EXCLUDED.domain,
				placement = EXCLUDED.placement,
				targeting = EXCLUDED.targeting,
				special = EXCLUDED.special,
				mapping_confidence = EXCLUDED.mapping_confidence,
				updated_at = NOW()
		`).
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

// GetHierarchyRules retorna as regras ativas da maior para a menor prioridade
func (r *hierarchyRepository) GetHierarchyRules(ctx context.Context) ([]domain.HierarchyRule, error) {
	query, args, err := squirrel.
		Select(
			"hr.id",
			"hr.rule_name",
			"hr.pattern_type",
			"hr.pattern_value",
			"hr.network",
			"hr.domain",
			"hr.placement",
			"hr.targeting",
			"hr.special",
			"hr.priority",
			"hr.is_active",
		).
		From(hierarchyRulesTable).
		Where(squirrel.Eq{"hr.is_active": true}).
		OrderBy("hr.priority DESC", "hr.id ASC").
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

	rules := make([]domain.HierarchyRule, 0)
	for rows.Next() {
		var rule domain.HierarchyRule
		var patternType string
		var network, domainName, placement, targeting, sp sql.NullString

		err := rows.Scan(
			&rule.ID,
			&rule.RuleName,
			&patternType,
			&rule.PatternValue,
			&network,
			&domainName,
			&placement,
			&targeting,
			&sp,
			&rule.Priority,
			&rule.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear regra: %w", err)
		}

		rule.PatternType = domain.PatternType(patternType)
		rule.Network = network.String
		rule.Domain = domainName.String
		rule.Placement = placement.String
		rule.Targeting = targeting.String
		rule.Special = sp.String

		rules = append(rules, rule)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rules, nil
}

func scanHierarchy(row scanner) (*domain.HierarchyMapping, error) {
	var mapping domain.HierarchyMapping

	err := row.Scan(
		&mapping.CampaignID,
		&mapping.CampaignName,
		&mapping.Network,
		&mapping.Domain,
		&mapping.Placement,
		&mapping.Targeting,
		&mapping.Special,
		&mapping.MappingConfidence,
		&mapping.CreatedAt,
		&mapping.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &mapping, nil
}
