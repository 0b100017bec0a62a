package campaigning

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/campaign-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
	"github.com/vfg2006/campaign-dashboard-api/pkg/metrics"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type CampaignService interface {
	ListCampaigns(ctx context.Context, page, limit int, filters domain.CampaignFilters) (*domain.CampaignPage, error)
	GetCampaign(ctx context.Context, id int64) (*domain.CampaignResponse, error)
	KPISummary(ctx context.Context) (*domain.KPISummary, error)
	AddNote(ctx context.Context, campaignID int64, request domain.NoteCreateRequest) (*domain.CampaignNote, error)
	ListHierarchies(ctx context.Context) (*domain.HierarchyListing, error)
	GetHourlyData(ctx context.Context, campaignID int64, start, end *time.Time) ([]domain.HourlyMetricResponse, error)
	CheckDatabase(ctx context.Context) error
}

type Service struct {
	campaignRepo  repository.CampaignRepository
	hourlyRepo    repository.HourlyMetricRepository
	hierarchyRepo repository.HierarchyRepository
	metrics       *metrics.Metrics
	now           func() time.Time
}

func NewService(
	campaignRepo repository.CampaignRepository,
	hourlyRepo repository.HourlyMetricRepository,
	hierarchyRepo repository.HierarchyRepository,
	m *metrics.Metrics,
) *Service {
	return &Service{
		campaignRepo:  campaignRepo,
		hourlyRepo:    hourlyRepo,
		hierarchyRepo: hierarchyRepo,
		metrics:       m,
		now:           time.Now,
	}
}

// ListCampaigns pagina no banco e só então aplica os filtros, portanto
// pagination.total é a contagem da página filtrada
func (s *Service) ListCampaigns(ctx context.Context, page, limit int, filters domain.CampaignFilters) (*domain.CampaignPage, error) {
	if page < 1 || limit < 1 || limit > MaxLimit {
		return nil, ErrInvalidPagination
	}
	// offset precisa caber em int; um overflow viraria offset negativo
	if page-1 > math.MaxInt/limit {
		return nil, ErrInvalidPagination
	}

	offset := (page - 1) * limit
	campaigns, err := s.campaignRepo.GetCampaigns(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.campaignRepo.GetCampaignsCount(ctx)
	if err != nil {
		return nil, err
	}

	data := filterCampaigns(s.assembleAll(ctx, campaigns), filters)

	return &domain.CampaignPage{
		Data: data,
		Pagination: domain.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      len(data),
			TotalPages: domain.TotalPages(total, limit),
		},
	}, nil
}

func filterCampaigns(campaigns []domain.CampaignResponse, filters domain.CampaignFilters) []domain.CampaignResponse {
	if filters.IsEmpty() {
		return campaigns
	}

	search := strings.ToLower(filters.Search)
	filtered := make([]domain.CampaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		if filters.Status != "" && c.Status != filters.Status {
			continue
		}
		if filters.Vendor != "" && c.Vendor != filters.Vendor {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(c.Name), search) {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

func (s *Service) GetCampaign(ctx context.Context, id int64) (*domain.CampaignResponse, error) {
	campaign, err := s.campaignRepo.GetCampaignByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	return s.Assemble(ctx, *campaign)
}

func (s *Service) KPISummary(ctx context.Context) (*domain.KPISummary, error) {
	campaigns, err := s.campaignRepo.GetCampaigns(ctx, 0, 0)
	if err != nil {
		return nil, err
	}

	summary := domain.SummarizeKPIs(s.assembleAll(ctx, campaigns))
	return &summary, nil
}

// AddNote apenas ecoa a nota; não há armazenamento de notas
func (s *Service) AddNote(_ context.Context, campaignID int64, request domain.NoteCreateRequest) (*domain.CampaignNote, error) {
	if strings.TrimSpace(request.Text) == "" {
		return nil, ErrNoteTextRequired
	}

	user := request.User
	if user == "" {
		user = domain.DefaultNoteUser
	}

	now := s.now()
	return &domain.CampaignNote{
		ID:         strconv.FormatInt(campaignID, 10) + "_" + strconv.FormatInt(now.Unix(), 10),
		Text:       request.Text,
		User:       user,
		Timestamp:  utils.DisplayTimestamp(now),
		CampaignID: campaignID,
	}, nil
}

func (s *Service) ListHierarchies(ctx context.Context) (*domain.HierarchyListing, error) {
	mappings, err := s.hierarchyRepo.GetAllHierarchies(ctx)
	if err != nil {
		return nil, err
	}
	if mappings == nil {
		mappings = []domain.HierarchyMapping{}
	}

	return &domain.HierarchyListing{
		Data:    mappings,
		Summary: domain.SummarizeHierarchies(mappings),
	}, nil
}

// GetHourlyData retorna as linhas horárias entre as datas informadas, com end inclusivo
func (s *Service) GetHourlyData(ctx context.Context, campaignID int64, start, end *time.Time) ([]domain.HourlyMetricResponse, error) {
	filters, err := HourlyFiltersFromDates(start, end)
	if err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepo.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	rows, err := s.hourlyRepo.GetHourlyData(ctx, campaignID, filters)
	if err != nil {
		return nil, err
	}

	response := make([]domain.HourlyMetricResponse, 0, len(rows))
	for _, row := range rows {
		ratios := domain.CalculateConversionRatios(row.Sessions, row.Registrations, row.CreditCards)
		response = append(response, domain.HourlyMetricResponse{
			HourlyMetricRow:  row,
			RegPercentage:    utils.RoundWithTwoDecimalPlace(ratios.RegPercentage),
			CCConvPercentage: utils.RoundWithTwoDecimalPlace(ratios.CCConvPercentage),
		})
	}

	return response, nil
}

// HourlyFiltersFromDates converte datas (UTC) no intervalo de horas unix
func HourlyFiltersFromDates(start, end *time.Time) (domain.HourlyMetricFilters, error) {
	var filters domain.HourlyMetricFilters
	if start != nil && end != nil && start.After(*end) {
		return filters, ErrInvalidDateRange
	}

	if start != nil {
		startHour := utils.UnixHour(*start)
		filters.StartHour = &startHour
	}
	if end != nil {
		endHour := utils.UnixHour(end.AddDate(0, 0, 1)) - 1
		filters.EndHour = &endHour
	}

	return filters, nil
}

// CheckDatabase faz a mesma leitura mínima usada pelo health check
func (s *Service) CheckDatabase(ctx context.Context) error {
	_, err := s.campaignRepo.GetCampaigns(ctx, 1, 0)
	return err
}

func (s *Service) assembleAll(ctx context.Context, campaigns []domain.Campaign) []domain.CampaignResponse {
	responses := make([]domain.CampaignResponse, 0, len(campaigns))
	for _, campaign := range campaigns {
		response, err := s.Assemble(ctx, campaign)
		if err != nil {
			log.ForContext(ctx).WithFields(log.Fields{
				"campaign_id": campaign.ID,
				"error":       err.Error(),
			}).Warn("campaigns: skipping campaign that failed to assemble")
			s.metrics.IncAssemblySkipped()
			continue
		}
		responses = append(responses, *response)
	}
	return responses
}

// Assemble monta a resposta de uma campanha. Erros e panics viram
// *AssemblyError para que o lote possa seguir sem esta campanha.
func (s *Service) Assemble(ctx context.Context, campaign domain.Campaign) (response *domain.CampaignResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			response = nil
			err = &AssemblyError{Err: fmt.Errorf("panic: %v", r), CampaignID: campaign.ID}
		}
	}()

	rows, err := s.hourlyRepo.GetHourlyData(ctx, campaign.ID, domain.HourlyMetricFilters{})
	if err != nil {
		return nil, &AssemblyError{Err: err, CampaignID: campaign.ID}
	}

	hierarchy, err := s.resolveHierarchy(ctx, campaign.ID)
	if err != nil {
		return nil, &AssemblyError{Err: err, CampaignID: campaign.ID}
	}

	agg := domain.AggregateHourlyMetrics(rows)
	ratios := domain.CalculateConversionRatios(agg.Sessions, agg.Registrations, agg.CreditCards)

	status := domain.CampaignStatusPaused
	if campaign.IsServing {
		status = domain.CampaignStatusLive
	}

	var description string
	if campaign.Description != nil {
		description = *campaign.Description
	}

	return &domain.CampaignResponse{
		ID:                campaign.ID,
		Name:              campaign.Name,
		Description:       description,
		Vendor:            domain.PeachVendorName,
		Status:            status,
		StartDate:         campaign.CreatedAt,
		EndDate:           "",
		Manager:           domain.DefaultManager,
		AdPlacementDomain: placementDomain(campaign.ServingURL),
		Device:            domain.DefaultDevice,
		Targeting:         domain.DefaultTargeting,
		RepContactInfo:    "",
		TrackingURL:       campaign.TrackingURL,
		ServingURL:        campaign.ServingURL,
		IsServing:         campaign.IsServing,
		Metrics: domain.CampaignMetrics{
			UniqueClicks:     agg.Sessions,
			RawReg:           agg.Registrations,
			ConfirmReg:       agg.Registrations,
			Sales:            agg.ConvertedUsers,
			Sessions:         agg.Sessions,
			Registrations:    agg.Registrations,
			CreditCards:      agg.CreditCards,
			RegPercentage:    ratios.RegPercentage,
			CCConvPercentage: ratios.CCConvPercentage,
		},
		Hierarchy:     hierarchy,
		Notes:         []domain.CampaignNote{},
		Documents:     []map[string]any{},
		VisualMedia:   []map[string]any{},
		History:       []map[string]any{},
		CreatedAt:     campaign.CreatedAt,
		ModifiedAt:    campaign.UpdatedAt,
		SyncTimestamp: campaign.SyncTimestamp,
	}, nil
}

// resolveHierarchy nunca retorna hierarquia vazia: sem mapeamento vale o padrão
func (s *Service) resolveHierarchy(ctx context.Context, campaignID int64) (domain.CampaignHierarchy, error) {
	mapping, err := s.hierarchyRepo.GetCampaignHierarchy(ctx, campaignID)
	if err != nil {
		return domain.CampaignHierarchy{}, err
	}
	if mapping == nil {
		return domain.DefaultCampaignHierarchy(), nil
	}
	return mapping.ToCampaignHierarchy(), nil
}

// placementDomain extrai o host da URL; qualquer falha resulta em ""
func placementDomain(servingURL string) string {
	if servingURL == "" {
		return ""
	}
	u, err := url.Parse(servingURL)
	if err != nil {
		return ""
	}
	return u.Host
}
