package peach

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/peach/peachclient"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/peach/peachdomain"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

// PeachIntegrator converte as respostas da Peach AI para os registros do warehouse
type PeachIntegrator struct {
	Client peachclient.Client
	now    func() time.Time
}

func New(client peachclient.Client) *PeachIntegrator {
	return &PeachIntegrator{
		Client: client,
		now:    time.Now,
	}
}

func (s *PeachIntegrator) FetchCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	resp, err := s.Client.GetCampaigns(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("peach: failed to get campaigns from API")
		return nil, err
	}

	campaigns := make([]domain.Campaign, 0, len(resp))
	for _, c := range resp {
		campaigns = append(campaigns, FactoryCampaign(c))
	}

	return campaigns, nil
}

// FetchHourlyMetrics busca as últimas hoursBack horas de uma campanha
func (s *PeachIntegrator) FetchHourlyMetrics(ctx context.Context, campaignID int64, hoursBack int) ([]domain.HourlyMetricRow, error) {
	if hoursBack <= 0 {
		return nil, errors.Errorf("hours back must be positive, got %d", hoursBack)
	}

	end := s.now().UTC()
	start := end.Add(-time.Duration(hoursBack) * time.Hour)

	return s.FetchHourlyMetricsRange(ctx, campaignID, start, end)
}

// FetchHourlyMetricsRange busca os buckets horários de uma campanha em [start, end]
func (s *PeachIntegrator) FetchHourlyMetricsRange(ctx context.Context, campaignID int64, start, end time.Time) ([]domain.HourlyMetricRow, error) {
	if !end.After(start) {
		return nil, errors.Errorf("invalid metrics window: %s is not after %s", end.Format(time.RFC3339), start.Format(time.RFC3339))
	}

	buckets, err := s.Client.GetHourlyMetrics(ctx, campaignID, start.UTC(), end.UTC())
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("peach: failed to get hourly metrics from API")
		return nil, err
	}

	rows := make([]domain.HourlyMetricRow, 0, len(buckets))
	for _, bucket := range buckets {
		rows = append(rows, FactoryHourlyMetricRow(campaignID, bucket))
	}

	return rows, nil
}

func FactoryCampaign(c peachdomain.Campaign) domain.Campaign {
	return domain.Campaign{
		ID:            deref(c.ID),
		Name:          deref(c.Name),
		Description:   c.Description,
		TrackingURL:   deref(c.TrackingURL),
		ServingURL:    deref(c.ServingURL),
		IsServing:     c.IsServing,
		TrafficWeight: c.TrafficWeight,
		Slug:          deref(c.Slug),
		Path:          deref(c.Path),
		DeletedAt:     c.DeletedAt,
		CreatedAt:     deref(c.CreatedAt),
		UpdatedAt:     deref(c.UpdatedAt),
	}
}

// FactoryHourlyMetricRow monta a linha horária a partir de um bucket de uma hora.
// sessions vem de registrations.anonymous e as contas são email+google+facebook.
func FactoryHourlyMetricRow(campaignID int64, bucket peachdomain.MetricsBucket) domain.HourlyMetricRow {
	row := domain.HourlyMetricRow{CampaignID: campaignID}
	if bucket.StartTime != nil {
		row.UnixHour = utils.UnixHour(bucket.StartTime.Time)
	}
	if bucket.Metrics == nil {
		return row
	}

	m := bucket.Metrics
	cards := m.PaymentMethods.PaymentMethods.Added

	row.Sessions = m.Registrations.Anonymous
	row.Registrations = m.Registrations.Email + m.Registrations.Google + m.Registrations.Facebook
	row.EmailAccounts = m.Registrations.Email
	row.GoogleAccounts = m.Registrations.Google
	row.TotalAccounts = m.Registrations.Total
	row.CreditCards = cards
	row.PaymentMethods = cards
	row.Messages = m.Messages.Total
	row.CompanionChats = m.Messages.CompanionChats
	row.ChatRoomUserChats = m.Messages.ChatRoomUserChats
	row.TotalUserChats = m.Messages.TotalUserChats
	row.Media = m.Media.Total
	row.TermsAcceptances = m.TermsAcceptances.Count

	return row
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
