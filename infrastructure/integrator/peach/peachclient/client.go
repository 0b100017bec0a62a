package peachclient

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/peach/peachdomain"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
	"github.com/vfg2006/campaign-dashboard-api/pkg/metrics"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	campaignsEndpoint = "/admin/campaigns"
	metricsEndpoint   = "/admin/metrics"

	hourlyBucket         = "one_hour"
	hourlyCampaignMetric = "registrations,payment_methods"

	userAgent = "PeachAI-DataWarehouse/1.0"
)

var (
	ErrUnauthorized = errors.New("invalid or expired bearer token")
	ErrRateLimited  = errors.New("rate limit exceeded")
	ErrServer       = errors.New("vendor server error")
)

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks
type Client interface {
	GetCampaigns(ctx context.Context) ([]peachdomain.Campaign, error)
	GetHourlyMetrics(ctx context.Context, campaignID int64, start, end time.Time) ([]peachdomain.MetricsBucket, error)
}

type PeachClient struct {
	http    *resty.Client
	metrics *metrics.Metrics
}

type Option func(*PeachClient)

// WithRetryWait ajusta o intervalo mínimo e máximo do backoff exponencial
func WithRetryWait(minWait, maxWait time.Duration) Option {
	return func(c *PeachClient) {
		c.http.SetRetryWaitTime(minWait).SetRetryMaxWaitTime(maxWait)
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *PeachClient) {
		c.metrics = m
	}
}

func NewClient(cfg config.Peach, opts ...Option) *PeachClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetAuthToken(cfg.Token).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json, text/plain, */*").
		SetHeader("Accept-Language", "en-US,en;q=0.9").
		SetHeader("User-Agent", userAgent).
		SetJSONUnmarshaler(json.Unmarshal).
		SetRetryCount(cfg.RetryAttempts).
		SetRetryWaitTime(time.Second).
		SetRetryMaxWaitTime(8 * time.Second).
		AddRetryCondition(shouldRetry)

	client := &PeachClient{http: httpClient}
	for _, opt := range opts {
		opt(client)
	}

	return client
}

// shouldRetry repete 429, 5xx e falhas de transporte como timeout
func shouldRetry(resp *resty.Response, err error) bool {
	if err != nil {
		return !errors.Is(err, context.Canceled)
	}
	if resp == nil {
		return false
	}
	code := resp.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func (c *PeachClient) GetCampaigns(ctx context.Context) ([]peachdomain.Campaign, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(campaignsEndpoint)
	if err := c.checkResponse("campaigns", resp, err); err != nil {
		return nil, errors.Wrap(err, "error fetching campaigns")
	}

	var campaigns []peachdomain.Campaign
	if err := json.Unmarshal(resp.Body(), &campaigns); err != nil {
		logPayload("campaigns", resp.Body())
		return nil, errors.Wrap(err, "expected list of campaigns from vendor API")
	}

	for i, campaign := range campaigns {
		if err := campaign.Validate(); err != nil {
			logPayload("campaigns", resp.Body())
			return nil, errors.Wrapf(err, "campaign %d", i)
		}
	}

	log.L.WithField("count", len(campaigns)).Debug("peach: campaigns fetched")
	return campaigns, nil
}

func (c *PeachClient) GetHourlyMetrics(ctx context.Context, campaignID int64, start, end time.Time) ([]peachdomain.MetricsBucket, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"start_time":   strconv.FormatInt(start.UnixMilli(), 10),
			"end_time":     strconv.FormatInt(end.UnixMilli(), 10),
			"bucket":       hourlyBucket,
			"metrics":      hourlyCampaignMetric,
			"campaign_ids": strconv.FormatInt(campaignID, 10),
		}).
		Get(metricsEndpoint)
	if err := c.checkResponse("metrics", resp, err); err != nil {
		return nil, errors.Wrapf(err, "error fetching metrics for campaign %d", campaignID)
	}

	var parsed peachdomain.MetricsResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		logPayload("metrics", resp.Body())
		return nil, errors.Wrap(err, "invalid metrics response")
	}

	for i, bucket := range parsed.Buckets {
		if err := bucket.Validate(); err != nil {
			logPayload("metrics", resp.Body())
			return nil, errors.Wrapf(err, "bucket %d", i)
		}
	}

	return parsed.Buckets, nil
}

func (c *PeachClient) checkResponse(endpoint string, resp *resty.Response, err error) error {
	if err != nil {
		c.metrics.IncVendorRequest(endpoint, "transport_error")
		return err
	}

	code := resp.StatusCode()
	switch {
	case code == http.StatusOK:
		c.metrics.IncVendorRequest(endpoint, "ok")
		return nil
	case code == http.StatusUnauthorized:
		c.metrics.IncVendorRequest(endpoint, "unauthorized")
		return ErrUnauthorized
	case code == http.StatusTooManyRequests:
		c.metrics.IncVendorRequest(endpoint, "rate_limited")
		return ErrRateLimited
	case code >= http.StatusInternalServerError:
		c.metrics.IncVendorRequest(endpoint, "server_error")
		return errors.Wrapf(ErrServer, "status %d", code)
	default:
		c.metrics.IncVendorRequest(endpoint, "client_error")

		var body peachdomain.ErrorResponse
		_ = json.Unmarshal(resp.Body(), &body)
		log.L.WithFields(log.Fields{
			"endpoint":    endpoint,
			"status_code": code,
			"body":        string(resp.Body()),
		}).Warn("peach: vendor rejected request")

		return errors.Errorf("vendor returned status %d: %s", code, body.Text())
	}
}

// logPayload registra em debug o corpo recebido quando ele não pôde ser usado
func logPayload(endpoint string, body []byte) {
	log.L.WithField("endpoint", endpoint).Debugf("peach: unexpected payload\n%s", utils.PrettyJson(body))
}
