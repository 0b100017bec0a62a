package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-dashboard-api/internal/scheduler"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-dashboard-api/pkg/metrics"
)

func Root() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RootHandler(),
		},
	}
}

func Healthcheck(service campaigning.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

func Campaigns(service campaigning.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/api/campaigns/:id",
			Method:  http.MethodGet,
			Handler: GetCampaign(service),
		},
		{
			Path:    "/api/campaigns/:id/notes",
			Method:  http.MethodPost,
			Handler: AddCampaignNote(service),
		},
		{
			Path:    "/api/campaigns/:id/hourly",
			Method:  http.MethodGet,
			Handler: GetCampaignHourlyData(service),
		},
	}
}

func KPIs(service campaigning.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/kpis",
			Method:  http.MethodGet,
			Handler: GetKPISummary(service),
		},
	}
}

func Hierarchy(service campaigning.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/hierarchy",
			Method:  http.MethodGet,
			Handler: ListHierarchies(service),
		},
	}
}

func Sync(dispatcher scheduler.SyncDispatcher) []router.Route {
	return []router.Route{
		{
			Path:    "/api/sync",
			Method:  http.MethodPost,
			Handler: TriggerSync(dispatcher),
		},
		{
			Path:    "/api/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(),
		},
		{
			Path:    "/api/sync/history",
			Method:  http.MethodGet,
			Handler: GetSyncHistory(dispatcher),
		},
	}
}

func Metrics(m *metrics.Metrics) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: m.Handler(),
		},
	}
}
