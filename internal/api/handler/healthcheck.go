package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

const (
	apiVersion = "1.0.0"
	apiMessage = "VCAI Marketing Dashboard API"

	healthStatusHealthy  = "healthy"
	healthStatusDegraded = "degraded"
)

type rootResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

func RootHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, rootResponse{
			Message: apiMessage,
			Version: apiVersion,
			Endpoints: map[string]string{
				"campaigns": "/api/campaigns",
				"sync":      "/api/sync",
				"kpis":      "/api/kpis",
				"hierarchy": "/api/hierarchy",
				"health":    "/api/health",
			},
		})
	})
}

type healthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// HealthcheckHandler sempre responde 200; falha no banco apenas degrada o status
func HealthcheckHandler(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{
			Status:    healthStatusHealthy,
			Database:  healthStatusHealthy,
			Timestamp: utils.DisplayTimestamp(time.Now()),
		}

		if err := service.CheckDatabase(r.Context()); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("health: database check failed")
			resp.Status = healthStatusDegraded
			resp.Database = "error: " + err.Error()
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}
