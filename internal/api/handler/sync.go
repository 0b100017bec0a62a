package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/scheduler"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

type syncTriggerResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type syncHistoryResponse struct {
	Data []domain.SyncHistory `json:"data"`
}

// TriggerSync responde assim que a sincronização é submetida, sem aguardar o resultado
func TriggerSync(dispatcher scheduler.SyncDispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := dispatcher.Dispatch(r.Context()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("sync: failed to dispatch synchronization")
			apiErrors.WriteError(w, apiErrors.ErrSyncDispatch, "Failed to start sync: "+err.Error(), nil)
			return
		}

		writeJSON(w, r, http.StatusOK, syncTriggerResponse{
			Message: "Data synchronization started",
			Status:  domain.SyncStatusRunning,
		})
	})
}

func GetSyncStatus() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, domain.IdleSyncStatus())
	})
}

func GetSyncHistory(dispatcher scheduler.SyncDispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := intQuery(r, "limit", scheduler.DefaultHistoryLimit)
		if err != nil || limit < 1 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "limit must be a positive integer", nil)
			return
		}

		history, err := dispatcher.History(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("sync: failed to get sync history")
			apiErrors.WriteError(w, apiErrors.ErrSyncHistory, "Failed to fetch sync history: "+err.Error(), nil)
			return
		}
		if history == nil {
			history = []domain.SyncHistory{}
		}

		writeJSON(w, r, http.StatusOK, syncHistoryResponse{Data: history})
	})
}
