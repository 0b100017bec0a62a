package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

type campaignResponse struct {
	Data *domain.CampaignResponse `json:"data"`
}

type noteResponse struct {
	Message string               `json:"message"`
	Note    *domain.CampaignNote `json:"note"`
}

type hourlyResponse struct {
	CampaignID int64                         `json:"campaign_id"`
	Data       []domain.HourlyMetricResponse `json:"data"`
}

func ListCampaigns(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, err := intQuery(r, "page", campaigning.DefaultPage)
		if err != nil || page < 1 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "page must be an integer >= 1", nil)
			return
		}

		limit, err := intQuery(r, "limit", campaigning.DefaultLimit)
		if err != nil || limit < 1 || limit > campaigning.MaxLimit {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "limit must be an integer between 1 and 100", nil)
			return
		}

		query := r.URL.Query()
		filters := domain.CampaignFilters{
			Status: query.Get("status"),
			Vendor: query.Get("vendor"),
			Search: query.Get("search"),
		}

		result, err := service.ListCampaigns(r.Context(), page, limit, filters)
		if err != nil {
			if errors.Is(err, campaigning.ErrInvalidPagination) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "page is out of range", nil)
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("campaigns: failed to list campaigns")
			apiErrors.WriteError(w, apiErrors.ErrCampaignFetch, "Failed to fetch campaigns: "+err.Error(), nil)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

func GetCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := campaignIDParam(w, r)
		if !ok {
			return
		}

		campaign, err := service.GetCampaign(r.Context(), id)
		if err != nil {
			if errors.Is(err, campaigning.ErrCampaignNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campaign not found", nil)
				return
			}

			log.ForContext(r.Context()).WithFields(log.Fields{
				"campaign_id": id,
				"error":       err.Error(),
			}).Error("campaigns: failed to get campaign")
			apiErrors.WriteError(w, apiErrors.ErrCampaignFetch, "Failed to fetch campaign: "+err.Error(), nil)
			return
		}

		writeJSON(w, r, http.StatusOK, campaignResponse{Data: campaign})
	})
}

// AddCampaignNote ecoa a nota recebida; notas ainda não são persistidas
func AddCampaignNote(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := campaignIDParam(w, r)
		if !ok {
			return
		}

		var request domain.NoteCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body: "+err.Error(), nil)
			return
		}

		note, err := service.AddNote(r.Context(), id, request)
		if err != nil {
			if errors.Is(err, campaigning.ErrNoteTextRequired) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Note text is required", nil)
				return
			}

			log.ForContext(r.Context()).WithFields(log.Fields{
				"campaign_id": id,
				"error":       err.Error(),
			}).Error("campaigns: failed to add note")
			apiErrors.WriteError(w, apiErrors.ErrNoteCreation, "Failed to add note: "+err.Error(), nil)
			return
		}

		writeJSON(w, r, http.StatusOK, noteResponse{
			Message: "Note added successfully",
			Note:    note,
		})
	})
}

func GetCampaignHourlyData(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := campaignIDParam(w, r)
		if !ok {
			return
		}

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date must use the YYYY-MM-DD format", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date must use the YYYY-MM-DD format", nil)
			return
		}

		rows, err := service.GetHourlyData(r.Context(), id, startDate, endDate)
		if err != nil {
			switch {
			case errors.Is(err, campaigning.ErrCampaignNotFound):
				apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campaign not found", nil)
			case errors.Is(err, campaigning.ErrInvalidDateRange):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			default:
				log.ForContext(r.Context()).WithFields(log.Fields{
					"campaign_id": id,
					"error":       err.Error(),
				}).Error("campaigns: failed to get hourly data")
				apiErrors.WriteError(w, apiErrors.ErrCampaignFetch, "Failed to fetch hourly data: "+err.Error(), nil)
			}
			return
		}

		writeJSON(w, r, http.StatusOK, hourlyResponse{CampaignID: id, Data: rows})
	})
}

func GetKPISummary(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.KPISummary(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("kpis: failed to calculate KPIs")
			apiErrors.WriteError(w, apiErrors.ErrKPICalculation, "Failed to calculate KPIs: "+err.Error(), nil)
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}

func ListHierarchies(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		listing, err := service.ListHierarchies(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("hierarchy: failed to list hierarchies")
			apiErrors.WriteError(w, apiErrors.ErrHierarchyFetch, "Failed to fetch hierarchy data: "+err.Error(), nil)
			return
		}

		writeJSON(w, r, http.StatusOK, listing)
	})
}
