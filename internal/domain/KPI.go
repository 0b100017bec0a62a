package domain

import "github.com/vfg2006/campaign-dashboard-api/pkg/utils"

type KPISummary struct {
	TotalCampaigns     int     `json:"totalCampaigns"`
	ActiveCampaigns    int     `json:"activeCampaigns"`
	PausedCampaigns    int     `json:"pausedCampaigns"`
	TotalSpend         float64 `json:"totalSpend"`
	TotalRevenue       float64 `json:"totalRevenue"`
	TotalROAS          float64 `json:"totalROAS"`
	TotalRegistrations int64   `json:"totalRegistrations"`
	AverageRegRate     float64 `json:"averageRegRate"`
}

// SummarizeKPIs consolida as campanhas montadas; coleção vazia resulta em zeros
func SummarizeKPIs(campaigns []CampaignResponse) KPISummary {
	var (
		summary       KPISummary
		totalSessions int64
	)

	summary.TotalCampaigns = len(campaigns)
	for _, c := range campaigns {
		switch c.Status {
		case CampaignStatusLive:
			summary.ActiveCampaigns++
		case CampaignStatusPaused:
			summary.PausedCampaigns++
		}

		summary.TotalSpend += c.Metrics.Cost
		summary.TotalRevenue += c.Metrics.Revenue
		summary.TotalRegistrations += c.Metrics.Registrations
		totalSessions += c.Metrics.Sessions
	}

	if summary.TotalSpend > 0 {
		summary.TotalROAS = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue / summary.TotalSpend)
	}
	summary.AverageRegRate = utils.RoundWithTwoDecimalPlace(utils.Percentage(summary.TotalRegistrations, totalSessions))

	return summary
}
