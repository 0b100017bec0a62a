package domain

// HourlyMetricRow é uma hora de métricas de uma campanha, chave (campaign_id, unix_hour)
type HourlyMetricRow struct {
	CampaignID        int64  `json:"campaign_id"`
	UnixHour          int64  `json:"unix_hour"`
	Sessions          int64  `json:"sessions"`
	Registrations     int64  `json:"registrations"`
	CreditCards       int64  `json:"credit_cards"`
	EmailAccounts     int64  `json:"email_accounts"`
	GoogleAccounts    int64  `json:"google_accounts"`
	TotalAccounts     int64  `json:"total_accounts"`
	Messages          int64  `json:"messages"`
	CompanionChats    int64  `json:"companion_chats"`
	ChatRoomUserChats int64  `json:"chat_room_user_chats"`
	TotalUserChats    int64  `json:"total_user_chats"`
	Media             int64  `json:"media"`
	PaymentMethods    int64  `json:"payment_methods"`
	ConvertedUsers    int64  `json:"converted_users"`
	TermsAcceptances  int64  `json:"terms_acceptances"`
	SyncTimestamp     string `json:"sync_timestamp"`
}

// AggregatedMetrics é a soma das linhas horárias de uma campanha
type AggregatedMetrics struct {
	Sessions       int64 `json:"sessions"`
	Registrations  int64 `json:"registrations"`
	CreditCards    int64 `json:"credit_cards"`
	EmailAccounts  int64 `json:"email_accounts"`
	TotalAccounts  int64 `json:"total_accounts"`
	Messages       int64 `json:"messages"`
	ConvertedUsers int64 `json:"converted_users"`
}

// AggregateHourlyMetrics soma campo a campo; sem linhas o resultado é zero
func AggregateHourlyMetrics(rows []HourlyMetricRow) AggregatedMetrics {
	var agg AggregatedMetrics
	for _, row := range rows {
		agg.Sessions += row.Sessions
		agg.Registrations += row.Registrations
		agg.CreditCards += row.CreditCards
		agg.EmailAccounts += row.EmailAccounts
		agg.TotalAccounts += row.TotalAccounts
		agg.Messages += row.Messages
		agg.ConvertedUsers += row.ConvertedUsers
	}
	return agg
}

type ConversionRatios struct {
	RegPercentage    float64 `json:"reg_percentage"`
	CCConvPercentage float64 `json:"cc_conv_percentage"`
}

// CalculateConversionRatios não arredonda e nunca falha: denominador zero resulta em 0
func CalculateConversionRatios(sessions, registrations, creditCards int64) ConversionRatios {
	var ratios ConversionRatios
	if sessions > 0 {
		ratios.RegPercentage = float64(registrations) / float64(sessions) * 100
	}
	if registrations > 0 {
		ratios.CCConvPercentage = float64(creditCards) / float64(registrations) * 100
	}
	return ratios
}

// HourlyMetricResponse é uma linha horária com as taxas já calculadas
type HourlyMetricResponse struct {
	HourlyMetricRow
	RegPercentage    float64 `json:"reg_percentage"`
	CCConvPercentage float64 `json:"cc_conv_percentage"`
}

type HourlyMetricFilters struct {
	StartHour *int64
	EndHour   *int64
}
