package domain

// Campaign é o registro de campanha armazenado no warehouse.
// Os timestamps são mantidos como texto, exatamente como a Peach AI os entrega.
type Campaign struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	TrackingURL   string  `json:"tracking_url"`
	ServingURL    string  `json:"serving_url"`
	IsServing     bool    `json:"is_serving"`
	TrafficWeight int     `json:"traffic_weight"`
	Slug          string  `json:"slug"`
	Path          string  `json:"path"`
	DeletedAt     *string `json:"deleted_at"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
	SyncTimestamp string  `json:"sync_timestamp"`
}

// CampaignFilters são aplicados sobre a página já montada
type CampaignFilters struct {
	Status string
	Vendor string
	Search string
}

func (f CampaignFilters) IsEmpty() bool {
	return f.Status == "" && f.Vendor == "" && f.Search == ""
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type CampaignPage struct {
	Data       []CampaignResponse `json:"data"`
	Pagination Pagination         `json:"pagination"`
}

// TotalPages arredonda para cima total/limit
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
