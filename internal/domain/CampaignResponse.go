package domain

const (
	CampaignStatusLive   = "Live"
	CampaignStatusPaused = "Paused"

	PeachVendorName = "Peach AI Network"

	DefaultManager   = "Unassigned"
	DefaultDevice    = "Both"
	DefaultTargeting = "Global"
)

// CampaignMetrics segue o formato esperado pelo dashboard.
// Custo e receita não existem na Peach AI e ficam zerados.
type CampaignMetrics struct {
	RawClicks        int64   `json:"rawClicks"`
	UniqueClicks     int64   `json:"uniqueClicks"`
	Cost             float64 `json:"cost"`
	RawReg           int64   `json:"rawReg"`
	ConfirmReg       int64   `json:"confirmReg"`
	Sales            int64   `json:"sales"`
	OrderValue       float64 `json:"orderValue"`
	Revenue          float64 `json:"revenue"`
	Ltrev            float64 `json:"ltrev"`
	Sessions         int64   `json:"sessions"`
	Registrations    int64   `json:"registrations"`
	CreditCards      int64   `json:"credit_cards"`
	Roas             float64 `json:"roas"`
	RegPercentage    float64 `json:"reg_percentage"`
	CCConvPercentage float64 `json:"cc_conv_percentage"`
}

type CampaignResponse struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	Vendor            string            `json:"vendor"`
	Status            string            `json:"status"`
	StartDate         string            `json:"startDate"`
	EndDate           string            `json:"endDate"`
	Manager           string            `json:"manager"`
	AdPlacementDomain string            `json:"adPlacementDomain"`
	Device            string            `json:"device"`
	Targeting         string            `json:"targeting"`
	RepContactInfo    string            `json:"repContactInfo"`
	TrackingURL       string            `json:"tracking_url"`
	ServingURL        string            `json:"serving_url"`
	IsServing         bool              `json:"is_serving"`
	Metrics           CampaignMetrics   `json:"metrics"`
	Hierarchy         CampaignHierarchy `json:"hierarchy"`
	Notes             []CampaignNote    `json:"notes"`
	Documents         []map[string]any  `json:"documents"`
	VisualMedia       []map[string]any  `json:"visualMedia"`
	History           []map[string]any  `json:"history"`
	CreatedAt         string            `json:"createdAt"`
	ModifiedAt        string            `json:"modifiedAt"`
	SyncTimestamp     string            `json:"sync_timestamp"`
}
