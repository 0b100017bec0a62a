package domain

const (
	UnknownHierarchyValue = "Unknown"
	NoSpecialValue        = "None"
	InheritRuleValue      = "inherit"
)

// CampaignHierarchy é a classificação exibida junto da campanha
type CampaignHierarchy struct {
	Network           string  `json:"network"`
	Domain            string  `json:"domain"`
	Placement         string  `json:"placement"`
	Targeting         string  `json:"targeting"`
	Special           string  `json:"special"`
	MappingConfidence float64 `json:"mapping_confidence"`
}

// DefaultCampaignHierarchy é usada quando a campanha ainda não foi mapeada
func DefaultCampaignHierarchy() CampaignHierarchy {
	return CampaignHierarchy{
		Network:           UnknownHierarchyValue,
		Domain:            UnknownHierarchyValue,
		Placement:         UnknownHierarchyValue,
		Targeting:         UnknownHierarchyValue,
		Special:           NoSpecialValue,
		MappingConfidence: 1.0,
	}
}

// HierarchyMapping é o mapeamento persistido de uma campanha
type HierarchyMapping struct {
	CampaignID        int64   `json:"campaign_id"`
	CampaignName      string  `json:"campaign_name"`
	Network           string  `json:"network"`
	Domain            string  `json:"domain"`
	Placement         string  `json:"placement"`
	Targeting         string  `json:"targeting"`
	Special           string  `json:"special"`
	MappingConfidence float64 `json:"mapping_confidence"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

// ToCampaignHierarchy aplica o valor padrão nos campos vazios
func (m HierarchyMapping) ToCampaignHierarchy() CampaignHierarchy {
	h := DefaultCampaignHierarchy()
	if m.Network != "" {
		h.Network = m.Network
	}
	if m.Domain != "" {
		h.Domain = m.Domain
	}
	if m.Placement != "" {
		h.Placement = m.Placement
	}
	if m.Targeting != "" {
		h.Targeting = m.Targeting
	}
	if m.Special != "" {
		h.Special = m.Special
	}
	h.MappingConfidence = m.MappingConfidence
	return h
}

type PatternType string

const (
	PatternExact      PatternType = "exact"
	PatternContains   PatternType = "contains"
	PatternStartsWith PatternType = "starts_with"
	PatternEndsWith   PatternType = "ends_with"
	PatternRegex      PatternType = "regex"
)

// HierarchyRule classifica campanhas pelo nome
type HierarchyRule struct {
	ID           int64       `json:"id"`
	RuleName     string      `json:"rule_name"`
	PatternType  PatternType `json:"pattern_type"`
	PatternValue string      `json:"pattern_value"`
	Network      string      `json:"network"`
	Domain       string      `json:"domain"`
	Placement    string      `json:"placement"`
	Targeting    string      `json:"targeting"`
	Special      string      `json:"special"`
	Priority     int         `json:"priority"`
	IsActive     bool        `json:"is_active"`
}

type HierarchySummary struct {
	TotalMapped int `json:"total_mapped"`
	Networks    int `json:"networks"`
	Domains     int `json:"domains"`
}

type HierarchyListing struct {
	Data    []HierarchyMapping `json:"data"`
	Summary HierarchySummary   `json:"summary"`
}

// SummarizeHierarchies conta mapeamentos e redes/domínios distintos
func SummarizeHierarchies(mappings []HierarchyMapping) HierarchySummary {
	networks := make(map[string]struct{})
	domains := make(map[string]struct{})
	for _, m := range mappings {
		networks[m.Network] = struct{}{}
		domains[m.Domain] = struct{}{}
	}

	return HierarchySummary{
		TotalMapped: len(mappings),
		Networks:    len(networks),
		Domains:     len(domains),
	}
}
