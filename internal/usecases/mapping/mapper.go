package mapping

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

const (
	noRulesConfidence  = 0.1
	minConfidence      = 0.1
	maxConfidence      = 1.0
	maxBaseConfidence  = 0.8
	perMatchConfidence = 0.2
	exactMatchBonus    = 0.2
	highPriorityBonus  = 0.1
	unknownsPenalty    = 0.2
	tooManyUnknowns    = 3
	highPriority       = 900
)

// DefaultHierarchy é o ponto de partida de todo mapeamento por regras
func DefaultHierarchy() domain.CampaignHierarchy {
	return domain.CampaignHierarchy{
		Network:   domain.UnknownHierarchyValue,
		Domain:    "Unknown Network",
		Placement: domain.UnknownHierarchyValue,
		Targeting: domain.UnknownHierarchyValue,
		Special:   "Standard",
	}
}

type Result struct {
	Hierarchy    domain.CampaignHierarchy
	MatchedRules []domain.HierarchyRule
}

// Mapper classifica nomes de campanha aplicando regras por prioridade
type Mapper struct {
	rules   []domain.HierarchyRule
	regexps map[int]*regexp.Regexp
}

func NewMapper(rules []domain.HierarchyRule) *Mapper {
	active := make([]domain.HierarchyRule, 0, len(rules))
	for _, rule := range rules {
		if rule.IsActive {
			active = append(active, rule)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Priority > active[j].Priority
	})

	regexps := make(map[int]*regexp.Regexp)
	for i, rule := range active {
		if !strings.EqualFold(string(rule.PatternType), string(domain.PatternRegex)) || rule.PatternValue == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + rule.PatternValue)
		if err != nil {
			log.L.WithFields(log.Fields{
				"rule":    rule.RuleName,
				"pattern": rule.PatternValue,
				"error":   err.Error(),
			}).Warn("mapping: invalid regex pattern, rule will never match")
			continue
		}
		regexps[i] = re
	}

	return &Mapper{rules: active, regexps: regexps}
}

func (m *Mapper) Rules() []domain.HierarchyRule {
	return m.rules
}

// Map aplica as regras em ordem de prioridade; um campo só é preenchido
// enquanto ainda estiver com o valor padrão
func (m *Mapper) Map(campaignName string) Result {
	hierarchy := DefaultHierarchy()
	if len(m.rules) == 0 {
		hierarchy.MappingConfidence = noRulesConfidence
		return Result{Hierarchy: hierarchy}
	}

	defaults := DefaultHierarchy()
	var matched []domain.HierarchyRule

	for i, rule := range m.rules {
		if !m.matches(i, campaignName, rule) {
			continue
		}
		matched = append(matched, rule)

		apply(&hierarchy.Network, defaults.Network, rule.Network)
		apply(&hierarchy.Domain, defaults.Domain, rule.Domain)
		apply(&hierarchy.Placement, defaults.Placement, rule.Placement)
		apply(&hierarchy.Targeting, defaults.Targeting, rule.Targeting)
		apply(&hierarchy.Special, defaults.Special, rule.Special)
	}

	hierarchy.MappingConfidence = Confidence(hierarchy, matched)
	return Result{Hierarchy: hierarchy, MatchedRules: matched}
}

func apply(field *string, defaultValue, value string) {
	if value == "" || value == domain.InheritRuleValue {
		return
	}
	if *field == defaultValue {
		*field = value
	}
}

func (m *Mapper) matches(index int, campaignName string, rule domain.HierarchyRule) bool {
	if rule.PatternType == "" || rule.PatternValue == "" {
		return false
	}

	name := strings.ToLower(campaignName)
	pattern := strings.ToLower(rule.PatternValue)

	switch domain.PatternType(strings.ToLower(string(rule.PatternType))) {
	case domain.PatternExact:
		return name == pattern
	case domain.PatternContains:
		return strings.Contains(name, pattern)
	case domain.PatternStartsWith:
		return strings.HasPrefix(name, pattern)
	case domain.PatternEndsWith:
		return strings.HasSuffix(name, pattern)
	case domain.PatternRegex:
		re, ok := m.regexps[index]
		return ok && re.MatchString(campaignName)
	default:
		return false
	}
}

// Confidence pontua o mapeamento entre 0.1 e 1.0
func Confidence(hierarchy domain.CampaignHierarchy, matched []domain.HierarchyRule) float64 {
	if len(matched) == 0 {
		return noRulesConfidence
	}

	confidence := math.Min(maxBaseConfidence, float64(len(matched))*perMatchConfidence)

	var hasExact, hasHighPriority bool
	for _, rule := range matched {
		if strings.EqualFold(string(rule.PatternType), string(domain.PatternExact)) {
			hasExact = true
		}
		if rule.Priority >= highPriority {
			hasHighPriority = true
		}
	}
	if hasExact {
		confidence += exactMatchBonus
	}
	if hasHighPriority {
		confidence += highPriorityBonus
	}

	unknowns := 0
	for _, value := range []string{hierarchy.Network, hierarchy.Domain, hierarchy.Placement, hierarchy.Targeting, hierarchy.Special} {
		if strings.Contains(value, domain.UnknownHierarchyValue) {
			unknowns++
		}
	}
	if unknowns >= tooManyUnknowns {
		confidence -= unknownsPenalty
	}

	return math.Max(minConfidence, math.Min(maxConfidence, confidence))
}
