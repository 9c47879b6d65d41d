package ecoscore

import "strings"

// EcoFriendlyCredit is the flat reduction applied to the fallback impact
// of eco-friendly products whose mapping key is not already organic/eco.
const EcoFriendlyCredit = 0.75

// Candidate is a resolved product-to-process mapping. DefaultImpact is
// the fallback value the impact evaluator uses when the LCA backend
// produces nothing, possibly reduced by the eco-friendly credit.
type Candidate struct {
	MappingKey    string
	Code          string
	Name          string
	Category      string
	Unit          string
	DefaultImpact float64
}

func candidateFrom(e *ProcessEntry) *Candidate {
	if e == nil {
		return nil
	}
	return &Candidate{
		MappingKey:    e.Key,
		Code:          e.Code,
		Name:          e.Name,
		Category:      e.Category,
		Unit:          e.Unit,
		DefaultImpact: e.DefaultImpact,
	}
}

// Resolve picks the best-matching reference process for a product.
// Match order: direct product-name rules, then the first category rule
// whose keywords hit the category, then that rule's sub-mappings against
// subcategory/name/tags, then name/tags only, then the rule default.
// Returns nil when no category rule matches or the mapping key is not in
// the rule's process group.
func Resolve(productName, category, subcategory string, tags []string, isEcoFriendly bool) *Candidate {
	name := strings.ToLower(productName)
	cat := strings.ToLower(category)
	subcat := strings.ToLower(subcategory)
	loweredTags := make([]string, 0, len(tags))
	for _, t := range tags {
		loweredTags = append(loweredTags, strings.ToLower(t))
	}

	for _, rule := range directNameRules {
		if containsAll(name, rule.Words) {
			return candidateFrom(findGroup(rule.Group).find(rule.MappingKey))
		}
	}

	var matched *CategoryRule
	for i := range CategoryRules {
		if containsAny(cat, CategoryRules[i].Keywords) {
			matched = &CategoryRules[i]
			break
		}
	}
	if matched == nil {
		return nil
	}

	mappingKey := matchSubMapping(matched.SubMappings, append([]string{subcat, name}, loweredTags...))
	if mappingKey == "" {
		mappingKey = matchSubMapping(matched.SubMappings, append([]string{name}, loweredTags...))
	}
	if mappingKey == "" {
		mappingKey = matched.DefaultKey
	}

	entry := findGroup(matched.Group).find(mappingKey)
	if entry == nil {
		return nil
	}
	candidate := candidateFrom(entry)

	if isEcoFriendly && !strings.Contains(mappingKey, "organic") && !strings.Contains(mappingKey, "eco") {
		candidate.DefaultImpact *= EcoFriendlyCredit
	}
	return candidate
}

func matchSubMapping(subs []SubMapping, fields []string) string {
	for _, sub := range subs {
		for _, f := range fields {
			if f != "" && strings.Contains(f, sub.Keyword) {
				return sub.MappingKey
			}
		}
	}
	return ""
}

func containsAll(s string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(s, w) {
			return false
		}
	}
	return true
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
