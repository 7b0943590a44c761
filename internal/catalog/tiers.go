package catalog

import (
	"strings"

	"github.com/tifyai/website/internal/models"
)

// Tier names in ascending order.
const (
	TierFree       = "Free"
	TierAdvanced   = "Advanced"
	TierEnterprise = "Enterprise"
)

// ProductTiers turns the comma-joined tier strings of p into an ordered
// list of tiers. Added holds the features a tier introduces over the one
// before it, compared by whole (trimmed) feature name. The enterprise tier
// has no list price.
func ProductTiers(p models.Product) []models.FeatureTier {
	free := 0
	advanced := p.AdvancedPrice

	specs := []struct {
		name  string
		price *int
		raw   string
	}{
		{TierFree, &free, p.FreeTier},
		{TierAdvanced, &advanced, p.AdvancedTier},
		{TierEnterprise, nil, p.EnterpriseTier},
	}

	tiers := make([]models.FeatureTier, 0, len(specs))
	seen := make(map[string]struct{})
	for _, s := range specs {
		features := splitFeatures(s.raw)
		added := []string{}
		for _, f := range features {
			if _, ok := seen[f]; !ok {
				added = append(added, f)
				seen[f] = struct{}{}
			}
		}
		tiers = append(tiers, models.FeatureTier{
			Name:     s.name,
			Price:    s.price,
			Features: features,
			Added:    added,
		})
	}
	return tiers
}

func splitFeatures(raw string) []string {
	features := []string{}
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	return features
}
