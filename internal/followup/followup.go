// Package followup tiers proposals by how long the client has gone without
// contact. Proposals touched within the last week (or with no recorded
// contact at all) stay out of every tier: surfacing them would train people
// to ignore the list.
package followup

import (
	"sort"

	"attention-engine/internal/model"
	"attention-engine/internal/overflow"
)

// Tier boundaries in days since last contact. Each tier is inclusive on its
// lower bound: 90 days is already critical, 89 is high.
const (
	criticalAfter = 90
	highAfter     = 30
	mediumAfter   = 14
	watchAfter    = 7
)

// Tiers lists every tier, most urgent first.
var Tiers = []model.Tier{model.TierCritical, model.TierHigh, model.TierMedium, model.TierWatch}

// TierFor classifies a days-since-last-contact value. ok is false when the
// proposal is excluded from all tiers (fresh contact or no contact on file).
func TierFor(days *int) (model.Tier, bool) {
	if days == nil {
		return "", false
	}
	switch d := *days; {
	case d >= criticalAfter:
		return model.TierCritical, true
	case d >= highAfter:
		return model.TierHigh, true
	case d >= mediumAfter:
		return model.TierMedium, true
	case d >= watchAfter:
		return model.TierWatch, true
	default:
		return "", false
	}
}

// Classified pairs one tiered proposal with its tier.
type Classified struct {
	Tier     model.Tier
	Proposal model.TieredProposal
}

// Classify tiers the proposals and returns them tier-major (critical first),
// longest-neglected first within a tier, ties broken by project code so the
// order is stable across passes. Excluded proposals do not appear.
func Classify(proposals []model.Proposal) []Classified {
	byTier := make(map[model.Tier][]model.TieredProposal)
	for _, p := range proposals {
		tier, ok := TierFor(p.DaysSinceLastContact)
		if !ok {
			continue
		}
		byTier[tier] = append(byTier[tier], model.TieredProposal{
			ProjectCode:    p.ProjectCode,
			ClientName:     p.ClientName,
			Days:           *p.DaysSinceLastContact,
			EstimatedValue: p.EstimatedValue,
		})
	}

	var out []Classified
	for _, tier := range Tiers {
		items := byTier[tier]
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Days != items[j].Days {
				return items[i].Days > items[j].Days
			}
			return items[i].ProjectCode < items[j].ProjectCode
		})
		for _, item := range items {
			out = append(out, Classified{Tier: tier, Proposal: item})
		}
	}
	return out
}

// Group folds classified proposals into per-tier display groups, applying
// the tier caps (critical tiers surface more). Empty tiers are omitted.
func Group(classified []Classified, limits model.Limits) []model.TierGroup {
	byTier := make(map[model.Tier][]model.TieredProposal)
	for _, c := range classified {
		byTier[c.Tier] = append(byTier[c.Tier], c.Proposal)
	}

	var groups []model.TierGroup
	for _, tier := range Tiers {
		items := byTier[tier]
		if len(items) == 0 {
			continue
		}
		limit := limits.TierItems
		if tier == model.TierCritical {
			limit = limits.CriticalTierItems
		}
		surfaced, more := overflow.Cap(items, limit)
		groups = append(groups, model.TierGroup{Tier: tier, Proposals: surfaced, More: more})
	}
	return groups
}
