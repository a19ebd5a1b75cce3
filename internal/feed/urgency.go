package feed

import "attention-engine/internal/model"

// Every urgency rule lives in this file so a change to one source's mapping
// cannot drift out of sync with the others.
const (
	invoiceHighAfterDays = 60
	rfiHighAfterDays     = 14

	suggestionMediumConfidence = 0.85
	suggestionMinConfidence    = 0.7
)

func invoiceUrgency(daysOverdue int) model.Urgency {
	if daysOverdue > invoiceHighAfterDays {
		return model.UrgencyHigh
	}
	return model.UrgencyMedium
}

func tierUrgency(tier model.Tier) model.Urgency {
	switch tier {
	case model.TierCritical:
		return model.UrgencyHigh
	case model.TierHigh:
		return model.UrgencyMedium
	default:
		return model.UrgencyLow
	}
}

func rfiUrgency(daysPending int, responseOverdue bool) model.Urgency {
	if responseOverdue || daysPending > rfiHighAfterDays {
		return model.UrgencyHigh
	}
	return model.UrgencyMedium
}

func suggestionUrgency(confidence float64) model.Urgency {
	if confidence >= suggestionMediumConfidence {
		return model.UrgencyMedium
	}
	return model.UrgencyLow
}
