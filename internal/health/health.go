// Package health computes the weighted 0-100 project health score. The
// deduction amounts and thresholds are contract values: dashboard widgets
// and portfolio reviews assert on the exact arithmetic, so they are
// deliberately not configurable.
package health

import (
	"fmt"
	"time"

	"attention-engine/internal/aging"
	"attention-engine/internal/model"
)

const (
	overdueInvoicePenalty = 15
	overdueInvoiceCap     = 4

	outstandingPenalty   = 10
	outstandingThreshold = 100_000

	inactivityPenalty       = 10
	inactivityThresholdDays = 30

	collectionPenalty = 15
	collectionFloor   = 0.5

	criticalBelow = 50
	atRiskBelow   = 75
)

// Score evaluates one project against the reference date. Checks run in a
// fixed order and every deduction that fires appends its label to Issues in
// that same order; consumers rely on the ordering. The function is pure:
// pathological inputs (negative amounts, huge counts) degrade to clamped
// scores, never to errors.
func Score(p model.Project, asOf time.Time) model.HealthScore {
	issues := []string{}
	score := 100
	financial := 100
	communication := 100

	if n := p.OverdueInvoices; n > 0 {
		penalty := overdueInvoicePenalty * min(n, overdueInvoiceCap)
		score -= penalty
		financial -= penalty
		issues = append(issues, fmt.Sprintf("%d overdue invoices", n))
	}

	if out := p.Outstanding(); out > outstandingThreshold {
		score -= outstandingPenalty
		financial -= outstandingPenalty
		issues = append(issues, fmt.Sprintf("$%.0fK outstanding", out/1000))
	}

	if days, ok := daysSinceActivity(p, asOf); ok && days > inactivityThresholdDays {
		score -= inactivityPenalty
		communication -= inactivityPenalty
		issues = append(issues, fmt.Sprintf("%d days inactive", days))
	}

	if p.TotalInvoiced > 0 && p.TotalPaid/p.TotalInvoiced < collectionFloor {
		score -= collectionPenalty
		financial -= collectionPenalty
		issues = append(issues, "Low collection rate")
	}

	// Schedule is a reporting-only factor: overdue deliverables mirror the
	// invoice rule but do not feed the overall score, whose formula is fixed.
	schedule := 100
	if n := p.OverdueDeliverables; n > 0 {
		schedule -= overdueInvoicePenalty * min(n, overdueInvoiceCap)
	}

	hs := model.HealthScore{
		Score: clamp(score),
		Factors: model.HealthFactors{
			Financial:     clamp(financial),
			Communication: clamp(communication),
			Schedule:      clamp(schedule),
		},
		Issues: issues,
	}
	hs.Status = statusFor(hs.Score)
	return hs
}

// daysSinceActivity derives the inactivity day count from the last recorded
// contact. A project with no usable contact date carries no inactivity
// signal; absence of signal is not penalized.
func daysSinceActivity(p model.Project, asOf time.Time) (int, bool) {
	t, ok := model.ParseDatePtr(p.LastContact)
	if !ok {
		return 0, false
	}
	return aging.DayCount(asOf, t), true
}

func statusFor(score int) string {
	switch {
	case score < criticalBelow:
		return model.HealthCritical
	case score < atRiskBelow:
		return model.HealthAtRisk
	default:
		return model.HealthHealthy
	}
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
