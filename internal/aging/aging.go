// Package aging buckets day counts into the dashboard's aging ranges. One
// canonical day-count function feeds both the detailed four-bucket view and
// the condensed summary view; the two can never drift apart because the
// summary is derived from the detail bucket, not recomputed from dates.
package aging

import (
	"time"

	"attention-engine/internal/model"
)

// DayCount returns whole days from target to ref, both normalized to their
// UTC calendar date. Positive means target lies in the past.
func DayCount(ref, target time.Time) int {
	return int(model.DateOf(ref).Sub(model.DateOf(target)) / (24 * time.Hour))
}

// ClassifyDays buckets a day count past due. Boundaries are half-open on the
// lower bound and closed on the upper: d=10 lands in 0_10, d=30 in 10_30,
// d=90 in 30_90. Day counts of zero or less are not yet overdue.
func ClassifyDays(d int) model.Bucket {
	switch {
	case d <= 0:
		return model.BucketCurrent
	case d <= 10:
		return model.Bucket0to10
	case d <= 30:
		return model.Bucket10to30
	case d <= 90:
		return model.Bucket30to90
	default:
		return model.BucketOver90
	}
}

// Classify buckets one (reference date, due date) pair. A nil or unparseable
// due date classifies as unknown: excluded from every bucket total but still
// counted, so sum(buckets) + current + unknown == total stays auditable.
func Classify(ref time.Time, due *string) model.Bucket {
	t, ok := model.ParseDatePtr(due)
	if !ok {
		return model.BucketUnknown
	}
	return ClassifyDays(DayCount(ref, t))
}

// Summarize collapses a detail bucket into the three-range summary view.
func Summarize(b model.Bucket) model.SummaryBucket {
	switch b {
	case model.BucketCurrent:
		return model.SummaryCurrent
	case model.Bucket0to10, model.Bucket10to30:
		return model.SummaryUnder30
	case model.Bucket30to90:
		return model.Summary30to90
	case model.BucketOver90:
		return model.SummaryOver90
	default:
		return model.SummaryUnknown
	}
}

// Tally accumulates classified receivables into the report's aging section.
type Tally struct {
	totals map[model.Bucket]model.AgingTotal
	total  int
}

func NewTally() *Tally {
	return &Tally{totals: make(map[model.Bucket]model.AgingTotal)}
}

// Observe classifies one outstanding balance and adds it to the totals.
func (t *Tally) Observe(ref time.Time, due *string, outstanding float64) model.Bucket {
	b := Classify(ref, due)
	agg := t.totals[b]
	agg.Count++
	agg.Outstanding += outstanding
	t.totals[b] = agg
	t.total++
	return b
}

// Report materializes both aging views.
func (t *Tally) Report() model.AgingReport {
	r := model.AgingReport{
		Current:    t.totals[model.BucketCurrent],
		Days0to10:  t.totals[model.Bucket0to10],
		Days10to30: t.totals[model.Bucket10to30],
		Days30to90: t.totals[model.Bucket30to90],
		Over90:     t.totals[model.BucketOver90],
		Unknown:    t.totals[model.BucketUnknown],
		Total:      t.total,
	}
	r.Summary = model.AgingSummary{
		Under30:    merge(r.Days0to10, r.Days10to30),
		Days30to90: r.Days30to90,
		Over90:     r.Over90,
	}
	return r
}

func merge(a, b model.AgingTotal) model.AgingTotal {
	return model.AgingTotal{
		Count:       a.Count + b.Count,
		Outstanding: a.Outstanding + b.Outstanding,
	}
}
