package aging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attention-engine/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, ok := model.ParseDate(s)
	require.True(t, ok, "bad test date %q", s)
	return d
}

func strptr(s string) *string { return &s }

func TestDayCount(t *testing.T) {
	ref := mustDate(t, "2026-03-15")

	assert.Equal(t, 5, DayCount(ref, mustDate(t, "2026-03-10")))
	assert.Equal(t, 0, DayCount(ref, mustDate(t, "2026-03-15")))
	assert.Equal(t, -4, DayCount(ref, mustDate(t, "2026-03-19")))
	assert.Equal(t, 64, DayCount(ref, mustDate(t, "2026-01-10")))

	// Intraday components never produce fractional days.
	late := time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)
	early := time.Date(2026, 3, 10, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 5, DayCount(late, early))
}

func TestClassifyDaysBoundaries(t *testing.T) {
	cases := []struct {
		days int
		want model.Bucket
	}{
		{-30, model.BucketCurrent},
		{0, model.BucketCurrent},
		{1, model.Bucket0to10},
		{10, model.Bucket0to10},
		{11, model.Bucket10to30},
		{30, model.Bucket10to30},
		{31, model.Bucket30to90},
		{90, model.Bucket30to90},
		{91, model.BucketOver90},
		{400, model.BucketOver90},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyDays(tc.days), "d=%d", tc.days)
	}
}

func TestClassifyDaysPartition(t *testing.T) {
	named := map[model.Bucket]bool{
		model.BucketCurrent: true,
		model.Bucket0to10:   true,
		model.Bucket10to30:  true,
		model.Bucket30to90:  true,
		model.BucketOver90:  true,
	}
	for d := -50; d <= 500; d++ {
		b := ClassifyDays(d)
		require.True(t, named[b], "d=%d fell outside the named buckets: %s", d, b)
		if d <= 0 {
			require.Equal(t, model.BucketCurrent, b, "d=%d", d)
		} else {
			require.NotEqual(t, model.BucketCurrent, b, "d=%d is overdue", d)
		}
	}
}

func TestClassifyMissingAndInvalidDates(t *testing.T) {
	ref := mustDate(t, "2026-03-15")

	assert.Equal(t, model.BucketUnknown, Classify(ref, nil))
	assert.Equal(t, model.BucketUnknown, Classify(ref, strptr("not-a-date")))
	assert.Equal(t, model.BucketUnknown, Classify(ref, strptr("2026-13-01")))
	assert.Equal(t, model.Bucket0to10, Classify(ref, strptr("2026-03-10")))
}

func TestSummarize(t *testing.T) {
	cases := map[model.Bucket]model.SummaryBucket{
		model.BucketCurrent: model.SummaryCurrent,
		model.Bucket0to10:   model.SummaryUnder30,
		model.Bucket10to30:  model.SummaryUnder30,
		model.Bucket30to90:  model.Summary30to90,
		model.BucketOver90:  model.SummaryOver90,
		model.BucketUnknown: model.SummaryUnknown,
	}
	for detail, want := range cases {
		assert.Equal(t, want, Summarize(detail), "bucket %s", detail)
	}
}

func TestTallyAudit(t *testing.T) {
	ref := mustDate(t, "2026-03-15")
	tally := NewTally()

	tally.Observe(ref, strptr("2026-03-20"), 1000) // not yet due
	tally.Observe(ref, strptr("2026-03-10"), 2000) // 5 days
	tally.Observe(ref, strptr("2026-02-25"), 3000) // 18 days
	tally.Observe(ref, strptr("2026-01-20"), 4000) // 54 days
	tally.Observe(ref, strptr("2025-10-01"), 5000) // 165 days
	tally.Observe(ref, nil, 6000)
	tally.Observe(ref, strptr("garbage"), 7000)

	r := tally.Report()

	assert.Equal(t, 7, r.Total)
	bucketed := r.Days0to10.Count + r.Days10to30.Count + r.Days30to90.Count + r.Over90.Count
	assert.Equal(t, r.Total, bucketed+r.Current.Count+r.Unknown.Count,
		"bucket totals must stay auditable")

	assert.Equal(t, model.AgingTotal{Count: 1, Outstanding: 1000}, r.Current)
	assert.Equal(t, model.AgingTotal{Count: 1, Outstanding: 2000}, r.Days0to10)
	assert.Equal(t, model.AgingTotal{Count: 1, Outstanding: 3000}, r.Days10to30)
	assert.Equal(t, model.AgingTotal{Count: 1, Outstanding: 4000}, r.Days30to90)
	assert.Equal(t, model.AgingTotal{Count: 1, Outstanding: 5000}, r.Over90)
	assert.Equal(t, model.AgingTotal{Count: 2, Outstanding: 13000}, r.Unknown)
}

func TestTallySummaryDerivedFromDetail(t *testing.T) {
	ref := mustDate(t, "2026-03-15")
	tally := NewTally()

	tally.Observe(ref, strptr("2026-03-08"), 100) // 7 days  -> 0_10
	tally.Observe(ref, strptr("2026-02-20"), 200) // 23 days -> 10_30
	tally.Observe(ref, strptr("2026-01-01"), 400) // 73 days -> 30_90
	tally.Observe(ref, strptr("2025-11-01"), 800) // 134 days -> over_90

	r := tally.Report()

	assert.Equal(t, model.AgingTotal{Count: 2, Outstanding: 300}, r.Summary.Under30)
	assert.Equal(t, r.Days30to90, r.Summary.Days30to90)
	assert.Equal(t, r.Over90, r.Summary.Over90)
}
