package clock

import "time"

// Clock supplies "now" for every scoring pass. Scoring functions never read
// the wall clock themselves; the reference date is threaded through
// explicitly so identical snapshots always produce identical reports.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in UTC.
type System struct{}

func (System) Now() time.Time { return time.Now().UTC() }

// Fixed always reports the same instant. Test clocks and replays use it.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }

// At is shorthand for a Fixed clock pinned to t.
func At(t time.Time) Fixed { return Fixed{T: t} }
