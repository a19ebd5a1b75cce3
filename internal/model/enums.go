package model

// Severity grades a single detected issue within a project.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Rank orders severities for sorting, highest first.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	default:
		return 2
	}
}

// Urgency is the cross-type ranking dimension used to merge heterogeneous
// feed items into one prioritized list.
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// Rank orders urgencies for the feed merge, highest first.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyHigh:
		return 0
	case UrgencyMedium:
		return 1
	default:
		return 2
	}
}

// Tier classifies a proposal by contact recency.
type Tier string

const (
	TierCritical Tier = "critical"
	TierHigh     Tier = "high"
	TierMedium   Tier = "medium"
	TierWatch    Tier = "watch"
)

// Bucket is the detailed aging classification for a day count past due.
// Boundaries are half-open on the lower bound and closed on the upper:
// 30_90 covers (30, 90] days.
type Bucket string

const (
	BucketCurrent Bucket = "current"
	Bucket0to10   Bucket = "0_10"
	Bucket10to30  Bucket = "10_30"
	Bucket30to90  Bucket = "30_90"
	BucketOver90  Bucket = "over_90"
	BucketUnknown Bucket = "unknown"
)

// SummaryBucket is the condensed three-range aging view used by rollup
// widgets. It is always derived from a Bucket, never computed from dates.
type SummaryBucket string

const (
	SummaryCurrent SummaryBucket = "current"
	SummaryUnder30 SummaryBucket = "under_30"
	Summary30to90  SummaryBucket = "30_90"
	SummaryOver90  SummaryBucket = "over_90"
	SummaryUnknown SummaryBucket = "unknown"
)

// Exception types emitted by the portfolio detectors.
const (
	ExceptionOverdueInvoice     = "overdue_invoice"
	ExceptionOverdueDeliverable = "overdue_deliverable"
	ExceptionStale              = "stale"
	ExceptionUnpaid             = "unpaid"
	ExceptionOverdueAction      = "overdue_action"
)

// Feed item source types.
const (
	FeedInvoice    = "invoice"
	FeedProposal   = "proposal"
	FeedRFI        = "rfi"
	FeedSuggestion = "suggestion"
)

// Health statuses derived from the 0-100 score.
const (
	HealthHealthy  = "healthy"
	HealthAtRisk   = "at_risk"
	HealthCritical = "critical"
)
