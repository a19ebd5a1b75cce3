package model

import (
	json "github.com/goccy/go-json"
)

// AttentionReport is the full output of one scoring pass.
type AttentionReport struct {
	Metadata ReportMetadata `json:"report_metadata"`
	Result   ReportResult   `json:"report_result"`
}

type ReportMetadata struct {
	ReportID    string `json:"report_id"`
	PortfolioID string `json:"portfolio_id"`
	AsOf        string `json:"as_of"`
	GeneratedAt string `json:"generated_at"`
	DurationMs  int64  `json:"duration_ms"`
	Outcome     string `json:"outcome"`
}

const (
	// OutcomeSuccess means every record contributed to the pass.
	OutcomeSuccess = "SUCCESS"
	// OutcomePartial means at least one record was excluded by a critical
	// data-quality message; the rest of the portfolio is still scored.
	OutcomePartial = "PARTIAL"
)

type ReportResult struct {
	InvoiceAging AgingReport     `json:"invoice_aging"`
	HealthScores []ProjectHealth `json:"health_scores"`
	FollowUps    []TierGroup     `json:"follow_ups"`
	Exceptions   ExceptionReport `json:"exceptions"`
	Feed         Feed            `json:"feed"`
	Messages     []Message       `json:"messages"`
}

// AgingTotal accumulates the invoices that landed in one bucket.
type AgingTotal struct {
	Count       int     `json:"count"`
	Outstanding float64 `json:"outstanding"`
}

// AgingReport carries both aging views over the same canonical day counts.
// sum of bucket counts + current + unknown == total, so widget totals stay
// auditable even when due dates are missing.
type AgingReport struct {
	Current    AgingTotal   `json:"current"`
	Days0to10  AgingTotal   `json:"0_10"`
	Days10to30 AgingTotal   `json:"10_30"`
	Days30to90 AgingTotal   `json:"30_90"`
	Over90     AgingTotal   `json:"over_90"`
	Unknown    AgingTotal   `json:"unknown"`
	Summary    AgingSummary `json:"summary"`
	Total      int          `json:"total"`
}

// AgingSummary is the condensed three-range view, derived from the detail
// buckets rather than recomputed from dates.
type AgingSummary struct {
	Under30    AgingTotal `json:"under_30"`
	Days30to90 AgingTotal `json:"30_90"`
	Over90     AgingTotal `json:"over_90"`
}

type HealthFactors struct {
	Financial     int `json:"financial"`
	Communication int `json:"communication"`
	Schedule      int `json:"schedule"`
}

// HealthScore is the weighted 0-100 composite for one project. Issues lists
// the human-readable label of every deduction that fired, in evaluation
// order; consumers rely on that ordering.
type HealthScore struct {
	Score   int           `json:"score"`
	Status  string        `json:"status"`
	Factors HealthFactors `json:"factors"`
	Issues  []string      `json:"issues"`
}

type ProjectHealth struct {
	ProjectCode string      `json:"project_code"`
	Health      HealthScore `json:"health"`
}

// TieredProposal is one proposal surfaced inside a follow-up tier.
type TieredProposal struct {
	ProjectCode    string  `json:"project_code"`
	ClientName     string  `json:"client_name"`
	Days           int     `json:"days_since_last_contact"`
	EstimatedValue float64 `json:"estimated_value"`
}

// TierGroup is one follow-up tier with its surfaced proposals. More counts
// the proposals hidden by the tier cap ("+N more").
type TierGroup struct {
	Tier      Tier             `json:"tier"`
	Proposals []TieredProposal `json:"proposals"`
	More      int              `json:"more,omitempty"`
}

// Exception is a single detected issue attached to a project for one
// aggregation pass. Value and Days are populated only when the detector
// has a meaningful figure to attach.
type Exception struct {
	Type     string   `json:"type"`
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
	Value    *float64 `json:"value,omitempty"`
	Days     *int     `json:"days,omitempty"`
}

// ProjectExceptions groups the issues detected on one project. Projects with
// zero issues never appear here; they count toward HealthyCount instead.
type ProjectExceptions struct {
	ProjectCode string      `json:"project_code"`
	Name        string      `json:"name"`
	Issues      []Exception `json:"issues"`
	MoreIssues  int         `json:"more_issues,omitempty"`
}

type ExceptionReport struct {
	Projects     []ProjectExceptions `json:"projects"`
	HealthyCount int                 `json:"healthy_count"`
	TotalCount   int                 `json:"total_count"`
}

// FeedItem is one entry in the cross-type attention feed. Details is only
// populated for suggestion items: the opaque payload passes through to the
// dashboard untouched.
type FeedItem struct {
	Type        string          `json:"type"`
	Urgency     Urgency         `json:"urgency"`
	ProjectCode string          `json:"project_code,omitempty"`
	RefID       string          `json:"ref_id,omitempty"`
	Title       string          `json:"title"`
	Days        *int            `json:"days,omitempty"`
	Amount      *float64        `json:"amount,omitempty"`
	Details     json.RawMessage `json:"details,omitempty"`
}

// Feed is the urgency-sorted attention list. Total counts every qualifying
// item before the display cap, backing the "view all N" affordance.
type Feed struct {
	Items []FeedItem `json:"items"`
	Total int        `json:"total"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
