package model

// Limits are the display caps shared by the tierer, the aggregator, and the
// feed composer. Every cap truncates with an explicit overflow count, never
// silently. Scoring weights and thresholds are not limits and are not
// configurable.
type Limits struct {
	CriticalTierItems int `json:"critical_tier_items"`
	TierItems         int `json:"tier_items"`
	ProjectIssues     int `json:"project_issues"`
	FeedItems         int `json:"feed_items"`
}

// DefaultLimits returns the stock dashboard caps.
func DefaultLimits() Limits {
	return Limits{
		CriticalTierItems: 5,
		TierItems:         3,
		ProjectIssues:     3,
		FeedItems:         10,
	}
}
