// Package policyregistry resolves per-portfolio display-limit overrides from
// an optional remote registry. A lookup never fails a scoring pass: any
// error falls back to the compiled-in defaults, and resolved limits are
// cached for the lifetime of the process.
package policyregistry

import (
	"io"
	"net/http"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"attention-engine/internal/model"
)

type Registry struct {
	url    string
	client *http.Client
	cache  sync.Map
}

// New builds a registry bound to url. An empty url disables remote lookups;
// every portfolio then resolves to the defaults.
func New(url string) *Registry {
	r := &Registry{url: url}
	if url != "" {
		r.client = &http.Client{
			Timeout: 2 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return r
}

type limitsResponse struct {
	PortfolioID       string `json:"portfolio_id"`
	CriticalTierItems int    `json:"critical_tier_items"`
	TierItems         int    `json:"tier_items"`
	ProjectIssues     int    `json:"project_issues"`
	FeedItems         int    `json:"feed_items"`
}

// LimitsFor resolves the display limits for one portfolio. Override fields
// that are absent or non-positive keep their default values, so a registry
// can raise a single cap without restating the rest.
func (r *Registry) LimitsFor(portfolioID string) model.Limits {
	if r.url == "" || portfolioID == "" {
		return model.DefaultLimits()
	}
	if cached, ok := r.cache.Load(portfolioID); ok {
		return cached.(model.Limits)
	}
	limits := r.fetch(portfolioID)
	r.cache.Store(portfolioID, limits)
	return limits
}

func (r *Registry) fetch(portfolioID string) model.Limits {
	limits := model.DefaultLimits()

	resp, err := r.client.Get(r.url + "/portfolios/" + portfolioID + "/limits")
	if err != nil {
		return limits
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return limits
	}

	var lr limitsResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return limits
	}

	if lr.CriticalTierItems > 0 {
		limits.CriticalTierItems = lr.CriticalTierItems
	}
	if lr.TierItems > 0 {
		limits.TierItems = lr.TierItems
	}
	if lr.ProjectIssues > 0 {
		limits.ProjectIssues = lr.ProjectIssues
	}
	if lr.FeedItems > 0 {
		limits.FeedItems = lr.FeedItems
	}
	return limits
}
