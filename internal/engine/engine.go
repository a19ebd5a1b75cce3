// Package engine runs one full scoring pass over a portfolio snapshot:
// sanitize the records, build the invoice-aging tally, score every project,
// tier the proposals, aggregate exceptions and compose the attention feed.
// The pass is pure apart from the injected clock; identical snapshots with
// identical reference dates produce byte-identical report results.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"attention-engine/internal/aging"
	"attention-engine/internal/clock"
	"attention-engine/internal/exceptions"
	"attention-engine/internal/feed"
	"attention-engine/internal/followup"
	"attention-engine/internal/health"
	"attention-engine/internal/model"
)

type Engine struct {
	clock clock.Clock
}

func New(c clock.Clock) *Engine {
	return &Engine{clock: c}
}

// Process evaluates one snapshot and returns the full attention report.
// Malformed records degrade to data-quality messages, never to an abort:
// a single corrupt project must not prevent scoring the rest of the
// portfolio.
func (e *Engine) Process(req *model.EvaluationRequest, limits model.Limits) *model.AttentionReport {
	start := time.Now()

	s := &sanitizer{}
	asOf := e.resolveAsOf(req.AsOf, s)
	clean := s.sanitize(req.Snapshot, asOf)

	tally := aging.NewTally()
	for _, inv := range clean.Invoices {
		if inv.Outstanding() > 0 {
			tally.Observe(asOf, inv.DueDate, inv.Outstanding())
		}
	}

	healths := make([]model.ProjectHealth, 0, len(clean.Projects))
	for _, p := range clean.Projects {
		healths = append(healths, model.ProjectHealth{
			ProjectCode: p.ProjectCode,
			Health:      health.Score(p, asOf),
		})
	}

	// Classify once; the follow-up report and the feed share the result so
	// the two surfaces can never disagree on a proposal's tier.
	classified := followup.Classify(clean.Proposals)

	result := model.ReportResult{
		InvoiceAging: tally.Report(),
		HealthScores: healths,
		FollowUps:    followup.Group(classified, limits),
		Exceptions:   exceptions.Aggregate(clean, asOf, limits),
		Feed: feed.Compose(feed.Sources{
			AsOf:        asOf,
			Invoices:    clean.Invoices,
			Proposals:   classified,
			RFIs:        clean.RFIs,
			Suggestions: clean.Suggestions,
		}, limits),
		Messages: s.messages,
	}

	if result.FollowUps == nil {
		result.FollowUps = []model.TierGroup{}
	}
	if result.Feed.Items == nil {
		result.Feed.Items = []model.FeedItem{}
	}
	if result.Messages == nil {
		result.Messages = []model.Message{}
	}

	outcome := model.OutcomeSuccess
	if s.partial {
		outcome = model.OutcomePartial
	}

	return &model.AttentionReport{
		Metadata: model.ReportMetadata{
			ReportID:    uuid.New().String(),
			PortfolioID: req.PortfolioID,
			AsOf:        asOf.Format(model.DateLayout),
			GeneratedAt: e.clock.Now().UTC().Format(time.RFC3339),
			DurationMs:  time.Since(start).Milliseconds(),
			Outcome:     outcome,
		},
		Result: result,
	}
}

// resolveAsOf prefers the request's as_of override; an unparseable override
// degrades to the injected clock with a warning. Scoring never reads the
// wall clock anywhere else.
func (e *Engine) resolveAsOf(override *string, s *sanitizer) time.Time {
	if override != nil {
		if t, ok := model.ParseDate(*override); ok {
			return t
		}
		s.warn(codeInvalidDate, fmt.Sprintf("as_of %q is not a valid date", *override))
	}
	return model.DateOf(e.clock.Now())
}
