// Package refresh serializes report publication under the dashboard's
// refresh model: passes may overlap (a manual refresh can race a timer-driven
// one), but only the most recently submitted snapshot may publish. Stale
// results are discarded whole, never merged, so consumers never see an
// exception set computed from a mix of snapshots.
package refresh

import (
	"sync"

	"go.uber.org/zap"

	"attention-engine/internal/jsonpatch"
	"attention-engine/internal/model"
)

// Evaluator runs one scoring pass. *engine.Engine satisfies it.
type Evaluator interface {
	Process(req *model.EvaluationRequest, limits model.Limits) *model.AttentionReport
}

// LimitSource resolves display limits per portfolio. *policyregistry.Registry
// satisfies it.
type LimitSource interface {
	LimitsFor(portfolioID string) model.Limits
}

// Published is one published report plus the RFC 6902 patch from the
// previously published result. Dashboards apply the patch to their tiles
// instead of re-rendering; report metadata is excluded from the diff because
// it changes on every pass.
type Published struct {
	Report  *model.AttentionReport `json:"report"`
	Changes jsonpatch.Patch        `json:"changes"`
}

type Runner struct {
	eval   Evaluator
	limits LimitSource
	log    *zap.Logger

	mu        sync.Mutex
	submitSeq uint64
	published uint64
	latest    *Published
}

func NewRunner(eval Evaluator, limits LimitSource, log *zap.Logger) *Runner {
	return &Runner{eval: eval, limits: limits, log: log}
}

// Submit runs one pass over req and publishes the result unless a newer
// submission published first. The sequence is assigned at submit time and the
// pass runs outside the lock, so concurrent submissions overlap freely; only
// publication is serialized. Returns ok=false when the result arrived stale
// and was discarded.
func (r *Runner) Submit(req *model.EvaluationRequest) (*Published, bool) {
	r.mu.Lock()
	r.submitSeq++
	seq := r.submitSeq
	r.mu.Unlock()

	report := r.eval.Process(req, r.limits.LimitsFor(req.PortfolioID))

	r.mu.Lock()
	defer r.mu.Unlock()

	if seq < r.published {
		r.log.Info("discarding stale refresh result",
			zap.String("portfolio_id", req.PortfolioID),
			zap.Uint64("sequence", seq),
			zap.Uint64("published_sequence", r.published))
		return nil, false
	}

	changes := jsonpatch.Patch{}
	if r.latest != nil {
		diff, err := jsonpatch.DiffDocs(r.latest.Report.Result, report.Result)
		if err != nil {
			// Report results always marshal; publish without a patch if not.
			r.log.Warn("report diff failed", zap.Error(err))
		} else if diff != nil {
			changes = diff
		}
	}

	pub := &Published{Report: report, Changes: changes}
	r.latest = pub
	r.published = seq

	r.log.Debug("published report",
		zap.String("portfolio_id", req.PortfolioID),
		zap.Uint64("sequence", seq),
		zap.Int("changes", len(changes)))
	return pub, true
}

// Latest returns the most recently published report, or ok=false before the
// first publication.
func (r *Runner) Latest() (*Published, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.latest == nil {
		return nil, false
	}
	return r.latest, true
}
