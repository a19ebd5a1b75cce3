// Package handler is the thin fasthttp shell over the scoring engine. It
// owns request decoding, routing and request logging; every scoring decision
// lives in the engine packages.
package handler

import (
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"attention-engine/internal/engine"
	"attention-engine/internal/model"
	"attention-engine/internal/policyregistry"
	"attention-engine/internal/refresh"
)

type Handler struct {
	engine *engine.Engine
	runner *refresh.Runner
	limits *policyregistry.Registry
	log    *zap.Logger
}

func New(eng *engine.Engine, runner *refresh.Runner, limits *policyregistry.Registry, log *zap.Logger) *Handler {
	return &Handler{engine: eng, runner: runner, limits: limits, log: log}
}

// Handle routes one request.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/evaluate":
		if !ctx.IsPost() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.handleEvaluate(ctx)
	case "/refresh":
		if !ctx.IsPost() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.handleRefresh(ctx)
	case "/report":
		if !ctx.IsGet() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.handleReport(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) handleEvaluate(ctx *fasthttp.RequestCtx) {
	req, ok := h.decode(ctx)
	if !ok {
		return
	}

	report := h.engine.Process(req, h.limits.LimitsFor(req.PortfolioID))
	h.log.Info("evaluated snapshot",
		zap.String("portfolio_id", req.PortfolioID),
		zap.String("outcome", report.Metadata.Outcome),
		zap.Int64("duration_ms", report.Metadata.DurationMs),
		zap.Int("projects", len(req.Snapshot.Projects)),
		zap.Int("exception_projects", len(report.Result.Exceptions.Projects)),
		zap.Int("feed_items", len(report.Result.Feed.Items)))

	writeJSON(ctx, fasthttp.StatusOK, report)
}

func (h *Handler) handleRefresh(ctx *fasthttp.RequestCtx) {
	req, ok := h.decode(ctx)
	if !ok {
		return
	}

	pub, ok := h.runner.Submit(req)
	if !ok {
		writeError(ctx, fasthttp.StatusConflict, "A newer snapshot published first, result discarded")
		return
	}

	h.log.Info("refreshed report",
		zap.String("portfolio_id", req.PortfolioID),
		zap.String("outcome", pub.Report.Metadata.Outcome),
		zap.Int64("duration_ms", pub.Report.Metadata.DurationMs),
		zap.Int("changes", len(pub.Changes)))
	writeJSON(ctx, fasthttp.StatusOK, pub)
}

func (h *Handler) handleReport(ctx *fasthttp.RequestCtx) {
	pub, ok := h.runner.Latest()
	if !ok {
		writeError(ctx, fasthttp.StatusNotFound, "No report published yet")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, pub)
}

func (h *Handler) decode(ctx *fasthttp.RequestCtx) (*model.EvaluationRequest, bool) {
	var req model.EvaluationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}
	if req.PortfolioID == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "portfolio_id is required")
		return nil, false
	}
	return &req, true
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
