// Package exceptions runs an ordered registry of detectors over every scored
// project and rolls the flagged ones up into the portfolio exception report.
package exceptions

import (
	"time"

	"attention-engine/internal/model"
)

// Detector inspects one project's slice of the snapshot and reports at most
// one exception. Detectors are independent: several can fire on the same
// project, and none of them may fail on malformed input. A record with an
// unusable date simply contributes nothing to that detector's signal.
type Detector interface {
	Detect(ctx *Context) (model.Exception, bool)
}

// Context is everything one project brings to a detection pass.
type Context struct {
	AsOf         time.Time
	Project      model.Project
	Invoices     []model.Invoice
	Deliverables []model.Deliverable
	Actions      []model.ActionItem
}
