package exceptions

import (
	"fmt"

	"attention-engine/internal/aging"
	"attention-engine/internal/model"
)

// staleAfterDays is the exception threshold for contact recency. It is
// tighter than the health scorer's 30-day inactivity penalty: the exception
// list warns earlier than the score punishes.
const staleAfterDays = 21

type OverdueInvoiceDetector struct{}

func (d *OverdueInvoiceDetector) Detect(ctx *Context) (model.Exception, bool) {
	count := 0
	maxDays := 0
	var amount float64
	for _, inv := range ctx.Invoices {
		due, ok := model.ParseDatePtr(inv.DueDate)
		if !ok {
			continue
		}
		days := aging.DayCount(ctx.AsOf, due)
		if days <= 0 || inv.Outstanding() <= 0 {
			continue
		}
		count++
		amount += inv.Outstanding()
		if days > maxDays {
			maxDays = days
		}
	}
	if count == 0 {
		return model.Exception{}, false
	}
	return model.Exception{
		Type:     model.ExceptionOverdueInvoice,
		Label:    fmt.Sprintf("%d overdue invoices", count),
		Severity: model.SeverityHigh,
		Value:    ptr(amount),
		Days:     ptr(maxDays),
	}, true
}

type OverdueDeliverableDetector struct{}

func (d *OverdueDeliverableDetector) Detect(ctx *Context) (model.Exception, bool) {
	count := 0
	maxDays := 0
	for _, del := range ctx.Deliverables {
		if !del.Open() {
			continue
		}
		due, ok := model.ParseDatePtr(del.DueDate)
		if !ok {
			continue
		}
		days := aging.DayCount(ctx.AsOf, due)
		if days <= 0 {
			continue
		}
		count++
		if days > maxDays {
			maxDays = days
		}
	}
	if count == 0 {
		return model.Exception{}, false
	}
	return model.Exception{
		Type:     model.ExceptionOverdueDeliverable,
		Label:    fmt.Sprintf("%d overdue deliverables", count),
		Severity: model.SeverityHigh,
		Days:     ptr(maxDays),
	}, true
}

type StaleContactDetector struct{}

func (d *StaleContactDetector) Detect(ctx *Context) (model.Exception, bool) {
	last, ok := model.ParseDatePtr(ctx.Project.LastContact)
	if !ok {
		return model.Exception{}, false
	}
	days := aging.DayCount(ctx.AsOf, last)
	if days <= staleAfterDays {
		return model.Exception{}, false
	}
	return model.Exception{
		Type:     model.ExceptionStale,
		Label:    fmt.Sprintf("No contact in %d days", days),
		Severity: model.SeverityMedium,
		Days:     ptr(days),
	}, true
}

type UnpaidBalanceDetector struct{}

func (d *UnpaidBalanceDetector) Detect(ctx *Context) (model.Exception, bool) {
	out := ctx.Project.Outstanding()
	if out <= 0 {
		return model.Exception{}, false
	}
	return model.Exception{
		Type:     model.ExceptionUnpaid,
		Label:    fmt.Sprintf("$%.0fK unpaid", out/1000),
		Severity: model.SeverityMedium,
		Value:    ptr(out),
	}, true
}

type OverdueActionDetector struct{}

func (d *OverdueActionDetector) Detect(ctx *Context) (model.Exception, bool) {
	count := 0
	maxDays := 0
	for _, a := range ctx.Actions {
		if a.Status != model.ActionOpen {
			continue
		}
		target, ok := model.ParseDatePtr(a.TargetDate)
		if !ok {
			continue
		}
		days := aging.DayCount(ctx.AsOf, target)
		if days <= 0 {
			continue
		}
		count++
		if days > maxDays {
			maxDays = days
		}
	}
	if count == 0 {
		return model.Exception{}, false
	}
	return model.Exception{
		Type:     model.ExceptionOverdueAction,
		Label:    fmt.Sprintf("%d overdue action items", count),
		Severity: model.SeverityMedium,
		Days:     ptr(maxDays),
	}, true
}

func ptr[T any](v T) *T { return &v }
