// Package feed merges overdue invoices, proposal follow-ups, pending RFIs
// and high-confidence suggestions into one urgency-sorted attention list.
package feed

import (
	"fmt"
	"sort"
	"time"

	"attention-engine/internal/aging"
	"attention-engine/internal/followup"
	"attention-engine/internal/model"
	"attention-engine/internal/overflow"
)

// Sources carries the already-sanitized inputs for one composition pass.
// Proposals arrive pre-classified so the feed and the follow-up report can
// never disagree on a proposal's tier.
type Sources struct {
	AsOf        time.Time
	Invoices    []model.Invoice
	Proposals   []followup.Classified
	RFIs        []model.RFI
	Suggestions []model.Suggestion
}

// Compose builds the cross-source feed. The sort is stable and compares
// urgency rank only, so within one urgency class items keep source order:
// invoices, then proposals, then RFIs, then suggestions, each in production
// order. Total counts every qualifying item, including those hidden by the
// display cap.
func Compose(src Sources, limits model.Limits) model.Feed {
	var items []model.FeedItem

	for _, inv := range src.Invoices {
		due, ok := model.ParseDatePtr(inv.DueDate)
		if !ok {
			continue
		}
		days := aging.DayCount(src.AsOf, due)
		if days <= 0 || inv.Outstanding() <= 0 {
			continue
		}
		items = append(items, model.FeedItem{
			Type:        model.FeedInvoice,
			Urgency:     invoiceUrgency(days),
			ProjectCode: inv.ProjectCode,
			RefID:       inv.InvoiceID,
			Title:       fmt.Sprintf("Invoice %s %d days overdue", inv.InvoiceID, days),
			Days:        ptr(days),
			Amount:      ptr(inv.Outstanding()),
		})
	}

	for _, c := range src.Proposals {
		items = append(items, model.FeedItem{
			Type:        model.FeedProposal,
			Urgency:     tierUrgency(c.Tier),
			ProjectCode: c.Proposal.ProjectCode,
			Title:       fmt.Sprintf("Follow up with %s", c.Proposal.ClientName),
			Days:        ptr(c.Proposal.Days),
			Amount:      ptr(c.Proposal.EstimatedValue),
		})
	}

	for _, rfi := range src.RFIs {
		if rfi.Status != model.RFIPending {
			continue
		}
		submitted, ok := model.ParseDate(rfi.Submitted)
		if !ok {
			continue
		}
		days := aging.DayCount(src.AsOf, submitted)
		responseOverdue := false
		if due, ok := model.ParseDatePtr(rfi.ResponseDue); ok {
			responseOverdue = aging.DayCount(src.AsOf, due) > 0
		}
		items = append(items, model.FeedItem{
			Type:        model.FeedRFI,
			Urgency:     rfiUrgency(days, responseOverdue),
			ProjectCode: rfi.ProjectCode,
			RefID:       rfi.RFIID,
			Title:       rfi.Subject,
			Days:        ptr(days),
		})
	}

	for _, sug := range src.Suggestions {
		if sug.Confidence < suggestionMinConfidence {
			continue
		}
		items = append(items, model.FeedItem{
			Type:        model.FeedSuggestion,
			Urgency:     suggestionUrgency(sug.Confidence),
			ProjectCode: sug.ProjectCode,
			RefID:       sug.SuggestionID,
			Title:       sug.Title,
			Details:     sug.Details,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Urgency.Rank() < items[j].Urgency.Rank()
	})

	surfaced, _ := overflow.Cap(items, limits.FeedItems)
	return model.Feed{Items: surfaced, Total: len(items)}
}

func ptr[T any](v T) *T {
	return &v
}
