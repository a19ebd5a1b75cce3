package feed

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attention-engine/internal/followup"
	"attention-engine/internal/model"
)

var asOf = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

func strptr(s string) *string { return &s }

func invoice(id, due string, amount float64) model.Invoice {
	return model.Invoice{InvoiceID: id, ProjectCode: "BK-001", DueDate: strptr(due), Amount: amount}
}

func TestInvoiceUrgencyBoundary(t *testing.T) {
	assert.Equal(t, model.UrgencyMedium, invoiceUrgency(1))
	assert.Equal(t, model.UrgencyMedium, invoiceUrgency(60))
	assert.Equal(t, model.UrgencyHigh, invoiceUrgency(61))
}

func TestTierUrgencyMapping(t *testing.T) {
	assert.Equal(t, model.UrgencyHigh, tierUrgency(model.TierCritical))
	assert.Equal(t, model.UrgencyMedium, tierUrgency(model.TierHigh))
	assert.Equal(t, model.UrgencyLow, tierUrgency(model.TierMedium))
	assert.Equal(t, model.UrgencyLow, tierUrgency(model.TierWatch))
}

func TestRFIUrgencyBoundary(t *testing.T) {
	assert.Equal(t, model.UrgencyMedium, rfiUrgency(14, false))
	assert.Equal(t, model.UrgencyHigh, rfiUrgency(15, false))
	assert.Equal(t, model.UrgencyHigh, rfiUrgency(3, true), "a blown response deadline escalates regardless of age")
}

func TestSuggestionUrgencyBoundary(t *testing.T) {
	assert.Equal(t, model.UrgencyLow, suggestionUrgency(0.84))
	assert.Equal(t, model.UrgencyMedium, suggestionUrgency(0.85))
}

func TestComposeMergesAndRanks(t *testing.T) {
	src := Sources{
		AsOf: asOf,
		Invoices: []model.Invoice{
			invoice("inv-1", "2026-01-01", 20000),
			invoice("inv-2", "2026-03-10", 8000),
		},
		Proposals: []followup.Classified{
			{Tier: model.TierCritical, Proposal: model.TieredProposal{ProjectCode: "BK-002", ClientName: "Harbor Dev", Days: 95, EstimatedValue: 40000}},
			{Tier: model.TierMedium, Proposal: model.TieredProposal{ProjectCode: "BK-003", ClientName: "Civic Group", Days: 20, EstimatedValue: 15000}},
		},
		RFIs: []model.RFI{
			{RFIID: "rfi-1", ProjectCode: "BK-001", Subject: "Curtain wall detail", Submitted: "2026-03-05", Status: model.RFIPending},
		},
		Suggestions: []model.Suggestion{
			{SuggestionID: "sug-1", ProjectCode: "BK-002", Title: "Schedule a site walk", Confidence: 0.9},
		},
	}

	feed := Compose(src, model.DefaultLimits())

	require.Len(t, feed.Items, 6)
	assert.Equal(t, 6, feed.Total)

	// High urgency first: the 73-day invoice, then the critical-tier proposal.
	assert.Equal(t, "inv-1", feed.Items[0].RefID)
	assert.Equal(t, model.UrgencyHigh, feed.Items[0].Urgency)
	assert.Equal(t, model.FeedProposal, feed.Items[1].Type)
	assert.Equal(t, "BK-002", feed.Items[1].ProjectCode)

	// Medium urgency keeps source order: invoice, RFI, suggestion.
	assert.Equal(t, "inv-2", feed.Items[2].RefID)
	assert.Equal(t, "rfi-1", feed.Items[3].RefID)
	assert.Equal(t, "sug-1", feed.Items[4].RefID)

	// Low urgency last.
	assert.Equal(t, model.FeedProposal, feed.Items[5].Type)
	assert.Equal(t, "BK-003", feed.Items[5].ProjectCode)

	require.NotNil(t, feed.Items[0].Days)
	assert.Equal(t, 73, *feed.Items[0].Days)
	require.NotNil(t, feed.Items[0].Amount)
	assert.Equal(t, 20000.0, *feed.Items[0].Amount)
	assert.Equal(t, "Invoice inv-1 73 days overdue", feed.Items[0].Title)
	assert.Equal(t, "Follow up with Harbor Dev", feed.Items[1].Title)
}

func TestComposeStableWithinUrgencyClass(t *testing.T) {
	src := Sources{
		AsOf: asOf,
		Invoices: []model.Invoice{
			invoice("inv-9", "2026-03-01", 100),
			invoice("inv-2", "2026-03-02", 100),
			invoice("inv-5", "2026-03-03", 100),
		},
	}

	feed := Compose(src, model.DefaultLimits())

	require.Len(t, feed.Items, 3)
	assert.Equal(t, "inv-9", feed.Items[0].RefID)
	assert.Equal(t, "inv-2", feed.Items[1].RefID)
	assert.Equal(t, "inv-5", feed.Items[2].RefID)
}

func TestComposeSkipsNonQualifyingRecords(t *testing.T) {
	src := Sources{
		AsOf: asOf,
		Invoices: []model.Invoice{
			{InvoiceID: "inv-1", ProjectCode: "BK-001", Amount: 5000},
			{InvoiceID: "inv-2", ProjectCode: "BK-001", DueDate: strptr("2026-01-01"), Amount: 5000, Paid: 5000},
			{InvoiceID: "inv-3", ProjectCode: "BK-001", DueDate: strptr("2026-03-15"), Amount: 5000},
			{InvoiceID: "inv-4", ProjectCode: "BK-001", DueDate: strptr("01/01/2026"), Amount: 5000},
		},
		RFIs: []model.RFI{
			{RFIID: "rfi-1", ProjectCode: "BK-001", Subject: "Answered", Submitted: "2026-02-01", Status: model.RFIAnswered},
			{RFIID: "rfi-2", ProjectCode: "BK-001", Subject: "Garbled", Submitted: "soon", Status: model.RFIPending},
		},
		Suggestions: []model.Suggestion{
			{SuggestionID: "sug-1", Title: "Low confidence", Confidence: 0.69},
		},
	}

	feed := Compose(src, model.DefaultLimits())

	assert.Empty(t, feed.Items)
	assert.Equal(t, 0, feed.Total)
}

func TestComposeRFIResponseDueEscalates(t *testing.T) {
	src := Sources{
		AsOf: asOf,
		RFIs: []model.RFI{
			{RFIID: "rfi-1", ProjectCode: "BK-001", Subject: "Fresh but overdue", Submitted: "2026-03-12", ResponseDue: strptr("2026-03-14"), Status: model.RFIPending},
			{RFIID: "rfi-2", ProjectCode: "BK-001", Subject: "Fresh with time left", Submitted: "2026-03-12", ResponseDue: strptr("2026-03-20"), Status: model.RFIPending},
		},
	}

	feed := Compose(src, model.DefaultLimits())

	require.Len(t, feed.Items, 2)
	assert.Equal(t, "rfi-1", feed.Items[0].RefID)
	assert.Equal(t, model.UrgencyHigh, feed.Items[0].Urgency)
	assert.Equal(t, "rfi-2", feed.Items[1].RefID)
	assert.Equal(t, model.UrgencyMedium, feed.Items[1].Urgency)
}

func TestComposeCapsItemsButCountsAll(t *testing.T) {
	var invoices []model.Invoice
	for i := 0; i < 14; i++ {
		invoices = append(invoices, invoice(fmt.Sprintf("inv-%02d", i), "2026-03-01", 100))
	}
	src := Sources{AsOf: asOf, Invoices: invoices}

	feed := Compose(src, model.DefaultLimits())

	assert.Len(t, feed.Items, 10)
	assert.Equal(t, 14, feed.Total)
	assert.Equal(t, "inv-00", feed.Items[0].RefID)
	assert.Equal(t, "inv-09", feed.Items[9].RefID)
}

func TestComposeSuggestionDetailsPassThrough(t *testing.T) {
	payload := []byte(`{"channel":"email","draft_id":"d-77"}`)
	src := Sources{
		AsOf: asOf,
		Suggestions: []model.Suggestion{
			{SuggestionID: "sug-1", ProjectCode: "BK-004", Title: "Send fee reminder", Confidence: 0.92, Details: payload},
		},
	}

	feed := Compose(src, model.DefaultLimits())

	require.Len(t, feed.Items, 1)
	assert.JSONEq(t, string(payload), string(feed.Items[0].Details))
}
