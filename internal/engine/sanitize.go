package engine

import (
	"fmt"
	"time"

	"attention-engine/internal/aging"
	"attention-engine/internal/model"
)

// Data-quality message codes. None of them abort a pass; only
// MISSING_PROJECT_CODE excludes a record and downgrades the outcome to
// PARTIAL.
const (
	codeMissingProjectCode      = "MISSING_PROJECT_CODE"
	codeDuplicateProjectCode    = "DUPLICATE_PROJECT_CODE"
	codeNegativeAmount          = "NEGATIVE_AMOUNT"
	codeInvoicedExceedsContract = "INVOICED_EXCEEDS_CONTRACT"
	codePaidExceedsInvoiced     = "PAID_EXCEEDS_INVOICED"
	codeOverdueCountMismatch    = "OVERDUE_COUNT_MISMATCH"
	codeOrphanRecord            = "ORPHAN_RECORD"
	codeInvalidDate             = "INVALID_DATE"
)

// sanitizer collects data-quality messages. IDs index the append order.
type sanitizer struct {
	messages []model.Message
	partial  bool
}

func (s *sanitizer) critical(code, text string) {
	s.messages = append(s.messages, model.Message{
		ID:      len(s.messages),
		Level:   model.LevelCritical,
		Code:    code,
		Message: text,
	})
	s.partial = true
}

func (s *sanitizer) warn(code, text string) {
	s.messages = append(s.messages, model.Message{
		ID:      len(s.messages),
		Level:   model.LevelWarning,
		Code:    code,
		Message: text,
	})
}

// sanitize validates one snapshot and returns the records that score. The
// scan order is fixed (projects, invoices, overdue-count reconciliation,
// deliverables, RFIs, action items) so message IDs are stable across
// identical inputs. Dropped records: projects without a key, duplicate keys
// (first record wins), and invoices/deliverables/action items referencing an
// unknown project. Anomalous amounts pass through uncorrected; unparseable
// dates are treated as missing.
func (s *sanitizer) sanitize(snap model.Snapshot, asOf time.Time) model.Snapshot {
	clean := model.Snapshot{Proposals: snap.Proposals}

	seen := make(map[string]bool, len(snap.Projects))
	for _, p := range snap.Projects {
		if p.ProjectCode == "" {
			s.critical(codeMissingProjectCode,
				fmt.Sprintf("Project %q has no project_code, record skipped", p.Name))
			continue
		}
		if seen[p.ProjectCode] {
			s.warn(codeDuplicateProjectCode,
				fmt.Sprintf("Duplicate project_code %s, first record kept", p.ProjectCode))
			continue
		}
		seen[p.ProjectCode] = true
		if p.ContractValue < 0 || p.TotalInvoiced < 0 || p.TotalPaid < 0 {
			s.warn(codeNegativeAmount,
				fmt.Sprintf("Project %s has a negative amount, value kept as-is", p.ProjectCode))
		}
		if p.TotalInvoiced > p.ContractValue {
			s.warn(codeInvoicedExceedsContract,
				fmt.Sprintf("Project %s invoiced %.2f against contract %.2f", p.ProjectCode, p.TotalInvoiced, p.ContractValue))
		}
		if p.TotalPaid > p.TotalInvoiced {
			s.warn(codePaidExceedsInvoiced,
				fmt.Sprintf("Project %s paid %.2f against invoiced %.2f", p.ProjectCode, p.TotalPaid, p.TotalInvoiced))
		}
		if bad, ok := invalidDate(p.LastContact); ok {
			s.warn(codeInvalidDate,
				fmt.Sprintf("Project %s last_contact %q is not a valid date", p.ProjectCode, bad))
			p.LastContact = nil
		}
		clean.Projects = append(clean.Projects, p)
	}

	overdueScan := make(map[string]int)
	invoiceRecords := make(map[string]int)
	for _, inv := range snap.Invoices {
		if !seen[inv.ProjectCode] {
			s.warn(codeOrphanRecord,
				fmt.Sprintf("Invoice %s references unknown project %q, record skipped", inv.InvoiceID, inv.ProjectCode))
			continue
		}
		if inv.Amount < 0 || inv.Paid < 0 {
			s.warn(codeNegativeAmount,
				fmt.Sprintf("Invoice %s has a negative amount, value kept as-is", inv.InvoiceID))
		}
		if inv.InvoiceDate != "" {
			if _, ok := model.ParseDate(inv.InvoiceDate); !ok {
				s.warn(codeInvalidDate,
					fmt.Sprintf("Invoice %s invoice_date %q is not a valid date", inv.InvoiceID, inv.InvoiceDate))
			}
		}
		if bad, ok := invalidDate(inv.DueDate); ok {
			s.warn(codeInvalidDate,
				fmt.Sprintf("Invoice %s due_date %q is not a valid date", inv.InvoiceID, bad))
			inv.DueDate = nil
		}
		invoiceRecords[inv.ProjectCode]++
		if due, ok := model.ParseDatePtr(inv.DueDate); ok && aging.DayCount(asOf, due) > 0 && inv.Outstanding() > 0 {
			overdueScan[inv.ProjectCode]++
		}
		clean.Invoices = append(clean.Invoices, inv)
	}

	// Reconcile the declared overdue count against the invoice records. A
	// project with zero invoice records is summary-only, not contradictory.
	for _, p := range clean.Projects {
		if invoiceRecords[p.ProjectCode] == 0 {
			continue
		}
		if scanned := overdueScan[p.ProjectCode]; scanned != p.OverdueInvoices {
			s.warn(codeOverdueCountMismatch,
				fmt.Sprintf("Project %s reports %d overdue invoices, invoice records show %d", p.ProjectCode, p.OverdueInvoices, scanned))
		}
	}

	for _, d := range snap.Deliverables {
		if !seen[d.ProjectCode] {
			s.warn(codeOrphanRecord,
				fmt.Sprintf("Deliverable %s references unknown project %q, record skipped", d.DeliverableID, d.ProjectCode))
			continue
		}
		if bad, ok := invalidDate(d.DueDate); ok {
			s.warn(codeInvalidDate,
				fmt.Sprintf("Deliverable %s due_date %q is not a valid date", d.DeliverableID, bad))
			d.DueDate = nil
		}
		clean.Deliverables = append(clean.Deliverables, d)
	}

	// RFIs and suggestions are not project-grouped anywhere, so an unknown
	// project code loses no data and is not flagged.
	for _, r := range snap.RFIs {
		if r.Submitted != "" {
			if _, ok := model.ParseDate(r.Submitted); !ok {
				s.warn(codeInvalidDate,
					fmt.Sprintf("RFI %s submitted %q is not a valid date", r.RFIID, r.Submitted))
			}
		}
		if bad, ok := invalidDate(r.ResponseDue); ok {
			s.warn(codeInvalidDate,
				fmt.Sprintf("RFI %s response_due %q is not a valid date", r.RFIID, bad))
			r.ResponseDue = nil
		}
		clean.RFIs = append(clean.RFIs, r)
	}

	for _, a := range snap.ActionItems {
		if !seen[a.ProjectCode] {
			s.warn(codeOrphanRecord,
				fmt.Sprintf("Action item %s references unknown project %q, record skipped", a.ActionID, a.ProjectCode))
			continue
		}
		if bad, ok := invalidDate(a.TargetDate); ok {
			s.warn(codeInvalidDate,
				fmt.Sprintf("Action item %s target_date %q is not a valid date", a.ActionID, bad))
			a.TargetDate = nil
		}
		clean.ActionItems = append(clean.ActionItems, a)
	}

	// Suggestions pass through except that a literal-null details payload is
	// normalized to absent, so report documents and the change patches diffed
	// from them never carry a JSON null.
	for _, sug := range snap.Suggestions {
		if string(sug.Details) == "null" {
			sug.Details = nil
		}
		clean.Suggestions = append(clean.Suggestions, sug)
	}

	return clean
}

// invalidDate reports whether an optional date field is present but
// unparseable, returning the offending value for the message text.
func invalidDate(field *string) (string, bool) {
	if field == nil {
		return "", false
	}
	if _, ok := model.ParseDate(*field); ok {
		return "", false
	}
	return *field, true
}
