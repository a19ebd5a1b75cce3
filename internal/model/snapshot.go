package model

import (
	json "github.com/goccy/go-json"
)

// Project is a read-only snapshot of one portfolio project as supplied by
// the upstream API. Financial totals are expected to satisfy
// total_paid <= total_invoiced <= contract_value, but violations are
// data-quality signals, never errors.
type Project struct {
	ProjectCode         string  `json:"project_code"`
	Name                string  `json:"name"`
	ClientName          string  `json:"client_name"`
	PM                  string  `json:"pm"`
	Phase               string  `json:"phase"`
	ContractValue       float64 `json:"contract_value"`
	TotalInvoiced       float64 `json:"total_invoiced"`
	TotalPaid           float64 `json:"total_paid"`
	LastContact         *string `json:"last_contact"`
	OverdueInvoices     int     `json:"overdue_invoices"`
	OverdueDeliverables int     `json:"overdue_deliverables"`
}

// Outstanding is the receivable balance reported on the project totals.
func (p Project) Outstanding() float64 {
	return p.TotalInvoiced - p.TotalPaid
}

type Invoice struct {
	InvoiceID   string  `json:"invoice_id"`
	ProjectCode string  `json:"project_code"`
	InvoiceDate string  `json:"invoice_date"`
	DueDate     *string `json:"due_date"`
	Amount      float64 `json:"amount"`
	Paid        float64 `json:"paid"`
}

// Outstanding is the unpaid remainder of the invoice.
func (i Invoice) Outstanding() float64 {
	return i.Amount - i.Paid
}

const (
	DeliverablePending    = "pending"
	DeliverableInProgress = "in_progress"
	DeliverableDelivered  = "delivered"
	DeliverableApproved   = "approved"
)

type Deliverable struct {
	DeliverableID string  `json:"deliverable_id"`
	ProjectCode   string  `json:"project_code"`
	Title         string  `json:"title"`
	DueDate       *string `json:"due_date"`
	Status        string  `json:"status"`
	Priority      string  `json:"priority"`
}

// Open reports whether the deliverable still counts against the schedule.
func (d Deliverable) Open() bool {
	return d.Status != DeliverableDelivered && d.Status != DeliverableApproved
}

// Proposal is a pre-project pipeline entity. DaysSinceLastContact is derived
// upstream from the latest linked email or logged activity; nil means no
// contact has ever been recorded.
type Proposal struct {
	ProjectCode          string  `json:"project_code"`
	ClientName           string  `json:"client_name"`
	Status               string  `json:"status"`
	DaysSinceLastContact *int    `json:"days_since_last_contact"`
	EstimatedValue       float64 `json:"estimated_value"`
}

const (
	RFIPending  = "pending"
	RFIAnswered = "answered"
)

type RFI struct {
	RFIID       string  `json:"rfi_id"`
	ProjectCode string  `json:"project_code"`
	Subject     string  `json:"subject"`
	Submitted   string  `json:"submitted"`
	ResponseDue *string `json:"response_due"`
	Status      string  `json:"status"`
}

// Suggestion is an AI-produced follow-up hint. Details is an opaque payload
// passed through to the dashboard untouched.
type Suggestion struct {
	SuggestionID string          `json:"suggestion_id"`
	ProjectCode  string          `json:"project_code,omitempty"`
	Title        string          `json:"title"`
	Confidence   float64         `json:"confidence"`
	Details      json.RawMessage `json:"details,omitempty"`
}

const (
	ActionOpen = "open"
	ActionDone = "done"
)

type ActionItem struct {
	ActionID    string  `json:"action_id"`
	ProjectCode string  `json:"project_code"`
	Title       string  `json:"title"`
	TargetDate  *string `json:"target_date"`
	Status      string  `json:"status"`
}

// Snapshot is one immutable portfolio snapshot. All derived results are
// recomputed from it on every pass; nothing is cached across passes.
type Snapshot struct {
	Projects     []Project     `json:"projects"`
	Invoices     []Invoice     `json:"invoices"`
	Deliverables []Deliverable `json:"deliverables"`
	Proposals    []Proposal    `json:"proposals"`
	RFIs         []RFI         `json:"rfis"`
	Suggestions  []Suggestion  `json:"suggestions"`
	ActionItems  []ActionItem  `json:"action_items"`
}

// EvaluationRequest asks for one full scoring pass over a snapshot.
// AsOf optionally pins the reference date (YYYY-MM-DD) for replays;
// when absent the engine's clock supplies it.
type EvaluationRequest struct {
	PortfolioID string   `json:"portfolio_id"`
	AsOf        *string  `json:"as_of,omitempty"`
	Snapshot    Snapshot `json:"snapshot"`
}
