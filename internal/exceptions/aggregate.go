package exceptions

import (
	"sort"
	"time"

	"attention-engine/internal/model"
	"attention-engine/internal/overflow"
)

// Aggregate runs every detector over every project and builds the portfolio
// exception report. Projects with zero issues are excluded from the list and
// counted as healthy, so healthy_count + len(projects) == total_count holds
// exactly. The list keeps snapshot order; cross-portfolio ranking belongs to
// the feed composer, the only ordering owned here is within one project's
// issue list (high before medium before low, detector order on ties).
func Aggregate(snap model.Snapshot, asOf time.Time, limits model.Limits) model.ExceptionReport {
	invoices := groupBy(snap.Invoices, func(i model.Invoice) string { return i.ProjectCode })
	deliverables := groupBy(snap.Deliverables, func(d model.Deliverable) string { return d.ProjectCode })
	actions := groupBy(snap.ActionItems, func(a model.ActionItem) string { return a.ProjectCode })

	report := model.ExceptionReport{
		Projects:   []model.ProjectExceptions{},
		TotalCount: len(snap.Projects),
	}

	for _, p := range snap.Projects {
		ctx := &Context{
			AsOf:         asOf,
			Project:      p,
			Invoices:     invoices[p.ProjectCode],
			Deliverables: deliverables[p.ProjectCode],
			Actions:      actions[p.ProjectCode],
		}

		var issues []model.Exception
		for _, det := range Detectors() {
			if exc, ok := det.Detect(ctx); ok {
				issues = append(issues, exc)
			}
		}

		if len(issues) == 0 {
			report.HealthyCount++
			continue
		}

		sort.SliceStable(issues, func(i, j int) bool {
			return issues[i].Severity.Rank() < issues[j].Severity.Rank()
		})
		surfaced, more := overflow.Cap(issues, limits.ProjectIssues)

		report.Projects = append(report.Projects, model.ProjectExceptions{
			ProjectCode: p.ProjectCode,
			Name:        p.Name,
			Issues:      surfaced,
			MoreIssues:  more,
		})
	}

	return report
}

func groupBy[T any](items []T, key func(T) string) map[string][]T {
	grouped := make(map[string][]T)
	for _, item := range items {
		grouped[key(item)] = append(grouped[key(item)], item)
	}
	return grouped
}
