// Package overflow implements the dashboard's shared truncation convention:
// lists are capped with an explicit overflow count ("+N more", "view all N"),
// never silently cut and never paginated.
package overflow

// Cap returns the surfaced prefix of items and how many were hidden by the
// limit. A non-positive limit surfaces nothing.
func Cap[T any](items []T, limit int) ([]T, int) {
	if limit < 0 {
		limit = 0
	}
	if len(items) <= limit {
		return items, 0
	}
	return items[:limit:limit], len(items) - limit
}
