// internal/listquery/pager.go
package listquery

import "fmt"

// DefaultPageSize is used when no explicit limit is configured.
const DefaultPageSize = 12

// Pager holds 1-indexed page state and the page size for a list view.
// Page transitions clamp against the total page count supplied by the
// caller; changing the limit deliberately does not re-clamp the page
// (callers that want that call ClampTo after the next fetch).
type Pager struct {
	page  int
	limit int
}

// NewPager creates a pager on page 1 with the given page size. A
// non-positive limit falls back to DefaultPageSize.
func NewPager(limit int) *Pager {
	if limit < 1 {
		limit = DefaultPageSize
	}
	return &Pager{page: 1, limit: limit}
}

// Page returns the current 1-indexed page.
func (p *Pager) Page() int { return p.page }

// Limit returns the current page size.
func (p *Pager) Limit() int { return p.limit }

// GoToPage moves to target, clamped into [1, max(1, totalPages)].
// A totalPages of 0 clamps to page 1 rather than erroring.
func (p *Pager) GoToPage(target, totalPages int) {
	if totalPages < 1 {
		totalPages = 1
	}
	if target < 1 {
		target = 1
	}
	if target > totalPages {
		target = totalPages
	}
	p.page = target
}

// GoToPreviousPage steps back one page; no-op at the lower bound.
func (p *Pager) GoToPreviousPage() {
	if p.page > 1 {
		p.page--
	}
}

// GoToNextPage steps forward one page; no-op at the upper bound.
func (p *Pager) GoToNextPage(totalPages int) {
	next := p.page + 1
	if next > totalPages {
		next = totalPages
	}
	if next < 1 {
		next = 1
	}
	p.page = next
}

// SetLimit replaces the page size. The current page is left alone: on
// a shrinking result set it may point past the end until the caller
// clamps against the next fetch (see ClampTo).
func (p *Pager) SetLimit(limit int) {
	if limit < 1 {
		return
	}
	p.limit = limit
}

// ClampTo pulls the page back into range after the total page count
// shrank below it.
func (p *Pager) ClampTo(totalPages int) {
	if totalPages < 1 {
		totalPages = 1
	}
	if p.page > totalPages {
		p.page = totalPages
	}
}

// RangeStart is the 1-indexed ordinal of the first row on this page.
func (p *Pager) RangeStart() int {
	return (p.page-1)*p.limit + 1
}

// RangeEnd is the 1-indexed ordinal of the last slot on this page. It
// is not clamped against the total; see ClampedRangeEnd.
func (p *Pager) RangeEnd() int {
	return p.page * p.limit
}

// ClampedRangeEnd is RangeEnd clamped to the supplied total.
func (p *Pager) ClampedRangeEnd(total int) int {
	end := p.RangeEnd()
	if end > total {
		end = total
	}
	return end
}

// RangeLabel renders the display string for the current window, e.g.
// "13 - 24 of 30 results". The end of the range is intentionally not
// clamped against total, matching the product's existing display.
func (p *Pager) RangeLabel(total int) string {
	return fmt.Sprintf("%d - %d of %d results", p.RangeStart(), p.RangeEnd(), total)
}

// TotalPages computes the page count for a result total.
func TotalPages(total, limit int) int {
	if limit < 1 {
		return 0
	}
	pages := total / limit
	if total%limit > 0 {
		pages++
	}
	return pages
}
