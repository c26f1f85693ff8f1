// Package paginator derives page metadata (total pages, neighbours and a short
// window of page numbers for navigation) from a record count, a page number and
// a page size. It does no I/O and is safe for concurrent use.
package paginator

import "errors"

// ErrInvalidLimit is returned when the page size is not a positive number.
var ErrInvalidLimit = errors.New("invalid limit")

const (
	// windowSize is the maximum number of page links in DisplayPages.
	windowSize = 5
	// windowLead is how many pages the window tries to show before the current one.
	windowLead = 2
)

// Result is the full set of pagination metadata for one page.
type Result struct {
	CurrentPageNumber     int   `json:"current_page_number"`
	TotalRecords          int   `json:"total_records"`
	TotalRecordsRemaining int   `json:"total_records_remaining"`
	TotalPages            int   `json:"total_pages"`
	Limit                 int   `json:"limit"`
	HasNextPage           bool  `json:"has_next_page"`
	HasPrevPage           bool  `json:"has_prev_page"`
	NextPage              *int  `json:"next_page"`
	PreviousPage          *int  `json:"previous_page"`
	DisplayPages          []int `json:"display_pages"`
}

// Paginator holds the inputs of a single computation. Page numbers are 1-based.
// Only the limit is checked; out-of-range pages and negative totals are computed
// as given.
type Paginator struct {
	totalRecords int
	currentPage  int
	limit        int
	totalPages   int
}

// New builds a Paginator, failing with ErrInvalidLimit when limit <= 0.
func New(totalRecords, currentPage, limit int) (*Paginator, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	return &Paginator{
		totalRecords: totalRecords,
		currentPage:  currentPage,
		limit:        limit,
		totalPages:   ceilDiv(totalRecords, limit),
	}, nil
}

// Compute is shorthand for New followed by Result.
func Compute(totalRecords, currentPage, limit int) (Result, error) {
	p, err := New(totalRecords, currentPage, limit)
	if err != nil {
		return Result{}, err
	}
	return p.Result(), nil
}

// Result assembles every derived field.
func (p *Paginator) Result() Result {
	return Result{
		CurrentPageNumber:     p.currentPage,
		TotalRecords:          p.totalRecords,
		TotalRecordsRemaining: p.TotalRecordsRemaining(),
		TotalPages:            p.totalPages,
		Limit:                 p.limit,
		HasNextPage:           p.HasNextPage(),
		HasPrevPage:           p.HasPrevPage(),
		NextPage:              p.NextPage(),
		PreviousPage:          p.PreviousPage(),
		DisplayPages:          p.DisplayPages(),
	}
}

// TotalPages is the record count divided by the limit, rounded up.
func (p *Paginator) TotalPages() int { return p.totalPages }

// TotalRecordsRemaining is the number of records after the current page, never negative.
func (p *Paginator) TotalRecordsRemaining() int {
	return max(p.totalRecords-p.currentPage*p.limit, 0)
}

// HasNextPage reports whether the current page is before the last one.
func (p *Paginator) HasNextPage() bool { return p.currentPage < p.totalPages }

// HasPrevPage reports whether the current page is after the first one.
func (p *Paginator) HasPrevPage() bool { return p.currentPage > 1 }

// NextPage returns nil on the last page.
func (p *Paginator) NextPage() *int {
	if !p.HasNextPage() {
		return nil
	}
	return intPtr(p.currentPage + 1)
}

// PreviousPage returns nil on the first page.
func (p *Paginator) PreviousPage() *int {
	if !p.HasPrevPage() {
		return nil
	}
	return intPtr(p.currentPage - 1)
}

// DisplayPages returns up to five consecutive page numbers around the current
// page, clamped to [1, TotalPages]. Near the last page the window shifts left so
// it stays full. The slice is empty, not nil, when there are no pages.
func (p *Paginator) DisplayPages() []int {
	start := max(p.currentPage-windowLead, 1)
	end := min(start+windowSize-1, p.totalPages)
	start = max(end-windowSize+1, 1)

	if start > end {
		return []int{}
	}
	pages := make([]int, 0, end-start+1)
	for n := start; n <= end; n++ {
		pages = append(pages, n)
	}
	return pages
}

// ceilDiv rounds a/b up for b > 0. Go truncates toward zero, so only a positive
// remainder needs the extra page.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b > 0 {
		q++
	}
	return q
}

func intPtr(n int) *int { return &n }
