package query

import "github.com/pafa-project/pafa/pkg/types"

// DefaultPageSize is the fixed page size of the browse surface.
const DefaultPageSize = 15

// Page is one slice of a filtered, sorted collection. Navigation is
// 1-indexed.
type Page struct {
	// Items is the sub-sequence for this page; empty when the full
	// collection is empty.
	Items []types.Entry

	// Number is the effective page, after clamping the request into
	// [1, TotalPages].
	Number int

	// TotalPages is max(1, ceil(len/pageSize)).
	TotalPages int
}

// Paginate slices an already-filtered and sorted collection. A request past
// the last page (the collection may have shrunk under a filter change) clamps
// down to the last page; a request below 1 clamps up to 1.
func Paginate(entries []types.Entry, pageSize, requested int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	totalPages := (len(entries) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := requested
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(entries) {
		start = len(entries)
	}
	if end > len(entries) {
		end = len(entries)
	}

	return Page{
		Items:      entries[start:end],
		Number:     page,
		TotalPages: totalPages,
	}
}
