// Package query filters, sorts, and paginates entry collections. Everything
// here is a pure function over its input; the stored collection is never
// mutated and raw storage order is never relied on for display.
package query

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pafa-project/pafa/pkg/types"
)

// Sort modes. Unrecognized or absent values fall back to SortNewest.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
	SortTitle  = "az"
)

// Options select which entries to keep and how to order them. Category and
// Search are conjunctive when both are set.
type Options struct {
	// Category keeps entries whose stored category exactly equals the
	// trimmed, lower-cased filter value. The comparison is case-sensitive on
	// the stored side; a mixed-case stored category never matches. That
	// asymmetry is long-standing behavior and is preserved deliberately.
	Category string

	// Search keeps entries whose title, description, location, agency,
	// source, or id contains the trimmed text, case-insensitively.
	Search string

	// Sort is one of the Sort* constants.
	Sort string
}

// FilterAndSort returns a new ordered slice of the entries matching opts.
// The sort is stable: entries that compare equal keep their input order,
// which pagination depends on for determinism.
func FilterAndSort(entries []types.Entry, opts Options) []types.Entry {
	category := strings.ToLower(strings.TrimSpace(opts.Category))
	search := strings.ToLower(strings.TrimSpace(opts.Search))

	result := make([]types.Entry, 0, len(entries))
	for _, e := range entries {
		if category != "" && e.Category != category {
			continue
		}
		if search != "" && !strings.Contains(searchBlob(e), search) {
			continue
		}
		result = append(result, e)
	}

	switch opts.Sort {
	case SortOldest:
		sort.SliceStable(result, func(i, j int) bool {
			return parseSubmitted(result[i].Submitted).Before(parseSubmitted(result[j].Submitted))
		})
	case SortTitle:
		coll := collate.New(language.Und)
		sort.SliceStable(result, func(i, j int) bool {
			return coll.CompareString(result[i].Title, result[j].Title) < 0
		})
	default:
		// newest
		sort.SliceStable(result, func(i, j int) bool {
			return parseSubmitted(result[j].Submitted).Before(parseSubmitted(result[i].Submitted))
		})
	}

	return result
}

// searchBlob joins the searchable fields into one lower-cased haystack.
// Missing optional fields contribute empty strings.
func searchBlob(e types.Entry) string {
	parts := []string{
		e.Title,
		e.Description,
		deref(e.Location),
		deref(e.Agency),
		deref(e.Source),
		e.ID,
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// parseSubmitted parses a submitted timestamp leniently. Unparseable or
// missing values yield the zero time, which sorts as the oldest possible
// point under both date orderings. That mirrors how the archive has always
// treated bad timestamps and is kept as-is.
func parseSubmitted(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}
