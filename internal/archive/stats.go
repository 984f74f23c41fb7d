package archive

import "github.com/pafa-project/pafa/pkg/types"

// Stats holds aggregate category counts over the stored collection.
type Stats struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"by_category"`
}

// Stats counts entries per category. Entries with an empty or unrecognized
// category are bucketed under "other".
func (s *Store) Stats() Stats {
	entries := s.Load()
	counts := make(map[string]int, len(types.KnownCategories))
	for cat := range types.KnownCategories {
		counts[cat] = 0
	}
	for _, e := range entries {
		cat := e.Category
		if !types.KnownCategories[cat] {
			cat = types.CategoryOther
		}
		counts[cat]++
	}
	return Stats{Total: len(entries), ByCategory: counts}
}
