package services

import (
	"sort"
	"strings"

	"github.com/mizuhara/showcase-api/internal/models"
)

// Gallery filtering and ranking. These are pure functions over an in-memory
// work list; the repository hands over the full set newest-first and the
// gallery re-ranks it by votes.

// FilterWorks keeps works matching both the free-text query and the category
// selector. The text match is a case-insensitive substring test against
// title, description, or author username; an empty query matches everything.
// models.CategoryAll disables the category predicate. The two predicates are
// independent, so their order does not matter.
func FilterWorks(works []models.Work, query string, category models.Category) []models.Work {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]models.Work, 0, len(works))
	for _, w := range works {
		if query != "" && !matchesQuery(w, query) {
			continue
		}
		if category != "" && category != models.CategoryAll && w.Category != category {
			continue
		}
		filtered = append(filtered, w)
	}
	return filtered
}

func matchesQuery(w models.Work, query string) bool {
	return strings.Contains(strings.ToLower(w.Title), query) ||
		strings.Contains(strings.ToLower(w.Description), query) ||
		strings.Contains(strings.ToLower(w.Author.Username), query)
}

// SortWorks ranks works by vote count descending; ties go to the newer work.
// The sort is stable beyond that.
func SortWorks(works []models.Work) {
	sort.SliceStable(works, func(i, j int) bool {
		if works[i].VoteCount != works[j].VoteCount {
			return works[i].VoteCount > works[j].VoteCount
		}
		return works[i].CreatedAt.After(works[j].CreatedAt)
	})
}
