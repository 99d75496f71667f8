package recent

import (
	"slices"

	"github.com/strrl/rofi-recent/pkg/models"
)

// Rank orders every group newest first and caps it at limit entries.
// A limit of zero keeps every entry. Entries with equal timestamps keep
// their aggregation order.
func Rank(groups models.ProgramGroups, limit int) {
	for program, entries := range groups {
		slices.SortStableFunc(entries, func(a, b *models.FileEntry) int {
			return b.LastModified.Compare(a.LastModified)
		})
		if limit > 0 && len(entries) > limit {
			clear(entries[limit:])
			entries = entries[:limit]
		}
		groups[program] = entries
	}
}
