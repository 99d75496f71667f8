package recent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strrl/rofi-recent/pkg/models"
)

func rankFixture(program string, stamps ...int) []*models.FileEntry {
	out := make([]*models.FileEntry, 0, len(stamps))
	for i, s := range stamps {
		name := string(rune('a'+i)) + ".txt"
		out = append(out, &models.FileEntry{
			Program:      program,
			Path:         "/tmp/" + name,
			DisplayName:  name,
			Text:         name,
			LastModified: ts(s),
		})
	}
	return out
}

func stamps(list []*models.FileEntry) []int64 {
	out := make([]int64, 0, len(list))
	for _, e := range list {
		out = append(out, e.LastModified.Unix())
	}
	return out
}

func TestRankTruncates(t *testing.T) {
	groups := models.ProgramGroups{"gedit": rankFixture("gedit", 1, 5, 3, 2, 4)}

	Rank(groups, 2)

	assert.Equal(t, []int64{5, 4}, stamps(groups["gedit"]))
}

func TestRankZeroLimitKeepsAll(t *testing.T) {
	groups := models.ProgramGroups{"gedit": rankFixture("gedit", 2, 9, 4, 7, 1, 3)}

	Rank(groups, 0)

	assert.Equal(t, []int64{9, 7, 4, 3, 2, 1}, stamps(groups["gedit"]))
}

func TestRankIsStable(t *testing.T) {
	list := rankFixture("gedit", 3, 3, 5, 3)
	groups := models.ProgramGroups{"gedit": list}

	Rank(groups, 0)

	ranked := groups["gedit"]
	require.Len(t, ranked, 4)
	assert.Equal(t, "c.txt", ranked[0].DisplayName)
	// equal timestamps keep their aggregation order
	assert.Equal(t, []string{"a.txt", "b.txt", "d.txt"}, []string{ranked[1].DisplayName, ranked[2].DisplayName, ranked[3].DisplayName})
}

func TestRankMonotonicAndBounded(t *testing.T) {
	groups := models.ProgramGroups{
		"a": rankFixture("a", 4, 8, 1, 9, 2, 2, 7),
		"b": rankFixture("b", 1),
		"c": rankFixture("c"),
	}

	Rank(groups, 3)

	for program, list := range groups {
		assert.LessOrEqualf(t, len(list), 3, "group %s exceeds limit", program)
		for i := 1; i < len(list); i++ {
			assert.Falsef(t, list[i].LastModified.After(list[i-1].LastModified), "group %s not ordered", program)
		}
	}
	assert.Equal(t, []int64{9, 8, 7}, stamps(groups["a"]))
}

func TestRankLeavesTermsAlone(t *testing.T) {
	list := rankFixture("gedit", 1, 2)
	list[0].SearchTerms = []models.SearchTerm{{AppName: "Editor"}}
	list[0].PathAttached = true
	groups := models.ProgramGroups{"gedit": list}

	Rank(groups, 0)

	last := groups["gedit"][1]
	assert.Equal(t, "a.txt", last.DisplayName)
	assert.True(t, last.PathAttached)
	assert.Len(t, last.SearchTerms, 1)
}
