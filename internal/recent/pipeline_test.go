package recent

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strrl/rofi-recent/pkg/models"
)

func TestBuildCollidingNamesAcrossPrograms(t *testing.T) {
	records := []models.UsageRecord{
		usage("file:///home/u/notes.txt", 2, "text/plain", registration("Editor", "alpha %u")),
		usage("file:///home/u/docs/notes.txt", 1, "text/plain", registration("Viewer", "beta %u")),
	}

	groups := Build(records, Options{Limit: DefaultLimit, HomeDir: "/home/u"}, nil)

	require.Len(t, groups, 2)
	require.Len(t, groups["alpha"], 1)
	require.Len(t, groups["beta"], 1)
	for _, program := range []string{"alpha", "beta"} {
		e := groups[program][0]
		assert.Equal(t, "notes.txt", e.DisplayName)
		assert.True(t, e.PathAttached)
	}
	assert.Equal(t, []string{"alpha", "beta"}, groups.Programs())
}

func TestBuildMergesRegistrations(t *testing.T) {
	records := []models.UsageRecord{
		usage("file:///home/u/a.txt", 2, "text/plain", registration("Text Editor", "'gedit %u'")),
		usage("file:///home/u/a.txt", 1, "text/plain", registration("gedit", "gedit %U")),
	}

	groups := Build(records, Options{Limit: DefaultLimit}, nil)

	require.Len(t, groups["gedit"], 1)
	assert.Len(t, groups["gedit"][0].SearchTerms, 2)
	assert.False(t, groups["gedit"][0].PathAttached)
}

func TestBuildLimit(t *testing.T) {
	var records []models.UsageRecord
	for i, name := range []string{"e", "d", "c", "b", "a"} {
		records = append(records, usage("file:///tmp/"+name, 5-i, "text/plain", registration("Editor", "vim %u")))
	}

	groups := Build(records, Options{Limit: 2}, nil)

	assert.Equal(t, []int64{5, 4}, stamps(groups["vim"]))
}

func TestBuildShowAllPaths(t *testing.T) {
	records := []models.UsageRecord{
		usage("file:///home/u/a.txt", 2, "text/plain", registration("Editor", "vim %u")),
	}

	groups := Build(records, Options{ShowAllPaths: true, HomeDir: "/home/u"}, nil)

	assert.True(t, groups["vim"][0].PathAttached)
	assert.Equal(t, "<i><small>~/</small></i> a.txt", groups["vim"][0].Text)
}

func TestBuildTruncatesBeforeDisambiguating(t *testing.T) {
	records := []models.UsageRecord{
		usage("file:///x/report.pdf", 3, "application/pdf", registration("Reader", "evince %u")),
		usage("file:///y/other.pdf", 9, "application/pdf", registration("Reader", "evince %u")),
		usage("file:///z/report.pdf", 5, "application/pdf", registration("Viewer", "okular %u")),
	}

	groups := Build(records, Options{Limit: 1}, nil)

	// the colliding evince entry was truncated away, so nothing collides
	assert.Equal(t, "other.pdf", groups["evince"][0].DisplayName)
	assert.False(t, groups["evince"][0].PathAttached)
	assert.False(t, groups["okular"][0].PathAttached)
}

func TestBuildLogsSkipsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	records := []models.UsageRecord{
		usage("https://example.com", 1, "text/html", registration("Browser", "firefox %u")),
	}

	groups := Build(records, Options{}, logger)

	assert.Empty(t, groups)
	assert.True(t, strings.Contains(buf.String(), "skipping registration"))
}
