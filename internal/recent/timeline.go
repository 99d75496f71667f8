package recent

import (
	"time"

	"github.com/strrl/rofi-recent/pkg/models"
)

// Timeline returns every raw registration of path in registry order,
// including ones the listing would skip.
func Timeline(records []models.UsageRecord, path string) []TimelineItem {
	var items []TimelineItem
	for _, record := range records {
		resolved, err := ResolveLocation(record.Location)
		if err != nil || resolved != path {
			continue
		}
		for _, app := range record.Applications {
			program, err := ExtractProgram(app.Exec)
			items = append(items, TimelineItem{
				Program:     program,
				ProgramErr:  err,
				App:         app,
				ContentType: record.ContentType,
				Recorded:    record.LastModified,
			})
		}
	}
	return items
}

// TimelineItem is one raw registration of a file
type TimelineItem struct {
	Program     string
	ProgramErr  error
	App         models.Application
	ContentType string
	Recorded    time.Time
}
