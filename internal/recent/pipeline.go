// Package recent turns recently-used records into per-program file lists.
package recent

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/strrl/rofi-recent/pkg/models"
)

// DefaultLimit is the number of files kept per program when unconfigured
const DefaultLimit = 5

// Options controls how the listing is built
type Options struct {
	Limit        int // 0 keeps everything
	Exclude      ExclusionSet
	ShowAllPaths bool
	HomeDir      string
}

// Build runs aggregation, ranking and disambiguation over the records
func Build(records []models.UsageRecord, opts Options, logger *log.Logger) models.ProgramGroups {
	logger = orDiscard(logger)
	groups := Aggregate(records, opts.Exclude, logger)
	Rank(groups, opts.Limit)
	if opts.ShowAllPaths {
		AttachAll(groups, opts.HomeDir)
	} else {
		Disambiguate(groups, opts.HomeDir)
	}
	logger.Debug("built listing", "records", len(records), "programs", len(groups), "entries", groups.Len())
	return groups
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}
