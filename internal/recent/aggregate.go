package recent

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/strrl/rofi-recent/pkg/models"
)

// ExclusionSet holds program tokens that never get a group
type ExclusionSet map[string]struct{}

// ParseExclusions splits a space-separated list of program tokens
func ParseExclusions(s string) ExclusionSet {
	set := make(ExclusionSet)
	for _, program := range strings.Fields(s) {
		set[program] = struct{}{}
	}
	return set
}

// Contains reports whether program is excluded
func (s ExclusionSet) Contains(program string) bool {
	_, ok := s[program]
	return ok
}

// Aggregate groups the records by owning program. Registrations that resolve
// to a path already present in the program's group are merged into that
// entry's search terms; everything else creates a new entry. Malformed,
// non-local and excluded registrations are skipped.
func Aggregate(records []models.UsageRecord, exclude ExclusionSet, logger *log.Logger) models.ProgramGroups {
	logger = orDiscard(logger)
	groups := make(models.ProgramGroups)
	index := make(map[string]map[string]*models.FileEntry)

	for _, record := range records {
		var (
			path     string
			resolved bool
			pathErr  error
		)

		for _, app := range record.Applications {
			program, err := ExtractProgram(app.Exec)
			if err != nil {
				logger.Debug("skipping registration", "location", record.Location, "app", app.Name, "err", err)
				continue
			}
			if exclude.Contains(program) {
				continue
			}

			if !resolved {
				path, pathErr = ResolveLocation(record.Location)
				resolved = true
			}
			if pathErr != nil {
				logger.Debug("skipping registration", "location", record.Location, "app", app.Name, "err", pathErr)
				continue
			}

			term := models.SearchTerm{
				AppName:     app.Name,
				Command:     app.Exec,
				ContentType: contentTypeSuffix(record.ContentType),
			}

			byPath, ok := index[program]
			if !ok {
				byPath = make(map[string]*models.FileEntry)
				index[program] = byPath
			}
			if entry, ok := byPath[path]; ok {
				entry.SearchTerms = append(entry.SearchTerms, term)
				continue
			}

			displayName := filepath.Base(path)
			entry := &models.FileEntry{
				Program:      program,
				Path:         path,
				DisplayName:  displayName,
				Text:         EscapeMarkup(displayName),
				ContentType:  record.ContentType,
				LastModified: record.LastModified,
				SearchTerms:  []models.SearchTerm{term},
			}
			byPath[path] = entry
			groups[program] = append(groups[program], entry)
		}
	}

	return groups
}

// contentTypeSuffix returns the subtype of a MIME type ("plain" for text/plain)
func contentTypeSuffix(contentType string) string {
	if i := strings.LastIndex(contentType, "/"); i >= 0 {
		return contentType[i+1:]
	}
	return contentType
}
