package recent

import (
	"strings"

	"github.com/strrl/rofi-recent/pkg/models"
)

var markupEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// EscapeMarkup escapes text for Pango markup rows
func EscapeMarkup(s string) string {
	return markupEscaper.Replace(s)
}

// AttachPath prepends the entry's parent directory, with the home directory
// shortened to ~, to its renderable text. Calling it again does nothing.
func AttachPath(entry *models.FileEntry, homeDir string) {
	if entry.PathAttached {
		return
	}
	dir := strings.TrimSuffix(entry.Path, entry.DisplayName)
	entry.Text = "<i><small>" + EscapeMarkup(abbreviateHome(dir, homeDir)) + "</small></i> " + entry.Text
	entry.PathAttached = true
}

func abbreviateHome(dir, homeDir string) string {
	homeDir = strings.TrimSuffix(homeDir, "/")
	if homeDir == "" {
		return dir
	}
	if dir == homeDir || strings.HasPrefix(dir, homeDir+"/") {
		return "~" + dir[len(homeDir):]
	}
	return dir
}

// Disambiguate attaches paths to every retained entry whose display name is
// shared with another entry, in the same group or any other. The launcher
// list is flat, so collisions are looked for across all programs.
func Disambiguate(groups models.ProgramGroups, homeDir string) {
	var all []*models.FileEntry
	for _, program := range groups.Programs() {
		all = append(all, groups[program]...)
	}

	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			if all[i].DisplayName == all[j].DisplayName {
				AttachPath(all[i], homeDir)
				AttachPath(all[j], homeDir)
			}
		}
	}
}

// AttachAll attaches paths to every entry regardless of collisions
func AttachAll(groups models.ProgramGroups, homeDir string) {
	for _, entries := range groups {
		for _, entry := range entries {
			AttachPath(entry, homeDir)
		}
	}
}
