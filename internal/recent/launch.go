package recent

import (
	"errors"
	"fmt"
	"strings"

	"github.com/strrl/rofi-recent/pkg/models"
)

var (
	// ErrPathNotFound is returned when a selection matches no listed file
	ErrPathNotFound = errors.New("no path")
	// ErrLaunchFailed is returned when the program could not be started
	ErrLaunchFailed = errors.New("failed to launch")
)

// ResolveSelection finds the entry a launcher selection refers to. info is
// the absolute path carried out of band with the row and must match an
// entry of program exactly; when it is empty the rendered text is matched
// instead, then any entry whose path contains it.
func ResolveSelection(groups models.ProgramGroups, program, info, text string) (*models.FileEntry, error) {
	entries, ok := groups[program]
	if !ok {
		return nil, fmt.Errorf("%w: unknown program %q", ErrPathNotFound, program)
	}

	if info != "" {
		for _, entry := range entries {
			if entry.Path == info {
				return entry, nil
			}
		}
		return nil, fmt.Errorf("%w: %s is not a recent file of %s", ErrPathNotFound, info, program)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty selection", ErrPathNotFound)
	}
	for _, entry := range entries {
		if entry.Text == text {
			return entry, nil
		}
	}
	for _, entry := range entries {
		if strings.Contains(entry.Path, text) {
			return entry, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrPathNotFound, text)
}

// Launch starts program with path as its only argument and detaches it.
// The child is not waited on.
func Launch(program, path string) error {
	if program == "" {
		return fmt.Errorf("%w: empty program", ErrLaunchFailed)
	}
	if err := spawnDetached(program, path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrLaunchFailed, program, err)
	}
	return nil
}
