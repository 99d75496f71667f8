package recent

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strrl/rofi-recent/pkg/models"
)

func launchFixture() models.ProgramGroups {
	notes := fileEntry("gedit", "/home/u/notes.txt", 2)
	docs := fileEntry("gedit", "/home/u/docs/notes.txt", 1)
	AttachPath(notes, "/home/u")
	AttachPath(docs, "/home/u")
	return models.ProgramGroups{
		"gedit": {notes, docs},
		"eog":   {fileEntry("eog", "/home/u/pic.png", 3)},
	}
}

func TestResolveSelectionByInfo(t *testing.T) {
	groups := launchFixture()

	e, err := ResolveSelection(groups, "gedit", "/home/u/docs/notes.txt", "ignored")
	require.NoError(t, err)
	assert.Equal(t, "/home/u/docs/notes.txt", e.Path)

	_, err = ResolveSelection(groups, "gedit", "/home/u/pic.png", "")
	assert.True(t, errors.Is(err, ErrPathNotFound))
}

func TestResolveSelectionByText(t *testing.T) {
	groups := launchFixture()

	e, err := ResolveSelection(groups, "gedit", "", "<i><small>~/docs/</small></i> notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "/home/u/docs/notes.txt", e.Path)

	e, err = ResolveSelection(groups, "eog", "", " pic.png ")
	require.NoError(t, err)
	assert.Equal(t, "/home/u/pic.png", e.Path)

	// falls back to a path substring like the first rofi-recent release
	e, err = ResolveSelection(groups, "gedit", "", "docs/notes")
	require.NoError(t, err)
	assert.Equal(t, "/home/u/docs/notes.txt", e.Path)
}

func TestResolveSelectionErrors(t *testing.T) {
	groups := launchFixture()

	for _, tc := range []struct {
		program, info, text string
	}{
		{"vlc", "/home/u/notes.txt", ""},
		{"gedit", "", ""},
		{"gedit", "", "missing.txt"},
	} {
		_, err := ResolveSelection(groups, tc.program, tc.info, tc.text)
		assert.Truef(t, errors.Is(err, ErrPathNotFound), "%+v: expected ErrPathNotFound, got %v", tc, err)
	}
}

func TestLaunch(t *testing.T) {
	err := Launch("rofi-recent-no-such-program", "/tmp/x")
	assert.True(t, errors.Is(err, ErrLaunchFailed))

	err = Launch("", "/tmp/x")
	assert.True(t, errors.Is(err, ErrLaunchFailed))

	truePath, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true not available")
	}
	assert.NoError(t, Launch(truePath, "/tmp/x"))
}
