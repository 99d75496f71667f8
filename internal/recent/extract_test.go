package recent

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractProgram(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    string
	}{
		{"quoted with field code", "'gedit %u'", "gedit"},
		{"unquoted", "gedit %U", "gedit"},
		{"absolute path", "/usr/bin/eog %u", "/usr/bin/eog"},
		{"digits and dots", "libreoffice7.1 --writer %U", "libreoffice7.1"},
		{"hyphenated", "'gnome-text-editor %u'", "gnome-text-editor"},
		{"env prefix", "env GTK_THEME=Adwaita:dark gimp %U", "gimp"},
		{"quoted env prefix", "'env FOO=1 gimp %u'", "gimp"},
		{"assignment only", "LANG=C mpv %U", "mpv"},
		{"double quoted", `"flatpak run org.gnome.Gedit %u"`, "flatpak"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractProgram(tt.command)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractProgramUnparsable(t *testing.T) {
	for _, command := range []string{
		"",
		"   ",
		"%u",
		"''",
		"'unterminated %u",
		"env",
		"123 %u",
	} {
		_, err := ExtractProgram(command)
		assert.Truef(t, errors.Is(err, ErrUnparsableCommand), "command %q: expected ErrUnparsableCommand, got %v", command, err)
	}
}

func TestResolveLocation(t *testing.T) {
	path, err := ResolveLocation("file:///home/u/My%20Notes/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "/home/u/My Notes/notes.txt", path)

	path, err = ResolveLocation("file://localhost/tmp/../tmp/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/a.txt", path)

	for _, location := range []string{
		"https://example.com/a.txt",
		"file://server/share/a.txt",
		"file:relative.txt",
		"file:///bad%zzescape",
		"recent:///",
		"",
	} {
		_, err := ResolveLocation(location)
		assert.Truef(t, errors.Is(err, ErrUnresolvableLocation), "location %q: expected ErrUnresolvableLocation, got %v", location, err)
	}
}
