package rofi

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/strrl/rofi-recent/pkg/models"
)

func testEntry() *models.FileEntry {
	return &models.FileEntry{
		Program:      "gedit",
		Path:         "/home/u/docs/notes.txt",
		DisplayName:  "notes.txt",
		Text:         "<i><small>~/docs/</small></i> notes.txt",
		ContentType:  "text/plain",
		LastModified: time.Unix(10, 0),
		SearchTerms: []models.SearchTerm{
			{AppName: "Text Editor", Command: "'gedit %u'", ContentType: "plain"},
			{AppName: "gedit", Command: "gedit %U", ContentType: "plain"},
		},
		PathAttached: true,
	}
}

func TestFormatRow(t *testing.T) {
	got := FormatRow("gedit", testEntry())
	want := "gedit <i><small>~/docs/</small></i> notes.txt\x00icon\x1ftext-plain\x1finfo\x1f/home/u/docs/notes.txt\x1fmeta\x1fText Editor 'gedit %u' plain gedit gedit %U plain"
	if got != want {
		t.Errorf("FormatRow mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestIcon(t *testing.T) {
	tests := map[string]string{
		"text/plain": "text-plain",
		"application/vnd.oasis.opendocument.text": "application-vnd.oasis.opendocument.text",
		"":        "text-x-generic",
		"garbage": "text-x-generic",
	}
	for contentType, want := range tests {
		if got := Icon(contentType); got != want {
			t.Errorf("Icon(%q) = %q, want %q", contentType, got, want)
		}
	}
}

func TestWrite(t *testing.T) {
	older := testEntry()
	newer := &models.FileEntry{
		Path:         "/tmp/pic.png",
		Text:         "pic.png",
		ContentType:  "image/png",
		LastModified: time.Unix(20, 0),
		SearchTerms:  []models.SearchTerm{{AppName: "Viewer", Command: "eog %u", ContentType: "png"}},
	}
	groups := models.ProgramGroups{
		"gedit": {older},
		"eog":   {newer},
	}

	var buf bytes.Buffer
	if err := Write(&buf, groups); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 2 header lines and 2 rows, got %d: %q", len(lines), lines)
	}
	if lines[0] != "\x00markup-rows\x1ftrue" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "eog pic.png\x00") {
		t.Errorf("expected newest program first, got %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "gedit ") {
		t.Errorf("expected gedit second, got %q", lines[3])
	}
}

func TestFormatRowSanitizes(t *testing.T) {
	e := testEntry()
	e.Path = "/tmp/odd\nname"
	e.Text = "odd\nname"
	row := FormatRow("gedit", e)
	if strings.Contains(row, "\n") {
		t.Errorf("row contains a newline: %q", row)
	}
}

func TestParseSelection(t *testing.T) {
	t.Setenv(InfoEnv, "/home/u/docs/notes.txt")

	sel, err := ParseSelection([]string{"gedit <i><small>~/docs/</small></i>", "notes.txt"})
	if err != nil {
		t.Fatalf("ParseSelection returned error: %v", err)
	}
	if sel.Program != "gedit" {
		t.Errorf("unexpected program %q", sel.Program)
	}
	if sel.Text != "<i><small>~/docs/</small></i> notes.txt" {
		t.Errorf("unexpected text %q", sel.Text)
	}
	if sel.Info != "/home/u/docs/notes.txt" {
		t.Errorf("unexpected info %q", sel.Info)
	}

	if _, err := ParseSelection([]string{"  "}); !errors.Is(err, ErrEmptySelection) {
		t.Errorf("expected ErrEmptySelection, got %v", err)
	}
}

func TestWriteMessage(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMessage(&buf, "error: no path\nsecond line"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "\x00message\x1ferror: no path second line\n" {
		t.Errorf("unexpected message %q", buf.String())
	}
}
