// Package rofi speaks rofi's script-mode line protocol.
package rofi

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/strrl/rofi-recent/pkg/models"
)

const (
	rowSep   = "\x00"
	fieldSep = "\x1f"

	// InfoEnv carries the info field of the selected row back to the script
	InfoEnv = "ROFI_INFO"
	// RetvEnv is set by rofi to the reason the script was called
	RetvEnv = "ROFI_RETV"

	fallbackIcon = "text-x-generic"
)

// ErrEmptySelection is returned when rofi passes no selection text
var ErrEmptySelection = errors.New("empty selection")

// Icon returns the freedesktop icon name for a content type
func Icon(contentType string) string {
	if contentType == "" || !strings.Contains(contentType, "/") {
		return fallbackIcon
	}
	return strings.ReplaceAll(contentType, "/", "-")
}

// Meta returns the hidden search text of an entry: every application name,
// command and content type that opened it.
func Meta(entry *models.FileEntry) string {
	parts := make([]string, 0, len(entry.SearchTerms))
	for _, term := range entry.SearchTerms {
		parts = append(parts, term.String())
	}
	return sanitize(strings.Join(parts, " "))
}

// FormatRow renders one entry as a script-mode row
func FormatRow(program string, entry *models.FileEntry) string {
	var b strings.Builder
	b.WriteString(sanitize(program))
	b.WriteString(" ")
	b.WriteString(sanitize(entry.Text))
	b.WriteString(rowSep)
	b.WriteString("icon" + fieldSep + Icon(entry.ContentType))
	b.WriteString(fieldSep + "info" + fieldSep + sanitize(entry.Path))
	b.WriteString(fieldSep + "meta" + fieldSep + Meta(entry))
	return b.String()
}

// WriteHeader emits the mode options that precede the rows
func WriteHeader(w io.Writer) error {
	_, err := fmt.Fprint(w,
		rowSep+"markup-rows"+fieldSep+"true\n",
		rowSep+"no-custom"+fieldSep+"true\n",
	)
	return err
}

// WriteMessage shows msg above the list, e.g. an error after a failed launch
func WriteMessage(w io.Writer, msg string) error {
	_, err := fmt.Fprint(w, rowSep+"message"+fieldSep+sanitize(msg)+"\n")
	return err
}

// Write prints the full listing: header, then each program's entries in
// ranked order, programs with the newest files first.
func Write(w io.Writer, groups models.ProgramGroups) error {
	bw := bufio.NewWriter(w)
	if err := WriteHeader(bw); err != nil {
		return err
	}
	for _, program := range groups.Programs() {
		for _, entry := range groups[program] {
			if _, err := fmt.Fprintln(bw, FormatRow(program, entry)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Selection is what rofi hands back when a row is chosen
type Selection struct {
	Program string
	Text    string // rendered text after the program token
	Info    string // absolute path from ROFI_INFO, may be empty
}

// ParseSelection splits the selected row into program and text and picks up
// the info field from the environment.
func ParseSelection(args []string) (Selection, error) {
	line := strings.TrimSpace(strings.Join(args, " "))
	if line == "" {
		return Selection{}, ErrEmptySelection
	}
	program, text, _ := strings.Cut(line, " ")
	return Selection{
		Program: program,
		Text:    strings.TrimSpace(text),
		Info:    os.Getenv(InfoEnv),
	}, nil
}

// sanitize strips bytes that would break the line protocol
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', 0, 0x1f:
			return ' '
		}
		return r
	}, s)
}
