package models

import (
	"sort"
	"strings"
	"time"
)

// Application is one program registration recorded against a bookmark
type Application struct {
	Name     string
	Exec     string
	Modified time.Time
	Count    int
}

// UsageRecord represents one recently-used bookmark as read from the registry
type UsageRecord struct {
	Location     string // URI, usually file://
	LastModified time.Time
	ContentType  string
	Applications []Application
}

// SearchTerm is the searchable metadata contributed by one registration
type SearchTerm struct {
	AppName     string
	Command     string
	ContentType string // suffix after the slash, e.g. "plain" for text/plain
}

// String joins the term fields the way the launcher searches them
func (t SearchTerm) String() string {
	return strings.Join([]string{t.AppName, t.Command, t.ContentType}, " ")
}

// FileEntry is one recently used file inside a program's group
type FileEntry struct {
	Program      string
	Path         string
	DisplayName  string
	Text         string // renderable text; starts as the escaped display name
	ContentType  string
	LastModified time.Time
	SearchTerms  []SearchTerm
	PathAttached bool
}

// ProgramGroups maps an owning program token to its files
type ProgramGroups map[string][]*FileEntry

// Programs returns the program tokens ordered by their most recent file,
// newest first, with the token itself breaking ties.
func (g ProgramGroups) Programs() []string {
	programs := make([]string, 0, len(g))
	latest := make(map[string]time.Time, len(g))
	for program, entries := range g {
		programs = append(programs, program)
		for _, e := range entries {
			if e.LastModified.After(latest[program]) {
				latest[program] = e.LastModified
			}
		}
	}
	sort.Slice(programs, func(i, j int) bool {
		a, b := latest[programs[i]], latest[programs[j]]
		if !a.Equal(b) {
			return a.After(b)
		}
		return programs[i] < programs[j]
	})
	return programs
}

// Len returns the total number of entries across all programs
func (g ProgramGroups) Len() int {
	n := 0
	for _, entries := range g {
		n += len(entries)
	}
	return n
}

// ProgramStat holds aggregated usage figures for one program
type ProgramStat struct {
	Program       string
	Files         int
	Registrations int
	LastActivity  time.Time
	LatestType    string
}
