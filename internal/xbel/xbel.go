// Package xbel reads the desktop's recently-used.xbel registry.
package xbel

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/strrl/rofi-recent/pkg/models"
)

// FileName is the registry file name inside the user's data directory
const FileName = "recently-used.xbel"

var (
	// ErrRegistryNotFound is returned when the registry file is absent
	ErrRegistryNotFound = errors.New("recently-used.xbel: file does not exist")
	// ErrRegistryMalformed is returned when the registry cannot be decoded
	ErrRegistryMalformed = errors.New("recently-used.xbel: could not deserialize")
)

type document struct {
	XMLName   xml.Name   `xml:"xbel"`
	Bookmarks []bookmark `xml:"bookmark"`
}

type bookmark struct {
	Href         string        `xml:"href,attr"`
	Added        string        `xml:"added,attr"`
	Modified     string        `xml:"modified,attr"`
	Visited      string        `xml:"visited,attr"`
	MimeType     mimeType      `xml:"info>metadata>mime-type"`
	Applications []application `xml:"info>metadata>applications>application"`
}

type mimeType struct {
	Type string `xml:"type,attr"`
}

type application struct {
	Name     string `xml:"name,attr"`
	Exec     string `xml:"exec,attr"`
	Modified string `xml:"modified,attr"`
	Count    int    `xml:"count,attr"`
}

// DefaultPath returns where the registry is expected: $XDG_DATA_HOME first,
// then ~/.local/share.
func DefaultPath() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, FileName), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", FileName), nil
}

// ParseFile opens and decodes the registry at path
func ParseFile(path string) ([]models.UsageRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRegistryNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Load is ParseFile with cancellation, for callers running off the main loop
func Load(ctx context.Context, path string) ([]models.UsageRecord, error) {
	type result struct {
		records []models.UsageRecord
		err     error
	}
	resultChan := make(chan result, 1)

	go func() {
		records, err := ParseFile(path)
		resultChan <- result{records: records, err: err}
	}()

	select {
	case r := <-resultChan:
		return r.records, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Parse decodes an XBEL document into usage records, in document order.
// Bookmarks without any usable timestamp are dropped.
func Parse(r io.Reader) ([]models.UsageRecord, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRegistryMalformed, err)
	}

	records := make([]models.UsageRecord, 0, len(doc.Bookmarks))
	for _, b := range doc.Bookmarks {
		ts, ok := firstTimestamp(b.Modified, b.Visited, b.Added)
		if !ok {
			continue
		}

		record := models.UsageRecord{
			Location:     b.Href,
			LastModified: ts,
			ContentType:  strings.TrimSpace(b.MimeType.Type),
		}
		for _, app := range b.Applications {
			modified, _ := firstTimestamp(app.Modified)
			record.Applications = append(record.Applications, models.Application{
				Name:     app.Name,
				Exec:     app.Exec,
				Modified: modified,
				Count:    app.Count,
			})
		}
		records = append(records, record)
	}

	return records, nil
}

func firstTimestamp(values ...string) (time.Time, bool) {
	for _, v := range values {
		if v == "" {
			continue
		}
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
