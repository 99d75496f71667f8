package recent

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
)

// ErrUnresolvableLocation marks a bookmark URI that does not name a local file
var ErrUnresolvableLocation = errors.New("unresolvable location")

// ResolveLocation turns a file:// URI into a clean absolute path
func ResolveLocation(location string) (string, error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnresolvableLocation, err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrUnresolvableLocation, u.Scheme)
	}
	if u.Host != "" && u.Host != "localhost" {
		return "", fmt.Errorf("%w: remote host %q", ErrUnresolvableLocation, u.Host)
	}
	if u.Path == "" || !filepath.IsAbs(u.Path) {
		return "", fmt.Errorf("%w: %q is not absolute", ErrUnresolvableLocation, location)
	}
	return filepath.Clean(u.Path), nil
}
