package driveaccess

import (
	"fmt"
	"strings"
)

// accessSuffix is appended to the owning resource URI to form the access
// endpoint path.
const accessSuffix = "/access"

// validateResourceURI checks that a caller-supplied resource URI is usable
// as a request path prefix. The empty URI is the unbound default (requests
// go to "/access" directly). Anything else must be absolute, slash-separated
// and free of relative components.
func validateResourceURI(uri string) error {
	if uri == "" {
		return nil
	}
	if !strings.HasPrefix(uri, "/") {
		return fmt.Errorf("resource uri must start with '/': %q: %w", uri, ErrInvalidResourceURI)
	}
	if strings.HasSuffix(uri, "/") {
		return fmt.Errorf("resource uri must not end with '/': %q: %w", uri, ErrInvalidResourceURI)
	}
	for _, part := range strings.Split(uri[1:], "/") {
		if part == "" {
			return fmt.Errorf("resource uri contains an empty segment: %q: %w", uri, ErrInvalidResourceURI)
		}
		if part == "." || part == ".." {
			return fmt.Errorf("relative uri components are not allowed: %q: %w", uri, ErrInvalidResourceURI)
		}
	}
	return nil
}

// accessPath returns the access endpoint path for a resource URI.
func accessPath(resourceURI string) string {
	return resourceURI + accessSuffix
}
