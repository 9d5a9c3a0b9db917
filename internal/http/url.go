package http

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/metrifox/metrifox-go/pkg/metrifox"
)

// JoinURL resolves the relative path against base and appends rawQuery when
// it is non-empty. base must end with "/" so its own path is kept. Escaped
// characters in path are preserved verbatim.
func JoinURL(base, path, rawQuery string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing base URL %q: %w", base, err)
	}

	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", fmt.Errorf("parsing path %q: %w", path, err)
	}

	resolved := baseURL.ResolveReference(ref)
	resolved.RawQuery = rawQuery

	return resolved.String(), nil
}

// EscapeSegment percent-encodes s for use as a single path segment. "/" is
// encoded so the value cannot add segments, and "." or ".." are encoded so
// they cannot be resolved away.
func EscapeSegment(s string) string {
	switch s {
	case ".":
		return "%2E"
	case "..":
		return "%2E%2E"
	default:
		return url.PathEscape(s)
	}
}

// NormalizeBaseURL validates an http(s) URL and ensures it ends with "/" so
// relative paths resolve beneath it.
func NormalizeBaseURL(raw string) (string, error) {
	parsed, err := parseServiceURL(raw)
	if err != nil {
		return "", err
	}

	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
		if parsed.RawPath != "" {
			parsed.RawPath += "/"
		}
	}

	return parsed.String(), nil
}

// NormalizeOrigin validates an http(s) URL and strips trailing slashes.
func NormalizeOrigin(raw string) (string, error) {
	parsed, err := parseServiceURL(raw)
	if err != nil {
		return "", err
	}

	return strings.TrimRight(parsed.String(), "/"), nil
}

func parseServiceURL(raw string) (*url.URL, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", metrifox.ErrInvalidBaseURL, raw, err)
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("%w %q: scheme must be http or https and host is required", metrifox.ErrInvalidBaseURL, raw)
	}

	if parsed.RawQuery != "" || parsed.Fragment != "" {
		return nil, fmt.Errorf("%w %q: query and fragment are not allowed", metrifox.ErrInvalidBaseURL, raw)
	}

	return parsed, nil
}
