package sanitize

import (
	"regexp"
	"strings"
)

// Redacted replaces credential material in sanitized URLs.
const Redacted = "[REDACTED]"

var (
	// Path-embedded keys, e.g. https://host/v6/{key}/pair/USD/EUR. The key
	// segment is a long opaque token; short segments like /v1/users stay
	// untouched. The marker itself also matches, keeping URL idempotent.
	pathKeyPattern = regexp.MustCompile(`(/v\d+/)([A-Za-z0-9_-]{16,}|\[REDACTED\])(/)`)

	// Query parameter names that carry credentials.
	queryKeyPattern = regexp.MustCompile(`([?&](?:api_key|apikey|key|token|access_token)=)[^&\s]*`)
)

// URL redacts credential material embedded in a URL so the result is safe
// for logs and error payloads. It handles keys carried as a version path
// segment and as a query parameter, preserving everything else verbatim.
// Applying it twice yields the same result as once.
func URL(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return raw
	}

	out := pathKeyPattern.ReplaceAllString(raw, "${1}"+Redacted+"${3}")
	out = queryKeyPattern.ReplaceAllString(out, "${1}"+Redacted)
	return out
}
