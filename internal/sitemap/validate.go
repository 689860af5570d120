package sitemap

import (
	"fmt"
	"strings"
)

// Warning is one advisory finding from Validate. Warnings are logged for
// operator review and never block emission; a slightly imperfect sitemap
// beats no sitemap.
type Warning struct {
	URL    string
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.URL, w.Reason)
}

// Validate scans generated entries for duplicate URLs and malformed URLs
// relative to the configured origin. It is separate from Generate so the
// checks can run in isolation.
func Validate(entries []Entry, origin string) []Warning {
	origin = strings.TrimRight(origin, "/")
	var warnings []Warning

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.URL]; dup {
			warnings = append(warnings, Warning{URL: e.URL, Reason: "duplicate URL"})
		}
		seen[e.URL] = struct{}{}

		if !strings.HasPrefix(e.URL, origin) {
			warnings = append(warnings, Warning{URL: e.URL, Reason: fmt.Sprintf("URL not under origin %s", origin)})
		}
		if e.URL != strings.TrimSpace(e.URL) {
			warnings = append(warnings, Warning{URL: e.URL, Reason: "URL has surrounding whitespace"})
		}
		if path := strings.TrimPrefix(e.URL, origin); strings.Contains(path, "//") {
			warnings = append(warnings, Warning{URL: e.URL, Reason: "URL contains a double slash"})
		}
		if e.Priority < 0 || e.Priority > 1 {
			warnings = append(warnings, Warning{URL: e.URL, Reason: fmt.Sprintf("priority %.2f outside [0,1]", e.Priority)})
		}
	}

	return warnings
}
