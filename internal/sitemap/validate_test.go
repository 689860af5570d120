package sitemap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateDetectsDuplicateURLs(t *testing.T) {
	now := time.Now()
	entries := []Entry{
		{URL: testOrigin + "/services", LastModified: now, ChangeFreq: Weekly, Priority: 0.9},
		{URL: testOrigin + "/services", LastModified: now, ChangeFreq: Weekly, Priority: 0.9},
	}

	warnings := Validate(entries, testOrigin)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Reason, "duplicate")
}

func TestValidateDetectsForeignOrigin(t *testing.T) {
	entries := []Entry{
		{URL: "https://evil.example.org/services", ChangeFreq: Weekly, Priority: 0.5},
	}

	warnings := Validate(entries, testOrigin)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Reason, "not under origin")
}

func TestValidateDetectsDoubleSlashAndWhitespace(t *testing.T) {
	entries := []Entry{
		{URL: testOrigin + "//services", ChangeFreq: Weekly, Priority: 0.5},
		{URL: testOrigin + "/contact ", ChangeFreq: Weekly, Priority: 0.5},
	}

	warnings := Validate(entries, testOrigin)
	reasons := make([]string, len(warnings))
	for i, w := range warnings {
		reasons[i] = w.Reason
	}
	assert.Contains(t, reasons, "URL contains a double slash")
	assert.Contains(t, reasons, "URL has surrounding whitespace")
}

func TestValidateDetectsPriorityOutOfRange(t *testing.T) {
	entries := []Entry{
		{URL: testOrigin + "/services", ChangeFreq: Weekly, Priority: 1.5},
	}

	warnings := Validate(entries, testOrigin)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Reason, "outside [0,1]")
}

func TestValidateIsAdvisoryOnly(t *testing.T) {
	// Validate never mutates or filters; callers always emit what was
	// generated.
	entries := []Entry{
		{URL: testOrigin + "/a", ChangeFreq: Weekly, Priority: 0.5},
		{URL: testOrigin + "/a", ChangeFreq: Weekly, Priority: 0.5},
	}
	_ = Validate(entries, testOrigin)
	assert.Len(t, entries, 2)
}
