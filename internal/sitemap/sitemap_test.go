package sitemap

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightpath-ai/website/internal/model"
	"github.com/brightpath-ai/website/internal/registry"
)

const testOrigin = "https://www.example.com"

var testBuildTime = time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)

// Fixture: 3 cities, 2 solutions, 2 published + 1 unpublished industries,
// 2 posts. Expected combinatorics: 3x2=6 city-solution pages and 3x2=6
// city-industry pages.
func fixtureRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.New(
		[]model.City{
			{Slug: "springfield", Name: "Springfield", State: "IL"},
			{Slug: "riverton", Name: "Riverton", State: "IL"},
			{Slug: "lakeside", Name: "Lakeside", State: "WI"},
		},
		[]model.Solution{
			{Slug: "voice", Name: "Voice Agents"},
			{Slug: "chat", Name: "Chat Agents"},
		},
		[]model.Industry{
			{Key: "legal", Name: "Law Firms", Published: true},
			{Key: "healthcare", Name: "Healthcare", Published: true},
			{Key: "ecommerce", Name: "E-Commerce", Published: false},
		},
		[]model.BlogPost{
			{Slug: "first-post", Title: "First", Date: "2025-07-01"},
			{Slug: "second-post", Title: "Second", Date: "2025-08-15"},
		},
	)
	require.NoError(t, err)
	return reg
}

func generate(t *testing.T) []Entry {
	t.Helper()
	return NewGenerator(fixtureRegistry(t), testOrigin, testBuildTime).Generate()
}

// pathSegments splits the path under the origin.
func pathSegments(url string) []string {
	path := strings.TrimPrefix(url, testOrigin)
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func TestCrossProductCardinality(t *testing.T) {
	entries := generate(t)

	var citySolution, cityIndustry int
	for _, e := range entries {
		segs := pathSegments(e.URL)
		switch {
		case len(segs) == 3 && segs[0] == "locations" && segs[1] != "industries":
			// /locations/:city/:solution
			citySolution++
		case len(segs) == 4 && segs[0] == "locations" && segs[2] == "industries":
			// /locations/:city/industries/:key
			cityIndustry++
		}
	}

	assert.Equal(t, 3*2, citySolution, "cities x solutions is unconditional")
	assert.Equal(t, 3*2, cityIndustry, "cities x published industries only")
}

func TestNoUnpublishedIndustryLeakage(t *testing.T) {
	entries := generate(t)

	for _, e := range entries {
		assert.NotContains(t, e.URL, "ecommerce", "unpublished industry key must not appear anywhere in the sitemap")
	}
}

func TestEveryURLIsWellFormed(t *testing.T) {
	entries := generate(t)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		assert.True(t, strings.HasPrefix(e.URL, testOrigin), "URL %q must start with the origin", e.URL)
		assert.Equal(t, e.URL, strings.TrimSpace(e.URL))
		assert.NotContains(t, strings.TrimPrefix(e.URL, testOrigin), "//")
		assert.GreaterOrEqual(t, e.Priority, 0.0)
		assert.LessOrEqual(t, e.Priority, 1.0)
	}
}

func TestNoDuplicateURLs(t *testing.T) {
	entries := generate(t)

	warnings := Validate(entries, testOrigin)
	assert.Empty(t, warnings, "generated sitemap must validate clean")
}

func TestBlogEntriesUsePostDates(t *testing.T) {
	entries := generate(t)

	var found bool
	for _, e := range entries {
		if e.URL == testOrigin+"/blog/second-post" {
			found = true
			assert.Equal(t, "2025-08-15", e.LastModified.Format("2006-01-02"))
		}
	}
	require.True(t, found, "sitemap must contain every blog post")
}

func TestCorePagesPresent(t *testing.T) {
	entries := generate(t)

	urls := make(map[string]Entry, len(entries))
	for _, e := range entries {
		urls[e.URL] = e
	}

	home, ok := urls[testOrigin]
	require.True(t, ok, "homepage entry missing")
	assert.Equal(t, 1.0, home.Priority)

	for _, path := range []string{"/services", "/locations", "/industries", "/contact", "/privacy", "/terms", "/blog"} {
		_, ok := urls[testOrigin+path]
		assert.True(t, ok, "core page %s missing", path)
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	first := NewGenerator(fixtureRegistry(t), testOrigin, testBuildTime).Generate()
	second := NewGenerator(fixtureRegistry(t), testOrigin, testBuildTime).Generate()

	var bufA, bufB bytes.Buffer
	require.NoError(t, WriteXML(&bufA, first))
	require.NoError(t, WriteXML(&bufB, second))

	assert.Equal(t, bufA.Bytes(), bufB.Bytes(), "same registry and build time must produce byte-identical XML")
}

func TestWriteXMLShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXML(&buf, []Entry{
		{URL: testOrigin + "/services", LastModified: testBuildTime, ChangeFreq: Weekly, Priority: 0.9},
	}))

	out := buf.String()
	assert.Contains(t, out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, out, "<loc>https://www.example.com/services</loc>")
	assert.Contains(t, out, "<lastmod>2025-08-30</lastmod>")
	assert.Contains(t, out, "<changefreq>weekly</changefreq>")
	assert.Contains(t, out, "<priority>0.9</priority>")
}
