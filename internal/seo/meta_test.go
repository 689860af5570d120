package seo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightpath-ai/website/internal/model"
)

func testConfig() Config {
	return Config{
		Origin:       "https://www.example.com",
		Brand:        "Example AI",
		DefaultImage: "/static/img/og-default.jpg",
		TwitterSite:  "@exampleai",
	}
}

func testCity() *model.City {
	return &model.City{
		Slug: "springfield", Name: "Springfield", State: "IL",
		Lat: 39.78, Lng: -89.65,
		Neighborhoods: []string{"Downtown", "Westside"},
	}
}

func testSolution() *model.Solution {
	return &model.Solution{
		Slug: "voice", Name: "Voice Agents", ShortName: "Voice",
		Tagline:     "Never miss a call",
		Description: "AI receptionists that answer every call.",
		FAQs: []model.FAQ{
			{Question: "Does it work?", Answer: "Yes."},
		},
	}
}

func testIndustry() *model.Industry {
	return &model.Industry{Key: "legal", Name: "Law Firms", Published: true}
}

func testPost() *model.BlogPost {
	return &model.BlogPost{
		Slug: "hello", Title: "Hello World", Description: "An article.",
		Date: "2025-08-01", Author: "Jane Doe", Hero: "/static/img/hello.jpg",
	}
}

func TestCanonicalShape(t *testing.T) {
	syn := NewSynthesizer(testConfig())

	assert.Equal(t, "https://www.example.com", syn.Canonical())
	assert.Equal(t, "https://www.example.com/services/voice", syn.Canonical("services", "voice"))
	// Lowercased, no trailing slash, stray slashes trimmed.
	assert.Equal(t, "https://www.example.com/locations/springfield", syn.Canonical("Locations", "Springfield/"))
}

func TestDescriptionStaysWithinSnippetBudget(t *testing.T) {
	syn := NewSynthesizer(testConfig())
	sol := testSolution()
	sol.Description = strings.Repeat("a very long marketing sentence ", 20)

	meta := syn.Service(sol)
	assert.LessOrEqual(t, len(meta.Description), maxDescription)
	assert.False(t, strings.HasSuffix(meta.Description, " "))
}

func TestOpenGraphMirrorsTitleAndDescription(t *testing.T) {
	syn := NewSynthesizer(testConfig())

	meta := syn.Service(testSolution())
	assert.Equal(t, meta.Title, meta.OG.Title)
	assert.Equal(t, meta.Description, meta.OG.Description)
	assert.Equal(t, meta.Canonical, meta.OG.URL)
	assert.Equal(t, meta.Title, meta.Twitter.Title)
	assert.Equal(t, "https://www.example.com/static/img/og-default.jpg", meta.OG.Image)
}

func TestCityMetaCarriesGeoTags(t *testing.T) {
	syn := NewSynthesizer(testConfig())

	meta := syn.City(testCity())
	require.NotNil(t, meta.Geo)
	assert.Equal(t, "US-IL", meta.Geo.Region)
	assert.Equal(t, "Springfield", meta.Geo.Placename)
	assert.Equal(t, "39.78;-89.65", meta.Geo.Position)
}

func TestPostHeroImageFallback(t *testing.T) {
	syn := NewSynthesizer(testConfig())

	withHero := &model.BlogPost{Slug: "a", Title: "A", Date: "2025-08-01", Hero: "/static/img/a.jpg"}
	meta := syn.Post(withHero)
	assert.Equal(t, "https://www.example.com/static/img/a.jpg", meta.OG.Image)

	noHero := &model.BlogPost{Slug: "b", Title: "B", Date: "2025-08-01"}
	meta = syn.Post(noHero)
	assert.Equal(t, "https://www.example.com/static/img/og-default.jpg", meta.OG.Image)
}

func TestCitySolutionMeta(t *testing.T) {
	syn := NewSynthesizer(testConfig())

	meta := syn.CitySolution(testCity(), testSolution(), []string{"Law Firms"})
	assert.Equal(t, "Voice Agents in Springfield, IL | Example AI", meta.Title)
	assert.Equal(t, "https://www.example.com/locations/springfield/voice", meta.Canonical)
	require.NotNil(t, meta.Geo)
	assert.NotEmpty(t, meta.Keywords)
}

func TestFallbackMetaIsComplete(t *testing.T) {
	syn := NewSynthesizer(testConfig())

	meta := syn.Fallback()
	assert.NotEmpty(t, meta.Title)
	assert.NotEmpty(t, meta.Description)
	assert.Equal(t, "https://www.example.com", meta.Canonical)
	assert.NotEmpty(t, meta.OG.Image)
}
