package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brightpath-ai/website/internal/model"
)

func TestKeywordDedupIsConfigurable(t *testing.T) {
	city := &model.City{
		Slug: "springfield", Name: "Springfield", State: "IL",
		// A neighborhood that collides with a generated base keyword.
		Neighborhoods: []string{"Springfield", "Springfield"},
	}
	sol := &model.Solution{Slug: "voice", Name: "Voice Agents", ShortName: "Voice"}

	raw := NewSynthesizer(Config{Origin: "https://www.example.com", Brand: "X"})
	meta := raw.CitySolution(city, sol, nil)
	rawCount := len(meta.Keywords)

	deduped := NewSynthesizer(Config{Origin: "https://www.example.com", Brand: "X", DedupKeywords: true})
	meta = deduped.CitySolution(city, sol, nil)

	assert.Less(t, len(meta.Keywords), rawCount, "dedup should collapse the duplicate neighborhood keywords")
	seen := map[string]int{}
	for _, kw := range meta.Keywords {
		seen[kw]++
		assert.Equal(t, 1, seen[kw], "keyword %q appears more than once after dedup", kw)
	}
}

func TestDedupePreservesFirstOccurrenceOrder(t *testing.T) {
	in := []string{"b", "a", "b", "c", "a"}
	assert.Equal(t, []string{"b", "a", "c"}, dedupe(in))
}
