package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightpath-ai/website/internal/model"
	"github.com/brightpath-ai/website/internal/registry"
)

func fixtureRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.New(
		[]model.City{{Slug: "springfield", Name: "Springfield", State: "IL"}},
		[]model.Solution{{Slug: "voice", Name: "Voice Agents"}},
		[]model.Industry{
			{Key: "legal", Name: "Law Firms", Published: true},
			{Key: "retail", Name: "Retail", Published: false},
		},
		[]model.BlogPost{{Slug: "hello", Title: "Hello", Date: "2025-08-01"}},
	)
	require.NoError(t, err)
	return reg
}

func TestResolveServiceSuccess(t *testing.T) {
	reg := fixtureRegistry(t)

	page, err := ResolveService(reg, "voice")
	require.NoError(t, err)
	assert.Equal(t, "Voice Agents", page.Solution.Name)
}

func TestResolveServiceNotFound(t *testing.T) {
	reg := fixtureRegistry(t)

	_, err := ResolveService(reg, "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveCitySolutionAllOrNothing(t *testing.T) {
	reg := fixtureRegistry(t)

	// Both resolve.
	page, err := ResolveCitySolution(reg, "springfield", "voice")
	require.NoError(t, err)
	assert.Equal(t, "Springfield", page.City.Name)
	assert.Equal(t, "Voice Agents", page.Solution.Name)

	// Valid city, bad solution: the whole page is not found.
	_, err = ResolveCitySolution(reg, "springfield", "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)

	// Bad city, valid solution: same outcome.
	_, err = ResolveCitySolution(reg, "does-not-exist", "voice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveUnpublishedIndustrySucceeds(t *testing.T) {
	reg := fixtureRegistry(t)

	// Publication gates sitemap listing, not direct resolution.
	page, err := ResolveIndustry(reg, "retail")
	require.NoError(t, err)
	assert.False(t, page.Industry.Published)
}

func TestResolveCityIndustryAllOrNothing(t *testing.T) {
	reg := fixtureRegistry(t)

	page, err := ResolveCityIndustry(reg, "springfield", "retail")
	require.NoError(t, err)
	assert.Equal(t, "Retail", page.Industry.Name)

	_, err = ResolveCityIndustry(reg, "springfield", "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ResolveCityIndustry(reg, "does-not-exist", "retail")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolvePostNotFoundNeverPanics(t *testing.T) {
	reg := fixtureRegistry(t)

	for i := 0; i < 2; i++ {
		_, err := ResolvePost(reg, "does-not-exist")
		assert.ErrorIs(t, err, ErrNotFound)
	}
}
