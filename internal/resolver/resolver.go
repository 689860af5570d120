package resolver

import (
	"errors"
	"fmt"

	"github.com/brightpath-ai/website/internal/model"
	"github.com/brightpath-ai/website/internal/registry"
)

// ErrNotFound is returned when a path parameter does not match any entity.
// Callers turn it into a 404; it never escapes the page boundary.
var ErrNotFound = errors.New("not found")

// ServicePage is the resolved entity set for /services/:solution.
type ServicePage struct {
	Solution *model.Solution
}

// IndustryPage is the resolved entity set for /industries/:industry.
type IndustryPage struct {
	Industry *model.Industry
}

// CityPage is the resolved entity set for /locations/:city.
type CityPage struct {
	City *model.City
}

// CitySolutionPage is the resolved entity set for /locations/:city/:solution.
type CitySolutionPage struct {
	City     *model.City
	Solution *model.Solution
}

// CityIndustryPage is the resolved entity set for
// /locations/:city/industries/:industry.
type CityIndustryPage struct {
	City     *model.City
	Industry *model.Industry
}

// PostPage is the resolved entity set for /blog/:slug.
type PostPage struct {
	Post *model.BlogPost
}

// ResolveService resolves a solution slug.
func ResolveService(reg *registry.Registry, slug string) (*ServicePage, error) {
	sol := reg.SolutionBySlug(slug)
	if sol == nil {
		return nil, fmt.Errorf("solution %q: %w", slug, ErrNotFound)
	}
	return &ServicePage{Solution: sol}, nil
}

// ResolveIndustry resolves an industry key. Unpublished industries resolve
// successfully; publication gates sitemap listing, not direct reachability.
func ResolveIndustry(reg *registry.Registry, key string) (*IndustryPage, error) {
	ind := reg.IndustryByKey(key)
	if ind == nil {
		return nil, fmt.Errorf("industry %q: %w", key, ErrNotFound)
	}
	return &IndustryPage{Industry: ind}, nil
}

// ResolveCity resolves a city slug.
func ResolveCity(reg *registry.Registry, slug string) (*CityPage, error) {
	city := reg.CityBySlug(slug)
	if city == nil {
		return nil, fmt.Errorf("city %q: %w", slug, ErrNotFound)
	}
	return &CityPage{City: city}, nil
}

// ResolveCitySolution resolves both parameters of a city/solution page.
// Resolution is all-or-nothing: if either slug misses, the whole page is
// not found. No partial pages are rendered with half the data.
func ResolveCitySolution(reg *registry.Registry, citySlug, solutionSlug string) (*CitySolutionPage, error) {
	city := reg.CityBySlug(citySlug)
	if city == nil {
		return nil, fmt.Errorf("city %q: %w", citySlug, ErrNotFound)
	}
	sol := reg.SolutionBySlug(solutionSlug)
	if sol == nil {
		return nil, fmt.Errorf("solution %q: %w", solutionSlug, ErrNotFound)
	}
	return &CitySolutionPage{City: city, Solution: sol}, nil
}

// ResolveCityIndustry resolves both parameters of a city/industry page,
// with the same all-or-nothing policy as city/solution pages.
func ResolveCityIndustry(reg *registry.Registry, citySlug, industryKey string) (*CityIndustryPage, error) {
	city := reg.CityBySlug(citySlug)
	if city == nil {
		return nil, fmt.Errorf("city %q: %w", citySlug, ErrNotFound)
	}
	ind := reg.IndustryByKey(industryKey)
	if ind == nil {
		return nil, fmt.Errorf("industry %q: %w", industryKey, ErrNotFound)
	}
	return &CityIndustryPage{City: city, Industry: ind}, nil
}

// ResolvePost resolves a blog post slug.
func ResolvePost(reg *registry.Registry, slug string) (*PostPage, error) {
	post := reg.PostBySlug(slug)
	if post == nil {
		return nil, fmt.Errorf("post %q: %w", slug, ErrNotFound)
	}
	return &PostPage{Post: post}, nil
}
