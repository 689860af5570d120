package registry

import (
	"fmt"
	"sort"

	"github.com/brightpath-ai/website/internal/model"
)

// Registry is the immutable set of entity tables the site renders from.
// It is built once at startup (or from fixtures in tests) and passed
// explicitly to whatever needs it; nothing mutates it afterwards.
type Registry struct {
	cities     []model.City
	solutions  []model.Solution
	industries []model.Industry
	posts      []model.BlogPost

	cityIndex     map[string]int
	solutionIndex map[string]int
	industryIndex map[string]int
	postIndex     map[string]int
}

// New validates the tables and builds a Registry. Validation failures are
// load-time errors: duplicate slugs, blog dates that do not parse, solution
// industry references that do not exist, and unknown industry icons all
// reject the whole registry.
func New(cities []model.City, solutions []model.Solution, industries []model.Industry, posts []model.BlogPost) (*Registry, error) {
	r := &Registry{
		cities:     cities,
		solutions:  solutions,
		industries: industries,
		posts:      posts,

		cityIndex:     make(map[string]int, len(cities)),
		solutionIndex: make(map[string]int, len(solutions)),
		industryIndex: make(map[string]int, len(industries)),
		postIndex:     make(map[string]int, len(posts)),
	}

	for i, c := range cities {
		if c.Slug == "" {
			return nil, fmt.Errorf("city %q has an empty slug", c.Name)
		}
		if _, dup := r.cityIndex[c.Slug]; dup {
			return nil, fmt.Errorf("duplicate city slug %q", c.Slug)
		}
		r.cityIndex[c.Slug] = i
	}

	for i, ind := range industries {
		if ind.Key == "" {
			return nil, fmt.Errorf("industry %q has an empty key", ind.Name)
		}
		if _, dup := r.industryIndex[ind.Key]; dup {
			return nil, fmt.Errorf("duplicate industry key %q", ind.Key)
		}
		if ind.Icon != "" && !model.ValidIcon(ind.Icon) {
			return nil, fmt.Errorf("industry %q references unknown icon %q", ind.Key, ind.Icon)
		}
		r.industryIndex[ind.Key] = i
	}

	for i, s := range solutions {
		if s.Slug == "" {
			return nil, fmt.Errorf("solution %q has an empty slug", s.Name)
		}
		if _, dup := r.solutionIndex[s.Slug]; dup {
			return nil, fmt.Errorf("duplicate solution slug %q", s.Slug)
		}
		for _, key := range s.Industries {
			if _, ok := r.industryIndex[key]; !ok {
				return nil, fmt.Errorf("solution %q references unknown industry %q", s.Slug, key)
			}
		}
		r.solutionIndex[s.Slug] = i
	}

	for i, p := range posts {
		if p.Slug == "" {
			return nil, fmt.Errorf("post %q has an empty slug", p.Title)
		}
		if _, dup := r.postIndex[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate post slug %q", p.Slug)
		}
		if _, err := p.Published(); err != nil {
			return nil, fmt.Errorf("post %q has invalid date %q: %w", p.Slug, p.Date, err)
		}
		r.postIndex[p.Slug] = i
	}

	return r, nil
}

// Default builds the production registry from the seed tables. A failure
// here means the seed data itself is broken and the binary must not serve.
func Default() (*Registry, error) {
	return New(cityTable, solutionTable, industryTable, postTable)
}

// CityBySlug returns the city with the given slug, or nil when no city
// matches. Matching is exact and case-sensitive.
func (r *Registry) CityBySlug(slug string) *model.City {
	i, ok := r.cityIndex[slug]
	if !ok {
		return nil
	}
	return &r.cities[i]
}

// SolutionBySlug returns the solution with the given slug, or nil.
func (r *Registry) SolutionBySlug(slug string) *model.Solution {
	i, ok := r.solutionIndex[slug]
	if !ok {
		return nil
	}
	return &r.solutions[i]
}

// IndustryByKey returns the industry with the given key, or nil. Unpublished
// industries resolve like any other; publication gates listing, not lookup.
func (r *Registry) IndustryByKey(key string) *model.Industry {
	i, ok := r.industryIndex[key]
	if !ok {
		return nil
	}
	return &r.industries[i]
}

// PostBySlug returns the blog post with the given slug, or nil.
func (r *Registry) PostBySlug(slug string) *model.BlogPost {
	i, ok := r.postIndex[slug]
	if !ok {
		return nil
	}
	return &r.posts[i]
}

// CitySlugs returns every city slug in table order. Repeated calls return
// the same sequence, so static-path enumeration is deterministic.
func (r *Registry) CitySlugs() []string {
	slugs := make([]string, len(r.cities))
	for i, c := range r.cities {
		slugs[i] = c.Slug
	}
	return slugs
}

// SolutionSlugs returns every solution slug in table order.
func (r *Registry) SolutionSlugs() []string {
	slugs := make([]string, len(r.solutions))
	for i, s := range r.solutions {
		slugs[i] = s.Slug
	}
	return slugs
}

// Cities returns all cities in table order.
func (r *Registry) Cities() []model.City {
	out := make([]model.City, len(r.cities))
	copy(out, r.cities)
	return out
}

// Solutions returns all solutions in table order.
func (r *Registry) Solutions() []model.Solution {
	out := make([]model.Solution, len(r.solutions))
	copy(out, r.solutions)
	return out
}

// Industries returns all industries in table order, published or not.
func (r *Registry) Industries() []model.Industry {
	out := make([]model.Industry, len(r.industries))
	copy(out, r.industries)
	return out
}

// PublishedIndustries returns only industries flagged published, in table
// order. This is the set the sitemap and navigation may reference.
func (r *Registry) PublishedIndustries() []model.Industry {
	var out []model.Industry
	for _, ind := range r.industries {
		if ind.Published {
			out = append(out, ind)
		}
	}
	return out
}

// Posts returns all blog posts in table order.
func (r *Registry) Posts() []model.BlogPost {
	out := make([]model.BlogPost, len(r.posts))
	copy(out, r.posts)
	return out
}

// PostsByDateDesc returns blog posts sorted newest first. Table order is
// irrelevant; display order is always re-derived from the post date.
func (r *Registry) PostsByDateDesc() []model.BlogPost {
	out := r.Posts()
	sort.SliceStable(out, func(i, j int) bool {
		// Dates were validated in New, ignore the errors here.
		a, _ := out[i].Published()
		b, _ := out[j].Published()
		return a.After(b)
	})
	return out
}
