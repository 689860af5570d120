package sitemap

import (
	"strings"
	"time"

	"github.com/brightpath-ai/website/internal/registry"
)

// ChangeFreq is the sitemaps.org change-frequency hint.
type ChangeFreq string

const (
	Always  ChangeFreq = "always"
	Hourly  ChangeFreq = "hourly"
	Daily   ChangeFreq = "daily"
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
	Yearly  ChangeFreq = "yearly"
	Never   ChangeFreq = "never"
)

// Entry is one URL record in the generated sitemap. Entries are derived
// transiently from the registry and never persisted.
type Entry struct {
	URL          string
	LastModified time.Time
	ChangeFreq   ChangeFreq
	Priority     float64
}

// Generator produces the complete list of indexable URLs from the entity
// registry. buildTime stamps everything that has no date of its own, so a
// generator constructed with a fixed time is fully deterministic: same
// registry in, same sitemap out.
type Generator struct {
	reg       *registry.Registry
	origin    string
	buildTime time.Time
}

// NewGenerator returns a Generator rooted at origin (no trailing slash).
func NewGenerator(reg *registry.Registry, origin string, buildTime time.Time) *Generator {
	return &Generator{
		reg:       reg,
		origin:    strings.TrimRight(origin, "/"),
		buildTime: buildTime,
	}
}

// Generate enumerates every indexable URL, grouped in a fixed order: core
// pages, services, city pillars, the full city x solution cross-product,
// published industries, city x published-industry, then the blog. No
// global sort is applied; group concatenation order is the output order.
func (g *Generator) Generate() []Entry {
	var entries []Entry

	// Core singleton pages with hand-assigned priorities.
	entries = append(entries,
		g.entry("/", Weekly, 1.0),
		g.entry("/services", Weekly, 0.9),
		g.entry("/locations", Weekly, 0.9),
		g.entry("/industries", Weekly, 0.8),
		g.entry("/contact", Monthly, 0.7),
		g.entry("/privacy", Yearly, 0.3),
		g.entry("/terms", Yearly, 0.3),
	)

	// One entry per solution.
	for _, slug := range g.reg.SolutionSlugs() {
		entries = append(entries, g.entry("/services/"+slug, Weekly, 0.8))
	}

	// One entry per city pillar page.
	for _, slug := range g.reg.CitySlugs() {
		entries = append(entries, g.entry("/locations/"+slug, Weekly, 0.8))
	}

	// Full city x solution cross-product, unconditionally.
	for _, citySlug := range g.reg.CitySlugs() {
		for _, solSlug := range g.reg.SolutionSlugs() {
			entries = append(entries, g.entry("/locations/"+citySlug+"/"+solSlug, Weekly, 0.7))
		}
	}

	// Published industries only. Unpublished ones are reachable if linked
	// directly but must never be crawlable from here.
	published := g.reg.PublishedIndustries()
	for _, ind := range published {
		entries = append(entries, g.entry("/industries/"+ind.Key, Weekly, 0.7))
	}

	// City x published-industry. The same publication filter applies; an
	// unpublished industry contributes zero entries to this join.
	for _, citySlug := range g.reg.CitySlugs() {
		for _, ind := range published {
			entries = append(entries, g.entry("/locations/"+citySlug+"/industries/"+ind.Key, Monthly, 0.6))
		}
	}

	// Blog index plus one entry per post, stamped with the post's own
	// date rather than the build time.
	entries = append(entries, g.entry("/blog", Daily, 0.8))
	for _, post := range g.reg.Posts() {
		published, _ := post.Published()
		entries = append(entries, Entry{
			URL:          g.origin + "/blog/" + post.Slug,
			LastModified: published,
			ChangeFreq:   Monthly,
			Priority:     0.6,
		})
	}

	return entries
}

func (g *Generator) entry(path string, freq ChangeFreq, priority float64) Entry {
	url := g.origin
	if path != "/" {
		url += path
	}
	return Entry{
		URL:          url,
		LastModified: g.buildTime,
		ChangeFreq:   freq,
		Priority:     priority,
	}
}
