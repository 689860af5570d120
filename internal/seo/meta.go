package seo

import (
	"fmt"
	"strings"

	"github.com/brightpath-ai/website/internal/model"
)

// maxDescription is the search-snippet budget. Descriptions longer than
// this are truncated at a word boundary.
const maxDescription = 160

// Config carries the site-wide constants every derived tag depends on.
type Config struct {
	Origin        string // absolute site origin, no trailing slash
	Brand         string
	DefaultImage  string // OG image fallback, absolute or origin-relative
	TwitterSite   string
	DedupKeywords bool
}

// OpenGraph holds the og: tag set for a page.
type OpenGraph struct {
	Title       string
	Description string
	URL         string
	Image       string
	Type        string
}

// Twitter holds the twitter: card tag set for a page.
type Twitter struct {
	Card        string
	Site        string
	Title       string
	Description string
	Image       string
}

// Geo holds the geo.* meta tags emitted on city pages.
type Geo struct {
	Region    string
	Placename string
	Position  string
}

// Meta is the full derived metadata for one page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Keywords    []string
	OG          OpenGraph
	Twitter     Twitter
	Geo         *Geo
	JSONLD      *Graph
}

// Synthesizer derives page metadata from resolved entities. All methods
// are pure: same entities and config in, same metadata out.
type Synthesizer struct {
	cfg Config
}

// NewSynthesizer returns a Synthesizer for the given site config.
func NewSynthesizer(cfg Config) *Synthesizer {
	return &Synthesizer{cfg: cfg}
}

// Canonical builds the absolute canonical URL for the given path segments:
// lowercased, no trailing slash unless it is the bare origin.
func (s *Synthesizer) Canonical(segments ...string) string {
	if len(segments) == 0 {
		return s.cfg.Origin
	}
	var b strings.Builder
	b.WriteString(s.cfg.Origin)
	for _, seg := range segments {
		b.WriteByte('/')
		b.WriteString(strings.ToLower(strings.Trim(seg, "/")))
	}
	return b.String()
}

// Home derives metadata for the homepage.
func (s *Synthesizer) Home() Meta {
	title := fmt.Sprintf("%s | AI Automation Agency for Growing Businesses", s.cfg.Brand)
	desc := truncate(fmt.Sprintf("%s builds AI voice agents, chat agents, and workflow automation that answer every call, capture every lead, and hand your team their time back.", s.cfg.Brand))
	canonical := s.Canonical()

	m := s.base(title, desc, canonical, "website")
	m.JSONLD = s.graph(
		s.organization(),
		s.webPage(canonical, title, desc, nil),
	)
	return m
}

// Page derives metadata for a static or index page (contact, legal, the
// services/locations/industries/blog indexes).
func (s *Synthesizer) Page(name, description string, segments ...string) Meta {
	title := fmt.Sprintf("%s | %s", name, s.cfg.Brand)
	desc := truncate(description)
	canonical := s.Canonical(segments...)

	m := s.base(title, desc, canonical, "website")
	crumbs := s.breadcrumb(canonical, crumb{name: name})
	m.JSONLD = s.graph(
		s.organization(),
		s.webPage(canonical, title, desc, crumbs),
		crumbs,
	)
	return m
}

// Service derives metadata for a solution detail page.
func (s *Synthesizer) Service(sol *model.Solution) Meta {
	title := fmt.Sprintf("%s - %s | %s", sol.Name, sol.Tagline, s.cfg.Brand)
	desc := truncate(sol.Description)
	canonical := s.Canonical("services", sol.Slug)

	m := s.base(title, desc, canonical, "website")
	m.Keywords = s.keywords(serviceKeywords(sol))

	crumbs := s.breadcrumb(canonical,
		crumb{name: "Services", url: s.Canonical("services")},
		crumb{name: sol.Name},
	)
	nodes := []any{
		s.organization(),
		s.webPage(canonical, title, desc, crumbs),
		crumbs,
		s.service(canonical, sol, nil),
	}
	if len(sol.FAQs) > 0 {
		nodes = append(nodes, s.faqPage(canonical, sol.FAQs))
	}
	m.JSONLD = s.graph(nodes...)
	return m
}

// Industry derives metadata for an industry detail page.
func (s *Synthesizer) Industry(ind *model.Industry) Meta {
	title := fmt.Sprintf("AI Automation for %s | %s", ind.Name, s.cfg.Brand)
	desc := ind.Description
	if desc == "" {
		desc = fmt.Sprintf("AI voice agents, chat agents, and workflow automation built for %s.", strings.ToLower(ind.Name))
	}
	desc = truncate(desc)
	canonical := s.Canonical("industries", ind.Key)

	m := s.base(title, desc, canonical, "website")
	crumbs := s.breadcrumb(canonical,
		crumb{name: "Industries", url: s.Canonical("industries")},
		crumb{name: ind.Name},
	)
	m.JSONLD = s.graph(
		s.organization(),
		s.webPage(canonical, title, desc, crumbs),
		crumbs,
	)
	return m
}

// City derives metadata for a city pillar page, including geo tags.
func (s *Synthesizer) City(city *model.City) Meta {
	title := fmt.Sprintf("AI Automation Agency in %s, %s | %s", city.Name, city.State, s.cfg.Brand)
	desc := truncate(fmt.Sprintf("AI voice agents, chat agents, and workflow automation for %s businesses. Local implementation, measurable ROI, live in weeks.", city.Name))
	canonical := s.Canonical("locations", city.Slug)

	m := s.base(title, desc, canonical, "website")
	m.Geo = s.geo(city)
	m.Keywords = s.keywords(cityKeywords(city))

	crumbs := s.breadcrumb(canonical,
		crumb{name: "Locations", url: s.Canonical("locations")},
		crumb{name: city.Name},
	)
	m.JSONLD = s.graph(
		s.organization(),
		s.webPage(canonical, title, desc, crumbs),
		crumbs,
	)
	return m
}

// CitySolution derives metadata for a city/solution combination page.
// industryNames are the display names of the solution's linked industries,
// used as keyword modifiers.
func (s *Synthesizer) CitySolution(city *model.City, sol *model.Solution, industryNames []string) Meta {
	title := fmt.Sprintf("%s in %s, %s | %s", sol.Name, city.Name, city.State, s.cfg.Brand)
	desc := truncate(fmt.Sprintf("%s for %s businesses. %s", sol.Name, city.Name, sol.Description))
	canonical := s.Canonical("locations", city.Slug, sol.Slug)

	m := s.base(title, desc, canonical, "website")
	m.Geo = s.geo(city)
	m.Keywords = s.keywords(citySolutionKeywords(city, sol, industryNames))

	crumbs := s.breadcrumb(canonical,
		crumb{name: "Locations", url: s.Canonical("locations")},
		crumb{name: city.Name, url: s.Canonical("locations", city.Slug)},
		crumb{name: sol.Name},
	)
	nodes := []any{
		s.organization(),
		s.webPage(canonical, title, desc, crumbs),
		crumbs,
		s.service(canonical, sol, city),
	}
	if len(sol.FAQs) > 0 {
		nodes = append(nodes, s.faqPage(canonical, sol.FAQs))
	}
	m.JSONLD = s.graph(nodes...)
	return m
}

// CityIndustry derives metadata for a city/industry combination page.
func (s *Synthesizer) CityIndustry(city *model.City, ind *model.Industry) Meta {
	title := fmt.Sprintf("AI Automation for %s in %s, %s | %s", ind.Name, city.Name, city.State, s.cfg.Brand)
	desc := ind.Description
	if desc == "" {
		desc = fmt.Sprintf("AI automation built for %s.", strings.ToLower(ind.Name))
	}
	desc = truncate(fmt.Sprintf("%s businesses: %s", city.Name, desc))
	canonical := s.Canonical("locations", city.Slug, "industries", ind.Key)

	m := s.base(title, desc, canonical, "website")
	m.Geo = s.geo(city)

	crumbs := s.breadcrumb(canonical,
		crumb{name: "Locations", url: s.Canonical("locations")},
		crumb{name: city.Name, url: s.Canonical("locations", city.Slug)},
		crumb{name: ind.Name},
	)
	m.JSONLD = s.graph(
		s.organization(),
		s.webPage(canonical, title, desc, crumbs),
		crumbs,
	)
	return m
}

// Post derives metadata for a blog article page.
func (s *Synthesizer) Post(post *model.BlogPost) Meta {
	title := fmt.Sprintf("%s | %s", post.Title, s.cfg.Brand)
	desc := truncate(post.Description)
	canonical := s.Canonical("blog", post.Slug)

	m := s.base(title, desc, canonical, "article")
	if post.Hero != "" {
		m.OG.Image = s.absolute(post.Hero)
		m.Twitter.Image = m.OG.Image
	}
	crumbs := s.breadcrumb(canonical,
		crumb{name: "Blog", url: s.Canonical("blog")},
		crumb{name: post.Title},
	)
	m.JSONLD = s.graph(
		s.organization(),
		s.webPage(canonical, title, desc, crumbs),
		crumbs,
		s.blogPosting(canonical, post),
	)
	return m
}

// Fallback is the minimal metadata for pages that failed resolution. It
// must never fail itself; 404 rendering depends on it.
func (s *Synthesizer) Fallback() Meta {
	title := fmt.Sprintf("Page Not Found | %s", s.cfg.Brand)
	desc := "The page you are looking for does not exist or has moved."
	return s.base(title, desc, s.cfg.Origin, "website")
}

// base fills the fields every page shares: title/description mirrored into
// OG and Twitter, default image, canonical.
func (s *Synthesizer) base(title, desc, canonical, ogType string) Meta {
	image := s.absolute(s.cfg.DefaultImage)
	return Meta{
		Title:       title,
		Description: desc,
		Canonical:   canonical,
		OG: OpenGraph{
			Title:       title,
			Description: desc,
			URL:         canonical,
			Image:       image,
			Type:        ogType,
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Site:        s.cfg.TwitterSite,
			Title:       title,
			Description: desc,
			Image:       image,
		},
	}
}

func (s *Synthesizer) geo(city *model.City) *Geo {
	return &Geo{
		Region:    "US-" + city.State,
		Placename: city.Name,
		Position:  fmt.Sprintf("%g;%g", city.Lat, city.Lng),
	}
}

func (s *Synthesizer) keywords(raw []string) []string {
	if s.cfg.DedupKeywords {
		return dedupe(raw)
	}
	return raw
}

// absolute resolves an origin-relative path against the site origin;
// already-absolute URLs pass through.
func (s *Synthesizer) absolute(path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return s.cfg.Origin + "/" + strings.TrimPrefix(path, "/")
}

// truncate cuts s to the snippet budget at a word boundary.
func truncate(s string) string {
	if len(s) <= maxDescription {
		return s
	}
	cut := s[:maxDescription-3]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,;:.") + "..."
}
