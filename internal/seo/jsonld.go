package seo

import (
	"encoding/json"
	"fmt"

	"github.com/brightpath-ai/website/internal/model"
)

// JSON-LD node shapes, schema.org vocabulary. Every node declares an @id
// built from the page canonical plus a stable fragment; any node that
// references another does so through Ref, so a reference can only be
// constructed from an @id string. A mismatched @id breaks the graph for
// crawlers with no visible error, which is why the fragments are constants
// and the cross-reference test walks the marshaled graph.

const (
	schemaContext        = "https://schema.org"
	fragmentOrganization = "#organization"
	fragmentWebPage      = "#webpage"
	fragmentBreadcrumb   = "#breadcrumb"
	fragmentService      = "#service"
	fragmentFAQ          = "#faq"
	fragmentArticle      = "#article"
)

// Graph is a JSON-LD document with a shared @context.
type Graph struct {
	Context string `json:"@context"`
	Nodes   []any  `json:"@graph"`
}

// Script renders the graph as the body of an application/ld+json tag.
func (g *Graph) Script() (string, error) {
	b, err := json.Marshal(g)
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON-LD graph: %w", err)
	}
	return string(b), nil
}

// Ref is a reference to another node by @id.
type Ref struct {
	ID string `json:"@id"`
}

// Organization is the schema.org Organization node for the brand.
type Organization struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Logo string `json:"logo,omitempty"`
}

// WebPage is the schema.org WebPage node for the current page.
type WebPage struct {
	Type        string `json:"@type"`
	ID          string `json:"@id"`
	URL         string `json:"url"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsPartOf    *Ref   `json:"isPartOf,omitempty"`
	Breadcrumb  *Ref   `json:"breadcrumb,omitempty"`
}

// BreadcrumbList is the schema.org breadcrumb trail for the page.
type BreadcrumbList struct {
	Type  string     `json:"@type"`
	ID    string     `json:"@id"`
	Items []ListItem `json:"itemListElement"`
}

// ListItem is one breadcrumb entry. The final crumb carries no item URL.
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item,omitempty"`
}

// GeoCoordinates locates a Place.
type GeoCoordinates struct {
	Type      string  `json:"@type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Place is the area a Service is offered in.
type Place struct {
	Type string          `json:"@type"`
	Name string          `json:"name"`
	Geo  *GeoCoordinates `json:"geo,omitempty"`
}

// Service is the schema.org Service node for a solution page.
type Service struct {
	Type        string `json:"@type"`
	ID          string `json:"@id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ServiceType string `json:"serviceType,omitempty"`
	Provider    *Ref   `json:"provider,omitempty"`
	AreaServed  *Place `json:"areaServed,omitempty"`
}

// FAQPage holds the question/answer pairs of a solution page.
type FAQPage struct {
	Type       string     `json:"@type"`
	ID         string     `json:"@id"`
	MainEntity []Question `json:"mainEntity"`
}

// Question is one FAQ entry.
type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// Answer is the accepted answer of a Question.
type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// Person is a minimal author node.
type Person struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// BlogPosting is the schema.org node for an article page.
type BlogPosting struct {
	Type             string  `json:"@type"`
	ID               string  `json:"@id"`
	Headline         string  `json:"headline"`
	Description      string  `json:"description,omitempty"`
	DatePublished    string  `json:"datePublished"`
	Image            string  `json:"image,omitempty"`
	Author           *Person `json:"author,omitempty"`
	Publisher        *Ref    `json:"publisher,omitempty"`
	MainEntityOfPage *Ref    `json:"mainEntityOfPage,omitempty"`
}

func (s *Synthesizer) graph(nodes ...any) *Graph {
	return &Graph{Context: schemaContext, Nodes: nodes}
}

func (s *Synthesizer) organizationID() string {
	return s.cfg.Origin + fragmentOrganization
}

func (s *Synthesizer) organization() Organization {
	return Organization{
		Type: "Organization",
		ID:   s.organizationID(),
		Name: s.cfg.Brand,
		URL:  s.cfg.Origin,
		Logo: s.absolute(s.cfg.DefaultImage),
	}
}

func (s *Synthesizer) webPage(canonical, title, desc string, crumbs *BreadcrumbList) WebPage {
	page := WebPage{
		Type:        "WebPage",
		ID:          canonical + fragmentWebPage,
		URL:         canonical,
		Name:        title,
		Description: desc,
		IsPartOf:    &Ref{ID: s.organizationID()},
	}
	if crumbs != nil {
		page.Breadcrumb = &Ref{ID: crumbs.ID}
	}
	return page
}

type crumb struct {
	name string
	url  string
}

// breadcrumb builds the trail Home > ... > current. Intermediate crumbs
// carry their URL; the final crumb is the current page and carries none.
func (s *Synthesizer) breadcrumb(canonical string, trail ...crumb) *BreadcrumbList {
	items := []ListItem{
		{Type: "ListItem", Position: 1, Name: "Home", Item: s.cfg.Origin},
	}
	for i, c := range trail {
		item := ListItem{Type: "ListItem", Position: i + 2, Name: c.name, Item: c.url}
		items = append(items, item)
	}
	return &BreadcrumbList{
		Type:  "BreadcrumbList",
		ID:    canonical + fragmentBreadcrumb,
		Items: items,
	}
}

// service builds the Service node; city is optional and narrows areaServed.
func (s *Synthesizer) service(canonical string, sol *model.Solution, city *model.City) Service {
	node := Service{
		Type:        "Service",
		ID:          canonical + fragmentService,
		Name:        sol.Name,
		Description: sol.Description,
		ServiceType: sol.Name,
		Provider:    &Ref{ID: s.organizationID()},
	}
	if city != nil {
		node.AreaServed = &Place{
			Type: "City",
			Name: fmt.Sprintf("%s, %s", city.Name, city.State),
			Geo: &GeoCoordinates{
				Type:      "GeoCoordinates",
				Latitude:  city.Lat,
				Longitude: city.Lng,
			},
		}
	}
	return node
}

func (s *Synthesizer) faqPage(canonical string, faqs []model.FAQ) FAQPage {
	questions := make([]Question, len(faqs))
	for i, f := range faqs {
		questions[i] = Question{
			Type:           "Question",
			Name:           f.Question,
			AcceptedAnswer: Answer{Type: "Answer", Text: f.Answer},
		}
	}
	return FAQPage{
		Type:       "FAQPage",
		ID:         canonical + fragmentFAQ,
		MainEntity: questions,
	}
}

func (s *Synthesizer) blogPosting(canonical string, post *model.BlogPost) BlogPosting {
	node := BlogPosting{
		Type:             "BlogPosting",
		ID:               canonical + fragmentArticle,
		Headline:         post.Title,
		Description:      post.Description,
		DatePublished:    post.Date,
		Author:           &Person{Type: "Person", Name: post.Author},
		Publisher:        &Ref{ID: s.organizationID()},
		MainEntityOfPage: &Ref{ID: canonical + fragmentWebPage},
	}
	if post.Hero != "" {
		node.Image = s.absolute(post.Hero)
	}
	return node
}
