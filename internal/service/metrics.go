package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments the handlers record into.
type Metrics struct {
	PageRenders        *prometheus.CounterVec
	ResolutionFailures *prometheus.CounterVec
	ContactSubmissions *prometheus.CounterVec
	SitemapWarnings    prometheus.Gauge
}

// NewMetrics creates and registers the site metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "site_page_renders_total",
			Help: "Pages rendered, by route shape.",
		}, []string{"route"}),
		ResolutionFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "site_resolution_failures_total",
			Help: "Slug lookups that produced a not-found page, by route shape.",
		}, []string{"route"}),
		ContactSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "site_contact_submissions_total",
			Help: "Contact form submissions, by outcome.",
		}, []string{"outcome"}),
		SitemapWarnings: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "site_sitemap_warnings",
			Help: "Advisory warnings found in the last sitemap generation.",
		}),
	}
	reg.MustRegister(m.PageRenders, m.ResolutionFailures, m.ContactSubmissions, m.SitemapWarnings)
	return m
}
