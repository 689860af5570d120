package model

import (
	"time"

	"github.com/a-h/templ"
)

// DateLayout is the ISO date format used by the blog registry.
const DateLayout = "2006-01-02"

// BlogPost represents an article. Date must parse with DateLayout; the
// registry rejects posts with malformed dates at load time, so Published
// may be used without an error check afterwards.
type BlogPost struct {
	Slug        string
	Title       string
	Description string
	Date        string
	Author      string
	ReadingTime string
	Hero        string
	Tags        []string
	Body        templ.Component
}

// Published returns the post date parsed as a time.
func (p BlogPost) Published() (time.Time, error) {
	return time.Parse(DateLayout, p.Date)
}
