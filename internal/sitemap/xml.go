package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

// XML shapes per the sitemaps.org protocol.

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Location   string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// WriteXML serializes entries as a sitemaps.org urlset document.
func WriteXML(w io.Writer, entries []Entry) error {
	set := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]urlEntry, len(entries)),
	}
	for i, e := range entries {
		set.URLs[i] = urlEntry{
			Location:   e.URL,
			LastMod:    e.LastModified.Format("2006-01-02"),
			ChangeFreq: string(e.ChangeFreq),
			Priority:   strconv.FormatFloat(e.Priority, 'f', 1, 64),
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write XML header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("failed to encode sitemap: %w", err)
	}
	// Encoder does not emit a trailing newline.
	_, err := io.WriteString(w, "\n")
	return err
}
