package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/brightpath-ai/website/internal/seo"
)

// The presentation layer is intentionally thin: it consumes resolved
// entities and derived metadata and emits minimal semantic markup. Visual
// styling lives in the static stylesheet, not here.

func esc(s string) string {
	return templ.EscapeString(s)
}

// Layout wraps a page body with the document shell: head metadata,
// navigation, and footer.
func Layout(meta seo.Meta, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!doctype html>\n<html lang=\"en\">\n"); err != nil {
			return err
		}
		if err := writeHead(w, meta); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<body>\n"); err != nil {
			return err
		}
		if err := writeNav(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<main>\n"); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</main>\n"); err != nil {
			return err
		}
		if err := writeFooter(w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}

func writeHead(w io.Writer, meta seo.Meta) error {
	var b strings.Builder
	b.WriteString("<head>\n")
	b.WriteString("<meta charset=\"utf-8\"/>\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", esc(meta.Title))
	fmt.Fprintf(&b, "<meta name=\"description\" content=\"%s\"/>\n", esc(meta.Description))
	if len(meta.Keywords) > 0 {
		fmt.Fprintf(&b, "<meta name=\"keywords\" content=\"%s\"/>\n", esc(strings.Join(meta.Keywords, ", ")))
	}
	fmt.Fprintf(&b, "<link rel=\"canonical\" href=\"%s\"/>\n", esc(meta.Canonical))

	fmt.Fprintf(&b, "<meta property=\"og:title\" content=\"%s\"/>\n", esc(meta.OG.Title))
	fmt.Fprintf(&b, "<meta property=\"og:description\" content=\"%s\"/>\n", esc(meta.OG.Description))
	fmt.Fprintf(&b, "<meta property=\"og:url\" content=\"%s\"/>\n", esc(meta.OG.URL))
	fmt.Fprintf(&b, "<meta property=\"og:image\" content=\"%s\"/>\n", esc(meta.OG.Image))
	fmt.Fprintf(&b, "<meta property=\"og:type\" content=\"%s\"/>\n", esc(meta.OG.Type))

	fmt.Fprintf(&b, "<meta name=\"twitter:card\" content=\"%s\"/>\n", esc(meta.Twitter.Card))
	if meta.Twitter.Site != "" {
		fmt.Fprintf(&b, "<meta name=\"twitter:site\" content=\"%s\"/>\n", esc(meta.Twitter.Site))
	}
	fmt.Fprintf(&b, "<meta name=\"twitter:title\" content=\"%s\"/>\n", esc(meta.Twitter.Title))
	fmt.Fprintf(&b, "<meta name=\"twitter:description\" content=\"%s\"/>\n", esc(meta.Twitter.Description))
	fmt.Fprintf(&b, "<meta name=\"twitter:image\" content=\"%s\"/>\n", esc(meta.Twitter.Image))

	if meta.Geo != nil {
		fmt.Fprintf(&b, "<meta name=\"geo.region\" content=\"%s\"/>\n", esc(meta.Geo.Region))
		fmt.Fprintf(&b, "<meta name=\"geo.placename\" content=\"%s\"/>\n", esc(meta.Geo.Placename))
		fmt.Fprintf(&b, "<meta name=\"geo.position\" content=\"%s\"/>\n", esc(meta.Geo.Position))
	}

	b.WriteString("<link rel=\"stylesheet\" href=\"/static/css/site.css\"/>\n")

	if meta.JSONLD != nil {
		script, err := meta.JSONLD.Script()
		if err != nil {
			return err
		}
		// json.Marshal escapes < and > so the payload is safe inside a
		// script element without HTML escaping.
		fmt.Fprintf(&b, "<script type=\"application/ld+json\">%s</script>\n", script)
	}

	b.WriteString("</head>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeNav(w io.Writer) error {
	_, err := io.WriteString(w, `<header>
<nav>
<a href="/" class="brand">BrightPath AI</a>
<a href="/services">Services</a>
<a href="/industries">Industries</a>
<a href="/locations">Locations</a>
<a href="/blog">Blog</a>
<a href="/contact" class="cta">Contact</a>
</nav>
</header>
`)
	return err
}

func writeFooter(w io.Writer) error {
	_, err := io.WriteString(w, `<footer>
<p>BrightPath AI. AI automation for growing businesses.</p>
<nav>
<a href="/privacy">Privacy</a>
<a href="/terms">Terms</a>
<a href="/contact">Contact</a>
</nav>
</footer>
`)
	return err
}
