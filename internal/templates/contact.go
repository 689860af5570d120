package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/brightpath-ai/website/internal/seo"
)

// Contact renders the contact page: the form plus the outbound booking
// link (a plain hyperlink to the external scheduler, opened in a new tab).
func Contact(meta seo.Meta, bookingURL string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var err error
		write := func(format string, args ...any) {
			if err == nil {
				_, err = fmt.Fprintf(w, format, args...)
			}
		}

		write("<h1>Contact us</h1>\n")
		write("<p>Tell us what is eating your team's time and we will map out what automation can take over.</p>\n")
		write("<p><a href=\"%s\" target=\"_blank\" rel=\"noopener\">Or book a call directly</a></p>\n", esc(bookingURL))
		write(`<form method="post" action="/contact">
<label>Name <input type="text" name="name" required/></label>
<label>Email <input type="email" name="email" required/></label>
<label>Company <input type="text" name="company"/></label>
<label>Message <textarea name="message" required></textarea></label>
<button type="submit">Send</button>
</form>
`)
		return err
	})
	return Layout(meta, body)
}

// ContactResult renders the outcome of a form submission. On failure the
// visitor gets a retry-or-email message; nothing retries automatically.
func ContactResult(meta seo.Meta, ok bool) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var msg string
		if ok {
			msg = "<h1>Thanks — message received</h1>\n<p>We read every message and reply within one business day.</p>\n"
		} else {
			msg = "<h1>Something went wrong</h1>\n<p>Your message was not sent. Please try again, or email us directly at hello@brightpathai.com.</p>\n"
		}
		_, err := io.WriteString(w, msg)
		return err
	})
	return Layout(meta, body)
}
