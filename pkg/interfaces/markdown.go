package interfaces

import "html/template"

// BodyRenderer converts a record body into HTML. Output is trusted authored
// content and is never escaped or sanitised.
type BodyRenderer interface {
	// Render returns the HTML string for the supplied Markdown text.
	Render(markdown string) string
	// HTML returns the same output typed for html/template so callers embed it
	// as a raw HTML sink instead of escaped text.
	HTML(markdown string) template.HTML
}
