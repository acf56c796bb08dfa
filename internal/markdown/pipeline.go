package markdown

import (
	"html/template"
	"regexp"
	"strings"
)

// Variant selects which rewrite steps a Pipeline runs.
type Variant string

const (
	// VariantStandard renders article and service bodies.
	VariantStandard Variant = "standard"
	// VariantPortfolio additionally unwraps and emits blockquotes.
	VariantPortfolio Variant = "portfolio"
)

// Step is a single named rewrite applied to the whole document.
type Step struct {
	Name  string
	Apply func(string) string
}

// Pipeline renders the supported Markdown subset by running its steps in
// order. Steps are plain string rewrites and see the output of the previous
// step, so the order is part of the output contract.
type Pipeline struct {
	variant Variant
	steps   []Step
}

var (
	h3Pattern         = regexp.MustCompile(`(?m)^### (.*)$`)
	h2Pattern         = regexp.MustCompile(`(?m)^## (.*)$`)
	h1Pattern         = regexp.MustCompile(`(?m)^# (.*)$`)
	boldPattern       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern     = regexp.MustCompile(`\*(.*?)\*`)
	linkPattern       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	codeBlockPattern  = regexp.MustCompile("```(\\w+)?\\n([\\s\\S]*?)```")
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
	bulletPattern     = regexp.MustCompile(`(?m)^- (.+)$`)
	bulletRunPattern  = regexp.MustCompile(`(?m)^<li>.*</li>(?:\n<li>.*</li>)*$`)
	numberedPattern   = regexp.MustCompile(`(?m)^\d+\. (.+)$`)
	headingOpenInP    = regexp.MustCompile(`<p>(<h[1-6]>)`)
	headingCloseInP   = regexp.MustCompile(`(</h[1-6]>)</p>`)
	blockquotePattern = regexp.MustCompile(`(?m)^&gt; (.+)$`)
)

// NewPipeline returns the pipeline for variant. Unknown variants fall back
// to the standard pipeline.
func NewPipeline(variant Variant) *Pipeline {
	unwrap := []string{"ul", "pre"}
	if variant == VariantPortfolio {
		unwrap = append(unwrap, "blockquote")
	} else {
		variant = VariantStandard
	}

	steps := []Step{
		{Name: "headings", Apply: renderHeadings},
		{Name: "bold", Apply: renderBold},
		{Name: "italic", Apply: renderItalic},
		{Name: "links", Apply: renderLinks},
		{Name: "code_blocks", Apply: renderCodeBlocks},
		{Name: "inline_code", Apply: renderInlineCode},
		{Name: "unordered_lists", Apply: renderUnorderedLists},
		{Name: "ordered_lists", Apply: renderOrderedLists},
		{Name: "paragraphs", Apply: renderParagraphs},
		{Name: "unwrap_blocks", Apply: unwrapBlocks(unwrap...)},
		{Name: "line_breaks", Apply: renderLineBreaks},
	}
	if variant == VariantPortfolio {
		steps = append(steps, Step{Name: "blockquotes", Apply: renderBlockquotes})
	}

	return &Pipeline{variant: variant, steps: steps}
}

// Variant reports which variant the pipeline renders.
func (p *Pipeline) Variant() Variant {
	return p.variant
}

// StepNames lists the pipeline steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name
	}
	return names
}

// Render converts markdown into an HTML fragment. Input text is not
// escaped; raw HTML in the source passes through unchanged. CRLF line
// endings are read as LF.
func (p *Pipeline) Render(markdown string) string {
	out := strings.ReplaceAll(markdown, "\r\n", "\n")
	for _, step := range p.steps {
		out = step.Apply(out)
	}
	return out
}

// HTML renders markdown and marks the result as trusted for html/template.
// Only use it with content from trusted authors.
func (p *Pipeline) HTML(markdown string) template.HTML {
	return template.HTML(p.Render(markdown)) // #nosec G203 -- content files are authored by site owners
}

func renderHeadings(s string) string {
	s = h3Pattern.ReplaceAllString(s, "<h3>${1}</h3>")
	s = h2Pattern.ReplaceAllString(s, "<h2>${1}</h2>")
	return h1Pattern.ReplaceAllString(s, "<h1>${1}</h1>")
}

func renderBold(s string) string {
	return boldPattern.ReplaceAllString(s, "<strong>${1}</strong>")
}

func renderItalic(s string) string {
	return italicPattern.ReplaceAllString(s, "<em>${1}</em>")
}

func renderLinks(s string) string {
	return linkPattern.ReplaceAllString(s, `<a href="${2}">${1}</a>`)
}

func renderCodeBlocks(s string) string {
	return codeBlockPattern.ReplaceAllString(s, "<pre><code>${2}</code></pre>")
}

func renderInlineCode(s string) string {
	return inlineCodePattern.ReplaceAllString(s, "<code>${1}</code>")
}

// renderUnorderedLists converts "- " lines to list items and wraps only the
// first contiguous run of items in a single <ul>.
func renderUnorderedLists(s string) string {
	s = bulletPattern.ReplaceAllString(s, "<li>${1}</li>")

	loc := bulletRunPattern.FindStringIndex(s)
	if loc == nil {
		return s
	}
	run := strings.ReplaceAll(s[loc[0]:loc[1]], "\n", "")
	return s[:loc[0]] + "<ul>" + run + "</ul>" + s[loc[1]:]
}

// renderOrderedLists emits bare list items; they are never wrapped in <ol>.
func renderOrderedLists(s string) string {
	return numberedPattern.ReplaceAllString(s, "<li>${1}</li>")
}

func renderParagraphs(s string) string {
	s = strings.ReplaceAll(s, "\n\n", "</p><p>")
	s = "<p>" + s + "</p>"
	return strings.ReplaceAll(s, "<p></p>", "")
}

func unwrapBlocks(tags ...string) func(string) string {
	replacer := make([]string, 0, len(tags)*4)
	for _, tag := range tags {
		replacer = append(replacer,
			"<p><"+tag+">", "<"+tag+">",
			"</"+tag+"></p>", "</"+tag+">",
		)
	}
	blocks := strings.NewReplacer(replacer...)

	return func(s string) string {
		s = headingOpenInP.ReplaceAllString(s, "${1}")
		s = headingCloseInP.ReplaceAllString(s, "${1}")
		return blocks.Replace(s)
	}
}

func renderLineBreaks(s string) string {
	return strings.ReplaceAll(s, "\n", "<br />")
}

// renderBlockquotes runs after paragraph wrapping and line-break rewriting,
// so inside the pipeline no "&gt; " marker is left at a line start.
func renderBlockquotes(s string) string {
	return blockquotePattern.ReplaceAllString(s, "<blockquote>${1}</blockquote>")
}
