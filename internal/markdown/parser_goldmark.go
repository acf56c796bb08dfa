package markdown

import (
	"bytes"
	"html/template"
	"math"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// DefaultWordsPerMinute is the reading speed used for reading time estimates.
const DefaultWordsPerMinute = 200

// GoldmarkOptions tunes the goldmark engine.
type GoldmarkOptions struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// GoldmarkRenderer renders full CommonMark through goldmark. The renderer is
// stateless so callers can share a single instance.
type GoldmarkRenderer struct {
	engine goldmark.Markdown
}

// NewGoldmarkRenderer constructs a renderer with GFM extensions and unsafe
// HTML allowed unless opts say otherwise.
func NewGoldmarkRenderer(opts GoldmarkOptions) *GoldmarkRenderer {
	return &GoldmarkRenderer{engine: newGoldmarkEngine(opts)}
}

// Render converts markdown into HTML.
func (r *GoldmarkRenderer) Render(markdown string) string {
	var buf bytes.Buffer
	// Convert only fails when the writer fails; bytes.Buffer does not.
	if err := r.engine.Convert([]byte(markdown), &buf); err != nil {
		return ""
	}
	return buf.String()
}

// HTML renders markdown and marks the result as trusted for html/template.
func (r *GoldmarkRenderer) HTML(markdown string) template.HTML {
	return template.HTML(r.Render(markdown)) // #nosec G203 -- content files are authored by site owners
}

func newGoldmarkEngine(opts GoldmarkOptions) goldmark.Markdown {
	exts := collectExtensions(opts.Extensions)

	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if !opts.SafeMode {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}
	if len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{extension.GFM}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}
	return extenders
}

// CountWords returns the number of words in the readable text of a
// Markdown body. Markup such as emphasis markers, link targets and heading
// hashes is not counted; code block contents are.
func CountWords(markdown string) int {
	source := []byte(markdown)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	count := 0
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			count += len(strings.Fields(string(node.Segment.Value(source))))
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				segment := lines.At(i)
				count += len(strings.Fields(string(segment.Value(source))))
			}
		}
		return ast.WalkContinue, nil
	})
	return count
}

// ReadingTime estimates whole minutes needed to read a Markdown body. Any
// non-empty body takes at least one minute.
func ReadingTime(markdown string, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	if strings.TrimSpace(markdown) == "" {
		return 0
	}
	words := CountWords(markdown)
	return max(1, int(math.Ceil(float64(words)/float64(wordsPerMinute))))
}
