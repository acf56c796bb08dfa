package markdown

import (
	"strings"

	"github.com/goliatone/go-site/pkg/interfaces"
)

const (
	EnginePipeline = "pipeline"
	EngineGoldmark = "goldmark"
)

var (
	_ interfaces.BodyRenderer = (*Pipeline)(nil)
	_ interfaces.BodyRenderer = (*GoldmarkRenderer)(nil)
)

// NewRenderer returns the body renderer for engine. The goldmark engine
// ignores variant; any other engine name selects the rewrite pipeline.
func NewRenderer(engine string, variant Variant, opts GoldmarkOptions) interfaces.BodyRenderer {
	if strings.EqualFold(strings.TrimSpace(engine), EngineGoldmark) {
		return NewGoldmarkRenderer(opts)
	}
	return NewPipeline(variant)
}

// RendererSet holds one body renderer per variant.
type RendererSet struct {
	Standard  interfaces.BodyRenderer
	Portfolio interfaces.BodyRenderer
}

// NewRendererSet builds the renderers for both variants with one engine.
func NewRendererSet(engine string, opts GoldmarkOptions) RendererSet {
	return RendererSet{
		Standard:  NewRenderer(engine, VariantStandard, opts),
		Portfolio: NewRenderer(engine, VariantPortfolio, opts),
	}
}

// For returns the renderer for variant, falling back to a standard
// pipeline when the set is empty.
func (s RendererSet) For(variant Variant) interfaces.BodyRenderer {
	if variant == VariantPortfolio && s.Portfolio != nil {
		return s.Portfolio
	}
	if s.Standard != nil {
		return s.Standard
	}
	return NewPipeline(variant)
}
