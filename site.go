package site

import (
	"context"

	"github.com/gin-gonic/gin"

	sitecmd "github.com/goliatone/go-site/internal/commands/site"
	"github.com/goliatone/go-site/internal/content"
	"github.com/goliatone/go-site/internal/di"
	"github.com/goliatone/go-site/internal/markdown"
	"github.com/goliatone/go-site/internal/validation"
	"github.com/goliatone/go-site/pkg/interfaces"
)

// Article exports the blog article record.
type Article = interfaces.Article

// PortfolioItem exports the portfolio record.
type PortfolioItem = interfaces.PortfolioItem

// ServiceOffering exports the service offering record.
type ServiceOffering = interfaces.ServiceOffering

// ArticleSearch exports the article search criteria.
type ArticleSearch = interfaces.ArticleSearch

// ArticleService exports the article query contract.
type ArticleService = interfaces.ArticleService

// PortfolioService exports the portfolio query contract.
type PortfolioService = interfaces.PortfolioService

// OfferingService exports the service offering query contract.
type OfferingService = interfaces.OfferingService

// Kind names a content collection.
type Kind = content.Kind

// LintReport exports the content lint summary.
type LintReport = validation.Report

const (
	KindArticles  = content.KindArticles
	KindPortfolio = content.KindPortfolio
	KindServices  = content.KindServices
)

// IsNotFound reports whether err signals a missing record.
func IsNotFound(err error) bool {
	return content.IsNotFound(err)
}

// IsMalformed reports whether err signals a record whose file failed to load.
func IsMalformed(err error) bool {
	return content.IsMalformed(err)
}

// Module represents the top level site runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a site module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Articles returns the configured article service.
func (m *Module) Articles() ArticleService {
	return m.container.ArticleService()
}

// Portfolio returns the configured portfolio service.
func (m *Module) Portfolio() PortfolioService {
	return m.container.PortfolioService()
}

// Offerings returns the configured service offering service.
func (m *Module) Offerings() OfferingService {
	return m.container.OfferingService()
}

// Logger returns the root site logger.
func (m *Module) Logger() interfaces.Logger {
	return m.container.Logger()
}

// RenderMarkdown renders source with the standard pipeline, or the portfolio
// variant when portfolio is true.
func (m *Module) RenderMarkdown(source string, portfolio bool) string {
	variant := markdown.VariantStandard
	if portfolio {
		variant = markdown.VariantPortfolio
	}
	return m.container.Renderers().For(variant).Render(source)
}

// Lint checks the content files of the given kinds, or every kind when none
// are given.
func (m *Module) Lint(ctx context.Context, kinds ...Kind) (LintReport, error) {
	return m.container.Linter().Lint(ctx, kinds...)
}

// Router builds the gin engine serving the JSON API.
func (m *Module) Router() (*gin.Engine, error) {
	return m.container.Router()
}

// RegisterCommands registers the site command handlers with reg.
func (m *Module) RegisterCommands(reg sitecmd.CommandRegistry) (*sitecmd.HandlerSet, error) {
	return m.container.RegisterCommands(reg)
}
