package http

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-site/internal/logging"
	"github.com/goliatone/go-site/internal/markdown"
	"github.com/goliatone/go-site/pkg/interfaces"
)

// SiteAPI registers the read-only content endpoints.
type SiteAPI struct {
	basePath  string
	articles  interfaces.ArticleService
	portfolio interfaces.PortfolioService
	offerings interfaces.OfferingService
	renderers markdown.RendererSet
	logger    interfaces.Logger
}

// Option mutates the SiteAPI configuration.
type Option func(*SiteAPI)

// NewSiteAPI constructs a SiteAPI instance.
func NewSiteAPI(opts ...Option) *SiteAPI {
	api := &SiteAPI{
		basePath: "/api",
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the base API path (defaults to "/api").
func WithBasePath(path string) Option {
	return func(api *SiteAPI) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithArticleService wires the blog service.
func WithArticleService(service interfaces.ArticleService) Option {
	return func(api *SiteAPI) {
		api.articles = service
	}
}

// WithPortfolioService wires the portfolio service.
func WithPortfolioService(service interfaces.PortfolioService) Option {
	return func(api *SiteAPI) {
		api.portfolio = service
	}
}

// WithOfferingService wires the services service.
func WithOfferingService(service interfaces.OfferingService) Option {
	return func(api *SiteAPI) {
		api.offerings = service
	}
}

// WithRenderers sets the renderers used for the "html" field of detail
// responses.
func WithRenderers(renderers markdown.RendererSet) Option {
	return func(api *SiteAPI) {
		api.renderers = renderers
	}
}

// WithLogger sets the logger used for failed requests.
func WithLogger(logger interfaces.Logger) Option {
	return func(api *SiteAPI) {
		api.logger = logging.OrNoOp(logger)
	}
}

// Register attaches the endpoints of every wired service to router.
func (api *SiteAPI) Register(router gin.IRouter) error {
	if router == nil {
		return fmt.Errorf("http: router is required")
	}
	if api.articles == nil && api.portfolio == nil && api.offerings == nil {
		return fmt.Errorf("http: no content service wired")
	}

	group := router.Group(joinPath(api.basePath, ""))
	if api.articles != nil {
		api.registerArticles(group.Group("/blog"))
	}
	if api.portfolio != nil {
		api.registerPortfolio(group.Group("/portfolio"))
	}
	if api.offerings != nil {
		api.registerOfferings(group.Group("/services"))
	}
	return nil
}
