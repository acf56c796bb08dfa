package di

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"

	"github.com/gin-gonic/gin"

	sitecmd "github.com/goliatone/go-site/internal/commands/site"
	"github.com/goliatone/go-site/internal/content"
	sitehttp "github.com/goliatone/go-site/internal/http"
	"github.com/goliatone/go-site/internal/logging"
	"github.com/goliatone/go-site/internal/logging/console"
	"github.com/goliatone/go-site/internal/logging/gologger"
	"github.com/goliatone/go-site/internal/markdown"
	"github.com/goliatone/go-site/internal/runtimeconfig"
	"github.com/goliatone/go-site/internal/validation"
	"github.com/goliatone/go-site/pkg/interfaces"
)

// Container wires the content core from configuration. Services are built
// once; they hold no state besides their configuration, so the container can
// be shared across requests.
type Container struct {
	config runtimeconfig.Config

	fsys           fs.FS
	logWriter      io.Writer
	loggerProvider interfaces.LoggerProvider
	logger         interfaces.Logger

	loaders   map[content.Kind]*markdown.Loader
	articles  *content.ArticleService
	portfolio *content.PortfolioService
	offerings *content.OfferingService
	renderers markdown.RendererSet
	linter    *validation.Linter
}

// Option mutates the container before services are built.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected by logging.provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithFS reads content from fsys instead of the base directory on disk.
func WithFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.fsys = fsys
	}
}

// WithLogWriter sets where the console provider writes. Defaults to stderr.
func WithLogWriter(w io.Writer) Option {
	return func(c *Container) {
		c.logWriter = w
	}
}

// NewContainer validates cfg and builds the services.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		config:    cfg,
		logWriter: os.Stderr,
		loaders:   map[content.Kind]*markdown.Loader{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLogger(); err != nil {
		return nil, err
	}
	c.configureContent()
	c.configureMarkdown()
	c.configureValidation()

	c.logger.Debug("site.container.ready",
		"base_dir", cfg.Content.BaseDir,
		"malformed_policy", cfg.Content.Policy(),
		"markdown_engine", c.config.Markdown.Engine,
	)
	return c, nil
}

func (c *Container) configureLogger() error {
	if c.loggerProvider == nil {
		switch provider := c.config.Logging.Provider; provider {
		case "gologger":
			p, err := gologger.NewProvider(gologger.Config{
				Level:     c.config.Logging.Level,
				Format:    c.config.Logging.Format,
				AddSource: c.config.Logging.AddSource,
				Focus:     c.config.Logging.Focus,
			})
			if err != nil {
				return err
			}
			c.loggerProvider = p
		case "console", "":
			opts := console.Options{Writer: c.logWriter}
			if level, ok := console.ParseLevel(c.config.Logging.Level); ok {
				opts.MinLevel = &level
			}
			c.loggerProvider = console.NewProvider(opts)
		default:
			return fmt.Errorf("%w: %s", runtimeconfig.ErrLoggingProviderUnknown, provider)
		}
	}
	c.logger = logging.RootLogger(c.loggerProvider)
	return nil
}

func (c *Container) configureContent() {
	if c.fsys == nil {
		c.fsys = os.DirFS(c.config.Content.BaseDir)
	}

	dirs := map[content.Kind]string{
		content.KindArticles:  c.config.Content.ArticlesDir,
		content.KindPortfolio: c.config.Content.PortfolioDir,
		content.KindServices:  c.config.Content.ServicesDir,
	}
	for kind, dir := range dirs {
		c.loaders[kind] = markdown.NewLoader(c.fsys, markdown.LoaderConfig{
			Dir:       path.Clean(dir),
			Extension: c.config.Content.Extension,
		})
	}

	opts := []content.Option{
		content.WithLogger(logging.ContentLogger(c.loggerProvider)),
		content.WithMalformedPolicy(content.ParsePolicy(c.config.Content.Policy())),
		content.WithWordsPerMinute(c.config.Markdown.WordsPerMinute),
	}
	c.articles = content.NewArticleService(c.loaders[content.KindArticles], opts...)
	c.portfolio = content.NewPortfolioService(c.loaders[content.KindPortfolio], opts...)
	c.offerings = content.NewOfferingService(c.loaders[content.KindServices], opts...)
}

func (c *Container) configureMarkdown() {
	goldmarkCfg := c.config.Markdown.Goldmark
	c.renderers = markdown.NewRendererSet(c.config.Markdown.Engine, markdown.GoldmarkOptions{
		Extensions: goldmarkCfg.Extensions,
		HardWraps:  goldmarkCfg.HardWraps,
		SafeMode:   goldmarkCfg.SafeMode,
	})
	logging.MarkdownLogger(c.loggerProvider).Debug("markdown.renderer.configured",
		"engine", c.config.Markdown.Engine,
		"words_per_minute", c.config.Markdown.WordsPerMinute,
	)
}

func (c *Container) configureValidation() {
	sources := make(map[content.Kind]validation.DirectorySource, len(c.loaders))
	for kind, loader := range c.loaders {
		sources[kind] = loader
	}
	c.linter = validation.NewLinter(sources, logging.ModuleLogger(c.loggerProvider, "site.validation"))
}

// Config returns the validated configuration.
func (c *Container) Config() runtimeconfig.Config {
	return c.config
}

// LoggerProvider returns the configured logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Logger returns the root "site" logger.
func (c *Container) Logger() interfaces.Logger {
	return c.logger
}

// Loader returns the document loader for kind.
func (c *Container) Loader(kind content.Kind) *markdown.Loader {
	return c.loaders[kind]
}

// ArticleService returns the blog service.
func (c *Container) ArticleService() interfaces.ArticleService {
	return c.articles
}

// PortfolioService returns the portfolio service.
func (c *Container) PortfolioService() interfaces.PortfolioService {
	return c.portfolio
}

// OfferingService returns the services service.
func (c *Container) OfferingService() interfaces.OfferingService {
	return c.offerings
}

// Renderers returns the body renderers for both variants.
func (c *Container) Renderers() markdown.RendererSet {
	return c.renderers
}

// Linter returns the content linter.
func (c *Container) Linter() *validation.Linter {
	return c.linter
}

// Catalog returns the services in the shape the site commands expect.
func (c *Container) Catalog() sitecmd.Catalog {
	return sitecmd.Catalog{
		Articles:  c.articles,
		Portfolio: c.portfolio,
		Offerings: c.offerings,
	}
}

// RegisterCommands builds the site command handlers and registers them with
// reg when it is not nil.
func (c *Container) RegisterCommands(reg sitecmd.CommandRegistry) (*sitecmd.HandlerSet, error) {
	return sitecmd.RegisterSiteCommands(reg, sitecmd.Dependencies{
		Catalog:   c.Catalog(),
		Renderers: c.renderers,
		Linter:    c.linter,
	}, c.loggerProvider)
}

// Router builds the HTTP router serving the JSON API.
func (c *Container) Router() (*gin.Engine, error) {
	httpLogger := logging.HTTPLogger(c.loggerProvider)
	api := sitehttp.NewSiteAPI(
		sitehttp.WithArticleService(c.articles),
		sitehttp.WithPortfolioService(c.portfolio),
		sitehttp.WithOfferingService(c.offerings),
		sitehttp.WithRenderers(c.renderers),
		sitehttp.WithLogger(httpLogger),
	)
	return sitehttp.NewRouter(api, sitehttp.RouterConfig{
		Mode:   c.config.HTTP.Mode,
		Logger: httpLogger,
	})
}
