package sitecmd

import (
	"github.com/goliatone/go-site/internal/commands"
	"github.com/goliatone/go-site/internal/markdown"
	"github.com/goliatone/go-site/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// Dependencies are the services the site handlers run against.
type Dependencies struct {
	Catalog   Catalog
	Renderers markdown.RendererSet
	Linter    Linter
}

// HandlerSet groups the handlers produced by RegisterSiteCommands.
type HandlerSet struct {
	List   *ListContentHandler
	Show   *ShowContentHandler
	Render *RenderMarkdownHandler
	Lint   *LintContentHandler
}

// RegisterSiteCommands builds the site handlers and registers them with reg
// when it is not nil.
func RegisterSiteCommands(reg CommandRegistry, deps Dependencies, provider interfaces.LoggerProvider) (*HandlerSet, error) {
	logger := commands.CommandLogger(provider, "site")

	set := &HandlerSet{
		List:   NewListContentHandler(deps.Catalog, logger),
		Show:   NewShowContentHandler(deps.Catalog, deps.Renderers, logger),
		Render: NewRenderMarkdownHandler(deps.Renderers, logger),
		Lint:   NewLintContentHandler(deps.Linter, logger),
	}

	if reg != nil {
		for _, handler := range []any{set.List, set.Show, set.Render, set.Lint} {
			if err := reg.RegisterCommand(handler); err != nil {
				return nil, err
			}
		}
	}
	return set, nil
}
