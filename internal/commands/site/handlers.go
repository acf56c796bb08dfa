package sitecmd

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	command "github.com/goliatone/go-command"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-site/internal/commands"
	"github.com/goliatone/go-site/internal/content"
	"github.com/goliatone/go-site/internal/logging"
	"github.com/goliatone/go-site/internal/markdown"
	sitevalidation "github.com/goliatone/go-site/internal/validation"
	"github.com/goliatone/go-site/pkg/interfaces"
)

const (
	listOperation   = "content.list"
	showOperation   = "content.show"
	renderOperation = "markdown.render"
	lintOperation   = "content.lint"

	// TextCodeLintFailed marks a lint run that found errors, or warnings in
	// strict mode.
	TextCodeLintFailed = "CONTENT_LINT_FAILED"
)

// ErrServiceUnavailable is returned when the handler was built without the
// service the message needs.
var ErrServiceUnavailable = errors.New("site command: service unavailable")

var (
	_ command.Commander[ListContentCommand]    = (*ListContentHandler)(nil)
	_ command.Commander[ShowContentCommand]    = (*ShowContentHandler)(nil)
	_ command.Commander[RenderMarkdownCommand] = (*RenderMarkdownHandler)(nil)
	_ command.Commander[LintContentCommand]    = (*LintContentHandler)(nil)
)

// Catalog bundles the content services read commands query.
type Catalog struct {
	Articles  interfaces.ArticleService
	Portfolio interfaces.PortfolioService
	Offerings interfaces.OfferingService
}

// Linter is the lint entry point used by LintContentHandler.
type Linter interface {
	Lint(ctx context.Context, kinds ...content.Kind) (sitevalidation.Report, error)
}

// ListContentHandler lists a content collection.
type ListContentHandler struct {
	inner *commands.Handler[ListContentCommand]
}

// NewListContentHandler creates a handler bound to catalog.
func NewListContentHandler(catalog Catalog, logger interfaces.Logger, opts ...commands.HandlerOption[ListContentCommand]) *ListContentHandler {
	baseLogger := logging.OrNoOp(logger)

	exec := func(ctx context.Context, msg ListContentCommand) error {
		kind, err := content.ParseKind(msg.Kind)
		if err != nil {
			return err
		}
		records, count, err := catalog.list(ctx, kind, msg)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"kind":  string(kind),
			"count": count,
		}).Debug("site.command.list.completed")
		invokeCallback(msg.ResultCallback, ResultEnvelope{
			Kind:    kind,
			Records: records,
			Count:   count,
		})
		return nil
	}

	handlerOpts := []commands.HandlerOption[ListContentCommand]{
		commands.WithLogger[ListContentCommand](baseLogger),
		commands.WithOperation[ListContentCommand](listOperation),
		commands.WithMessageFields(func(msg ListContentCommand) map[string]any {
			fields := map[string]any{"kind": msg.Kind}
			if msg.Category != "" {
				fields["category"] = msg.Category
			}
			if msg.Featured {
				fields["featured"] = true
			}
			if msg.Query != "" {
				fields["query"] = msg.Query
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ListContentCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ListContentHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ListContentCommand].
func (h *ListContentHandler) Execute(ctx context.Context, msg ListContentCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ShowContentHandler fetches one record and optionally renders its body.
type ShowContentHandler struct {
	inner *commands.Handler[ShowContentCommand]
}

// NewShowContentHandler creates a handler bound to catalog and renderers.
func NewShowContentHandler(catalog Catalog, renderers markdown.RendererSet, logger interfaces.Logger, opts ...commands.HandlerOption[ShowContentCommand]) *ShowContentHandler {
	baseLogger := logging.OrNoOp(logger)

	exec := func(ctx context.Context, msg ShowContentCommand) error {
		kind, err := content.ParseKind(msg.Kind)
		if err != nil {
			return err
		}
		record, body, err := catalog.show(ctx, kind, strings.TrimSpace(msg.Slug))
		if err != nil {
			return err
		}
		envelope := ResultEnvelope{Kind: kind, Records: record, Count: 1}
		if msg.IncludeHTML {
			envelope.HTML = renderers.For(kind.Variant()).Render(body)
		}
		invokeCallback(msg.ResultCallback, envelope)
		return nil
	}

	handlerOpts := []commands.HandlerOption[ShowContentCommand]{
		commands.WithLogger[ShowContentCommand](baseLogger),
		commands.WithOperation[ShowContentCommand](showOperation),
		commands.WithMessageFields(func(msg ShowContentCommand) map[string]any {
			return map[string]any{
				"kind": msg.Kind,
				"slug": msg.Slug,
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ShowContentCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ShowContentHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ShowContentCommand].
func (h *ShowContentHandler) Execute(ctx context.Context, msg ShowContentCommand) error {
	return h.inner.Execute(ctx, msg)
}

// RenderMarkdownHandler renders Markdown text with the configured engine.
type RenderMarkdownHandler struct {
	inner *commands.Handler[RenderMarkdownCommand]
}

// NewRenderMarkdownHandler creates a render handler.
func NewRenderMarkdownHandler(renderers markdown.RendererSet, logger interfaces.Logger, opts ...commands.HandlerOption[RenderMarkdownCommand]) *RenderMarkdownHandler {
	baseLogger := logging.OrNoOp(logger)

	exec := func(ctx context.Context, msg RenderMarkdownCommand) error {
		variant := markdown.Variant(msg.Variant)
		if variant == "" {
			variant = markdown.VariantStandard
		}
		invokeCallback(msg.ResultCallback, ResultEnvelope{
			HTML:     renderers.For(variant).Render(msg.Source),
			Metadata: map[string]any{"variant": string(variant)},
		})
		return nil
	}

	handlerOpts := []commands.HandlerOption[RenderMarkdownCommand]{
		commands.WithLogger[RenderMarkdownCommand](baseLogger),
		commands.WithOperation[RenderMarkdownCommand](renderOperation),
		commands.WithMessageFields(func(msg RenderMarkdownCommand) map[string]any {
			return map[string]any{
				"variant":      msg.Variant,
				"source_bytes": len(msg.Source),
			}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RenderMarkdownHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[RenderMarkdownCommand].
func (h *RenderMarkdownHandler) Execute(ctx context.Context, msg RenderMarkdownCommand) error {
	return h.inner.Execute(ctx, msg)
}

// LintContentHandler runs the content linter.
type LintContentHandler struct {
	inner *commands.Handler[LintContentCommand]
}

// NewLintContentHandler creates a lint handler. The report is delivered to
// the callback even when the run fails.
func NewLintContentHandler(linter Linter, logger interfaces.Logger, opts ...commands.HandlerOption[LintContentCommand]) *LintContentHandler {
	baseLogger := logging.OrNoOp(logger)

	exec := func(ctx context.Context, msg LintContentCommand) error {
		if linter == nil {
			return ErrServiceUnavailable
		}
		kinds := make([]content.Kind, 0, len(msg.Kinds))
		for _, name := range msg.Kinds {
			kind, err := content.ParseKind(name)
			if err != nil {
				return err
			}
			if !slices.Contains(kinds, kind) {
				kinds = append(kinds, kind)
			}
		}

		report, err := linter.Lint(ctx, kinds...)
		if err != nil {
			return err
		}
		invokeCallback(msg.ResultCallback, ResultEnvelope{
			Report: &report,
			Count:  report.Files,
			Metadata: map[string]any{
				"errors":   report.Errors(),
				"warnings": report.Warnings(),
			},
		})

		if report.Errors() > 0 || (msg.Strict && report.Warnings() > 0) {
			return goerrors.New(
				fmt.Sprintf("content lint found %d errors and %d warnings", report.Errors(), report.Warnings()),
				goerrors.CategoryValidation,
			).WithTextCode(TextCodeLintFailed).WithMetadata(map[string]any{
				"files":    report.Files,
				"errors":   report.Errors(),
				"warnings": report.Warnings(),
			})
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[LintContentCommand]{
		commands.WithLogger[LintContentCommand](baseLogger),
		commands.WithOperation[LintContentCommand](lintOperation),
		commands.WithTimeout[LintContentCommand](0),
		commands.WithMessageFields(func(msg LintContentCommand) map[string]any {
			fields := map[string]any{}
			if len(msg.Kinds) > 0 {
				fields["kinds"] = strings.Join(msg.Kinds, ",")
			}
			if msg.Strict {
				fields["strict"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[LintContentCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &LintContentHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[LintContentCommand].
func (h *LintContentHandler) Execute(ctx context.Context, msg LintContentCommand) error {
	return h.inner.Execute(ctx, msg)
}

func (c Catalog) list(ctx context.Context, kind content.Kind, msg ListContentCommand) (any, int, error) {
	switch kind {
	case content.KindArticles:
		if c.Articles == nil {
			return nil, 0, ErrServiceUnavailable
		}
		var (
			records []interfaces.Article
			err     error
		)
		switch {
		case strings.TrimSpace(msg.Query) != "":
			records, err = c.Articles.Search(ctx, interfaces.ArticleSearch{Query: msg.Query, Category: msg.Category})
		case msg.Category != "":
			records, err = c.Articles.ListByCategory(ctx, msg.Category)
		case msg.Featured:
			records, err = c.Articles.ListFeatured(ctx)
		default:
			records, err = c.Articles.ListAll(ctx)
		}
		if err != nil {
			return nil, 0, err
		}
		if msg.Featured {
			records = slices.DeleteFunc(records, func(a interfaces.Article) bool { return !a.Featured })
		}
		return records, len(records), nil
	case content.KindPortfolio:
		if c.Portfolio == nil {
			return nil, 0, ErrServiceUnavailable
		}
		var (
			records []interfaces.PortfolioItem
			err     error
		)
		switch {
		case msg.Category != "":
			records, err = c.Portfolio.ListByCategory(ctx, msg.Category)
		case msg.Featured:
			records, err = c.Portfolio.ListFeatured(ctx)
		default:
			records, err = c.Portfolio.ListAll(ctx)
		}
		if err != nil {
			return nil, 0, err
		}
		if msg.Featured {
			records = slices.DeleteFunc(records, func(p interfaces.PortfolioItem) bool { return !p.Featured })
		}
		return records, len(records), nil
	case content.KindServices:
		if c.Offerings == nil {
			return nil, 0, ErrServiceUnavailable
		}
		records, err := c.Offerings.ListAll(ctx)
		if err != nil {
			return nil, 0, err
		}
		return records, len(records), nil
	default:
		return nil, 0, fmt.Errorf("site command: unsupported kind %q", kind)
	}
}

func (c Catalog) show(ctx context.Context, kind content.Kind, slug string) (any, string, error) {
	switch kind {
	case content.KindArticles:
		if c.Articles == nil {
			return nil, "", ErrServiceUnavailable
		}
		record, err := c.Articles.GetBySlug(ctx, slug)
		if err != nil {
			return nil, "", err
		}
		return record, record.Body, nil
	case content.KindPortfolio:
		if c.Portfolio == nil {
			return nil, "", ErrServiceUnavailable
		}
		record, err := c.Portfolio.GetBySlug(ctx, slug)
		if err != nil {
			return nil, "", err
		}
		return record, record.Body, nil
	case content.KindServices:
		if c.Offerings == nil {
			return nil, "", ErrServiceUnavailable
		}
		record, err := c.Offerings.GetBySlug(ctx, slug)
		if err != nil {
			return nil, "", err
		}
		return record, record.Body, nil
	default:
		return nil, "", fmt.Errorf("site command: unsupported kind %q", kind)
	}
}

func invokeCallback(cb ResultCallback, envelope ResultEnvelope) {
	if cb != nil {
		cb(envelope)
	}
}
