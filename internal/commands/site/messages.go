package sitecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-site/internal/content"
	"github.com/goliatone/go-site/internal/markdown"
	sitevalidation "github.com/goliatone/go-site/internal/validation"
)

const (
	listContentMessageType    = "site.content.list"
	showContentMessageType    = "site.content.show"
	renderMarkdownMessageType = "site.markdown.render"
	lintContentMessageType    = "site.content.lint"
)

// ResultCallback receives the outcome of a read command. It is invoked
// synchronously before Execute returns.
type ResultCallback func(ResultEnvelope)

// ResultEnvelope carries what a command produced.
type ResultEnvelope struct {
	Kind     content.Kind
	Records  any
	Count    int
	HTML     string
	Report   *sitevalidation.Report
	Metadata map[string]any
}

// ListContentCommand lists one collection. Category and Featured narrow the
// list for articles and portfolio items; Query searches article titles and
// excerpts.
type ListContentCommand struct {
	Kind           string         `json:"kind"`
	Category       string         `json:"category,omitempty"`
	Featured       bool           `json:"featured,omitempty"`
	Query          string         `json:"query,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (ListContentCommand) Type() string { return listContentMessageType }

// Validate rejects unknown kinds and filters the kind does not support.
func (m ListContentCommand) Validate() error {
	kind, _ := content.ParseKind(m.Kind)
	return validation.ValidateStruct(&m,
		validation.Field(&m.Kind, validation.Required, validation.By(kindRule)),
		validation.Field(&m.Category, validation.When(kind == content.KindServices,
			validation.By(mustBeUnset("site.content.list.category_unsupported", "services cannot be filtered by category")))),
		validation.Field(&m.Featured, validation.When(kind == content.KindServices,
			validation.By(mustBeUnset("site.content.list.featured_unsupported", "services have no featured flag")))),
		validation.Field(&m.Query, validation.When(kind != content.KindArticles,
			validation.By(mustBeUnset("site.content.list.query_unsupported", "only articles can be searched")))),
	)
}

// ShowContentCommand fetches a single record by slug.
type ShowContentCommand struct {
	Kind           string         `json:"kind"`
	Slug           string         `json:"slug"`
	IncludeHTML    bool           `json:"include_html,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (ShowContentCommand) Type() string { return showContentMessageType }

// Validate ensures kind and slug are present.
func (m ShowContentCommand) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Kind, validation.Required, validation.By(kindRule)),
		validation.Field(&m.Slug, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("site.content.show.slug_required", "slug is required")
			}
			return nil
		})),
	)
}

// RenderMarkdownCommand renders free-standing Markdown text.
type RenderMarkdownCommand struct {
	Variant        string         `json:"variant,omitempty"`
	Source         string         `json:"source"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (RenderMarkdownCommand) Type() string { return renderMarkdownMessageType }

// Validate restricts the variant to the known pipelines.
func (m RenderMarkdownCommand) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Variant, validation.In(
			string(markdown.VariantStandard),
			string(markdown.VariantPortfolio),
		).Error("variant must be standard or portfolio")),
	)
}

// LintContentCommand checks the raw files of the given kinds, or of every
// kind when Kinds is empty. Strict turns warnings into a failure.
type LintContentCommand struct {
	Kinds          []string       `json:"kinds,omitempty"`
	Strict         bool           `json:"strict,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (LintContentCommand) Type() string { return lintContentMessageType }

// Validate ensures every requested kind is known.
func (m LintContentCommand) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Kinds, validation.Each(validation.By(kindRule))),
	)
}

func kindRule(value any) error {
	name, _ := value.(string)
	if _, err := content.ParseKind(name); err != nil {
		return validation.NewError("site.content.kind_invalid", "kind must be articles, portfolio or services")
	}
	return nil
}

func mustBeUnset(code, message string) validation.RuleFunc {
	return func(value any) error {
		switch v := value.(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				return validation.NewError(code, message)
			}
		case bool:
			if v {
				return validation.NewError(code, message)
			}
		}
		return nil
	}
}
