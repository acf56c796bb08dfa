package validation

import (
	"regexp"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-site/pkg/interfaces"
)

var urlPattern = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)

const isoDate = "2006-01-02"

// Slugs that collide with the static API routes under /api/blog and
// /api/portfolio; records using them cannot be fetched by slug.
var (
	reservedArticleSlugs   = []any{"featured", "categories", "tags", "search", "category"}
	reservedPortfolioSlugs = []any{"featured", "categories", "technologies", "category"}
)

const reservedSlugMessage = "slug is reserved by an API route"

// FieldProblem is a rule failure on a decoded record.
type FieldProblem struct {
	Field   string
	Message string
}

// ArticleRules checks the editorial rules for an article.
func ArticleRules(article interfaces.Article) []FieldProblem {
	return problems(validation.Errors{
		"slug":     validation.Validate(article.Slug, validation.NotIn(reservedArticleSlugs...).Error(reservedSlugMessage)),
		"title":    validation.Validate(article.Title, validation.Required),
		"date":     validation.Validate(article.Date, validation.Required, validation.Date(isoDate)),
		"excerpt":  validation.Validate(article.Excerpt, validation.Required, validation.Length(0, 300)),
		"category": validation.Validate(article.Category, validation.Required),
	})
}

// PortfolioRules checks the editorial rules for a portfolio item.
func PortfolioRules(item interfaces.PortfolioItem) []FieldProblem {
	return problems(validation.Errors{
		"slug":          validation.Validate(item.Slug, validation.NotIn(reservedPortfolioSlugs...).Error(reservedSlugMessage)),
		"title":         validation.Validate(item.Title, validation.Required),
		"category":      validation.Validate(item.Category, validation.Required),
		"completedDate": validation.Validate(item.CompletedDate, validation.Required, validation.Date(isoDate)),
		"projectUrl":    validation.Validate(item.ProjectURL, validation.NilOrNotEmpty, validation.Match(urlPattern)),
		"githubUrl":     validation.Validate(item.GithubURL, validation.NilOrNotEmpty, validation.Match(urlPattern)),
	})
}

// OfferingRules checks the editorial rules for a service offering.
func OfferingRules(offering interfaces.ServiceOffering) []FieldProblem {
	return problems(validation.Errors{
		"title":       validation.Validate(offering.Title, validation.Required),
		"description": validation.Validate(offering.Description, validation.Required),
		"features":    validation.Validate(offering.Features, validation.Required),
	})
}

func problems(errs validation.Errors) []FieldProblem {
	filtered, ok := errs.Filter().(validation.Errors)
	if !ok || len(filtered) == 0 {
		return nil
	}
	out := make([]FieldProblem, 0, len(filtered))
	for field, err := range filtered {
		out = append(out, FieldProblem{Field: field, Message: err.Error()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}
