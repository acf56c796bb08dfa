package validation

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-site/internal/content"
	"github.com/goliatone/go-site/internal/markdown"
	"github.com/goliatone/go-site/pkg/interfaces"
)

// Severity ranks lint issues.
type Severity string

const (
	// SeverityError marks files the content services skip or reject.
	SeverityError Severity = "error"
	// SeverityWarning marks files that load but break editorial rules.
	SeverityWarning Severity = "warning"
)

// Issue is a single lint finding.
type Issue struct {
	Kind     content.Kind `json:"kind"`
	Slug     string       `json:"slug"`
	Path     string       `json:"path"`
	Field    string       `json:"field,omitempty"`
	Message  string       `json:"message"`
	Severity Severity     `json:"severity"`
}

// Report summarises a lint run.
type Report struct {
	Files  int     `json:"files"`
	Issues []Issue `json:"issues"`
}

// Errors counts issues with error severity.
func (r Report) Errors() int {
	count := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			count++
		}
	}
	return count
}

// Warnings counts issues with warning severity.
func (r Report) Warnings() int {
	return len(r.Issues) - r.Errors()
}

// DirectorySource lists the raw documents of a content directory.
type DirectorySource interface {
	LoadDirectory(ctx context.Context) ([]markdown.DocumentResult, error)
}

// Linter checks content directories without going through the content
// services, so every file is reported, including the ones they would skip.
type Linter struct {
	sources map[content.Kind]DirectorySource
	logger  interfaces.Logger
}

// NewLinter constructs a linter over the given per-kind sources.
func NewLinter(sources map[content.Kind]DirectorySource, logger interfaces.Logger) *Linter {
	copied := make(map[content.Kind]DirectorySource, len(sources))
	for kind, source := range sources {
		if source != nil {
			copied[kind] = source
		}
	}
	return &Linter{sources: copied, logger: logger}
}

// Kinds lists the kinds the linter can check, sorted.
func (l *Linter) Kinds() []content.Kind {
	kinds := make([]content.Kind, 0, len(l.sources))
	for kind := range l.sources {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Lint checks the given kinds, or every kind when none are passed.
func (l *Linter) Lint(ctx context.Context, kinds ...content.Kind) (Report, error) {
	if len(kinds) == 0 {
		kinds = l.Kinds()
	}

	report := Report{Issues: []Issue{}}
	for _, kind := range kinds {
		source, ok := l.sources[kind]
		if !ok {
			return Report{}, fmt.Errorf("%w: %s", ErrSchemaUnknown, kind)
		}
		results, err := source.LoadDirectory(ctx)
		if err != nil {
			return Report{}, fmt.Errorf("lint %s: %w", kind, err)
		}
		for _, result := range results {
			report.Files++
			report.Issues = append(report.Issues, l.lintDocument(kind, result)...)
		}
	}

	if l.logger != nil {
		l.logger.Info("content.lint.completed",
			"files", report.Files,
			"errors", report.Errors(),
			"warnings", report.Warnings(),
		)
	}
	return report, nil
}

func (l *Linter) lintDocument(kind content.Kind, result markdown.DocumentResult) []Issue {
	issue := func(field, message string, severity Severity) Issue {
		return Issue{
			Kind:     kind,
			Slug:     result.Slug,
			Path:     result.Path,
			Field:    field,
			Message:  message,
			Severity: severity,
		}
	}

	var issues []Issue
	if !slug.IsValid(result.Slug) {
		message := "file name is not a canonical slug"
		if suggested, err := slug.Normalize(result.Slug); err == nil && suggested != "" {
			message = fmt.Sprintf("%s, consider %q", message, suggested)
		}
		issues = append(issues, issue("", message, SeverityWarning))
	}

	if result.Err != nil {
		return append(issues, issue("", result.Err.Error(), SeverityError))
	}

	if err := ValidateFrontMatter(kind, result.Document.FrontMatter); err != nil {
		var fmErr *FrontMatterError
		if errors.As(err, &fmErr) {
			for _, schemaIssue := range fmErr.Issues {
				issues = append(issues, issue(schemaIssue.Location, schemaIssue.Message, SeverityError))
			}
			return issues
		}
		return append(issues, issue("", err.Error(), SeverityError))
	}

	for _, problem := range l.rules(kind, result.Document) {
		issues = append(issues, issue(problem.Field, problem.Message, SeverityWarning))
	}
	return issues
}

// rules decodes the document through a single-file service so editorial
// rules see exactly the record the site would serve.
func (l *Linter) rules(kind content.Kind, doc *markdown.Document) []FieldProblem {
	source := singleDocument{doc: doc}
	ctx := context.Background()

	switch kind {
	case content.KindArticles:
		if article, err := content.NewArticleService(source).GetBySlug(ctx, doc.Slug); err == nil {
			return ArticleRules(*article)
		}
	case content.KindPortfolio:
		if item, err := content.NewPortfolioService(source).GetBySlug(ctx, doc.Slug); err == nil {
			return PortfolioRules(*item)
		}
	case content.KindServices:
		if offering, err := content.NewOfferingService(source).GetBySlug(ctx, doc.Slug); err == nil {
			return OfferingRules(*offering)
		}
	}
	return nil
}

type singleDocument struct {
	doc *markdown.Document
}

func (s singleDocument) LoadDirectory(context.Context) ([]markdown.DocumentResult, error) {
	return []markdown.DocumentResult{{Slug: s.doc.Slug, Path: s.doc.Path, Document: s.doc}}, nil
}

func (s singleDocument) LoadSlug(_ context.Context, name string) (*markdown.Document, error) {
	if name != s.doc.Slug {
		return nil, markdown.ErrDocumentNotFound
	}
	return s.doc, nil
}
