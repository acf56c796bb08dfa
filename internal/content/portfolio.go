package content

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-site/internal/markdown"
	"github.com/goliatone/go-site/pkg/interfaces"
)

// PortfolioService reads portfolio items from a content directory.
type PortfolioService struct {
	records collection[interfaces.PortfolioItem]
}

var _ interfaces.PortfolioService = (*PortfolioService)(nil)

// NewPortfolioService constructs a portfolio service over source.
func NewPortfolioService(source DocumentSource, opts ...Option) *PortfolioService {
	return &PortfolioService{
		records: collection[interfaces.PortfolioItem]{
			kind:   KindPortfolio,
			source: source,
			opts:   resolveOptions(opts),
			decode: decodePortfolioItem,
		},
	}
}

func decodePortfolioItem(doc *markdown.Document) (interfaces.PortfolioItem, error) {
	fields := newFieldDecoder(doc.FrontMatter)
	item := interfaces.PortfolioItem{
		Slug:          doc.Slug,
		Title:         fields.String("title"),
		Description:   fields.String("description"),
		Category:      fields.String("category"),
		Tags:          fields.Strings("tags"),
		Image:         fields.String("image"),
		Client:        fields.String("client"),
		CompletedDate: fields.String("completedDate"),
		ProjectURL:    fields.OptionalString("projectUrl"),
		GithubURL:     fields.OptionalString("githubUrl"),
		Featured:      fields.Bool("featured"),
		Body:          doc.Body,
		Technologies:  fields.Strings("technologies"),
	}
	if err := fields.Err(); err != nil {
		return interfaces.PortfolioItem{}, err
	}
	return item, nil
}

// ListAll returns every portfolio item, most recently completed first.
// Completion dates are compared as calendar dates; items whose date does not
// parse sort after all dated items, keeping directory order among themselves.
func (s *PortfolioService) ListAll(ctx context.Context) ([]interfaces.PortfolioItem, error) {
	items, err := s.records.all(ctx)
	if err != nil {
		return nil, err
	}

	dates := make(map[string]time.Time, len(items))
	for _, item := range items {
		if parsed, ok := ParseCalendarDate(item.CompletedDate); ok {
			dates[item.Slug] = parsed
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		left, leftOK := dates[items[i].Slug]
		right, rightOK := dates[items[j].Slug]
		switch {
		case leftOK && rightOK:
			return left.After(right)
		default:
			return leftOK && !rightOK
		}
	})
	return items, nil
}

// GetBySlug returns the portfolio item stored as <slug>.md.
func (s *PortfolioService) GetBySlug(ctx context.Context, slug string) (*interfaces.PortfolioItem, error) {
	return s.records.one(ctx, slug)
}

// ListFeatured returns the featured items in ListAll order.
func (s *PortfolioService) ListFeatured(ctx context.Context) ([]interfaces.PortfolioItem, error) {
	return s.filter(ctx, func(p interfaces.PortfolioItem) bool { return p.Featured })
}

// ListByCategory returns the items whose category equals category exactly.
func (s *PortfolioService) ListByCategory(ctx context.Context, category string) ([]interfaces.PortfolioItem, error) {
	return s.filter(ctx, func(p interfaces.PortfolioItem) bool { return p.Category == category })
}

// ListCategories returns the distinct categories in the order they first
// appear in ListAll, "" included for uncategorised items. Unlike article
// categories they are not sorted.
func (s *PortfolioService) ListCategories(ctx context.Context) ([]string, error) {
	items, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var categories []string
	for _, item := range items {
		categories = append(categories, item.Category)
	}
	return firstSeen(categories), nil
}

// ListTechnologies returns the distinct technologies in first-seen order.
func (s *PortfolioService) ListTechnologies(ctx context.Context) ([]string, error) {
	items, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var technologies []string
	for _, item := range items {
		technologies = append(technologies, item.Technologies...)
	}
	return firstSeen(technologies), nil
}

func (s *PortfolioService) filter(ctx context.Context, keep func(interfaces.PortfolioItem) bool) ([]interfaces.PortfolioItem, error) {
	items, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]interfaces.PortfolioItem, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

func firstSeen(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}

var calendarLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
	"2006/01/02",
	"2006-01",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2006",
}

// ParseCalendarDate parses the date formats used in portfolio front matter.
func ParseCalendarDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range calendarLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
