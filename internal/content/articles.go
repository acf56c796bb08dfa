package content

import (
	"context"
	"slices"
	"sort"
	"strings"

	"github.com/goliatone/go-site/internal/markdown"
	"github.com/goliatone/go-site/pkg/interfaces"
)

// DefaultRelatedLimit caps Related when the caller passes no limit.
const DefaultRelatedLimit = 3

// AllCategories is the category filter value that matches every article.
const AllCategories = "all"

// ArticleService reads blog articles from a content directory.
type ArticleService struct {
	records collection[interfaces.Article]
}

var _ interfaces.ArticleService = (*ArticleService)(nil)

// NewArticleService constructs an article service over source.
func NewArticleService(source DocumentSource, opts ...Option) *ArticleService {
	cfg := resolveOptions(opts)
	return &ArticleService{
		records: collection[interfaces.Article]{
			kind:   KindArticles,
			source: source,
			opts:   cfg,
			decode: func(doc *markdown.Document) (interfaces.Article, error) {
				return decodeArticle(doc, cfg.wordsPerMinute)
			},
		},
	}
}

func decodeArticle(doc *markdown.Document, wordsPerMinute int) (interfaces.Article, error) {
	fields := newFieldDecoder(doc.FrontMatter)
	article := interfaces.Article{
		Slug:     doc.Slug,
		Title:    fields.String("title"),
		Date:     fields.String("date"),
		Author:   fields.String("author"),
		Excerpt:  fields.String("excerpt"),
		Image:    fields.String("image"),
		Category: fields.String("category"),
		Tags:     fields.Strings("tags"),
		Featured: fields.Bool("featured"),
		Body:     doc.Body,
	}
	if err := fields.Err(); err != nil {
		return interfaces.Article{}, err
	}
	article.ReadingTime = markdown.ReadingTime(doc.Body, wordsPerMinute)
	return article, nil
}

// ListAll returns every article, newest date first. Dates compare as
// strings, so ISO formatted dates sort chronologically; ties keep
// directory order.
func (s *ArticleService) ListAll(ctx context.Context) ([]interfaces.Article, error) {
	articles, err := s.records.all(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Date > articles[j].Date
	})
	return articles, nil
}

// GetBySlug returns the article stored as <slug>.md.
func (s *ArticleService) GetBySlug(ctx context.Context, slug string) (*interfaces.Article, error) {
	return s.records.one(ctx, slug)
}

// ListFeatured returns the featured articles in ListAll order.
func (s *ArticleService) ListFeatured(ctx context.Context) ([]interfaces.Article, error) {
	return s.filter(ctx, func(a interfaces.Article) bool { return a.Featured })
}

// ListByCategory returns the articles whose category equals category exactly.
func (s *ArticleService) ListByCategory(ctx context.Context, category string) ([]interfaces.Article, error) {
	return s.filter(ctx, func(a interfaces.Article) bool { return a.Category == category })
}

// ListCategories returns the distinct categories in lexical order. Articles
// without a category contribute a single "" entry, listed last.
func (s *ArticleService) ListCategories(ctx context.Context) ([]string, error) {
	articles, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var categories []string
	for _, article := range articles {
		categories = append(categories, article.Category)
	}
	categories = sortedDistinct(categories)
	if len(categories) > 1 && categories[0] == "" {
		categories = append(slices.Delete(categories, 0, 1), "")
	}
	return categories, nil
}

// ListTags returns the distinct tags of all articles in lexical order.
func (s *ArticleService) ListTags(ctx context.Context) ([]string, error) {
	articles, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var tags []string
	for _, article := range articles {
		tags = append(tags, article.Tags...)
	}
	return sortedDistinct(tags), nil
}

// Search matches the query case-insensitively against title and excerpt and
// narrows by category unless it is empty or "all".
func (s *ArticleService) Search(ctx context.Context, search interfaces.ArticleSearch) ([]interfaces.Article, error) {
	query := strings.ToLower(strings.TrimSpace(search.Query))
	category := strings.TrimSpace(search.Category)
	anyCategory := category == "" || category == AllCategories

	return s.filter(ctx, func(a interfaces.Article) bool {
		if !anyCategory && a.Category != category {
			return false
		}
		if query == "" {
			return true
		}
		return strings.Contains(strings.ToLower(a.Title), query) ||
			strings.Contains(strings.ToLower(a.Excerpt), query)
	})
}

// Related returns up to limit articles sharing the category of slug, in
// ListAll order, excluding slug itself.
func (s *ArticleService) Related(ctx context.Context, slug string, limit int) ([]interfaces.Article, error) {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	article, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	related, err := s.filter(ctx, func(a interfaces.Article) bool {
		return a.Category == article.Category && a.Slug != article.Slug
	})
	if err != nil {
		return nil, err
	}
	if len(related) > limit {
		related = related[:limit]
	}
	return related, nil
}

func (s *ArticleService) filter(ctx context.Context, keep func(interfaces.Article) bool) ([]interfaces.Article, error) {
	articles, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]interfaces.Article, 0, len(articles))
	for _, article := range articles {
		if keep(article) {
			out = append(out, article)
		}
	}
	return out, nil
}

func sortedDistinct(values []string) []string {
	out := append(make([]string, 0, len(values)), values...)
	slices.Sort(out)
	return slices.Compact(out)
}
