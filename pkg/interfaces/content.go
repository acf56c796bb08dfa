package interfaces

import "context"

// Article is a blog post loaded from the blog content directory.
type Article struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Author      string   `json:"author"`
	Excerpt     string   `json:"excerpt"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	Body        string   `json:"content"`
	ReadingTime int      `json:"readingTime"`
}

// PortfolioItem is a case study loaded from the portfolio content directory.
type PortfolioItem struct {
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	Image         string   `json:"image"`
	Client        string   `json:"client"`
	CompletedDate string   `json:"completedDate"`
	ProjectURL    *string  `json:"projectUrl,omitempty"`
	GithubURL     *string  `json:"githubUrl,omitempty"`
	Featured      bool     `json:"featured"`
	Body          string   `json:"content"`
	Technologies  []string `json:"technologies"`
}

// ServiceOffering describes one of the services the site advertises.
type ServiceOffering struct {
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon"`
	Features     []string `json:"features"`
	Body         string   `json:"content"`
	Image        string   `json:"image"`
	Benefits     []string `json:"benefits"`
	Technologies []string `json:"technologies"`
	Pricing      *string  `json:"pricing,omitempty"`
	Deliverables []string `json:"deliverables"`
}

// ArticleSearch narrows the article list the way the blog index filters it.
// An empty Category or the literal "all" matches every category.
type ArticleSearch struct {
	Query    string
	Category string
}

// ArticleService exposes the blog query surface. Every call re-reads the
// content directory; nothing is cached between calls.
type ArticleService interface {
	ListAll(ctx context.Context) ([]Article, error)
	GetBySlug(ctx context.Context, slug string) (*Article, error)
	ListFeatured(ctx context.Context) ([]Article, error)
	ListByCategory(ctx context.Context, category string) ([]Article, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListTags(ctx context.Context) ([]string, error)
	Search(ctx context.Context, search ArticleSearch) ([]Article, error)
	Related(ctx context.Context, slug string, limit int) ([]Article, error)
}

// PortfolioService exposes the portfolio query surface.
type PortfolioService interface {
	ListAll(ctx context.Context) ([]PortfolioItem, error)
	GetBySlug(ctx context.Context, slug string) (*PortfolioItem, error)
	ListFeatured(ctx context.Context) ([]PortfolioItem, error)
	ListByCategory(ctx context.Context, category string) ([]PortfolioItem, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListTechnologies(ctx context.Context) ([]string, error)
}

// OfferingService exposes the services query surface.
type OfferingService interface {
	ListAll(ctx context.Context) ([]ServiceOffering, error)
	GetBySlug(ctx context.Context, slug string) (*ServiceOffering, error)
}
