package content

import (
	"context"
	"testing"

	"github.com/goliatone/go-site/pkg/interfaces"
)

func itemSlug(p interfaces.PortfolioItem) string { return p.Slug }

func portfolioFixture() map[string]string {
	return map[string]string{
		"alpha.md": "---\ntitle: Alpha\ncategory: Web\ncompletedDate: 2023-05-01\ntechnologies: [Go, React]\n---\nbody",
		"beta.md":  "---\ntitle: Beta\ncategory: Mobile\ncompletedDate: 2024-01-15\ntechnologies: [Swift, Go]\nfeatured: true\nprojectUrl: https://beta.example.com\n---\nbody",
		"gamma.md": "---\ntitle: Gamma\ncategory: Web\ncompletedDate: not a date\ntechnologies: [Vue]\n---\nbody",
		"delta.md": "---\ntitle: Delta\ncategory: Data\ncompletedDate: \"2023-11-20\"\n---\nbody",
	}
}

func TestPortfolioServiceListAllSortsByCompletedDate(t *testing.T) {
	svc := NewPortfolioService(loaderFor(portfolioFixture(), "content/portfolio"))

	items, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	want := []string{"beta", "delta", "alpha", "gamma"}
	if got := slugsOf(items, itemSlug); !equalStrings(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestPortfolioServiceOptionalFields(t *testing.T) {
	svc := NewPortfolioService(loaderFor(portfolioFixture(), "content/portfolio"))
	ctx := context.Background()

	beta, err := svc.GetBySlug(ctx, "beta")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if beta.ProjectURL == nil || *beta.ProjectURL != "https://beta.example.com" {
		t.Fatalf("expected project url, got %v", beta.ProjectURL)
	}
	if beta.GithubURL != nil {
		t.Fatalf("expected nil github url, got %v", *beta.GithubURL)
	}
	if beta.CompletedDate != "2024-01-15" {
		t.Fatalf("expected date-only completed date, got %q", beta.CompletedDate)
	}

	delta, err := svc.GetBySlug(ctx, "delta")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if delta.Technologies == nil || len(delta.Technologies) != 0 {
		t.Fatalf("expected empty technologies, got %#v", delta.Technologies)
	}
	if delta.Tags == nil {
		t.Fatalf("expected non-nil tags")
	}
}

func TestPortfolioServiceCategoriesKeepFirstSeenOrder(t *testing.T) {
	svc := NewPortfolioService(loaderFor(portfolioFixture(), "content/portfolio"))
	ctx := context.Background()

	categories, err := svc.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if !equalStrings(categories, []string{"Mobile", "Data", "Web"}) {
		t.Fatalf("expected insertion order categories, got %v", categories)
	}

	technologies, err := svc.ListTechnologies(ctx)
	if err != nil {
		t.Fatalf("ListTechnologies: %v", err)
	}
	if !equalStrings(technologies, []string{"Swift", "Go", "React", "Vue"}) {
		t.Fatalf("unexpected technologies %v", technologies)
	}
}

func TestPortfolioServiceFeaturedAndCategory(t *testing.T) {
	svc := NewPortfolioService(loaderFor(portfolioFixture(), "content/portfolio"))
	ctx := context.Background()

	featured, err := svc.ListFeatured(ctx)
	if err != nil {
		t.Fatalf("ListFeatured: %v", err)
	}
	if got := slugsOf(featured, itemSlug); !equalStrings(got, []string{"beta"}) {
		t.Fatalf("expected [beta], got %v", got)
	}

	web, err := svc.ListByCategory(ctx, "Web")
	if err != nil {
		t.Fatalf("ListByCategory: %v", err)
	}
	if got := slugsOf(web, itemSlug); !equalStrings(got, []string{"alpha", "gamma"}) {
		t.Fatalf("expected [alpha gamma], got %v", got)
	}
}

func TestPortfolioServiceNotFound(t *testing.T) {
	svc := NewPortfolioService(loaderFor(portfolioFixture(), "content/portfolio"))
	if _, err := svc.GetBySlug(context.Background(), "omega"); !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestParseCalendarDate(t *testing.T) {
	for _, value := range []string{"2024-01-15", "2024-01-15T10:00:00Z", "January 15, 2024", "2024/01/15", "2024-01"} {
		if _, ok := ParseCalendarDate(value); !ok {
			t.Fatalf("expected %q to parse", value)
		}
	}
	for _, value := range []string{"", "soon", "15-01-2024x"} {
		if _, ok := ParseCalendarDate(value); ok {
			t.Fatalf("expected %q to be rejected", value)
		}
	}
}

func TestPortfolioServiceListFeaturedEmpty(t *testing.T) {
	files := portfolioFixture()
	files["beta.md"] = "---\ntitle: Beta\ncategory: Mobile\ncompletedDate: 2024-01-15\n---\nbody"
	svc := NewPortfolioService(loaderFor(files, "content/portfolio"))

	featured, err := svc.ListFeatured(context.Background())
	if err != nil {
		t.Fatalf("ListFeatured: %v", err)
	}
	if featured == nil || len(featured) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", featured)
	}
}

func TestPortfolioServiceCategoriesKeepUncategorised(t *testing.T) {
	files := portfolioFixture()
	files["epsilon.md"] = "---\ntitle: Epsilon\ncompletedDate: 2023-12-01\n---\nbody"
	svc := NewPortfolioService(loaderFor(files, "content/portfolio"))

	categories, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if !equalStrings(categories, []string{"Mobile", "", "Data", "Web"}) {
		t.Fatalf("expected first-seen order with empty category, got %q", categories)
	}
}

func TestPortfolioServiceSkipsMalformedFiles(t *testing.T) {
	files := portfolioFixture()
	files["broken.md"] = "---\ntitle: Broken\nno closing fence"
	files["badflag.md"] = "---\ntitle: Bad\nfeatured: 3\n---\nbody"
	logger := newRecordingLogger()
	svc := NewPortfolioService(loaderFor(files, "content/portfolio"), WithLogger(logger))
	ctx := context.Background()

	items, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected malformed files to be skipped, got %v", slugsOf(items, itemSlug))
	}
	if warnings := logger.byLevel("warn"); len(warnings) != 2 {
		t.Fatalf("expected two warnings, got %d", len(warnings))
	}

	for _, slug := range []string{"broken", "badflag"} {
		_, err := svc.GetBySlug(ctx, slug)
		if !IsMalformed(err) || IsNotFound(err) {
			t.Fatalf("expected malformed error for %s, got %v", slug, err)
		}
	}
}

func TestPortfolioServiceAbortPolicy(t *testing.T) {
	files := portfolioFixture()
	files["broken.md"] = "---\nfeatured: 3\n---\nbody"
	svc := NewPortfolioService(loaderFor(files, "content/portfolio"), WithMalformedPolicy(PolicyAbort))

	if _, err := svc.ListAll(context.Background()); !IsMalformed(err) {
		t.Fatalf("expected malformed error under abort policy, got %v", err)
	}
}
