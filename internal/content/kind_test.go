package content

import (
	"testing"

	"github.com/goliatone/go-site/internal/markdown"
)

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"articles":  KindArticles,
		" Blog ":    KindArticles,
		"portfolio": KindPortfolio,
		"projects":  KindPortfolio,
		"SERVICES":  KindServices,
		"offerings": KindServices,
	}
	for input, want := range cases {
		got, err := ParseKind(input)
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseKind(%q) = %q, want %q", input, got, want)
		}
	}
	if _, err := ParseKind("pages"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestKindVariant(t *testing.T) {
	if KindPortfolio.Variant() != markdown.VariantPortfolio {
		t.Fatalf("portfolio should render with the portfolio variant")
	}
	if KindArticles.Variant() != markdown.VariantStandard || KindServices.Variant() != markdown.VariantStandard {
		t.Fatalf("articles and services should render with the standard variant")
	}
}
