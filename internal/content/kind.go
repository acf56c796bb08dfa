package content

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-site/internal/markdown"
)

// Kinds lists every content kind in presentation order.
func Kinds() []Kind {
	return []Kind{KindArticles, KindPortfolio, KindServices}
}

// ParseKind accepts a kind name or one of its aliases ("blog", "posts",
// "offerings").
func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "articles", "article", "blog", "posts":
		return KindArticles, nil
	case "portfolio", "projects":
		return KindPortfolio, nil
	case "services", "service", "offerings":
		return KindServices, nil
	default:
		return "", fmt.Errorf("content: unknown kind %q", value)
	}
}

// Variant returns the render variant used for bodies of this kind.
func (k Kind) Variant() markdown.Variant {
	if k == KindPortfolio {
		return markdown.VariantPortfolio
	}
	return markdown.VariantStandard
}

func (k Kind) String() string { return string(k) }
