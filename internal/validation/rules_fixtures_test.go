package validation

import "github.com/goliatone/go-site/pkg/interfaces"

func articleFixture(title, date string) interfaces.Article {
	return interfaces.Article{
		Slug:     "post",
		Title:    title,
		Date:     date,
		Excerpt:  "Summary",
		Category: "News",
		Tags:     []string{},
	}
}

func portfolioFixture() interfaces.PortfolioItem {
	return interfaces.PortfolioItem{
		Slug:          "work",
		Title:         "Work",
		Category:      "Web",
		CompletedDate: "2024-01-02",
		Tags:          []string{},
		Technologies:  []string{},
	}
}
