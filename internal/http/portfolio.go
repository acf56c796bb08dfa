package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-site/internal/content"
	"github.com/goliatone/go-site/pkg/interfaces"
)

type portfolioResponse struct {
	interfaces.PortfolioItem
	HTML string `json:"html"`
}

func (api *SiteAPI) registerPortfolio(group *gin.RouterGroup) {
	group.GET("", api.listPortfolio)
	group.GET("/featured", api.listFeaturedPortfolio)
	group.GET("/categories", api.listPortfolioCategories)
	group.GET("/technologies", api.listPortfolioTechnologies)
	group.GET("/category/:category", api.listPortfolioByCategory)
	group.GET("/:slug", api.getPortfolioItem)
}

func (api *SiteAPI) listPortfolio(c *gin.Context) {
	records, err := api.portfolio.ListAll(c.Request.Context())
	api.respond(c, records, err)
}

func (api *SiteAPI) listFeaturedPortfolio(c *gin.Context) {
	records, err := api.portfolio.ListFeatured(c.Request.Context())
	api.respond(c, records, err)
}

func (api *SiteAPI) listPortfolioCategories(c *gin.Context) {
	categories, err := api.portfolio.ListCategories(c.Request.Context())
	api.respond(c, categories, err)
}

func (api *SiteAPI) listPortfolioTechnologies(c *gin.Context) {
	technologies, err := api.portfolio.ListTechnologies(c.Request.Context())
	api.respond(c, technologies, err)
}

func (api *SiteAPI) listPortfolioByCategory(c *gin.Context) {
	records, err := api.portfolio.ListByCategory(c.Request.Context(), c.Param("category"))
	api.respond(c, records, err)
}

func (api *SiteAPI) getPortfolioItem(c *gin.Context) {
	item, err := api.portfolio.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		api.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, portfolioResponse{
		PortfolioItem: *item,
		HTML:          api.renderers.For(content.KindPortfolio.Variant()).Render(item.Body),
	})
}
