package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-site/internal/content"
	"github.com/goliatone/go-site/pkg/interfaces"
)

type articleResponse struct {
	interfaces.Article
	HTML string `json:"html"`
}

func (api *SiteAPI) registerArticles(group *gin.RouterGroup) {
	group.GET("", api.listArticles)
	group.GET("/featured", api.listFeaturedArticles)
	group.GET("/categories", api.listArticleCategories)
	group.GET("/tags", api.listArticleTags)
	group.GET("/search", api.searchArticles)
	group.GET("/category/:category", api.listArticlesByCategory)
	group.GET("/:slug", api.getArticle)
	group.GET("/:slug/related", api.listRelatedArticles)
}

func (api *SiteAPI) listArticles(c *gin.Context) {
	records, err := api.articles.ListAll(c.Request.Context())
	api.respond(c, records, err)
}

func (api *SiteAPI) listFeaturedArticles(c *gin.Context) {
	records, err := api.articles.ListFeatured(c.Request.Context())
	api.respond(c, records, err)
}

func (api *SiteAPI) listArticleCategories(c *gin.Context) {
	categories, err := api.articles.ListCategories(c.Request.Context())
	api.respond(c, categories, err)
}

func (api *SiteAPI) listArticleTags(c *gin.Context) {
	tags, err := api.articles.ListTags(c.Request.Context())
	api.respond(c, tags, err)
}

func (api *SiteAPI) searchArticles(c *gin.Context) {
	records, err := api.articles.Search(c.Request.Context(), interfaces.ArticleSearch{
		Query:    c.Query("q"),
		Category: c.Query("category"),
	})
	api.respond(c, records, err)
}

func (api *SiteAPI) listArticlesByCategory(c *gin.Context) {
	records, err := api.articles.ListByCategory(c.Request.Context(), c.Param("category"))
	api.respond(c, records, err)
}

func (api *SiteAPI) getArticle(c *gin.Context) {
	article, err := api.articles.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		api.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, articleResponse{
		Article: *article,
		HTML:    api.renderers.For(content.KindArticles.Variant()).Render(article.Body),
	})
}

func (api *SiteAPI) listRelatedArticles(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), content.DefaultRelatedLimit)
	records, err := api.articles.Related(c.Request.Context(), c.Param("slug"), limit)
	api.respond(c, records, err)
}

func (api *SiteAPI) respond(c *gin.Context, payload any, err error) {
	if err != nil {
		api.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}
