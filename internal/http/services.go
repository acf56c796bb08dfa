package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-site/internal/content"
	"github.com/goliatone/go-site/pkg/interfaces"
)

type offeringResponse struct {
	interfaces.ServiceOffering
	HTML string `json:"html"`
}

func (api *SiteAPI) registerOfferings(group *gin.RouterGroup) {
	group.GET("", api.listOfferings)
	group.GET("/:slug", api.getOffering)
}

func (api *SiteAPI) listOfferings(c *gin.Context) {
	records, err := api.offerings.ListAll(c.Request.Context())
	api.respond(c, records, err)
}

func (api *SiteAPI) getOffering(c *gin.Context) {
	offering, err := api.offerings.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		api.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, offeringResponse{
		ServiceOffering: *offering,
		HTML:            api.renderers.For(content.KindServices.Variant()).Render(offering.Body),
	})
}
