package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-site/internal/logging"
	"github.com/goliatone/go-site/pkg/interfaces"
)

// RouterConfig configures NewRouter.
type RouterConfig struct {
	// Mode is the gin mode: debug, release or test. Empty keeps the current mode.
	Mode   string
	Logger interfaces.Logger
}

// NewRouter builds a gin engine with recovery, request ids, access logging,
// a /healthz check and the site API.
func NewRouter(api *SiteAPI, cfg RouterConfig) (*gin.Engine, error) {
	if mode := strings.ToLower(strings.TrimSpace(cfg.Mode)); mode != "" {
		gin.SetMode(mode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog(logging.OrNoOp(cfg.Logger)))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if err := api.Register(router); err != nil {
		return nil, err
	}
	return router, nil
}
