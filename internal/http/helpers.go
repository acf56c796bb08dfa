package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-site/internal/content"
	"github.com/goliatone/go-site/internal/logging"
)

func joinPath(base, suffix string) string {
	trimmedBase := strings.TrimSpace(base)
	trimmedSuffix := strings.TrimSpace(suffix)
	if trimmedBase == "" {
		if trimmedSuffix == "" {
			return "/"
		}
		return "/" + strings.Trim(trimmedSuffix, "/")
	}
	baseClean := "/" + strings.Trim(trimmedBase, "/")
	if trimmedSuffix == "" {
		return baseClean
	}
	return baseClean + "/" + strings.Trim(trimmedSuffix, "/")
}

func (api *SiteAPI) writeError(c *gin.Context, err error) {
	status, payload := mapError(err)
	payload.Error.RequestID = logging.RequestIDFromContext(c.Request.Context())
	if status >= http.StatusInternalServerError {
		api.logger.WithContext(c.Request.Context()).Error("http.request.failed",
			"path", c.Request.URL.Path,
			"status", status,
			"error", err,
		)
	}
	c.JSON(status, payload)
}

// mapError converts err into the go-errors envelope and picks the status:
// not found is 404, a malformed record is 422 and everything else is 500.
func mapError(err error) (int, goerrors.ErrorResponse) {
	if err == nil {
		err = goerrors.New("unknown error", goerrors.CategoryInternal)
	}

	mapped := *goerrors.MapToError(err, nil)
	status := http.StatusInternalServerError
	switch {
	case content.IsNotFound(err):
		status = http.StatusNotFound
	case content.IsMalformed(err):
		status = http.StatusUnprocessableEntity
	}
	mapped.Code = status
	return status, mapped.ToErrorResponse(false, nil)
}

func parseLimit(value string, fallback int) int {
	limit, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}
