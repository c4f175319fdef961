package healthcheck

import (
	"github.com/codedpad/pad-api/platform/web/handler"
	"github.com/gin-gonic/gin"
	"net/http"
)

// Get godoc
// @Summary Healthcheck
// @Description Reports whether the service is up
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /v1/healthcheck [get]
func Get(_ *gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body:   map[string]string{"status": "ok"},
	}
}
