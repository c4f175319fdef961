package files

import (
	"github.com/codedpad/pad-api/business/v1/file"
	"github.com/codedpad/pad-api/platform/web/handler"
	"github.com/gin-gonic/gin"
	"net/http"
)

// List godoc
// @Summary List files
// @Description Lists files owned or bookmarked by an access code; pad locked files come back redacted unless the code matches
// @Tags File
// @Produce json
// @Param userId path string true "Access code"
// @Param padLockCode query string false "Pad lock code"
// @Success 200 {array} file.File
// @Failure 500 {object} handler.Error
// @Router /v1/users/{userId}/files [get]
func List(ctx *gin.Context) handler.Result {
	userId := ctx.Param("userId")
	presentedCode := ctx.Query("padLockCode")

	list, err := file.List(ctx, userId, presentedCode)
	if err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Code: handler.CodeStorageFailure, Message: "could not list files"},
		}
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   list,
	}
}
