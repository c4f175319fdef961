package notes

import (
	"github.com/codedpad/pad-api/business/v1/note"
	"github.com/codedpad/pad-api/platform/web/handler"
	"github.com/gin-gonic/gin"
	"net/http"
)

// List godoc
// @Summary List notes
// @Description Lists every note under an access code; pad locked notes come back redacted unless the code matches
// @Tags Note
// @Produce json
// @Param userId path string true "Access code"
// @Param padLockCode query string false "Pad lock code"
// @Success 200 {array} note.Note
// @Failure 500 {object} handler.Error
// @Router /v1/users/{userId}/notes [get]
func List(ctx *gin.Context) handler.Result {
	userId := ctx.Param("userId")
	presentedCode := ctx.Query("padLockCode")

	list, err := note.List(ctx, userId, presentedCode)
	if err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Code: handler.CodeStorageFailure, Message: "could not list notes"},
		}
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   list,
	}
}
