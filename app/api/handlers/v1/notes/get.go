package notes

import (
	"errors"
	"github.com/codedpad/pad-api/business/v1/note"
	"github.com/codedpad/pad-api/platform/web/handler"
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"
)

// Get godoc
// @Summary Find a note
// @Description Finds a note by id; a pad locked note comes back redacted unless the code matches
// @Tags Note
// @Produce json
// @Param id path string true "Note id"
// @Param padLockCode query string false "Pad lock code"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [get]
func Get(ctx *gin.Context) handler.Result {

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Code: handler.CodeInvalidInput, Message: "invalid id"},
		}
	}

	get, err := note.Find(ctx, id, ctx.Query("padLockCode"))

	switch {
	case errors.Is(err, note.ErrNotFound):
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Code: handler.CodeNotFound, Message: "note not found"},
		}
	case err != nil:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Code: handler.CodeStorageFailure, Message: "could not find note"},
		}
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body:   get,
		}
	}
}
