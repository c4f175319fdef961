package notes

import (
	"errors"
	"github.com/codedpad/pad-api/business/v1/note"
	"github.com/codedpad/pad-api/platform/web/handler"
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"
)

type deleteRequest struct {
	RequesterId string `json:"requesterId"`
}

// Delete godoc
// @Summary Delete a note
// @Description Deletes a note; only the owner may delete it
// @Tags Note
// @Accept json
// @Produce json
// @Param id path string true "Note id"
// @Param request body deleteRequest true "Requester"
// @Success 200
// @Failure 400 {object} handler.Error
// @Failure 403 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [delete]
func Delete(ctx *gin.Context) handler.Result {

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Code: handler.CodeInvalidInput, Message: "invalid id"},
		}
	}

	var req deleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.RequesterId == "" {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Code: handler.CodeInvalidInput, Message: "requesterId is required"},
		}
	}

	err = note.Delete(ctx, id, req.RequesterId)

	switch {
	case errors.Is(err, note.ErrNotFound):
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Code: handler.CodeNotFound, Message: "note not found"},
		}
	case errors.Is(err, note.ErrForbidden):
		return handler.Result{
			Status: http.StatusForbidden,
			Body:   handler.Error{Code: handler.CodeForbidden, Message: "only the owner can delete a note"},
		}
	case err != nil:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Code: handler.CodeStorageFailure, Message: "could not delete note"},
		}
	default:
		return handler.Result{
			Status: http.StatusOK,
		}
	}
}
