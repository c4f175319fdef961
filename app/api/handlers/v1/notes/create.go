package notes

import (
	"errors"
	"github.com/codedpad/pad-api/business/v1/note"
	"github.com/codedpad/pad-api/platform/web/handler"
	"github.com/gin-gonic/gin"
	"net/http"
)

// Create godoc
// @Summary Create a note
// @Description Stores a note under an access code, optionally pad locked
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "Note to create"
// @Success 201 {object} map[string]uint64
// @Failure 400 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/notes [post]
func Create(ctx *gin.Context) handler.Result {
	var newN note.NewNote
	if err := ctx.ShouldBindJSON(&newN); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Code: handler.CodeInvalidInput, Message: "invalid request body"},
		}
	}

	id, err := note.Create(ctx, newN)

	switch {
	case errors.Is(err, note.ErrInvalidInput):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Code: handler.CodeInvalidInput, Message: err.Error()},
		}
	case err != nil:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Code: handler.CodeStorageFailure, Message: "could not save note"},
		}
	default:
		return handler.Result{
			Status: http.StatusCreated,
			Body:   map[string]uint64{"id": id},
		}
	}
}
