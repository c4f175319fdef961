package files

import (
	"errors"
	"github.com/codedpad/pad-api/business/v1/file"
	"github.com/codedpad/pad-api/platform/web/handler"
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"
)

type saveRequest struct {
	UserId string `json:"userId"`
}

// Save godoc
// @Summary Bookmark a file
// @Description Adds the file to the user's saved list; saving twice reports alreadySaved
// @Tags File
// @Accept json
// @Produce json
// @Param id path string true "File id"
// @Param request body saveRequest true "User saving the file"
// @Success 200
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/files/{id}/save [post]
func Save(ctx *gin.Context) handler.Result {

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Code: handler.CodeInvalidInput, Message: "invalid id"},
		}
	}

	var req saveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.UserId == "" {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Code: handler.CodeInvalidInput, Message: "userId is required"},
		}
	}

	err = file.Save(ctx, id, req.UserId)

	switch {
	case errors.Is(err, file.ErrNotFound):
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Code: handler.CodeNotFound, Message: "file not found"},
		}
	case errors.Is(err, file.ErrAlreadySaved):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Code: handler.CodeAlreadySaved, Message: "file already saved"},
		}
	case err != nil:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Code: handler.CodeStorageFailure, Message: "could not save file"},
		}
	default:
		return handler.Result{
			Status: http.StatusOK,
		}
	}
}
