package files

import (
	"errors"
	"github.com/codedpad/pad-api/business/v1/file"
	"github.com/codedpad/pad-api/platform/web/handler"
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"
)

type deleteRequest struct {
	RequesterId string `json:"requesterId"`
	PadLockCode string `json:"padLockCode"`
}

// Delete godoc
// @Summary Delete a file
// @Description Deletes a file and its stored bytes; only the owner may, and a pad locked file needs the matching code
// @Tags File
// @Accept json
// @Produce json
// @Param id path string true "File id"
// @Param request body deleteRequest true "Requester"
// @Success 200
// @Failure 400 {object} handler.Error
// @Failure 403 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/files/{id} [delete]
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

	err = file.Delete(ctx, id, req.RequesterId, req.PadLockCode)

	switch {
	case errors.Is(err, file.ErrNotFound):
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Code: handler.CodeNotFound, Message: "file not found"},
		}
	case errors.Is(err, file.ErrForbidden):
		return handler.Result{
			Status: http.StatusForbidden,
			Body:   handler.Error{Code: handler.CodeForbidden, Message: "not allowed to delete this file"},
		}
	case err != nil:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Code: handler.CodeStorageFailure, Message: "could not delete file"},
		}
	default:
		return handler.Result{
			Status: http.StatusOK,
		}
	}
}
