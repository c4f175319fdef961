package padlock

import (
	"errors"
	"github.com/codedpad/pad-api/business/v1/file"
	"github.com/codedpad/pad-api/business/v1/note"
	"github.com/codedpad/pad-api/platform/web/handler"
	"github.com/gin-gonic/gin"
	"net/http"
)

type verifyRequest struct {
	UserId      string `json:"userId"`
	ContentId   uint64 `json:"contentId"`
	Kind        string `json:"kind"`
	PadLockCode string `json:"padLockCode"`
}

type verifyResponse struct {
	Content string `json:"content"`
}

// Verify godoc
// @Summary Verify a pad lock code
// @Description Returns the protected field of a note or file when the presented code matches
// @Tags PadLock
// @Accept json
// @Produce json
// @Param request body verifyRequest true "Item to unlock"
// @Success 200 {object} verifyResponse
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/padlock/verify [post]
func Verify(ctx *gin.Context) handler.Result {
	var req verifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.UserId == "" || req.ContentId == 0 || req.PadLockCode == "" {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Code: handler.CodeInvalidInput, Message: "userId, contentId and padLockCode are required"},
		}
	}

	var content string
	var err error
	switch req.Kind {
	case "note":
		content, err = note.Unlock(ctx, req.ContentId, req.UserId, req.PadLockCode)
	case "file":
		content, err = file.Unlock(ctx, req.ContentId, req.UserId, req.PadLockCode)
	default:
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Code: handler.CodeInvalidInput, Message: "kind must be note or file"},
		}
	}

	switch {
	case errors.Is(err, note.ErrNotFound), errors.Is(err, file.ErrNotFound):
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Code: handler.CodeNotFound, Message: "content not found"},
		}
	case errors.Is(err, note.ErrForbidden), errors.Is(err, file.ErrForbidden):
		return handler.Result{
			Status: http.StatusUnauthorized,
			Body:   handler.Error{Code: handler.CodeForbidden, Message: "invalid pad lock code"},
		}
	case err != nil:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Code: handler.CodeStorageFailure, Message: "could not verify pad lock"},
		}
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body:   verifyResponse{Content: content},
		}
	}
}
