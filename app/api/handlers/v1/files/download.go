package files

import (
	"errors"
	"fmt"
	"github.com/codedpad/pad-api/business/v1/file"
	"github.com/codedpad/pad-api/platform/web/handler"
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"
)

// Download godoc
// @Summary Download a file
// @Description Streams the stored bytes back; a pad locked file requires the matching code
// @Tags File
// @Produce octet-stream
// @Param id path string true "File id"
// @Param padLockCode query string false "Pad lock code"
// @Success 200 {file} binary
// @Failure 400 {object} handler.Error
// @Failure 403 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/files/{id}/download [get]
func Download(ctx *gin.Context) {

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, handler.Error{Code: handler.CodeInvalidInput, Message: "invalid id"})
		return
	}

	meta, stream, err := file.Download(ctx, id, ctx.Query("padLockCode"))

	switch {
	case errors.Is(err, file.ErrNotFound):
		ctx.JSON(http.StatusNotFound, handler.Error{Code: handler.CodeNotFound, Message: "file not found"})
		return
	case errors.Is(err, file.ErrForbidden):
		ctx.JSON(http.StatusForbidden, handler.Error{Code: handler.CodeForbidden, Message: "pad lock code does not match"})
		return
	case err != nil:
		ctx.JSON(http.StatusInternalServerError, handler.Error{Code: handler.CodeStorageFailure, Message: "could not open the file"})
		return
	}
	defer func() {
		_ = stream.Close()
	}()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", meta.Filename),
	}
	ctx.DataFromReader(http.StatusOK, meta.Size, meta.ContentType, stream, extraHeaders)
}
