package files

import (
	"errors"
	"github.com/codedpad/pad-api/business/v1/file"
	"github.com/codedpad/pad-api/platform/web/handler"
	"github.com/codedpad/pad-api/sys"
	"github.com/gin-gonic/gin"
	"net/http"
	"strings"
)

// multipart framing on top of the file itself
const formOverhead = 1 << 20

// Upload godoc
// @Summary Upload a file
// @Description Streams a file into storage and records it under an access code, optionally pad locked
// @Tags File
// @Accept mpfd
// @Produce json
// @Param file formData file true "File to upload"
// @Param ownerId formData string true "Access code"
// @Param padLocked formData boolean false "Pad lock the file"
// @Param padLockCode formData string false "Pad lock code"
// @Success 201 {object} map[string]uint64
// @Failure 400 {object} handler.Error
// @Failure 413 {object} handler.Error
// @Failure 415 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/files [post]
func Upload(ctx *gin.Context) handler.Result {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, sys.Configs.Upload.MaxBytes+formOverhead)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		if strings.Contains(err.Error(), "too large") {
			return handler.Result{
				Status: http.StatusRequestEntityTooLarge,
				Body:   handler.Error{Code: handler.CodePayloadTooLarge, Message: "request body exceeds the upload size limit"},
			}
		}
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Code: handler.CodeInvalidInput, Message: "file is required"},
		}
	}

	newF := file.NewFile{
		OwnerId:     ctx.PostForm("ownerId"),
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		PadLocked:   ctx.PostForm("padLocked") == "true",
		PadLockCode: ctx.PostForm("padLockCode"),
	}

	src, err := fileHeader.Open()
	if err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Code: handler.CodeInvalidInput, Message: "could not read uploaded file"},
		}
	}
	defer func() {
		_ = src.Close()
	}()

	id, err := file.Upload(ctx, newF, src)

	switch {
	case errors.Is(err, file.ErrTooLarge):
		return handler.Result{
			Status: http.StatusRequestEntityTooLarge,
			Body:   handler.Error{Code: handler.CodePayloadTooLarge, Message: "file exceeds the upload size limit"},
		}
	case errors.Is(err, file.ErrUnsupportedType):
		return handler.Result{
			Status: http.StatusUnsupportedMediaType,
			Body:   handler.Error{Code: handler.CodeUnsupportedMediaType, Message: "content type is not allowed"},
		}
	case errors.Is(err, file.ErrInvalidInput):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Code: handler.CodeInvalidInput, Message: err.Error()},
		}
	case errors.Is(err, file.ErrStorage):
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Code: handler.CodeStorageFailure, Message: "could not store the file"},
		}
	case err != nil:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Code: handler.CodeStorageFailure, Message: "could not save the file"},
		}
	default:
		return handler.Result{
			Status: http.StatusCreated,
			Body:   map[string]uint64{"id": id},
		}
	}
}
