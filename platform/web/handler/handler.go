package handler

import (
	"github.com/gin-gonic/gin"
)

// Result is what every route handler returns; the wrapper takes care of writing it out
type Result struct {
	Status int
	Body   any
}

// Error is the json body for every non-2xx response.
// Code is stable and machine checkable, Message is for humans.
type Error struct {
	Code    string `json:"code" example:"notFound"`
	Message string `json:"message" example:"note not found"`
}

// Stable error codes used across the api
const (
	CodeInvalidInput         = "invalidInput"
	CodeForbidden            = "forbidden"
	CodeNotFound             = "notFound"
	CodeAlreadySaved         = "alreadySaved"
	CodePayloadTooLarge      = "payloadTooLarge"
	CodeUnsupportedMediaType = "unsupportedMediaType"
	CodeStorageFailure       = "storageFailure"
)

// Wrapper adapts a Result returning handler into a gin handler
func Wrapper(h func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result := h(ctx)
		if result.Body == nil {
			ctx.Status(result.Status)
			return
		}
		ctx.JSON(result.Status, result.Body)
	}
}
