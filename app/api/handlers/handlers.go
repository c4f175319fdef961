package handlers

import (
	"github.com/codedpad/pad-api/app/api/handlers/v1/files"
	"github.com/codedpad/pad-api/app/api/handlers/v1/healthcheck"
	"github.com/codedpad/pad-api/app/api/handlers/v1/notes"
	"github.com/codedpad/pad-api/app/api/handlers/v1/padlock"
	"github.com/codedpad/pad-api/platform/web/handler"
	"github.com/gin-gonic/gin"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine) {
	r.POST("/v1/notes", handler.Wrapper(notes.Create))
	r.GET("/v1/users/:userId/notes", handler.Wrapper(notes.List))
	r.GET("/v1/notes/:id", handler.Wrapper(notes.Get))
	r.DELETE("/v1/notes/:id", handler.Wrapper(notes.Delete))

	r.POST("/v1/files", handler.Wrapper(files.Upload))
	r.GET("/v1/users/:userId/files", handler.Wrapper(files.List))
	r.POST("/v1/files/:id/save", handler.Wrapper(files.Save))
	r.GET("/v1/files/:id/download", files.Download)
	r.DELETE("/v1/files/:id", handler.Wrapper(files.Delete))

	r.POST("/v1/padlock/verify", handler.Wrapper(padlock.Verify))
}
