package routers

import (
	"video-streamer/internal/delivery/http/handlers"

	"github.com/gofiber/fiber/v2"
)

func SetupUploadRoutes(app *fiber.App, uploadHandler *handlers.UploadHandler) {
	api := app.Group("/api/v1")
	api.Post("/videos", uploadHandler.UploadVideo)
}
