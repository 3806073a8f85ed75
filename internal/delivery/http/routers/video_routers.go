package routers

import (
	"video-streamer/internal/delivery/http/handlers"

	"github.com/gofiber/fiber/v2"
)

func SetupVideoRoutes(app *fiber.App, videoHandler *handlers.VideoHandler) {
	// Routes:
	api := app.Group("/api/v1")
	api.Get("/videos/:id/stream", videoHandler.StreamVideo)
	api.Get("/videos/:id/segments/:index", videoHandler.GetSegment)
	api.Delete("/videos/:id/segments", videoHandler.RemoveSegments)
	api.Post("/videos/:id/process", videoHandler.ProcessVideo)
	api.Get("/videos/:id/metadata", videoHandler.GetMetadata)
	api.Get("/videos/:id/thumbnail", videoHandler.GetThumbnail)
}
