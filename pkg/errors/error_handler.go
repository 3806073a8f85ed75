package errors

import (
	"log"

	"video-streamer/pkg/errors/i18n"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	if ve, ok := err.(*VideoError); ok {
		// Orijinal hatayı logla (debug için)
		if ve.Err != nil {
			log.Printf("Video error [%s]: %v", ve.Code, ve.Err)
		}

		// Status kodunu seç
		var status int
		switch ve.Code {
		case "video_not_found", "segment_not_found":
			status = fiber.StatusNotFound
		case "malformed_range", "invalid_segment_index", "invalid_hash", "file_cant_open":
			status = fiber.StatusBadRequest
		case "unsatisfiable_range":
			status = fiber.StatusRequestedRangeNotSatisfiable
		case "already_processing":
			status = fiber.StatusConflict
		case "unsupported_media", "probe_failed":
			status = fiber.StatusUnprocessableEntity
		default:
			status = fiber.StatusInternalServerError
		}

		// Client'a sadece Code + Message gönder, locale varsa çevir
		msg := ve.Message
		if translated := i18n.T(ve.Code); translated != ve.Code {
			msg = translated
		}
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   ve.Code,
			"message": msg,
		})
	}

	// Yakalanmayan hatalar için fallback
	log.Printf("Unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   "internal_error",
		"message": "Sunucu hatası",
	})
}
