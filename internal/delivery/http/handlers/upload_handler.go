package handlers

import (
	"video-streamer/internal/domain/dto"
	"video-streamer/internal/usecases"
	errs "video-streamer/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	uploadService usecases.UploadService
}

func NewUploadHandler(uploadService usecases.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// UploadVideo
//
// @Summary      Upload Video
// @Description  Accepts a video file and stores it under a freshly generated id
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file       formData  file   true  "Video file"
// @Param        file_hash  formData  string false "SHA-256 of the file for integrity check"
// @Success      201 {object} dto.UploadVideoResponse
// @Failure      400 {object} dto.ErrorResponse "Missing file"
// @Failure      422 {object} dto.ErrorResponse "Unsupported media"
// @Router       /videos [post]
func (h *UploadHandler) UploadVideo(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false,
			Error:   "missing_file",
			Message: "Dosya bulunamadı",
		})
	}

	response, err := h.uploadService.UploadVideo(fileHeader, c.FormValue("file_hash"))
	if err != nil {
		return errs.HandleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}
