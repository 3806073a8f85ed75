package handlers

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"video-streamer/internal/domain/dto"
	"video-streamer/internal/usecases"
	errs "video-streamer/pkg/errors"
	"video-streamer/pkg/helper"
	"video-streamer/pkg/httprange"

	"github.com/gofiber/fiber/v2"
)

type VideoHandler struct {
	service   usecases.VideoService
	thumbsDir string
}

func NewVideoHandler(service usecases.VideoService, thumbsDir string) *VideoHandler {
	return &VideoHandler{
		service:   service,
		thumbsDir: thumbsDir,
	}
}

// Response stream kapanınca dosya tanıtıcısı da kapanır
// (fasthttp io.Closer implemente eden body stream'leri kapatır).
type rangeReader struct {
	file *os.File
	r    io.Reader
}

func (rr *rangeReader) Read(p []byte) (int, error) {
	return rr.r.Read(p)
}

func (rr *rangeReader) Close() error {
	return rr.file.Close()
}

// StreamVideo
//
// @Summary      Stream Video
// @Description  Streams the source file, honoring an optional byte-range request
// @Tags         Video
// @Produce      video/mp4
// @Param        id     path    string true  "Video ID"
// @Param        Range  header  string false "Byte range, e.g. bytes=0-1023"
// @Success      200 "Full content"
// @Success      206 "Partial content"
// @Failure      400 {object} dto.ErrorResponse "Malformed Range header"
// @Failure      404 {object} dto.ErrorResponse "Video not found"
// @Failure      416 "Requested range not satisfiable"
// @Router       /videos/{id}/stream [get]
func (h *VideoHandler) StreamVideo(c *fiber.Ctx) error {
	videoID := c.Params("id")

	srcPath, err := h.service.ResolveSource(videoID)
	if err != nil {
		return errs.HandleError(c, err)
	}

	// Store var dedi, stat/open hatası artık normal not-found değil (race/bozulma)
	info, err := os.Stat(srcPath)
	if err != nil {
		return errs.HandleError(c, errs.ErrInternal(err))
	}
	totalSize := info.Size()

	window, err := httprange.Resolve(c.Get(fiber.HeaderRange), totalSize)
	if err == httprange.ErrUnsatisfiable {
		c.Set(fiber.HeaderContentRange, httprange.UnsatisfiableContentRange(totalSize))
		return c.SendStatus(fiber.StatusRequestedRangeNotSatisfiable)
	}
	if err == httprange.ErrMalformed {
		// Bilinçli tercih: bozuk başlıkla full resource servis edilmez
		return errs.HandleError(c, errs.ErrMalformedRange(err))
	}

	file, err := os.Open(srcPath)
	if err != nil {
		return errs.HandleError(c, errs.ErrInternal(err))
	}

	c.Set(fiber.HeaderContentType, helper.GetMimeTypeFromExtension(srcPath))

	if window == nil {
		// Range yok: 200 + tüm içerik, stream edilerek
		return c.SendStream(file, int(totalSize))
	}

	if _, err := file.Seek(window.Start, io.SeekStart); err != nil {
		file.Close()
		return errs.HandleError(c, errs.ErrInternal(err))
	}

	c.Set(fiber.HeaderContentRange, window.ContentRange())
	c.Set(fiber.HeaderAcceptRanges, "bytes")
	c.Status(fiber.StatusPartialContent)
	return c.SendStream(&rangeReader{
		file: file,
		r:    io.LimitReader(file, window.Length()),
	}, int(window.Length()))
}

// GetSegment
//
// @Summary      Get Segment
// @Description  Returns one produced segment file by index
// @Tags         Video
// @Produce      video/mp4
// @Param        id     path  string true "Video ID"
// @Param        index  path  int    true "Segment index (zero-based)"
// @Success      200 "Segment content"
// @Failure      400 {object} dto.ErrorResponse "Invalid index"
// @Failure      404 {object} dto.ErrorResponse "Segment not found"
// @Router       /videos/{id}/segments/{index} [get]
func (h *VideoHandler) GetSegment(c *fiber.Ctx) error {
	videoID := c.Params("id")

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return errs.HandleError(c, errs.ErrInvalidSegmentIndex(err))
	}

	segPath, err := h.service.ResolveSegment(videoID, index)
	if err != nil {
		return errs.HandleError(c, err)
	}

	info, err := os.Stat(segPath)
	if err != nil {
		// Store kümede gösterdi ama dosya yok: yeniden işleme yarışı ya da bozulma
		return errs.HandleError(c, errs.ErrInternal(err))
	}

	file, err := os.Open(segPath)
	if err != nil {
		return errs.HandleError(c, errs.ErrInternal(err))
	}

	c.Set(fiber.HeaderContentType, helper.GetMimeTypeFromExtension(segPath))
	return c.SendStream(file, int(info.Size()))
}

// ProcessVideo
//
// @Summary      Process Video
// @Description  Splits the source into fixed-duration segments and publishes the set
// @Tags         Video
// @Produce      json
// @Param        id  path  string true "Video ID"
// @Success      200 {object} dto.ProcessVideoResponse
// @Failure      404 {object} dto.ErrorResponse "Video not found"
// @Failure      409 {object} dto.ErrorResponse "Already processing"
// @Failure      422 {object} dto.ErrorResponse "Unsupported media"
// @Failure      500 {object} dto.ErrorResponse "Processing failed"
// @Router       /videos/{id}/process [post]
func (h *VideoHandler) ProcessVideo(c *fiber.Ctx) error {
	videoID := c.Params("id")

	set, err := h.service.Process(videoID)
	if err != nil {
		return errs.HandleError(c, err)
	}

	return c.JSON(dto.ProcessVideoResponse{
		Success: true,
		Data: &dto.ProcessResultDTO{
			VideoID:         set.VideoID,
			TotalSegments:   set.TotalSegments(),
			SegmentDuration: set.SegmentDuration,
			Segments:        set.Filenames(),
		},
	})
}

// GetMetadata
//
// @Summary      Get Metadata
// @Description  Returns probed format information for the source file
// @Tags         Video
// @Produce      json
// @Param        id  path  string true "Video ID"
// @Success      200 {object} dto.MetadataResponse
// @Failure      404 {object} dto.ErrorResponse "Video not found"
// @Failure      422 {object} dto.ErrorResponse "Probe failed"
// @Router       /videos/{id}/metadata [get]
func (h *VideoHandler) GetMetadata(c *fiber.Ctx) error {
	videoID := c.Params("id")

	meta, err := h.service.Metadata(videoID)
	if err != nil {
		return errs.HandleError(c, err)
	}

	return c.JSON(dto.MetadataResponse{
		Success: true,
		Data:    meta,
	})
}

// GetThumbnail
//
// @Summary      Get Thumbnail
// @Description  Returns the poster image generated at upload time
// @Tags         Video
// @Produce      image/jpeg
// @Param        id  path  string true "Video ID"
// @Success      200 "Thumbnail content"
// @Failure      404 {object} dto.ErrorResponse "Thumbnail not ready"
// @Router       /videos/{id}/thumbnail [get]
func (h *VideoHandler) GetThumbnail(c *fiber.Ctx) error {
	videoID := c.Params("id")
	if !helper.IsSafeVideoID(videoID) {
		return errs.HandleError(c, errs.ErrVideoNotFound(nil))
	}

	thumbPath := filepath.Join(h.thumbsDir, videoID+".jpg")
	info, err := os.Stat(thumbPath)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Success: false,
			Error:   "thumbnail_not_found",
			Message: "Thumbnail henüz hazır değil",
		})
	}

	file, err := os.Open(thumbPath)
	if err != nil {
		return errs.HandleError(c, errs.ErrInternal(err))
	}

	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.SendStream(file, int(info.Size()))
}

// RemoveSegments
//
// @Summary      Remove Segments
// @Description  Deletes the produced segment set; idempotent
// @Tags         Video
// @Param        id  path  string true "Video ID"
// @Success      204 "Removed"
// @Router       /videos/{id}/segments [delete]
func (h *VideoHandler) RemoveSegments(c *fiber.Ctx) error {
	videoID := c.Params("id")

	if err := h.service.RemoveSegments(videoID); err != nil {
		return errs.HandleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
