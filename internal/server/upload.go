package server

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const maxUploadBytes = 10 << 20

// handleUploadBookmarklet accepts a multipart image dragged into the save
// overlay. Tagging failures do not fail the upload.
func (s *Server) handleUploadBookmarklet(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Image file is required",
		})
	}
	if fileHeader.Size > maxUploadBytes {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Image exceeds 10MB limit",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Could not read image file",
		})
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Could not read image file",
		})
	}

	source := c.FormValue("source")

	result, err := s.service.UploadFromBookmarklet(c.Request().Context(), fileHeader.Filename, content, source)
	if err != nil {
		s.logger.Error("bookmarklet upload failed", zap.Error(err))
		return c.JSON(http.StatusBadGateway, echo.Map{
			"success": false,
			"error":   "Upload failed",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"meme":     result.Meme,
		"tags":     result.Meme.Tags,
		"degraded": result.Degraded,
	})
}

type uploadURLRequest struct {
	ImageURL   string   `json:"image_url"`
	SourceURL  string   `json:"source_url"`
	ManualTags []string `json:"manual_tags"`
}

// handleUploadURLWithTags saves a meme by URL. The image is downloaded here
// only to analyze it; storage by URL is the backend's job.
func (s *Server) handleUploadURLWithTags(c echo.Context) error {
	var req uploadURLRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if req.ImageURL == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "image_url is required",
		})
	}

	result, err := s.service.UploadFromURL(c.Request().Context(), req.ImageURL, req.SourceURL, req.ManualTags)
	if err != nil {
		s.logger.Error("url upload failed", zap.String("image_url", req.ImageURL), zap.Error(err))
		return c.JSON(http.StatusBadGateway, echo.Map{
			"success": false,
			"error":   "Upload failed",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"meme":     result.Meme,
		"tags":     result.Meme.Tags,
		"degraded": result.Degraded,
	})
}
