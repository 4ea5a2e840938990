package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type analyzeRequest struct {
	Image    string `json:"image"`
	MimeType string `json:"mimeType"`
}

// handleAnalyzeMeme tags an image. AI trouble degrades to pattern analysis
// inside the service, so this handler only fails on bad input.
func (s *Server) handleAnalyzeMeme(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if req.Image == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Image is required",
		})
	}

	imageBase64, mimeType := splitDataURL(req.Image, req.MimeType)
	if !strings.HasPrefix(mimeType, "image/") {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Only image files are supported",
		})
	}

	result := s.service.Analyze(c.Request().Context(), imageBase64, mimeType)

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"analysis": result,
	})
}

// splitDataURL separates a data URL into payload and mime type. Bare base64
// payloads pass through with the caller-provided (or default) mime.
func splitDataURL(image, fallbackMime string) (string, string) {
	if strings.HasPrefix(image, "data:") {
		rest := strings.TrimPrefix(image, "data:")
		if idx := strings.Index(rest, ";base64,"); idx >= 0 {
			return rest[idx+len(";base64,"):], rest[:idx]
		}
	}
	if fallbackMime == "" {
		fallbackMime = "image/jpeg"
	}
	return image, fallbackMime
}
