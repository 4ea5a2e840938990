package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/xaenox/memedb/internal/tagging"
)

func (s *Server) handleTags(c echo.Context) error {
	tags, err := s.service.Tags(c.Request().Context())
	if err != nil {
		s.logger.Error("failed to list tags", zap.Error(err))
		return c.JSON(http.StatusBadGateway, echo.Map{
			"success": false,
			"error":   "Failed to list tags",
		})
	}
	if tags == nil {
		tags = []string{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    tags,
	})
}

func (s *Server) handleTagSuggestions(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    tagging.QuickSuggestions(),
	})
}

func (s *Server) handleRelatedTags(c echo.Context) error {
	tag := c.QueryParam("tag")
	if tag == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "tag parameter is required",
		})
	}

	related := tagging.RelatedTags(tag)
	if related == nil {
		related = []string{}
	}
	synonyms := tagging.Synonyms(tag)
	if synonyms == nil {
		synonyms = []string{}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"tag":      tag,
		"related":  related,
		"synonyms": synonyms,
	})
}
