package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/xaenox/memedb/internal/feedback"
	"github.com/xaenox/memedb/internal/models"
)

const recentFeedbackLimit = 10

func (s *Server) handlePostFeedback(c echo.Context) error {
	var req models.FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if req.MemeID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "memeId is required",
		})
	}
	if len(req.OriginalTags) == 0 || len(req.CorrectedTags) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "originalTags and correctedTags are required",
		})
	}

	entry := feedback.Build(&req, time.Now().UTC())
	if err := s.store.Append(c.Request().Context(), entry); err != nil {
		s.logger.Error("failed to store feedback", zap.String("memeId", req.MemeID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Failed to store feedback",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":          true,
		"message":          "Feedback recorded",
		"learningInsights": entry.Improvements,
	})
}

func (s *Server) handleGetFeedback(c echo.Context) error {
	ctx := c.Request().Context()

	switch c.QueryParam("action") {
	case "insights":
		entries, err := s.store.All(ctx)
		if err != nil {
			return s.feedbackReadError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success":  true,
			"insights": feedback.BuildInsights(entries),
		})

	case "patterns":
		entries, err := s.store.All(ctx)
		if err != nil {
			return s.feedbackReadError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success":  true,
			"patterns": feedback.BuildPatterns(entries),
		})

	default:
		entries, err := s.store.Recent(ctx, recentFeedbackLimit)
		if err != nil {
			return s.feedbackReadError(c, err)
		}
		total, err := s.store.Count(ctx)
		if err != nil {
			return s.feedbackReadError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success":  true,
			"feedback": entries,
			"total":    total,
		})
	}
}

func (s *Server) feedbackReadError(c echo.Context, err error) error {
	s.logger.Error("failed to read feedback", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"success": false,
		"error":   "Failed to read feedback",
	})
}
