package server

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/xaenox/memedb/internal/models"
)

// searchResponse field declaration order fixes the JSON key order, which the
// JSONP error body depends on (success, error, data).
type searchResponse struct {
	Success bool          `json:"success"`
	Error   string        `json:"error,omitempty"`
	Data    []models.Meme `json:"data"`
	Message string        `json:"message,omitempty"`
}

var callbackNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// handleSearchMemes proxies search to the backend. With a callback parameter
// the response is JSONP: always HTTP 200, errors encoded in the body, so the
// injected <script> tag on the calling page still executes.
func (s *Server) handleSearchMemes(c echo.Context) error {
	callback := c.QueryParam("callback")
	if callback != "" && !callbackNameRe.MatchString(callback) {
		return c.JSON(http.StatusBadRequest, searchResponse{
			Success: false,
			Error:   "Invalid callback name",
			Data:    []models.Meme{},
		})
	}

	q := c.QueryParam("q")
	if q == "" {
		resp := searchResponse{
			Success: false,
			Error:   "Query parameter is required",
			Data:    []models.Meme{},
		}
		if callback != "" {
			return writeJSONP(c, callback, resp)
		}
		return c.JSON(http.StatusBadRequest, resp)
	}

	query := models.SearchQuery{Q: q}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil && limit > 0 {
		query.Limit = limit
	}

	memes, err := s.service.Search(c.Request().Context(), query)
	if err != nil {
		s.logger.Error("search failed", zap.String("q", q), zap.Error(err))
		resp := searchResponse{
			Success: false,
			Error:   "Search failed",
			Data:    []models.Meme{},
		}
		if callback != "" {
			return writeJSONP(c, callback, resp)
		}
		return c.JSON(http.StatusBadGateway, resp)
	}

	if memes == nil {
		memes = []models.Meme{}
	}
	resp := searchResponse{Success: true, Data: memes}
	if callback != "" {
		return writeJSONP(c, callback, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

func writeJSONP(c echo.Context, callback string, resp searchResponse) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	body := callback + "(" + string(payload) + ");"
	return c.Blob(http.StatusOK, "application/javascript", []byte(body))
}
