package server

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/xaenox/memedb/internal/memes"
	"github.com/xaenox/memedb/internal/storage"
)

// Server exposes the HTTP API: analysis, search, feedback and the
// bookmarklet upload surfaces.
type Server struct {
	echo    *echo.Echo
	service *memes.Service
	store   storage.FeedbackStore
	logger  *zap.Logger
}

func New(service *memes.Service, store storage.FeedbackStore, logger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:    e,
		service: service,
		store:   store,
		logger:  logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.echo.Group("/api")

	api.POST("/analyze-meme", s.handleAnalyzeMeme)
	api.GET("/search-memes", s.handleSearchMemes)

	api.POST("/meme-feedback", s.handlePostFeedback)
	api.GET("/meme-feedback", s.handleGetFeedback)

	api.POST("/upload-bookmarklet", s.handleUploadBookmarklet)
	api.POST("/upload-url-with-tags", s.handleUploadURLWithTags)
	api.GET("/bookmarklet-proxy", s.handleBookmarkletProxy)

	api.GET("/tags", s.handleTags)
	api.GET("/tags/suggestions", s.handleTagSuggestions)
	api.GET("/tags/related", s.handleRelatedTags)
}

// Handler exposes the routing tree, for tests.
func (s *Server) Handler() *echo.Echo {
	return s.echo
}

func (s *Server) Start(port int) error {
	addr := fmt.Sprintf(":%d", port)
	s.logger.Info("starting http server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
