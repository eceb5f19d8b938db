package handlers

import (
	"net/http"

	"ytcap/internal/version"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the echo instance with all routes registered.
func NewRouter(service TranscriptService) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	h := NewTranscriptHandler(service)

	e.GET("/", Root)
	e.GET("/health", Health)
	e.POST("/transcript", h.GetTranscript)
	e.GET("/transcript/:video_id", h.GetTranscriptByID)
	e.GET("/list/:video_id", h.ListTranscripts)
	e.GET("/video/:video_id", h.GetVideoInfo)

	return e
}

// Root returns basic server info.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "YouTube Transcript API Server",
		"version": version.Version,
	})
}

// Health reports server liveness.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
