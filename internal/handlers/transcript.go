package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"ytcap/internal/youtube"

	"github.com/labstack/echo/v4"
)

// TranscriptService is the upstream transcript capability the handlers
// depend on.
type TranscriptService interface {
	Fetch(ctx context.Context, urlOrID string, langs []string, preserveFormatting bool) (*youtube.CaptionResult, error)
	ListTracks(ctx context.Context, videoID string) ([]youtube.TrackInfo, error)
	GetVideo(ctx context.Context, urlOrID string) (*youtube.VideoInfo, error)
}

// TranscriptRequest is the POST /transcript body.
type TranscriptRequest struct {
	URLOrID            string   `json:"url_or_id"`
	Languages          []string `json:"languages"`
	Format             string   `json:"format"`
	PreserveFormatting bool     `json:"preserve_formatting"`
}

// TranscriptResponse is the fetch payload. Transcript holds a single string
// for text/srt/vtt output and a segment array for json output.
type TranscriptResponse struct {
	VideoID      string      `json:"video_id"`
	Language     string      `json:"language"`
	LanguageCode string      `json:"language_code"`
	IsGenerated  bool        `json:"is_generated"`
	Transcript   interface{} `json:"transcript"`
}

// TranscriptListResponse is the track enumeration payload.
type TranscriptListResponse struct {
	VideoID              string              `json:"video_id"`
	AvailableTranscripts []youtube.TrackInfo `json:"available_transcripts"`
}

// VideoResponse is the video metadata payload.
type VideoResponse struct {
	VideoID         string  `json:"video_id"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	DurationSeconds float64 `json:"duration_seconds"`
	Description     string  `json:"description"`
}

// ErrorResponse is the uniform failure body.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

var validFormats = map[string]bool{"json": true, "text": true, "srt": true, "vtt": true}

// TranscriptHandler handles transcript-related HTTP requests.
type TranscriptHandler struct {
	service TranscriptService
}

// NewTranscriptHandler creates a new TranscriptHandler.
func NewTranscriptHandler(service TranscriptService) *TranscriptHandler {
	return &TranscriptHandler{service: service}
}

// GetTranscript extracts a transcript from a URL or video ID.
// POST /transcript
func (h *TranscriptHandler) GetTranscript(c echo.Context) error {
	var req TranscriptRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid request body"})
	}
	return h.respondTranscript(c, req)
}

// GetTranscriptByID is the query-parameter form of GetTranscript.
// GET /transcript/:video_id
func (h *TranscriptHandler) GetTranscriptByID(c echo.Context) error {
	languages := c.QueryParam("languages")
	if languages == "" {
		languages = strings.Join(youtube.DefaultLanguages, ",")
	}

	preserve := false
	if v := c.QueryParam("preserve_formatting"); v != "" {
		p, err := strconv.ParseBool(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "preserve_formatting must be a boolean"})
		}
		preserve = p
	}

	return h.respondTranscript(c, TranscriptRequest{
		URLOrID:            c.Param("video_id"),
		Languages:          splitLanguages(languages),
		Format:             c.QueryParam("format"),
		PreserveFormatting: preserve,
	})
}

// respondTranscript validates the request, runs the fetch pipeline, and
// writes the response in the requested format. Any pipeline failure
// collapses into a 400 with a detail message.
func (h *TranscriptHandler) respondTranscript(c echo.Context, req TranscriptRequest) error {
	if req.URLOrID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "url_or_id is required"})
	}
	if req.Format == "" {
		req.Format = "json"
	}
	if !validFormats[req.Format] {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Detail: fmt.Sprintf("invalid format %q: must be json, text, srt or vtt", req.Format),
		})
	}
	if len(req.Languages) == 0 {
		req.Languages = youtube.DefaultLanguages
	}

	videoID := youtube.ExtractVideoID(req.URLOrID)

	result, err := h.service.Fetch(c.Request().Context(), videoID, req.Languages, req.PreserveFormatting)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "failed to fetch transcript: " + err.Error()})
	}

	var transcript interface{}
	switch req.Format {
	case "text":
		transcript = result.FormatAsText()
	case "srt":
		transcript = result.FormatAsSRT()
	case "vtt":
		transcript = result.FormatAsVTT()
	default:
		transcript = result.Segments()
	}

	return c.JSON(http.StatusOK, TranscriptResponse{
		VideoID:      result.VideoID,
		Language:     result.Language,
		LanguageCode: result.LanguageCode,
		IsGenerated:  result.IsGenerated,
		Transcript:   transcript,
	})
}

// ListTranscripts enumerates the caption tracks available for a video.
// GET /list/:video_id
func (h *TranscriptHandler) ListTranscripts(c echo.Context) error {
	videoID := youtube.ExtractVideoID(c.Param("video_id"))

	tracks, err := h.service.ListTracks(c.Request().Context(), videoID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "failed to list transcripts: " + err.Error()})
	}

	return c.JSON(http.StatusOK, TranscriptListResponse{
		VideoID:              videoID,
		AvailableTranscripts: tracks,
	})
}

// GetVideoInfo returns basic video metadata.
// GET /video/:video_id
func (h *TranscriptHandler) GetVideoInfo(c echo.Context) error {
	videoID := youtube.ExtractVideoID(c.Param("video_id"))

	video, err := h.service.GetVideo(c.Request().Context(), videoID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "failed to get video: " + err.Error()})
	}

	return c.JSON(http.StatusOK, VideoResponse{
		VideoID:         video.ID,
		Title:           video.Title,
		Author:          video.Author,
		DurationSeconds: video.Duration.Seconds(),
		Description:     video.Description,
	})
}

// splitLanguages parses a comma-separated language list, dropping empty
// elements.
func splitLanguages(s string) []string {
	parts := strings.Split(s, ",")
	langs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			langs = append(langs, p)
		}
	}
	return langs
}
