package youtube

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/kkdai/youtube/v2"
)

// DefaultLanguages is the language preference order used when the caller
// does not supply one.
var DefaultLanguages = []string{"ko", "en"}

const defaultTimeout = 30 * time.Second

// Client wraps the upstream YouTube client. Every outbound call is bounded
// by a timeout (YT_TIMEOUT env var, default 30s) parented on the caller's
// context.
type Client struct {
	client  youtube.Client
	http    *http.Client
	timeout time.Duration
}

// NewClient creates a new YouTube client.
func NewClient() *Client {
	timeout := defaultTimeout
	if v := os.Getenv("YT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		}
	}

	httpClient := &http.Client{Timeout: timeout}
	return &Client{
		client:  youtube.Client{HTTPClient: httpClient},
		http:    httpClient,
		timeout: timeout,
	}
}

// VideoInfo is the video metadata needed to serve transcript requests.
type VideoInfo struct {
	ID          string
	Title       string
	Author      string
	Duration    time.Duration
	Description string
	Captions    []CaptionTrack
}

// CaptionTrack is one available caption track.
type CaptionTrack struct {
	LanguageCode   string
	Name           string
	Kind           string // "asr" = auto-generated
	IsTranslatable bool
	BaseURL        string
}

// IsGenerated reports whether the track was produced by automatic speech
// recognition rather than human authoring.
func (t *CaptionTrack) IsGenerated() bool {
	return t.Kind == "asr"
}

// GetVideo fetches video metadata and the caption track list.
func (c *Client) GetVideo(ctx context.Context, urlOrID string) (*VideoInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	video, err := c.client.GetVideoContext(ctx, urlOrID)
	if err != nil {
		return nil, err
	}

	captions := make([]CaptionTrack, len(video.CaptionTracks))
	for i, track := range video.CaptionTracks {
		captions[i] = CaptionTrack{
			LanguageCode:   track.LanguageCode,
			Name:           track.Name.SimpleText,
			Kind:           track.Kind,
			IsTranslatable: track.IsTranslatable,
			BaseURL:        track.BaseURL,
		}
	}

	return &VideoInfo{
		ID:          video.ID,
		Title:       video.Title,
		Author:      video.Author,
		Duration:    video.Duration,
		Description: video.Description,
		Captions:    captions,
	}, nil
}

// FindCaption selects a caption track for the given language preference
// list. The first language with an available track wins; within a language
// a manual track is preferred over an auto-generated one. Returns nil when
// no requested language has a track.
func (v *VideoInfo) FindCaption(langs []string) *CaptionTrack {
	for _, lang := range langs {
		var generated *CaptionTrack
		for i := range v.Captions {
			if v.Captions[i].LanguageCode != lang {
				continue
			}
			if !v.Captions[i].IsGenerated() {
				return &v.Captions[i]
			}
			if generated == nil {
				generated = &v.Captions[i]
			}
		}
		if generated != nil {
			return generated
		}
	}
	return nil
}

// HasCaptions reports whether any caption track is available.
func (v *VideoInfo) HasCaptions() bool {
	return len(v.Captions) > 0
}

// CaptionLanguages returns the language codes of all available tracks in
// upstream order.
func (v *VideoInfo) CaptionLanguages() []string {
	codes := make([]string, len(v.Captions))
	for i := range v.Captions {
		codes[i] = v.Captions[i].LanguageCode
	}
	return codes
}
