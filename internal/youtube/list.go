package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Track enumeration goes through the Innertube /player endpoint with the
// ANDROID client: unlike the watch page it also reports the translation
// target languages alongside the caption tracks.

const (
	innertubePlayerURL = "https://www.youtube.com/youtubei/v1/player"
	androidVersion     = "20.10.38"
	androidUA          = "com.google.android.youtube/" + androidVersion + " (Linux; U; Android 11) gzip"
)

type innertubeReq struct {
	VideoID        string       `json:"videoId"`
	Context        innertubeCtx `json:"context"`
	RacyCheckOk    bool         `json:"racyCheckOk"`
	ContentCheckOk bool         `json:"contentCheckOk"`
}

type innertubeCtx struct {
	Client innertubeClient `json:"client"`
}

type innertubeClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion,omitempty"`
	Hl                string `json:"hl,omitempty"`
	Gl                string `json:"gl,omitempty"`
}

type innertubePlayerResp struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks        []innertubeCaptionTrack `json:"captionTracks"`
			TranslationLanguages []struct {
				LanguageCode string `json:"languageCode"`
			} `json:"translationLanguages"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

type innertubeCaptionTrack struct {
	BaseURL string `json:"baseUrl"`
	Name    struct {
		SimpleText string `json:"simpleText"`
		Runs       []struct {
			Text string `json:"text"`
		} `json:"runs"`
	} `json:"name"`
	LanguageCode   string `json:"languageCode"`
	Kind           string `json:"kind"` // "asr" = auto-generated
	IsTranslatable bool   `json:"isTranslatable"`
}

// TrackInfo describes one available caption track.
type TrackInfo struct {
	Language             string   `json:"language"`
	LanguageCode         string   `json:"language_code"`
	IsGenerated          bool     `json:"is_generated"`
	IsTranslatable       bool     `json:"is_translatable"`
	TranslationLanguages []string `json:"translation_languages"`
}

// ListTracks enumerates all caption tracks of a video in upstream order,
// with the translation target languages YouTube offers for translatable
// tracks.
func (c *Client) ListTracks(ctx context.Context, videoID string) ([]TrackInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqBody, err := json.Marshal(innertubeReq{
		VideoID: videoID,
		Context: innertubeCtx{
			Client: innertubeClient{
				ClientName:        "ANDROID",
				ClientVersion:     androidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, innertubePlayerURL+"?prettyPrint=false", bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", androidUA)
	req.Header.Set("X-Youtube-Client-Name", "3")
	req.Header.Set("X-Youtube-Client-Version", androidVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("player request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var playerResp innertubePlayerResp
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxCaptionBody)).Decode(&playerResp); err != nil {
		return nil, fmt.Errorf("failed to decode player response: %w", err)
	}

	if playerResp.Captions == nil {
		if playerResp.PlayabilityStatus != nil && playerResp.PlayabilityStatus.Reason != "" {
			return nil, fmt.Errorf("captions unavailable: %s", playerResp.PlayabilityStatus.Reason)
		}
		return nil, fmt.Errorf("no captions available for video %s", videoID)
	}

	renderer := playerResp.Captions.PlayerCaptionsTracklistRenderer
	if len(renderer.CaptionTracks) == 0 {
		return nil, errors.New("no caption tracks")
	}

	translations := make([]string, 0, len(renderer.TranslationLanguages))
	for _, tl := range renderer.TranslationLanguages {
		translations = append(translations, tl.LanguageCode)
	}

	return projectTrackInfos(renderer.CaptionTracks, translations), nil
}

// projectTrackInfos converts player-response tracks into TrackInfo records,
// keeping upstream order.
func projectTrackInfos(tracks []innertubeCaptionTrack, translations []string) []TrackInfo {
	infos := make([]TrackInfo, len(tracks))
	for i, t := range tracks {
		name := t.Name.SimpleText
		if name == "" {
			for _, run := range t.Name.Runs {
				name += run.Text
			}
		}

		tl := []string{}
		if t.IsTranslatable {
			tl = translations
		}

		infos[i] = TrackInfo{
			Language:             name,
			LanguageCode:         t.LanguageCode,
			IsGenerated:          t.Kind == "asr",
			IsTranslatable:       t.IsTranslatable,
			TranslationLanguages: tl,
		}
	}
	return infos
}
