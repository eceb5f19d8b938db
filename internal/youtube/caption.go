package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const maxCaptionBody = 4 * 1024 * 1024

// Timedtext (srv3) XML layout returned by caption track URLs.
type xmlTranscript struct {
	XMLName    xml.Name       `xml:"timedtext"`
	Paragraphs []xmlParagraph `xml:"body>p"`
}

type xmlParagraph struct {
	Start    int64        `xml:"t,attr"` // milliseconds
	Duration int64        `xml:"d,attr"` // milliseconds
	Segments []xmlSegment `xml:"s"`
	Text     string       `xml:",chardata"`
}

type xmlSegment struct {
	Text string `xml:",chardata"`
}

// markupTagRe matches inline formatting markup (<i>, <b>, ...) embedded in
// caption text.
var markupTagRe = regexp.MustCompile(`<[^>]+>`)

// Fetch retrieves the transcript for a video. The first language in langs
// with an available track is used; when none has one, an error is returned
// naming the available languages. preserveFormatting keeps inline markup in
// the segment text instead of stripping it.
func (c *Client) Fetch(ctx context.Context, urlOrID string, langs []string, preserveFormatting bool) (*CaptionResult, error) {
	if len(langs) == 0 {
		langs = DefaultLanguages
	}

	video, err := c.GetVideo(ctx, urlOrID)
	if err != nil {
		return nil, err
	}
	if !video.HasCaptions() {
		return nil, fmt.Errorf("no captions available for video %s", video.ID)
	}

	track := video.FindCaption(langs)
	if track == nil {
		return nil, fmt.Errorf("no captions found for languages [%s], available: [%s]",
			strings.Join(langs, ", "), strings.Join(video.CaptionLanguages(), ", "))
	}

	entries, err := c.FetchCaptionByURL(ctx, track.BaseURL, preserveFormatting)
	if err != nil {
		return nil, err
	}

	return &CaptionResult{
		VideoID:      video.ID,
		Language:     track.Name,
		LanguageCode: track.LanguageCode,
		IsGenerated:  track.IsGenerated(),
		Entries:      entries,
	}, nil
}

// FetchCaptionByURL fetches and parses the caption body of a single track.
func (c *Client) FetchCaptionByURL(ctx context.Context, baseURL string, preserveFormatting bool) ([]CaptionEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, timedTextURL(baseURL), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("caption request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCaptionBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read caption body: %w", err)
	}

	return parseTimedText(body, preserveFormatting)
}

// timedTextURL pins the srv3 timedtext layout unless the track URL already
// carries a format parameter.
func timedTextURL(baseURL string) string {
	if strings.Contains(baseURL, "fmt=") {
		return baseURL
	}
	return baseURL + "&fmt=srv3"
}

// parseTimedText parses a timedtext XML body into caption entries. Empty
// entries are skipped; entry order is kept as delivered.
func parseTimedText(data []byte, preserveFormatting bool) ([]CaptionEntry, error) {
	var transcript xmlTranscript
	if err := xml.Unmarshal(data, &transcript); err != nil {
		return nil, fmt.Errorf("caption XML parse failed: %w", err)
	}

	entries := make([]CaptionEntry, 0, len(transcript.Paragraphs))
	for _, p := range transcript.Paragraphs {
		var text string
		if len(p.Segments) > 0 {
			var sb strings.Builder
			for _, seg := range p.Segments {
				sb.WriteString(seg.Text)
			}
			text = sb.String()
		} else {
			text = strings.TrimSpace(p.Text)
		}

		if !preserveFormatting {
			text = markupTagRe.ReplaceAllString(text, "")
		}
		if len(text) == 0 {
			continue
		}

		entries = append(entries, CaptionEntry{
			StartTime: time.Duration(p.Start) * time.Millisecond,
			Duration:  time.Duration(p.Duration) * time.Millisecond,
			Text:      text,
		})
	}

	return entries, nil
}
