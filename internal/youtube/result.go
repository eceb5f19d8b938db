package youtube

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// CaptionEntry is one timed caption line.
type CaptionEntry struct {
	StartTime time.Duration `json:"start_time"`
	Duration  time.Duration `json:"duration"`
	Text      string        `json:"text"`
}

// EndTime returns the entry's end timestamp.
func (e *CaptionEntry) EndTime() time.Duration {
	return e.StartTime + e.Duration
}

// Segment is the wire form of a caption entry, times in seconds.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// CaptionResult is a fetched transcript together with its track metadata.
type CaptionResult struct {
	VideoID      string         `json:"video_id"`
	Language     string         `json:"language"`
	LanguageCode string         `json:"language_code"`
	IsGenerated  bool           `json:"is_generated"`
	Entries      []CaptionEntry `json:"entries"`
}

// Segments projects the entries into wire form, preserving order.
func (r *CaptionResult) Segments() []Segment {
	segments := make([]Segment, len(r.Entries))
	for i, e := range r.Entries {
		segments[i] = Segment{
			Text:     e.Text,
			Start:    e.StartTime.Seconds(),
			Duration: e.Duration.Seconds(),
		}
	}
	return segments
}

// FormatAsText joins entry texts with newlines, preserving order.
func (r *CaptionResult) FormatAsText() string {
	texts := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		texts[i] = e.Text
	}
	return strings.Join(texts, "\n")
}

// FormatAsJSON renders the wire segments as indented JSON.
func (r *CaptionResult) FormatAsJSON() (string, error) {
	data, err := json.MarshalIndent(r.Segments(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// FormatAsSRT renders the entries as an SRT subtitle file.
func (r *CaptionResult) FormatAsSRT() string {
	var sb strings.Builder
	for i, entry := range r.Entries {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatSRTTime(entry.StartTime),
			formatSRTTime(entry.EndTime()),
		))
		sb.WriteString(entry.Text)
		sb.WriteString("\n\n")
	}
	return strings.TrimSpace(sb.String())
}

// FormatAsVTT renders the entries as a WebVTT subtitle file.
func (r *CaptionResult) FormatAsVTT() string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")
	for i, entry := range r.Entries {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatVTTTime(entry.StartTime),
			formatVTTTime(entry.EndTime()),
		))
		sb.WriteString(entry.Text)
		sb.WriteString("\n\n")
	}
	return strings.TrimSpace(sb.String())
}

// formatSRTTime renders an SRT timestamp (HH:MM:SS,mmm).
func formatSRTTime(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	ms := int(d.Milliseconds()) % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// formatVTTTime renders a WebVTT timestamp (HH:MM:SS.mmm).
func formatVTTTime(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	ms := int(d.Milliseconds()) % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}
