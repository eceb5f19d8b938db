package youtube

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoEntryResult() *CaptionResult {
	return &CaptionResult{
		VideoID:      "dQw4w9WgXcQ",
		Language:     "English",
		LanguageCode: "en",
		Entries: []CaptionEntry{
			{StartTime: 0, Duration: time.Second, Text: "a"},
			{StartTime: time.Second, Duration: time.Second, Text: "b"},
		},
	}
}

func TestFormatAsText(t *testing.T) {
	r := twoEntryResult()
	text := r.FormatAsText()
	assert.Equal(t, "a\nb", text)

	// Re-joining the split output reproduces the same string
	assert.Equal(t, text, strings.Join(strings.Split(text, "\n"), "\n"))
}

func TestSegments(t *testing.T) {
	segments := twoEntryResult().Segments()
	require.Len(t, segments, 2)

	assert.Equal(t, Segment{Text: "a", Start: 0, Duration: 1}, segments[0])
	assert.Equal(t, Segment{Text: "b", Start: 1, Duration: 1}, segments[1])
}

func TestSegments_JSONRoundTrip(t *testing.T) {
	segments := twoEntryResult().Segments()

	data, err := json.Marshal(segments)
	require.NoError(t, err)

	var back []Segment
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, segments, back)
}

func TestFormatAsJSON(t *testing.T) {
	out, err := twoEntryResult().FormatAsJSON()
	require.NoError(t, err)

	var back []Segment
	require.NoError(t, json.Unmarshal([]byte(out), &back))
	require.Len(t, back, 2)
	assert.Equal(t, "a", back[0].Text)
}

func TestFormatAsSRT(t *testing.T) {
	srt := twoEntryResult().FormatAsSRT()
	assert.Contains(t, srt, "1\n00:00:00,000 --> 00:00:01,000\na")
	assert.Contains(t, srt, "2\n00:00:01,000 --> 00:00:02,000\nb")
}

func TestFormatAsVTT(t *testing.T) {
	vtt := twoEntryResult().FormatAsVTT()
	assert.True(t, strings.HasPrefix(vtt, "WEBVTT\n"))
	assert.Contains(t, vtt, "00:00:00.000 --> 00:00:01.000\na")
	assert.Contains(t, vtt, "00:00:01.000 --> 00:00:02.000\nb")
}

func TestFormatSRTTime(t *testing.T) {
	d := time.Hour + 2*time.Minute + 3*time.Second + 456*time.Millisecond
	assert.Equal(t, "01:02:03,456", formatSRTTime(d))
	assert.Equal(t, "01:02:03.456", formatVTTTime(d))
}
