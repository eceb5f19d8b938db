package youtube

import "regexp"

// YouTube URL shapes that carry a video ID. The first pattern matching
// anywhere in the input wins; the capture stops at &, newline, ? or #.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([^&\n?#]+)`),
}

// ExtractVideoID returns the video ID embedded in a YouTube URL. Input that
// matches no known URL shape is returned as-is and treated as a bare ID;
// a bad ID only surfaces when the upstream fetch fails.
func ExtractVideoID(urlOrID string) string {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(urlOrID); len(m) >= 2 {
			return m[1]
		}
	}
	return urlOrID
}
