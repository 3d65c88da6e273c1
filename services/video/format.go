package video

import (
	"fmt"
	"strings"

	"yt-tools/models"
)

// NoCaptionsFound is the caption body for an empty transcript. An empty
// transcript is a valid 200 response, not an error.
const NoCaptionsFound = "No captions found for video"

// CaptionText joins all snippet texts with single spaces, in snippet order.
func CaptionText(transcript *models.FetchedTranscript) string {
	if transcript == nil || len(transcript.Snippets) == 0 {
		return NoCaptionsFound
	}

	parts := make([]string, len(transcript.Snippets))
	for i, snippet := range transcript.Snippets {
		parts[i] = snippet.Text
	}
	return strings.Join(parts, " ")
}

// Timestamps renders each snippet as "M:SS - text". The start offset is
// truncated to whole seconds; fractional seconds are discarded.
func Timestamps(transcript *models.FetchedTranscript) []string {
	if transcript == nil {
		return []string{}
	}

	lines := make([]string, 0, len(transcript.Snippets))
	for _, snippet := range transcript.Snippets {
		start := int(snippet.Start)
		minutes, seconds := start/60, start%60
		lines = append(lines, fmt.Sprintf("%d:%02d - %s", minutes, seconds, snippet.Text))
	}
	return lines
}
