package video

import (
	"reflect"
	"testing"

	"yt-tools/models"
)

func TestCaptionText(t *testing.T) {
	tests := []struct {
		name       string
		transcript *models.FetchedTranscript
		want       string
	}{
		{"nil transcript", nil, NoCaptionsFound},
		{"empty snippets", &models.FetchedTranscript{}, NoCaptionsFound},
		{
			"joined with spaces",
			&models.FetchedTranscript{Snippets: []models.TranscriptSnippet{
				{Text: "a"},
				{Text: "b"},
			}},
			"a b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CaptionText(tt.transcript); got != tt.want {
				t.Errorf("CaptionText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimestamps(t *testing.T) {
	transcript := &models.FetchedTranscript{Snippets: []models.TranscriptSnippet{
		{Start: 125.7, Text: "hello"},
		{Start: 0, Text: "intro"},
		{Start: 59.999, Text: "almost"},
		{Start: 3600, Text: "one hour in"},
	}}

	want := []string{
		"2:05 - hello",
		"0:00 - intro",
		"0:59 - almost",
		"60:00 - one hour in",
	}

	got := Timestamps(transcript)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Timestamps() = %v, want %v", got, want)
	}
}

func TestTimestampsEmpty(t *testing.T) {
	if got := Timestamps(&models.FetchedTranscript{}); len(got) != 0 {
		t.Errorf("expected no timestamps, got %v", got)
	}
}
