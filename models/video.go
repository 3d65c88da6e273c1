package models

// VideoMetadata is the projection of the YouTube oEmbed response.
// Absent fields marshal as null.
type VideoMetadata struct {
	Title        *string `json:"title"`
	AuthorName   *string `json:"author_name"`
	AuthorURL    *string `json:"author_url"`
	Type         *string `json:"type"`
	Height       *int    `json:"height"`
	Width        *int    `json:"width"`
	Version      *string `json:"version"`
	ProviderName *string `json:"provider_name"`
	ProviderURL  *string `json:"provider_url"`
	ThumbnailURL *string `json:"thumbnail_url"`
}

// TranscriptLanguageInfo describes one caption language available for a video.
type TranscriptLanguageInfo struct {
	Language       string `json:"language"`
	LanguageCode   string `json:"language_code"`
	IsGenerated    bool   `json:"is_generated"`
	IsTranslatable bool   `json:"is_translatable"`
}

// TranscriptSnippet is one caption entry. Start is seconds from the
// beginning of the video and may be fractional.
type TranscriptSnippet struct {
	Start float64 `json:"start"`
	Text  string  `json:"text"`
}

// FetchedTranscript is the ordered snippet sequence for one video in one
// language, in playback order.
type FetchedTranscript struct {
	Language     string              `json:"language"`
	LanguageCode string              `json:"language_code"`
	IsGenerated  bool                `json:"is_generated"`
	Snippets     []TranscriptSnippet `json:"snippets"`
}
