package video

import (
	"context"

	"yt-tools/models"
	"yt-tools/youtube"
)

// Client is the slice of the YouTube client the service depends on.
type Client interface {
	FetchOEmbed(ctx context.Context, videoID string) (*models.VideoMetadata, error)
	ListCaptionTracks(ctx context.Context, videoID string) ([]youtube.CaptionTrack, error)
	FetchTranscript(ctx context.Context, track youtube.CaptionTrack) (*models.FetchedTranscript, error)
}

type Service interface {
	// GetMetadata resolves the video ID and projects the oEmbed response.
	GetMetadata(ctx context.Context, url string) (*models.VideoMetadata, error)

	// GetCaptions fetches one transcript (with language fallback) and joins
	// its snippet texts into a single string.
	GetCaptions(ctx context.Context, url string, languages []string) (string, error)

	// GetTimestamps fetches one transcript and renders each snippet as a
	// "M:SS - text" line.
	GetTimestamps(ctx context.Context, url string, languages []string) ([]string, error)

	// ListLanguages lists the caption languages available for a video.
	ListLanguages(ctx context.Context, url string) ([]models.TranscriptLanguageInfo, error)

	// Close stops the worker pool.
	Close()
}

type Config struct {
	// PoolSize is the number of workers handling blocking upstream calls.
	PoolSize int `json:"pool_size"`

	// QueueSize bounds the number of submitted calls waiting for a worker.
	QueueSize int `json:"queue_size"`
}
