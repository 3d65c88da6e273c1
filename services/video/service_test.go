package video

import (
	"context"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	apperrors "yt-tools/errors"
	"yt-tools/models"
	"yt-tools/youtube"
)

type stubClient struct {
	tracks      []youtube.CaptionTrack
	listErr     error
	fetchErr    error
	metadata    *models.VideoMetadata
	oembedErr   error
	fetchedCode string
}

func (s *stubClient) FetchOEmbed(ctx context.Context, videoID string) (*models.VideoMetadata, error) {
	if s.oembedErr != nil {
		return nil, s.oembedErr
	}
	return s.metadata, nil
}

func (s *stubClient) ListCaptionTracks(ctx context.Context, videoID string) ([]youtube.CaptionTrack, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.tracks, nil
}

func (s *stubClient) FetchTranscript(ctx context.Context, track youtube.CaptionTrack) (*models.FetchedTranscript, error) {
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	s.fetchedCode = track.LanguageCode
	return &models.FetchedTranscript{
		Language:     track.Language,
		LanguageCode: track.LanguageCode,
		IsGenerated:  track.Generated,
		Snippets: []models.TranscriptSnippet{
			{Start: 0, Text: "a"},
			{Start: 1.5, Text: "b"},
		},
	}, nil
}

func tracksFor(codes ...string) []youtube.CaptionTrack {
	tracks := make([]youtube.CaptionTrack, 0, len(codes))
	for _, code := range codes {
		tracks = append(tracks, youtube.CaptionTrack{
			BaseURL:      "https://example.com/tt?lang=" + code,
			Language:     code,
			LanguageCode: code,
		})
	}
	return tracks
}

func newTestService(t *testing.T, client Client) Service {
	t.Helper()
	svc := NewService(client, Config{PoolSize: 2, QueueSize: 8})
	t.Cleanup(svc.Close)
	return svc
}

const testURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

func TestLanguageFallback(t *testing.T) {
	tests := []struct {
		name      string
		available []string
		preferred []string
		want      string
	}{
		{"no preference prefers english", []string{"es", "en", "fr"}, nil, "en"},
		{"no preference no english uses first available", []string{"es", "fr"}, nil, "es"},
		{"first available preferred language wins", []string{"es", "fr"}, []string{"de", "fr"}, "fr"},
		{"no overlap falls back to first available", []string{"es", "fr"}, []string{"de"}, "es"},
		{"preference order wins over listing order", []string{"fr", "es"}, []string{"es", "fr"}, "es"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubClient{tracks: tracksFor(tt.available...)}
			svc := newTestService(t, client)

			captions, err := svc.GetCaptions(context.Background(), testURL, tt.preferred)
			require.NoError(t, err)
			require.Equal(t, tt.want, client.fetchedCode)
			require.Equal(t, "a b", captions)
		})
	}
}

func TestGetCaptionsInvalidURL(t *testing.T) {
	svc := newTestService(t, &stubClient{})

	_, err := svc.GetCaptions(context.Background(), "https://vimeo.com/12345", nil)
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	require.Equal(t, 400, appErr.Code)
}

func TestGetCaptionsMissingURL(t *testing.T) {
	svc := newTestService(t, &stubClient{})

	_, err := svc.GetCaptions(context.Background(), "", nil)
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	require.Equal(t, 400, appErr.Code)
}

func TestGetCaptionsListingFailure(t *testing.T) {
	client := &stubClient{listErr: pkgerrors.New("transcripts are disabled for this video")}
	svc := newTestService(t, client)

	_, err := svc.GetCaptions(context.Background(), testURL, nil)
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	require.Equal(t, 500, appErr.Code)
	require.Contains(t, appErr.Error(), "transcripts are disabled")
}

func TestGetTimestamps(t *testing.T) {
	client := &stubClient{tracks: tracksFor("en")}
	svc := newTestService(t, client)

	timestamps, err := svc.GetTimestamps(context.Background(), testURL, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"0:00 - a", "0:01 - b"}, timestamps)
}

func TestGetMetadata(t *testing.T) {
	title := "Test Video"
	client := &stubClient{metadata: &models.VideoMetadata{Title: &title}}
	svc := newTestService(t, client)

	metadata, err := svc.GetMetadata(context.Background(), testURL)
	require.NoError(t, err)
	require.NotNil(t, metadata.Title)
	require.Equal(t, "Test Video", *metadata.Title)
}

func TestGetMetadataUpstreamFailure(t *testing.T) {
	client := &stubClient{oembedErr: pkgerrors.New("oembed returned status 404")}
	svc := newTestService(t, client)

	_, err := svc.GetMetadata(context.Background(), testURL)
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	require.Equal(t, 500, appErr.Code)
}

func TestListLanguages(t *testing.T) {
	client := &stubClient{tracks: []youtube.CaptionTrack{
		{Language: "Spanish", LanguageCode: "es", Translatable: true},
		{Language: "English (auto-generated)", LanguageCode: "en", Generated: true, Translatable: true},
	}}
	svc := newTestService(t, client)

	languages, err := svc.ListLanguages(context.Background(), testURL)
	require.NoError(t, err)
	require.Len(t, languages, 2)
	require.Equal(t, "es", languages[0].LanguageCode)
	require.False(t, languages[0].IsGenerated)
	require.Equal(t, "en", languages[1].LanguageCode)
	require.True(t, languages[1].IsGenerated)
}
