package video

import (
	"context"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"yt-tools/errors"
	"yt-tools/models"
	"yt-tools/youtube"
)

type service struct {
	client Client
	pool   *workerPool
	config Config
	logger *logrus.Logger
}

func NewService(client Client, config Config) Service {
	pool := newWorkerPool(config.PoolSize, config.QueueSize)
	pool.Start()

	return &service{
		client: client,
		pool:   pool,
		config: config,
		logger: logrus.StandardLogger(),
	}
}

func (s *service) Close() {
	s.pool.Close()
}

// resolveVideoID maps an empty or unparseable URL to the client-error
// taxonomy before any upstream call is made.
func resolveVideoID(op, rawURL string) (string, error) {
	if rawURL == "" {
		return "", errors.MissingInput(op, "No URL provided")
	}
	videoID, err := youtube.ExtractVideoID(rawURL)
	if err != nil {
		return "", errors.InvalidInput(op, err, "Invalid YouTube URL")
	}
	return videoID, nil
}

func (s *service) GetMetadata(ctx context.Context, rawURL string) (*models.VideoMetadata, error) {
	const op = "VideoService.GetMetadata"
	logger := s.logger.WithFields(logrus.Fields{"operation": op, "url": rawURL})

	videoID, err := resolveVideoID(op, rawURL)
	if err != nil {
		logger.WithError(err).Info("Rejected metadata request")
		return nil, err
	}

	var metadata *models.VideoMetadata
	err = s.pool.Run(ctx, func(ctx context.Context) error {
		m, fetchErr := s.client.FetchOEmbed(ctx, videoID)
		if fetchErr != nil {
			return fetchErr
		}
		metadata = m
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("oEmbed lookup failed")
		return nil, errors.Upstream(op, err, "Error getting video data")
	}

	logger.WithField("video_id", videoID).Info("Video metadata retrieved")
	return metadata, nil
}

func (s *service) GetCaptions(ctx context.Context, rawURL string, languages []string) (string, error) {
	const op = "VideoService.GetCaptions"

	transcript, err := s.resolveTranscript(ctx, op, rawURL, languages)
	if err != nil {
		return "", err
	}

	return CaptionText(transcript), nil
}

func (s *service) GetTimestamps(ctx context.Context, rawURL string, languages []string) ([]string, error) {
	const op = "VideoService.GetTimestamps"

	transcript, err := s.resolveTranscript(ctx, op, rawURL, languages)
	if err != nil {
		return nil, err
	}

	return Timestamps(transcript), nil
}

func (s *service) ListLanguages(ctx context.Context, rawURL string) ([]models.TranscriptLanguageInfo, error) {
	const op = "VideoService.ListLanguages"
	logger := s.logger.WithFields(logrus.Fields{"operation": op, "url": rawURL})

	videoID, err := resolveVideoID(op, rawURL)
	if err != nil {
		logger.WithError(err).Info("Rejected language listing request")
		return nil, err
	}

	var tracks []youtube.CaptionTrack
	err = s.pool.Run(ctx, func(ctx context.Context) error {
		listed, listErr := s.client.ListCaptionTracks(ctx, videoID)
		if listErr != nil {
			return listErr
		}
		tracks = listed
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("Transcript listing failed")
		return nil, errors.Upstream(op, err, "Error listing transcript languages")
	}

	languages := make([]models.TranscriptLanguageInfo, 0, len(tracks))
	for _, track := range tracks {
		languages = append(languages, models.TranscriptLanguageInfo{
			Language:       track.Language,
			LanguageCode:   track.LanguageCode,
			IsGenerated:    track.Generated,
			IsTranslatable: track.Translatable,
		})
	}

	logger.WithFields(logrus.Fields{
		"video_id":  videoID,
		"languages": len(languages),
	}).Info("Transcript languages listed")

	return languages, nil
}

// resolveTranscript performs the two-call list-then-fetch contract: the
// upstream cannot resolve a best-effort language in one call, so the
// available set must be listed before a single language is fetched.
func (s *service) resolveTranscript(ctx context.Context, op, rawURL string, languages []string) (*models.FetchedTranscript, error) {
	logger := s.logger.WithFields(logrus.Fields{
		"operation": op,
		"url":       rawURL,
		"languages": languages,
	})

	videoID, err := resolveVideoID(op, rawURL)
	if err != nil {
		logger.WithError(err).Info("Rejected transcript request")
		return nil, err
	}

	var transcript *models.FetchedTranscript
	err = s.pool.Run(ctx, func(ctx context.Context) error {
		tracks, listErr := s.client.ListCaptionTracks(ctx, videoID)
		if listErr != nil {
			return listErr
		}
		if len(tracks) == 0 {
			return pkgerrors.New("no caption tracks available for this video")
		}

		track := chooseTrack(tracks, languages)
		logger.WithFields(logrus.Fields{
			"video_id":  videoID,
			"available": len(tracks),
			"chosen":    track.LanguageCode,
			"generated": track.Generated,
		}).Info("Caption track selected")

		fetched, fetchErr := s.client.FetchTranscript(ctx, track)
		if fetchErr != nil {
			return fetchErr
		}
		transcript = fetched
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("Transcript retrieval failed")
		return nil, errors.Upstream(op, err, "Error getting captions for video")
	}

	logger.WithField("snippets", len(transcript.Snippets)).Info("Transcript fetched")
	return transcript, nil
}

// chooseTrack applies the language fallback policy: the first requested
// language that is available wins; with no overlap, or no request at all,
// fall back to "en" (unrequested case only) and finally to the first track
// in upstream listing order.
func chooseTrack(tracks []youtube.CaptionTrack, languages []string) youtube.CaptionTrack {
	if len(languages) > 0 {
		for _, lang := range languages {
			for _, track := range tracks {
				if track.LanguageCode == lang {
					return track
				}
			}
		}
		return tracks[0]
	}

	for _, track := range tracks {
		if track.LanguageCode == "en" {
			return track
		}
	}
	return tracks[0]
}
