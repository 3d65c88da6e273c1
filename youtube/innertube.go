package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// CaptionTrack is one caption language available for a video, with the
// timedtext URL used to fetch its transcript.
type CaptionTrack struct {
	BaseURL      string
	Language     string
	LanguageCode string
	Generated    bool
	Translatable bool
}

// --- Innertube /player wire types ---

type playerRequest struct {
	VideoID        string        `json:"videoId"`
	Context        playerContext `json:"context"`
	RacyCheckOk    bool          `json:"racyCheckOk"`
	ContentCheckOk bool          `json:"contentCheckOk"`
}

type playerContext struct {
	Client playerClient `json:"client"`
}

type playerClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion,omitempty"`
	Hl                string `json:"hl,omitempty"`
	Gl                string `json:"gl,omitempty"`
}

type playerResponse struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []rawCaptionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

type rawCaptionTrack struct {
	BaseURL string `json:"baseUrl"`
	Name    struct {
		SimpleText string `json:"simpleText"`
		Runs       []struct {
			Text string `json:"text"`
		} `json:"runs"`
	} `json:"name"`
	LanguageCode   string `json:"languageCode"`
	Kind           string `json:"kind"` // "asr" = auto-generated
	IsTranslatable bool   `json:"isTranslatable"`
}

func (t rawCaptionTrack) displayName() string {
	if t.Name.SimpleText != "" {
		return t.Name.SimpleText
	}
	if len(t.Name.Runs) > 0 {
		return t.Name.Runs[0].Text
	}
	return t.LanguageCode
}

// ListCaptionTracks lists the caption tracks available for a video via the
// ANDROID Innertube /player endpoint, in the order the upstream returns them.
func (c *Client) ListCaptionTracks(ctx context.Context, videoID string) ([]CaptionTrack, error) {
	reqBody, err := json.Marshal(playerRequest{
		VideoID: videoID,
		Context: playerContext{
			Client: playerClient{
				ClientName:        "ANDROID",
				ClientVersion:     androidClientVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal player request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.playerURL+"?prettyPrint=false", bytes.NewReader(reqBody))
	if err != nil {
		return nil, errors.Wrap(err, "build player request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", androidUserAgent)
	req.Header.Set("X-Youtube-Client-Name", "3")
	req.Header.Set("X-Youtube-Client-Version", androidClientVersion)

	resp, err := c.transcriptClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "player request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("player returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 6*1024*1024))
	if err != nil {
		return nil, errors.Wrap(err, "read player response")
	}

	var player playerResponse
	if err := json.Unmarshal(body, &player); err != nil {
		return nil, errors.Wrap(err, "decode player response")
	}

	if player.Captions == nil {
		if player.PlayabilityStatus != nil && player.PlayabilityStatus.Reason != "" {
			return nil, errors.Errorf("captions unavailable: %s", player.PlayabilityStatus.Reason)
		}
		return nil, errors.New("transcripts are disabled for this video")
	}

	raw := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(raw) == 0 {
		return nil, errors.New("no caption tracks available for this video")
	}

	tracks := make([]CaptionTrack, 0, len(raw))
	for _, t := range raw {
		tracks = append(tracks, CaptionTrack{
			BaseURL:      t.BaseURL,
			Language:     t.displayName(),
			LanguageCode: t.LanguageCode,
			Generated:    t.Kind == "asr",
			Translatable: t.IsTranslatable,
		})
	}

	c.logger.WithFields(logrus.Fields{
		"video_id": videoID,
		"tracks":   len(tracks),
	}).Debug("Listed caption tracks")

	return tracks, nil
}
