package youtube

import (
	"context"
	"encoding/xml"
	"html"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"yt-tools/models"
)

// --- Timedtext XML wire types ---

type timedText struct {
	Lines []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Start string `xml:"start,attr"`
	Dur   string `xml:"dur,attr"`
	Text  string `xml:",chardata"`
}

// FetchTranscript downloads and parses the timedtext XML for one caption
// track. Snippet order follows document order, which is playback order.
func (c *Client) FetchTranscript(ctx context.Context, track CaptionTrack) (*models.FetchedTranscript, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, track.BaseURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build timedtext request")
	}
	req.Header.Set("User-Agent", androidUserAgent)

	resp, err := c.transcriptClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "timedtext request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("timedtext returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return nil, errors.Wrap(err, "read timedtext response")
	}

	snippets, err := parseTimedText(body)
	if err != nil {
		return nil, err
	}

	return &models.FetchedTranscript{
		Language:     track.Language,
		LanguageCode: track.LanguageCode,
		IsGenerated:  track.Generated,
		Snippets:     snippets,
	}, nil
}

func parseTimedText(data []byte) ([]models.TranscriptSnippet, error) {
	var tt timedText
	if err := xml.Unmarshal(data, &tt); err != nil {
		return nil, errors.Wrap(err, "parse timedtext XML")
	}

	snippets := make([]models.TranscriptSnippet, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		text := strings.TrimSpace(html.UnescapeString(line.Text))
		if text == "" {
			continue
		}

		start := 0.0
		if line.Start != "" {
			if parsed, err := strconv.ParseFloat(line.Start, 64); err == nil {
				start = parsed
			}
		}

		snippets = append(snippets, models.TranscriptSnippet{
			Start: start,
			Text:  text,
		})
	}

	return snippets, nil
}
