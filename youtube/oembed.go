package youtube

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"yt-tools/models"
)

// FetchOEmbed retrieves video metadata from the public oEmbed endpoint.
// Fields absent from the response stay nil and marshal as null.
func (c *Client) FetchOEmbed(ctx context.Context, videoID string) (*models.VideoMetadata, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("url", watchURLPrefix+videoID)

	requestURL := c.oembedURL + "?" + params.Encode()
	c.logger.WithField("url", requestURL).Debug("Requesting oEmbed metadata")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build oembed request")
	}

	resp, err := c.oembedClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "oembed request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("oembed returned status %d", resp.StatusCode)
	}

	var metadata models.VideoMetadata
	if err := json.NewDecoder(resp.Body).Decode(&metadata); err != nil {
		return nil, errors.Wrap(err, "decode oembed response")
	}

	return &metadata, nil
}
