package youtube

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// ErrNoVideoID is returned when a URL matches none of the supported shapes.
var ErrNoVideoID = errors.New("could not extract video id from url")

// ExtractVideoID resolves the canonical video identifier from the four
// supported URL shapes: youtu.be/<id>, youtube.com/watch?v=<id>,
// youtube.com/embed/<id> and youtube.com/v/<id>.
func ExtractVideoID(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Wrap(err, "parse url")
	}

	host := parsed.Hostname()

	if host == "youtu.be" {
		if id := strings.TrimPrefix(parsed.Path, "/"); id != "" {
			return id, nil
		}
		return "", ErrNoVideoID
	}

	if host == "youtube.com" || host == "www.youtube.com" {
		if parsed.Path == "/watch" {
			if id := parsed.Query().Get("v"); id != "" {
				return id, nil
			}
			return "", ErrNoVideoID
		}
		if strings.HasPrefix(parsed.Path, "/embed/") || strings.HasPrefix(parsed.Path, "/v/") {
			parts := strings.Split(parsed.Path, "/")
			if len(parts) > 2 && parts[2] != "" {
				return parts[2], nil
			}
			return "", ErrNoVideoID
		}
	}

	return "", ErrNoVideoID
}
