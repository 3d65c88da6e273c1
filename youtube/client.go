// Package youtube is the client for the external YouTube endpoints the
// service consumes: the public oEmbed API for metadata and the Innertube
// player + timedtext endpoints for transcripts. Transcript traffic can be
// routed through an upstream HTTP/HTTPS proxy to avoid IP-based blocking;
// oEmbed traffic always goes direct.
package youtube

import (
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	oembedEndpoint = "https://www.youtube.com/oembed"
	playerEndpoint = "https://www.youtube.com/youtubei/v1/player"
	watchURLPrefix = "https://www.youtube.com/watch?v="

	androidClientVersion = "20.10.38"
	androidUserAgent     = "com.google.android.youtube/" + androidClientVersion + " (Linux; U; Android 11) gzip"
)

type Config struct {
	// ProxyURL, when set, routes transcript traffic through an upstream
	// HTTP/HTTPS proxy.
	ProxyURL string
}

type Client struct {
	transcriptClient *http.Client
	oembedClient     *http.Client
	oembedURL        string
	playerURL        string
	logger           *logrus.Logger
}

func NewClient(cfg Config) (*Client, error) {
	transcriptClient := &http.Client{}
	if cfg.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, errors.Wrap(err, "parse proxy url")
		}
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.Proxy = http.ProxyURL(proxyURL)
		transcriptClient.Transport = transport
	}

	return &Client{
		transcriptClient: transcriptClient,
		oembedClient:     &http.Client{},
		oembedURL:        oembedEndpoint,
		playerURL:        playerEndpoint,
		logger:           logrus.StandardLogger(),
	}, nil
}
