package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"yt-tools/config"
)

func TestValidateURL(t *testing.T) {
	v := NewValidator(&config.Config{})

	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", false},
		{"https://youtu.be/dQw4w9WgXcQ", false},
		{"http://youtube.com/embed/dQw4w9WgXcQ", false},
		{"", true},
		{"ftp://youtube.com/watch?v=abc", true},
		{"https://example.com/watch?v=abc", true},
	}

	for _, tt := range tests {
		err := v.ValidateURL(tt.url)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
		}
	}
}

func TestValidateRequest(t *testing.T) {
	v := NewValidator(&config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/video-captions", nil)
	err := v.ValidateRequest(req, RequestValidationOpts{
		AllowedMethods: []string{http.MethodPost},
	})
	if err == nil {
		t.Error("expected method error for GET request")
	}

	req = httptest.NewRequest(http.MethodPost, "/video-captions", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "text/plain")
	err = v.ValidateRequest(req, RequestValidationOpts{
		AllowedMethods: []string{http.MethodPost},
		RequireJSON:    true,
	})
	if err == nil {
		t.Error("expected content-type error for text/plain body")
	}

	req = httptest.NewRequest(http.MethodPost, "/video-captions", strings.NewReader(`{"url":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	err = v.ValidateRequest(req, RequestValidationOpts{
		AllowedMethods:   []string{http.MethodPost},
		RequireJSON:      true,
		MaxContentLength: 1024,
	})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
