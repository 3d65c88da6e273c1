package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := InvalidInput("op", nil, "Invalid YouTube URL")
	if err.Error() != "Invalid YouTube URL" {
		t.Errorf("expected 'Invalid YouTube URL', got '%s'", err.Error())
	}

	cause := fmt.Errorf("connection refused")
	err = Upstream("op", cause, "Error getting video data")
	expected := "Error getting video data: connection refused"
	if err.Error() != expected {
		t.Errorf("expected '%s', got '%s'", expected, err.Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Internal("op", cause, "something failed")
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestConstructorCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected int
	}{
		{"missing input", MissingInput("op", "No URL provided"), http.StatusBadRequest},
		{"invalid input", InvalidInput("op", nil, "Invalid YouTube URL"), http.StatusBadRequest},
		{"upstream", Upstream("op", fmt.Errorf("x"), "upstream failed"), http.StatusInternalServerError},
		{"internal", Internal("op", fmt.Errorf("x"), "internal failed"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.expected {
				t.Errorf("expected code %d, got %d", tt.expected, tt.err.Code)
			}
		})
	}
}

func TestIsClientError(t *testing.T) {
	if !IsClientError(MissingInput("op", "No URL provided")) {
		t.Error("MissingInput should be a client error")
	}
	if IsClientError(Upstream("op", nil, "upstream failed")) {
		t.Error("Upstream should not be a client error")
	}
	if IsClientError(fmt.Errorf("standard error")) {
		t.Error("standard errors should not be client errors")
	}
}
