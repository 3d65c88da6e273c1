package api

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"yt-tools/errors"
	"yt-tools/middleware"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, r *http.Request, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		middleware.GetLogger(r.Context()).WithError(err).Error("Failed to encode response")
	}
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	msg := "Internal server error"

	if appErr, ok := err.(*errors.AppError); ok {
		code = appErr.Code
		msg = appErr.Message
		// Server errors carry the upstream failure text to the caller.
		if code >= 500 {
			msg = appErr.Error()
		}
	}

	middleware.GetLogger(r.Context()).WithFields(logrus.Fields{
		"error":  err,
		"status": code,
		"path":   r.URL.Path,
		"method": r.Method,
	}).Error("Request error")

	respondJSON(w, r, code, errorResponse{Error: msg})
}

func readJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.InvalidInput("readJSON", err, "Invalid JSON format")
	}
	return nil
}
