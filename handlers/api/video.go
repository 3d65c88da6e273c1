package api

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"yt-tools/middleware"
	"yt-tools/models"
	"yt-tools/services/video"
	"yt-tools/validation"
)

type VideoHandler struct {
	service   video.Service
	validator *validation.Validator
	logger    *logrus.Logger
}

func NewVideoHandler(service video.Service, validator *validation.Validator) *VideoHandler {
	return &VideoHandler{
		service:   service,
		validator: validator,
		logger:    logrus.StandardLogger(),
	}
}

func (h *VideoHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (*models.VideoRequest, bool) {
	if err := h.validator.ValidateRequest(r, validation.RequestValidationOpts{
		MaxContentLength: 1024 * 1024, // 1MB
		AllowedMethods:   []string{http.MethodPost},
		RequireJSON:      true,
	}); err != nil {
		respondError(w, r, err)
		return nil, false
	}

	var req models.VideoRequest
	if err := readJSON(r, &req); err != nil {
		respondError(w, r, err)
		return nil, false
	}

	if err := h.validator.ValidateURL(req.URL); err != nil {
		respondError(w, r, err)
		return nil, false
	}

	return &req, true
}

// HandleVideoData handles POST /video-data
func (h *VideoHandler) HandleVideoData(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}
	logger.WithField("url", req.URL).Info("Received video data request")

	metadata, err := h.service.GetMetadata(r.Context(), req.URL)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, metadata)
}

// HandleVideoCaptions handles POST /video-captions
func (h *VideoHandler) HandleVideoCaptions(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}
	logger.WithFields(logrus.Fields{
		"url":       req.URL,
		"languages": req.Languages,
	}).Info("Received captions request")

	captions, err := h.service.GetCaptions(r.Context(), req.URL, req.Languages)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, models.CaptionsResponse{Captions: captions})
}

// HandleVideoTimestamps handles POST /video-timestamps
func (h *VideoHandler) HandleVideoTimestamps(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}
	logger.WithFields(logrus.Fields{
		"url":       req.URL,
		"languages": req.Languages,
	}).Info("Received timestamps request")

	timestamps, err := h.service.GetTimestamps(r.Context(), req.URL, req.Languages)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, models.TimestampsResponse{Timestamps: timestamps})
}

// HandleTranscriptLanguages handles POST /video-transcript-languages
func (h *VideoHandler) HandleTranscriptLanguages(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}
	logger.WithField("url", req.URL).Info("Received transcript languages request")

	languages, err := h.service.ListLanguages(r.Context(), req.URL)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, models.LanguagesResponse{AvailableLanguages: languages})
}
