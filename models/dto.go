package models

// VideoRequest is the body accepted by all POST endpoints.
type VideoRequest struct {
	URL       string   `json:"url"`
	Languages []string `json:"languages,omitempty"`
}

type CaptionsResponse struct {
	Captions string `json:"captions"`
}

type TimestampsResponse struct {
	Timestamps []string `json:"timestamps"`
}

type LanguagesResponse struct {
	AvailableLanguages []TranscriptLanguageInfo `json:"available_languages"`
}

type HealthResponse struct {
	Status             string  `json:"status"`
	Timestamp          string  `json:"timestamp"`
	ProxyStatus        string  `json:"proxy_status"`
	ProxyUsername      *string `json:"proxy_username"`
	ParallelProcessing string  `json:"parallel_processing"`
}
