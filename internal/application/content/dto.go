package content

import (
	"time"

	"github.com/summitmind/backend/internal/domain/content"
)

// ScriptSummaryResponse is a library listing entry. Premium items appear
// locked to athletes without an entitled billing status.
type ScriptSummaryResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Premium   bool   `json:"premium"`
	Locked    bool   `json:"locked"`
	HasAudio  bool   `json:"has_audio"`
	Published bool   `json:"published"`
}

// ScriptResponse is the full script including body and, when narration
// audio exists and the caller may read it, a short-lived audio URL.
type ScriptResponse struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Category       string     `json:"category"`
	Body           string     `json:"body"`
	Premium        bool       `json:"premium"`
	Published      bool       `json:"published"`
	PublishedAt    *time.Time `json:"published_at,omitempty"`
	HasAudio       bool       `json:"has_audio"`
	AudioURL       string     `json:"audio_url,omitempty"`
	AudioExpiresAt *time.Time `json:"audio_expires_at,omitempty"`
}

// TechniqueSummaryResponse is a library listing entry for a technique
type TechniqueSummaryResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Premium   bool   `json:"premium"`
	Locked    bool   `json:"locked"`
	Published bool   `json:"published"`
}

// TechniqueResponse is the full technique article
type TechniqueResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Body      string `json:"body"`
	Premium   bool   `json:"premium"`
	Published bool   `json:"published"`
}

// CreateScriptRequest carries the CMS payload for a new script draft
type CreateScriptRequest struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category"`
	Body     string `json:"body" binding:"required"`
	Premium  bool   `json:"premium"`
}

// UpdateScriptRequest carries partial CMS edits to a script
type UpdateScriptRequest struct {
	Title    *string `json:"title"`
	Category *string `json:"category"`
	Body     *string `json:"body"`
	Premium  *bool   `json:"premium"`
}

// CreateTechniqueRequest carries the CMS payload for a new technique draft
type CreateTechniqueRequest struct {
	Title   string `json:"title" binding:"required"`
	Summary string `json:"summary"`
	Body    string `json:"body" binding:"required"`
	Premium bool   `json:"premium"`
}

// UpdateTechniqueRequest carries partial CMS edits to a technique
type UpdateTechniqueRequest struct {
	Title   *string `json:"title"`
	Summary *string `json:"summary"`
	Body    *string `json:"body"`
	Premium *bool   `json:"premium"`
}

// InitiateAudioUploadRequest asks for a presigned upload slot for a
// script's narration audio
type InitiateAudioUploadRequest struct {
	ContentType string `json:"content_type" binding:"required"`
}

// InitiateAudioUploadResponse returns the presigned PUT URL the CMS
// uploads against, and the object key to confirm afterwards
type InitiateAudioUploadResponse struct {
	ObjectKey string    `json:"object_key"`
	UploadURL string    `json:"upload_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

func scriptSummary(s *content.Script, hasPremium bool) ScriptSummaryResponse {
	return ScriptSummaryResponse{
		ID:        s.ID.String(),
		Title:     s.Title,
		Category:  s.Category,
		Premium:   s.Premium,
		Locked:    s.Premium && !hasPremium,
		HasAudio:  s.AudioObjectKey != "",
		Published: s.Published,
	}
}

func scriptDetail(s *content.Script) *ScriptResponse {
	return &ScriptResponse{
		ID:          s.ID.String(),
		Title:       s.Title,
		Category:    s.Category,
		Body:        s.Body,
		Premium:     s.Premium,
		Published:   s.Published,
		PublishedAt: s.PublishedAt,
		HasAudio:    s.AudioObjectKey != "",
	}
}

func techniqueSummary(t *content.Technique, hasPremium bool) TechniqueSummaryResponse {
	return TechniqueSummaryResponse{
		ID:        t.ID.String(),
		Title:     t.Title,
		Summary:   t.Summary,
		Premium:   t.Premium,
		Locked:    t.Premium && !hasPremium,
		Published: t.Published,
	}
}

func techniqueDetail(t *content.Technique) *TechniqueResponse {
	return &TechniqueResponse{
		ID:        t.ID.String(),
		Title:     t.Title,
		Summary:   t.Summary,
		Body:      t.Body,
		Premium:   t.Premium,
		Published: t.Published,
	}
}
