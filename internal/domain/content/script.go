// Package content provides domain models for CMS-managed library content:
// guided mental-training scripts and technique articles.
package content

import (
	"strings"
	"time"

	"github.com/summitmind/backend/internal/domain/shared"
)

// Script represents a guided mental-training script. The body is authored in
// the CMS; the narrated audio is produced offline and uploaded as an object
// referenced by AudioObjectKey.
type Script struct {
	shared.BaseAggregateRoot
	Title          string
	Category       string
	Body           string
	AudioObjectKey string
	Premium        bool
	Published      bool
	PublishedAt    *time.Time
}

// NewScript creates an unpublished script draft
func NewScript(title, category, body string, premium bool) (*Script, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Script title is required")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Script title cannot exceed 200 characters")
	}
	if strings.TrimSpace(body) == "" {
		return nil, shared.NewDomainError("INVALID_BODY", "Script body is required")
	}

	return &Script{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Category:          strings.TrimSpace(category),
		Body:              body,
		Premium:           premium,
	}, nil
}

// AttachAudio links the uploaded narration object to the script
func (s *Script) AttachAudio(objectKey string) error {
	if objectKey == "" {
		return shared.NewDomainError("INVALID_OBJECT_KEY", "Audio object key is required")
	}

	s.AudioObjectKey = objectKey
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// Publish makes the script visible in the athlete library
func (s *Script) Publish() error {
	if s.Published {
		return shared.ErrInvalidState
	}

	now := time.Now()
	s.Published = true
	s.PublishedAt = &now
	s.UpdatedAt = now
	s.IncrementVersion()

	return nil
}

// Unpublish removes the script from the athlete library
func (s *Script) Unpublish() {
	s.Published = false
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// AccessibleTo reports whether an account with the given premium entitlement
// may read this script
func (s *Script) AccessibleTo(hasPremium bool) bool {
	if !s.Published {
		return false
	}
	return !s.Premium || hasPremium
}
