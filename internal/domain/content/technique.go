package content

import (
	"strings"
	"time"

	"github.com/summitmind/backend/internal/domain/shared"
)

// Technique represents a short technique article in the library
type Technique struct {
	shared.BaseAggregateRoot
	Title     string
	Summary   string
	Body      string
	Premium   bool
	Published bool
}

// NewTechnique creates an unpublished technique draft
func NewTechnique(title, summary, body string, premium bool) (*Technique, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Technique title is required")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Technique title cannot exceed 200 characters")
	}

	return &Technique{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Summary:           strings.TrimSpace(summary),
		Body:              body,
		Premium:           premium,
	}, nil
}

// SetPublished toggles library visibility
func (t *Technique) SetPublished(published bool) {
	t.Published = published
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
}

// AccessibleTo reports whether an account with the given premium entitlement
// may read this technique
func (t *Technique) AccessibleTo(hasPremium bool) bool {
	if !t.Published {
		return false
	}
	return !t.Premium || hasPremium
}
