package models

import (
	"time"

	"github.com/summitmind/backend/internal/domain/content"
)

// ScriptModel is the persistence model for the Script domain entity.
type ScriptModel struct {
	AggregateModel
	Title          string `gorm:"type:varchar(200);not null"`
	Category       string `gorm:"type:varchar(100);index"`
	Body           string `gorm:"type:text;not null"`
	AudioObjectKey string `gorm:"type:varchar(500)"`
	Premium        bool   `gorm:"not null;default:false"`
	Published      bool   `gorm:"not null;default:false;index"`
	PublishedAt    *time.Time
}

// TableName returns the table name for GORM
func (ScriptModel) TableName() string {
	return "scripts"
}

// ToDomain converts the persistence model to a domain Script entity.
func (m *ScriptModel) ToDomain() *content.Script {
	script := &content.Script{
		Title:          m.Title,
		Category:       m.Category,
		Body:           m.Body,
		AudioObjectKey: m.AudioObjectKey,
		Premium:        m.Premium,
		Published:      m.Published,
		PublishedAt:    m.PublishedAt,
	}
	m.PopulateAggregateRoot(&script.BaseAggregateRoot)
	return script
}

// FromDomain populates the persistence model from a domain Script entity.
func (m *ScriptModel) FromDomain(s *content.Script) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.Title = s.Title
	m.Category = s.Category
	m.Body = s.Body
	m.AudioObjectKey = s.AudioObjectKey
	m.Premium = s.Premium
	m.Published = s.Published
	m.PublishedAt = s.PublishedAt
}

// ScriptModelFromDomain creates a new persistence model from a domain Script entity.
func ScriptModelFromDomain(s *content.Script) *ScriptModel {
	m := &ScriptModel{}
	m.FromDomain(s)
	return m
}

// TechniqueModel is the persistence model for the Technique domain entity.
type TechniqueModel struct {
	AggregateModel
	Title     string `gorm:"type:varchar(200);not null"`
	Summary   string `gorm:"type:varchar(500)"`
	Body      string `gorm:"type:text"`
	Premium   bool   `gorm:"not null;default:false"`
	Published bool   `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (TechniqueModel) TableName() string {
	return "techniques"
}

// ToDomain converts the persistence model to a domain Technique entity.
func (m *TechniqueModel) ToDomain() *content.Technique {
	technique := &content.Technique{
		Title:     m.Title,
		Summary:   m.Summary,
		Body:      m.Body,
		Premium:   m.Premium,
		Published: m.Published,
	}
	m.PopulateAggregateRoot(&technique.BaseAggregateRoot)
	return technique
}

// FromDomain populates the persistence model from a domain Technique entity.
func (m *TechniqueModel) FromDomain(t *content.Technique) {
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	m.Title = t.Title
	m.Summary = t.Summary
	m.Body = t.Body
	m.Premium = t.Premium
	m.Published = t.Published
}

// TechniqueModelFromDomain creates a new persistence model from a domain Technique entity.
func TechniqueModelFromDomain(t *content.Technique) *TechniqueModel {
	m := &TechniqueModel{}
	m.FromDomain(t)
	return m
}
