package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/summitmind/backend/internal/domain/training"
)

// GoalModel is the persistence model for the Goal domain entity.
type GoalModel struct {
	AggregateModel
	AthleteID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	Title       string              `gorm:"type:varchar(200);not null"`
	Description string              `gorm:"type:text"`
	Category    string              `gorm:"type:varchar(100)"`
	TargetDate  *time.Time          `gorm:"index"`
	Status      training.GoalStatus `gorm:"type:varchar(20);not null;default:'active';index"`
	CompletedAt *time.Time
}

// TableName returns the table name for GORM
func (GoalModel) TableName() string {
	return "goals"
}

// ToDomain converts the persistence model to a domain Goal entity.
func (m *GoalModel) ToDomain() *training.Goal {
	goal := &training.Goal{
		AthleteID:   m.AthleteID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		TargetDate:  m.TargetDate,
		Status:      m.Status,
		CompletedAt: m.CompletedAt,
	}
	m.PopulateAggregateRoot(&goal.BaseAggregateRoot)
	return goal
}

// FromDomain populates the persistence model from a domain Goal entity.
func (m *GoalModel) FromDomain(g *training.Goal) {
	m.FromDomainAggregateRoot(g.BaseAggregateRoot)
	m.AthleteID = g.AthleteID
	m.Title = g.Title
	m.Description = g.Description
	m.Category = g.Category
	m.TargetDate = g.TargetDate
	m.Status = g.Status
	m.CompletedAt = g.CompletedAt
}

// GoalModelFromDomain creates a new persistence model from a domain Goal entity.
func GoalModelFromDomain(g *training.Goal) *GoalModel {
	m := &GoalModel{}
	m.FromDomain(g)
	return m
}

// CheckInModel is the persistence model for the CheckIn domain entity.
// The unique index on (athlete_id, date) enforces one check-in per local day.
type CheckInModel struct {
	BaseModel
	AthleteID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_checkins_athlete_date"`
	Date      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_checkins_athlete_date"`
	Mood      int       `gorm:"not null"`
	Energy    int       `gorm:"not null"`
	Stress    int       `gorm:"not null"`
	Note      string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CheckInModel) TableName() string {
	return "check_ins"
}

// ToDomain converts the persistence model to a domain CheckIn entity.
func (m *CheckInModel) ToDomain() *training.CheckIn {
	return &training.CheckIn{
		BaseEntity: m.BaseModel.ToDomain(),
		AthleteID:  m.AthleteID,
		Date:       m.Date,
		Mood:       m.Mood,
		Energy:     m.Energy,
		Stress:     m.Stress,
		Note:       m.Note,
	}
}

// FromDomain populates the persistence model from a domain CheckIn entity.
func (m *CheckInModel) FromDomain(c *training.CheckIn) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.AthleteID = c.AthleteID
	m.Date = c.Date
	m.Mood = c.Mood
	m.Energy = c.Energy
	m.Stress = c.Stress
	m.Note = c.Note
}

// CheckInModelFromDomain creates a new persistence model from a domain CheckIn entity.
func CheckInModelFromDomain(c *training.CheckIn) *CheckInModel {
	m := &CheckInModel{}
	m.FromDomain(c)
	return m
}

// TrainingSessionModel is the persistence model for the TrainingSession domain entity.
type TrainingSessionModel struct {
	BaseModel
	AthleteID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	ScriptID        *uuid.UUID `gorm:"type:uuid;index"`
	DurationSeconds int        `gorm:"not null"`
	CompletedAt     time.Time  `gorm:"not null;index"`
	Rating          *int
}

// TableName returns the table name for GORM
func (TrainingSessionModel) TableName() string {
	return "training_sessions"
}

// ToDomain converts the persistence model to a domain TrainingSession entity.
func (m *TrainingSessionModel) ToDomain() *training.TrainingSession {
	return &training.TrainingSession{
		BaseEntity:      m.BaseModel.ToDomain(),
		AthleteID:       m.AthleteID,
		ScriptID:        m.ScriptID,
		DurationSeconds: m.DurationSeconds,
		CompletedAt:     m.CompletedAt,
		Rating:          m.Rating,
	}
}

// FromDomain populates the persistence model from a domain TrainingSession entity.
func (m *TrainingSessionModel) FromDomain(s *training.TrainingSession) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.AthleteID = s.AthleteID
	m.ScriptID = s.ScriptID
	m.DurationSeconds = s.DurationSeconds
	m.CompletedAt = s.CompletedAt
	m.Rating = s.Rating
}

// TrainingSessionModelFromDomain creates a new persistence model from a domain TrainingSession entity.
func TrainingSessionModelFromDomain(s *training.TrainingSession) *TrainingSessionModel {
	m := &TrainingSessionModel{}
	m.FromDomain(s)
	return m
}

// VoiceSessionModel is the persistence model for the VoiceSession domain entity.
type VoiceSessionModel struct {
	BaseModel
	AthleteID uuid.UUID `gorm:"type:uuid;not null;index"`
	RoomName  string    `gorm:"type:varchar(200);not null"`
	StartedAt time.Time `gorm:"not null;index"`
	EndedAt   *time.Time
	Summary   string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (VoiceSessionModel) TableName() string {
	return "voice_sessions"
}

// ToDomain converts the persistence model to a domain VoiceSession entity.
func (m *VoiceSessionModel) ToDomain() *training.VoiceSession {
	return &training.VoiceSession{
		BaseEntity: m.BaseModel.ToDomain(),
		AthleteID:  m.AthleteID,
		RoomName:   m.RoomName,
		StartedAt:  m.StartedAt,
		EndedAt:    m.EndedAt,
		Summary:    m.Summary,
	}
}

// FromDomain populates the persistence model from a domain VoiceSession entity.
func (m *VoiceSessionModel) FromDomain(s *training.VoiceSession) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.AthleteID = s.AthleteID
	m.RoomName = s.RoomName
	m.StartedAt = s.StartedAt
	m.EndedAt = s.EndedAt
	m.Summary = s.Summary
}

// VoiceSessionModelFromDomain creates a new persistence model from a domain VoiceSession entity.
func VoiceSessionModelFromDomain(s *training.VoiceSession) *VoiceSessionModel {
	m := &VoiceSessionModel{}
	m.FromDomain(s)
	return m
}
