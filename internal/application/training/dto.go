package training

import (
	"time"

	"github.com/summitmind/backend/internal/domain/training"
)

// CreateGoalRequest carries the payload for a new goal
type CreateGoalRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	TargetDate  *string `json:"target_date"`
}

// UpdateGoalRequest carries partial goal edits
type UpdateGoalRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	TargetDate  *string `json:"target_date"`
}

// GoalResponse is the dashboard view of a goal
type GoalResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateCheckInRequest carries the payload for a daily check-in
type CreateCheckInRequest struct {
	Date   string `json:"date" binding:"required"`
	Mood   int    `json:"mood" binding:"required"`
	Energy int    `json:"energy" binding:"required"`
	Stress int    `json:"stress" binding:"required"`
	Note   string `json:"note"`
}

// CheckInResponse is the dashboard view of a check-in
type CheckInResponse struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Mood   int    `json:"mood"`
	Energy int    `json:"energy"`
	Stress int    `json:"stress"`
	Note   string `json:"note,omitempty"`
}

// RecordSessionRequest carries the payload for a completed training session
type RecordSessionRequest struct {
	ScriptID        *string    `json:"script_id"`
	DurationSeconds int        `json:"duration_seconds" binding:"required"`
	CompletedAt     *time.Time `json:"completed_at"`
	Rating          *int       `json:"rating"`
}

// SessionResponse is the dashboard view of a training session
type SessionResponse struct {
	ID              string    `json:"id"`
	ScriptID        *string   `json:"script_id,omitempty"`
	DurationSeconds int       `json:"duration_seconds"`
	CompletedAt     time.Time `json:"completed_at"`
	Rating          *int      `json:"rating,omitempty"`
}

// VoiceSessionResponse is the dashboard view of a voice coach session
type VoiceSessionResponse struct {
	ID        string     `json:"id"`
	RoomName  string     `json:"room_name"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	Summary   string     `json:"summary,omitempty"`
}

// EndVoiceSessionRequest closes a voice session with its transcript summary
type EndVoiceSessionRequest struct {
	Summary string `json:"summary"`
}

func goalResponse(g *training.Goal) *GoalResponse {
	return &GoalResponse{
		ID:          g.ID.String(),
		Title:       g.Title,
		Description: g.Description,
		Category:    g.Category,
		TargetDate:  g.TargetDate,
		Status:      string(g.Status),
		CompletedAt: g.CompletedAt,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func checkInResponse(c *training.CheckIn) *CheckInResponse {
	return &CheckInResponse{
		ID:     c.ID.String(),
		Date:   c.Date,
		Mood:   c.Mood,
		Energy: c.Energy,
		Stress: c.Stress,
		Note:   c.Note,
	}
}

func sessionResponse(s *training.TrainingSession) *SessionResponse {
	resp := &SessionResponse{
		ID:              s.ID.String(),
		DurationSeconds: s.DurationSeconds,
		CompletedAt:     s.CompletedAt,
		Rating:          s.Rating,
	}
	if s.ScriptID != nil {
		id := s.ScriptID.String()
		resp.ScriptID = &id
	}
	return resp
}

func voiceSessionResponse(s *training.VoiceSession) *VoiceSessionResponse {
	return &VoiceSessionResponse{
		ID:        s.ID.String(),
		RoomName:  s.RoomName,
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
		Summary:   s.Summary,
	}
}
