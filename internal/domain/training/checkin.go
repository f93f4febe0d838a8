package training

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/summitmind/backend/internal/domain/shared"
)

// CheckInDateLayout is the wire and storage format of a check-in date.
// Check-ins are keyed by the athlete's local calendar day, not an instant,
// so the date travels as a plain string.
const CheckInDateLayout = "2006-01-02"

// CheckIn represents an athlete's daily mental state snapshot.
// At most one check-in exists per athlete and local date.
type CheckIn struct {
	shared.BaseEntity
	AthleteID uuid.UUID
	Date      string
	Mood      int
	Energy    int
	Stress    int
	Note      string
}

// NewCheckIn creates a check-in for the given local date
func NewCheckIn(athleteID uuid.UUID, date string, mood, energy, stress int, note string) (*CheckIn, error) {
	if _, err := time.Parse(CheckInDateLayout, date); err != nil {
		return nil, shared.NewDomainError("INVALID_DATE", "Check-in date must be formatted as YYYY-MM-DD")
	}
	for _, v := range []int{mood, energy, stress} {
		if v < 1 || v > 10 {
			return nil, shared.NewDomainError("INVALID_RATING", "Mood, energy, and stress must be between 1 and 10")
		}
	}
	if len(note) > 2000 {
		return nil, shared.NewDomainError("INVALID_NOTE", "Note cannot exceed 2000 characters")
	}

	return &CheckIn{
		BaseEntity: shared.NewBaseEntity(),
		AthleteID:  athleteID,
		Date:       date,
		Mood:       mood,
		Energy:     energy,
		Stress:     stress,
		Note:       strings.TrimSpace(note),
	}, nil
}
