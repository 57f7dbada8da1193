package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/winnyfit/booking-api/internal/models"
)

// ===============================
// Meeting linkage
// ===============================

const meetingURLTemplate = "https://meet.jit.si/winnyfit_%s"

// NewMeetingID returns a globally unique meeting room identifier.
func NewMeetingID() string {
	return uuid.NewString()
}

// MeetingURL builds the external join URL for a booking's meeting room.
func MeetingURL(meetingID string) string {
	return fmt.Sprintf(meetingURLTemplate, meetingID)
}

// ===============================
// Time windowing
// ===============================

const JoinWindow = 30 * time.Minute

// CanJoin reports whether the join window is open for a session starting
// at start: start - 30min >= now.
func CanJoin(start, now time.Time) bool {
	return !start.Add(-JoinWindow).Before(now)
}

// ===============================
// Domain Actions
// ===============================

// Start marks the session as started. Starting an already-started
// session is a no-op; there is no reverse transition.
func Start(b *models.Booking) {
	b.SessionStarted = true
}

// IsAssignedTrainer reports whether t is the trainer the booking was
// made with.
func IsAssignedTrainer(b *models.Booking, t *models.Trainer) bool {
	return t != nil && b.TrainerID == t.ID
}
