package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/winnyfit/booking-api/internal/audit"
	accountdomain "github.com/winnyfit/booking-api/internal/domain/account"
	domain "github.com/winnyfit/booking-api/internal/domain/booking"
	"github.com/winnyfit/booking-api/internal/httperr"
	"github.com/winnyfit/booking-api/internal/models"
)

type StartSession struct {
	accounts accountdomain.Repository
	bookings domain.Repository
	audit    *audit.Dispatcher
}

func NewStartSession(
	accounts accountdomain.Repository,
	bookings domain.Repository,
	audit *audit.Dispatcher,
) *StartSession {
	return &StartSession{
		accounts: accounts,
		bookings: bookings,
		audit:    audit,
	}
}

// Execute flips session_started for the booking, permitted only for the
// assigned trainer. The transition is one-directional; starting an
// already-started session leaves it started.
func (uc *StartSession) Execute(
	ctx context.Context,
	trainerUserID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.bookings.GetBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	trainer, err := uc.accounts.GetTrainerByUserID(ctx, trainerUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("not_assigned_trainer")
		}
		return nil, err
	}

	if !domain.IsAssignedTrainer(b, trainer) {
		return nil, httperr.ErrBusiness("not_assigned_trainer")
	}

	if b.SessionStarted {
		return b, nil
	}

	domain.Start(b)
	if err := uc.bookings.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &trainer.UserID,
		Action:   "session_started",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
