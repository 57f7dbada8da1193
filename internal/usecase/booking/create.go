package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/winnyfit/booking-api/internal/audit"
	accountdomain "github.com/winnyfit/booking-api/internal/domain/account"
	domain "github.com/winnyfit/booking-api/internal/domain/booking"
	"github.com/winnyfit/booking-api/internal/httperr"
	"github.com/winnyfit/booking-api/internal/models"
	"github.com/winnyfit/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerUserID uint

	SessionType string
	Title       string

	// TrainerID takes precedence; Instructor is the legacy
	// display-name lookup kept for API compatibility.
	TrainerID  uint
	Instructor string

	Date string // YYYY-MM-DD
	Time string // hh:mm AM/PM
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	accounts accountdomain.Repository
	bookings domain.Repository
	audit    *audit.Dispatcher
	tz       string
}

func NewCreateBooking(
	accounts accountdomain.Repository,
	bookings domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		accounts: accounts,
		bookings: bookings,
		audit:    audit,
		tz:       tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	sessionType := models.SessionType(in.SessionType)
	if !sessionType.Valid() {
		return nil, httperr.ErrField("session_type", "Must be \"virtual\" or \"in-person\".")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 03:04 PM",
		in.Date+" "+in.Time,
		timezone.Location(uc.tz),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	customer, err := uc.accounts.GetCustomerByUserID(ctx, in.CustomerUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("customer_not_found")
		}
		return nil, err
	}

	trainer, err := uc.resolveTrainer(ctx, in)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		CustomerID:  customer.ID,
		TrainerID:   trainer.ID,
		Title:       in.Title,
		SessionType: sessionType,
		StartTime:   start,
		MeetingID:   domain.NewMeetingID(),
	}

	if err := uc.bookings.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &customer.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

func (uc *CreateBooking) resolveTrainer(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Trainer, error) {

	if in.TrainerID != 0 {
		trainer, err := uc.accounts.GetTrainerByID(ctx, in.TrainerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, httperr.ErrBusiness("trainer_not_found")
			}
			return nil, err
		}
		return trainer, nil
	}

	name := strings.TrimSpace(in.Instructor)
	if name == "" {
		return nil, httperr.ErrField("instructor", "This field is required.")
	}

	first, last := name, ""
	if i := strings.Index(name, " "); i >= 0 {
		first, last = name[:i], strings.TrimSpace(name[i+1:])
	}

	trainer, err := uc.accounts.FindTrainerByName(ctx, first, last)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("trainer_not_found")
		}
		return nil, err
	}
	return trainer, nil
}
