package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	accountdomain "github.com/winnyfit/booking-api/internal/domain/account"
	domain "github.com/winnyfit/booking-api/internal/domain/booking"
	"github.com/winnyfit/booking-api/internal/httperr"
	"github.com/winnyfit/booking-api/internal/models"
	"github.com/winnyfit/booking-api/internal/timezone"
)

// SessionView is the windowed per-party representation of a booking.
type SessionView struct {
	ID             uint               `json:"id"`
	Title          string             `json:"title"`
	SessionType    models.SessionType `json:"session_type"`
	StartTime      time.Time          `json:"start_time"`
	SessionStarted bool               `json:"session_started"`
	MeetingID      string             `json:"meeting_id"`
	MeetingURL     string             `json:"meeting_url"`
	CanJoin        bool               `json:"can_join"`
	Customer       string             `json:"customer"`
	Trainer        string             `json:"trainer"`
}

type ListSessions struct {
	accounts accountdomain.Repository
	bookings domain.Repository
	tz       string
}

func NewListSessions(
	accounts accountdomain.Repository,
	bookings domain.Repository,
	tz string,
) *ListSessions {
	return &ListSessions{
		accounts: accounts,
		bookings: bookings,
		tz:       tz,
	}
}

// ======================================================
// CUSTOMER-SCOPED
// ======================================================

func (uc *ListSessions) UpcomingForCustomer(
	ctx context.Context,
	userID uint,
) ([]SessionView, error) {

	customer, err := uc.customer(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	bookings, err := uc.bookings.ListUpcomingForCustomer(ctx, customer.ID, now)
	if err != nil {
		return nil, err
	}
	return uc.views(bookings, now), nil
}

func (uc *ListSessions) PastForCustomer(
	ctx context.Context,
	userID uint,
) ([]SessionView, error) {

	customer, err := uc.customer(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	bookings, err := uc.bookings.ListPastForCustomer(ctx, customer.ID, now)
	if err != nil {
		return nil, err
	}
	return uc.views(bookings, now), nil
}

// ======================================================
// TRAINER-SCOPED
// ======================================================

func (uc *ListSessions) UpcomingForTrainer(
	ctx context.Context,
	userID uint,
) ([]SessionView, error) {

	trainer, err := uc.trainer(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	bookings, err := uc.bookings.ListUpcomingForTrainer(ctx, trainer.ID, now)
	if err != nil {
		return nil, err
	}
	return uc.views(bookings, now), nil
}

func (uc *ListSessions) PastForTrainer(
	ctx context.Context,
	userID uint,
) ([]SessionView, error) {

	trainer, err := uc.trainer(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	bookings, err := uc.bookings.ListPastForTrainer(ctx, trainer.ID, now)
	if err != nil {
		return nil, err
	}
	return uc.views(bookings, now), nil
}

// ======================================================
// HELPERS
// ======================================================

func (uc *ListSessions) customer(
	ctx context.Context,
	userID uint,
) (*models.Customer, error) {

	customer, err := uc.accounts.GetCustomerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("customer_not_found")
		}
		return nil, err
	}
	return customer, nil
}

func (uc *ListSessions) trainer(
	ctx context.Context,
	userID uint,
) (*models.Trainer, error) {

	trainer, err := uc.accounts.GetTrainerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("trainer_not_found")
		}
		return nil, err
	}
	return trainer, nil
}

func (uc *ListSessions) views(bookings []models.Booking, now time.Time) []SessionView {
	views := make([]SessionView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, SessionView{
			ID:             b.ID,
			Title:          b.Title,
			SessionType:    b.SessionType,
			StartTime:      b.StartTime,
			SessionStarted: b.SessionStarted,
			MeetingID:      b.MeetingID,
			MeetingURL:     domain.MeetingURL(b.MeetingID),
			CanJoin:        domain.CanJoin(b.StartTime, now),
			Customer:       b.Customer.User.FullName(),
			Trainer:        b.Trainer.User.FullName(),
		})
	}
	return views
}
