package booking

import (
	"context"
	"time"

	"github.com/winnyfit/booking-api/internal/models"
)

type Repository interface {
	// -------- Booking (create / state change) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Windowed views --------
	ListUpcomingForCustomer(
		ctx context.Context,
		customerID uint,
		now time.Time,
	) ([]models.Booking, error)

	ListPastForCustomer(
		ctx context.Context,
		customerID uint,
		now time.Time,
	) ([]models.Booking, error)

	ListUpcomingForTrainer(
		ctx context.Context,
		trainerID uint,
		now time.Time,
	) ([]models.Booking, error)

	ListPastForTrainer(
		ctx context.Context,
		trainerID uint,
		now time.Time,
	) ([]models.Booking, error)
}
