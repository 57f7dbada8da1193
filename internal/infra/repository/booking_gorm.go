package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/winnyfit/booking-api/internal/domain/booking"
	"github.com/winnyfit/booking-api/internal/httperr"
	"github.com/winnyfit/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrBusiness("meeting_id_taken")
		}
		return err
	}
	return nil
}

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer.User").
		Preload("Trainer.User").
		First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	// Bookings are fetched with preloaded associations; omit them so a
	// save only writes the booking row.
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(b).Error
}

// --------------------------------------------------
// Windowed views
//
// Both boundaries are inclusive: a booking starting exactly at the
// query instant lists as upcoming and as past.
// --------------------------------------------------

func (r *BookingGormRepository) ListUpcomingForCustomer(
	ctx context.Context,
	customerID uint,
	now time.Time,
) ([]models.Booking, error) {
	return r.listWindow(ctx, "customer_id", customerID, "start_time >= ?", now)
}

func (r *BookingGormRepository) ListPastForCustomer(
	ctx context.Context,
	customerID uint,
	now time.Time,
) ([]models.Booking, error) {
	return r.listWindow(ctx, "customer_id", customerID, "start_time <= ?", now)
}

func (r *BookingGormRepository) ListUpcomingForTrainer(
	ctx context.Context,
	trainerID uint,
	now time.Time,
) ([]models.Booking, error) {
	return r.listWindow(ctx, "trainer_id", trainerID, "start_time >= ?", now)
}

func (r *BookingGormRepository) ListPastForTrainer(
	ctx context.Context,
	trainerID uint,
	now time.Time,
) ([]models.Booking, error) {
	return r.listWindow(ctx, "trainer_id", trainerID, "start_time <= ?", now)
}

func (r *BookingGormRepository) listWindow(
	ctx context.Context,
	ownerColumn string,
	ownerID uint,
	windowCond string,
	now time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer.User").
		Preload("Trainer.User").
		Where(ownerColumn+" = ?", ownerID).
		Where(windowCond, now).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
