package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/winnyfit/booking-api/internal/domain/booking"
	"github.com/winnyfit/booking-api/internal/models"
	"github.com/winnyfit/booking-api/internal/testdb"
)

func seedPair(t *testing.T, db *gorm.DB) (*models.Customer, *models.Trainer) {
	t.Helper()

	customerUser := &models.UserAccount{
		FirstName:    "Kasun",
		LastName:     "Silva",
		Email:        "kasun@example.com",
		PasswordHash: "x",
		Role:         models.RoleCustomer,
		IsActive:     true,
	}
	require.NoError(t, db.Create(customerUser).Error)

	customer := &models.Customer{
		UserID:        customerUser.ID,
		ContactNumber: "0711111111",
	}
	require.NoError(t, db.Create(customer).Error)

	trainerUser := &models.UserAccount{
		FirstName:    "Amaya",
		LastName:     "Perera",
		Email:        "amaya@example.com",
		PasswordHash: "x",
		Role:         models.RoleTrainer,
		IsActive:     true,
	}
	require.NoError(t, db.Create(trainerUser).Error)

	trainer := &models.Trainer{
		UserID:         trainerUser.ID,
		Specialization: models.SpecPersonalTraining,
		ContactNumber:  "0771234567",
		Available:      models.AvailableYes,
	}
	require.NoError(t, db.Create(trainer).Error)

	return customer, trainer
}

func seedBooking(t *testing.T, db *gorm.DB, customer *models.Customer, trainer *models.Trainer, start time.Time) *models.Booking {
	t.Helper()

	b := &models.Booking{
		CustomerID:  customer.ID,
		TrainerID:   trainer.ID,
		SessionType: models.SessionVirtual,
		StartTime:   start,
		MeetingID:   domain.NewMeetingID(),
	}
	require.NoError(t, db.Create(b).Error)
	return b
}

// A booking starting exactly at the query instant sits on both
// inclusive boundaries: it lists as upcoming and as past.
func TestWindowBoundariesAreInclusive(t *testing.T) {
	db := testdb.Open(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	customer, trainer := seedPair(t, db)

	now := time.Date(2030, 1, 15, 9, 30, 0, 0, time.UTC)
	boundary := seedBooking(t, db, customer, trainer, now)
	before := seedBooking(t, db, customer, trainer, now.Add(-time.Hour))
	after := seedBooking(t, db, customer, trainer, now.Add(time.Hour))

	upcoming, err := repo.ListUpcomingForCustomer(ctx, customer.ID, now)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, boundary.ID, upcoming[0].ID)
	assert.Equal(t, after.ID, upcoming[1].ID)

	past, err := repo.ListPastForCustomer(ctx, customer.ID, now)
	require.NoError(t, err)
	require.Len(t, past, 2)
	assert.Equal(t, before.ID, past[0].ID)
	assert.Equal(t, boundary.ID, past[1].ID)

	// Same boundary behavior on the trainer-side windows.
	upcoming, err = repo.ListUpcomingForTrainer(ctx, trainer.ID, now)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, boundary.ID, upcoming[0].ID)

	past, err = repo.ListPastForTrainer(ctx, trainer.ID, now)
	require.NoError(t, err)
	require.Len(t, past, 2)
	assert.Equal(t, boundary.ID, past[1].ID)
}

func TestWindowsAreScopedToOwner(t *testing.T) {
	db := testdb.Open(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	customer, trainer := seedPair(t, db)
	now := time.Date(2030, 1, 15, 9, 30, 0, 0, time.UTC)
	seedBooking(t, db, customer, trainer, now.Add(time.Hour))

	upcoming, err := repo.ListUpcomingForCustomer(ctx, customer.ID+99, now)
	require.NoError(t, err)
	assert.Empty(t, upcoming)

	upcoming, err = repo.ListUpcomingForTrainer(ctx, trainer.ID+99, now)
	require.NoError(t, err)
	assert.Empty(t, upcoming)
}
