package booking

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/winnyfit/booking-api/internal/audit"
	infraRepo "github.com/winnyfit/booking-api/internal/infra/repository"
	"github.com/winnyfit/booking-api/internal/models"
	"github.com/winnyfit/booking-api/internal/testdb"
)

type fixtures struct {
	db       *gorm.DB
	accounts *infraRepo.AccountGormRepository
	bookings *infraRepo.BookingGormRepository
	audit    *audit.Dispatcher
}

func setup(t *testing.T) fixtures {
	t.Helper()
	db := testdb.Open(t)
	return fixtures{
		db:       db,
		accounts: infraRepo.NewAccountGormRepository(db),
		bookings: infraRepo.NewBookingGormRepository(db),
		audit:    audit.NewDispatcher(audit.New(db)),
	}
}

func (f fixtures) trainer(t *testing.T, first, last, email, contact string) *models.Trainer {
	t.Helper()

	user := models.UserAccount{
		FirstName:    first,
		LastName:     last,
		Email:        email,
		PasswordHash: "x",
		Role:         models.RoleTrainer,
		IsActive:     true,
	}
	require.NoError(t, f.db.Create(&user).Error)

	trainer := models.Trainer{
		UserID:        user.ID,
		ContactNumber: contact,
		Available:     models.AvailableYes,
	}
	require.NoError(t, f.db.Create(&trainer).Error)
	require.NoError(t, f.db.Create(&models.TrainerProfile{TrainerID: trainer.ID}).Error)

	trainer.User = user
	return &trainer
}

func (f fixtures) customer(t *testing.T, first, last, email, contact string) *models.Customer {
	t.Helper()

	user := models.UserAccount{
		FirstName:    first,
		LastName:     last,
		Email:        email,
		PasswordHash: "x",
		Role:         models.RoleCustomer,
		IsActive:     true,
	}
	require.NoError(t, f.db.Create(&user).Error)

	customer := models.Customer{
		UserID:        user.ID,
		ContactNumber: contact,
	}
	require.NoError(t, f.db.Create(&customer).Error)

	customer.User = user
	return &customer
}
