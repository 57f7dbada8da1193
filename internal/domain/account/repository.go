package account

import (
	"context"

	"github.com/winnyfit/booking-api/internal/models"
)

type Repository interface {
	// -------- Users --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.UserAccount, error)

	GetUserByEmail(
		ctx context.Context,
		email string,
	) (*models.UserAccount, error)

	// -------- Registration (atomic multi-create) --------
	CreateTrainerAccount(
		ctx context.Context,
		user *models.UserAccount,
		trainer *models.Trainer,
		profile *models.TrainerProfile,
	) error

	CreateCustomerAccount(
		ctx context.Context,
		user *models.UserAccount,
		customer *models.Customer,
	) error

	// -------- Role lookups --------
	GetTrainerByUserID(
		ctx context.Context,
		userID uint,
	) (*models.Trainer, error)

	GetCustomerByUserID(
		ctx context.Context,
		userID uint,
	) (*models.Customer, error)

	GetTrainerByID(
		ctx context.Context,
		id uint,
	) (*models.Trainer, error)

	FindTrainerByName(
		ctx context.Context,
		firstName string,
		lastName string,
	) (*models.Trainer, error)

	ListTrainers(
		ctx context.Context,
	) ([]models.Trainer, error)
}
