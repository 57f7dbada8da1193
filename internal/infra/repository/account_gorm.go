package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domain "github.com/winnyfit/booking-api/internal/domain/account"
	"github.com/winnyfit/booking-api/internal/httperr"
	"github.com/winnyfit/booking-api/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *AccountGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.UserAccount, error) {

	var user models.UserAccount
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AccountGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.UserAccount, error) {

	var user models.UserAccount
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Registration (single transaction, rollback on conflict)
// --------------------------------------------------

func (r *AccountGormRepository) CreateTrainerAccount(
	ctx context.Context,
	user *models.UserAccount,
	trainer *models.Trainer,
	profile *models.TrainerProfile,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return httperr.ErrBusiness("email_taken")
			}
			return err
		}

		trainer.UserID = user.ID
		if err := tx.Create(trainer).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return httperr.ErrBusiness("contact_number_taken")
			}
			return err
		}

		// A trainer always has a profile row, created in the same
		// transaction whether or not the client supplied one.
		if profile == nil {
			profile = &models.TrainerProfile{}
		}
		profile.TrainerID = trainer.ID
		if err := tx.Create(profile).Error; err != nil {
			return err
		}

		return nil
	})
}

func (r *AccountGormRepository) CreateCustomerAccount(
	ctx context.Context,
	user *models.UserAccount,
	customer *models.Customer,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return httperr.ErrBusiness("email_taken")
			}
			return err
		}

		customer.UserID = user.ID
		if err := tx.Create(customer).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return httperr.ErrBusiness("contact_number_taken")
			}
			return err
		}

		return nil
	})
}

// --------------------------------------------------
// Role lookups
// --------------------------------------------------

func (r *AccountGormRepository) GetTrainerByUserID(
	ctx context.Context,
	userID uint,
) (*models.Trainer, error) {

	var trainer models.Trainer
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Profile").
		Where("user_id = ?", userID).
		First(&trainer).Error; err != nil {
		return nil, err
	}
	return &trainer, nil
}

func (r *AccountGormRepository) GetCustomerByUserID(
	ctx context.Context,
	userID uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *AccountGormRepository) GetTrainerByID(
	ctx context.Context,
	id uint,
) (*models.Trainer, error) {

	var trainer models.Trainer
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Profile").
		First(&trainer, id).Error; err != nil {
		return nil, err
	}
	return &trainer, nil
}

func (r *AccountGormRepository) FindTrainerByName(
	ctx context.Context,
	firstName string,
	lastName string,
) (*models.Trainer, error) {

	var trainer models.Trainer
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Profile").
		Joins("JOIN users ON users.id = trainers.user_id").
		Where(
			"LOWER(users.firstname) = ? AND LOWER(users.lastname) = ?",
			strings.ToLower(firstName),
			strings.ToLower(lastName),
		).
		Order("trainers.id ASC").
		First(&trainer).Error; err != nil {
		return nil, err
	}
	return &trainer, nil
}

func (r *AccountGormRepository) ListTrainers(
	ctx context.Context,
) ([]models.Trainer, error) {

	var trainers []models.Trainer
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Profile").
		Order("id ASC").
		Find(&trainers).Error; err != nil {
		return nil, err
	}
	return trainers, nil
}

// Compile-time check
var _ domain.Repository = (*AccountGormRepository)(nil)
