package registration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/winnyfit/booking-api/internal/audit"
	"github.com/winnyfit/booking-api/internal/httperr"
	infraRepo "github.com/winnyfit/booking-api/internal/infra/repository"
	"github.com/winnyfit/booking-api/internal/models"
	"github.com/winnyfit/booking-api/internal/testdb"
)

func newRegisterTrainer(t *testing.T) (*RegisterTrainer, *gorm.DB) {
	t.Helper()
	db := testdb.Open(t)
	repo := infraRepo.NewAccountGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))
	return NewRegisterTrainer(repo, dispatcher), db
}

func trainerInput(email, contact string) RegisterTrainerInput {
	return RegisterTrainerInput{
		FirstName: "Amaya",
		LastName:  "Perera",
		Email:     email,
		Password:  "secret123",
		Trainer: TrainerInput{
			Specialization: string(models.SpecPersonalTraining),
			DateOfBirth:    "1990-04-12",
			ContactNumber:  contact,
			Address:        "12 Galle Road",
		},
	}
}

func TestRegisterTrainerCreatesProfileWhenOmitted(t *testing.T) {
	uc, db := newRegisterTrainer(t)

	user, err := uc.Execute(context.Background(), trainerInput("amaya@example.com", "0771234567"))
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	var trainer models.Trainer
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&trainer).Error)

	var profile models.TrainerProfile
	require.NoError(t, db.Where("trainer_id = ?", trainer.ID).First(&profile).Error,
		"profile row must exist even when no profile payload was supplied")
}

func TestRegisterTrainerWithProfilePayload(t *testing.T) {
	uc, db := newRegisterTrainer(t)

	in := trainerInput("amaya@example.com", "0771234567")
	in.Trainer.Profile = &ProfileInput{
		Instagram: "https://instagram.com/amaya",
		Bio:       "Strength coach.",
	}

	user, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	var trainer models.Trainer
	require.NoError(t, db.Preload("Profile").Where("user_id = ?", user.ID).First(&trainer).Error)
	assert.Equal(t, "https://instagram.com/amaya", trainer.Profile.Instagram)
	assert.Equal(t, "Strength coach.", trainer.Profile.Bio)
}

func TestRegisterTrainerForcesRoleAndNormalizesEmail(t *testing.T) {
	uc, _ := newRegisterTrainer(t)

	user, err := uc.Execute(context.Background(), trainerInput("  AMAYA@Example.COM ", "0771234567"))
	require.NoError(t, err)

	assert.Equal(t, models.RoleTrainer, user.Role)
	assert.Equal(t, "amaya@example.com", user.Email)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "secret123", user.PasswordHash, "password must not be stored in plain form")
}

func TestRegisterTrainerDuplicateEmail(t *testing.T) {
	uc, db := newRegisterTrainer(t)

	_, err := uc.Execute(context.Background(), trainerInput("amaya@example.com", "0771234567"))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), trainerInput("amaya@example.com", "0779999999"))
	fe, ok := httperr.AsFieldError(err)
	require.True(t, ok, "duplicate email must surface as a field error, got %v", err)
	assert.Contains(t, fe.Fields, "email")

	var count int64
	db.Model(&models.UserAccount{}).Count(&count)
	assert.EqualValues(t, 1, count, "losing registration must not persist an account row")
}

func TestRegisterTrainerDuplicateContactNumberRollsBack(t *testing.T) {
	uc, db := newRegisterTrainer(t)

	_, err := uc.Execute(context.Background(), trainerInput("first@example.com", "0771234567"))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), trainerInput("second@example.com", "0771234567"))
	fe, ok := httperr.AsFieldError(err)
	require.True(t, ok)
	assert.Contains(t, fe.Fields, "trainer.contact_number")

	// The user row staged before the conflicting trainer create must be
	// rolled back with it.
	var count int64
	db.Model(&models.UserAccount{}).Where("email = ?", "second@example.com").Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestRegisterTrainerValidation(t *testing.T) {
	uc, db := newRegisterTrainer(t)

	in := trainerInput("", "0771234567")
	in.FirstName = ""

	_, err := uc.Execute(context.Background(), in)
	fe, ok := httperr.AsFieldError(err)
	require.True(t, ok)
	assert.Contains(t, fe.Fields, "email")
	assert.Contains(t, fe.Fields, "firstname")

	var count int64
	db.Model(&models.UserAccount{}).Count(&count)
	assert.EqualValues(t, 0, count, "validation failure must not create partial state")
}

func TestRegisterTrainerRejectsUnknownSpecialization(t *testing.T) {
	uc, _ := newRegisterTrainer(t)

	in := trainerInput("amaya@example.com", "0771234567")
	in.Trainer.Specialization = "crossfit"

	_, err := uc.Execute(context.Background(), in)
	fe, ok := httperr.AsFieldError(err)
	require.True(t, ok)
	assert.Contains(t, fe.Fields, "trainer.specialization")
}

func TestTrainerDetailsToleratesMissingRow(t *testing.T) {
	uc, db := newRegisterTrainer(t)

	// An account without a trainer row, as seen mid multi-step creation.
	user := models.UserAccount{
		FirstName:    "Nuwan",
		Email:        "nuwan@example.com",
		PasswordHash: "x",
		Role:         models.RoleTrainer,
	}
	require.NoError(t, db.Create(&user).Error)

	trainer, err := uc.TrainerDetails(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Nil(t, trainer)
}
