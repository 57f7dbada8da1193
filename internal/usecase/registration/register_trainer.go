package registration

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/winnyfit/booking-api/internal/audit"
	domain "github.com/winnyfit/booking-api/internal/domain/account"
	"github.com/winnyfit/booking-api/internal/httperr"
	"github.com/winnyfit/booking-api/internal/models"
	"github.com/winnyfit/booking-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type ProfileInput struct {
	Avatar    string `json:"avatar"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
	Website   string `json:"website"`
	Bio       string `json:"bio"`
}

type TrainerInput struct {
	Specialization string        `json:"specialization"`
	DateOfBirth    string        `json:"date_of_birth"`
	ContactNumber  string        `json:"contact_number"`
	Address        string        `json:"address"`
	Available      string        `json:"available"`
	Profile        *ProfileInput `json:"profile"`
}

type RegisterTrainerInput struct {
	FirstName string       `json:"firstname"`
	LastName  string       `json:"lastname"`
	Email     string       `json:"email"`
	Password  string       `json:"password"`
	Trainer   TrainerInput `json:"trainer"`
}

// ======================================================
// USE CASE
// ======================================================

type RegisterTrainer struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegisterTrainer(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RegisterTrainer {
	return &RegisterTrainer{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RegisterTrainer) Execute(
	ctx context.Context,
	in RegisterTrainerInput,
) (*models.UserAccount, error) {

	email := validators.NormalizeEmail(in.Email)

	fields := map[string]string{}
	if email == "" {
		fields["email"] = "This field is required."
	} else if !validators.IsEmailValid(email) {
		fields["email"] = "Enter a valid email address."
	}
	if in.FirstName == "" {
		fields["firstname"] = "This field is required."
	}
	if in.Password == "" {
		fields["password"] = "This field is required."
	}
	if in.Trainer.ContactNumber == "" {
		fields["trainer.contact_number"] = "This field is required."
	}
	if !models.Specialization(in.Trainer.Specialization).Valid() {
		fields["trainer.specialization"] = "Unknown specialization."
	}
	if a := in.Trainer.Available; a != "" && a != models.AvailableYes && a != models.AvailableNo {
		fields["trainer.available"] = "Must be \"yes\" or \"no\"."
	}

	var dob *time.Time
	if in.Trainer.DateOfBirth != "" {
		d, err := time.Parse("2006-01-02", in.Trainer.DateOfBirth)
		if err != nil {
			fields["trainer.date_of_birth"] = "Date must be in YYYY-MM-DD format."
		} else {
			dob = &d
		}
	}

	if len(fields) > 0 {
		return nil, httperr.ErrFields(fields)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	available := in.Trainer.Available
	if available == "" {
		available = models.AvailableYes
	}

	// Role is forced server-side: trainer registration never trusts a
	// client-supplied role.
	user := &models.UserAccount{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleTrainer,
		IsActive:     true,
	}

	trainer := &models.Trainer{
		Specialization: models.Specialization(in.Trainer.Specialization),
		DateOfBirth:    dob,
		ContactNumber:  in.Trainer.ContactNumber,
		Address:        in.Trainer.Address,
		Available:      available,
	}

	var profile *models.TrainerProfile
	if p := in.Trainer.Profile; p != nil {
		profile = &models.TrainerProfile{
			Avatar:    p.Avatar,
			Instagram: p.Instagram,
			Facebook:  p.Facebook,
			Twitter:   p.Twitter,
			LinkedIn:  p.LinkedIn,
			Website:   p.Website,
			Bio:       p.Bio,
		}
	}

	if err := uc.repo.CreateTrainerAccount(ctx, user, trainer, profile); err != nil {
		switch {
		case httperr.IsBusiness(err, "email_taken"):
			return nil, httperr.ErrField("email", "A user with this email already exists.")
		case httperr.IsBusiness(err, "contact_number_taken"):
			return nil, httperr.ErrField("trainer.contact_number", "This contact number is already taken.")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "trainer_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}

// TrainerDetails follows the user→trainer relationship for a freshly
// created account. A missing trainer row (mid multi-step creation) is
// not an error; the caller gets nil.
func (uc *RegisterTrainer) TrainerDetails(
	ctx context.Context,
	userID uint,
) (*models.Trainer, error) {

	trainer, err := uc.repo.GetTrainerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return trainer, nil
}
