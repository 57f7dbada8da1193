package registration

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/winnyfit/booking-api/internal/audit"
	domain "github.com/winnyfit/booking-api/internal/domain/account"
	"github.com/winnyfit/booking-api/internal/httperr"
	"github.com/winnyfit/booking-api/internal/models"
	"github.com/winnyfit/booking-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type UserInput struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type RegisterCustomerInput struct {
	User          UserInput `json:"user"`
	ContactNumber string    `json:"contact_number"`
}

// ======================================================
// USE CASE
// ======================================================

type RegisterCustomer struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegisterCustomer(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RegisterCustomer {
	return &RegisterCustomer{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RegisterCustomer) Execute(
	ctx context.Context,
	in RegisterCustomerInput,
) (*models.UserAccount, error) {

	email := validators.NormalizeEmail(in.User.Email)

	fields := map[string]string{}
	if email == "" {
		fields["user.email"] = "This field is required."
	} else if !validators.IsEmailValid(email) {
		fields["user.email"] = "Enter a valid email address."
	}
	if in.User.FirstName == "" {
		fields["user.firstname"] = "This field is required."
	}
	if in.User.Password == "" {
		fields["user.password"] = "This field is required."
	}
	if in.ContactNumber == "" {
		fields["contact_number"] = "This field is required."
	}

	if len(fields) > 0 {
		return nil, httperr.ErrFields(fields)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.User.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.UserAccount{
		FirstName:    in.User.FirstName,
		LastName:     in.User.LastName,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleCustomer,
		IsActive:     true,
	}

	customer := &models.Customer{
		ContactNumber: in.ContactNumber,
	}

	if err := uc.repo.CreateCustomerAccount(ctx, user, customer); err != nil {
		switch {
		case httperr.IsBusiness(err, "email_taken"):
			return nil, httperr.ErrField("user.email", "A user with this email already exists.")
		case httperr.IsBusiness(err, "contact_number_taken"):
			return nil, httperr.ErrField("contact_number", "This contact number is already taken.")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "customer_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}
