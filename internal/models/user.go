package models

import "time"

type Role string

const (
	RoleCustomer       Role = "customer"
	RoleTrainer        Role = "trainer"
	RoleAdministrative Role = "administrative"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleTrainer, RoleAdministrative:
		return true
	}
	return false
}

type UserAccount struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"column:firstname;size:255;not null" json:"firstname"`
	LastName  string `gorm:"column:lastname;size:255" json:"lastname"`

	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         Role   `gorm:"size:50;default:'customer'" json:"role"`

	Avatar   string `gorm:"size:255" json:"avatar"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
	IsStaff  bool   `gorm:"default:false" json:"is_staff"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserAccount) TableName() string { return "users" }

func (u *UserAccount) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
