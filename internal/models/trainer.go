package models

import "time"

type Specialization string

const (
	SpecPersonalTraining       Specialization = "personal-training"
	SpecGroupFitness           Specialization = "group-fitness"
	SpecStrengthConditioning   Specialization = "strength-conditioning"
	SpecWeightLossCoaching     Specialization = "weight-loss-coaching"
	SpecRehabilitationTraining Specialization = "rehabilitation-training"
)

// Valid accepts the closed set plus empty, matching the optional field.
func (s Specialization) Valid() bool {
	switch s {
	case "", SpecPersonalTraining, SpecGroupFitness, SpecStrengthConditioning,
		SpecWeightLossCoaching, SpecRehabilitationTraining:
		return true
	}
	return false
}

const (
	AvailableYes = "yes"
	AvailableNo  = "no"
)

type Trainer struct {
	ID     uint        `gorm:"primaryKey" json:"id"`
	UserID uint        `gorm:"uniqueIndex;not null" json:"user_id"`
	User   UserAccount `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Specialization Specialization `gorm:"size:50" json:"specialization"`
	DateOfBirth    *time.Time     `json:"date_of_birth"`
	ContactNumber  string         `gorm:"size:20;uniqueIndex;not null" json:"contact_number"`
	Address        string         `gorm:"size:255" json:"address"`
	Available      string         `gorm:"size:20;default:'yes'" json:"available"`

	Profile TrainerProfile `gorm:"foreignKey:TrainerID" json:"profile"`

	CreatedAt time.Time `json:"created_at"`
}

func (Trainer) TableName() string { return "trainers" }
