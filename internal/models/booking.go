package models

import "time"

type SessionType string

const (
	SessionVirtual  SessionType = "virtual"
	SessionInPerson SessionType = "in-person"
)

func (s SessionType) Valid() bool {
	return s == SessionVirtual || s == SessionInPerson
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint     `gorm:"not null;index" json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"customer"`

	TrainerID uint    `gorm:"not null;index" json:"trainer_id"`
	Trainer   Trainer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"trainer"`

	Title       string      `gorm:"size:255" json:"title"`
	SessionType SessionType `gorm:"size:20;not null" json:"session_type"`

	StartTime      time.Time `gorm:"index;not null" json:"start_time"`
	SessionStarted bool      `gorm:"default:false" json:"session_started"`

	// MeetingID is set once at creation and never regenerated.
	MeetingID string `gorm:"size:64;uniqueIndex;not null" json:"meeting_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Booking) TableName() string { return "bookings" }
