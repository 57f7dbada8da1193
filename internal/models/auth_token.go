package models

import "time"

// AuthToken is the persistent opaque bearer credential. One row per
// account: sign-in reuses the existing key, sign-out deletes the row.
type AuthToken struct {
	Key    string      `gorm:"primaryKey;size:64" json:"-"`
	UserID uint        `gorm:"uniqueIndex;not null" json:"user_id"`
	User   UserAccount `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (AuthToken) TableName() string { return "auth_tokens" }
