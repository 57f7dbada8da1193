package models

import "time"

type Customer struct {
	ID     uint        `gorm:"primaryKey" json:"id"`
	UserID uint        `gorm:"uniqueIndex;not null" json:"user_id"`
	User   UserAccount `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	ContactNumber string `gorm:"column:contactnumber;size:20;uniqueIndex;not null" json:"contact_number"`

	RegDate time.Time `gorm:"autoCreateTime" json:"reg_date"`
}

func (Customer) TableName() string { return "customers" }
