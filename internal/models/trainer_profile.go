package models

type TrainerProfile struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	TrainerID uint `gorm:"uniqueIndex;not null" json:"trainer_id"`

	Avatar    string `gorm:"size:255" json:"avatar"`
	Instagram string `gorm:"size:255" json:"instagram"`
	Facebook  string `gorm:"size:255" json:"facebook"`
	Twitter   string `gorm:"size:255" json:"twitter"`
	LinkedIn  string `gorm:"size:255" json:"linkedin"`
	Website   string `gorm:"size:255" json:"website"`
	Bio       string `gorm:"type:text" json:"bio"`
}

func (TrainerProfile) TableName() string { return "trainer_profiles" }
