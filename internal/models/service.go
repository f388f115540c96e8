package models

type Service struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Duration    int    `gorm:"not null" json:"duration"` // minutes
	Price       int    `gorm:"not null" json:"price"`    // smallest currency unit
	Icon        string `gorm:"size:50" json:"icon"`
}
