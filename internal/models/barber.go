package models

type Barber struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Specialty string `gorm:"size:255;not null" json:"specialty"`
	Photo     string `gorm:"size:255" json:"photo"`
	Rating    int    `gorm:"default:5" json:"rating"`
	Available bool   `gorm:"default:true" json:"available"`
}
