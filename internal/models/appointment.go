package models

import "time"

// UniqueActiveSlotIndex is the partial unique index allowing at most one
// non-cancelled appointment per (barber, date, time). The migration
// creates it; the repository translates its violation to slot_taken.
const UniqueActiveSlotIndex = "uniq_active_slot"

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null" json:"customer_phone"`

	BarberID string `gorm:"size:36;not null;index:idx_barber_day" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ServiceID string  `gorm:"size:36;not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Date string `gorm:"size:10;not null;index:idx_barber_day" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5;not null" json:"time"`                      // HH:MM

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
