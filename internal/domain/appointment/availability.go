package appointment

import "github.com/barberiapro/booking-api/internal/models"

type AvailabilityInput struct {
	BarberID string
	Date     string
}

// SlotStatus pairs a slot with its booked flag for rendering.
type SlotStatus struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

// IsBooked reports whether any slot-blocking appointment in the list
// occupies exactly the given time. Callers pass the appointments already
// scoped to one barber and date.
func IsBooked(t string, appointments []models.Appointment) bool {
	for _, ap := range appointments {
		if ap.Time == t && BlocksSlot(Status(ap.Status)) {
			return true
		}
	}
	return false
}

// Partition maps the slot grid for a date onto its booked state.
func Partition(slots []string, appointments []models.Appointment) []SlotStatus {
	out := make([]SlotStatus, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotStatus{
			Time:   s,
			Booked: IsBooked(s, appointments),
		})
	}
	return out
}
