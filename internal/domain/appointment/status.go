package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// InitialStatus is forced on every new appointment; the caller never
// chooses it.
func InitialStatus() Status {
	return StatusPending
}

// BlocksSlot reports whether an appointment in this status keeps its
// time slot occupied. Only cancellation frees the slot.
func BlocksSlot(s Status) bool {
	return s != StatusCancelled
}
