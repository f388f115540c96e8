package appointment

import (
	"context"

	"github.com/barberiapro/booking-api/internal/models"
)

type ListFilter struct {
	BarberID string
	Date     string
}

type Repository interface {
	// -------- Catalog --------
	ListBarbers(ctx context.Context) ([]models.Barber, error)

	GetBarberByID(ctx context.Context, id string) (*models.Barber, error)

	ListServices(ctx context.Context) ([]models.Service, error)

	GetServiceByID(ctx context.Context, id string) (*models.Service, error)

	// -------- Appointments --------
	ListAppointments(ctx context.Context, f ListFilter) ([]models.Appointment, error)

	// CreateAppointment checks the (barber, date, time) slot and inserts
	// as one serialized operation. A taken slot fails with the
	// slot_taken business error and nothing is written.
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
}
