package appointment

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/barberiapro/booking-api/internal/audit"
	domain "github.com/barberiapro/booking-api/internal/domain/appointment"
	"github.com/barberiapro/booking-api/internal/httperr"
	"github.com/barberiapro/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerName  string
	CustomerPhone string

	BarberID  string
	ServiceID string

	Date string
	Time string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Shape validation first: every malformed field is
	// reported, not just the first one.
	// --------------------------------------------------
	ve := httperr.NewValidation()

	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		ve.Add("customer_name", "required")
	}

	phone := strings.TrimSpace(in.CustomerPhone)
	if phone == "" {
		ve.Add("customer_phone", "required")
	}

	if in.BarberID == "" {
		ve.Add("barber_id", "required")
	}
	if in.ServiceID == "" {
		ve.Add("service_id", "required")
	}

	if _, err := domain.ParseDate(in.Date); err != nil {
		ve.Add("date", "must be YYYY-MM-DD")
	}

	if !domain.IsValidSlot(in.Time) {
		ve.Add("time", "not a bookable time slot")
	}

	if ve.HasErrors() {
		return nil, ve
	}

	// --------------------------------------------------
	// Referential checks second. Only a missing record is
	// the caller's fault; a repository failure is not.
	// --------------------------------------------------
	if _, err := uc.repo.GetBarberByID(ctx, in.BarberID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		ve.Add("barber_id", "unknown barber")
	}

	if _, err := uc.repo.GetServiceByID(ctx, in.ServiceID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		ve.Add("service_id", "unknown service")
	}

	if ve.HasErrors() {
		return nil, ve
	}

	// --------------------------------------------------
	// Slot check + insert happen atomically in the repo;
	// a taken slot surfaces as slot_taken.
	// --------------------------------------------------
	ap := &models.Appointment{
		CustomerName:  name,
		CustomerPhone: phone,
		BarberID:      in.BarberID,
		ServiceID:     in.ServiceID,
		Date:          in.Date,
		Time:          in.Time,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{
			"barber_id": ap.BarberID,
			"date":      ap.Date,
			"time":      ap.Time,
		},
	})

	return ap, nil
}
