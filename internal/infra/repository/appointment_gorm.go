package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barberiapro/booking-api/internal/domain/appointment"
	"github.com/barberiapro/booking-api/internal/httperr"
	"github.com/barberiapro/booking-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBarbers(
	ctx context.Context,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *AppointmentGormRepository) GetBarberByID(
	ctx context.Context,
	id string,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) ListServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("price ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *AppointmentGormRepository) GetServiceByID(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if f.BarberID != "" {
		q = q.Where("barber_id = ?", f.BarberID)
	}
	if f.Date != "" {
		q = q.Where("date = ?", f.Date)
	}

	var apps []models.Appointment
	if err := q.
		Order("date ASC, time ASC, created_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// CreateAppointment runs the slot check and the insert inside a single
// transaction. The locking count catches conflicts against existing rows
// early; for a still-free slot there is nothing to lock, so two racing
// transactions can both pass it — the partial unique index is the
// backstop there, and its violation surfaces as slot_taken too.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND date = ? AND time = ? AND status <> ?",
				ap.BarberID,
				ap.Date,
				ap.Time,
				string(domain.StatusCancelled),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}

		if ap.ID == "" {
			ap.ID = uuid.NewString()
		}
		ap.Status = string(domain.InitialStatus())
		ap.CreatedAt = time.Now()

		if err := tx.Create(ap).Error; err != nil {
			if isSlotTaken(err) {
				return httperr.ErrBusiness(httperr.CodeSlotTaken)
			}
			return err
		}
		return nil
	})
}

const pgUniqueViolation = "23505"

// isSlotTaken reports whether err is the active-slot index rejecting a
// second non-cancelled appointment on the same (barber, date, time).
func isSlotTaken(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgUniqueViolation &&
		pgErr.ConstraintName == models.UniqueActiveSlotIndex
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
