package appointment_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/barberiapro/booking-api/internal/domain/appointment"
	"github.com/barberiapro/booking-api/internal/httperr"
	"github.com/barberiapro/booking-api/internal/models"
)

// fakeRepository mirrors the gorm repository's contract, including the
// serialized check-then-insert, so use-case tests exercise the same
// semantics without a database. catalogErr simulates a store outage on
// the lookup methods.
type fakeRepository struct {
	mu sync.Mutex

	barbers      map[string]models.Barber
	services     map[string]models.Service
	appointments []models.Appointment

	catalogErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		barbers:  map[string]models.Barber{},
		services: map[string]models.Service{},
	}
}

func (r *fakeRepository) seedBarber(id, name string) {
	r.barbers[id] = models.Barber{ID: id, Name: name, Rating: 5, Available: true}
}

func (r *fakeRepository) seedService(id, name string, price int) {
	r.services[id] = models.Service{ID: id, Name: name, Price: price, Duration: 30}
}

func (r *fakeRepository) ListBarbers(ctx context.Context) ([]models.Barber, error) {
	out := make([]models.Barber, 0, len(r.barbers))
	for _, b := range r.barbers {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeRepository) GetBarberByID(ctx context.Context, id string) (*models.Barber, error) {
	if r.catalogErr != nil {
		return nil, r.catalogErr
	}
	b, ok := r.barbers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (r *fakeRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	out := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeRepository) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	if r.catalogErr != nil {
		return nil, r.catalogErr
	}
	s, ok := r.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *fakeRepository) ListAppointments(ctx context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if f.BarberID != "" && ap.BarberID != f.BarberID {
			continue
		}
		if f.Date != "" && ap.Date != f.Date {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

func (r *fakeRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.appointments {
		if existing.BarberID == ap.BarberID &&
			existing.Date == ap.Date &&
			existing.Time == ap.Time &&
			existing.Status != string(domain.StatusCancelled) {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}
	}

	ap.ID = uuid.NewString()
	ap.Status = string(domain.InitialStatus())
	ap.CreatedAt = time.Now()

	r.appointments = append(r.appointments, *ap)
	return nil
}

var _ domain.Repository = (*fakeRepository)(nil)

// noopAuditWriter satisfies audit.Writer for tests.
type noopAuditWriter struct{}

func (noopAuditWriter) Log(action, entity, entityID string, metadata any) error {
	return nil
}
