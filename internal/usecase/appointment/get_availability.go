package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/barberiapro/booking-api/internal/domain/appointment"
	"github.com/barberiapro/booking-api/internal/httperr"
	"github.com/barberiapro/booking-api/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
	tz   string
}

func NewGetAvailability(repo domain.Repository, tz string) *GetAvailability {
	return &GetAvailability{repo: repo, tz: tz}
}

// Execute returns the slot grid for one barber and date, each slot marked
// booked or free. Past dates come back empty: nothing is selectable.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.SlotStatus, error) {

	date, err := domain.ParseDate(in.Date)
	if err != nil {
		ve := httperr.NewValidation()
		ve.Add("date", "must be YYYY-MM-DD")
		return nil, ve
	}

	if _, err := uc.repo.GetBarberByID(ctx, in.BarberID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, httperr.ErrBusiness(httperr.CodeBarberNotFound)
	}

	slots := domain.SlotsForDate(date, timezone.Today(uc.tz))
	if len(slots) == 0 {
		return []domain.SlotStatus{}, nil
	}

	apps, err := uc.repo.ListAppointments(ctx, domain.ListFilter{
		BarberID: in.BarberID,
		Date:     in.Date,
	})
	if err != nil {
		return nil, err
	}

	return domain.Partition(slots, apps), nil
}
