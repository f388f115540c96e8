package appointment

import (
	"context"

	domain "github.com/barberiapro/booking-api/internal/domain/appointment"
	"github.com/barberiapro/booking-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	apps, err := uc.repo.ListAppointments(ctx, f)
	if err != nil {
		return nil, err
	}

	if apps == nil {
		apps = []models.Appointment{}
	}
	return apps, nil
}
