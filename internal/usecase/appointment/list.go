package appointment

import (
	"context"
	"time"

	appt "github.com/BruksfildServices01/agenda-negocios/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-negocios/internal/dto"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
	"github.com/BruksfildServices01/agenda-negocios/internal/timezone"
)

// ======================================================
// POR DIA
// ======================================================

type ListAppointmentsByDate struct {
	repo appt.Repository
}

func NewListAppointmentsByDate(repo appt.Repository) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo}
}

// Execute lists the appointments of one calendar day in the business time zone.
// A zero date means today there.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	businessID uint,
	professionalID *uint,
	date models.Date,
) ([]dto.AppointmentListDTO, error) {

	business, err := uc.repo.GetBusiness(ctx, businessID)
	if err != nil {
		return nil, notFoundAs(err, "business_not_found")
	}

	loc := business.Location()
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	if date.IsZero() {
		start = timezone.StartOfDay(timezone.Now(), loc)
	}
	end := start.AddDate(0, 0, 1)

	apps, err := uc.repo.ListAppointmentsForPeriod(ctx, businessID, professionalID, start, end)
	if err != nil {
		return nil, err
	}
	return dto.NewAppointmentList(apps, loc), nil
}

// ======================================================
// POR MÊS
// ======================================================

type ListAppointmentsByMonth struct {
	repo appt.Repository
}

func NewListAppointmentsByMonth(repo appt.Repository) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{repo: repo}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	businessID uint,
	professionalID *uint,
	year int,
	month time.Month,
) ([]dto.AppointmentListDTO, error) {

	business, err := uc.repo.GetBusiness(ctx, businessID)
	if err != nil {
		return nil, notFoundAs(err, "business_not_found")
	}

	loc := business.Location()
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	apps, err := uc.repo.ListAppointmentsForPeriod(ctx, businessID, professionalID, start, end)
	if err != nil {
		return nil, err
	}
	return dto.NewAppointmentList(apps, loc), nil
}
