package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agenda-negocios/internal/models"
)

type Repository interface {
	// -------- References --------
	GetBusiness(ctx context.Context, id uint) (*models.Business, error)
	GetCustomer(ctx context.Context, id uint) (*models.Customer, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	GetProfessional(ctx context.Context, id uint) (*models.Professional, error)

	// -------- Appointment --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	// -------- Agenda --------
	// professionalID nil lista todos os profissionais do negócio
	ListAppointmentsForPeriod(
		ctx context.Context,
		businessID uint,
		professionalID *uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
