package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/agenda-negocios/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
)

const appointmentConflict = "Já existe um agendamento igual para este profissional, cliente e horário."

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// References
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBusiness(ctx context.Context, id uint) (*models.Business, error) {
	var b models.Business
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, translate(err, "")
	}
	return &b, nil
}

func (r *AppointmentGormRepository) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	var c models.Customer
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err, "")
	}
	return &c, nil
}

func (r *AppointmentGormRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, translate(err, "")
	}
	return &s, nil
}

func (r *AppointmentGormRepository) GetProfessional(ctx context.Context, id uint) (*models.Professional, error) {
	var p models.Professional
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err, "")
	}
	return &p, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(ap).Error
	return translate(err, appointmentConflict)
}

func (r *AppointmentGormRepository) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, translate(err, "")
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(ap).Error
	return translate(err, appointmentConflict)
}

// --------------------------------------------------
// Agenda
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	businessID uint,
	professionalID *uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Preload("Professional").
		Where("business_id = ? AND datetime >= ? AND datetime < ?", businessID, start.UTC(), end.UTC())

	if professionalID != nil {
		q = q.Where("professional_id = ?", *professionalID)
	}

	var apps []models.Appointment
	if err := q.Order("datetime ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
