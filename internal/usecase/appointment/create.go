package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/agenda-negocios/internal/audit"
	"github.com/BruksfildServices01/agenda-negocios/internal/domain"
	appt "github.com/BruksfildServices01/agenda-negocios/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-negocios/internal/httperr"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID *uint

	BusinessID     uint
	CustomerID     uint
	ServiceID      uint
	ProfessionalID uint

	DateTime time.Time
	Source   string
	Notes    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  appt.Repository
	audit audit.Recorder
}

func NewCreateAppointment(repo appt.Repository, audit audit.Recorder) *CreateAppointment {
	return &CreateAppointment{repo: repo, audit: audit}
}

func (uc *CreateAppointment) Execute(ctx context.Context, in CreateAppointmentInput) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Referências
	// --------------------------------------------------
	if _, err := uc.repo.GetBusiness(ctx, in.BusinessID); err != nil {
		return nil, notFoundAs(err, "business_not_found")
	}
	customer, err := uc.repo.GetCustomer(ctx, in.CustomerID)
	if err != nil {
		return nil, notFoundAs(err, "customer_not_found")
	}
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, notFoundAs(err, "service_not_found")
	}
	professional, err := uc.repo.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		return nil, notFoundAs(err, "professional_not_found")
	}

	// --------------------------------------------------
	// 2️⃣ Todos do mesmo negócio
	// --------------------------------------------------
	if !appt.BelongsTo(in.BusinessID, customer, service, professional) {
		return nil, httperr.ErrBusiness("reference_mismatch")
	}

	// --------------------------------------------------
	// 3️⃣ Criação (validação nos hooks do model)
	// --------------------------------------------------
	ap := &models.Appointment{
		BusinessID:     in.BusinessID,
		CustomerID:     customer.ID,
		ServiceID:      service.ID,
		ProfessionalID: professional.ID,
		DateTime:       in.DateTime,
		Status:         appt.InitialStatus(),
		Source:         domain.Source(in.Source),
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Record(ctx, audit.Event{
		BusinessID: &ap.BusinessID,
		UserID:     in.UserID,
		Action:     "appointment_created",
		Entity:     "appointment",
		EntityID:   &ap.ID,
		Metadata: map[string]any{
			"datetime":        ap.DateTime,
			"professional_id": ap.ProfessionalID,
			"service_id":      ap.ServiceID,
		},
	})

	return ap, nil
}

func notFoundAs(err error, code string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}
