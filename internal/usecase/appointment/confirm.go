package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agenda-negocios/internal/audit"
	appt "github.com/BruksfildServices01/agenda-negocios/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
)

type ConfirmAppointment struct {
	repo  appt.Repository
	audit audit.Recorder
}

func NewConfirmAppointment(repo appt.Repository, audit audit.Recorder) *ConfirmAppointment {
	return &ConfirmAppointment{repo: repo, audit: audit}
}

func (uc *ConfirmAppointment) Execute(ctx context.Context, userID *uint, appointmentID uint) (*models.Appointment, error) {
	return transition(ctx, uc.repo, uc.audit, userID, appointmentID, "appointment_confirmed",
		func(ap *models.Appointment, _ time.Time) error { return appt.Confirm(ap) })
}
