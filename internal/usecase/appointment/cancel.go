package appointment

import (
	"context"

	"github.com/BruksfildServices01/agenda-negocios/internal/audit"
	appt "github.com/BruksfildServices01/agenda-negocios/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
)

type CancelAppointment struct {
	repo  appt.Repository
	audit audit.Recorder
}

func NewCancelAppointment(repo appt.Repository, audit audit.Recorder) *CancelAppointment {
	return &CancelAppointment{repo: repo, audit: audit}
}

func (uc *CancelAppointment) Execute(ctx context.Context, userID *uint, appointmentID uint) (*models.Appointment, error) {
	return transition(ctx, uc.repo, uc.audit, userID, appointmentID, "appointment_cancelled", appt.Cancel)
}
