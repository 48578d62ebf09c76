package appointment

import (
	"context"

	"github.com/BruksfildServices01/agenda-negocios/internal/audit"
	appt "github.com/BruksfildServices01/agenda-negocios/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
)

type CompleteAppointment struct {
	repo  appt.Repository
	audit audit.Recorder
}

func NewCompleteAppointment(repo appt.Repository, audit audit.Recorder) *CompleteAppointment {
	return &CompleteAppointment{repo: repo, audit: audit}
}

func (uc *CompleteAppointment) Execute(ctx context.Context, userID *uint, appointmentID uint) (*models.Appointment, error) {
	return transition(ctx, uc.repo, uc.audit, userID, appointmentID, "appointment_completed", appt.Complete)
}
