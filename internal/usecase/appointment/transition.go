package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agenda-negocios/internal/audit"
	appt "github.com/BruksfildServices01/agenda-negocios/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
	"github.com/BruksfildServices01/agenda-negocios/internal/timezone"
)

// transition loads the appointment, applies action at the business' local
// time, persists it and records action under the given audit name.
func transition(
	ctx context.Context,
	repo appt.Repository,
	rec audit.Recorder,
	userID *uint,
	appointmentID uint,
	auditAction string,
	action func(ap *models.Appointment, now time.Time) error,
) (*models.Appointment, error) {

	ap, err := repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	business, err := repo.GetBusiness(ctx, ap.BusinessID)
	if err != nil {
		return nil, err
	}

	from := ap.Status
	now := timezone.NowIn(business.Timezone)
	if err := action(ap, now); err != nil {
		return nil, err
	}

	if err := repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	rec.Record(ctx, audit.Event{
		BusinessID: &ap.BusinessID,
		UserID:     userID,
		Action:     auditAction,
		Entity:     "appointment",
		EntityID:   &ap.ID,
		Metadata:   map[string]any{"from": from, "to": ap.Status},
	})

	return ap, nil
}
