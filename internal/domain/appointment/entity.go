package appointment

import (
	"time"

	"github.com/BruksfildServices01/agenda-negocios/internal/domain"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(ap.Status); err != nil {
		return err
	}

	ap.Status = domain.StatusConfirmed
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(ap.Status); err != nil {
		return err
	}

	ap.Status = domain.StatusCancelled
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(ap.Status); err != nil {
		return err
	}

	ap.Status = domain.StatusCompleted
	ap.CompletedAt = &now
	return nil
}

// BelongsTo reports whether every party of the appointment is registered
// under the same business.
func BelongsTo(businessID uint, customer *models.Customer, service *models.Service, professional *models.Professional) bool {
	return customer.BusinessID == businessID &&
		service.BusinessID == businessID &&
		professional.BusinessID == businessID
}
