package appointment

import (
	"github.com/BruksfildServices01/agenda-negocios/internal/domain"
	"github.com/BruksfildServices01/agenda-negocios/internal/httperr"
)

// ===============================
// Transições de status
// ===============================
//
//	SCHEDULED -> CONFIRMED
//	SCHEDULED | CONFIRMED -> CANCELLED
//	SCHEDULED | CONFIRMED -> COMPLETED

func CanConfirm(current domain.AppointmentStatus) error {
	if current != domain.StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current domain.AppointmentStatus) error {
	if !isOpen(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current domain.AppointmentStatus) error {
	if !isOpen(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() domain.AppointmentStatus {
	return domain.StatusScheduled
}

func isOpen(s domain.AppointmentStatus) bool {
	return s == domain.StatusScheduled || s == domain.StatusConfirmed
}
