package domain

import "strings"

// AppointmentStatus keys are stored; Label is what users see.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "SCHEDULED"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusCompleted AppointmentStatus = "COMPLETED"
)

func Statuses() []AppointmentStatus {
	return []AppointmentStatus{StatusScheduled, StatusConfirmed, StatusCancelled, StatusCompleted}
}

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

func (s AppointmentStatus) Label() string {
	switch s {
	case StatusScheduled:
		return "Agendado"
	case StatusConfirmed:
		return "Confirmado"
	case StatusCancelled:
		return "Cancelado"
	case StatusCompleted:
		return "Concluído"
	}
	return string(s)
}

func ParseStatus(value string) (AppointmentStatus, bool) {
	s := AppointmentStatus(strings.ToUpper(value))
	return s, s.IsValid()
}
