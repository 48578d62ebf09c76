package dto

import (
	"time"

	"github.com/BruksfildServices01/agenda-negocios/internal/models"
)

type AppointmentListDTO struct {
	ID               uint      `json:"id"`
	DateTime         time.Time `json:"datetime"`
	EndTime          time.Time `json:"end_time"`
	Status           string    `json:"status"`
	StatusLabel      string    `json:"status_label"`
	Source           string    `json:"source"`
	CustomerName     string    `json:"customer_name"`
	ServiceName      string    `json:"service_name"`
	ProfessionalName string    `json:"professional_name"`
}

// NewAppointmentList flattens preloaded appointments, with times shown in loc.
func NewAppointmentList(apps []models.Appointment, loc *time.Location) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		item := AppointmentListDTO{
			ID:          ap.ID,
			DateTime:    ap.DateTime.In(loc),
			EndTime:     ap.DateTime.In(loc),
			Status:      string(ap.Status),
			StatusLabel: ap.StatusLabel(),
			Source:      string(ap.Source),
		}
		if ap.Customer != nil {
			item.CustomerName = ap.Customer.Name
		}
		if ap.Service != nil {
			item.ServiceName = ap.Service.Name
			item.EndTime = item.DateTime.Add(ap.Service.Duration())
		}
		if ap.Professional != nil {
			item.ProfessionalName = ap.Professional.Name
		}
		out = append(out, item)
	}
	return out
}
