package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/domain"
	"github.com/BruksfildServices01/agenda-negocios/internal/timezone"
	"github.com/BruksfildServices01/agenda-negocios/internal/validators"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessID uint      `gorm:"not null;uniqueIndex:idx_appointment_identity" json:"business_id"`
	Business   *Business `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"business,omitempty"`

	CustomerID uint      `gorm:"not null;uniqueIndex:idx_appointment_identity" json:"customer_id"`
	Customer   *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"customer,omitempty"`

	ServiceID uint     `gorm:"not null;uniqueIndex:idx_appointment_identity" json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service,omitempty"`

	ProfessionalID uint          `gorm:"not null;uniqueIndex:idx_appointment_identity;index:idx_appointment_professional_datetime" json:"professional_id"`
	Professional   *Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"professional,omitempty"`

	DateTime time.Time                `gorm:"column:datetime;not null;uniqueIndex:idx_appointment_identity;index:idx_appointment_professional_datetime" json:"datetime"`
	Status   domain.AppointmentStatus `gorm:"size:20;not null;uniqueIndex:idx_appointment_identity" json:"status"`
	Source   domain.Source            `gorm:"size:20;not null" json:"source"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	loadedDateTime time.Time
}

func (a *Appointment) Standardize() {
	if a.Status == "" {
		a.Status = domain.StatusScheduled
	}
	a.Status = domain.AppointmentStatus(upper(string(a.Status)))
	a.Source = domain.Source(upper(string(a.Source)))
	a.DateTime = a.DateTime.UTC()
}

func (a *Appointment) Validate() error {
	if a.DateTime.IsZero() {
		return required("datetime", "")
	}
	return validators.First(
		validators.Field("status", validators.ValidateStatus(string(a.Status))),
		validators.Field("source", validators.ValidateSource(string(a.Source))),
	)
}

func (a *Appointment) BeforeSave(tx *gorm.DB) error {
	a.Standardize()
	return a.Validate()
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	return validators.Field("datetime", validators.ValidateDateTime(a.DateTime, timezone.Now()))
}

// Reagendar para o passado é recusado; mudar só o status de um horário passado não.
func (a *Appointment) BeforeUpdate(tx *gorm.DB) error {
	if a.DateTime.Equal(a.loadedDateTime) {
		return nil
	}
	return validators.Field("datetime", validators.ValidateDateTime(a.DateTime, timezone.Now()))
}

func (a *Appointment) AfterFind(tx *gorm.DB) error {
	a.loadedDateTime = a.DateTime
	return nil
}

// StatusLabel is the localized status shown to users.
func (a *Appointment) StatusLabel() string {
	return a.Status.Label()
}
