package models

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/timezone"
	"github.com/BruksfildServices01/agenda-negocios/internal/validators"
)

// AvailableDay é uma exceção de agenda para uma data. Sem profissional, vale
// para todos; sem bloqueio, vale o dia inteiro.
type AvailableDay struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessID uint      `gorm:"not null;uniqueIndex:idx_available_day_scope_date" json:"business_id"`
	Business   *Business `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"business,omitempty"`

	ProfessionalID *uint         `gorm:"index" json:"professional_id"`
	Professional   *Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"professional,omitempty"`

	// professional_id ou 0: NULL não participa de índice único em todos os bancos
	ProfessionalScope uint `gorm:"not null;uniqueIndex:idx_available_day_scope_date" json:"-"`

	Date Date `gorm:"not null;uniqueIndex:idx_available_day_scope_date" json:"date"`

	BlockedStartTime *string `gorm:"size:8" json:"blocked_start_time"`
	BlockedEndTime   *string `gorm:"size:8" json:"blocked_end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	loadedDate Date
}

func (a *AvailableDay) Standardize() {
	a.ProfessionalScope = 0
	if a.ProfessionalID != nil {
		a.ProfessionalScope = *a.ProfessionalID
	}
	a.BlockedStartTime = trimmedOrNil(a.BlockedStartTime)
	a.BlockedEndTime = trimmedOrNil(a.BlockedEndTime)
}

func (a *AvailableDay) Validate() error {
	if a.Date.IsZero() {
		return required("date", "")
	}
	return validators.Field("blocked_time", validators.ValidateTimeWindow(a.BlockedStartTime, a.BlockedEndTime))
}

func (a *AvailableDay) BeforeSave(tx *gorm.DB) error {
	a.Standardize()
	return a.Validate()
}

func (a *AvailableDay) BeforeCreate(tx *gorm.DB) error {
	return validators.Field("date", validators.ValidateDate(a.Date.Time, timezone.Now()))
}

// A data só volta a ser checada contra "hoje" quando muda.
func (a *AvailableDay) BeforeUpdate(tx *gorm.DB) error {
	if a.Date.Equal(a.loadedDate.Time) {
		return nil
	}
	return validators.Field("date", validators.ValidateDate(a.Date.Time, timezone.Now()))
}

func (a *AvailableDay) AfterFind(tx *gorm.DB) error {
	a.loadedDate = a.Date
	return nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
