package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/validators"
)

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessID uint      `gorm:"not null;uniqueIndex:idx_service_business_name" json:"business_id"`
	Business   *Business `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"business,omitempty"`

	Name        string          `gorm:"size:80;not null;uniqueIndex:idx_service_business_name" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	// duração em segundos
	DurationSeconds int64 `gorm:"not null" json:"duration_seconds"`
	IsActive        bool  `gorm:"not null" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationSeconds) * time.Second
}

func (s *Service) Standardize() {
	s.Name = Capitalize(s.Name)
}

// Validate checks the raw values: the price is never rounded and the
// duration is checked in seconds before any conversion.
func (s *Service) Validate() error {
	return validators.First(
		required("name", s.Name),
		validators.Field("price", validators.ValidatePrice(s.Price)),
		validators.Field("price", validators.ValidatePricePrecision(s.Price)),
		validators.Field("duration_seconds", validators.ValidateDurationSeconds(s.DurationSeconds)),
	)
}

func (s *Service) BeforeSave(tx *gorm.DB) error {
	s.Standardize()
	return s.Validate()
}
