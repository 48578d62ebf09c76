package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/domain"
	"github.com/BruksfildServices01/agenda-negocios/internal/timezone"
	"github.com/BruksfildServices01/agenda-negocios/internal/validators"
)

const DefaultCountry = "Brasil"

type Business struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string                  `gorm:"size:70;not null;uniqueIndex:idx_business_name_city_category" json:"name"`
	Category domain.BusinessCategory `gorm:"size:2;not null;uniqueIndex:idx_business_name_city_category" json:"category"`
	Country  string                  `gorm:"size:50;not null" json:"country"`

	CityID *uint `gorm:"uniqueIndex:idx_business_name_city_category" json:"city_id"`
	City   *City `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"city,omitempty"`

	Address         string `gorm:"size:100;not null" json:"address"`
	PublicPhone     string `gorm:"size:11;not null" json:"public_phone"`
	RestrictedPhone string `gorm:"size:11;not null" json:"restricted_phone"`
	Email           string `gorm:"size:100;not null" json:"email"`

	// dia da semana ("0".."6") -> {start, end, breaks}
	Schedule         datatypes.JSONMap `json:"schedule"`
	Timezone         string            `gorm:"size:50;not null" json:"timezone"`
	ClosedOnHolidays bool              `gorm:"not null" json:"closed_on_holidays"`
	IsActive         bool              `gorm:"not null" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Business) Standardize() {
	b.Name = TitleName(b.Name)
	b.Category = domain.BusinessCategory(upper(string(b.Category)))
	b.Country = DefaultCountry
	b.PublicPhone = NormalizeDigits(b.PublicPhone)
	b.RestrictedPhone = NormalizeDigits(b.RestrictedPhone)
	b.Email = NormalizeEmail(b.Email)
	if b.Timezone == "" {
		b.Timezone = timezone.DefaultTimezone
	}
	if b.Schedule == nil {
		b.Schedule = datatypes.JSONMap{}
	}
}

func (b *Business) Validate() error {
	return validators.First(
		required("name", b.Name),
		validators.Field("category", validators.ValidateBusinessCategory(string(b.Category))),
		required("address", b.Address),
		validators.Field("public_phone", validators.ValidatePhoneNumber(b.PublicPhone)),
		validators.Field("restricted_phone", validators.ValidatePhoneNumber(b.RestrictedPhone)),
		validators.Field("email", validators.ValidateEmail(b.Email)),
		validators.Field("schedule", validators.ValidateSchedule(b.Schedule)),
		validateTimezone(b.Timezone),
	)
}

func (b *Business) BeforeSave(tx *gorm.DB) error {
	b.Standardize()
	return b.Validate()
}

// Location is the business time zone, used to compute days and months.
func (b *Business) Location() *time.Location {
	return timezone.Location(b.Timezone)
}

func validateTimezone(tz string) error {
	if !timezone.IsValid(tz) {
		return validators.Field("timezone", validators.New(
			validators.KindFormat, validators.CodeInvalidFormat, "Fuso horário inválido."))
	}
	return nil
}
