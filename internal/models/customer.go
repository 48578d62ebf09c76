package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/domain"
	"github.com/BruksfildServices01/agenda-negocios/internal/timezone"
	"github.com/BruksfildServices01/agenda-negocios/internal/validators"
)

// Cliente de um negócio, identificado pelo CPF dentro dele.
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessID uint      `gorm:"not null;uniqueIndex:idx_customer_business_cpf" json:"business_id"`
	Business   *Business `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"business,omitempty"`

	Name               string        `gorm:"size:80;not null" json:"name"`
	BirthDate          *Date         `json:"birth_date"`
	RegistrationSource domain.Source `gorm:"size:20;not null" json:"registration_source"`
	CPF                string        `gorm:"column:cpf;size:11;not null;uniqueIndex:idx_customer_business_cpf" json:"cpf"`
	Email              *string       `gorm:"size:60" json:"email"`
	Phone              string        `gorm:"size:11;not null" json:"phone"`
	IsActive           bool          `gorm:"not null" json:"is_active"`
	IsOptIn            bool          `gorm:"not null" json:"is_opt_in"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Customer) Standardize() {
	c.Name = TitleName(c.Name)
	c.RegistrationSource = domain.Source(upper(string(c.RegistrationSource)))
	c.CPF = NormalizeDigits(c.CPF)
	c.Phone = NormalizeDigits(c.Phone)
	if c.Email != nil {
		email := NormalizeEmail(*c.Email)
		if email == "" {
			c.Email = nil
		} else {
			c.Email = &email
		}
	}
}

func (c *Customer) Validate() error {
	var emailErr, birthErr error
	if c.Email != nil {
		emailErr = validators.Field("email", validators.ValidateEmail(*c.Email))
	}
	if c.BirthDate != nil {
		birthErr = validators.Field("birth_date", validators.ValidateBirthDate(c.BirthDate.Time, timezone.Now()))
	}

	return validators.First(
		required("name", c.Name),
		birthErr,
		validators.Field("registration_source", validators.ValidateSource(string(c.RegistrationSource))),
		validators.Field("cpf", validators.ValidateCPF(c.CPF)),
		emailErr,
		validators.Field("phone", validators.ValidatePhoneNumber(c.Phone)),
	)
}

func (c *Customer) BeforeSave(tx *gorm.DB) error {
	c.Standardize()
	return c.Validate()
}
