package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/validators"
)

type Professional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessID uint      `gorm:"not null;uniqueIndex:idx_professional_business_cpf" json:"business_id"`
	Business   *Business `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"business,omitempty"`

	Name       string `gorm:"size:80;not null" json:"name"`
	CPF        string `gorm:"column:cpf;size:11;not null;uniqueIndex:idx_professional_business_cpf" json:"cpf"`
	Speciality string `gorm:"size:50;not null" json:"speciality"`
	Email      string `gorm:"size:60;not null" json:"email"`
	Phone      string `gorm:"size:11;not null" json:"phone"`
	IsActive   bool   `gorm:"not null" json:"is_active"`

	Schedule datatypes.JSONMap `json:"schedule"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Professional) Standardize() {
	p.Name = TitleName(p.Name)
	p.Speciality = Capitalize(p.Speciality)
	p.CPF = NormalizeDigits(p.CPF)
	p.Phone = NormalizeDigits(p.Phone)
	p.Email = NormalizeEmail(p.Email)
	if p.Schedule == nil {
		p.Schedule = datatypes.JSONMap{}
	}
}

func (p *Professional) Validate() error {
	return validators.First(
		required("name", p.Name),
		validators.Field("cpf", validators.ValidateCPF(p.CPF)),
		required("speciality", p.Speciality),
		validators.Field("email", validators.ValidateEmail(p.Email)),
		validators.Field("phone", validators.ValidatePhoneNumber(p.Phone)),
		validators.Field("schedule", validators.ValidateSchedule(p.Schedule)),
	)
}

func (p *Professional) BeforeSave(tx *gorm.DB) error {
	p.Standardize()
	return p.Validate()
}
