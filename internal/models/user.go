package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/validators"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User é quem opera a API; clientes e profissionais não fazem login.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;not null" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Name = TitleName(u.Name)
	u.Email = NormalizeEmail(u.Email)
	if u.Role == "" {
		u.Role = RoleStaff
	}

	return validators.First(
		required("name", u.Name),
		validators.Field("email", validators.ValidateEmail(u.Email)),
	)
}
