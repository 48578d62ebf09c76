package models

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessID *uint  `gorm:"index" json:"business_id"`
	UserID     *uint  `json:"user_id"`
	Action     string `gorm:"size:50;not null" json:"action"`

	Entity   string            `gorm:"size:50;index" json:"entity"`
	EntityID *uint             `json:"entity_id"`
	Metadata datatypes.JSONMap `json:"metadata"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
