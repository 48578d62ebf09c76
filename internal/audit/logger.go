package audit

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/models"
)

type Event struct {
	BusinessID *uint
	UserID     *uint
	Action     string
	Entity     string
	EntityID   *uint
	Metadata   map[string]any
}

// Recorder stores audit events. Failures are logged, never returned:
// auditing must not break the request that triggered it.
type Recorder interface {
	Record(ctx context.Context, ev Event)
}

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	row := models.AuditLog{
		BusinessID: ev.BusinessID,
		UserID:     ev.UserID,
		Action:     ev.Action,
		Entity:     ev.Entity,
		EntityID:   ev.EntityID,
	}
	if len(ev.Metadata) > 0 {
		row.Metadata = datatypes.JSONMap(ev.Metadata)
	}

	return l.db.WithContext(ctx).Create(&row).Error
}

func (l *Logger) Record(ctx context.Context, ev Event) {
	if err := l.Log(ctx, ev); err != nil {
		log.Error().Err(err).Str("action", ev.Action).Str("entity", ev.Entity).Msg("audit error")
	}
}
