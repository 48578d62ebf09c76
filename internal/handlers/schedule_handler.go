package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/audit"
	"github.com/BruksfildServices01/agenda-negocios/internal/httperr"
	"github.com/BruksfildServices01/agenda-negocios/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
)

// ScheduleHandler exposes the weekly schedule of businesses and professionals
// as its own resource. PUT replaces the whole week.
type ScheduleHandler struct {
	businesses    *repository.CrudGormRepository[models.Business]
	professionals *repository.CrudGormRepository[models.Professional]
	audit         audit.Recorder
}

func NewScheduleHandler(db *gorm.DB, rec audit.Recorder) *ScheduleHandler {
	return &ScheduleHandler{
		businesses:    repository.NewCrudGormRepository[models.Business](db, repository.Options{}),
		professionals: repository.NewCrudGormRepository[models.Professional](db, repository.Options{}),
		audit:         rec,
	}
}

// ScheduleRequest: {"schedule": {"1": {"start": "08:00", "end": "18:00", "breaks": [...]}}}
type ScheduleRequest struct {
	Schedule map[string]any `json:"schedule" binding:"required"`
}

type scheduleResponse struct {
	Schedule datatypes.JSONMap `json:"schedule"`
}

func (h *ScheduleHandler) GetBusiness(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	b, err := h.businesses.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, scheduleResponse{Schedule: b.Schedule})
}

func (h *ScheduleHandler) UpdateBusiness(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req ScheduleRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.businesses.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	b.Schedule = datatypes.JSONMap(req.Schedule)
	if err := h.businesses.Update(c.Request.Context(), b); err != nil {
		httperr.FromError(c, err)
		return
	}

	h.record(c, &b.ID, "business", b.ID)
	c.JSON(http.StatusOK, scheduleResponse{Schedule: b.Schedule})
}

func (h *ScheduleHandler) GetProfessional(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	p, err := h.professionals.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, scheduleResponse{Schedule: p.Schedule})
}

func (h *ScheduleHandler) UpdateProfessional(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req ScheduleRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.professionals.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	p.Schedule = datatypes.JSONMap(req.Schedule)
	if err := h.professionals.Update(c.Request.Context(), p); err != nil {
		httperr.FromError(c, err)
		return
	}

	h.record(c, &p.BusinessID, "professional", p.ID)
	c.JSON(http.StatusOK, scheduleResponse{Schedule: p.Schedule})
}

func (h *ScheduleHandler) record(c *gin.Context, businessID *uint, entity string, id uint) {
	h.audit.Record(c.Request.Context(), audit.Event{
		BusinessID: businessID,
		UserID:     currentUserID(c),
		Action:     "schedule_updated",
		Entity:     entity,
		EntityID:   &id,
	})
}
