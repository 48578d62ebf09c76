package handlers

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/audit"
	"github.com/BruksfildServices01/agenda-negocios/internal/domain"
	"github.com/BruksfildServices01/agenda-negocios/internal/httperr"
	"github.com/BruksfildServices01/agenda-negocios/internal/httpresp"
	"github.com/BruksfildServices01/agenda-negocios/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
	ucAppointment "github.com/BruksfildServices01/agenda-negocios/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	res resource[models.Appointment]

	create   *ucAppointment.CreateAppointment
	confirm  *ucAppointment.ConfirmAppointment
	cancel   *ucAppointment.CancelAppointment
	complete *ucAppointment.CompleteAppointment
	byDate   *ucAppointment.ListAppointmentsByDate
	byMonth  *ucAppointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(db *gorm.DB, rec audit.Recorder) *AppointmentHandler {
	repo := repository.NewAppointmentGormRepository(db)

	return &AppointmentHandler{
		res: resource[models.Appointment]{
			repo: repository.NewCrudGormRepository[models.Appointment](db, repository.Options{
				Order:    "datetime ASC, id ASC",
				Conflict: "Já existe um agendamento igual para este profissional, cliente e horário.",
			}),
			audit:  rec,
			entity: "appointment",
			filters: []filter{
				uintFilter("business_id"),
				uintFilter("customer_id"),
				uintFilter("service_id"),
				uintFilter("professional_id"),
				upperFilter("status"),
				upperFilter("source"),
			},
			idOf:       func(v *models.Appointment) uint { return v.ID },
			businessOf: func(v *models.Appointment) *uint { return &v.BusinessID },
		},
		create:   ucAppointment.NewCreateAppointment(repo, rec),
		confirm:  ucAppointment.NewConfirmAppointment(repo, rec),
		cancel:   ucAppointment.NewCancelAppointment(repo, rec),
		complete: ucAppointment.NewCompleteAppointment(repo, rec),
		byDate:   ucAppointment.NewListAppointmentsByDate(repo),
		byMonth:  ucAppointment.NewListAppointmentsByMonth(repo),
	}
}

// ======================================================
// REQUESTS
// ======================================================

// CreateAppointmentRequest: datetime in RFC 3339, e.g. "2025-03-10T14:30:00-03:00".
type CreateAppointmentRequest struct {
	BusinessID     uint      `json:"business_id" binding:"required"`
	CustomerID     uint      `json:"customer_id" binding:"required"`
	ServiceID      uint      `json:"service_id" binding:"required"`
	ProfessionalID uint      `json:"professional_id" binding:"required"`
	DateTime       time.Time `json:"datetime" binding:"required"`
	Source         string    `json:"source" binding:"required"`
	Notes          string    `json:"notes"`
}

// UpdateAppointmentRequest only reschedules or annotates; status moves
// through confirm/cancel/complete.
type UpdateAppointmentRequest struct {
	DateTime *time.Time `json:"datetime"`
	Source   *string    `json:"source"`
	Notes    *string    `json:"notes"`
}

// ======================================================
// CRUD
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) { h.res.list(c) }
func (h *AppointmentHandler) Get(c *gin.Context)  { h.res.get(c) }

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		UserID:         currentUserID(c),
		BusinessID:     req.BusinessID,
		CustomerID:     req.CustomerID,
		ServiceID:      req.ServiceID,
		ProfessionalID: req.ProfessionalID,
		DateTime:       req.DateTime,
		Source:         req.Source,
		Notes:          req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	ap, ok := h.res.load(c)
	if !ok {
		return
	}
	var req UpdateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	if req.DateTime != nil {
		ap.DateTime = *req.DateTime
	}
	if req.Source != nil {
		ap.Source = domain.Source(*req.Source)
	}
	if req.Notes != nil {
		ap.Notes = *req.Notes
	}
	h.res.save(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) { h.res.delete(c) }

// ======================================================
// TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, h.confirm.Execute)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cancel.Execute)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, h.complete.Execute)
}

type transitionFunc func(ctx context.Context, userID *uint, appointmentID uint) (*models.Appointment, error)

func (h *AppointmentHandler) transition(c *gin.Context, run transitionFunc) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ap, err := run(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// AGENDA
// ======================================================

// ListByDate: ?business_id=1&date=2025-03-10[&professional_id=2]. Without
// date, today in the business time zone.
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	businessID, professionalID, ok := agendaScope(c)
	if !ok {
		return
	}

	var date models.Date
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		d, err := models.ParseDate(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida (use AAAA-MM-DD).")
			return
		}
		date = d
	}

	items, err := h.byDate.Execute(c.Request.Context(), businessID, professionalID, date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, items)
}

// ListByMonth: ?business_id=1&year=2025&month=3[&professional_id=2].
func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	businessID, professionalID, ok := agendaScope(c)
	if !ok {
		return
	}

	yearStr := c.Query("year")
	monthStr := c.Query("month")
	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	items, err := h.byMonth.Execute(c.Request.Context(), businessID, professionalID, year, time.Month(month))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, items)
}

func agendaScope(c *gin.Context) (uint, *uint, bool) {
	businessID, ok := optionalUintQuery(c, "business_id")
	if !ok {
		return 0, nil, false
	}
	if businessID == nil {
		httperr.BadRequest(c, "missing_business_id", "business_id é obrigatório.")
		return 0, nil, false
	}
	professionalID, ok := optionalUintQuery(c, "professional_id")
	if !ok {
		return 0, nil, false
	}
	return *businessID, professionalID, true
}
