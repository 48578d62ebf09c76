package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/audit"
	"github.com/BruksfildServices01/agenda-negocios/internal/httperr"
	"github.com/BruksfildServices01/agenda-negocios/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
)

type AvailableDayHandler struct {
	res           resource[models.AvailableDay]
	professionals *repository.CrudGormRepository[models.Professional]
}

func NewAvailableDayHandler(db *gorm.DB, rec audit.Recorder) *AvailableDayHandler {
	return &AvailableDayHandler{
		res: resource[models.AvailableDay]{
			repo: repository.NewCrudGormRepository[models.AvailableDay](db, repository.Options{
				Order:    "date ASC, id ASC",
				Conflict: "Já existe uma exceção para esta data e profissional.",
			}),
			audit:   rec,
			entity:  "available_day",
			filters: []filter{uintFilter("business_id"), uintFilter("professional_id"), dateFilter("date")},
			idOf:    func(v *models.AvailableDay) uint { return v.ID },
			businessOf: func(v *models.AvailableDay) *uint {
				return &v.BusinessID
			},
		},
		professionals: repository.NewCrudGormRepository[models.Professional](db, repository.Options{}),
	}
}

func dateFilter(param string) filter {
	return filter{param: param, column: param, parse: func(v string) (any, bool) {
		d, err := models.ParseDate(v)
		return d, err == nil
	}}
}

// AvailableDayRequest: blocked_start_time/blocked_end_time as "HH:MM", both or neither.
type AvailableDayRequest struct {
	BusinessID       *uint        `json:"business_id"`
	ProfessionalID   *uint        `json:"professional_id"`
	Date             *models.Date `json:"date"`
	BlockedStartTime *string      `json:"blocked_start_time"`
	BlockedEndTime   *string      `json:"blocked_end_time"`
}

func (r *AvailableDayRequest) apply(v *models.AvailableDay) {
	if r.BusinessID != nil {
		v.BusinessID = *r.BusinessID
	}
	if r.ProfessionalID != nil {
		v.ProfessionalID = r.ProfessionalID
		v.Professional = nil
	}
	if r.Date != nil {
		v.Date = *r.Date
	}
	if r.BlockedStartTime != nil {
		v.BlockedStartTime = r.BlockedStartTime
	}
	if r.BlockedEndTime != nil {
		v.BlockedEndTime = r.BlockedEndTime
	}
}

func (h *AvailableDayHandler) List(c *gin.Context) { h.res.list(c) }
func (h *AvailableDayHandler) Get(c *gin.Context)  { h.res.get(c) }

func (h *AvailableDayHandler) Create(c *gin.Context) {
	var req AvailableDayRequest
	if !bindJSON(c, &req) {
		return
	}
	var v models.AvailableDay
	req.apply(&v)
	if !h.checkProfessional(c, &v) {
		return
	}
	h.res.create(c, &v)
}

func (h *AvailableDayHandler) Update(c *gin.Context) {
	v, ok := h.res.load(c)
	if !ok {
		return
	}
	var req AvailableDayRequest
	if !bindJSON(c, &req) {
		return
	}
	req.apply(v)
	if !h.checkProfessional(c, v) {
		return
	}
	h.res.save(c, v)
}

func (h *AvailableDayHandler) Delete(c *gin.Context) { h.res.delete(c) }

// checkProfessional requires the professional, when set, to be registered
// under the same business as the day.
func (h *AvailableDayHandler) checkProfessional(c *gin.Context, v *models.AvailableDay) bool {
	if v.ProfessionalID == nil {
		return true
	}
	p, err := h.professionals.Get(c.Request.Context(), *v.ProfessionalID)
	if errors.Is(err, repository.ErrNotFound) {
		httperr.FromError(c, httperr.ErrBusiness("professional_not_found"))
		return false
	}
	if err != nil {
		httperr.FromError(c, err)
		return false
	}
	if p.BusinessID != v.BusinessID {
		httperr.FromError(c, httperr.ErrBusiness("professional_business_mismatch"))
		return false
	}
	return true
}
