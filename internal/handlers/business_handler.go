package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/audit"
	"github.com/BruksfildServices01/agenda-negocios/internal/domain"
	"github.com/BruksfildServices01/agenda-negocios/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
)

type BusinessHandler struct {
	res resource[models.Business]
}

func NewBusinessHandler(db *gorm.DB, rec audit.Recorder) *BusinessHandler {
	return &BusinessHandler{res: resource[models.Business]{
		repo: repository.NewCrudGormRepository[models.Business](db, repository.Options{
			Order:         "name ASC",
			Preload:       []string{"City"},
			SearchColumns: []string{"name", "email"},
			Conflict:      "Já existe um negócio com este nome, cidade e categoria.",
		}),
		audit:   rec,
		entity:  "business",
		filters: []filter{upperFilter("category"), uintFilter("city_id"), boolFilter("is_active")},
		idOf:    func(b *models.Business) uint { return b.ID },
		businessOf: func(b *models.Business) *uint {
			id := b.ID
			return &id
		},
	}}
}

// --------- Requests ---------

// BusinessRequest serves POST and PATCH: absent fields keep their value.
// country is not accepted, every business is in Brazil.
type BusinessRequest struct {
	Name             *string        `json:"name"`
	Category         *string        `json:"category"`
	CityID           *uint          `json:"city_id"`
	Address          *string        `json:"address"`
	PublicPhone      *string        `json:"public_phone"`
	RestrictedPhone  *string        `json:"restricted_phone"`
	Email            *string        `json:"email"`
	Schedule         map[string]any `json:"schedule"`
	Timezone         *string        `json:"timezone"`
	ClosedOnHolidays *bool          `json:"closed_on_holidays"`
	IsActive         *bool          `json:"is_active"`
}

func (r *BusinessRequest) apply(b *models.Business) {
	if r.Name != nil {
		b.Name = *r.Name
	}
	if r.Category != nil {
		b.Category = domain.BusinessCategory(*r.Category)
	}
	if r.CityID != nil {
		b.CityID = r.CityID
		b.City = nil
	}
	if r.Address != nil {
		b.Address = *r.Address
	}
	if r.PublicPhone != nil {
		b.PublicPhone = *r.PublicPhone
	}
	if r.RestrictedPhone != nil {
		b.RestrictedPhone = *r.RestrictedPhone
	}
	if r.Email != nil {
		b.Email = *r.Email
	}
	if r.Schedule != nil {
		b.Schedule = datatypes.JSONMap(r.Schedule)
	}
	if r.Timezone != nil {
		b.Timezone = *r.Timezone
	}
	if r.ClosedOnHolidays != nil {
		b.ClosedOnHolidays = *r.ClosedOnHolidays
	}
	if r.IsActive != nil {
		b.IsActive = *r.IsActive
	}
}

// --------- Handlers ---------

func (h *BusinessHandler) List(c *gin.Context) { h.res.list(c) }
func (h *BusinessHandler) Get(c *gin.Context)  { h.res.get(c) }

func (h *BusinessHandler) Create(c *gin.Context) {
	var req BusinessRequest
	if !bindJSON(c, &req) {
		return
	}
	b := models.Business{IsActive: true}
	req.apply(&b)
	h.res.create(c, &b)
}

func (h *BusinessHandler) Update(c *gin.Context) {
	b, ok := h.res.load(c)
	if !ok {
		return
	}
	var req BusinessRequest
	if !bindJSON(c, &req) {
		return
	}
	req.apply(b)
	h.res.save(c, b)
}

func (h *BusinessHandler) Delete(c *gin.Context) { h.res.delete(c) }
