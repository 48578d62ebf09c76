package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/audit"
	"github.com/BruksfildServices01/agenda-negocios/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
)

type ServiceHandler struct {
	res resource[models.Service]
}

func newServiceRepository(db *gorm.DB) *repository.CrudGormRepository[models.Service] {
	return repository.NewCrudGormRepository[models.Service](db, repository.Options{
		Order:         "name ASC",
		SearchColumns: []string{"name", "description"},
		Conflict:      "Já existe um serviço com este nome neste negócio.",
	})
}

func NewServiceHandler(db *gorm.DB, rec audit.Recorder) *ServiceHandler {
	return &ServiceHandler{res: resource[models.Service]{
		repo:       newServiceRepository(db),
		audit:      rec,
		entity:     "service",
		filters:    []filter{uintFilter("business_id"), boolFilter("is_active")},
		idOf:       func(v *models.Service) uint { return v.ID },
		businessOf: func(v *models.Service) *uint { return &v.BusinessID },
	}}
}

// ServiceRequest takes the price as a JSON number or string ("49.90").
type ServiceRequest struct {
	BusinessID      *uint            `json:"business_id"`
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	Price           *decimal.Decimal `json:"price"`
	DurationSeconds *int64           `json:"duration_seconds"`
	IsActive        *bool            `json:"is_active"`
}

func (r *ServiceRequest) apply(v *models.Service) {
	if r.BusinessID != nil {
		v.BusinessID = *r.BusinessID
	}
	if r.Name != nil {
		v.Name = *r.Name
	}
	if r.Description != nil {
		v.Description = *r.Description
	}
	if r.Price != nil {
		v.Price = *r.Price
	}
	if r.DurationSeconds != nil {
		v.DurationSeconds = *r.DurationSeconds
	}
	if r.IsActive != nil {
		v.IsActive = *r.IsActive
	}
}

func (h *ServiceHandler) List(c *gin.Context) { h.res.list(c) }
func (h *ServiceHandler) Get(c *gin.Context)  { h.res.get(c) }

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	v := models.Service{IsActive: true}
	req.apply(&v)
	h.res.create(c, &v)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	v, ok := h.res.load(c)
	if !ok {
		return
	}
	var req ServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	req.apply(v)
	h.res.save(c, v)
}

func (h *ServiceHandler) Delete(c *gin.Context) { h.res.delete(c) }
