package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/audit"
	"github.com/BruksfildServices01/agenda-negocios/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
)

type ProfessionalHandler struct {
	res resource[models.Professional]
}

func NewProfessionalHandler(db *gorm.DB, rec audit.Recorder) *ProfessionalHandler {
	return &ProfessionalHandler{res: resource[models.Professional]{
		repo: repository.NewCrudGormRepository[models.Professional](db, repository.Options{
			Order:         "name ASC",
			SearchColumns: []string{"name", "speciality", "email"},
			Conflict:      "Já existe um profissional com este CPF neste negócio.",
		}),
		audit:      rec,
		entity:     "professional",
		filters:    []filter{uintFilter("business_id"), digitsFilter("cpf"), boolFilter("is_active")},
		idOf:       func(v *models.Professional) uint { return v.ID },
		businessOf: func(v *models.Professional) *uint { return &v.BusinessID },
	}}
}

type ProfessionalRequest struct {
	BusinessID *uint          `json:"business_id"`
	Name       *string        `json:"name"`
	CPF        *string        `json:"cpf"`
	Speciality *string        `json:"speciality"`
	Email      *string        `json:"email"`
	Phone      *string        `json:"phone"`
	IsActive   *bool          `json:"is_active"`
	Schedule   map[string]any `json:"schedule"`
}

func (r *ProfessionalRequest) apply(v *models.Professional) {
	if r.BusinessID != nil {
		v.BusinessID = *r.BusinessID
	}
	if r.Name != nil {
		v.Name = *r.Name
	}
	if r.CPF != nil {
		v.CPF = *r.CPF
	}
	if r.Speciality != nil {
		v.Speciality = *r.Speciality
	}
	if r.Email != nil {
		v.Email = *r.Email
	}
	if r.Phone != nil {
		v.Phone = *r.Phone
	}
	if r.IsActive != nil {
		v.IsActive = *r.IsActive
	}
	if r.Schedule != nil {
		v.Schedule = datatypes.JSONMap(r.Schedule)
	}
}

func (h *ProfessionalHandler) List(c *gin.Context) { h.res.list(c) }
func (h *ProfessionalHandler) Get(c *gin.Context)  { h.res.get(c) }

func (h *ProfessionalHandler) Create(c *gin.Context) {
	var req ProfessionalRequest
	if !bindJSON(c, &req) {
		return
	}
	v := models.Professional{IsActive: true}
	req.apply(&v)
	h.res.create(c, &v)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	v, ok := h.res.load(c)
	if !ok {
		return
	}
	var req ProfessionalRequest
	if !bindJSON(c, &req) {
		return
	}
	req.apply(v)
	h.res.save(c, v)
}

func (h *ProfessionalHandler) Delete(c *gin.Context) { h.res.delete(c) }
