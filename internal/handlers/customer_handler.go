package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/audit"
	"github.com/BruksfildServices01/agenda-negocios/internal/domain"
	"github.com/BruksfildServices01/agenda-negocios/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
)

type CustomerHandler struct {
	res resource[models.Customer]
}

func NewCustomerHandler(db *gorm.DB, rec audit.Recorder) *CustomerHandler {
	return &CustomerHandler{res: resource[models.Customer]{
		repo: repository.NewCrudGormRepository[models.Customer](db, repository.Options{
			Order:         "name ASC",
			SearchColumns: []string{"name", "email", "phone"},
			Conflict:      "Já existe um cliente com este CPF neste negócio.",
		}),
		audit:  rec,
		entity: "customer",
		filters: []filter{
			uintFilter("business_id"),
			digitsFilter("cpf"),
			upperFilter("registration_source"),
			boolFilter("is_active"),
			boolFilter("is_opt_in"),
		},
		idOf:       func(v *models.Customer) uint { return v.ID },
		businessOf: func(v *models.Customer) *uint { return &v.BusinessID },
	}}
}

type CustomerRequest struct {
	BusinessID         *uint        `json:"business_id"`
	Name               *string      `json:"name"`
	BirthDate          *models.Date `json:"birth_date"`
	RegistrationSource *string      `json:"registration_source"`
	CPF                *string      `json:"cpf"`
	Email              *string      `json:"email"`
	Phone              *string      `json:"phone"`
	IsActive           *bool        `json:"is_active"`
	IsOptIn            *bool        `json:"is_opt_in"`
}

func (r *CustomerRequest) apply(v *models.Customer) {
	if r.BusinessID != nil {
		v.BusinessID = *r.BusinessID
	}
	if r.Name != nil {
		v.Name = *r.Name
	}
	if r.BirthDate != nil {
		v.BirthDate = r.BirthDate
	}
	if r.RegistrationSource != nil {
		v.RegistrationSource = domain.Source(*r.RegistrationSource)
	}
	if r.CPF != nil {
		v.CPF = *r.CPF
	}
	if r.Email != nil {
		v.Email = r.Email
	}
	if r.Phone != nil {
		v.Phone = *r.Phone
	}
	if r.IsActive != nil {
		v.IsActive = *r.IsActive
	}
	if r.IsOptIn != nil {
		v.IsOptIn = *r.IsOptIn
	}
}

func (h *CustomerHandler) List(c *gin.Context) { h.res.list(c) }
func (h *CustomerHandler) Get(c *gin.Context)  { h.res.get(c) }

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CustomerRequest
	if !bindJSON(c, &req) {
		return
	}
	v := models.Customer{IsActive: true}
	req.apply(&v)
	h.res.create(c, &v)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	v, ok := h.res.load(c)
	if !ok {
		return
	}
	var req CustomerRequest
	if !bindJSON(c, &req) {
		return
	}
	req.apply(v)
	h.res.save(c, v)
}

func (h *CustomerHandler) Delete(c *gin.Context) { h.res.delete(c) }
