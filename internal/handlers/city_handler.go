package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/httperr"
	"github.com/BruksfildServices01/agenda-negocios/internal/httpresp"
	"github.com/BruksfildServices01/agenda-negocios/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
)

// CityHandler is read-only: cities come from the IBGE import.
type CityHandler struct {
	repo *repository.CityGormRepository
	res  resource[models.City]
}

func NewCityHandler(db *gorm.DB) *CityHandler {
	repo := repository.NewCityGormRepository(db)
	return &CityHandler{
		repo: repo,
		res: resource[models.City]{
			repo:    repo.CrudGormRepository,
			filters: []filter{upperFilter("state")},
			idOf:    func(v *models.City) uint { return v.ID },
		},
	}
}

func (h *CityHandler) List(c *gin.Context) { h.res.list(c) }
func (h *CityHandler) Get(c *gin.Context)  { h.res.get(c) }

// States lists the UFs that have at least one city.
func (h *CityHandler) States(c *gin.Context) {
	states, err := h.repo.States(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, states)
}
