package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/httperr"
	"github.com/BruksfildServices01/agenda-negocios/internal/httpresp"
	"github.com/BruksfildServices01/agenda-negocios/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
)

// PublicHandler serves the unauthenticated catalogue of a business.
type PublicHandler struct {
	businesses *repository.CrudGormRepository[models.Business]
	services   *repository.CrudGormRepository[models.Service]
}

func NewPublicHandler(db *gorm.DB) *PublicHandler {
	return &PublicHandler{
		businesses: repository.NewCrudGormRepository[models.Business](db, repository.Options{}),
		services:   newServiceRepository(db),
	}
}

type PublicService struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           string `json:"price"`
	DurationSeconds int64  `json:"duration_seconds"`
}

// ListServices lists the active services of an active business.
// Inactive businesses answer 404, as if they did not exist.
func (h *PublicHandler) ListServices(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	business, err := h.businesses.Get(c.Request.Context(), id)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		httperr.FromError(c, err)
		return
	}
	if err != nil || !business.IsActive {
		httperr.NotFound(c, "business_not_found", "Negócio não encontrado.")
		return
	}

	params, ok := listParams(c, nil)
	if !ok {
		return
	}
	params.Filters["business_id"] = business.ID
	params.Filters["is_active"] = true

	page, err := h.services.List(c.Request.Context(), params)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	out := make([]PublicService, 0, len(page.Items))
	for _, s := range page.Items {
		out = append(out, PublicService{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			Price:           s.Price.StringFixed(2),
			DurationSeconds: s.DurationSeconds,
		})
	}
	httpresp.Page(c, out, page.Total, page.Page, page.Limit)
}
