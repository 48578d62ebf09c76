package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/httperr"
	"github.com/BruksfildServices01/agenda-negocios/internal/httpresp"
	"github.com/BruksfildServices01/agenda-negocios/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-negocios/internal/middleware"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
)

type MeHandler struct {
	users *repository.CrudGormRepository[models.User]
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{users: repository.NewCrudGormRepository[models.User](db, repository.Options{})}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Usuário não autenticado.")
		return
	}

	user, err := h.users.Get(c.Request.Context(), userID)
	if errors.Is(err, repository.ErrNotFound) {
		// conta removida depois da emissão do token
		httperr.Unauthorized(c, "user_not_found", "Usuário não encontrado.")
		return
	}
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"user": user})
}
