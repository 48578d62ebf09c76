package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/agenda-negocios/internal/domain"
	"github.com/BruksfildServices01/agenda-negocios/internal/metrics"
	"github.com/BruksfildServices01/agenda-negocios/internal/validators"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// FromError writes the response matching err:
//
//	validation / uniqueness -> 400 {error_code, message, field}
//	domain.ErrNotFound      -> 404
//	BusinessError           -> 400 with its code
//	anything else           -> 500
func FromError(c *gin.Context, err error) {
	if ve, ok := validators.As(err); ok {
		metrics.ValidationFailures.WithLabelValues(string(ve.Kind), string(ve.Code)).Inc()
		c.AbortWithStatusJSON(http.StatusBadRequest, HTTPError{
			Code:    string(ve.Code),
			Message: ve.Message,
			Field:   ve.Field,
		})
		return
	}

	if errors.Is(err, domain.ErrNotFound) {
		NotFound(c, "not_found", "Registro não encontrado.")
		return
	}

	var be BusinessError
	if errors.As(err, &be) {
		BadRequest(c, be.Code, businessMessage(be.Code))
		return
	}

	_ = c.Error(err)
	log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
	Internal(c, "internal_error", "Erro interno.")
}
