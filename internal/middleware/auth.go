package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-negocios/internal/auth"
	"github.com/BruksfildServices01/agenda-negocios/internal/httperr"
)

const (
	ContextUserID      = "userID"
	ContextUserRole    = "userRole"
	ContextTokenClaims = "tokenClaims"
)

func AuthMiddleware(issuer *auth.Issuer, revoker auth.Revoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Cabeçalho Authorization ausente.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Use o formato: Bearer <token>.")
			return
		}

		claims, err := issuer.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Token inválido ou expirado.")
			return
		}

		revoked, err := revoker.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			LoggerFrom(c).Error().Err(err).Msg("revocation lookup failed")
			httperr.Internal(c, "internal_error", "Erro interno.")
			return
		}
		if revoked {
			httperr.Unauthorized(c, "token_revoked", "Sessão encerrada. Faça login novamente.")
			return
		}

		userID, _ := claims.UserID()
		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, claims.Role)
		c.Set(ContextTokenClaims, claims)

		c.Next()
	}
}

// UserID returns the authenticated user, when the request went through AuthMiddleware.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func TokenClaims(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ContextTokenClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
