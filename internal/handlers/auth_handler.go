package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/audit"
	"github.com/BruksfildServices01/agenda-negocios/internal/auth"
	"github.com/BruksfildServices01/agenda-negocios/internal/httperr"
	"github.com/BruksfildServices01/agenda-negocios/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-negocios/internal/middleware"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
	"github.com/BruksfildServices01/agenda-negocios/internal/validators"
)

type AuthHandler struct {
	users       *repository.CrudGormRepository[models.User]
	db          *gorm.DB
	issuer      *auth.Issuer
	revoker     auth.Revoker
	audit       audit.Recorder
	checkDomain bool
}

func NewAuthHandler(db *gorm.DB, issuer *auth.Issuer, revoker auth.Revoker, rec audit.Recorder, checkDomain bool) *AuthHandler {
	return &AuthHandler{
		users: repository.NewCrudGormRepository[models.User](db, repository.Options{
			Conflict: "E-mail já cadastrado.",
		}),
		db:          db,
		issuer:      issuer,
		revoker:     revoker,
		audit:       rec,
		checkDomain: checkDomain,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

// --------- Handlers ---------

// Register creates an operator account. The first account becomes admin.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	email := models.NormalizeEmail(req.Email)
	if h.checkDomain && !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "email_domain_invalid", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar a senha.")
		return
	}

	var count int64
	if err := h.db.WithContext(c.Request.Context()).Model(&models.User{}).Count(&count).Error; err != nil {
		httperr.FromError(c, err)
		return
	}
	role := models.RoleStaff
	if count == 0 {
		role = models.RoleAdmin
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		httperr.FromError(c, err)
		return
	}

	h.audit.Record(c.Request.Context(), audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	h.respondWithToken(c, http.StatusCreated, &user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	var user models.User
	err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", models.NormalizeEmail(req.Email)).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
		return
	}
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
		return
	}

	h.respondWithToken(c, http.StatusOK, &user)
}

// Logout revokes the presented token until its own expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.TokenClaims(c)
	if !ok {
		httperr.Unauthorized(c, "invalid_token", "Token inválido ou expirado.")
		return
	}

	if err := h.revoker.Revoke(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user *models.User) {
	token, exp, err := h.issuer.Issue(user.ID, user.Role)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar o token.")
		return
	}
	c.JSON(status, TokenResponse{Token: token, ExpiresAt: exp, User: user})
}
