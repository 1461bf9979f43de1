package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/barbeariajosimar/booking-api/internal/config"
	"github.com/barbeariajosimar/booking-api/internal/httperr"
	"github.com/barbeariajosimar/booking-api/internal/middleware"
	"github.com/barbeariajosimar/booking-api/internal/models"
	ucAuth "github.com/barbeariajosimar/booking-api/internal/usecase/auth"
)

type AuthHandler struct {
	register *ucAuth.RegisterUser
	login    *ucAuth.LoginUser
	config   *config.Config
}

func NewAuthHandler(register *ucAuth.RegisterUser, login *ucAuth.LoginUser, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		config:   cfg,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type OwnerLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	user, err := h.register.Execute(c.Request.Context(), ucAuth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		if errors.Is(err, ucAuth.ErrDuplicateEmail) {
			httperr.Conflict(c, "email_already_registered", "Este e-mail já está cadastrado.")
			return
		}
		httperr.Internal(c, "failed_to_register", "Erro ao criar conta.")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar sessão.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  userPayload(user),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	user, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ucAuth.ErrInvalidCredentials) {
			httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro ao entrar.")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar sessão.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userPayload(user),
		"token": token,
	})
}

// OwnerLogin reproduz o portão do painel do dono: uma senha fixa
// configurada, sem conta própria. Acerto emite token com role owner.
func (h *AuthHandler) OwnerLogin(c *gin.Context) {
	var req OwnerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Password != h.config.OwnerPassword {
		httperr.Unauthorized(c, "invalid_credentials", "Senha do dono incorreta.")
		return
	}

	token, err := h.signToken(jwt.MapClaims{
		"sub":  middleware.RoleOwner,
		"role": middleware.RoleOwner,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar sessão.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	return h.signToken(jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  middleware.RoleClient,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	})
}

func (h *AuthHandler) signToken(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

// Nunca devolve o registro completo (a senha está nele).
func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"phone": user.Phone,
	}
}
