package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"auth-api/internal/domain"
	"auth-api/internal/service"
)

// AuthHandler mantiene dependencias para los endpoints de autenticación.
type AuthHandler struct {
	logger   *zap.Logger
	userServ *service.UserService
	jwtServ  *service.JWTService
}

// NewAuthHandler crea una instancia de AuthHandler con dependencias necesarias.
func NewAuthHandler(logger *zap.Logger, userServ *service.UserService, jwtServ *service.JWTService) *AuthHandler {
	return &AuthHandler{
		logger:   logger,
		userServ: userServ,
		jwtServ:  jwtServ,
	}
}

// authPayload es el cuerpo de las respuestas de signup y signin.
type authPayload struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

const minPasswordLength = 6

// Signup maneja POST /auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid signup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, Response{Message: "Email and password are required", Success: false})
		return
	}

	if len(req.Password) < minPasswordLength {
		c.JSON(http.StatusBadRequest, Response{Message: "Password must be at least 6 characters long", Success: false})
		return
	}

	user, err := h.userServ.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, Response{Message: "User already exists with this email", Success: false})
			return
		}
		h.logger.Error("signup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Internal server error", Success: false})
		return
	}

	token, err := h.jwtServ.Issue(user)
	if err != nil {
		h.logger.Error("token issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Internal server error", Success: false})
		return
	}

	c.JSON(http.StatusCreated, Response{
		Message: "User created successfully",
		Success: true,
		Data:    authPayload{User: user, Token: token},
	})
}

// Signin maneja POST /auth/signin.
func (h *AuthHandler) Signin(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid signin request", zap.Error(err))
		c.JSON(http.StatusBadRequest, Response{Message: "Email and password are required", Success: false})
		return
	}

	user, err := h.userServ.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Mismo mensaje para email desconocido y contraseña incorrecta.
			c.JSON(http.StatusUnauthorized, Response{Message: "Invalid email or password", Success: false})
			return
		}
		h.logger.Error("signin failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Internal server error", Success: false})
		return
	}

	token, err := h.jwtServ.Issue(user)
	if err != nil {
		h.logger.Error("token issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Internal server error", Success: false})
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Sign in successful",
		Success: true,
		Data:    authPayload{User: user, Token: token},
	})
}

// Logout maneja POST /auth/logout. Los tokens son stateless: no hay nada que
// revocar del lado del servidor, el cliente descarta su copia.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Message: "Logout successful", Success: true})
}

// Me maneja GET /auth/me. Relee la cuenta por el id del token verificado en
// vez de confiar en lo que el cliente tenga cacheado.
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, Response{Message: "Internal server error", Success: false})
		return
	}

	user, err := h.userServ.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, Response{Message: "User not found", Success: false})
			return
		}
		h.logger.Error("get current user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Internal server error", Success: false})
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "User information retrieved successfully",
		Success: true,
		Data:    user,
	})
}
