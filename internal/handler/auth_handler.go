package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
	"github.com/Hanikakadiya/Master-Quiz/internal/handler/dto"
	"github.com/Hanikakadiya/Master-Quiz/internal/middleware"
	"github.com/Hanikakadiya/Master-Quiz/internal/service"
)

// AuthHandler обрабатывает регистрацию, вход и выход
type AuthHandler struct {
	authService  *service.AuthService
	tokenTTL     time.Duration
	cookieSecure bool
}

// NewAuthHandler создает новый обработчик аутентификации
func NewAuthHandler(authService *service.AuthService, tokenTTL time.Duration, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenTTL:     tokenTTL,
		cookieSecure: cookieSecure,
	}
}

// RegisterRequest представляет запрос на регистрацию
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest представляет запрос на вход
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, token, maxAge, "/", "", h.cookieSecure, true)
}

// Register создает пользователя с ролью user и сразу выдаёт токен
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password, entity.RoleUser)
	if err != nil {
		handleError(c, "AuthHandler", err)
		return
	}

	h.setTokenCookie(c, res.AccessToken, int(h.tokenTTL.Seconds()))
	c.JSON(http.StatusCreated, dto.NewAuthResponse(res, h.tokenTTL))
}

// Login проверяет учётные данные и выдаёт токен (в теле и в HttpOnly cookie)
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, "AuthHandler", err)
		return
	}

	h.setTokenCookie(c, res.AccessToken, int(h.tokenTTL.Seconds()))
	c.JSON(http.StatusOK, dto.NewAuthResponse(res, h.tokenTTL))
}

// Logout удаляет cookie с токеном
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me возвращает текущего пользователя
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		handleError(c, "AuthHandler", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
