package api

import (
	"errors"
	"net/http"

	reqdto "folio-api/internal/handler/dto/request"
	resdto "folio-api/internal/handler/dto/response"
	"folio-api/internal/handler/middleware"
	"folio-api/internal/pkg/config"
	"folio-api/internal/pkg/cookie"
	"folio-api/internal/pkg/errs"
	"folio-api/internal/pkg/jwt"
	"folio-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	jwtService  *jwt.Service
	cfg         config.Config
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		jwtService:  jwtService,
		cfg:         cfg,
	}
}

// @Summary Admin login
// @Description Login with the admin username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, err := h.authUseCase.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid username or password",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	cookie.SetTokenCookie(c, h.cfg.Cookie, token, h.jwtService.TokenDuration())
	c.JSON(http.StatusOK, resdto.LoginResponse{
		Username: req.Username,
		Role:     usecase.RoleAdmin,
	})
}

// @Summary Admin logout
// @Description Clear the auth cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Current principal
// @Description Return the authenticated admin identity
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.MeResponse{
		Username: username,
		Role:     usecase.RoleAdmin,
	})
}
