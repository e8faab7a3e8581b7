package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/pledgerhq/pledger_backend/internal/dto"
	"github.com/pledgerhq/pledger_backend/internal/middleware"
	"github.com/pledgerhq/pledger_backend/internal/platform/config"
	"github.com/pledgerhq/pledger_backend/internal/platform/dedup"
	"github.com/pledgerhq/pledger_backend/internal/utils"
)

// AuthHandler handles authentication for the single-owner deployment.
type AuthHandler struct {
	cfg   *config.Config
	dedup *dedup.Registry
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config, registry *dedup.Registry) *AuthHandler {
	return &AuthHandler{cfg: cfg, dedup: registry}
}

// registerAuthRoutes sets up the public authentication routes with a tight
// per-IP rate limit on login.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, registry *dedup.Registry) {
	h := NewAuthHandler(cfg, registry)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
	}
}

// registerLogoutRoute mounts logout inside the authenticated group.
func registerLogoutRoute(rg *gin.RouterGroup, cfg *config.Config, registry *dedup.Registry) {
	h := NewAuthHandler(cfg, registry)
	rg.POST("/auth/logout", h.Logout)
}

// Login godoc
// @Summary Owner login
// @Description Verifies the owner's password and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if !utils.VerifyOwnerPassword(req.Password, h.cfg.OwnerPasswordHash) {
		logger.Warn("Login failed: invalid password")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid password"})
		return
	}

	token, err := utils.GenerateJWT(h.cfg.OwnerID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to generate token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("Owner logged in")
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(h.cfg.JWTExpiryDuration.Seconds()),
	})
}

// Logout godoc
// @Summary Owner logout
// @Description Clears server-side per-session state. Tokens are stateless and
// simply expire; logout resets the request dedup registry.
// @Tags auth
// @Produce json
// @Success 204 "No content"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := mustOwnerID(c); !ok {
		return
	}
	h.dedup.Reset()
	logger.Info("Owner logged out, dedup registry reset")
	c.Status(http.StatusNoContent)
}
