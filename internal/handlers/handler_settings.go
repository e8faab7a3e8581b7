package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pledgerhq/pledger_backend/internal/core/domain"
	portssvc "github.com/pledgerhq/pledger_backend/internal/core/ports/services"
	"github.com/pledgerhq/pledger_backend/internal/dto"
	"github.com/pledgerhq/pledger_backend/internal/middleware"
	"github.com/pledgerhq/pledger_backend/internal/platform/dedup"
)

// settingsHandler handles HTTP requests related to owner settings.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
	dedup           *dedup.Registry
}

func newSettingsHandler(ss portssvc.SettingsSvcFacade, registry *dedup.Registry) *settingsHandler {
	return &settingsHandler{settingsService: ss, dedup: registry}
}

// registerSettingsRoutes registers routes related to settings.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade, registry *dedup.Registry) {
	h := newSettingsHandler(settingsService, registry)

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("", h.updateSetting)
	}
}

// getSettings godoc
// @Summary Get settings
// @Description Returns the owner's resolved settings, seeding defaults on first read
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	key := dedup.Key("settings.get", ownerID)
	v, err := h.dedup.Do(key, func() (interface{}, error) {
		return h.settingsService.GetSettings(c.Request.Context(), ownerID)
	})
	if err != nil {
		respondError(c, err, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, dto.SettingsResponse{Settings: v.(domain.Settings)})
}

// updateSetting godoc
// @Summary Update a setting
// @Description Writes one known configuration key
// @Tags settings
// @Accept json
// @Produce json
// @Param setting body dto.UpdateSettingRequest true "Key and value"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings [put]
func (h *settingsHandler) updateSetting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateSetting", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	if err := h.settingsService.UpdateSetting(c.Request.Context(), ownerID, req.Key, req.Value); err != nil {
		respondError(c, err, "Failed to update setting")
		return
	}
	settings, err := h.settingsService.GetSettings(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, dto.SettingsResponse{Settings: settings})
}
