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

// obligationHandler handles HTTP requests related to obligations.
type obligationHandler struct {
	obligationService portssvc.ObligationSvcFacade
	dedup             *dedup.Registry
}

func newObligationHandler(os portssvc.ObligationSvcFacade, registry *dedup.Registry) *obligationHandler {
	return &obligationHandler{obligationService: os, dedup: registry}
}

// registerObligationRoutes registers routes related to obligations.
func registerObligationRoutes(rg *gin.RouterGroup, obligationService portssvc.ObligationSvcFacade, registry *dedup.Registry) {
	h := newObligationHandler(obligationService, registry)

	obligations := rg.Group("/obligations")
	{
		obligations.GET("", h.listObligations)
		obligations.GET("/summary", h.summarizeObligations)
		obligations.GET("/:id", h.getObligation)
		obligations.POST("/:id/payments", h.recordPayment)
		obligations.POST("/:id/settle", h.markAsFullyPaid)
		obligations.PUT("/:id", h.updateObligation)
		obligations.DELETE("/:id", h.deleteObligation)
	}
}

// listObligations godoc
// @Summary List obligations
// @Description Lists the owner's obligations, filterable by type, status and entity
// @Tags obligations
// @Produce json
// @Param type query string false "Obligation type"
// @Param status query string false "Obligation status"
// @Param entity query string false "Entity name"
// @Success 200 {array} dto.ObligationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /obligations [get]
func (h *obligationHandler) listObligations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListObligationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listObligations", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	key := dedup.Key("obligations.list", ownerID, c.Request.URL.RawQuery)
	v, err := h.dedup.Do(key, func() (interface{}, error) {
		return h.obligationService.ListObligations(c.Request.Context(), ownerID, params)
	})
	if err != nil {
		respondError(c, err, "Failed to list obligations")
		return
	}
	c.JSON(http.StatusOK, dto.ToObligationResponses(v.([]domain.Obligation)))
}

// summarizeObligations godoc
// @Summary Summarize obligations
// @Description Groups matching obligations by type, entity and currency with summed amounts
// @Tags obligations
// @Produce json
// @Param type query string false "Obligation type"
// @Param status query string false "Obligation status"
// @Param entity query string false "Entity name"
// @Success 200 {object} dto.ObligationSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /obligations/summary [get]
func (h *obligationHandler) summarizeObligations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListObligationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for summarizeObligations", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	key := dedup.Key("obligations.summary", ownerID, c.Request.URL.RawQuery)
	v, err := h.dedup.Do(key, func() (interface{}, error) {
		return h.obligationService.Summarize(c.Request.Context(), ownerID, params)
	})
	if err != nil {
		respondError(c, err, "Failed to summarize obligations")
		return
	}
	c.JSON(http.StatusOK, v.(*dto.ObligationSummaryResponse))
}

// getObligation godoc
// @Summary Get an obligation by ID
// @Tags obligations
// @Produce json
// @Param id path string true "Obligation ID"
// @Success 200 {object} dto.ObligationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /obligations/{id} [get]
func (h *obligationHandler) getObligation(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}
	obligationID := c.Param("id")

	key := dedup.Key("obligations.get", ownerID, obligationID)
	v, err := h.dedup.Do(key, func() (interface{}, error) {
		return h.obligationService.GetObligationByID(c.Request.Context(), ownerID, obligationID)
	})
	if err != nil {
		respondError(c, err, "Failed to retrieve obligation")
		return
	}
	c.JSON(http.StatusOK, dto.ToObligationResponse(v.(*domain.Obligation)))
}

// recordPayment godoc
// @Summary Record a payment against an obligation
// @Description Creates a real payment transaction and amortizes the obligation
// @Tags obligations
// @Accept json
// @Produce json
// @Param id path string true "Obligation ID"
// @Param payment body dto.RecordPaymentRequest true "Payment details"
// @Success 200 {object} dto.ObligationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /obligations/{id}/payments [post]
func (h *obligationHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	obligation, err := h.obligationService.RecordPayment(c.Request.Context(), ownerID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToObligationResponse(obligation))
}

// markAsFullyPaid godoc
// @Summary Settle an obligation in full
// @Description Records one exact payment of the remaining amount
// @Tags obligations
// @Produce json
// @Param id path string true "Obligation ID"
// @Success 200 {object} dto.ObligationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /obligations/{id}/settle [post]
func (h *obligationHandler) markAsFullyPaid(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}
	obligation, err := h.obligationService.MarkAsFullyPaid(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to settle obligation")
		return
	}
	c.JSON(http.StatusOK, dto.ToObligationResponse(obligation))
}

// updateObligation godoc
// @Summary Update an obligation
// @Description Changes entity name, notes or status; amount fields move only through payments
// @Tags obligations
// @Accept json
// @Produce json
// @Param id path string true "Obligation ID"
// @Param obligation body dto.UpdateObligationRequest true "Fields to update"
// @Success 200 {object} dto.ObligationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /obligations/{id} [put]
func (h *obligationHandler) updateObligation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateObligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateObligation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	obligation, err := h.obligationService.UpdateObligation(c.Request.Context(), ownerID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update obligation")
		return
	}
	c.JSON(http.StatusOK, dto.ToObligationResponse(obligation))
}

// deleteObligation godoc
// @Summary Delete an obligation
// @Description Removes the record permanently; spawned transactions stay in the ledger
// @Tags obligations
// @Produce json
// @Param id path string true "Obligation ID"
// @Success 204 "No content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /obligations/{id} [delete]
func (h *obligationHandler) deleteObligation(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}
	if err := h.obligationService.DeleteObligation(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete obligation")
		return
	}
	c.Status(http.StatusNoContent)
}
