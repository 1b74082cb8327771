package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/checkin_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/checkin_ledger/internal/core/ports/services"
	"github.com/SscSPs/checkin_ledger/internal/dto"
	"github.com/SscSPs/checkin_ledger/internal/middleware"
)

type entryHandler struct {
	entryService portssvc.EntrySvc
}

func newEntryHandler(svc portssvc.EntrySvc) *entryHandler {
	return &entryHandler{entryService: svc}
}

func registerEntryRoutes(rg *gin.RouterGroup, svc portssvc.EntrySvc) {
	h := newEntryHandler(svc)
	entries := rg.Group("/entries")
	{
		entries.GET("", h.listEntries)
		entries.GET("/:kind/:date", h.getEntryForDate)
		entries.DELETE("/:entryID", h.deleteEntry)
	}
	rg.GET("/stats", h.getStats)
}

// getEntryForDate godoc
// @Summary Get an entry by day
// @Description For check-ins the latest check-in of that day is returned.
// @Tags entries
// @Produce json
// @Param kind path string true "Entry kind" Enums(checkin, mood, journal)
// @Param date path string true "Day (YYYY-MM-DD)"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /entries/{kind}/{date} [get]
// @Security BearerAuth
func (h *entryHandler) getEntryForDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entry, err := h.entryService.GetEntryForDate(c.Request.Context(), userID, domain.EntryKind(c.Param("kind")), c.Param("date"))
	if err != nil {
		respondError(c, logger, err, "Failed to get entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List entries
// @Tags entries
// @Produce json
// @Param kind query string false "Entry kind" Enums(checkin, mood, journal)
// @Param sinceDays query int false "Only entries dated on or after today minus sinceDays"
// @Param search query string false "Case-insensitive text match"
// @Param tags query []string false "Any of these tags" collectionFormat(multi)
// @Param dateFrom query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param privacy query string false "Visibility filter"
// @Param limit query int false "Maximum items"
// @Success 200 {array} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /entries [get]
// @Security BearerAuth
func (h *entryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.entryService.ListEntries(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponses(entries))
}

// deleteEntry godoc
// @Summary Delete an entry
// @Description Protected entries need the PIN in the X-Entry-Pin header.
// @Tags entries
// @Param entryID path string true "Entry ID"
// @Param X-Entry-Pin header string false "PIN of a protected entry"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /entries/{entryID} [delete]
// @Security BearerAuth
func (h *entryHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.entryService.DeleteEntry(c.Request.Context(), userID, c.Param("entryID"), c.GetHeader(pinHeader)); err != nil {
		respondError(c, logger, err, "Failed to delete entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// getStats godoc
// @Summary Ledger statistics
// @Description Per-kind aggregates over the period plus activity streaks.
// @Tags entries
// @Produce json
// @Param periodDays query int false "Period in days" minimum(1)
// @Success 200 {object} domain.LedgerStats
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats [get]
// @Security BearerAuth
func (h *entryHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var params dto.PeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	stats, err := h.entryService.GetStats(c.Request.Context(), userID, params.PeriodDays)
	if err != nil {
		respondError(c, logger, err, "Failed to compute stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
