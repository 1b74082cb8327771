package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/checkin_ledger/internal/core/ports/services"
	"github.com/SscSPs/checkin_ledger/internal/dto"
	"github.com/SscSPs/checkin_ledger/internal/middleware"
)

// pinHeader carries the PIN of a protected entry on update and delete.
const pinHeader = "X-Entry-Pin"

type journalHandler struct {
	journalService portssvc.JournalSvc
}

func newJournalHandler(svc portssvc.JournalSvc) *journalHandler {
	return &journalHandler{journalService: svc}
}

func registerJournalRoutes(rg *gin.RouterGroup, svc portssvc.JournalSvc) {
	h := newJournalHandler(svc)
	journal := rg.Group("/journal")
	{
		journal.POST("", h.createJournalEntry)
		journal.GET("", h.listJournalEntries)
		journal.GET("/tags", h.listTags)
		journal.GET("/stats", h.getJournalStats)
		journal.GET("/export", h.exportJournal)
		journal.PUT("/:entryID", h.updateJournalEntry)
	}
}

// createJournalEntry godoc
// @Summary Write today's journal entry
// @Description Creates today's entry, or replaces it when one exists. A protected entry needs its PIN in the body.
// @Tags journal
// @Accept json
// @Produce json
// @Param entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /journal [post]
// @Security BearerAuth
func (h *journalHandler) createJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.journalService.CreateJournalEntry(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to save journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// updateJournalEntry godoc
// @Summary Update a journal entry
// @Description Applies a partial update. Protected entries need the PIN in the X-Entry-Pin header.
// @Tags journal
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param X-Entry-Pin header string false "PIN of a protected entry"
// @Param entry body dto.UpdateJournalEntryRequest true "Fields to change"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /journal/{entryID} [put]
// @Security BearerAuth
func (h *journalHandler) updateJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.journalService.UpdateJournalEntry(c.Request.Context(), userID, c.Param("entryID"), req, c.GetHeader(pinHeader))
	if err != nil {
		respondError(c, logger, err, "Failed to update journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// listJournalEntries godoc
// @Summary List journal entries
// @Description Filters the caller's journal. Results are newest first and capped at 50 unless limit is set.
// @Tags journal
// @Produce json
// @Param search query string false "Case-insensitive text match on title and content"
// @Param tags query []string false "Any of these tags" collectionFormat(multi)
// @Param dateFrom query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param privacy query string false "Visibility filter"
// @Param limit query int false "Maximum items"
// @Success 200 {array} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /journal [get]
// @Security BearerAuth
func (h *journalHandler) listJournalEntries(c *gin.Context) {
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

	views, err := h.journalService.ListJournalEntries(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponses(views))
}

// listTags godoc
// @Summary List journal tags
// @Tags journal
// @Produce json
// @Success 200 {array} string
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /journal/tags [get]
// @Security BearerAuth
func (h *journalHandler) listTags(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tags, err := h.journalService.UserTags(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list tags")
		return
	}
	c.JSON(http.StatusOK, tags)
}

// getJournalStats godoc
// @Summary Journal statistics
// @Tags journal
// @Produce json
// @Success 200 {object} domain.JournalStats
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /journal/stats [get]
// @Security BearerAuth
func (h *journalHandler) getJournalStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := h.journalService.JournalStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to compute journal stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// exportJournal godoc
// @Summary Export the journal
// @Description Returns the whole journal as plain text or JSON, served as a download.
// @Tags journal
// @Produce plain
// @Produce json
// @Param format query string false "text or json" Enums(text, json)
// @Success 200 {string} string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /journal/export [get]
// @Security BearerAuth
func (h *journalHandler) exportJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var params dto.ExportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	if params.Format == "" {
		params.Format = "text"
	}

	data, err := h.journalService.ExportJournal(c.Request.Context(), userID, params.Format)
	if err != nil {
		respondError(c, logger, err, "Failed to export journal")
		return
	}

	contentType, ext := "text/plain; charset=utf-8", "txt"
	if params.Format == "json" {
		contentType, ext = "application/json; charset=utf-8", "json"
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="journal.%s"`, ext))
	c.Data(http.StatusOK, contentType, []byte(data))
}
