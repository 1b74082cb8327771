package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/checkin_ledger/internal/core/ports/services"
	"github.com/SscSPs/checkin_ledger/internal/dto"
	"github.com/SscSPs/checkin_ledger/internal/middleware"
)

type moodHandler struct {
	moodService portssvc.MoodSvc
}

func newMoodHandler(svc portssvc.MoodSvc) *moodHandler {
	return &moodHandler{moodService: svc}
}

func registerMoodRoutes(rg *gin.RouterGroup, svc portssvc.MoodSvc) {
	h := newMoodHandler(svc)
	moods := rg.Group("/moods")
	{
		moods.POST("", h.logMood)
		moods.GET("/today", h.getTodaysMood)
	}
	users := rg.Group("/users/:userID")
	{
		users.GET("/moods", h.getMoodHistory)
		users.GET("/moods/stats", h.getMoodStats)
	}
}

// logMood godoc
// @Summary Log today's mood
// @Description Creates or replaces the caller's mood for today. Emoji and score are filled from the catalog when the label matches.
// @Tags moods
// @Accept json
// @Produce json
// @Param mood body dto.LogMoodRequest true "Mood details"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /moods [post]
// @Security BearerAuth
func (h *moodHandler) logMood(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.LogMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.moodService.LogMood(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to log mood")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// getTodaysMood godoc
// @Summary Get today's mood
// @Tags moods
// @Produce json
// @Success 200 {object} dto.EntryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /moods/today [get]
// @Security BearerAuth
func (h *moodHandler) getTodaysMood(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entry, err := h.moodService.GetTodaysMood(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to get today's mood")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// getMoodHistory godoc
// @Summary Mood history of a user
// @Description Moods of userID visible to the caller, newest first.
// @Tags moods
// @Produce json
// @Param userID path string true "Owner user ID"
// @Param limit query int false "Maximum items" minimum(1) maximum(500)
// @Success 200 {array} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userID}/moods [get]
// @Security BearerAuth
func (h *moodHandler) getMoodHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var params dto.LimitParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	moods, err := h.moodService.MoodHistory(c.Request.Context(), userID, c.Param("userID"), params.Limit)
	if err != nil {
		respondError(c, logger, err, "Failed to get mood history")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponses(moods))
}

// getMoodStats godoc
// @Summary Mood statistics of a user
// @Description Average score, distribution and streak over the caller-visible moods of userID.
// @Tags moods
// @Produce json
// @Param userID path string true "Owner user ID"
// @Param days query int false "Lookback in days" minimum(1)
// @Success 200 {object} domain.MoodStats
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userID}/moods/stats [get]
// @Security BearerAuth
func (h *moodHandler) getMoodStats(c *gin.Context) {
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

	stats, err := h.moodService.MoodStats(c.Request.Context(), userID, c.Param("userID"), params.Days)
	if err != nil {
		respondError(c, logger, err, "Failed to compute mood stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
