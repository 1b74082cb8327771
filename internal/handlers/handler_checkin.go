package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/checkin_ledger/internal/core/ports/services"
	"github.com/SscSPs/checkin_ledger/internal/dto"
	"github.com/SscSPs/checkin_ledger/internal/middleware"
)

type checkInHandler struct {
	checkInService portssvc.CheckInSvc
}

func newCheckInHandler(svc portssvc.CheckInSvc) *checkInHandler {
	return &checkInHandler{checkInService: svc}
}

func registerCheckInRoutes(rg *gin.RouterGroup, svc portssvc.CheckInSvc) {
	h := newCheckInHandler(svc)
	checkins := rg.Group("/checkins")
	{
		checkins.POST("", h.logCheckIn)
		checkins.GET("", h.listCheckIns)
		checkins.GET("/latest", h.getLatestCheckIn)
		checkins.GET("/feed", h.getFeed)
	}
	rg.GET("/users/:userID/checkins/latest", h.getLatestCheckIn)
}

// logCheckIn godoc
// @Summary Post a check-in
// @Description Records a status update with a 1-10 mood rating. Several check-ins per day are allowed.
// @Tags checkins
// @Accept json
// @Produce json
// @Param checkin body dto.LogCheckInRequest true "Check-in details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /checkins [post]
// @Security BearerAuth
func (h *checkInHandler) logCheckIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.LogCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.checkInService.LogCheckIn(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to log check-in")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// getLatestCheckIn godoc
// @Summary Get the latest check-in
// @Description Returns the newest check-in of the caller, or of userID when given, that the caller may see.
// @Tags checkins
// @Produce json
// @Param userID path string false "Target user ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /checkins/latest [get]
// @Router /users/{userID}/checkins/latest [get]
// @Security BearerAuth
func (h *checkInHandler) getLatestCheckIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entry, err := h.checkInService.GetLatestCheckIn(c.Request.Context(), userID, c.Param("userID"))
	if err != nil {
		respondError(c, logger, err, "Failed to get latest check-in")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// listCheckIns godoc
// @Summary List check-in history
// @Description Pages through the caller's check-ins, newest first.
// @Tags checkins
// @Produce json
// @Param limit query int false "Page size" minimum(1) maximum(100)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListCheckInsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /checkins [get]
// @Security BearerAuth
func (h *checkInHandler) listCheckIns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var params dto.ListCheckInsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.checkInService.ListCheckInHistory(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list check-ins")
		return
	}
	c.JSON(http.StatusOK, page)
}

// getFeed godoc
// @Summary Contact check-in feed
// @Description Recent check-ins of the caller's contacts that the caller may see.
// @Tags checkins
// @Produce json
// @Param limit query int false "Maximum items" minimum(1) maximum(500)
// @Success 200 {array} dto.FeedItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /checkins/feed [get]
// @Security BearerAuth
func (h *checkInHandler) getFeed(c *gin.Context) {
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

	items, err := h.checkInService.ContactFeed(c.Request.Context(), userID, params.Limit)
	if err != nil {
		respondError(c, logger, err, "Failed to build check-in feed")
		return
	}
	c.JSON(http.StatusOK, dto.ToFeedResponses(items))
}
