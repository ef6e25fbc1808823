package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edutrack-api/internal/dto"
	"github.com/noah-isme/edutrack-api/internal/models"
	"github.com/noah-isme/edutrack-api/pkg/response"
)

type attendanceService interface {
	Record(ctx context.Context, req dto.RecordAttendanceRequest) (*models.AttendanceRecord, error)
	History(ctx context.Context, limit int) []models.AttendanceRecord
}

type liveSessionService interface {
	Start(ctx context.Context, req dto.StartLiveSessionRequest) (dto.LiveSessionStatus, error)
	Toggle(ctx context.Context, req dto.ToggleCheckInRequest) (dto.LiveSessionStatus, error)
	SelectAll(ctx context.Context) dto.LiveSessionStatus
	Save(ctx context.Context) (*models.AttendanceRecord, error)
	Cancel(ctx context.Context) dto.LiveSessionStatus
	Status(ctx context.Context) dto.LiveSessionStatus
	Sheet(ctx context.Context, query dto.AttendanceSheetQuery) (*dto.AttendanceSheetResponse, error)
}

// AttendanceHandler exposes roll calls and the live attendance sheet.
type AttendanceHandler struct {
	attendance attendanceService
	live       liveSessionService
}

// NewAttendanceHandler constructs AttendanceHandler.
func NewAttendanceHandler(attendance attendanceService, live liveSessionService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance, live: live}
}

// History godoc
// @Summary Recorded roll calls, oldest first
// @Tags Attendance
// @Produce json
// @Param limit query int false "Most recent N records, 0 for all"
// @Success 200 {object} response.Envelope
// @Router /attendance [get]
func (h *AttendanceHandler) History(c *gin.Context) {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, h.attendance.History(c.Request.Context(), limit), nil)
}

// Record godoc
// @Summary Record a roll call directly
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body dto.RecordAttendanceRequest true "Roll call"
// @Success 201 {object} response.Envelope
// @Router /attendance [post]
func (h *AttendanceHandler) Record(c *gin.Context) {
	var req dto.RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	record, err := h.attendance.Record(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}

// Sheet godoc
// @Summary Attendance sheet roster with the current selection
// @Tags Attendance
// @Produce json
// @Param search query string false "Name filter"
// @Param filter query string false "all, present or absent"
// @Success 200 {object} response.Envelope
// @Router /attendance/sheet [get]
func (h *AttendanceHandler) Sheet(c *gin.Context) {
	var query dto.AttendanceSheetQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, invalidQuery(err))
		return
	}
	sheet, err := h.live.Sheet(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sheet, nil)
}

// Status godoc
// @Summary Live session countdown and selection
// @Tags Attendance
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /attendance/live [get]
func (h *AttendanceHandler) Status(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.live.Status(c.Request.Context()), nil)
}

// Start godoc
// @Summary Start a live session, replacing any running one
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body dto.StartLiveSessionRequest false "Optional duration"
// @Success 201 {object} response.Envelope
// @Router /attendance/live [post]
func (h *AttendanceHandler) Start(c *gin.Context) {
	var req dto.StartLiveSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, invalidPayload(err))
			return
		}
	}
	status, err := h.live.Start(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, status)
}

// Cancel godoc
// @Summary Stop the live session without recording
// @Tags Attendance
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /attendance/live [delete]
func (h *AttendanceHandler) Cancel(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.live.Cancel(c.Request.Context()), nil)
}

// Toggle godoc
// @Summary Toggle one student's presence
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body dto.ToggleCheckInRequest true "Student"
// @Success 200 {object} response.Envelope
// @Router /attendance/live/toggle [post]
func (h *AttendanceHandler) Toggle(c *gin.Context) {
	var req dto.ToggleCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	status, err := h.live.Toggle(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, status, nil)
}

// SelectAll godoc
// @Summary Mark everyone present, or nobody when everyone already is
// @Tags Attendance
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /attendance/live/select-all [post]
func (h *AttendanceHandler) SelectAll(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.live.SelectAll(c.Request.Context()), nil)
}

// Save godoc
// @Summary Save the selection as a roll call
// @Tags Attendance
// @Produce json
// @Success 201 {object} response.Envelope
// @Router /attendance/live/save [post]
func (h *AttendanceHandler) Save(c *gin.Context) {
	record, err := h.live.Save(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}
