package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edutrack-api/internal/dto"
	"github.com/noah-isme/edutrack-api/internal/models"
	"github.com/noah-isme/edutrack-api/pkg/response"
)

type scheduleService interface {
	Week(ctx context.Context, role models.Role) dto.WeekSchedule
	Month(ctx context.Context, query dto.ScheduleMonthQuery) (*dto.MonthCalendar, error)
	Lookup(ctx context.Context, query dto.ScheduleLookupQuery) (*models.ScheduleEntry, error)
	Today(ctx context.Context) []models.ScheduleEntry
}

// ScheduleHandler exposes the class timetable.
type ScheduleHandler struct {
	schedule scheduleService
}

// NewScheduleHandler constructs ScheduleHandler.
func NewScheduleHandler(schedule scheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule}
}

// Week godoc
// @Summary Weekly timetable grid
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule/week [get]
func (h *ScheduleHandler) Week(c *gin.Context) {
	role := models.RoleTeacher
	if user := userFromContext(c); user != nil {
		role = user.Role
	}
	response.JSON(c, http.StatusOK, h.schedule.Week(c.Request.Context(), role), nil)
}

// Month godoc
// @Summary Month calendar
// @Tags Schedule
// @Produce json
// @Param year query int false "Year, defaults to now"
// @Param month query int false "Month 1-12, defaults to now"
// @Success 200 {object} response.Envelope
// @Router /schedule/month [get]
func (h *ScheduleHandler) Month(c *gin.Context) {
	var query dto.ScheduleMonthQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, invalidQuery(err))
		return
	}
	calendar, err := h.schedule.Month(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, calendar, nil)
}

// Lookup godoc
// @Summary Class in one day/slot cell
// @Tags Schedule
// @Produce json
// @Param day query string true "Mon-Fri"
// @Param slot query string true "HH:MM"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /schedule/lookup [get]
func (h *ScheduleHandler) Lookup(c *gin.Context) {
	var query dto.ScheduleLookupQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, invalidQuery(err))
		return
	}
	entry, err := h.schedule.Lookup(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entry, nil)
}

// Today godoc
// @Summary Classes on the current weekday
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule/today [get]
func (h *ScheduleHandler) Today(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.schedule.Today(c.Request.Context()), nil)
}
