package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edutrack-api/internal/dto"
	"github.com/noah-isme/edutrack-api/internal/middleware"
	"github.com/noah-isme/edutrack-api/internal/models"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
	"github.com/noah-isme/edutrack-api/pkg/response"
)

type dashboardService interface {
	Teacher(ctx context.Context) dto.TeacherDashboardResponse
	Student(ctx context.Context, studentID string) (*dto.StudentDashboardResponse, error)
}

// DashboardHandler wires dashboard service to HTTP endpoints.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Get godoc
// @Summary Dashboard for the signed-in role
// @Description Teachers get class totals and the attendance trend; students get their own progress.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	user := userFromContext(c)
	if user == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var data interface{}
	if user.Role == models.RoleTeacher {
		data = h.service.Teacher(c.Request.Context())
	} else {
		summary, err := h.service.Student(c.Request.Context(), user.ID)
		if err != nil {
			response.Error(c, err)
			return
		}
		data = summary
	}
	middleware.SetMeta(c, "role", string(user.Role))
	response.JSON(c, http.StatusOK, data, nil, middleware.ExtractMeta(c))
}
