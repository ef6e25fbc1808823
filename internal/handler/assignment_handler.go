package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edutrack-api/internal/dto"
	"github.com/noah-isme/edutrack-api/internal/models"
	"github.com/noah-isme/edutrack-api/pkg/response"
)

type assignmentService interface {
	List(ctx context.Context, studentID string, query dto.AssignmentListQuery) (*dto.AssignmentListResponse, error)
	Update(ctx context.Context, studentID, assignmentID string, req dto.UpdateAssignmentRequest) (*models.Student, error)
	Submit(ctx context.Context, studentID, assignmentID string) (*models.Student, error)
	Grade(ctx context.Context, studentID, assignmentID string, req dto.GradeAssignmentRequest) (*models.Student, error)
}

// AssignmentHandler exposes a student's assignments.
type AssignmentHandler struct {
	assignments assignmentService
}

// NewAssignmentHandler constructs AssignmentHandler.
func NewAssignmentHandler(assignments assignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

// List godoc
// @Summary List a student's assignments
// @Tags Assignments
// @Produce json
// @Param id path string true "Student ID"
// @Param status query string false "all, pending, submitted or graded"
// @Param search query string false "Title or subject"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/assignments [get]
func (h *AssignmentHandler) List(c *gin.Context) {
	var query dto.AssignmentListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, invalidQuery(err))
		return
	}
	list, err := h.assignments.List(c.Request.Context(), c.Param("id"), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, list, nil)
}

// Update godoc
// @Summary Patch an assignment
// @Tags Assignments
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param assignmentId path string true "Assignment ID"
// @Param payload body dto.UpdateAssignmentRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id}/assignments/{assignmentId} [patch]
func (h *AssignmentHandler) Update(c *gin.Context) {
	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	student, err := h.assignments.Update(c.Request.Context(), c.Param("id"), c.Param("assignmentId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// Submit godoc
// @Summary Submit an assignment
// @Tags Assignments
// @Produce json
// @Param id path string true "Student ID"
// @Param assignmentId path string true "Assignment ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/assignments/{assignmentId}/submit [post]
func (h *AssignmentHandler) Submit(c *gin.Context) {
	student, err := h.assignments.Submit(c.Request.Context(), c.Param("id"), c.Param("assignmentId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// Grade godoc
// @Summary Grade an assignment
// @Tags Assignments
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param assignmentId path string true "Assignment ID"
// @Param payload body dto.GradeAssignmentRequest true "Grade"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/assignments/{assignmentId}/grade [post]
func (h *AssignmentHandler) Grade(c *gin.Context) {
	var req dto.GradeAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	student, err := h.assignments.Grade(c.Request.Context(), c.Param("id"), c.Param("assignmentId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}
