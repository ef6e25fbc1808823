package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edutrack-api/internal/dto"
	"github.com/noah-isme/edutrack-api/internal/models"
	"github.com/noah-isme/edutrack-api/pkg/response"
)

type studentService interface {
	Directory(ctx context.Context, query dto.StudentDirectoryQuery) (*dto.StudentDirectoryResponse, *models.Pagination, error)
	Detail(ctx context.Context, studentID string, canGrade bool) (*dto.StudentDetailResponse, error)
}

// StudentHandler exposes student endpoints.
type StudentHandler struct {
	students studentService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students studentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// List godoc
// @Summary Student directory
// @Tags Students
// @Produce json
// @Param search query string false "Search by name or email"
// @Param grade query string false "Grade group, or All Grades"
// @Param page query int false "Page"
// @Param pageSize query int false "Page size, 0 for everything"
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	var query dto.StudentDirectoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, invalidQuery(err))
		return
	}
	query.Search = strings.TrimSpace(query.Search)

	students, pagination, err := h.students.Directory(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students, pagination)
}

// Get godoc
// @Summary Student detail
// @Description Teachers see the grading controls; a student may only open their own page.
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	canGrade := false
	if user := userFromContext(c); user != nil {
		canGrade = user.Role == models.RoleTeacher
	}
	detail, err := h.students.Detail(c.Request.Context(), c.Param("id"), canGrade)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}
