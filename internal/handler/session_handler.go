package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edutrack-api/internal/dto"
	"github.com/noah-isme/edutrack-api/pkg/response"
)

type sessionService interface {
	SignIn(ctx context.Context, req dto.SignInRequest) (dto.SessionResponse, error)
	SignOut(ctx context.Context) dto.SessionResponse
	SelectView(ctx context.Context, req dto.SelectViewRequest) (dto.SessionResponse, error)
	SelectStudent(ctx context.Context, req dto.SelectStudentRequest) (dto.SessionResponse, error)
	Current(ctx context.Context) dto.SessionResponse
}

// SessionHandler exposes sign-in and navigation endpoints.
type SessionHandler struct {
	sessions sessionService
}

// NewSessionHandler constructs SessionHandler.
func NewSessionHandler(sessions sessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Current godoc
// @Summary Current session and resolved screen
// @Tags Session
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /session [get]
func (h *SessionHandler) Current(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.sessions.Current(c.Request.Context()), nil)
}

// SignIn godoc
// @Summary Sign in as the teacher or a student
// @Tags Session
// @Accept json
// @Produce json
// @Param payload body dto.SignInRequest true "Sign-in payload"
// @Success 200 {object} response.Envelope
// @Router /session/sign-in [post]
func (h *SessionHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	session, err := h.sessions.SignIn(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session, nil)
}

// SignOut godoc
// @Summary Sign out
// @Tags Session
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /session/sign-out [post]
func (h *SessionHandler) SignOut(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.sessions.SignOut(c.Request.Context()), nil)
}

// SelectView godoc
// @Summary Navigate to a view
// @Tags Session
// @Accept json
// @Produce json
// @Param payload body dto.SelectViewRequest true "View"
// @Success 200 {object} response.Envelope
// @Router /session/view [put]
func (h *SessionHandler) SelectView(c *gin.Context) {
	var req dto.SelectViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	session, err := h.sessions.SelectView(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session, nil)
}

// SelectStudent godoc
// @Summary Open or close the student drill-down
// @Tags Session
// @Accept json
// @Produce json
// @Param payload body dto.SelectStudentRequest true "Student id, null to close"
// @Success 200 {object} response.Envelope
// @Router /session/student [put]
func (h *SessionHandler) SelectStudent(c *gin.Context) {
	var req dto.SelectStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	session, err := h.sessions.SelectStudent(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session, nil)
}
