package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edutrack-api/internal/dto"
	"github.com/noah-isme/edutrack-api/internal/middleware"
	"github.com/noah-isme/edutrack-api/internal/models"
	"github.com/noah-isme/edutrack-api/pkg/response"
)

type plannerService interface {
	Request(ctx context.Context, req models.SuggestionRequest) (*dto.SuggestionResult, error)
	Result(ctx context.Context, token string) (*dto.SuggestionResult, error)
	Latest(ctx context.Context) (*dto.SuggestionResult, error)
	Dismiss(ctx context.Context, token string) (*dto.SuggestionResult, error)
	Accept(ctx context.Context, token string, req dto.AcceptSuggestionRequest) (*models.Activity, error)
	AddActivity(ctx context.Context, req dto.AddActivityRequest) (*models.Activity, error)
	Activities(ctx context.Context) []models.Activity
	ClearCache(ctx context.Context) error
}

// PlannerHandler exposes the curriculum plan and generated suggestions.
type PlannerHandler struct {
	planner plannerService
}

// NewPlannerHandler constructs PlannerHandler.
func NewPlannerHandler(planner plannerService) *PlannerHandler {
	return &PlannerHandler{planner: planner}
}

// Activities godoc
// @Summary Curriculum plan, newest first
// @Tags Planner
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /planner/activities [get]
func (h *PlannerHandler) Activities(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.planner.Activities(c.Request.Context()), nil)
}

// AddActivity godoc
// @Summary Add an activity by hand
// @Tags Planner
// @Accept json
// @Produce json
// @Param payload body dto.AddActivityRequest true "Activity"
// @Success 201 {object} response.Envelope
// @Router /planner/activities [post]
func (h *PlannerHandler) AddActivity(c *gin.Context) {
	var req dto.AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	activity, err := h.planner.AddActivity(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, activity)
}

// Request godoc
// @Summary Ask for activity ideas
// @Description Returns a token to poll. An identical pending request is rejected with 409.
// @Tags Planner
// @Accept json
// @Produce json
// @Param payload body models.SuggestionRequest true "Grade, subject and topic"
// @Success 202 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /planner/suggestions [post]
func (h *PlannerHandler) Request(c *gin.Context) {
	var req models.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	result, err := h.planner.Request(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, result.Cached)
	if result.State == dto.SuggestionPending {
		response.Accepted(c, result, middleware.ExtractMeta(c))
		return
	}
	response.JSON(c, http.StatusOK, result, nil, middleware.ExtractMeta(c))
}

// Latest godoc
// @Summary Newest suggestion request
// @Tags Planner
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /planner/suggestions/latest [get]
func (h *PlannerHandler) Latest(c *gin.Context) {
	result, err := h.planner.Latest(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Result godoc
// @Summary Poll a suggestion request
// @Tags Planner
// @Produce json
// @Param token path string true "Request token"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /planner/suggestions/{token} [get]
func (h *PlannerHandler) Result(c *gin.Context) {
	result, err := h.planner.Result(c.Request.Context(), c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Dismiss godoc
// @Summary Clear the request notice
// @Tags Planner
// @Produce json
// @Param token path string true "Request token"
// @Success 200 {object} response.Envelope
// @Router /planner/suggestions/{token}/notice [delete]
func (h *PlannerHandler) Dismiss(c *gin.Context) {
	result, err := h.planner.Dismiss(c.Request.Context(), c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// ClearCache godoc
// @Summary Forget cached suggestions
// @Tags Planner
// @Success 204
// @Router /planner/cache [delete]
func (h *PlannerHandler) ClearCache(c *gin.Context) {
	if err := h.planner.ClearCache(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Accept godoc
// @Summary Add one suggestion to the plan
// @Tags Planner
// @Accept json
// @Produce json
// @Param token path string true "Request token"
// @Param payload body dto.AcceptSuggestionRequest true "Suggestion index"
// @Success 201 {object} response.Envelope
// @Router /planner/suggestions/{token}/accept [post]
func (h *PlannerHandler) Accept(c *gin.Context) {
	var req dto.AcceptSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	activity, err := h.planner.Accept(c.Request.Context(), c.Param("token"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, activity)
}
