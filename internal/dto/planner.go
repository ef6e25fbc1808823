package dto

import "github.com/noah-isme/edutrack-api/internal/models"

// SuggestionState is the lifecycle of one planner request.
type SuggestionState string

const (
	SuggestionPending SuggestionState = "pending"
	SuggestionReady   SuggestionState = "ready"
	SuggestionFailed  SuggestionState = "failed"
)

// SuggestionResult is what the planner screen polls.
type SuggestionResult struct {
	Token       string                      `json:"token"`
	State       SuggestionState             `json:"state"`
	Request     models.SuggestionRequest    `json:"request"`
	Suggestions []models.ActivitySuggestion `json:"suggestions"`
	Notice      string                      `json:"notice,omitempty"`
	Cached      bool                        `json:"cached"`
}

// AcceptSuggestionRequest picks one suggestion by position.
type AcceptSuggestionRequest struct {
	Index *int `json:"index" validate:"required,gte=0"`
}

// AddActivityRequest creates an activity by hand.
type AddActivityRequest struct {
	Title              string   `json:"title" validate:"required,max=256"`
	Subject            string   `json:"subject" validate:"required,max=64"`
	Description        string   `json:"description" validate:"max=2048"`
	Duration           string   `json:"duration" validate:"max=32"`
	LearningObjectives []string `json:"learningObjectives" validate:"dive,max=256"`
	Materials          []string `json:"materials" validate:"dive,max=256"`
	Status             string   `json:"status" validate:"omitempty,oneof=planned completed"`
}
