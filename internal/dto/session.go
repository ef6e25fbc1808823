package dto

import "github.com/noah-isme/edutrack-api/internal/models"

// SignInRequest selects the demo identity. Email only matters for students.
type SignInRequest struct {
	Role  string `json:"role" validate:"required,oneof=teacher student"`
	Email string `json:"email" validate:"omitempty,max=256"`
}

// SelectViewRequest changes the navigation target.
type SelectViewRequest struct {
	View string `json:"view" validate:"required"`
}

// SelectStudentRequest opens (or with nil closes) the drill-down.
type SelectStudentRequest struct {
	StudentID *string `json:"studentId"`
}

// SessionResponse describes the session and which screen to render.
type SessionResponse struct {
	User              *models.User  `json:"user,omitempty"`
	View              models.View   `json:"view"`
	SelectedStudentID *string       `json:"selectedStudentId,omitempty"`
	Screen            models.Screen `json:"screen"`
	Views             []models.View `json:"views"`
}
