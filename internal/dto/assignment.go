package dto

import "github.com/noah-isme/edutrack-api/internal/models"

// AssignmentListQuery filters a student's assignments.
type AssignmentListQuery struct {
	Status string `form:"status" validate:"omitempty,oneof=all pending submitted graded"`
	Search string `form:"search" validate:"max=128"`
}

// AssignmentListResponse is the assignments view.
type AssignmentListResponse struct {
	StudentID   string                 `json:"studentId"`
	Assignments []models.Assignment    `json:"assignments"`
	Stats       models.AssignmentStats `json:"stats"`
}

// UpdateAssignmentRequest is a partial assignment update.
type UpdateAssignmentRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=256"`
	Subject     *string `json:"subject" validate:"omitempty,max=64"`
	Grade       *string `json:"grade" validate:"omitempty,max=16"`
	Date        *string `json:"date"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending submitted graded"`
	Description *string `json:"description" validate:"omitempty,max=2048"`
}

// GradeAssignmentRequest is the teacher grading form.
type GradeAssignmentRequest struct {
	Grade string `json:"grade" validate:"required,max=16"`
}
