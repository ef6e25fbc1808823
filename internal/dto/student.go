package dto

import "github.com/noah-isme/edutrack-api/internal/models"

// StudentDirectoryQuery filters the roster.
type StudentDirectoryQuery struct {
	Search   string `form:"search" validate:"max=128"`
	Grade    string `form:"grade" validate:"max=32"`
	Page     int    `form:"page" validate:"gte=0"`
	PageSize int    `form:"pageSize" validate:"gte=0,lte=200"`
}

// StudentSummary is one directory row.
type StudentSummary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Grade          string `json:"grade"`
	Avatar         string `json:"avatar"`
	AttendanceRate int    `json:"attendanceRate"`
	PendingCount   int    `json:"pendingCount"`
}

// StudentDirectoryResponse lists students and the grade filter options.
type StudentDirectoryResponse struct {
	Students    []StudentSummary `json:"students"`
	GradeGroups []string         `json:"gradeGroups"`
	Total       int              `json:"total"`
}

// StudentDetailResponse is the drill-down / my-progress page.
type StudentDetailResponse struct {
	Student         models.Student          `json:"student"`
	AttendanceRate  int                     `json:"attendanceRate"`
	Timeline        []models.AttendanceMark `json:"timeline"`
	AwaitingGrading int                     `json:"awaitingGrading"`
	Stats           models.AssignmentStats  `json:"stats"`
	CanGrade        bool                    `json:"canGrade"`
}
