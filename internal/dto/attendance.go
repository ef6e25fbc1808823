package dto

import "github.com/noah-isme/edutrack-api/internal/models"

// RecordAttendanceRequest saves a roll call directly.
type RecordAttendanceRequest struct {
	Date              string   `json:"date"`
	PresentStudentIDs []string `json:"presentStudentIds" validate:"dive,required"`
}

// StartLiveSessionRequest opens a countdown; zero seconds uses the default.
type StartLiveSessionRequest struct {
	DurationSeconds int `json:"durationSeconds" validate:"gte=0,lte=7200"`
}

// ToggleCheckInRequest flips one student's presence.
type ToggleCheckInRequest struct {
	StudentID string `json:"studentId" validate:"required"`
}

// LiveSessionStatus is the attendance sheet state.
type LiveSessionStatus struct {
	Active            bool             `json:"active"`
	SessionID         string           `json:"sessionId,omitempty"`
	RemainingSeconds  int              `json:"remainingSeconds"`
	Remaining         string           `json:"remaining"`
	PresentStudentIDs []string         `json:"presentStudentIds"`
	PresentCount      int              `json:"presentCount"`
	TotalStudents     int              `json:"totalStudents"`
	PresentRate       int              `json:"presentRate"`
	CheckIns          []models.CheckIn `json:"checkIns"`
}

// AttendanceSheetQuery filters the sheet roster.
type AttendanceSheetQuery struct {
	Search string `form:"search" validate:"max=128"`
	Filter string `form:"filter" validate:"omitempty,oneof=all present absent"`
}

// AttendanceSheetResponse is the roster with the live selection applied.
type AttendanceSheetResponse struct {
	Session  LiveSessionStatus `json:"session"`
	Students []StudentSummary  `json:"students"`
}
