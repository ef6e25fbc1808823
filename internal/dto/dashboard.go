package dto

import "github.com/noah-isme/edutrack-api/internal/models"

// TeacherDashboardResponse is the teacher landing page.
type TeacherDashboardResponse struct {
	EnrolledStudents    int                    `json:"enrolledStudents"`
	AttendanceRate      int                    `json:"attendanceRate"`
	PlannedActivities   int                    `json:"plannedActivities"`
	CompletedActivities int                    `json:"completedActivities"`
	RecentActivities    []models.Activity      `json:"recentActivities"`
	AttendanceTrend     []AttendancePoint      `json:"attendanceTrend"`
	TodaySchedule       []models.ScheduleEntry `json:"todaySchedule"`
}

// AttendancePoint is the class rate of one recorded session.
type AttendancePoint struct {
	Date string `json:"date"`
	Rate int    `json:"rate"`
}

// StudentDashboardResponse is the student landing page.
type StudentDashboardResponse struct {
	StudentID           string                 `json:"studentId"`
	Name                string                 `json:"name"`
	AttendanceRate      int                    `json:"attendanceRate"`
	PendingCount        int                    `json:"pendingCount"`
	UpcomingAssignments []models.Assignment    `json:"upcomingAssignments"`
	Stats               models.AssignmentStats `json:"stats"`
}
