package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/edutrack-api/internal/dto"
	"github.com/noah-isme/edutrack-api/internal/models"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

type dashboardStore interface {
	Student(id string) (models.Student, bool)
	StudentCount() int
	Activities() []models.Activity
	Attendance() []models.AttendanceRecord
	LatestAttendance() (*models.AttendanceRecord, bool)
}

type todayScheduleProvider interface {
	Today(ctx context.Context) []models.ScheduleEntry
}

// DashboardServiceConfig tunes dashboard list lengths.
type DashboardServiceConfig struct {
	RecentActivities    int
	TrendLength         int
	UpcomingAssignments int
}

// DashboardService composes the teacher and student landing pages.
type DashboardService struct {
	store    dashboardStore
	schedule todayScheduleProvider
	logger   *zap.Logger
	cfg      DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(store dashboardStore, schedule todayScheduleProvider, cfg DashboardServiceConfig, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.RecentActivities <= 0 {
		cfg.RecentActivities = 4
	}
	if cfg.TrendLength <= 0 {
		cfg.TrendLength = 5
	}
	if cfg.UpcomingAssignments <= 0 {
		cfg.UpcomingAssignments = 3
	}
	return &DashboardService{store: store, schedule: schedule, logger: logger, cfg: cfg}
}

// Teacher builds the class overview.
func (s *DashboardService) Teacher(ctx context.Context) dto.TeacherDashboardResponse {
	total := s.store.StudentCount()
	activities := s.store.Activities()
	planned, completed := ActivityCounts(activities)

	latest, _ := s.store.LatestAttendance()
	recent := activities
	if len(recent) > s.cfg.RecentActivities {
		recent = recent[:s.cfg.RecentActivities]
	}
	if recent == nil {
		recent = []models.Activity{}
	}

	today := []models.ScheduleEntry{}
	if s.schedule != nil {
		today = s.schedule.Today(ctx)
	}

	return dto.TeacherDashboardResponse{
		EnrolledStudents:    total,
		AttendanceRate:      ClassAttendanceRate(latest, total),
		PlannedActivities:   planned,
		CompletedActivities: completed,
		RecentActivities:    recent,
		AttendanceTrend:     AttendanceTrend(s.store.Attendance(), total, s.cfg.TrendLength),
		TodaySchedule:       today,
	}
}

// Student builds one student's overview.
func (s *DashboardService) Student(_ context.Context, studentID string) (*dto.StudentDashboardResponse, error) {
	student, ok := s.store.Student(studentID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	stats := SummarizeAssignments(student.Assignments)
	return &dto.StudentDashboardResponse{
		StudentID:           student.ID,
		Name:                student.Name,
		AttendanceRate:      AttendanceRate(student.ID, s.store.Attendance()),
		PendingCount:        stats.Pending,
		UpcomingAssignments: PendingAssignments(student.Assignments, s.cfg.UpcomingAssignments),
		Stats:               stats,
	}, nil
}
