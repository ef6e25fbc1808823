package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/edutrack-api/internal/models"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

type fakeToday struct {
	entries []models.ScheduleEntry
}

func (f fakeToday) Today(context.Context) []models.ScheduleEntry { return f.entries }

func TestDashboardServiceTeacherDefaultsWithoutAttendance(t *testing.T) {
	store := newTestStore(4)
	svc := NewDashboardService(store, fakeToday{}, DashboardServiceConfig{}, zap.NewNop())

	dash := svc.Teacher(context.Background())
	assert.Equal(t, 4, dash.EnrolledStudents)
	assert.Equal(t, DefaultClassAttendanceRate, dash.AttendanceRate)
	assert.Equal(t, 2, dash.PlannedActivities)
	assert.Equal(t, 1, dash.CompletedActivities)
	assert.Len(t, dash.RecentActivities, 3)
	assert.Empty(t, dash.AttendanceTrend)
}

func TestDashboardServiceTeacherComposes(t *testing.T) {
	history := make([]models.AttendanceRecord, 0, 6)
	for i := 0; i < 6; i++ {
		history = append(history, models.AttendanceRecord{
			Date:              testNow.AddDate(0, 0, i-6).Format(models.TimestampLayout),
			PresentStudentIDs: []string{"1", "2", "3"}[:i%3+1],
		})
	}
	store := newTestStore(4, history...)
	today := fakeToday{entries: []models.ScheduleEntry{{ID: "sc-1"}}}
	svc := NewDashboardService(store, today, DashboardServiceConfig{}, nil)

	store.AddActivity(models.Activity{ID: "new-1", Status: models.ActivityPlanned})
	store.AddActivity(models.Activity{ID: "new-2", Status: models.ActivityCompleted})

	dash := svc.Teacher(context.Background())
	assert.Equal(t, 75, dash.AttendanceRate)
	assert.Equal(t, 3, dash.PlannedActivities)
	assert.Equal(t, 2, dash.CompletedActivities)
	require.Len(t, dash.RecentActivities, 4)
	assert.Equal(t, "new-2", dash.RecentActivities[0].ID)
	require.Len(t, dash.AttendanceTrend, 5)
	assert.Equal(t, history[1].Date, dash.AttendanceTrend[0].Date)
	assert.Equal(t, 50, dash.AttendanceTrend[0].Rate)
	assert.Equal(t, today.entries, dash.TodaySchedule)
}

func TestDashboardServiceStudent(t *testing.T) {
	history := []models.AttendanceRecord{
		{Date: "2024-10-10T08:00:00.000Z", PresentStudentIDs: []string{"1"}},
		{Date: "2024-10-11T08:00:00.000Z", PresentStudentIDs: []string{}},
	}
	svc := NewDashboardService(newTestStore(2, history...), nil, DashboardServiceConfig{UpcomingAssignments: 3}, nil)

	dash, err := svc.Student(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 50, dash.AttendanceRate)
	assert.Equal(t, 1, dash.PendingCount)
	require.Len(t, dash.UpcomingAssignments, 1)
	assert.Equal(t, "as-1-0", dash.UpcomingAssignments[0].ID)
	assert.Equal(t, models.AssignmentStats{Total: 3, Pending: 1, Completed: 2}, dash.Stats)

	_, err = svc.Student(context.Background(), "9")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}
