package service

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/edutrack-api/internal/dto"
	"github.com/noah-isme/edutrack-api/internal/models"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

func TestSessionServiceSignInTeacher(t *testing.T) {
	svc := NewSessionService(newTestStore(3), validator.New(), zap.NewNop())

	resp, err := svc.SignIn(context.Background(), dto.SignInRequest{Role: "teacher"})
	require.NoError(t, err)

	require.NotNil(t, resp.User)
	assert.Equal(t, "t-1", resp.User.ID)
	assert.Equal(t, "Dr. Sarah Miller", resp.User.Name)
	assert.Equal(t, models.ViewDashboard, resp.View)
	assert.Equal(t, models.ScreenTeacherDashboard, resp.Screen)
	assert.Contains(t, resp.Views, models.ViewPlanner)
}

func TestSessionServiceSignInStudentMatchesEmail(t *testing.T) {
	svc := NewSessionService(newTestStore(3), nil, nil)

	resp, err := svc.SignInStudent(context.Background(), "STUDENT2@School.edu")
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, "2", resp.User.ID)
	assert.Equal(t, models.RoleStudent, resp.User.Role)
	require.NotNil(t, resp.User.StudentData)
	assert.Len(t, resp.User.StudentData.Assignments, 3)
	assert.Equal(t, models.ScreenStudentDashboard, resp.Screen)

	fallback, err := svc.SignInStudent(context.Background(), "nobody@school.edu")
	require.NoError(t, err)
	assert.Equal(t, "1", fallback.User.ID)
}

func TestSessionServiceSignInValidation(t *testing.T) {
	svc := NewSessionService(newTestStore(1), nil, nil)

	_, err := svc.SignIn(context.Background(), dto.SignInRequest{Role: "admin"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	empty := NewSessionService(newTestStore(0), nil, nil)
	_, err = empty.SignInStudent(context.Background(), "")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestSessionServiceNavigation(t *testing.T) {
	svc := NewSessionService(newTestStore(3), nil, nil)
	ctx := context.Background()
	svc.SignInTeacher(ctx)

	resp, err := svc.SelectView(ctx, dto.SelectViewRequest{View: "students"})
	require.NoError(t, err)
	assert.Equal(t, models.ScreenStudentDirectory, resp.Screen)

	resp, err = svc.SelectStudent(ctx, dto.SelectStudentRequest{StudentID: strPtr("2")})
	require.NoError(t, err)
	assert.Equal(t, models.ScreenStudentDetail, resp.Screen)
	require.NotNil(t, resp.SelectedStudentID)
	assert.Equal(t, "2", *resp.SelectedStudentID)

	_, err = svc.SelectStudent(ctx, dto.SelectStudentRequest{StudentID: strPtr("99")})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	resp, err = svc.SelectStudent(ctx, dto.SelectStudentRequest{})
	require.NoError(t, err)
	assert.Equal(t, models.ScreenStudentDirectory, resp.Screen)

	_, err = svc.SelectView(ctx, dto.SelectViewRequest{View: "gradebook"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	out := svc.SignOut(ctx)
	assert.Nil(t, out.User)
	assert.Nil(t, out.SelectedStudentID)
	assert.Equal(t, models.ScreenLogin, out.Screen)
	assert.Empty(t, out.Views)
}

func TestResolveScreen(t *testing.T) {
	teacher := &models.User{Role: models.RoleTeacher}
	student := &models.User{Role: models.RoleStudent}

	cases := []struct {
		name      string
		user      *models.User
		view      models.View
		selection bool
		want      models.Screen
	}{
		{"signed out", nil, models.ViewPlanner, false, models.ScreenLogin},
		{"teacher dashboard", teacher, models.ViewDashboard, false, models.ScreenTeacherDashboard},
		{"teacher attendance", teacher, models.ViewAttendance, false, models.ScreenAttendanceSheet},
		{"teacher directory", teacher, models.ViewStudents, false, models.ScreenStudentDirectory},
		{"teacher drill-down", teacher, models.ViewStudents, true, models.ScreenStudentDetail},
		{"teacher planner", teacher, models.ViewPlanner, false, models.ScreenActivityPlanner},
		{"teacher schedule", teacher, models.ViewSchedule, false, models.ScreenSchedule},
		{"teacher student-only view", teacher, models.ViewMyProgress, false, models.ScreenTeacherDashboard},
		{"student dashboard", student, models.ViewDashboard, false, models.ScreenStudentDashboard},
		{"student assignments", student, models.ViewAssignments, false, models.ScreenAssignments},
		{"student progress", student, models.ViewMyProgress, false, models.ScreenStudentDetail},
		{"student schedule", student, models.ViewSchedule, false, models.ScreenSchedule},
		{"student teacher-only view", student, models.ViewPlanner, true, models.ScreenStudentDashboard},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveScreen(tc.user, tc.view, tc.selection))
		})
	}
}
