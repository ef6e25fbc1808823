package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/edutrack-api/internal/dto"
	"github.com/noah-isme/edutrack-api/internal/models"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

func newAssignmentServiceForTest(strict bool) (*AssignmentService, *SessionService) {
	store := newTestStore(2)
	svc := NewAssignmentService(store, validator.New(), AssignmentServiceConfig{StrictTransitions: strict}, zap.NewNop())
	svc.now = func() time.Time { return testNow }
	return svc, NewSessionService(store, nil, nil)
}

func TestAssignmentServiceList(t *testing.T) {
	svc, _ := newAssignmentServiceForTest(false)

	resp, err := svc.List(context.Background(), "1", dto.AssignmentListQuery{Status: "pending"})
	require.NoError(t, err)
	require.Len(t, resp.Assignments, 1)
	assert.Equal(t, "as-1-0", resp.Assignments[0].ID)
	assert.Equal(t, models.AssignmentStats{Total: 3, Pending: 1, Completed: 2}, resp.Stats)

	resp, err = svc.List(context.Background(), "1", dto.AssignmentListQuery{Search: "lab"})
	require.NoError(t, err)
	require.Len(t, resp.Assignments, 1)
	assert.Equal(t, "Lab Report", resp.Assignments[0].Title)

	_, err = svc.List(context.Background(), "404", dto.AssignmentListQuery{})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	_, err = svc.List(context.Background(), "1", dto.AssignmentListQuery{Status: "late"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestAssignmentServiceSubmitStampsDate(t *testing.T) {
	svc, _ := newAssignmentServiceForTest(false)

	student, err := svc.Submit(context.Background(), "1", "as-1-0")
	require.NoError(t, err)

	submitted := student.Assignments[0]
	assert.Equal(t, models.AssignmentSubmitted, submitted.Status)
	assert.Equal(t, models.FormatTimestamp(testNow), submitted.Date)
	assert.Equal(t, "Algebra Worksheet", submitted.Title)
}

func TestAssignmentServiceGradeSyncsSession(t *testing.T) {
	svc, sessions := newAssignmentServiceForTest(false)
	ctx := context.Background()
	_, err := sessions.SignInStudent(ctx, "student1@school.edu")
	require.NoError(t, err)

	_, err = svc.Grade(ctx, "1", "as-1-1", dto.GradeAssignmentRequest{Grade: " B+ "})
	require.NoError(t, err)

	current := sessions.Current(ctx)
	require.NotNil(t, current.User.StudentData)
	graded := current.User.StudentData.Assignments[1]
	assert.Equal(t, models.AssignmentGraded, graded.Status)
	assert.Equal(t, "B+", graded.Grade)
}

func TestAssignmentServiceRejectsGradedWithoutGrade(t *testing.T) {
	svc, _ := newAssignmentServiceForTest(false)
	graded := string(models.AssignmentGraded)

	_, err := svc.Update(context.Background(), "1", "as-1-1", dto.UpdateAssignmentRequest{Status: &graded})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrGradeRequired))

	dash := models.UngradedMark
	_, err = svc.Update(context.Background(), "1", "as-1-1", dto.UpdateAssignmentRequest{Status: &graded, Grade: &dash})
	assert.True(t, errors.Is(err, appErrors.ErrGradeRequired))

	_, err = svc.Grade(context.Background(), "1", "as-1-1", dto.GradeAssignmentRequest{})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestAssignmentServiceUpdateValidation(t *testing.T) {
	svc, _ := newAssignmentServiceForTest(false)

	_, err := svc.Update(context.Background(), "1", "as-1-0", dto.UpdateAssignmentRequest{})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	bogus := "lost"
	_, err = svc.Update(context.Background(), "1", "as-1-0", dto.UpdateAssignmentRequest{Status: &bogus})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	title := "Renamed"
	_, err = svc.Update(context.Background(), "1", "missing", dto.UpdateAssignmentRequest{Title: &title})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	student, err := svc.Update(context.Background(), "1", "as-1-0", dto.UpdateAssignmentRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", student.Assignments[0].Title)
	assert.Equal(t, models.AssignmentPending, student.Assignments[0].Status)

	badDate := "not a date"
	_, err = svc.Update(context.Background(), "1", "as-1-0", dto.UpdateAssignmentRequest{Date: &badDate})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	date := "2024-10-20T10:00:00Z"
	student, err = svc.Update(context.Background(), "1", "as-1-0", dto.UpdateAssignmentRequest{Date: &date})
	require.NoError(t, err)
	assert.Equal(t, date, student.Assignments[0].Date)
}

func TestAssignmentServiceKeepsGradedMark(t *testing.T) {
	for _, strict := range []bool{false, true} {
		svc, _ := newAssignmentServiceForTest(strict)
		for _, blank := range []string{models.UngradedMark, "", "  "} {
			grade := blank
			_, err := svc.Update(context.Background(), "1", "as-1-2", dto.UpdateAssignmentRequest{Grade: &grade})
			assert.True(t, errors.Is(err, appErrors.ErrGradeRequired), "strict=%v grade=%q", strict, blank)
		}

		student, err := svc.Update(context.Background(), "1", "as-1-2", dto.UpdateAssignmentRequest{Grade: strPtr("B")})
		require.NoError(t, err)
		assert.Equal(t, models.AssignmentGraded, student.Assignments[2].Status)
		assert.Equal(t, "B", student.Assignments[2].Grade)
	}
}

func TestAssignmentServiceConcurrentStrictGrading(t *testing.T) {
	svc, _ := newAssignmentServiceForTest(true)
	pending := string(models.AssignmentPending)

	// Whichever patch lands first, moving the work back to pending stays illegal.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = svc.Grade(context.Background(), "1", "as-1-1", dto.GradeAssignmentRequest{Grade: "A"})
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = svc.Update(context.Background(), "1", "as-1-1", dto.UpdateAssignmentRequest{Status: &pending})
	}()
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.True(t, errors.Is(errs[1], appErrors.ErrInvalidTransition))
}

func TestAssignmentServiceStrictTransitions(t *testing.T) {
	lenient, _ := newAssignmentServiceForTest(false)
	_, err := lenient.Grade(context.Background(), "1", "as-1-0", dto.GradeAssignmentRequest{Grade: "A"})
	require.NoError(t, err, "pending work can be graded directly unless transitions are strict")

	strict, _ := newAssignmentServiceForTest(true)
	_, err = strict.Grade(context.Background(), "1", "as-1-0", dto.GradeAssignmentRequest{Grade: "A"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrInvalidTransition))

	_, err = strict.Submit(context.Background(), "1", "as-1-0")
	require.NoError(t, err)
	_, err = strict.Grade(context.Background(), "1", "as-1-0", dto.GradeAssignmentRequest{Grade: "A"})
	require.NoError(t, err)
	_, err = strict.Submit(context.Background(), "1", "as-1-0")
	require.NoError(t, err, "graded work may be resubmitted")
}

func TestTransitionAllowed(t *testing.T) {
	assert.True(t, transitionAllowed(models.AssignmentPending, models.AssignmentPending))
	assert.True(t, transitionAllowed(models.AssignmentPending, models.AssignmentSubmitted))
	assert.False(t, transitionAllowed(models.AssignmentPending, models.AssignmentGraded))
	assert.True(t, transitionAllowed(models.AssignmentSubmitted, models.AssignmentGraded))
	assert.False(t, transitionAllowed(models.AssignmentSubmitted, models.AssignmentPending))
	assert.True(t, transitionAllowed(models.AssignmentGraded, models.AssignmentSubmitted))
	assert.False(t, transitionAllowed(models.AssignmentGraded, models.AssignmentPending))
}
