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

func TestStudentServiceDirectory(t *testing.T) {
	history := []models.AttendanceRecord{
		{Date: "2024-10-10T08:00:00.000Z", PresentStudentIDs: []string{"1", "2"}},
		{Date: "2024-10-11T08:00:00.000Z", PresentStudentIDs: []string{"2"}},
	}
	svc := NewStudentService(newTestStore(5, history...), validator.New(), zap.NewNop())

	resp, page, err := svc.Directory(context.Background(), dto.StudentDirectoryQuery{Grade: "Grade 9-B"})
	require.NoError(t, err)
	require.Len(t, resp.Students, 2)
	assert.Equal(t, "2", resp.Students[0].ID)
	assert.Equal(t, 100, resp.Students[0].AttendanceRate)
	assert.Equal(t, 1, resp.Students[0].PendingCount)
	assert.Equal(t, []string{AllGrades, "Grade 10-A", "Grade 9-B"}, resp.GradeGroups)
	assert.Equal(t, 2, page.TotalCount)

	resp, _, err = svc.Directory(context.Background(), dto.StudentDirectoryQuery{Search: "student1@"})
	require.NoError(t, err)
	require.Len(t, resp.Students, 1)
	assert.Equal(t, 50, resp.Students[0].AttendanceRate)
}

func TestStudentServiceDirectoryPaging(t *testing.T) {
	svc := NewStudentService(newTestStore(5), nil, nil)

	resp, page, err := svc.Directory(context.Background(), dto.StudentDirectoryQuery{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, resp.Students, 2)
	assert.Equal(t, "3", resp.Students[0].ID)
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, &models.Pagination{Page: 2, PageSize: 2, TotalCount: 5}, page)

	resp, _, err = svc.Directory(context.Background(), dto.StudentDirectoryQuery{Page: 9, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, resp.Students)

	_, _, err = svc.Directory(context.Background(), dto.StudentDirectoryQuery{PageSize: 500})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestStudentServiceDetail(t *testing.T) {
	history := make([]models.AttendanceRecord, 0, 8)
	for i := 0; i < 8; i++ {
		present := []string{}
		if i%2 == 0 {
			present = append(present, "1")
		}
		history = append(history, models.AttendanceRecord{Date: testNow.AddDate(0, 0, i-8).Format(models.TimestampLayout), PresentStudentIDs: present})
	}
	svc := NewStudentService(newTestStore(2, history...), nil, nil)

	detail, err := svc.Detail(context.Background(), "1", true)
	require.NoError(t, err)
	assert.Equal(t, 50, detail.AttendanceRate)
	require.Len(t, detail.Timeline, StudentTimelineLength)
	assert.Equal(t, history[7].Date, detail.Timeline[0].Date)
	assert.False(t, detail.Timeline[0].Present)
	assert.True(t, detail.Timeline[1].Present)
	assert.Equal(t, 1, detail.AwaitingGrading)
	assert.True(t, detail.CanGrade)

	_, err = svc.Detail(context.Background(), "nope", false)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}
