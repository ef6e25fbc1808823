package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/edutrack-api/internal/dto"
	"github.com/noah-isme/edutrack-api/internal/models"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

func newExportServiceForTest(t *testing.T) *ExportService {
	t.Helper()
	store := newTestStore(4,
		models.AttendanceRecord{Date: "2024-10-10T08:00:00Z", PresentStudentIDs: []string{"1", "2"}},
		models.AttendanceRecord{Date: "2024-10-11T08:00:00Z", PresentStudentIDs: []string{"1", "3", "4"}},
	)
	svc := NewExportService(store, nil, zap.NewNop())
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestExportServiceWeeklyReportCSV(t *testing.T) {
	svc := newExportServiceForTest(t)

	file, err := svc.WeeklyReport(context.Background(), dto.ReportQuery{})
	require.NoError(t, err)
	assert.Equal(t, "weekly-report-2024-10-14.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	lines := strings.Split(strings.TrimSpace(string(file.Data)), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "ID,Name,Group,Attendance (%),Pending,Completed", lines[0])
	assert.Equal(t, "1,Student 1,Grade 10-A,100,1,2", lines[1])
	assert.Equal(t, "2,Student 2,Grade 9-B,50,1,2", lines[2])
}

func TestExportServiceWeeklyReportFiltersGroup(t *testing.T) {
	svc := newExportServiceForTest(t)

	dataset := svc.Dataset(context.Background(), "Grade 9-B")
	require.Len(t, dataset.Rows, 2)
	assert.Equal(t, "2", dataset.Rows[0][ReportColumnID])
	assert.Equal(t, "4", dataset.Rows[1][ReportColumnID])
	assert.Contains(t, dataset.Notes, "Group: Grade 9-B")
	assert.Contains(t, dataset.Notes, "Class attendance: 75% across 2 sessions")
}

func TestExportServiceWeeklyReportPDF(t *testing.T) {
	svc := newExportServiceForTest(t)

	file, err := svc.WeeklyReport(context.Background(), dto.ReportQuery{Format: "pdf"})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasSuffix(file.Filename, ".pdf"))
	assert.True(t, strings.HasPrefix(string(file.Data), "%PDF"))

	_, err = svc.WeeklyReport(context.Background(), dto.ReportQuery{Format: "xlsx"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}
