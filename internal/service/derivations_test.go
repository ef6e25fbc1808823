package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edutrack-api/internal/models"
	"github.com/noah-isme/edutrack-api/internal/seed"
)

func historyOf(sets ...[]string) []models.AttendanceRecord {
	out := make([]models.AttendanceRecord, 0, len(sets))
	for i, ids := range sets {
		out = append(out, models.AttendanceRecord{
			Date:              time.Date(2024, time.October, 7+i, 8, 0, 0, 0, time.UTC).Format(time.RFC3339),
			PresentStudentIDs: ids,
		})
	}
	return out
}

func TestAttendanceRate(t *testing.T) {
	history := historyOf([]string{"1"}, []string{"1", "2"}, []string{"2"})

	assert.Equal(t, 67, AttendanceRate("1", history))
	assert.Equal(t, 67, AttendanceRate("2", history))
	assert.Equal(t, 0, AttendanceRate("3", history))
	assert.Equal(t, 100, AttendanceRate("1", nil))
}

func TestClassAttendanceRate(t *testing.T) {
	assert.Equal(t, DefaultClassAttendanceRate, ClassAttendanceRate(nil, 10))

	latest := models.AttendanceRecord{PresentStudentIDs: []string{"1", "2", "3"}}
	assert.Equal(t, 30, ClassAttendanceRate(&latest, 10))
	assert.Equal(t, DefaultClassAttendanceRate, ClassAttendanceRate(&latest, 0))

	empty := models.AttendanceRecord{}
	assert.Equal(t, 0, ClassAttendanceRate(&empty, 4))
}

func TestAttendanceTrendKeepsLastN(t *testing.T) {
	history := historyOf([]string{"1"}, []string{"1", "2"}, []string{}, []string{"1", "2", "3", "4"})

	points := AttendanceTrend(history, 4, 3)
	require.Len(t, points, 3)
	assert.Equal(t, history[1].Date, points[0].Date)
	assert.Equal(t, []int{50, 0, 100}, []int{points[0].Rate, points[1].Rate, points[2].Rate})

	assert.Empty(t, AttendanceTrend(nil, 4, 5))
	assert.Len(t, AttendanceTrend(history, 4, 10), 4)
}

func TestAttendanceTimelineNewestFirst(t *testing.T) {
	history := historyOf([]string{"1"}, []string{}, []string{"1"})

	marks := AttendanceTimeline("1", history, 2)
	require.Len(t, marks, 2)
	assert.Equal(t, history[2].Date, marks[0].Date)
	assert.True(t, marks[0].Present)
	assert.False(t, marks[1].Present)

	assert.Empty(t, AttendanceTimeline("1", history, 0))
}

func sampleAssignments() []models.Assignment {
	return []models.Assignment{
		{ID: "a1", Title: "Algebra Worksheet", Subject: "Math", Status: models.AssignmentPending},
		{ID: "a2", Title: "Lab Report", Subject: "Science", Status: models.AssignmentSubmitted},
		{ID: "a3", Title: "Poem Analysis", Subject: "English", Status: models.AssignmentGraded, Grade: "A"},
		{ID: "a4", Title: "Essay", Subject: "History", Status: models.AssignmentPending},
	}
}

func TestFilterAssignments(t *testing.T) {
	list := sampleAssignments()

	pending := FilterAssignments(list, models.FilterPending, "")
	require.Len(t, pending, 2)
	assert.Equal(t, "a1", pending[0].ID)
	assert.Equal(t, "a4", pending[1].ID)

	bySubject := FilterAssignments(list, models.FilterAll, "SCIENCE")
	require.Len(t, bySubject, 1)
	assert.Equal(t, "a2", bySubject[0].ID)

	byTitle := FilterAssignments(list, "", "essay")
	require.Len(t, byTitle, 1)
	assert.Equal(t, "a4", byTitle[0].ID)

	assert.Empty(t, FilterAssignments(list, models.FilterGraded, "math"))
	assert.Len(t, FilterAssignments(list, models.FilterAll, ""), 4)
}

func TestSummarizeAssignments(t *testing.T) {
	stats := SummarizeAssignments(sampleAssignments())
	assert.Equal(t, models.AssignmentStats{Total: 4, Pending: 2, Completed: 2}, stats)
	assert.Equal(t, models.AssignmentStats{}, SummarizeAssignments(nil))
}

func TestPendingAssignmentsAndAwaitingGrading(t *testing.T) {
	list := sampleAssignments()

	first := PendingAssignments(list, 1)
	require.Len(t, first, 1)
	assert.Equal(t, "a1", first[0].ID)
	assert.Len(t, PendingAssignments(list, -1), 2)
	assert.Empty(t, PendingAssignments(list, 0))

	assert.Equal(t, 1, AwaitingGrading(list))
}

func TestActivityCounts(t *testing.T) {
	planned, completed := ActivityCounts([]models.Activity{
		{Status: models.ActivityPlanned},
		{Status: models.ActivityCompleted},
		{Status: models.ActivityPlanned},
	})
	assert.Equal(t, 2, planned)
	assert.Equal(t, 1, completed)
}

func TestLookupScheduleMatchesHourBucket(t *testing.T) {
	schedule := seed.Schedule()

	entry, ok := LookupSchedule(schedule, models.Monday, "09:00")
	require.True(t, ok)
	assert.Equal(t, "sc-2", entry.ID, "09:15 falls in the 09:00 row")

	entry, ok = LookupSchedule(schedule, models.Tuesday, "10:00")
	require.True(t, ok)
	assert.Equal(t, "Art", entry.Subject)

	_, ok = LookupSchedule(schedule, models.Friday, "08:00")
	assert.False(t, ok)
	_, ok = LookupSchedule(schedule, models.Monday, "garbage")
	assert.False(t, ok)
}

func TestWeekGridReportsHiddenEntries(t *testing.T) {
	schedule := []models.ScheduleEntry{
		{ID: "x1", Day: models.Monday, StartTime: "10:00", Subject: "Art"},
		{ID: "x2", Day: models.Monday, StartTime: "10:30", Subject: "Music"},
	}

	rows := WeekGrid(schedule, models.SchoolDays, []string{"09:00", "10:00"})
	require.Len(t, rows, 2)
	assert.Nil(t, rows[0].Cells[0].Entry)

	monday := rows[1].Cells[0]
	require.NotNil(t, monday.Entry)
	assert.Equal(t, "x1", monday.Entry.ID)
	assert.Equal(t, 1, monday.Hidden)
	assert.Nil(t, rows[1].Cells[1].Entry)
	assert.Len(t, rows[1].Cells, 5)

	assert.Len(t, ScheduleSlotEntries(schedule, models.Monday, "10:00"), 2)
}

func TestMonthCalendarAlignsWeekdays(t *testing.T) {
	cal := MonthCalendar(seed.Schedule(), 2024, time.October, 2)

	assert.Equal(t, "October 2024", cal.Title)
	require.Len(t, cal.Cells, 35)
	assert.Equal(t, 0, cal.Cells[0].Day)
	assert.Equal(t, "Sun", cal.Cells[0].Weekday)
	assert.Equal(t, 1, cal.Cells[2].Day)
	assert.Equal(t, "Tue", cal.Cells[2].Weekday)

	monday := cal.Cells[8]
	assert.Equal(t, 7, monday.Day)
	assert.Equal(t, "Mon", monday.Weekday)
	assert.Len(t, monday.Entries, 2)
	assert.Equal(t, 1, monday.More)

	sunday := cal.Cells[7]
	assert.Equal(t, 6, sunday.Day)
	assert.Empty(t, sunday.Entries)
}

func TestFilterStudentsAndGradeGroups(t *testing.T) {
	students := []models.Student{
		{ID: "1", Name: "Alex Johnson", Email: "alex@school.edu", Grade: "Grade 10-A"},
		{ID: "2", Name: "Jordan Smith", Email: "jordan@school.edu", Grade: "Grade 9-B"},
		{ID: "3", Name: "Taylor Alexander", Email: "taylor@school.edu", Grade: "Grade 10-A"},
	}

	byName := FilterStudents(students, "alex", "")
	require.Len(t, byName, 2)
	assert.Equal(t, "1", byName[0].ID)
	assert.Equal(t, "3", byName[1].ID)

	byGrade := FilterStudents(students, "", "Grade 9-B")
	require.Len(t, byGrade, 1)
	assert.Equal(t, "2", byGrade[0].ID)

	assert.Len(t, FilterStudents(students, "school.edu", AllGrades), 3)
	assert.Equal(t, []string{"Grade 10-A", "Grade 9-B"}, GradeGroups(students))
}

func TestFilterRoster(t *testing.T) {
	students := []models.Student{{ID: "1", Name: "Alex"}, {ID: "2", Name: "Jordan"}, {ID: "3", Name: "Alexis"}}
	present := map[string]struct{}{"1": {}}

	assert.Len(t, FilterRoster(students, "", present, models.RosterAll), 3)

	onlyPresent := FilterRoster(students, "", present, models.RosterPresent)
	require.Len(t, onlyPresent, 1)
	assert.Equal(t, "1", onlyPresent[0].ID)

	absentAlex := FilterRoster(students, "ALEX", present, models.RosterAbsent)
	require.Len(t, absentAlex, 1)
	assert.Equal(t, "3", absentAlex[0].ID)
}
