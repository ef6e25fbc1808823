package seed

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edutrack-api/internal/models"
)

var anchor = time.Date(2024, time.October, 18, 9, 0, 0, 0, time.UTC) // a Friday

func TestGenerateIsReproducible(t *testing.T) {
	first := Generate(rand.New(rand.NewSource(42)), anchor, DefaultOptions())
	second := Generate(rand.New(rand.NewSource(42)), anchor, DefaultOptions())

	assert.Equal(t, first, second)
}

func TestGenerateRosterShape(t *testing.T) {
	fixture := Generate(rand.New(rand.NewSource(7)), anchor, Options{StudentCount: 12})

	require.Len(t, fixture.Students, 12)
	seen := map[string]bool{}
	for i, s := range fixture.Students {
		assert.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
		assert.Contains(t, classGroups, s.Grade)
		assert.Contains(t, s.Email, "@school.edu")
		require.NotNil(t, s.ParentContact)
		assert.GreaterOrEqual(t, len(s.BehavioralNotes), 1)
		assert.LessOrEqual(t, len(s.BehavioralNotes), 3)
		assert.GreaterOrEqual(t, len(s.Assignments), 2, "student %d", i)
		assert.LessOrEqual(t, len(s.Assignments), 5)

		titles := map[string]bool{}
		for _, a := range s.Assignments {
			assert.False(t, titles[a.Title], "template reused for student %s", s.ID)
			titles[a.Title] = true
			assert.True(t, a.Status.Valid())
			if a.Status == models.AssignmentGraded {
				assert.NotEqual(t, models.UngradedMark, a.Grade)
			} else {
				assert.Equal(t, models.UngradedMark, a.Grade)
			}
			_, err := models.ParseTimestamp(a.Date)
			assert.NoError(t, err)
		}
	}
}

func TestAttendanceHistorySkipsWeekends(t *testing.T) {
	fixture := Generate(rand.New(rand.NewSource(1)), anchor, Options{StudentCount: 20})

	// 15 calendar days ending on a Friday hold 11 weekdays.
	require.Len(t, fixture.Attendance, 11)
	known := map[string]bool{}
	for _, s := range fixture.Students {
		known[s.ID] = true
	}
	var previous time.Time
	for _, record := range fixture.Attendance {
		date, err := models.ParseTimestamp(record.Date)
		require.NoError(t, err)
		assert.NotEqual(t, time.Saturday, date.Weekday())
		assert.NotEqual(t, time.Sunday, date.Weekday())
		assert.True(t, date.After(previous))
		previous = date
		for _, id := range record.PresentStudentIDs {
			assert.True(t, known[id])
		}
	}
}

func TestStaticReferenceData(t *testing.T) {
	assert.Len(t, Schedule(), 11)
	activities := Activities()
	require.Len(t, activities, 3)
	assert.Equal(t, "act-1", activities[0].ID)
	assert.Equal(t, models.ActivityCompleted, activities[1].Status)
}
