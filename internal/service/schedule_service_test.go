package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edutrack-api/internal/dto"
	"github.com/noah-isme/edutrack-api/internal/models"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

func newScheduleServiceForTest(now time.Time) *ScheduleService {
	svc := NewScheduleService(newTestStore(1), nil, nil)
	svc.now = func() time.Time { return now }
	return svc
}

func TestScheduleServiceWeek(t *testing.T) {
	svc := newScheduleServiceForTest(testNow)

	week := svc.Week(context.Background(), models.RoleTeacher)
	assert.Equal(t, "Class 9A Weekly Schedule", week.Title)
	require.Len(t, week.Rows, len(models.DefaultTimeSlots))
	first := week.Rows[0]
	assert.Equal(t, "08:00", first.Slot)
	require.NotNil(t, first.Cells[0].Entry)
	assert.Equal(t, "Mathematics", first.Cells[0].Entry.Subject)

	assert.Equal(t, "My Timetable", svc.Week(context.Background(), models.RoleStudent).Title)
}

func TestScheduleServiceMonthDefaultsToCurrent(t *testing.T) {
	svc := newScheduleServiceForTest(testNow)

	calendar, err := svc.Month(context.Background(), dto.ScheduleMonthQuery{})
	require.NoError(t, err)
	assert.Equal(t, "October 2024", calendar.Title)

	calendar, err = svc.Month(context.Background(), dto.ScheduleMonthQuery{Year: 2025, Month: 2})
	require.NoError(t, err)
	assert.Equal(t, "February 2025", calendar.Title)
	assert.Len(t, calendar.Cells, 35)

	_, err = svc.Month(context.Background(), dto.ScheduleMonthQuery{Month: 13})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestScheduleServiceLookup(t *testing.T) {
	svc := newScheduleServiceForTest(testNow)

	entry, err := svc.Lookup(context.Background(), dto.ScheduleLookupQuery{Day: "Wed", Slot: "10:00"})
	require.NoError(t, err)
	assert.Equal(t, "Computer Science", entry.Subject)

	_, err = svc.Lookup(context.Background(), dto.ScheduleLookupQuery{Day: "Fri", Slot: "08:00"})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	_, err = svc.Lookup(context.Background(), dto.ScheduleLookupQuery{Day: "Sat", Slot: "08:00"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestScheduleServiceToday(t *testing.T) {
	monday := newScheduleServiceForTest(testNow)
	today := monday.Today(context.Background())
	require.Len(t, today, 3)
	assert.Equal(t, "sc-1", today[0].ID)

	saturday := newScheduleServiceForTest(time.Date(2024, time.October, 19, 9, 0, 0, 0, time.UTC))
	assert.Empty(t, saturday.Today(context.Background()))
}
