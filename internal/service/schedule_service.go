package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/edutrack-api/internal/dto"
	"github.com/noah-isme/edutrack-api/internal/models"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

const (
	teacherScheduleTitle  = "Class 9A Weekly Schedule"
	studentScheduleTitle  = "My Timetable"
	calendarEntriesPerDay = 3
)

type scheduleReader interface {
	Schedule() []models.ScheduleEntry
}

// ScheduleService renders the static timetable.
type ScheduleService struct {
	store     scheduleReader
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewScheduleService constructs a ScheduleService.
func NewScheduleService(store scheduleReader, validate *validator.Validate, logger *zap.Logger) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{store: store, validator: validate, logger: logger, now: time.Now}
}

// Week lays the timetable out as hourly rows by school day.
func (s *ScheduleService) Week(_ context.Context, role models.Role) dto.WeekSchedule {
	title := teacherScheduleTitle
	if role == models.RoleStudent {
		title = studentScheduleTitle
	}
	return dto.WeekSchedule{
		Title: title,
		Days:  models.SchoolDays,
		Rows:  WeekGrid(s.store.Schedule(), models.SchoolDays, models.DefaultTimeSlots),
	}
}

// Month renders a month calendar, defaulting to the current month.
func (s *ScheduleService) Month(_ context.Context, query dto.ScheduleMonthQuery) (*dto.MonthCalendar, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	now := s.now()
	year, month := now.Year(), now.Month()
	if query.Year != 0 {
		year = query.Year
	}
	if query.Month != 0 {
		month = time.Month(query.Month)
	}
	calendar := MonthCalendar(s.store.Schedule(), year, month, calendarEntriesPerDay)
	return &calendar, nil
}

// Lookup returns the entry shown in one grid cell.
func (s *ScheduleService) Lookup(_ context.Context, query dto.ScheduleLookupQuery) (*models.ScheduleEntry, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	entry, ok := LookupSchedule(s.store.Schedule(), models.Weekday(query.Day), query.Slot)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no class in that slot")
	}
	return entry, nil
}

// Today lists the entries on the current weekday, empty at weekends.
func (s *ScheduleService) Today(_ context.Context) []models.ScheduleEntry {
	day := models.Weekday(weekdayLabel(s.now().Weekday()))
	out := make([]models.ScheduleEntry, 0)
	if !day.Valid() {
		return out
	}
	for _, entry := range s.store.Schedule() {
		if entry.Day == day {
			out = append(out, entry)
		}
	}
	return out
}
