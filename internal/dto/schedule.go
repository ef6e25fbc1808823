package dto

import "github.com/noah-isme/edutrack-api/internal/models"

// ScheduleCell is one day column in a timetable row. Hidden counts entries in
// the same hour bucket that the cell cannot show.
type ScheduleCell struct {
	Day    models.Weekday        `json:"day"`
	Entry  *models.ScheduleEntry `json:"entry,omitempty"`
	Hidden int                   `json:"hidden,omitempty"`
}

// ScheduleRow is one hourly slot of the week view.
type ScheduleRow struct {
	Slot  string         `json:"slot"`
	Cells []ScheduleCell `json:"cells"`
}

// WeekSchedule is the timetable week view.
type WeekSchedule struct {
	Title string           `json:"title"`
	Days  []models.Weekday `json:"days"`
	Rows  []ScheduleRow    `json:"rows"`
}

// CalendarCell is a month-view day; Day is zero for padding cells.
type CalendarCell struct {
	Day     int                    `json:"day"`
	Weekday string                 `json:"weekday"`
	Entries []models.ScheduleEntry `json:"entries,omitempty"`
	More    int                    `json:"more,omitempty"`
}

// MonthCalendar is the timetable month view.
type MonthCalendar struct {
	Title string         `json:"title"`
	Cells []CalendarCell `json:"cells"`
}

// ScheduleLookupQuery finds the entry shown in one grid cell.
type ScheduleLookupQuery struct {
	Day  string `form:"day" validate:"required,oneof=Mon Tue Wed Thu Fri"`
	Slot string `form:"slot" validate:"required,len=5"`
}

// ScheduleMonthQuery selects the month view.
type ScheduleMonthQuery struct {
	Year  int `form:"year" validate:"omitempty,gte=2000,lte=2100"`
	Month int `form:"month" validate:"omitempty,gte=1,lte=12"`
}
