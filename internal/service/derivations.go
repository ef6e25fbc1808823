package service

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/noah-isme/edutrack-api/internal/dto"
	"github.com/noah-isme/edutrack-api/internal/models"
)

// DefaultClassAttendanceRate is shown on the dashboard before any roll call exists.
const DefaultClassAttendanceRate = 92

// AllGrades is the directory option that disables grade filtering.
const AllGrades = "All Grades"

// AttendanceRate is the rounded share of records in which the student was
// present. With no history it is 100.
func AttendanceRate(studentID string, records []models.AttendanceRecord) int {
	if len(records) == 0 {
		return 100
	}
	present := 0
	for _, record := range records {
		if record.Has(studentID) {
			present++
		}
	}
	return percent(present, len(records))
}

// ClassAttendanceRate is the present share of the latest record against the
// roster size, or DefaultClassAttendanceRate without a record.
func ClassAttendanceRate(latest *models.AttendanceRecord, totalStudents int) int {
	if latest == nil || totalStudents <= 0 {
		return DefaultClassAttendanceRate
	}
	return percent(len(latest.PresentStudentIDs), totalStudents)
}

// AttendanceTrend returns the class rate for each of the last n records, oldest first.
func AttendanceTrend(records []models.AttendanceRecord, totalStudents, n int) []dto.AttendancePoint {
	if n <= 0 || len(records) == 0 {
		return []dto.AttendancePoint{}
	}
	start := len(records) - n
	if start < 0 {
		start = 0
	}
	points := make([]dto.AttendancePoint, 0, len(records)-start)
	for i := start; i < len(records); i++ {
		record := records[i]
		points = append(points, dto.AttendancePoint{
			Date: record.Date,
			Rate: ClassAttendanceRate(&record, totalStudents),
		})
	}
	return points
}

// AttendanceTimeline lists up to limit of the student's marks, newest first.
func AttendanceTimeline(studentID string, records []models.AttendanceRecord, limit int) []models.AttendanceMark {
	if limit <= 0 {
		return []models.AttendanceMark{}
	}
	marks := make([]models.AttendanceMark, 0, minInt(limit, len(records)))
	for i := len(records) - 1; i >= 0 && len(marks) < limit; i-- {
		marks = append(marks, models.AttendanceMark{
			Date:    records[i].Date,
			Present: records[i].Has(studentID),
		})
	}
	return marks
}

// FilterAssignments keeps assignments matching the status filter and whose
// title or subject contains search, case-insensitively. Input order is kept.
func FilterAssignments(assignments []models.Assignment, filter models.AssignmentFilter, search string) []models.Assignment {
	needle := strings.ToLower(search)
	out := make([]models.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if filter != "" && filter != models.FilterAll && string(a.Status) != string(filter) {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(a.Title), needle) &&
			!strings.Contains(strings.ToLower(a.Subject), needle) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// SummarizeAssignments counts totals; anything not pending is completed.
func SummarizeAssignments(assignments []models.Assignment) models.AssignmentStats {
	stats := models.AssignmentStats{Total: len(assignments)}
	for _, a := range assignments {
		if a.Status == models.AssignmentPending {
			stats.Pending++
		} else {
			stats.Completed++
		}
	}
	return stats
}

// PendingAssignments returns up to limit pending assignments in order; a
// negative limit returns all of them.
func PendingAssignments(assignments []models.Assignment, limit int) []models.Assignment {
	out := make([]models.Assignment, 0)
	for _, a := range assignments {
		if limit >= 0 && len(out) >= limit {
			break
		}
		if a.Status == models.AssignmentPending {
			out = append(out, a)
		}
	}
	return out
}

// AwaitingGrading counts submitted assignments.
func AwaitingGrading(assignments []models.Assignment) int {
	count := 0
	for _, a := range assignments {
		if a.Status == models.AssignmentSubmitted {
			count++
		}
	}
	return count
}

// ActivityCounts splits the plan by status.
func ActivityCounts(activities []models.Activity) (planned, completed int) {
	for _, a := range activities {
		switch a.Status {
		case models.ActivityPlanned:
			planned++
		case models.ActivityCompleted:
			completed++
		}
	}
	return planned, completed
}

// LookupSchedule returns the first entry on day whose start hour equals the
// slot's hour. Entries sharing an hour bucket are hidden behind the first.
func LookupSchedule(schedule []models.ScheduleEntry, day models.Weekday, slot string) (*models.ScheduleEntry, bool) {
	entries := ScheduleSlotEntries(schedule, day, slot)
	if len(entries) == 0 {
		return nil, false
	}
	return &entries[0], true
}

// ScheduleSlotEntries returns every entry in the day/hour bucket in list order.
func ScheduleSlotEntries(schedule []models.ScheduleEntry, day models.Weekday, slot string) []models.ScheduleEntry {
	hour := hourOf(slot)
	if hour == "" {
		return nil
	}
	var out []models.ScheduleEntry
	for _, entry := range schedule {
		if entry.Day == day && hourOf(entry.StartTime) == hour {
			out = append(out, entry)
		}
	}
	return out
}

// WeekGrid lays the schedule out as slot rows by day columns.
func WeekGrid(schedule []models.ScheduleEntry, days []models.Weekday, slots []string) []dto.ScheduleRow {
	rows := make([]dto.ScheduleRow, 0, len(slots))
	for _, slot := range slots {
		row := dto.ScheduleRow{Slot: slot, Cells: make([]dto.ScheduleCell, 0, len(days))}
		for _, day := range days {
			cell := dto.ScheduleCell{Day: day}
			if entries := ScheduleSlotEntries(schedule, day, slot); len(entries) > 0 {
				first := entries[0]
				cell.Entry = &first
				cell.Hidden = len(entries) - 1
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}
	return rows
}

// MonthCalendar builds whole weeks (Sunday first) covering the month. Each
// school day lists at most perDay entries and counts the rest in More.
func MonthCalendar(schedule []models.ScheduleEntry, year int, month time.Month, perDay int) dto.MonthCalendar {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	offset := int(first.Weekday())
	total := offset + daysInMonth
	if rem := total % 7; rem != 0 {
		total += 7 - rem
	}

	byDay := make(map[models.Weekday][]models.ScheduleEntry)
	for _, entry := range schedule {
		byDay[entry.Day] = append(byDay[entry.Day], entry)
	}

	cells := make([]dto.CalendarCell, 0, total)
	for i := 0; i < total; i++ {
		dayNum := i - offset + 1
		cell := dto.CalendarCell{Weekday: weekdayLabel(time.Weekday(i % 7))}
		if dayNum >= 1 && dayNum <= daysInMonth {
			cell.Day = dayNum
			entries := byDay[models.Weekday(cell.Weekday)]
			if len(entries) > perDay {
				cell.More = len(entries) - perDay
				entries = entries[:perDay]
			}
			cell.Entries = append([]models.ScheduleEntry(nil), entries...)
		}
		cells = append(cells, cell)
	}

	return dto.MonthCalendar{
		Title: first.Format("January 2006"),
		Cells: cells,
	}
}

// FilterStudents matches name or email against search and, unless grade is
// empty or AllGrades, the grade group exactly.
func FilterStudents(students []models.Student, search, grade string) []models.Student {
	needle := strings.ToLower(search)
	out := make([]models.Student, 0, len(students))
	for _, s := range students {
		if grade != "" && grade != AllGrades && s.Grade != grade {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(s.Name), needle) &&
			!strings.Contains(strings.ToLower(s.Email), needle) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// GradeGroups returns the distinct grade groups, sorted.
func GradeGroups(students []models.Student) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, s := range students {
		if _, ok := seen[s.Grade]; ok {
			continue
		}
		seen[s.Grade] = struct{}{}
		out = append(out, s.Grade)
	}
	sort.Strings(out)
	return out
}

// FilterRoster narrows the attendance sheet by name and present/absent state.
func FilterRoster(students []models.Student, search string, present map[string]struct{}, filter models.RosterFilter) []models.Student {
	needle := strings.ToLower(search)
	out := make([]models.Student, 0, len(students))
	for _, s := range students {
		if needle != "" && !strings.Contains(strings.ToLower(s.Name), needle) {
			continue
		}
		_, isPresent := present[s.ID]
		if filter == models.RosterPresent && !isPresent {
			continue
		}
		if filter == models.RosterAbsent && isPresent {
			continue
		}
		out = append(out, s)
	}
	return out
}

func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

func hourOf(clock string) string {
	clock = strings.TrimSpace(clock)
	hour, _, found := strings.Cut(clock, ":")
	if !found {
		return ""
	}
	return hour
}

func weekdayLabel(day time.Weekday) string {
	return day.String()[:3]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
