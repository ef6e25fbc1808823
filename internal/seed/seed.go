// Package seed builds the initial classroom fixture. All randomness comes from
// the caller's source so a fixed seed reproduces the same roster.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/noah-isme/edutrack-api/internal/models"
)

// Options shapes the generated fixture.
type Options struct {
	StudentCount int
	// AttendanceWindowDays counts calendar days back from now; weekends are skipped.
	AttendanceWindowDays int
	PresenceRate         float64
}

// DefaultOptions mirrors the demo roster: 105 students, a 15 day attendance
// window and roughly 92% presence.
func DefaultOptions() Options {
	return Options{StudentCount: 105, AttendanceWindowDays: 15, PresenceRate: 0.92}
}

// Fixture is everything the state store starts with.
type Fixture struct {
	Students   []models.Student
	Attendance []models.AttendanceRecord
	Activities []models.Activity
	Schedule   []models.ScheduleEntry
}

// Generate builds a fixture from rng. now anchors assignment dates and the
// attendance window.
func Generate(rng *rand.Rand, now time.Time, opts Options) Fixture {
	if opts.StudentCount < 0 {
		opts.StudentCount = 0
	}
	if opts.AttendanceWindowDays <= 0 {
		opts.AttendanceWindowDays = 15
	}
	if opts.PresenceRate <= 0 || opts.PresenceRate > 1 {
		opts.PresenceRate = 0.92
	}

	students := Students(rng, now, opts.StudentCount)
	return Fixture{
		Students:   students,
		Attendance: AttendanceHistory(rng, now, students, opts.AttendanceWindowDays, opts.PresenceRate),
		Activities: Activities(),
		Schedule:   Schedule(),
	}
}

// Students generates count students with ids "1".."count".
func Students(rng *rand.Rand, now time.Time, count int) []models.Student {
	students := make([]models.Student, 0, count)
	for i := 1; i <= count; i++ {
		first := firstNames[i%len(firstNames)]
		last := lastNames[i%len(lastNames)]
		parentFirst := firstNames[(i+10)%len(firstNames)]

		relation := "Father"
		if rng.Float64() > 0.5 {
			relation = "Mother"
		}

		students = append(students, models.Student{
			ID:              fmt.Sprintf("%d", i),
			Name:            first + " " + last,
			Email:           fmt.Sprintf("%s.%s%d@school.edu", strings.ToLower(first), strings.ToLower(last), i),
			Grade:           classGroups[rng.Intn(len(classGroups))],
			Avatar:          fmt.Sprintf("https://picsum.photos/seed/std%d/200/200", i),
			Assignments:     assignmentsFor(rng, now, i),
			BehavioralNotes: notes(rng),
			ParentContact: &models.ParentContact{
				Name:     parentFirst + " " + last,
				Relation: relation,
				Phone:    fmt.Sprintf("(555) %d-%d", 100+rng.Intn(900), 1000+rng.Intn(9000)),
				Email:    fmt.Sprintf("%s.%s@gmail.com", strings.ToLower(parentFirst), strings.ToLower(last)),
			},
		})
	}
	return students
}

func assignmentsFor(rng *rand.Rand, now time.Time, studentIndex int) []models.Assignment {
	count := rng.Intn(4) + 2
	pool := append([]assignmentTemplate(nil), assignmentTemplates...)
	statuses := []models.AssignmentStatus{models.AssignmentSubmitted, models.AssignmentGraded, models.AssignmentPending}

	assignments := make([]models.Assignment, 0, count)
	for j := 0; j < count; j++ {
		idx := rng.Intn(len(pool))
		tpl := pool[idx]
		pool = append(pool[:idx], pool[idx+1:]...)

		status := statuses[rng.Intn(len(statuses))]
		grade := models.UngradedMark
		if status == models.AssignmentGraded {
			grade = gradeMarks[rng.Intn(len(gradeMarks))]
		}
		age := time.Duration(rng.Float64() * float64(30*24*time.Hour))

		assignments = append(assignments, models.Assignment{
			ID:          fmt.Sprintf("as-%d-%d", studentIndex, j),
			Title:       tpl.Title,
			Subject:     tpl.Subject,
			Description: tpl.Description,
			Grade:       grade,
			Date:        models.FormatTimestamp(now.Add(-age)),
			Status:      status,
		})
	}
	return assignments
}

func notes(rng *rand.Rand) []string {
	count := rng.Intn(3) + 1
	out := make([]string, count)
	for i := range out {
		out[i] = behaviorLogs[rng.Intn(len(behaviorLogs))]
	}
	return out
}

// AttendanceHistory produces one record per weekday in the window ending today,
// oldest first.
func AttendanceHistory(rng *rand.Rand, now time.Time, students []models.Student, windowDays int, presence float64) []models.AttendanceRecord {
	records := make([]models.AttendanceRecord, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		present := make([]string, 0, len(students))
		for _, s := range students {
			if rng.Float64() < presence {
				present = append(present, s.ID)
			}
		}
		records = append(records, models.AttendanceRecord{
			Date:              models.FormatTimestamp(date),
			PresentStudentIDs: present,
		})
	}
	return records
}
