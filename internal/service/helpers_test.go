package service

import (
	"fmt"
	"time"

	"github.com/noah-isme/edutrack-api/internal/models"
	"github.com/noah-isme/edutrack-api/internal/repository"
	"github.com/noah-isme/edutrack-api/internal/seed"
)

var testNow = time.Date(2024, time.October, 14, 9, 30, 0, 0, time.UTC)

func testRoster(n int) []models.Student {
	students := make([]models.Student, 0, n)
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("%d", i)
		grade := "Grade 10-A"
		if i%2 == 0 {
			grade = "Grade 9-B"
		}
		students = append(students, models.Student{
			ID:    id,
			Name:  fmt.Sprintf("Student %d", i),
			Email: fmt.Sprintf("student%d@school.edu", i),
			Grade: grade,
			Assignments: []models.Assignment{
				{ID: "as-" + id + "-0", Title: "Algebra Worksheet", Subject: "Math", Grade: models.UngradedMark, Status: models.AssignmentPending},
				{ID: "as-" + id + "-1", Title: "Lab Report", Subject: "Science", Grade: models.UngradedMark, Status: models.AssignmentSubmitted},
				{ID: "as-" + id + "-2", Title: "Poem Analysis", Subject: "English", Grade: "A-", Status: models.AssignmentGraded},
			},
		})
	}
	return students
}

func newTestStore(n int, attendance ...models.AttendanceRecord) *repository.StateStore {
	fixture := seed.Fixture{
		Students:   testRoster(n),
		Attendance: attendance,
		Activities: seed.Activities(),
		Schedule:   seed.Schedule(),
	}
	return repository.NewStateStore(fixture, repository.WithClock(func() time.Time { return testNow }))
}

func strPtr(v string) *string { return &v }
