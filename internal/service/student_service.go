package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/edutrack-api/internal/dto"
	"github.com/noah-isme/edutrack-api/internal/models"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

// StudentTimelineLength is how many sessions the detail page lists.
const StudentTimelineLength = 6

type rosterStore interface {
	Students() []models.Student
	Student(id string) (models.Student, bool)
	Attendance() []models.AttendanceRecord
}

// StudentService serves the directory and student detail views.
type StudentService struct {
	store     rosterStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs a StudentService.
func NewStudentService(store rosterStore, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{store: store, validator: validate, logger: logger}
}

// Directory filters the roster by name/email and grade group and pages the result.
func (s *StudentService) Directory(ctx context.Context, query dto.StudentDirectoryQuery) (*dto.StudentDirectoryResponse, *models.Pagination, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	students := s.store.Students()
	records := s.store.Attendance()
	matches := FilterStudents(students, query.Search, query.Grade)

	page := query.Page
	if page <= 0 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = len(matches)
	}

	start := (page - 1) * pageSize
	if start > len(matches) {
		start = len(matches)
	}
	end := start + pageSize
	if end > len(matches) {
		end = len(matches)
	}

	rows := make([]dto.StudentSummary, 0, end-start)
	for _, student := range matches[start:end] {
		rows = append(rows, summarizeStudent(student, records))
	}

	resp := &dto.StudentDirectoryResponse{
		Students:    rows,
		GradeGroups: append([]string{AllGrades}, GradeGroups(students)...),
		Total:       len(matches),
	}
	return resp, &models.Pagination{Page: page, PageSize: pageSize, TotalCount: len(matches)}, nil
}

// Detail builds the drill-down page. canGrade is set for teacher viewers.
func (s *StudentService) Detail(ctx context.Context, studentID string, canGrade bool) (*dto.StudentDetailResponse, error) {
	student, ok := s.store.Student(studentID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	records := s.store.Attendance()

	return &dto.StudentDetailResponse{
		Student:         student,
		AttendanceRate:  AttendanceRate(student.ID, records),
		Timeline:        AttendanceTimeline(student.ID, records, StudentTimelineLength),
		AwaitingGrading: AwaitingGrading(student.Assignments),
		Stats:           SummarizeAssignments(student.Assignments),
		CanGrade:        canGrade,
	}, nil
}

func summarizeStudent(student models.Student, records []models.AttendanceRecord) dto.StudentSummary {
	return dto.StudentSummary{
		ID:             student.ID,
		Name:           student.Name,
		Email:          student.Email,
		Grade:          student.Grade,
		Avatar:         student.Avatar,
		AttendanceRate: AttendanceRate(student.ID, records),
		PendingCount:   len(PendingAssignments(student.Assignments, -1)),
	}
}
