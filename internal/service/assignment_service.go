package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/edutrack-api/internal/dto"
	"github.com/noah-isme/edutrack-api/internal/models"
	"github.com/noah-isme/edutrack-api/internal/repository"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

type assignmentStore interface {
	Student(id string) (models.Student, bool)
	UpdateAssignmentChecked(studentID, assignmentID string, patch models.AssignmentPatch, check repository.AssignmentCheck) (models.Student, bool, error)
}

// AssignmentServiceConfig tunes assignment updates.
type AssignmentServiceConfig struct {
	// StrictTransitions rejects status changes outside the hand-in flow.
	StrictTransitions bool
}

// AssignmentService lists, submits and grades assignments through the store.
type AssignmentService struct {
	store     assignmentStore
	validator *validator.Validate
	logger    *zap.Logger
	cfg       AssignmentServiceConfig
	now       func() time.Time
}

// NewAssignmentService constructs an AssignmentService.
func NewAssignmentService(store assignmentStore, validate *validator.Validate, cfg AssignmentServiceConfig, logger *zap.Logger) *AssignmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{store: store, validator: validate, logger: logger, cfg: cfg, now: time.Now}
}

// List returns the student's assignments narrowed by query. Stats always
// cover the full list.
func (s *AssignmentService) List(ctx context.Context, studentID string, query dto.AssignmentListQuery) (*dto.AssignmentListResponse, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	student, ok := s.store.Student(studentID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	filter := models.AssignmentFilter(query.Status)
	if filter == "" {
		filter = models.FilterAll
	}

	return &dto.AssignmentListResponse{
		StudentID:   student.ID,
		Assignments: FilterAssignments(student.Assignments, filter, query.Search),
		Stats:       SummarizeAssignments(student.Assignments),
	}, nil
}

// Update applies a partial update.
func (s *AssignmentService) Update(ctx context.Context, studentID, assignmentID string, req dto.UpdateAssignmentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	patch := models.AssignmentPatch{
		Title:       req.Title,
		Subject:     req.Subject,
		Grade:       req.Grade,
		Date:        req.Date,
		Description: req.Description,
	}
	if req.Status != nil {
		status := models.AssignmentStatus(*req.Status)
		patch.Status = &status
	}
	if patch.IsEmpty() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no fields to update")
	}
	return s.apply(ctx, studentID, assignmentID, patch)
}

// Submit hands the work in and stamps the update date.
func (s *AssignmentService) Submit(ctx context.Context, studentID, assignmentID string) (*models.Student, error) {
	status := models.AssignmentSubmitted
	date := models.FormatTimestamp(s.now())
	return s.apply(ctx, studentID, assignmentID, models.AssignmentPatch{Status: &status, Date: &date})
}

// Grade records a mark and moves the assignment to graded.
func (s *AssignmentService) Grade(ctx context.Context, studentID, assignmentID string, req dto.GradeAssignmentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	status := models.AssignmentGraded
	grade := strings.TrimSpace(req.Grade)
	return s.apply(ctx, studentID, assignmentID, models.AssignmentPatch{Grade: &grade, Status: &status})
}

func (s *AssignmentService) apply(_ context.Context, studentID, assignmentID string, patch models.AssignmentPatch) (*models.Student, error) {
	student, ok := s.store.Student(studentID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	if student.FindAssignment(assignmentID) < 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
	}

	updated, applied, err := s.store.UpdateAssignmentChecked(studentID, assignmentID, patch, s.checkPatch)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
	}

	fields := []zap.Field{zap.String("student_id", studentID), zap.String("assignment_id", assignmentID)}
	if patch.Status != nil {
		fields = append(fields, zap.String("status", string(*patch.Status)))
	}
	s.logger.Info("assignment updated", fields...)
	return &updated, nil
}

func (s *AssignmentService) checkPatch(current models.Assignment, patch models.AssignmentPatch) error {
	if patch.Date != nil {
		if _, err := models.ParseTimestamp(*patch.Date); err != nil {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid date %q", *patch.Date))
		}
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported status %q", *patch.Status))
	}

	// Checked on the merged result: a grade-only patch can blank a graded mark.
	merged := patch.Apply(current)
	if merged.Status == models.AssignmentGraded {
		grade := strings.TrimSpace(merged.Grade)
		if grade == "" || grade == models.UngradedMark {
			return appErrors.ErrGradeRequired
		}
	}
	if patch.Status != nil && s.cfg.StrictTransitions && !transitionAllowed(current.Status, *patch.Status) {
		return appErrors.Clone(appErrors.ErrInvalidTransition,
			fmt.Sprintf("cannot move assignment from %s to %s", current.Status, *patch.Status))
	}
	return nil
}

// transitionAllowed encodes the hand-in flow. Resubmitting graded work is allowed.
func transitionAllowed(from, to models.AssignmentStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case models.AssignmentPending:
		return to == models.AssignmentSubmitted
	case models.AssignmentSubmitted:
		return to == models.AssignmentGraded
	case models.AssignmentGraded:
		return to == models.AssignmentSubmitted
	default:
		return false
	}
}
