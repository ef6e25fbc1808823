package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/edutrack-api/internal/dto"
	"github.com/noah-isme/edutrack-api/internal/models"
	"github.com/noah-isme/edutrack-api/internal/repository"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

// TeacherIdentity is the single demo teacher account.
var TeacherIdentity = models.User{
	ID:     "t-1",
	Name:   "Dr. Sarah Miller",
	Email:  "miller@school.edu",
	Role:   models.RoleTeacher,
	Avatar: "https://picsum.photos/seed/teacher/100/100",
}

type sessionStore interface {
	Students() []models.Student
	Student(id string) (models.Student, bool)
	Session() repository.Session
	Authenticate(user models.User)
	Deauthenticate()
	SelectView(view models.View)
	SelectStudent(id *string)
}

// SessionService handles sign-in and navigation state.
type SessionService struct {
	store     sessionStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSessionService constructs a SessionService.
func NewSessionService(store sessionStore, validate *validator.Validate, logger *zap.Logger) *SessionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{store: store, validator: validate, logger: logger}
}

// SignIn dispatches on the requested role.
func (s *SessionService) SignIn(ctx context.Context, req dto.SignInRequest) (dto.SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.SessionResponse{}, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	if models.Role(req.Role) == models.RoleTeacher {
		return s.SignInTeacher(ctx), nil
	}
	return s.SignInStudent(ctx, req.Email)
}

// SignInTeacher authenticates the fixed teacher identity.
func (s *SessionService) SignInTeacher(ctx context.Context) dto.SessionResponse {
	s.store.Authenticate(TeacherIdentity)
	s.logger.Info("teacher signed in", zap.String("user_id", TeacherIdentity.ID))
	return s.Current(ctx)
}

// SignInStudent matches email case-insensitively and falls back to the first
// student on the roster when nothing matches.
func (s *SessionService) SignInStudent(ctx context.Context, email string) (dto.SessionResponse, error) {
	students := s.store.Students()
	if len(students) == 0 {
		return dto.SessionResponse{}, appErrors.Clone(appErrors.ErrNotFound, "roster is empty")
	}

	chosen := students[0]
	needle := strings.TrimSpace(email)
	matched := false
	for _, student := range students {
		if needle != "" && strings.EqualFold(student.Email, needle) {
			chosen = student
			matched = true
			break
		}
	}
	if !matched && needle != "" {
		s.logger.Info("no student matches email, using first student", zap.String("email", needle))
	}

	s.store.Authenticate(models.UserFromStudent(chosen))
	s.logger.Info("student signed in", zap.String("user_id", chosen.ID))
	return s.Current(ctx), nil
}

// SignOut clears the session.
func (s *SessionService) SignOut(ctx context.Context) dto.SessionResponse {
	s.store.Deauthenticate()
	return s.Current(ctx)
}

// SelectView navigates to a known view.
func (s *SessionService) SelectView(ctx context.Context, req dto.SelectViewRequest) (dto.SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.SessionResponse{}, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	view := models.View(req.View)
	if !view.Valid() {
		return dto.SessionResponse{}, appErrors.Clone(appErrors.ErrValidation, "unknown view "+req.View)
	}
	s.store.SelectView(view)
	return s.Current(ctx), nil
}

// SelectStudent opens the drill-down for a roster student or closes it with nil.
func (s *SessionService) SelectStudent(ctx context.Context, req dto.SelectStudentRequest) (dto.SessionResponse, error) {
	if req.StudentID != nil {
		if _, ok := s.store.Student(*req.StudentID); !ok {
			return dto.SessionResponse{}, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
	}
	s.store.SelectStudent(req.StudentID)
	return s.Current(ctx), nil
}

// Current describes the session and the screen it resolves to.
func (s *SessionService) Current(_ context.Context) dto.SessionResponse {
	session := s.store.Session()
	hasSelection := false
	if session.SelectedStudentID != nil {
		_, hasSelection = s.store.Student(*session.SelectedStudentID)
	}

	resp := dto.SessionResponse{
		User:              session.User,
		View:              session.View,
		SelectedStudentID: session.SelectedStudentID,
		Screen:            ResolveScreen(session.User, session.View, hasSelection),
		Views:             []models.View{},
	}
	if session.User != nil {
		resp.Views = session.User.Role.Views()
	}
	return resp
}

// ResolveScreen maps the role and view to the page to render. Views a role
// cannot reach fall back to that role's dashboard.
func ResolveScreen(user *models.User, view models.View, hasSelection bool) models.Screen {
	if user == nil {
		return models.ScreenLogin
	}

	if user.Role == models.RoleStudent {
		switch view {
		case models.ViewSchedule:
			return models.ScreenSchedule
		case models.ViewAssignments:
			return models.ScreenAssignments
		case models.ViewMyProgress:
			return models.ScreenStudentDetail
		default:
			return models.ScreenStudentDashboard
		}
	}

	switch view {
	case models.ViewAttendance:
		return models.ScreenAttendanceSheet
	case models.ViewSchedule:
		return models.ScreenSchedule
	case models.ViewStudents:
		if hasSelection {
			return models.ScreenStudentDetail
		}
		return models.ScreenStudentDirectory
	case models.ViewPlanner:
		return models.ScreenActivityPlanner
	default:
		return models.ScreenTeacherDashboard
	}
}
