package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/edutrack-api/internal/dto"
	"github.com/noah-isme/edutrack-api/internal/models"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

type attendanceStore interface {
	Attendance() []models.AttendanceRecord
	RecordAttendance(record models.AttendanceRecord) (models.AttendanceRecord, error)
}

// AttendanceService records roll calls and reads attendance history.
type AttendanceService struct {
	store     attendanceStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAttendanceService constructs the attendance service.
func NewAttendanceService(store attendanceStore, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &AttendanceService{store: store, validator: validate, logger: logger}
	if err := svc.validator.RegisterValidation("iso_timestamp", func(fl validator.FieldLevel) bool {
		raw := strings.TrimSpace(fl.Field().String())
		if raw == "" {
			return true
		}
		_, err := models.ParseTimestamp(raw)
		return err == nil
	}); err != nil {
		panic(fmt.Sprintf("register iso_timestamp validation: %v", err))
	}
	return svc
}

type recordAttendanceInput struct {
	Date string `validate:"iso_timestamp"`
}

// Record appends a roll call. A blank date is stamped by the store.
func (s *AttendanceService) Record(ctx context.Context, req dto.RecordAttendanceRequest) (*models.AttendanceRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	if err := s.validator.Struct(recordAttendanceInput{Date: req.Date}); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "date must be an ISO-8601 timestamp")
	}
	return s.RecordRollCall(ctx, models.AttendanceRecord{
		Date:              strings.TrimSpace(req.Date),
		PresentStudentIDs: req.PresentStudentIDs,
	}, "manual")
}

// RecordRollCall is the single write path for manual saves and the live
// session countdown. source labels the log line.
func (s *AttendanceService) RecordRollCall(_ context.Context, record models.AttendanceRecord, source string) (*models.AttendanceRecord, error) {
	if record.PresentStudentIDs == nil {
		record.PresentStudentIDs = []string{}
	}
	stored, err := s.store.RecordAttendance(record)
	if err != nil {
		s.logger.Warn("attendance rejected", zap.String("source", source), zap.Error(err))
		return nil, err
	}
	s.logger.Info("attendance recorded",
		zap.String("source", source),
		zap.String("date", stored.Date),
		zap.Int("present", len(stored.PresentStudentIDs)),
	)
	return &stored, nil
}

// History returns up to limit records, oldest first. A non-positive limit
// returns everything.
func (s *AttendanceService) History(_ context.Context, limit int) []models.AttendanceRecord {
	records := s.store.Attendance()
	if records == nil {
		return []models.AttendanceRecord{}
	}
	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}
	return records
}
