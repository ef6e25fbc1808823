package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/edutrack-api/internal/dto"
	"github.com/noah-isme/edutrack-api/internal/models"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

const (
	defaultLiveSessionDuration = 10 * time.Minute
	checkInLogSize             = 5
	checkInTimeLayout          = "15:04:05"
)

// Ticker is the part of time.Ticker the countdown needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory builds the tick source for one live session.
type TickerFactory func(interval time.Duration) Ticker

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop() { t.t.Stop() }

// NewTimeTicker is the production TickerFactory.
func NewTimeTicker(interval time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(interval)}
}

type rollCallRecorder interface {
	RecordRollCall(ctx context.Context, record models.AttendanceRecord, source string) (*models.AttendanceRecord, error)
}

// LiveSessionConfig tunes the countdown.
type LiveSessionConfig struct {
	Duration     time.Duration
	TickInterval time.Duration
	Ticker       TickerFactory
}

type liveCountdown struct {
	id        string
	remaining int
	stop      chan struct{}
}

// LiveSessionService owns the attendance sheet selection and the optional
// live countdown. At most one countdown runs; it submits the selection through
// the recorder exactly once when it reaches zero.
type LiveSessionService struct {
	roster    rosterStore
	recorder  rollCallRecorder
	validator *validator.Validate
	logger    *zap.Logger
	cfg       LiveSessionConfig
	now       func() time.Time

	mu         sync.Mutex
	present    []string
	presentSet map[string]struct{}
	checkIns   []models.CheckIn
	countdown  *liveCountdown
	wg         sync.WaitGroup
}

// NewLiveSessionService constructs a LiveSessionService.
func NewLiveSessionService(roster rosterStore, recorder rollCallRecorder, validate *validator.Validate, cfg LiveSessionConfig, logger *zap.Logger) *LiveSessionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Duration <= 0 {
		cfg.Duration = defaultLiveSessionDuration
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}
	if cfg.Ticker == nil {
		cfg.Ticker = NewTimeTicker
	}
	return &LiveSessionService{
		roster:     roster,
		recorder:   recorder,
		validator:  validate,
		logger:     logger,
		cfg:        cfg,
		now:        time.Now,
		presentSet: make(map[string]struct{}),
	}
}

// Start opens a countdown, cancelling any countdown already running. The
// current selection is kept.
func (s *LiveSessionService) Start(ctx context.Context, req dto.StartLiveSessionRequest) (dto.LiveSessionStatus, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.LiveSessionStatus{}, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	seconds := int(s.cfg.Duration / time.Second)
	if req.DurationSeconds > 0 {
		seconds = req.DurationSeconds
	}

	countdown := &liveCountdown{id: uuid.NewString(), remaining: seconds, stop: make(chan struct{})}
	ticker := s.cfg.Ticker(s.cfg.TickInterval)

	s.mu.Lock()
	if previous := s.countdown; previous != nil {
		close(previous.stop)
		s.logger.Info("live session superseded", zap.String("session_id", previous.id))
	}
	s.countdown = countdown
	s.wg.Add(1)
	s.mu.Unlock()

	go s.run(countdown, ticker)
	s.logger.Info("live session started", zap.String("session_id", countdown.id), zap.Int("seconds", seconds))
	return s.Status(ctx), nil
}

func (s *LiveSessionService) run(countdown *liveCountdown, ticker Ticker) {
	defer s.wg.Done()
	defer ticker.Stop()
	for {
		select {
		case <-countdown.stop:
			return
		case <-ticker.C():
			if s.tick(countdown) {
				return
			}
		}
	}
}

// tick reports whether the countdown is over, either because it expired here
// or because it is no longer the current one.
func (s *LiveSessionService) tick(countdown *liveCountdown) bool {
	s.mu.Lock()
	if s.countdown != countdown {
		s.mu.Unlock()
		return true
	}
	countdown.remaining--
	if countdown.remaining > 0 {
		s.mu.Unlock()
		return false
	}
	s.countdown = nil
	present := s.takeSelectionLocked()
	s.mu.Unlock()

	s.logger.Info("live session expired, submitting", zap.String("session_id", countdown.id))
	if _, err := s.recorder.RecordRollCall(context.Background(), models.AttendanceRecord{PresentStudentIDs: present}, "live_session"); err != nil {
		s.logger.Error("auto-submit failed", zap.String("session_id", countdown.id), zap.Error(err))
	}
	return true
}

// Toggle flips a student's presence. Marking present logs a check-in.
func (s *LiveSessionService) Toggle(ctx context.Context, req dto.ToggleCheckInRequest) (dto.LiveSessionStatus, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.LiveSessionStatus{}, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	student, ok := s.roster.Student(req.StudentID)
	if !ok {
		return dto.LiveSessionStatus{}, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	s.mu.Lock()
	if _, present := s.presentSet[student.ID]; present {
		delete(s.presentSet, student.ID)
		s.present = removeID(s.present, student.ID)
	} else {
		s.presentSet[student.ID] = struct{}{}
		s.present = append(s.present, student.ID)
		entry := models.CheckIn{
			ID:        uuid.NewString(),
			StudentID: student.ID,
			Name:      student.Name,
			Time:      s.now().Format(checkInTimeLayout),
		}
		log := append([]models.CheckIn{entry}, s.checkIns...)
		if len(log) > checkInLogSize {
			log = log[:checkInLogSize]
		}
		s.checkIns = log
	}
	s.mu.Unlock()

	return s.Status(ctx), nil
}

// SelectAll marks everyone present, or nobody when everyone already is.
func (s *LiveSessionService) SelectAll(ctx context.Context) dto.LiveSessionStatus {
	students := s.roster.Students()

	s.mu.Lock()
	if len(s.presentSet) == len(students) {
		s.present = nil
		s.presentSet = make(map[string]struct{})
	} else {
		s.present = make([]string, 0, len(students))
		s.presentSet = make(map[string]struct{}, len(students))
		for _, student := range students {
			s.present = append(s.present, student.ID)
			s.presentSet[student.ID] = struct{}{}
		}
	}
	s.mu.Unlock()

	return s.Status(ctx)
}

// Save submits the selection now and ends any running countdown.
func (s *LiveSessionService) Save(ctx context.Context) (*models.AttendanceRecord, error) {
	s.mu.Lock()
	if s.countdown != nil {
		close(s.countdown.stop)
		s.countdown = nil
	}
	present := s.takeSelectionLocked()
	s.mu.Unlock()

	return s.recorder.RecordRollCall(ctx, models.AttendanceRecord{PresentStudentIDs: present}, "sheet")
}

// Cancel stops the countdown without recording. The selection is kept.
func (s *LiveSessionService) Cancel(ctx context.Context) dto.LiveSessionStatus {
	s.mu.Lock()
	if s.countdown != nil {
		close(s.countdown.stop)
		s.logger.Info("live session cancelled", zap.String("session_id", s.countdown.id))
		s.countdown = nil
	}
	s.mu.Unlock()
	return s.Status(ctx)
}

// Status reports the countdown and the current selection.
func (s *LiveSessionService) Status(_ context.Context) dto.LiveSessionStatus {
	total := len(s.roster.Students())

	s.mu.Lock()
	defer s.mu.Unlock()

	status := dto.LiveSessionStatus{
		PresentStudentIDs: append([]string{}, s.present...),
		PresentCount:      len(s.present),
		TotalStudents:     total,
		PresentRate:       percent(len(s.present), total),
		CheckIns:          append([]models.CheckIn{}, s.checkIns...),
	}
	if s.countdown != nil {
		status.Active = true
		status.SessionID = s.countdown.id
		status.RemainingSeconds = s.countdown.remaining
	} else {
		status.RemainingSeconds = int(s.cfg.Duration / time.Second)
	}
	status.Remaining = FormatCountdown(status.RemainingSeconds)
	return status
}

// Sheet returns the roster narrowed by name and presence, with the session status.
func (s *LiveSessionService) Sheet(ctx context.Context, query dto.AttendanceSheetQuery) (*dto.AttendanceSheetResponse, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	filter := models.RosterFilter(query.Filter)
	if filter == "" {
		filter = models.RosterAll
	}

	status := s.Status(ctx)
	present := make(map[string]struct{}, len(status.PresentStudentIDs))
	for _, id := range status.PresentStudentIDs {
		present[id] = struct{}{}
	}

	records := s.roster.Attendance()
	matches := FilterRoster(s.roster.Students(), query.Search, present, filter)
	rows := make([]dto.StudentSummary, 0, len(matches))
	for _, student := range matches {
		rows = append(rows, summarizeStudent(student, records))
	}
	return &dto.AttendanceSheetResponse{Session: status, Students: rows}, nil
}

// Close stops any countdown and waits for its goroutine to exit.
func (s *LiveSessionService) Close() {
	s.mu.Lock()
	if s.countdown != nil {
		close(s.countdown.stop)
		s.countdown = nil
	}
	s.mu.Unlock()
	s.wg.Wait()
}

// takeSelectionLocked returns the selection and clears the sheet.
func (s *LiveSessionService) takeSelectionLocked() []string {
	present := append([]string{}, s.present...)
	s.present = nil
	s.presentSet = make(map[string]struct{})
	s.checkIns = nil
	return present
}

// FormatCountdown renders seconds as m:ss.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func removeID(ids []string, target string) []string {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}
