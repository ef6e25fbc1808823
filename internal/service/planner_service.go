package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/edutrack-api/internal/dto"
	"github.com/noah-isme/edutrack-api/internal/models"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
	"github.com/noah-isme/edutrack-api/pkg/jobs"
	"github.com/noah-isme/edutrack-api/pkg/middleware/requestid"
)

// PlannerJobType identifies suggestion generation jobs on the queue.
const PlannerJobType = "planner.generate"

const (
	plannerCachePrefix    = "planner"
	plannerFailedNotice   = "Failed to generate ideas. Please check your API key."
	plannerEmptyNotice    = "No ideas came back for this topic. Try rephrasing it."
	defaultPlannerTimeout = 30 * time.Second
)

// SuggestionGenerator produces activity suggestions for a topic.
type SuggestionGenerator interface {
	Generate(ctx context.Context, req models.SuggestionRequest) ([]models.ActivitySuggestion, error)
}

type activityStore interface {
	Activities() []models.Activity
	AddActivity(activity models.Activity)
}

type suggestionQueue interface {
	Enqueue(job jobs.Job) error
}

// PlannerServiceConfig controls suggestion caching.
type PlannerServiceConfig struct {
	CacheTTL time.Duration
}

// PlannerService tracks the latest suggestion request. Only the newest
// token is live; results for older tokens are dropped when they arrive.
type PlannerService struct {
	store     activityStore
	queue     suggestionQueue
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	cfg       PlannerServiceConfig

	mu      sync.Mutex
	current *dto.SuggestionResult
}

// NewPlannerService constructs a PlannerService. The queue is attached with UseQueue.
func NewPlannerService(store activityStore, cache *CacheService, metrics *MetricsService, validate *validator.Validate, cfg PlannerServiceConfig, logger *zap.Logger) *PlannerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlannerService{
		store:     store,
		cache:     cache,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		cfg:       cfg,
	}
}

// UseQueue attaches the dispatcher that runs generation jobs.
func (s *PlannerService) UseQueue(queue suggestionQueue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = queue
}

// Request starts a suggestion request and returns its token. A cached
// result for the same normalised topic is returned ready.
func (s *PlannerService) Request(ctx context.Context, req models.SuggestionRequest) (*dto.SuggestionResult, error) {
	req = models.SuggestionRequest{
		Grade:   strings.TrimSpace(req.Grade),
		Subject: strings.TrimSpace(req.Subject),
		Topic:   strings.TrimSpace(req.Topic),
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	s.mu.Lock()
	if s.current != nil && s.current.State == dto.SuggestionPending && sameRequest(s.current.Request, req) {
		s.mu.Unlock()
		return nil, appErrors.Clone(appErrors.ErrConflict, "an identical request is already being generated")
	}
	result := &dto.SuggestionResult{
		Token:       uuid.NewString(),
		State:       dto.SuggestionPending,
		Request:     req,
		Suggestions: []models.ActivitySuggestion{},
	}
	s.current = result
	queue := s.queue
	s.mu.Unlock()

	var cached []models.ActivitySuggestion
	hit, err := s.cache.Get(ctx, s.cacheKey(req), &cached)
	if err != nil {
		s.logger.Warn("planner cache lookup failed", zap.Error(err))
	}
	if hit {
		s.metrics.ObservePlannerJob(PlannerOutcomeCached, 0)
		return s.finish(result.Token, cached, true)
	}

	if queue == nil {
		return nil, appErrors.Clone(appErrors.ErrInternal, "suggestion queue not configured")
	}
	if err := queue.Enqueue(jobs.Job{ID: result.Token, Type: PlannerJobType, Payload: req}); err != nil {
		s.logger.Error("failed to enqueue suggestion job", zap.String("token", result.Token), zap.Error(err))
		s.fail(result.Token, plannerFailedNotice)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to queue suggestion request")
	}

	s.logger.Info("suggestion request queued",
		zap.String("token", result.Token),
		zap.String("request_id", requestid.FromContext(ctx)),
		zap.String("grade", req.Grade),
		zap.String("subject", req.Subject),
	)
	return s.Result(ctx, result.Token)
}

// Result returns the state of a request. Superseded tokens are not found.
func (s *PlannerService) Result(_ context.Context, token string) (*dto.SuggestionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.current.Token != token {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "suggestion request not found or superseded")
	}
	return cloneResult(s.current), nil
}

// Latest returns the newest request, if any.
func (s *PlannerService) Latest(_ context.Context) (*dto.SuggestionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no suggestion request yet")
	}
	return cloneResult(s.current), nil
}

// Dismiss clears the notice of a finished request.
func (s *PlannerService) Dismiss(ctx context.Context, token string) (*dto.SuggestionResult, error) {
	s.mu.Lock()
	if s.current != nil && s.current.Token == token {
		s.current.Notice = ""
	}
	s.mu.Unlock()
	return s.Result(ctx, token)
}

// Accept promotes one suggestion into a planned activity under the request's
// subject and removes it from the list.
func (s *PlannerService) Accept(ctx context.Context, token string, req dto.AcceptSuggestionRequest) (*models.Activity, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	s.mu.Lock()
	if s.current == nil || s.current.Token != token {
		s.mu.Unlock()
		return nil, appErrors.Clone(appErrors.ErrNotFound, "suggestion request not found or superseded")
	}
	if s.current.State != dto.SuggestionReady {
		s.mu.Unlock()
		return nil, appErrors.Clone(appErrors.ErrConflict, "suggestions are not ready")
	}
	index := *req.Index
	if index >= len(s.current.Suggestions) {
		s.mu.Unlock()
		return nil, appErrors.Clone(appErrors.ErrNotFound, "suggestion not found")
	}
	suggestion := s.current.Suggestions[index]
	remaining := make([]models.ActivitySuggestion, 0, len(s.current.Suggestions)-1)
	remaining = append(remaining, s.current.Suggestions[:index]...)
	remaining = append(remaining, s.current.Suggestions[index+1:]...)
	s.current.Suggestions = remaining
	subject := s.current.Request.Subject
	s.mu.Unlock()

	activity := models.ActivityFromSuggestion(suggestion, subject, uuid.NewString())
	s.store.AddActivity(activity)
	s.logger.Info("suggestion accepted", zap.String("activity_id", activity.ID), zap.String("title", activity.Title))
	return &activity, nil
}

// AddActivity adds a hand-written activity to the plan.
func (s *PlannerService) AddActivity(_ context.Context, req dto.AddActivityRequest) (*models.Activity, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	status := models.ActivityStatus(req.Status)
	if status == "" {
		status = models.ActivityPlanned
	}
	activity := models.Activity{
		ID:                 uuid.NewString(),
		Title:              strings.TrimSpace(req.Title),
		Subject:            strings.TrimSpace(req.Subject),
		Description:        req.Description,
		Duration:           req.Duration,
		LearningObjectives: append([]string{}, req.LearningObjectives...),
		Materials:          append([]string{}, req.Materials...),
		Status:             status,
	}
	s.store.AddActivity(activity)
	return &activity, nil
}

// Activities lists the plan, newest first.
func (s *PlannerService) Activities(_ context.Context) []models.Activity {
	return s.store.Activities()
}

func (s *PlannerService) isCurrent(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil && s.current.Token == token
}

func (s *PlannerService) finish(token string, suggestions []models.ActivitySuggestion, cached bool) (*dto.SuggestionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.current.Token != token {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "suggestion request superseded")
	}
	if suggestions == nil {
		suggestions = []models.ActivitySuggestion{}
	}
	s.current.State = dto.SuggestionReady
	s.current.Suggestions = suggestions
	s.current.Cached = cached
	if len(suggestions) == 0 {
		s.current.Notice = plannerEmptyNotice
	}
	return cloneResult(s.current), nil
}

func (s *PlannerService) fail(token, notice string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.current.Token != token {
		return false
	}
	s.current.State = dto.SuggestionFailed
	s.current.Suggestions = []models.ActivitySuggestion{}
	s.current.Notice = notice
	return true
}

// ClearCache drops every cached suggestion list so the next request for a
// topic goes back to the generator.
func (s *PlannerService) ClearCache(ctx context.Context) error {
	if err := s.cache.Invalidate(ctx, plannerCachePrefix+":*"); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear suggestion cache")
	}
	s.logger.Info("suggestion cache cleared")
	return nil
}

func (s *PlannerService) cacheKey(req models.SuggestionRequest) string {
	return s.cache.Key(plannerCachePrefix, req.Grade, req.Subject, req.Topic)
}

func sameRequest(a, b models.SuggestionRequest) bool {
	return strings.EqualFold(a.Grade, b.Grade) &&
		strings.EqualFold(a.Subject, b.Subject) &&
		strings.EqualFold(strings.Join(strings.Fields(a.Topic), " "), strings.Join(strings.Fields(b.Topic), " "))
}

func cloneResult(in *dto.SuggestionResult) *dto.SuggestionResult {
	out := *in
	out.Suggestions = append([]models.ActivitySuggestion{}, in.Suggestions...)
	return &out
}

// PlannerWorker bridges queue jobs to the SuggestionGenerator.
type PlannerWorker struct {
	planner   *PlannerService
	generator SuggestionGenerator
	timeout   time.Duration
	logger    *zap.Logger
}

// NewPlannerWorker constructs a worker.
func NewPlannerWorker(planner *PlannerService, generator SuggestionGenerator, timeout time.Duration, logger *zap.Logger) *PlannerWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultPlannerTimeout
	}
	return &PlannerWorker{planner: planner, generator: generator, timeout: timeout, logger: logger}
}

// Handle processes a queue job. Generation failures are recorded on the
// request rather than returned, so the queue does not retry them.
func (w *PlannerWorker) Handle(ctx context.Context, job jobs.Job) error {
	req, ok := job.Payload.(models.SuggestionRequest)
	if !ok {
		w.logger.Error("unexpected planner payload", zap.String("job_id", job.ID), zap.String("type", job.Type))
		return nil
	}
	if !w.planner.isCurrent(job.ID) {
		w.planner.metrics.ObservePlannerJob(PlannerOutcomeStale, 0)
		w.logger.Debug("skipping superseded suggestion job", zap.String("token", job.ID))
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	start := time.Now()
	suggestions, err := w.generator.Generate(ctx, req)
	duration := time.Since(start)
	if err != nil {
		w.logger.Warn("suggestion generation failed", zap.String("token", job.ID), zap.Error(err))
		if w.planner.fail(job.ID, plannerFailedNotice) {
			w.planner.metrics.ObservePlannerJob(PlannerOutcomeFailed, duration)
		} else {
			w.planner.metrics.ObservePlannerJob(PlannerOutcomeStale, duration)
		}
		return nil
	}

	if len(suggestions) > 0 {
		if err := w.planner.cache.Set(ctx, w.planner.cacheKey(req), suggestions, w.planner.cfg.CacheTTL); err != nil {
			w.logger.Info("suggestions served uncached", zap.String("token", job.ID))
		}
	}
	if _, err := w.planner.finish(job.ID, suggestions, false); err != nil {
		if errors.Is(err, appErrors.ErrNotFound) {
			w.planner.metrics.ObservePlannerJob(PlannerOutcomeStale, duration)
			w.logger.Info("discarding superseded suggestions", zap.String("token", job.ID))
			return nil
		}
		return err
	}
	w.planner.metrics.ObservePlannerJob(PlannerOutcomeReady, duration)
	w.logger.Info("suggestions ready", zap.String("token", job.ID), zap.Int("count", len(suggestions)))
	return nil
}
