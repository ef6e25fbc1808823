package repository

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/noah-isme/edutrack-api/internal/models"
	"github.com/noah-isme/edutrack-api/internal/seed"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

// ChangeKind names the mutation that produced a Change.
type ChangeKind string

const (
	ChangeActivityAdded      ChangeKind = "activity_added"
	ChangeAttendanceRecorded ChangeKind = "attendance_recorded"
	ChangeAssignmentUpdated  ChangeKind = "assignment_updated"
	ChangeAuthenticated      ChangeKind = "authenticated"
	ChangeDeauthenticated    ChangeKind = "deauthenticated"
	ChangeViewSelected       ChangeKind = "view_selected"
	ChangeStudentSelected    ChangeKind = "student_selected"
)

// Change is published to subscribers after a mutation has been applied.
type Change struct {
	Kind         ChangeKind
	StudentID    string
	AssignmentID string
	At           time.Time
}

// Listener receives store changes. It runs on the mutating goroutine after the
// store lock is released and must not block.
type Listener func(Change)

// Session is the navigation and identity state of the current user.
type Session struct {
	User              *models.User `json:"user,omitempty"`
	View              models.View  `json:"view"`
	SelectedStudentID *string      `json:"selectedStudentId,omitempty"`
}

// StateStore owns the canonical classroom collections and the session.
// Reads hand out deep copies; every mutation is applied under one lock so no
// caller can observe it half done.
type StateStore struct {
	mu         sync.RWMutex
	students   []models.Student
	index      map[string]int
	activities []models.Activity
	attendance []models.AttendanceRecord
	schedule   []models.ScheduleEntry

	user            *models.User
	view            models.View
	selectedStudent *string

	listenersMu  sync.Mutex
	listeners    map[int]Listener
	nextListener int

	now func() time.Time
}

// StateStoreOption customises the store.
type StateStoreOption func(*StateStore)

// WithClock overrides the time source used to stamp records and changes.
func WithClock(now func() time.Time) StateStoreOption {
	return func(s *StateStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStateStore seeds a store from the fixture.
func NewStateStore(fixture seed.Fixture, opts ...StateStoreOption) *StateStore {
	store := &StateStore{
		students:   models.CloneStudents(fixture.Students),
		activities: cloneActivities(fixture.Activities),
		attendance: cloneRecords(fixture.Attendance),
		schedule:   append([]models.ScheduleEntry(nil), fixture.Schedule...),
		view:       models.DefaultView,
		listeners:  make(map[int]Listener),
		now:        time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(store)
		}
	}
	store.reindex()
	return store
}

func (s *StateStore) reindex() {
	s.index = make(map[string]int, len(s.students))
	for i, student := range s.students {
		s.index[student.ID] = i
	}
}

// Subscribe registers a listener and returns a function that removes it.
func (s *StateStore) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	s.listenersMu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

func (s *StateStore) publish(change Change) {
	s.listenersMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(change)
	}
}

// Students returns a copy of the roster in insertion order.
func (s *StateStore) Students() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneStudents(s.students)
}

// Student returns one roster entry.
func (s *StateStore) Student(id string) (models.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.index[id]
	if !ok {
		return models.Student{}, false
	}
	return s.students[idx].Clone(), true
}

// StudentCount returns the roster size.
func (s *StateStore) StudentCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.students)
}

// Activities returns the plan, most recent first.
func (s *StateStore) Activities() []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneActivities(s.activities)
}

// Attendance returns every record in insertion (and therefore temporal) order.
func (s *StateStore) Attendance() []models.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.attendance)
}

// LatestAttendance returns the most recently recorded session, if any.
func (s *StateStore) LatestAttendance() (*models.AttendanceRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.attendance) == 0 {
		return nil, false
	}
	latest := s.attendance[len(s.attendance)-1].Clone()
	return &latest, true
}

// Schedule returns the static timetable.
func (s *StateStore) Schedule() []models.ScheduleEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ScheduleEntry(nil), s.schedule...)
}

// Session returns the current identity and navigation state.
func (s *StateStore) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session := Session{View: s.view}
	if s.user != nil {
		user := s.user.Clone()
		session.User = &user
	}
	if s.selectedStudent != nil {
		id := *s.selectedStudent
		session.SelectedStudentID = &id
	}
	return session
}

// AddActivity prepends the activity. Ids are not checked for uniqueness.
func (s *StateStore) AddActivity(activity models.Activity) {
	if activity.LearningObjectives == nil {
		activity.LearningObjectives = []string{}
	}
	if activity.Materials == nil {
		activity.Materials = []string{}
	}
	s.mu.Lock()
	next := make([]models.Activity, 0, len(s.activities)+1)
	next = append(next, activity.Clone())
	next = append(next, s.activities...)
	s.activities = next
	at := s.now()
	s.mu.Unlock()

	s.publish(Change{Kind: ChangeActivityAdded, At: at})
}

// RecordAttendance appends a session. Present ids must all belong to the
// roster; duplicates are collapsed and a blank date is stamped with now.
func (s *StateStore) RecordAttendance(record models.AttendanceRecord) (models.AttendanceRecord, error) {
	s.mu.Lock()
	seen := make(map[string]struct{}, len(record.PresentStudentIDs))
	present := make([]string, 0, len(record.PresentStudentIDs))
	var unknown []string
	for _, id := range record.PresentStudentIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := s.index[id]; !ok {
			unknown = append(unknown, id)
			continue
		}
		present = append(present, id)
	}
	if len(unknown) > 0 {
		s.mu.Unlock()
		return models.AttendanceRecord{}, appErrors.Clone(appErrors.ErrUnknownStudent,
			fmt.Sprintf("unknown student ids: %s", strings.Join(unknown, ", ")))
	}

	at := s.now()
	stored := models.AttendanceRecord{Date: record.Date, PresentStudentIDs: present}
	if strings.TrimSpace(stored.Date) == "" {
		stored.Date = models.FormatTimestamp(at)
	}
	s.attendance = append(s.attendance, stored)
	s.mu.Unlock()

	s.publish(Change{Kind: ChangeAttendanceRecorded, At: at})
	return stored.Clone(), nil
}

// AssignmentCheck vets a patch against the assignment it would replace.
type AssignmentCheck func(current models.Assignment, patch models.AssignmentPatch) error

// UpdateAssignment merges patch into one assignment. Unknown student or
// assignment ids leave the store untouched and report false. When the session
// user is that student the embedded snapshot is refreshed in the same step.
func (s *StateStore) UpdateAssignment(studentID, assignmentID string, patch models.AssignmentPatch) (models.Student, bool) {
	updated, applied, _ := s.UpdateAssignmentChecked(studentID, assignmentID, patch, nil)
	return updated, applied
}

// UpdateAssignmentChecked is UpdateAssignment with check run under the write
// lock, so concurrent patches are vetted against the state they replace. A
// check error leaves the store untouched.
func (s *StateStore) UpdateAssignmentChecked(studentID, assignmentID string, patch models.AssignmentPatch, check AssignmentCheck) (models.Student, bool, error) {
	s.mu.Lock()
	idx, ok := s.index[studentID]
	if !ok {
		s.mu.Unlock()
		return models.Student{}, false, nil
	}
	current := s.students[idx]
	pos := current.FindAssignment(assignmentID)
	if pos < 0 {
		s.mu.Unlock()
		return models.Student{}, false, nil
	}

	if check != nil {
		if err := check(current.Assignments[pos], patch); err != nil {
			s.mu.Unlock()
			return models.Student{}, true, err
		}
	}

	updated := current.Clone()
	updated.Assignments[pos] = patch.Apply(updated.Assignments[pos])

	next := make([]models.Student, len(s.students))
	copy(next, s.students)
	next[idx] = updated
	s.students = next

	if s.user != nil && s.user.Role == models.RoleStudent && s.user.ID == studentID {
		user := *s.user
		snapshot := updated.Clone()
		user.StudentData = &snapshot
		s.user = &user
	}
	at := s.now()
	s.mu.Unlock()

	s.publish(Change{Kind: ChangeAssignmentUpdated, StudentID: studentID, AssignmentID: assignmentID, At: at})
	return updated.Clone(), true, nil
}

// Authenticate replaces the session user and lands on the default view.
func (s *StateStore) Authenticate(user models.User) {
	s.mu.Lock()
	stored := user.Clone()
	s.user = &stored
	s.view = models.DefaultView
	at := s.now()
	s.mu.Unlock()

	s.publish(Change{Kind: ChangeAuthenticated, StudentID: studentIDOf(user), At: at})
}

// Deauthenticate clears the session user and any drill-down selection.
func (s *StateStore) Deauthenticate() {
	s.mu.Lock()
	s.user = nil
	s.selectedStudent = nil
	at := s.now()
	s.mu.Unlock()

	s.publish(Change{Kind: ChangeDeauthenticated, At: at})
}

// SelectView changes the navigation target.
func (s *StateStore) SelectView(view models.View) {
	s.mu.Lock()
	s.view = view
	at := s.now()
	s.mu.Unlock()

	s.publish(Change{Kind: ChangeViewSelected, At: at})
}

// SelectStudent sets or, with nil, clears the drill-down student.
func (s *StateStore) SelectStudent(id *string) {
	s.mu.Lock()
	var selected string
	if id == nil {
		s.selectedStudent = nil
	} else {
		selected = *id
		s.selectedStudent = &selected
	}
	at := s.now()
	s.mu.Unlock()

	s.publish(Change{Kind: ChangeStudentSelected, StudentID: selected, At: at})
}

func studentIDOf(user models.User) string {
	if user.Role == models.RoleStudent {
		return user.ID
	}
	return ""
}

func cloneActivities(in []models.Activity) []models.Activity {
	if in == nil {
		return nil
	}
	out := make([]models.Activity, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

func cloneRecords(in []models.AttendanceRecord) []models.AttendanceRecord {
	if in == nil {
		return nil
	}
	out := make([]models.AttendanceRecord, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
