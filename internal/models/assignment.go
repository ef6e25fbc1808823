package models

// AssignmentStatus tracks where an assignment sits in the hand-in flow.
type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentSubmitted AssignmentStatus = "submitted"
	AssignmentGraded    AssignmentStatus = "graded"
)

// UngradedMark is stored in Grade until a teacher grades the work.
const UngradedMark = "-"

// Valid returns true when the status is a supported value.
func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentPending, AssignmentSubmitted, AssignmentGraded:
		return true
	default:
		return false
	}
}

// Assignment is owned by exactly one student. Date is an RFC3339 timestamp:
// the due date while pending, the last update otherwise.
type Assignment struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Subject     string           `json:"subject"`
	Grade       string           `json:"grade"`
	Date        string           `json:"date"`
	Status      AssignmentStatus `json:"status"`
	Description string           `json:"description,omitempty"`
}

// AssignmentPatch is a partial update; nil fields are retained.
type AssignmentPatch struct {
	Title       *string           `json:"title,omitempty"`
	Subject     *string           `json:"subject,omitempty"`
	Grade       *string           `json:"grade,omitempty"`
	Date        *string           `json:"date,omitempty"`
	Status      *AssignmentStatus `json:"status,omitempty"`
	Description *string           `json:"description,omitempty"`
}

// Apply merges the patch into a copy of the assignment.
func (p AssignmentPatch) Apply(a Assignment) Assignment {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Subject != nil {
		a.Subject = *p.Subject
	}
	if p.Grade != nil {
		a.Grade = *p.Grade
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	return a
}

// IsEmpty reports whether the patch changes nothing.
func (p AssignmentPatch) IsEmpty() bool {
	return p.Title == nil && p.Subject == nil && p.Grade == nil && p.Date == nil && p.Status == nil && p.Description == nil
}

// AssignmentFilter selects assignments by status; FilterAll matches everything.
type AssignmentFilter string

const (
	FilterAll       AssignmentFilter = "all"
	FilterPending   AssignmentFilter = AssignmentFilter(AssignmentPending)
	FilterSubmitted AssignmentFilter = AssignmentFilter(AssignmentSubmitted)
	FilterGraded    AssignmentFilter = AssignmentFilter(AssignmentGraded)
)

// Valid returns true when the filter is a supported value.
func (f AssignmentFilter) Valid() bool {
	switch f {
	case FilterAll, FilterPending, FilterSubmitted, FilterGraded:
		return true
	default:
		return false
	}
}

// AssignmentStats collapses submitted and graded into Completed.
type AssignmentStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}
