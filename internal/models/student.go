package models

// ParentContact is the guardian reachable for a student.
type ParentContact struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// Student is the owning aggregate for its assignments.
type Student struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Grade           string         `json:"grade"`
	Avatar          string         `json:"avatar"`
	Assignments     []Assignment   `json:"assignments"`
	BehavioralNotes []string       `json:"behavioralNotes,omitempty"`
	ParentContact   *ParentContact `json:"parentContact,omitempty"`
}

// Clone returns a deep copy so callers cannot reach store-owned slices.
func (s Student) Clone() Student {
	out := s
	if s.Assignments != nil {
		out.Assignments = make([]Assignment, len(s.Assignments))
		copy(out.Assignments, s.Assignments)
	}
	out.BehavioralNotes = cloneStrings(s.BehavioralNotes)
	if s.ParentContact != nil {
		contact := *s.ParentContact
		out.ParentContact = &contact
	}
	return out
}

// cloneStrings keeps an empty list empty rather than nil so it renders as [].
func cloneStrings(xs []string) []string {
	if xs == nil {
		return nil
	}
	out := make([]string, len(xs))
	copy(out, xs)
	return out
}

// FindAssignment returns the index of the assignment with the given id, or -1.
func (s Student) FindAssignment(id string) int {
	for i := range s.Assignments {
		if s.Assignments[i].ID == id {
			return i
		}
	}
	return -1
}

// CloneStudents deep-copies a roster.
func CloneStudents(in []Student) []Student {
	if in == nil {
		return nil
	}
	out := make([]Student, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
