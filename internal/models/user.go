package models

// Role selects which set of views a user sees.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Valid returns true when the role is supported.
func (r Role) Valid() bool {
	return r == RoleTeacher || r == RoleStudent
}

// User is the authenticated session actor. StudentData is set for students
// and must track the canonical roster entry.
type User struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        Role     `json:"role"`
	Avatar      string   `json:"avatar"`
	StudentData *Student `json:"studentData,omitempty"`
}

// Clone deep-copies the embedded student snapshot.
func (u User) Clone() User {
	out := u
	if u.StudentData != nil {
		snapshot := u.StudentData.Clone()
		out.StudentData = &snapshot
	}
	return out
}

// UserFromStudent builds the session user for a student sign-in.
func UserFromStudent(s Student) User {
	snapshot := s.Clone()
	return User{
		ID:          s.ID,
		Name:        s.Name,
		Email:       s.Email,
		Role:        RoleStudent,
		Avatar:      s.Avatar,
		StudentData: &snapshot,
	}
}
