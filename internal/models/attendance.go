package models

// AttendanceRecord is one roll call. Absence is implicit.
type AttendanceRecord struct {
	Date              string   `json:"date"`
	PresentStudentIDs []string `json:"presentStudentIds"`
}

// Has reports whether the student was marked present.
func (r AttendanceRecord) Has(studentID string) bool {
	for _, id := range r.PresentStudentIDs {
		if id == studentID {
			return true
		}
	}
	return false
}

// Clone copies the present-id slice.
func (r AttendanceRecord) Clone() AttendanceRecord {
	out := r
	out.PresentStudentIDs = cloneStrings(r.PresentStudentIDs)
	return out
}

// RosterFilter narrows the attendance sheet to present or absent students.
type RosterFilter string

const (
	RosterAll     RosterFilter = "all"
	RosterPresent RosterFilter = "present"
	RosterAbsent  RosterFilter = "absent"
)

// Valid returns true when the filter is a supported value.
func (f RosterFilter) Valid() bool {
	switch f {
	case RosterAll, RosterPresent, RosterAbsent:
		return true
	default:
		return false
	}
}

// AttendanceMark is one entry of a student's attendance timeline.
type AttendanceMark struct {
	Date    string `json:"date"`
	Present bool   `json:"present"`
}

// CheckIn is a live-session log line.
type CheckIn struct {
	ID        string `json:"id"`
	StudentID string `json:"studentId"`
	Name      string `json:"name"`
	Time      string `json:"time"`
}
