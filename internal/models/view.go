package models

// View is a navigation target.
type View string

const (
	ViewDashboard   View = "dashboard"
	ViewAttendance  View = "attendance"
	ViewStudents    View = "students"
	ViewPlanner     View = "planner"
	ViewMyProgress  View = "my-progress"
	ViewSchedule    View = "schedule"
	ViewAssignments View = "assignments"
)

// DefaultView is where every sign-in lands.
const DefaultView = ViewDashboard

// Valid returns true when the view is known.
func (v View) Valid() bool {
	switch v {
	case ViewDashboard, ViewAttendance, ViewStudents, ViewPlanner, ViewMyProgress, ViewSchedule, ViewAssignments:
		return true
	default:
		return false
	}
}

// Views lists the navigation targets offered to a role.
func (r Role) Views() []View {
	if r == RoleStudent {
		return []View{ViewDashboard, ViewAssignments, ViewSchedule, ViewMyProgress}
	}
	return []View{ViewDashboard, ViewAttendance, ViewStudents, ViewPlanner, ViewSchedule}
}

// Screen is the concrete page the routing layer renders.
type Screen string

const (
	ScreenLogin            Screen = "login"
	ScreenTeacherDashboard Screen = "teacher-dashboard"
	ScreenStudentDashboard Screen = "student-dashboard"
	ScreenAttendanceSheet  Screen = "attendance-sheet"
	ScreenStudentDirectory Screen = "student-directory"
	ScreenStudentDetail    Screen = "student-detail"
	ScreenActivityPlanner  Screen = "activity-planner"
	ScreenSchedule         Screen = "schedule"
	ScreenAssignments      Screen = "assignments"
)
