package models

// Weekday is one of the five school days.
type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
)

// SchoolDays lists the weekdays in calendar order.
var SchoolDays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

// Valid returns true when the day is a school day.
func (d Weekday) Valid() bool {
	for _, day := range SchoolDays {
		if d == day {
			return true
		}
	}
	return false
}

// ScheduleEntry is static timetable data. Times are "HH:MM".
type ScheduleEntry struct {
	ID        string  `json:"id"`
	Day       Weekday `json:"day"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Subject   string  `json:"subject"`
	Room      string  `json:"room"`
	Teacher   string  `json:"teacher,omitempty"`
}

// DefaultTimeSlots are the hourly rows of the weekly timetable.
var DefaultTimeSlots = []string{"08:00", "09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00"}
