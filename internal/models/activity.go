package models

// ActivityStatus marks whether an activity has been run.
type ActivityStatus string

const (
	ActivityPlanned   ActivityStatus = "planned"
	ActivityCompleted ActivityStatus = "completed"
)

// Activity is a curriculum activity in the teacher's plan.
type Activity struct {
	ID                 string         `json:"id"`
	Title              string         `json:"title"`
	Subject            string         `json:"subject"`
	Description        string         `json:"description"`
	Duration           string         `json:"duration"`
	LearningObjectives []string       `json:"learningObjectives"`
	Materials          []string       `json:"materials"`
	Status             ActivityStatus `json:"status"`
}

// Clone copies the list fields.
func (a Activity) Clone() Activity {
	out := a
	out.LearningObjectives = cloneStrings(a.LearningObjectives)
	out.Materials = cloneStrings(a.Materials)
	return out
}

// ActivitySuggestion is a generated proposal; it has no id, subject or status
// until accepted.
type ActivitySuggestion struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	LearningObjectives []string `json:"learningObjectives"`
	Materials          []string `json:"materials"`
	Duration           string   `json:"duration"`
}

// ActivityFromSuggestion promotes a suggestion into a planned activity.
func ActivityFromSuggestion(s ActivitySuggestion, subject, id string) Activity {
	return Activity{
		ID:                 id,
		Title:              s.Title,
		Subject:            subject,
		Description:        s.Description,
		Duration:           s.Duration,
		LearningObjectives: append([]string{}, s.LearningObjectives...),
		Materials:          append([]string{}, s.Materials...),
		Status:             ActivityPlanned,
	}
}

// SuggestionRequest is the input of the generative planner.
type SuggestionRequest struct {
	Grade   string `json:"grade" validate:"required,max=16"`
	Subject string `json:"subject" validate:"required,max=64"`
	Topic   string `json:"topic" validate:"required,max=256"`
}
