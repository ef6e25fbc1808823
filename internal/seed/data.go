package seed

import "github.com/noah-isme/edutrack-api/internal/models"

type assignmentTemplate struct {
	Title       string
	Subject     string
	Description string
}

var assignmentTemplates = []assignmentTemplate{
	{Title: "Cell Theory Essay", Subject: "Science", Description: "A 500-word essay on the origins of cell theory."},
	{Title: "Algebra Quiz 1", Subject: "Math", Description: "Quadratic equations and linear functions."},
	{Title: "Photosynthesis Lab Report", Subject: "Science", Description: "Documenting the results of the light intensity experiment."},
	{Title: "Renaissance Art Analysis", Subject: "History", Description: "Analyze the techniques of Da Vinci and Michelangelo."},
	{Title: "Shakespearean Sonnet", Subject: "English", Description: "Write an original sonnet in iambic pentameter."},
	{Title: "JavaScript Functions", Subject: "Computer Science", Description: "Implement 5 reusable utility functions."},
	{Title: "Map of South America", Subject: "Geography", Description: "Label all countries and major mountain ranges."},
	{Title: "Chemistry Equation Balancing", Subject: "Science", Description: "Balance 20 complex chemical equations."},
	{Title: "Macbeth Character Study", Subject: "English", Description: "A deep dive into the descent of Lady Macbeth."},
	{Title: "Pythagorean Theorem", Subject: "Math", Description: "Solve 15 real-world problems using the theorem."},
}

var gradeMarks = []string{"A", "A-", "B+", "B", "B-", "C+", "95%", "88%", "91%", "75%"}

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda", "David", "Elizabeth",
	"William", "Barbara", "Richard", "Susan", "Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen",
	"Christopher", "Nancy", "Daniel", "Lisa", "Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra",
	"Donald", "Ashley", "Steven", "Kimberly", "Paul", "Emily", "Andrew", "Donna", "Joshua", "Michelle",
	"Kenneth", "Dorothy", "Kevin", "Carol", "Brian", "Amanda", "George", "Melissa", "Edward", "Deborah",
	"Ronald", "Stephanie", "Jason", "Rebecca", "Gary", "Sharon", "Timothy", "Laura", "Jeffrey", "Cynthia",
	"Ryan", "Kathleen", "Jacob", "Amy", "Gary", "Shirley", "Nicholas", "Angela", "Eric", "Helen",
	"Stephen", "Anna", "Jonathan", "Brenda", "Larry", "Pamela", "Justin", "Nicole", "Scott", "Emma",
	"Brandon", "Samantha", "Frank", "Katherine", "Benjamin", "Christine", "Gregory", "Debra", "Samuel", "Rachel",
	"Raymond", "Catherine", "Patrick", "Carolyn", "Alexander", "Janet", "Jack", "Ruth", "Dennis", "Maria",
	"Jerry", "Heather",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
	"Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson",
	"Walker", "Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
	"Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell", "Carter", "Roberts",
	"Gomez", "Phillips", "Evans", "Turner", "Diaz", "Parker", "Cruz", "Edwards", "Collins", "Reyes",
	"Stewart", "Morris", "Morales", "Murphy", "Cook", "Rogers", "Gutierrez", "Ortiz", "Morgan", "Cooper",
	"Peterson", "Bailey", "Reed", "Kelly", "Howard", "Ramos", "Kim", "Cox", "Ward", "Richardson",
	"Watson", "Brooks", "Chavez", "Wood", "James", "Bennett", "Gray", "Mendoza", "Ruiz", "Hughes",
	"Price", "Alvarez", "Castillo", "Sanders", "Patel", "Myers", "Long", "Ross", "Foster", "Jimenez",
}

var classGroups = []string{"9A", "9B", "10A", "10B", "11A", "12A"}

var behaviorLogs = []string{
	"Participated excellently in group discussions today.",
	"Turned in homework late but showed good understanding of the material.",
	"Helped a classmate with a difficult math problem.",
	"Was slightly distracted during the afternoon session.",
	"Showed great leadership during the team sports activity.",
	"Consistently arrives on time and prepared for lessons.",
	"Exhibited creative thinking during the science project phase.",
	"Needs to focus more on independent study time.",
}

// Schedule returns the fixed weekly timetable.
func Schedule() []models.ScheduleEntry {
	return []models.ScheduleEntry{
		{ID: "sc-1", Day: models.Monday, StartTime: "08:00", EndTime: "09:00", Subject: "Mathematics", Room: "302A", Teacher: "Prof. X"},
		{ID: "sc-2", Day: models.Monday, StartTime: "09:15", EndTime: "10:15", Subject: "Science", Room: "Lab 1", Teacher: "Dr. Miller"},
		{ID: "sc-3", Day: models.Monday, StartTime: "11:00", EndTime: "12:00", Subject: "English", Room: "101B", Teacher: "Ms. Wright"},
		{ID: "sc-4", Day: models.Tuesday, StartTime: "08:00", EndTime: "09:00", Subject: "History", Room: "204", Teacher: "Mr. Brown"},
		{ID: "sc-5", Day: models.Tuesday, StartTime: "10:00", EndTime: "11:30", Subject: "Art", Room: "Studio 1", Teacher: "Ms. Palette"},
		{ID: "sc-6", Day: models.Wednesday, StartTime: "09:00", EndTime: "10:00", Subject: "Mathematics", Room: "302A", Teacher: "Prof. X"},
		{ID: "sc-7", Day: models.Wednesday, StartTime: "10:15", EndTime: "11:15", Subject: "Computer Science", Room: "IT Hub", Teacher: "Mr. Gates"},
		{ID: "sc-8", Day: models.Thursday, StartTime: "08:00", EndTime: "09:30", Subject: "Science", Room: "Lab 1", Teacher: "Dr. Miller"},
		{ID: "sc-9", Day: models.Thursday, StartTime: "11:00", EndTime: "12:30", Subject: "Physical Ed", Room: "Main Gym", Teacher: "Coach K"},
		{ID: "sc-10", Day: models.Friday, StartTime: "09:00", EndTime: "10:00", Subject: "English", Room: "101B", Teacher: "Ms. Wright"},
		{ID: "sc-11", Day: models.Friday, StartTime: "13:00", EndTime: "14:30", Subject: "Geography", Room: "202", Teacher: "Ms. Map"},
	}
}

// Activities returns the starting curriculum plan.
func Activities() []models.Activity {
	return []models.Activity{
		{
			ID:                 "act-1",
			Title:              "Photosynthesis Lab",
			Subject:            "Science",
			Description:        "Observe oxygen production in aquatic plants under different light conditions.",
			Duration:           "60 mins",
			LearningObjectives: []string{"Understand the Calvin cycle", "Measure rate of photosynthesis"},
			Materials:          []string{"Elodea plants", "Beakers", "Lamp", "Funnel"},
			Status:             models.ActivityPlanned,
		},
		{
			ID:                 "act-2",
			Title:              "Algebraic Equations Intro",
			Subject:            "Math",
			Description:        "Introduction to solving multi-step linear equations.",
			Duration:           "45 mins",
			LearningObjectives: []string{"Variable isolation", "Balance method"},
			Materials:          []string{"Whiteboard markers", "Worksheets"},
			Status:             models.ActivityCompleted,
		},
		{
			ID:                 "act-3",
			Title:              "Shakespearean Sonnets",
			Subject:            "English",
			Description:        "Analyze the structure and imagery of Sonnet 18.",
			Duration:           "50 mins",
			LearningObjectives: []string{"Identify iambic pentameter", "Understand volta"},
			Materials:          []string{"Sonnets handout", "Highlighters"},
			Status:             models.ActivityPlanned,
		},
	}
}
