package story

import "math"

const (
	// PointsPerCorrect is awarded for every correct story choice and quiz
	// answer.
	PointsPerCorrect = 20

	// MaxScore is the fixed denominator of the final percentage.
	MaxScore = 200
)

// Result is the outcome shown once the quiz is over.
type Result struct {
	StoryScore int
	QuizScore  int
	Total      int
	MaxScore   int
	Percentage float64
	Grade      string
	Message    string

	// XP is shown to the player only; it is never persisted.
	XP int
}

type gradeBand struct {
	min     float64
	grade   string
	message string
}

var gradeBands = []gradeBand{
	{90, "A+", "Fraud Detection Expert!"},
	{80, "A", "Excellent Awareness!"},
	{70, "B", "Good Knowledge!"},
	{60, "C", "Keep Learning!"},
}

// ComputeResult grades a finished game.
func ComputeResult(storyScore, quizScore int) Result {
	total := storyScore + quizScore
	percentage := float64(total) / MaxScore * 100

	grade, message := "D", "More Practice Needed"
	for _, b := range gradeBands {
		if percentage >= b.min {
			grade, message = b.grade, b.message
			break
		}
	}

	return Result{
		StoryScore: storyScore,
		QuizScore:  quizScore,
		Total:      total,
		MaxScore:   MaxScore,
		Percentage: percentage,
		Grade:      grade,
		Message:    message,
		XP:         int(math.Floor(float64(total) * 1.5)),
	}
}
