package assessment

// Choice is one of the five fixed answer options for every question.
type Choice struct {
	Label  string
	Weight int
}

// Choices returns the Likert options in ascending weight order.
func Choices() []Choice {
	return []Choice{
		{Label: "Strongly Disagree", Weight: 1},
		{Label: "Disagree", Weight: 2},
		{Label: "Neutral", Weight: 3},
		{Label: "Agree", Weight: 4},
		{Label: "Strongly Agree (Optimal)", Weight: 5},
	}
}

const (
	// MinWeight and MaxWeight bound the per-question contribution.
	MinWeight = 1
	MaxWeight = 5
)
