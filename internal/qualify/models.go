package qualify

// Question is one entry of the fixed qualification quiz.
type Question struct {
	ID                 string   `json:"id"`
	Prompt             string   `json:"prompt"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"-"` // never serialized toward a view
}

// DefaultQuestions returns the five fixed staff-qualification questions.
// Numbering matters for display; scoring is order-independent.
func DefaultQuestions() []Question {
	return []Question{
		{
			ID:     "q1",
			Prompt: "What is your approach to handling confidential complaints?",
			Options: []string{
				"Discuss them with colleagues for advice",
				"Keep strictly confidential",
				"Share details with the complainant's department",
				"Summarize them in team meetings",
			},
			CorrectOptionIndex: 1,
		},
		{
			ID:     "q2",
			Prompt: "How would you handle a complaint that requires immediate attention?",
			Options: []string{
				"Wait for the weekly review",
				"Forward it to another department",
				"Handle complaints in the order received",
				"Assess urgency then act",
			},
			CorrectOptionIndex: 3,
		},
		{
			ID:     "q3",
			Prompt: "What is the most important quality for a staff member handling complaints?",
			Options: []string{
				"Technical expertise",
				"Speed of resolution",
				"Strict rule enforcement",
				"Empathy and patience",
			},
			CorrectOptionIndex: 3,
		},
		{
			ID:     "q4",
			Prompt: "How do you ensure fair treatment in complaint resolution?",
			Options: []string{
				"Follow established protocols",
				"Rely on personal judgment",
				"Prioritize senior complainants",
				"Resolve the easiest cases first",
			},
			CorrectOptionIndex: 0,
		},
		{
			ID:     "q5",
			Prompt: "What would you do if you cannot resolve a complaint?",
			Options: []string{
				"Escalate it to a supervisor",
				"Document the steps already taken",
				"Ask the complainant for more details",
				"All of the above",
			},
			CorrectOptionIndex: 3,
		},
	}
}

// DefaultThresholdPercent is the inclusive pass mark.
const DefaultThresholdPercent = 70

// Result is the outcome of a scored attempt.
type Result struct {
	Score            float64 `json:"score"`
	CorrectCount     int     `json:"correctCount"`
	TotalQuestions   int     `json:"totalQuestions"`
	ThresholdPercent int     `json:"thresholdPercent"`
	Passed           bool    `json:"passed"`
	Message          string  `json:"message"`
}

// Completion is emitted after a passing attempt; the caller persists it via
// the service layer.
type Completion struct {
	RequestID string  `json:"requestId"`
	Score     float64 `json:"score"`
}
