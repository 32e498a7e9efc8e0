package selftrack

// Feedback is the qualitative review of a portfolio. It is transient: never persisted.
type Feedback struct {
	Feedback   []string `json:"feedback"`
	Motivation string   `json:"motivation"`
}

// FallbackFeedback is returned instead of a real review when none could be obtained.
func FallbackFeedback() Feedback {
	return Feedback{
		Feedback:   []string{"Complete your profile to get AI feedback."},
		Motivation: "Keep chasing your dreams!",
	}
}
