// Package password scores password strength for the registration screens.
// Scoring is purely compositional; the backend enforces its own policy.
package password

import "unicode"

// Strength labels for a composition score.
const (
	Weak   = "Weak"
	Fair   = "Fair"
	Good   = "Good"
	Strong = "Strong"
)

// Score computes a 0-100 strength score in steps of 25: one step each for
// length of at least 8, an uppercase letter, a digit, and a symbol.
func Score(pw string) int {
	score := 0
	if len(pw) >= 8 {
		score += 25
	}

	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasSymbol = true
		}
	}

	if hasUpper {
		score += 25
	}
	if hasDigit {
		score += 25
	}
	if hasSymbol {
		score += 25
	}
	return score
}

// Classify maps a score to its label. Boundaries are inclusive on the lower
// label: 25 is Weak, 50 is Fair, 75 is Good.
func Classify(score int) string {
	switch {
	case score <= 25:
		return Weak
	case score <= 50:
		return Fair
	case score <= 75:
		return Good
	default:
		return Strong
	}
}
