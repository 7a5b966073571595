package scoring

import "strings"

// Feedback messages, in rule evaluation order
const (
	msgTooShort   = "Password should be at least 8 characters long"
	msgNoUpper    = "Include uppercase letters"
	msgNoLower    = "Include lowercase letters"
	msgNoDigit    = "Add at least one number (0-9)"
	msgNoSpecial  = "Include at least one special character (!@#$%^&*)"
	msgSequential = "Avoid sequential characters (e.g., 'abc', '123')"
	msgRepeated   = "Avoid repeated characters (e.g., 'aaa', '111')"
)

// specialChars is the only set of characters that satisfies the special-character rule
const specialChars = "!@#$%^&*"

// Result holds the outcome of scoring a single password
type Result struct {
	Score          int      `json:"score"`    // 0..5
	Feedback       []string `json:"feedback"` // ordered by rule evaluation
	CommonPassword bool     `json:"common_password"`
}

// Scorer evaluates password strength against a fixed rule set
type Scorer struct {
	common map[string]struct{}
}

// NewScorer creates a scorer with the default common-password list
func NewScorer() *Scorer {
	return NewScorerWithList(defaultCommonPasswords)
}

// NewScorerWithList creates a scorer with a custom common-password list.
// Membership checks are case-insensitive.
func NewScorerWithList(passwords []string) *Scorer {
	common := make(map[string]struct{}, len(passwords))
	for _, p := range passwords {
		common[strings.ToLower(p)] = struct{}{}
	}
	return &Scorer{common: common}
}

// Score evaluates the password and returns a score in [0, 5] plus feedback
// for each failed rule. A password on the common list scores 0 immediately
// with no further checks.
func (s *Scorer) Score(password string) Result {
	if _, found := s.common[strings.ToLower(password)]; found {
		return Result{Score: 0, CommonPassword: true}
	}

	score := 0
	var feedback []string

	if len([]rune(password)) >= 8 {
		score++
	} else {
		feedback = append(feedback, msgTooShort)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}

	if hasUpper {
		score++
	} else {
		feedback = append(feedback, msgNoUpper)
	}

	if hasLower {
		score++
	} else {
		feedback = append(feedback, msgNoLower)
	}

	if hasDigit {
		score++
	} else {
		feedback = append(feedback, msgNoDigit)
	}

	if hasSpecial {
		score++
	} else {
		feedback = append(feedback, msgNoSpecial)
	}

	if hasSequentialRun(password, patternWindow) {
		feedback = append(feedback, msgSequential)
		score--
	}

	if hasRepeatedRun(password, patternWindow) {
		feedback = append(feedback, msgRepeated)
		score--
	}

	if score < 0 {
		score = 0
	}

	return Result{Score: score, Feedback: feedback}
}

// Tier maps a score to the three strength tiers the UI renders
func Tier(score int) string {
	switch {
	case score >= 5:
		return "strong"
	case score >= 3:
		return "moderate"
	default:
		return "weak"
	}
}
