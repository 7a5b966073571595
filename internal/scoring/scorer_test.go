package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRules(t *testing.T) {
	scorer := NewScorer()

	testCases := []struct {
		name             string
		password         string
		expectedScore    int
		expectedFeedback []string
	}{
		{
			name:             "All rules satisfied",
			password:         "Str0ng!Pass",
			expectedScore:    5,
			expectedFeedback: nil,
		},
		{
			name:          "Sequential run in otherwise strong password",
			password:      "Ab3$efgh",
			expectedScore: 4,
			expectedFeedback: []string{
				msgSequential,
			},
		},
		{
			name:          "Short lowercase sequential",
			password:      "abc",
			expectedScore: 0,
			expectedFeedback: []string{
				msgTooShort,
				msgNoUpper,
				msgNoDigit,
				msgNoSpecial,
				msgSequential,
			},
		},
		{
			name:          "Long repeated lowercase",
			password:      "aaaaaaaa",
			expectedScore: 1,
			expectedFeedback: []string{
				msgNoUpper,
				msgNoDigit,
				msgNoSpecial,
				msgRepeated,
			},
		},
		{
			name:          "Empty password",
			password:      "",
			expectedScore: 0,
			expectedFeedback: []string{
				msgTooShort,
				msgNoUpper,
				msgNoLower,
				msgNoDigit,
				msgNoSpecial,
			},
		},
		{
			name:          "Characters outside every class satisfy length only",
			password:      "€€…§§±±¶",
			expectedScore: 1,
			expectedFeedback: []string{
				msgNoUpper,
				msgNoLower,
				msgNoDigit,
				msgNoSpecial,
			},
		},
		{
			name:          "Negative raw score clamps to zero",
			password:      "abcccc",
			expectedScore: 0,
			expectedFeedback: []string{
				msgTooShort,
				msgNoUpper,
				msgNoDigit,
				msgNoSpecial,
				msgSequential,
				msgRepeated,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := scorer.Score(tc.password)

			assert.Equal(t, tc.expectedScore, result.Score)
			assert.Equal(t, tc.expectedFeedback, result.Feedback)
			assert.False(t, result.CommonPassword)
		})
	}
}

func TestScoreCommonPasswords(t *testing.T) {
	scorer := NewScorer()

	// Any casing of a listed password short-circuits to zero with no feedback
	for _, password := range []string{"password", "PASSWORD", "Password", "qwerty", "QwErTy", "Passw0rd", "123456"} {
		result := scorer.Score(password)
		assert.Equal(t, 0, result.Score, "password %q should score 0", password)
		assert.Empty(t, result.Feedback, "password %q should produce no feedback", password)
		assert.True(t, result.CommonPassword, "password %q should be flagged as common", password)
	}
}

func TestScoreCustomCommonList(t *testing.T) {
	scorer := NewScorerWithList([]string{"Hunter2"})

	result := scorer.Score("hunter2")
	assert.Equal(t, 0, result.Score)
	assert.True(t, result.CommonPassword)

	// The default list no longer applies
	result = scorer.Score("password")
	assert.False(t, result.CommonPassword)
	assert.Greater(t, len(result.Feedback), 0)
}

func TestScoreIdempotent(t *testing.T) {
	scorer := NewScorer()

	for _, password := range []string{"", "abc", "Str0ng!Pass", "password"} {
		first := scorer.Score(password)
		second := scorer.Score(password)
		require.Equal(t, first, second, "scoring %q twice should yield identical results", password)
	}
}

func TestTier(t *testing.T) {
	testCases := []struct {
		score int
		tier  string
	}{
		{5, "strong"},
		{4, "moderate"},
		{3, "moderate"},
		{2, "weak"},
		{1, "weak"},
		{0, "weak"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.tier, Tier(tc.score), "score %d", tc.score)
	}
}
