// Package screening scores the 10-item postpartum depression questionnaire
// and turns the score into a risk tier with recommendations. Scoring is a
// pure function of the answers; nothing here touches conversation state.
package screening

import (
	"errors"
	"fmt"
)

// AnswerCount is the fixed questionnaire length. Position carries meaning:
// answers are index-aligned to the 10 clinical items, and the last item
// (index 9) encodes self-harm ideation.
const AnswerCount = 10

// MaxAnswerValue is the highest ordinal value an item can take.
const MaxAnswerValue = 3

// selfHarmIndex is the position of the self-harm ideation item.
const selfHarmIndex = 9

// RiskLevel is one of four ordered buckets derived from the total score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Fixed clinical cutoffs, not tunable at runtime.
const (
	criticalCutoff = 13
	highCutoff     = 10
	moderateCutoff = 7
)

var (
	// ErrAnswerCount is returned when the answer vector is not exactly 10
	// items. Short vectors are rejected, never zero-padded.
	ErrAnswerCount = errors.New("exactly 10 answers are required")

	// ErrAnswerRange is returned when an answer falls outside [0,3].
	ErrAnswerRange = errors.New("answers must be between 0 and 3")
)

// Result is the outcome of one screening run. It is computed fresh on every
// call and never mutated after construction.
type Result struct {
	Score                 int       `json:"score"`
	Risk                  RiskLevel `json:"risk"`
	NeedsProfessionalHelp bool      `json:"needs_professional_help"`
	Recommendations       []string  `json:"recommendations"`
}

// Validate checks the answer vector shape and range.
func Validate(answers []int) error {
	if len(answers) != AnswerCount {
		return fmt.Errorf("%w: got %d", ErrAnswerCount, len(answers))
	}
	for i, a := range answers {
		if a < 0 || a > MaxAnswerValue {
			return fmt.Errorf("%w: item %d is %d", ErrAnswerRange, i+1, a)
		}
	}
	return nil
}

// Score computes the total, risk tier, and professional-help flag for a
// valid answer vector. Any nonzero value on the self-harm item forces the
// flag regardless of the total score; this hard override is never bypassed.
func Score(answers []int) (Result, error) {
	if err := Validate(answers); err != nil {
		return Result{}, err
	}

	total := 0
	for _, a := range answers {
		total += a
	}

	var risk RiskLevel
	switch {
	case total >= criticalCutoff:
		risk = RiskCritical
	case total >= highCutoff:
		risk = RiskHigh
	case total >= moderateCutoff:
		risk = RiskModerate
	default:
		risk = RiskLow
	}

	return Result{
		Score:                 total,
		Risk:                  risk,
		NeedsProfessionalHelp: total >= highCutoff || answers[selfHarmIndex] > 0,
	}, nil
}

// Run scores the answers and attaches recommendations in one call. This is
// the entry point the screening UI consumes.
func Run(answers []int, answerContext map[string]string) (Result, error) {
	result, err := Score(answers)
	if err != nil {
		return Result{}, err
	}
	result.Recommendations = Recommend(result, answerContext)
	return result, nil
}
