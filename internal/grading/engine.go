package grading

import (
	"math"
	"strings"
)

// Result is the outcome of grading a full question set.
type Result struct {
	Score      int     `json:"score"`
	Total      int     `json:"total_questions"`
	Percentage float64 `json:"percentage"`
	Grade      string  `json:"grade"`
	Remark     string  `json:"remark"`
}

// Keyed is the minimal view of a question needed for grading: its position
// in the original generated batch and the canonical answer label.
type Keyed struct {
	Index  int
	Answer string
}

// Grade scores submitted answers against the canonical key. Answers are
// keyed by the question's original batch index; a missing answer counts as
// incorrect, never as an error. Pure and idempotent.
func Grade(questions []Keyed, answers map[int]string) Result {
	total := len(questions)
	if total == 0 {
		return Result{Percentage: 0, Grade: "N/A", Remark: "No questions graded."}
	}

	score := 0
	for _, q := range questions {
		got, ok := answers[q.Index]
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(got), q.Answer) {
			score++
		}
	}

	pct := round2(float64(score) / float64(total) * 100)
	grade, remark := Letter(pct)
	return Result{Score: score, Total: total, Percentage: pct, Grade: grade, Remark: remark}
}

// Letter maps a percentage to a letter grade and remark. Thresholds are
// inclusive lower bounds, evaluated top-down.
func Letter(percentage float64) (string, string) {
	switch {
	case percentage >= 70:
		return "A", "Excellent! Distinction level."
	case percentage >= 60:
		return "B", "Very Good. Keep it up."
	case percentage >= 50:
		return "C", "Credit. You passed, but barely."
	case percentage >= 45:
		return "D", "Pass. You need to study more."
	case percentage >= 40:
		return "E", "Weak Pass. Dangerous territory."
	default:
		return "F", "Fail. You are not ready for this exam."
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
