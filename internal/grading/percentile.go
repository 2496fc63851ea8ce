package grading

import (
	"fmt"
	"math"
)

// Comparison relates one submission's percentage to the rest of the
// population for the same shared exam.
type Comparison struct {
	Message    string   `json:"message"`
	Percentile *float64 `json:"percentile,omitempty"`
}

// Compare computes the percentile rank of current within population: the
// share of prior percentages it strictly outperforms, 0-100. Ties do not
// count as "better than", so a perfect score among other perfect scores
// lands below 100. An empty population yields a neutral message and no
// percentile.
func Compare(population []float64, current float64) Comparison {
	if len(population) == 0 {
		return Comparison{Message: "You are the first to take this exam. No comparison available yet."}
	}

	below := 0
	for _, p := range population {
		if current > p {
			below++
		}
	}
	pct := float64(below) / float64(len(population)) * 100

	rounded := int(math.Round(pct))
	var msg string
	switch {
	case pct >= 90:
		msg = fmt.Sprintf("Outstanding! You scored better than %d%% of participants.", rounded)
	case pct >= 75:
		msg = fmt.Sprintf("Excellent work! You scored better than %d%% of participants.", rounded)
	case pct >= 50:
		msg = fmt.Sprintf("Good job! You scored better than %d%% of participants.", rounded)
	default:
		msg = fmt.Sprintf("You scored better than %d%% of participants. Keep studying!", rounded)
	}
	return Comparison{Message: msg, Percentile: &pct}
}
