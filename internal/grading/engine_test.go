package grading

import (
	"reflect"
	"testing"
)

func TestGrade_Scoring(t *testing.T) {
	questions := []Keyed{
		{Index: 0, Answer: "B"},
		{Index: 1, Answer: "True"},
	}
	answers := map[int]string{0: "B", 1: "false"}

	got := Grade(questions, answers)
	want := Result{Score: 1, Total: 2, Percentage: 50.0, Grade: "C", Remark: "Credit. You passed, but barely."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Grade = %+v, want %+v", got, want)
	}
}

func TestGrade_EmptySet(t *testing.T) {
	got := Grade(nil, map[int]string{})
	if got.Score != 0 || got.Total != 0 || got.Percentage != 0.0 {
		t.Fatalf("empty grade numbers = %+v", got)
	}
	if got.Grade != "N/A" || got.Remark != "No questions graded." {
		t.Fatalf("empty grade text = %q / %q", got.Grade, got.Remark)
	}
}

func TestGrade_MissingAndSloppyAnswers(t *testing.T) {
	questions := []Keyed{
		{Index: 0, Answer: "A"},
		{Index: 1, Answer: "C"},
		{Index: 2, Answer: "False"},
	}
	// 0 answered with whitespace and wrong case, 1 unanswered, 2 correct.
	answers := map[int]string{0: "  a ", 2: "FALSE"}

	got := Grade(questions, answers)
	if got.Score != 2 || got.Total != 3 {
		t.Fatalf("score = %d/%d, want 2/3", got.Score, got.Total)
	}
	if got.Percentage != 66.67 {
		t.Fatalf("percentage = %v, want 66.67", got.Percentage)
	}
}

func TestGrade_OriginalIndicesWithGaps(t *testing.T) {
	// Index 2 was dropped by validation; survivors keep 0,1,3.
	questions := []Keyed{
		{Index: 0, Answer: "A"},
		{Index: 1, Answer: "B"},
		{Index: 3, Answer: "D"},
	}
	answers := map[int]string{0: "A", 1: "B", 3: "D"}

	got := Grade(questions, answers)
	if got.Score != 3 || got.Total != 3 {
		t.Fatalf("score = %d/%d, want 3/3", got.Score, got.Total)
	}
}

func TestGrade_Idempotent(t *testing.T) {
	questions := []Keyed{{Index: 0, Answer: "B"}, {Index: 1, Answer: "A"}}
	answers := map[int]string{0: "B", 1: "C"}

	first := Grade(questions, answers)
	second := Grade(questions, answers)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("grading not idempotent: %+v vs %+v", first, second)
	}
}

func TestLetter_Thresholds(t *testing.T) {
	tests := []struct {
		pct   float64
		grade string
	}{
		{100, "A"},
		{70.0, "A"},
		{69.99, "B"},
		{60, "B"},
		{59.99, "C"},
		{50, "C"},
		{49.99, "D"},
		{45, "D"},
		{44.99, "E"},
		{40, "E"},
		{39.99, "F"},
		{0, "F"},
	}
	for _, tc := range tests {
		if g, _ := Letter(tc.pct); g != tc.grade {
			t.Errorf("Letter(%v) = %q, want %q", tc.pct, g, tc.grade)
		}
	}
}
