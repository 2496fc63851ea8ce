package grading

import (
	"strings"
	"testing"
)

func TestCompare_EmptyPopulation(t *testing.T) {
	got := Compare(nil, 80.0)
	if got.Percentile != nil {
		t.Fatalf("expected no percentile, got %v", *got.Percentile)
	}
	if !strings.Contains(got.Message, "No comparison available yet") {
		t.Fatalf("unexpected message: %q", got.Message)
	}
}

func TestCompare_StrictLessThan(t *testing.T) {
	got := Compare([]float64{50.0, 50.0, 50.0}, 50.0)
	if got.Percentile == nil || *got.Percentile != 0.0 {
		t.Fatalf("ties must not count as better: %+v", got)
	}
}

func TestCompare_Percentile(t *testing.T) {
	got := Compare([]float64{10, 20, 30, 40}, 35)
	if got.Percentile == nil || *got.Percentile != 75.0 {
		t.Fatalf("percentile = %+v, want 75", got)
	}
}

func TestCompare_MessageBands(t *testing.T) {
	tests := []struct {
		name       string
		population []float64
		current    float64
		wantPrefix string
	}{
		{"outstanding", []float64{10, 20, 30, 40, 50, 60, 70, 80, 85, 88}, 95, "Outstanding!"},
		{"excellent", []float64{10, 20, 30, 90}, 80, "Excellent work!"},
		{"good", []float64{10, 90}, 50, "Good job!"},
		{"keep studying", []float64{90, 95}, 50, "You scored better than"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Compare(tc.population, tc.current)
			if !strings.HasPrefix(got.Message, tc.wantPrefix) {
				t.Fatalf("message = %q, want prefix %q", got.Message, tc.wantPrefix)
			}
		})
	}
}

func TestCompare_RoundedInterpolation(t *testing.T) {
	// 2 of 3 below -> 66.666... -> rounds to 67 in the message.
	got := Compare([]float64{10, 20, 90}, 50)
	if !strings.Contains(got.Message, "67%") {
		t.Fatalf("expected rounded 67%% in message, got %q", got.Message)
	}
}
