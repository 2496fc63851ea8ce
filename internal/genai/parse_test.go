package genai

import "testing"

const batchJSON = `[
  {"question": "Q1", "options": ["a", "b", "c", "d"], "answer": "a", "explanation": "x"},
  {"question": "Q2", "options": ["True", "False"], "answer": "True", "explanation": "y"}
]`

func TestParseBatch_Raw(t *testing.T) {
	got, err := ParseBatch(batchJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Text != "Q1" || got[1].Answer != "True" {
		t.Fatalf("unexpected batch: %+v", got)
	}
}

func TestParseBatch_StripsFences(t *testing.T) {
	fenced := "```json\n" + batchJSON + "\n```"
	got, err := ParseBatch(fenced)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("batch size = %d, want 2", len(got))
	}
}

func TestParseBatch_Invalid(t *testing.T) {
	if _, err := ParseBatch("The answer is 42."); err == nil {
		t.Fatal("expected error for non-JSON response")
	}
	if _, err := ParseBatch("```json\n```"); err == nil {
		t.Fatal("expected error for empty response")
	}
}
