package genai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/studyaide/studyaide-backend/internal/exam"
)

// ParseBatch decodes a model response into raw question records. Markdown
// code fences are stripped first since models add them despite prompt
// instructions not to. Structural validation happens downstream.
func ParseBatch(text string) ([]exam.RawQuestion, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return nil, fmt.Errorf("empty model response")
	}

	var batch []exam.RawQuestion
	if err := json.Unmarshal([]byte(cleaned), &batch); err != nil {
		return nil, fmt.Errorf("invalid question batch: %w", err)
	}
	return batch, nil
}
