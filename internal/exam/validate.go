package exam

import "strings"

// ValidateBatch filters a raw generated batch down to the questions that are
// structurally sound and normalizes each survivor's answer label. A bad
// question drops only itself, never the batch. Survivors keep their original
// batch index and relative order. Returns ErrEmptyGeneration when nothing
// survives, so callers regenerate instead of persisting an empty set.
func ValidateBatch(raw []RawQuestion) ([]Question, error) {
	out := make([]Question, 0, len(raw))
	for i, r := range raw {
		if strings.TrimSpace(r.Text) == "" ||
			strings.TrimSpace(r.Answer) == "" ||
			strings.TrimSpace(r.Explanation) == "" {
			continue
		}
		if len(r.Options) != 2 && len(r.Options) != 4 {
			continue
		}
		if hasBlankOption(r.Options) {
			continue
		}

		label, confident := NormalizeAnswer(r.Answer, r.Options)
		out = append(out, Question{
			Index:         i,
			Text:          strings.TrimSpace(r.Text),
			Options:       r.Options,
			Answer:        label,
			Explanation:   strings.TrimSpace(r.Explanation),
			LowConfidence: !confident,
		})
	}
	if len(out) == 0 {
		return nil, ErrEmptyGeneration
	}
	return out, nil
}

func hasBlankOption(options []string) bool {
	for _, o := range options {
		if strings.TrimSpace(o) == "" {
			return true
		}
	}
	return false
}
