package exam

import (
	"strings"
	"unicode"
)

var optionLetters = []string{"A", "B", "C", "D"}

// NormalizeAnswer converts a raw generator-produced answer into the canonical
// label for the given options: "A".."D" for 4-option questions, "True"/"False"
// for 2-option ones. Generators answer inconsistently (full option text, bare
// letters, lowercase booleans), so matching is lenient. When nothing matches,
// the first label is returned with confident=false; callers may log that but
// must not fail the batch. Total and deterministic: never returns an error.
func NormalizeAnswer(raw string, options []string) (label string, confident bool) {
	trimmed := strings.TrimSpace(raw)
	binary := len(options) == 2

	if trimmed == "" {
		return defaultLabel(binary), false
	}

	// Bare letter, only meaningful for 4-option questions.
	if !binary && len(trimmed) == 1 {
		up := strings.ToUpper(trimmed)
		for _, l := range optionLetters {
			if up == l {
				return l, true
			}
		}
	}

	// Boolean words, only meaningful for 2-option questions.
	if binary {
		if strings.EqualFold(trimmed, "true") {
			return "True", true
		}
		if strings.EqualFold(trimmed, "false") {
			return "False", true
		}
	}

	// Exact option-text match, then substring containment either way as a
	// lenient fallback. Two passes so an exact match always wins.
	lowRaw := strings.ToLower(trimmed)
	for i, opt := range options {
		if strings.EqualFold(strings.TrimSpace(opt), trimmed) {
			return positionLabel(i, opt, binary), true
		}
	}
	// A one-character fragment would "contain-match" almost anything.
	if len(lowRaw) > 1 {
		for i, opt := range options {
			lowOpt := strings.ToLower(strings.TrimSpace(opt))
			if lowOpt == "" {
				continue
			}
			if strings.Contains(lowOpt, lowRaw) || strings.Contains(lowRaw, lowOpt) {
				return positionLabel(i, opt, binary), true
			}
		}
	}

	return defaultLabel(binary), false
}

func positionLabel(i int, option string, binary bool) string {
	if binary {
		return capitalize(strings.TrimSpace(option))
	}
	if i < len(optionLetters) {
		return optionLetters[i]
	}
	return optionLetters[0]
}

func defaultLabel(binary bool) string {
	if binary {
		return "True"
	}
	return "A"
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
