package domain

import (
	"regexp"
	"strings"
)

// Precompiled because Normalize runs on every dictionary entry during a scan.
var (
	hyphenRun     = regexp.MustCompile(`\s*-\s*`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Normalize prepares an administrative name for comparison: lowercase, trim,
// fold any hyphen run (with or without surrounding whitespace) into a single
// space, and collapse remaining whitespace runs. Idempotent.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = hyphenRun.ReplaceAllString(s, " ")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NamesMatch reports whether two administrative names denote the same entity
// under normalization. Word counts must agree and words must match
// positionally: no substring, token-set, or edit-distance relaxation, because
// distinct districts routinely share a word. Symmetric in its arguments.
func NamesMatch(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == nb {
		return true
	}

	wordsA := strings.Fields(na)
	wordsB := strings.Fields(nb)
	if len(wordsA) != len(wordsB) {
		return false
	}
	for i := range wordsA {
		if wordsA[i] != wordsB[i] {
			return false
		}
	}
	return true
}
