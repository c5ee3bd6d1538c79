// Package lexical normalizes utterance text for command interpretation.
// Single normalizer serves both pattern matching AND fuzzy classification.
package lexical

import (
	"strings"
	"unicode"

	"github.com/orsinium-labs/stopwords"
)

// ============================================================================
// NORMALIZER - lowercase, punctuation stripping, whitespace collapsing
// ============================================================================

// Normalize transforms text into the canonical form used by the classifier.
// Rules:
// - Fold to lowercase
// - Replace every non-letter, non-digit rune with a single space
// - Collapse multiple spaces into one
// - Trim leading/trailing spaces
//
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	return clean(s, true)
}

// Clean is Normalize without case folding. Pattern rules match against the
// cleaned form so capture groups keep the caller's original casing
// ("create a task for John ..." must yield "John", not "john").
func Clean(s string) string {
	return clean(s, false)
}

func clean(s string, fold bool) string {
	var out strings.Builder
	out.Grow(len(s))

	lastWasSpace := true // trim leading spaces

	for _, ch := range s {
		c := ch
		if fold {
			c = unicode.ToLower(ch)
		}

		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' {
			out.WriteRune(c)
			lastWasSpace = false
			continue
		}

		// Everything else is a separator
		if !lastWasSpace {
			out.WriteRune(' ')
			lastWasSpace = true
		}
	}

	result := out.String()
	return strings.TrimRight(result, " ")
}

// Tokenize normalizes text and splits it into words. Never returns empty
// tokens; empty or all-punctuation input returns a nil slice.
func Tokenize(s string) []string {
	norm := Normalize(s)
	if norm == "" {
		return nil
	}
	return strings.Split(norm, " ")
}

// ============================================================================
// STOPWORDS
// ============================================================================

var englishStopwords = stopwords.MustGet("en")

// IsStopword reports whether the token is an English function word.
// The classifier skips stopwords for fuzzy scoring only; exact synonym
// lookups still see every token (terms like "off" are stopwords).
func IsStopword(token string) bool {
	return englishStopwords.Contains(token)
}

// ============================================================================
// STEMMER - suffix stripping to collapse inflected forms
// ============================================================================

// stemRule rewrites one suffix. Replace is appended after stripping.
type stemRule struct {
	suffix  string
	replace string
	minLen  int // rule applies only when the word is at least this long
}

// Ordered most-specific-first. Applied repeatedly until fixpoint so
// "statuses" -> "status" -> "statu" collapses the whole family.
// No "er" rule: agent nouns (worker, buyer) must not fold into their verbs.
var stemRules = []stemRule{
	{"ies", "y", 5},
	{"ing", "", 6},
	{"tion", "t", 6},
	{"ness", "", 6},
	{"ed", "", 5},
	{"ly", "", 5},
	{"es", "", 4},
	{"s", "", 4},
	{"e", "", 5},
}

const minStem = 3

// Stem reduces a word to its root form ("creating", "created" -> "creat";
// "leaves", "leave" -> "leav"). Both the synonym tables and the incoming
// tokens pass through Stem, so only internal consistency matters, not
// dictionary-perfect roots. Words shorter than 4 runes pass through intact.
func Stem(word string) string {
	w := strings.ToLower(word)

	for pass := 0; pass < 3; pass++ {
		next := stemOnce(w)
		if next == w {
			break
		}
		w = next
	}
	return w
}

func stemOnce(w string) string {
	for _, r := range stemRules {
		if len(w) < r.minLen || !strings.HasSuffix(w, r.suffix) {
			continue
		}
		// "ss" is not a plural ending
		if r.suffix == "s" && strings.HasSuffix(w, "ss") {
			continue
		}
		stem := w[:len(w)-len(r.suffix)] + r.replace
		if len(stem) < minStem {
			continue
		}
		return stem
	}
	return w
}

// StemTokens maps Stem over a token slice.
func StemTokens(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = Stem(t)
	}
	return out
}
