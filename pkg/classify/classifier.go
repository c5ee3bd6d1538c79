// Package classify implements the fuzzy tier of command interpretation:
// independent resolution of intent, entity, priority, and status concepts
// from free-form text.
package classify

import (
	"github.com/tapvera/gotap/pkg/lexical"
	"github.com/tapvera/gotap/pkg/synonyms"
)

// DefaultThreshold is the minimum similarity an inexact match must reach.
const DefaultThreshold = 0.6

// Tokens shorter than this never fuzzy-match; they resolve exactly or not
// at all. Keeps three-letter fragments ("shw", "xyz") from pulling in
// concepts the caller never typed.
const minFuzzyRunes = 4

// Match is one resolved concept.
type Match struct {
	Canonical  string  // canonical concept, e.g. "approve"
	Confidence float64 // 1.0 for exact hits, [threshold,1) for fuzzy ones
	Term       string  // the registered term that matched
	Token      string  // the input token that produced the match
}

// Entities holds the per-category resolution results. A nil field means
// the category did not resolve.
type Entities struct {
	Intent   *Match
	Entity   *Match
	Priority *Match
	Status   *Match
}

// Classifier resolves concepts against a synonym index.
type Classifier struct {
	index     *synonyms.Index
	threshold float64
}

// New builds a classifier. A zero threshold selects DefaultThreshold.
func New(index *synonyms.Index, threshold float64) *Classifier {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Classifier{index: index, threshold: threshold}
}

// Threshold returns the acceptance threshold in use.
func (c *Classifier) Threshold() float64 { return c.threshold }

// Classify resolves all four categories from the text. Each category is
// resolved independently:
//
//  1. Exact: the first token whose stemmed form is a registered term wins
//     at confidence 1.0 and ends the category scan.
//  2. Surface: exact multi-token surface forms ("time off") found by the
//     automaton also win at 1.0.
//  3. Fuzzy: otherwise the best token×term similarity at or above the
//     threshold wins. Ties keep the earlier-declared term.
func (c *Classifier) Classify(text string) Entities {
	tokens := lexical.Tokenize(text)

	var ents Entities
	for _, cat := range synonyms.Categories {
		if m := c.resolve(cat, tokens); m != nil {
			ents.set(cat, m)
		}
	}

	// Surface scan fills categories the token passes missed.
	if ents.Entity == nil {
		for _, hit := range c.index.Scan(text) {
			if hit.Category != synonyms.CategoryEntity {
				continue
			}
			ents.Entity = &Match{
				Canonical:  hit.Canonical,
				Confidence: 1.0,
				Term:       hit.Term,
				Token:      hit.Term,
			}
			break
		}
	}

	return ents
}

// resolve runs the exact pass then the fuzzy pass for one category.
func (c *Classifier) resolve(cat synonyms.Category, tokens []string) *Match {
	for _, tok := range tokens {
		if canonical, ok := c.index.Lookup(cat, tok); ok {
			return &Match{Canonical: canonical, Confidence: 1.0, Term: lexical.Stem(tok), Token: tok}
		}
	}

	var best *Match
	for _, tok := range tokens {
		if len([]rune(tok)) < minFuzzyRunes || lexical.IsStopword(tok) {
			continue
		}
		stemmed := lexical.Stem(tok)
		for _, entry := range c.index.Terms(cat) {
			if !lengthClose(stemmed, entry.Term) {
				continue
			}
			score := Similarity(stemmed, entry.Term)
			if score < c.threshold {
				continue
			}
			// Strict > keeps the earlier-declared term on ties.
			if best == nil || score > best.Confidence {
				best = &Match{Canonical: entry.Canonical, Confidence: score, Term: entry.Term, Token: tok}
			}
		}
	}
	return best
}

// lengthClose prefilters pairs whose length difference already puts them
// past any useful similarity.
func lengthClose(a, b string) bool {
	d := len(a) - len(b)
	if d < 0 {
		d = -d
	}
	return d <= 2
}

func (e *Entities) set(cat synonyms.Category, m *Match) {
	switch cat {
	case synonyms.CategoryIntent:
		e.Intent = m
	case synonyms.CategoryEntity:
		e.Entity = m
	case synonyms.CategoryPriority:
		e.Priority = m
	case synonyms.CategoryStatus:
		e.Status = m
	}
}
