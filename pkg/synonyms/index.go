// Package synonyms provides the canonical-term lexicon behind fuzzy command
// classification. Single index serves both reverse lookup AND text scanning.
package synonyms

import (
	"fmt"

	"github.com/coregx/ahocorasick"

	"github.com/tapvera/gotap/pkg/lexical"
)

// ============================================================================
// Categories
// ============================================================================

// Category identifies which concept axis a term belongs to. Categories are
// resolved independently of each other during classification.
type Category int

const (
	CategoryIntent Category = iota
	CategoryEntity
	CategoryPriority
	CategoryStatus
)

// Categories lists all axes in resolution order.
var Categories = []Category{CategoryIntent, CategoryEntity, CategoryPriority, CategoryStatus}

func (c Category) String() string {
	switch c {
	case CategoryIntent:
		return "intent"
	case CategoryEntity:
		return "entity"
	case CategoryPriority:
		return "priority"
	case CategoryStatus:
		return "status"
	default:
		return "unknown"
	}
}

// ============================================================================
// Index - reverse lookup + Aho-Corasick surface scanning
// ============================================================================

// TermEntry is one registered term after stemming, with the canonical
// concept it resolves to. Order is declaration order.
type TermEntry struct {
	Term      string // stemmed form used for matching
	Canonical string
}

// Collision records a term claimed by two canonicals of one category.
// The first declaration keeps the term.
type Collision struct {
	Category Category
	Term     string
	Kept     string
	Dropped  string
}

// Hit is an exact surface-form match found by Scan.
type Hit struct {
	Category  Category
	Canonical string
	Term      string // matched surface form, normalized
	Start     int    // byte offset in the normalized text
	End       int
}

// Index holds the reverse maps and the compiled automaton. Build once,
// read-only afterwards; safe for concurrent use.
type Index struct {
	concepts map[Category][]Concept
	reverse  map[Category]map[string]string // stemmed term -> canonical
	terms    map[Category][]TermEntry       // ordered, for fuzzy scans

	ac           *ahocorasick.Automaton
	patterns     []string
	patternCat   []Category
	patternCanon []string

	collisions []Collision
}

// New builds the index from the shipped tables.
func New() (*Index, error) {
	ix := &Index{
		concepts: map[Category][]Concept{
			CategoryIntent:   intentConcepts,
			CategoryEntity:   entityConcepts,
			CategoryPriority: priorityConcepts,
			CategoryStatus:   statusConcepts,
		},
		reverse: make(map[Category]map[string]string),
		terms:   make(map[Category][]TermEntry),
	}

	patternIndex := make(map[string]int)

	addSurface := func(cat Category, canonical, surface string) {
		key := lexical.Normalize(surface)
		if key == "" {
			return
		}
		if _, exists := patternIndex[key]; exists {
			return
		}
		patternIndex[key] = len(ix.patterns)
		ix.patterns = append(ix.patterns, key)
		ix.patternCat = append(ix.patternCat, cat)
		ix.patternCanon = append(ix.patternCanon, canonical)
	}

	for _, cat := range Categories {
		ix.reverse[cat] = make(map[string]string)
		for _, c := range ix.concepts[cat] {
			// Canonical resolves to itself, then its synonyms.
			for _, raw := range append([]string{c.Canonical}, c.Synonyms...) {
				stemmed := lexical.Stem(raw)
				if prev, exists := ix.reverse[cat][stemmed]; exists {
					if prev != c.Canonical {
						ix.collisions = append(ix.collisions, Collision{
							Category: cat,
							Term:     stemmed,
							Kept:     prev,
							Dropped:  c.Canonical,
						})
					}
					continue // first declaration wins
				}
				ix.reverse[cat][stemmed] = c.Canonical
				ix.terms[cat] = append(ix.terms[cat], TermEntry{Term: stemmed, Canonical: c.Canonical})
				addSurface(cat, c.Canonical, raw)
			}
		}
	}

	// Multi-token surfaces go to the automaton only; tokenized lookup
	// never sees them whole.
	for _, c := range entitySurfaces {
		for _, s := range c.Synonyms {
			addSurface(CategoryEntity, c.Canonical, s)
		}
	}

	ac, err := ahocorasick.NewBuilder().
		AddStrings(ix.patterns).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()
	if err != nil {
		return nil, fmt.Errorf("synonyms: compile automaton: %w", err)
	}
	ix.ac = ac

	return ix, nil
}

// Lookup resolves one token to its canonical concept in the given category.
// The token is stemmed with the same stemmer used at build time.
func (ix *Index) Lookup(cat Category, token string) (string, bool) {
	canonical, ok := ix.reverse[cat][lexical.Stem(token)]
	return canonical, ok
}

// Terms returns the registered terms of a category in declaration order.
// Callers must not mutate the returned slice.
func (ix *Index) Terms(cat Category) []TermEntry {
	return ix.terms[cat]
}

// Canonicals returns the canonical concepts of a category in declaration order.
func (ix *Index) Canonicals(cat Category) []string {
	concepts := ix.concepts[cat]
	out := make([]string, len(concepts))
	for i, c := range concepts {
		out[i] = c.Canonical
	}
	return out
}

// Collisions reports the terms claimed by more than one canonical within a
// single category. The shipped tables carry exactly one ("find": view wins
// over filter).
func (ix *Index) Collisions() []Collision {
	return ix.collisions
}

// Scan finds exact surface-form mentions in the text, including multi-token
// surfaces like "time off". Matches are word-bounded: a surface never
// matches inside a longer word ("off" does not hit "office").
func (ix *Index) Scan(text string) []Hit {
	if ix.ac == nil {
		return nil
	}

	norm := lexical.Normalize(text)
	if norm == "" {
		return nil
	}

	matches := ix.ac.FindAllOverlapping([]byte(norm))
	hits := make([]Hit, 0, len(matches))
	for _, m := range matches {
		if !wordBounded(norm, m.Start, m.End) {
			continue
		}
		hits = append(hits, Hit{
			Category:  ix.patternCat[m.PatternID],
			Canonical: ix.patternCanon[m.PatternID],
			Term:      norm[m.Start:m.End],
			Start:     m.Start,
			End:       m.End,
		})
	}
	return hits
}

// wordBounded reports whether [start,end) sits on token boundaries in the
// normalized text, where the only separator is a single space.
func wordBounded(s string, start, end int) bool {
	if start > 0 && s[start-1] != ' ' {
		return false
	}
	if end < len(s) && s[end] != ' ' {
		return false
	}
	return true
}
