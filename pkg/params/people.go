package params

import "github.com/sahilm/fuzzy"

// RankNames orders a people directory by how well each name matches the
// extracted assignee text. Subsequence matching, so "jon sm" finds
// "Jonathan Smith". Non-matching names are dropped; an empty query returns
// nothing.
func RankNames(query string, names []string) []string {
	if query == "" || len(names) == 0 {
		return nil
	}

	matches := fuzzy.Find(query, names)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, names[m.Index])
	}
	return out
}

// BestName returns the top-ranked directory name, if any.
func BestName(query string, names []string) (string, bool) {
	ranked := RankNames(query, names)
	if len(ranked) == 0 {
		return "", false
	}
	return ranked[0], true
}
