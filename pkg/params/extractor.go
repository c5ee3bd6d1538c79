package params

import (
	"regexp"
	"strings"
	"time"

	"github.com/tapvera/gotap/pkg/classify"
	"github.com/tapvera/gotap/pkg/command"
	"github.com/tapvera/gotap/pkg/lexical"
)

// Keywords that anchor free-text extraction, per entity. The token after
// the anchor starts the captured span.
var entityKeywords = map[string][]string{
	"task":    {"task", "todo"},
	"project": {"project", "proj"},
	"client":  {"client", "customer"},
	"leave":   {"leave", "vacation"},
}

// Parameter names the captured span lands in, per entity.
var entityTextParam = map[string]string{
	"task":    "title",
	"project": "projectName",
	"client":  "clientName",
}

// Spans stop before the next anchor word so "plan kickoff by friday" keeps
// only "plan kickoff".
var spanStops = map[string]bool{
	"by":   true,
	"for":  true,
	"with": true,
	"to":   true,
}

var (
	dueRe      = regexp.MustCompile(`(?i)\bby\s+(.+?)(?:\s+with\b.*)?$`)
	assigneeRe = regexp.MustCompile(`(?i)\bfor\s+([A-Za-z]\w*(?:\s+[A-Za-z]\w*)?)`)
)

// Extractor derives parameters for fuzzy-pair commands. Pattern rules carry
// their own extraction; this path covers utterances the rule table missed.
type Extractor struct {
	threshold float64
}

// NewExtractor builds an extractor; zero threshold selects the classifier
// default.
func NewExtractor(threshold float64) *Extractor {
	if threshold <= 0 {
		threshold = classify.DefaultThreshold
	}
	return &Extractor{threshold: threshold}
}

// Extract pulls parameters out of the text, guided by the classified
// concepts. Missing pieces are simply absent from the result; extraction
// never fails.
func (e *Extractor) Extract(text string, ents classify.Entities, now time.Time) map[string]command.Value {
	params := make(map[string]command.Value)

	if ents.Priority != nil {
		params["priority"] = command.PriorityValue(ents.Priority.Canonical)
	}
	if ents.Status != nil {
		params["status"] = command.StatusValue(ents.Status.Canonical)
	}

	clean := lexical.Clean(text)

	if ents.Entity != nil {
		if name, ok := entityTextParam[ents.Entity.Canonical]; ok {
			if span := e.afterKeyword(clean, entityKeywords[ents.Entity.Canonical]); span != "" {
				params[name] = command.TextValue(span)
			}
		}
	}

	if m := dueRe.FindStringSubmatch(clean); m != nil {
		if due, ok := ParseDate(m[1], now); ok {
			params["dueDate"] = command.DateValue(due)
		}
	}

	if m := assigneeRe.FindStringSubmatch(clean); m != nil {
		params["assigneeName"] = command.PersonValue(m[1])
	}

	return params
}

// afterKeyword returns the token span following the first keyword hit,
// stopping at the next anchor word. Keyword matching tolerates typos at
// the extractor's threshold.
func (e *Extractor) afterKeyword(clean string, keywords []string) string {
	tokens := strings.Fields(clean)

	for _, kw := range keywords {
		idx := -1
		for i, tok := range tokens {
			stemmed := lexical.Stem(tok)
			if stemmed == lexical.Stem(kw) || classify.Similarity(stemmed, kw) >= e.threshold {
				idx = i
				break
			}
		}
		if idx < 0 || idx >= len(tokens)-1 {
			continue
		}

		span := tokens[idx+1:]
		end := len(span)
		for i, tok := range span {
			if spanStops[strings.ToLower(tok)] {
				end = i
				break
			}
		}
		if end == 0 {
			continue
		}
		return strings.Join(span[:end], " ")
	}

	return ""
}
