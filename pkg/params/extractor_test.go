package params

import (
	"testing"

	"github.com/tapvera/gotap/pkg/classify"
	"github.com/tapvera/gotap/pkg/command"
)

func match(canonical string) *classify.Match {
	return &classify.Match{Canonical: canonical, Confidence: 1.0}
}

func TestExtractEnums(t *testing.T) {
	e := NewExtractor(0)

	got := e.Extract("show urgent pending tasks", classify.Entities{
		Entity:   match("task"),
		Priority: match("high"),
		Status:   match("pending"),
	}, monday)

	if v, ok := got["priority"]; !ok || v.Kind != command.KindPriority || v.Text != "high" {
		t.Errorf("priority = %+v, want high", v)
	}
	if v, ok := got["status"]; !ok || v.Kind != command.KindStatus || v.Text != "pending" {
		t.Errorf("status = %+v, want pending", v)
	}
}

func TestExtractTitleAfterKeyword(t *testing.T) {
	e := NewExtractor(0)

	got := e.Extract("make a task plan the kickoff by friday", classify.Entities{
		Entity: match("task"),
	}, monday)

	if v, ok := got["title"]; !ok || v.Text != "plan the kickoff" {
		t.Errorf("title = %+v, want 'plan the kickoff'", v)
	}
	if v, ok := got["dueDate"]; !ok || v.String() != "2024-01-05" {
		t.Errorf("dueDate = %+v, want 2024-01-05", v)
	}
}

func TestExtractAssignee(t *testing.T) {
	e := NewExtractor(0)

	got := e.Extract("assign the task for John Smith", classify.Entities{
		Entity: match("task"),
	}, monday)

	v, ok := got["assigneeName"]
	if !ok || v.Kind != command.KindPerson || v.Text != "John Smith" {
		t.Fatalf("assigneeName = %+v, want person John Smith", v)
	}
}

// A typo'd keyword still anchors extraction.
func TestExtractFuzzyKeyword(t *testing.T) {
	e := NewExtractor(0)

	got := e.Extract("new projct website redesign", classify.Entities{
		Entity: match("project"),
	}, monday)

	if v, ok := got["projectName"]; !ok || v.Text != "website redesign" {
		t.Errorf("projectName = %+v, want 'website redesign'", v)
	}
}

// Unparseable dates are absent, never an error.
func TestExtractBadDateAbsent(t *testing.T) {
	e := NewExtractor(0)

	got := e.Extract("update the task by whenever feels right honestly", classify.Entities{
		Entity: match("task"),
	}, monday)

	if _, ok := got["dueDate"]; ok {
		t.Error("dueDate present for unparseable expression")
	}
}

func TestRankNames(t *testing.T) {
	names := []string{"Jonathan Smith", "Jane Doe", "Priya Patel"}

	ranked := RankNames("jon sm", names)
	if len(ranked) == 0 || ranked[0] != "Jonathan Smith" {
		t.Fatalf("RankNames = %v, want Jonathan Smith first", ranked)
	}

	if got := RankNames("", names); got != nil {
		t.Errorf("empty query = %v, want nil", got)
	}

	if _, ok := BestName("zzz", names); ok {
		t.Error("BestName matched nothing-alike query")
	}
}
