package patterns

import (
	"testing"
	"time"

	"github.com/tapvera/gotap/pkg/command"
	"github.com/tapvera/gotap/pkg/synonyms"
)

// 2024-01-01 was a Monday.
var monday = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func newTable(t *testing.T) *Table {
	t.Helper()
	ix, err := synonyms.New()
	if err != nil {
		t.Fatalf("synonyms.New() failed: %v", err)
	}
	return NewTable(ix)
}

func TestMatchCreateTaskFull(t *testing.T) {
	tbl := newTable(t)

	cmd, ok := tbl.Match("create a task for John to review contract by tomorrow with high priority", monday)
	if !ok {
		t.Fatal("no match")
	}
	if cmd.Action != command.CreateTask {
		t.Fatalf("action = %s, want CREATE_TASK", cmd.Action)
	}
	if cmd.Confidence != 1.0 || cmd.Method != command.MethodRegex {
		t.Fatalf("confidence/method = %v/%s, want 1.0/regex", cmd.Confidence, cmd.Method)
	}

	if v := cmd.Params["assigneeName"]; v.Kind != command.KindPerson || v.Text != "John" {
		t.Errorf("assigneeName = %+v, want person John", v)
	}
	if v := cmd.Params["title"]; v.Text != "review contract" {
		t.Errorf("title = %+v, want 'review contract'", v)
	}
	if v := cmd.Params["dueDate"]; v.String() != "2024-01-02" {
		t.Errorf("dueDate = %+v, want 2024-01-02", v)
	}
	if v := cmd.Params["priority"]; v.Kind != command.KindPriority || v.Text != "high" {
		t.Errorf("priority = %+v, want high", v)
	}
}

// Captured priority words resolve through the synonym index.
func TestMatchPriorityFirstForm(t *testing.T) {
	tbl := newTable(t)

	cmd, ok := tbl.Match("create an urgent priority task fix the login page", monday)
	if !ok || cmd.Action != command.CreateTask {
		t.Fatalf("cmd = %+v (%v)", cmd, ok)
	}
	if v := cmd.Params["priority"]; v.Text != "high" {
		t.Errorf("priority = %+v, want high (canonical of urgent)", v)
	}
	if v := cmd.Params["title"]; v.Text != "fix the login page" {
		t.Errorf("title = %+v", v)
	}
}

func TestMatchStaticParams(t *testing.T) {
	tbl := newTable(t)

	tests := []struct {
		text   string
		action command.Action
		param  string
		want   string
	}{
		{"pending tasks", command.GetTasks, "status", "pending"},
		{"completed tasks", command.GetTasks, "status", "completed"},
		{"in-progress tasks", command.GetTasks, "status", "in_progress"},
		{"high priority tasks", command.GetTasks, "priority", "high"},
		{"active projects", command.GetProjects, "status", "active"},
		{"pending leaves", command.GetLeaves, "status", "pending"},
	}

	for _, tt := range tests {
		cmd, ok := tbl.Match(tt.text, monday)
		if !ok || cmd.Action != tt.action {
			t.Errorf("Match(%q) = %+v (%v), want %s", tt.text, cmd, ok, tt.action)
			continue
		}
		if v := cmd.Params[tt.param]; v.String() != tt.want {
			t.Errorf("Match(%q) %s = %q, want %q", tt.text, tt.param, v.String(), tt.want)
		}
	}
}

func TestMatchLeaveRange(t *testing.T) {
	tbl := newTable(t)

	cmd, ok := tbl.Match("request leave from monday to friday for vacation", monday)
	if !ok || cmd.Action != command.CreateLeave {
		t.Fatalf("cmd = %+v (%v), want CREATE_LEAVE", cmd, ok)
	}

	// From a Monday: "monday" rolls a week, "friday" is this week.
	if v := cmd.Params["startDate"]; v.String() != "2024-01-08" {
		t.Errorf("startDate = %+v, want 2024-01-08", v)
	}
	if v := cmd.Params["endDate"]; v.String() != "2024-01-05" {
		t.Errorf("endDate = %+v, want 2024-01-05", v)
	}
	if v := cmd.Params["reason"]; v.Text != "vacation" {
		t.Errorf("reason = %+v, want vacation", v)
	}
}

func TestMatchLeaveRangeDefaultReason(t *testing.T) {
	tbl := newTable(t)

	cmd, ok := tbl.Match("take leave from tomorrow to friday", monday)
	if !ok || cmd.Action != command.CreateLeave {
		t.Fatalf("cmd = %+v (%v)", cmd, ok)
	}
	if v := cmd.Params["reason"]; v.Text != "Personal" {
		t.Errorf("reason = %+v, want Personal", v)
	}
}

func TestMatchEmployees(t *testing.T) {
	tbl := newTable(t)

	cmd, ok := tbl.Match("senior employees", monday)
	if !ok || cmd.Action != command.GetEmployees {
		t.Fatalf("cmd = %+v (%v)", cmd, ok)
	}
	if v := cmd.Params["role"]; v.Text != "senior" {
		t.Errorf("role = %+v, want senior", v)
	}

	cmd, ok = tbl.Match("employees in engineering", monday)
	if !ok || cmd.Action != command.GetEmployees {
		t.Fatalf("cmd = %+v (%v)", cmd, ok)
	}
	if v := cmd.Params["department"]; v.Text != "engineering" {
		t.Errorf("department = %+v, want engineering", v)
	}
}

func TestMatchAttendance(t *testing.T) {
	tbl := newTable(t)

	cmd, ok := tbl.Match("attendance today", monday)
	if !ok || cmd.Action != command.GetAttendance {
		t.Fatalf("cmd = %+v (%v)", cmd, ok)
	}
	if v := cmd.Params["date"]; v.String() != "2024-01-01" {
		t.Errorf("date = %+v, want 2024-01-01", v)
	}

	cmd, _ = tbl.Match("attendance this week", monday)
	if v := cmd.Params["limit"]; v.Kind != command.KindNumber || v.Number != 7 {
		t.Errorf("limit = %+v, want 7", v)
	}

	cmd, _ = tbl.Match("attendance this month", monday)
	if v := cmd.Params["limit"]; v.Number != 30 {
		t.Errorf("limit = %+v, want 30", v)
	}
}

// Listing rules are anchored: a typo'd verb must fall through to the fuzzy
// tier rather than matching here.
func TestMatchAnchoring(t *testing.T) {
	tbl := newTable(t)

	if cmd, ok := tbl.Match("shw my tasks", monday); ok {
		t.Fatalf("typo'd verb matched rule table: %+v", cmd)
	}
	if _, ok := tbl.Match("show my tasks", monday); !ok {
		t.Fatal("'show my tasks' should match")
	}
	if _, ok := tbl.Match("my tasks", monday); !ok {
		t.Fatal("'my tasks' should match")
	}
}

func TestMatchOrderMostSpecificFirst(t *testing.T) {
	tbl := newTable(t)

	// Both the full create-task rule and the bare one match; the full one
	// is declared first and must win.
	cmd, ok := tbl.Match("create a task for Ana to ship the release", monday)
	if !ok {
		t.Fatal("no match")
	}
	if _, present := cmd.Params["assigneeName"]; !present {
		t.Fatalf("specific rule did not win, params = %+v", cmd.Params)
	}
}

func TestMatchAnalytics(t *testing.T) {
	tbl := newTable(t)

	for _, text := range []string{"show analytics", "stats please", "monthly reports"} {
		cmd, ok := tbl.Match(text, monday)
		if !ok || cmd.Action != command.GetAnalytics {
			t.Errorf("Match(%q) = %+v (%v), want GET_ANALYTICS", text, cmd, ok)
		}
	}
}

func TestMatchNothing(t *testing.T) {
	tbl := newTable(t)

	for _, text := range []string{"", "xyz qwerty asdf", "aprove leave"} {
		if cmd, ok := tbl.Match(text, monday); ok {
			t.Errorf("Match(%q) unexpectedly hit: %+v", text, cmd)
		}
	}
}
