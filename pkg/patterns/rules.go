// Package patterns implements the first interpretation tier: an ordered
// table of anchored regular expressions. First match wins at confidence 1.0.
package patterns

import (
	"regexp"
	"strings"
	"time"

	"github.com/tapvera/gotap/pkg/command"
	"github.com/tapvera/gotap/pkg/lexical"
	"github.com/tapvera/gotap/pkg/params"
	"github.com/tapvera/gotap/pkg/synonyms"
)

// ============================================================================
// Rule table
// ============================================================================

// ExtractorKind names the group-extraction routine a rule dispatches to.
// Rules stay plain data; the routines live in one dispatch table below.
type ExtractorKind int

const (
	ExtractNone ExtractorKind = iota
	ExtractTaskFull
	ExtractPriorityTask
	ExtractProjectForClient
	ExtractClientNamed
	ExtractLeaveRange
	ExtractLeaveTyped
	ExtractEmployeeRole
	ExtractEmployeeDept
	ExtractAttendanceToday
)

// Rule is one pattern entry. Static parameters apply as-is; Extract names
// the routine that turns capture groups into further parameters.
type Rule struct {
	Name    string
	Re      *regexp.Regexp
	Action  command.Action
	Static  map[string]command.Value
	Extract ExtractorKind
}

// Ordered most-specific-first; listing rules are anchored at the start of
// the utterance so near-miss typos ("shw my tasks") fall through to the
// fuzzy tier instead of matching here.
var rules = []Rule{
	// Tasks
	{
		Name:    "create-task-full",
		Re:      regexp.MustCompile(`(?i)create\s+(?:an?\s+)?task\s+for\s+(\w+(?:\s+\w+)?)\s+to\s+(.+?)(?:\s+by\s+(.+?))?(?:\s+with\s+(\w+)\s+priority)?$`),
		Action:  command.CreateTask,
		Extract: ExtractTaskFull,
	},
	{
		Name:    "create-task-priority-first",
		Re:      regexp.MustCompile(`(?i)create\s+(?:an?\s+)?(\w+)\s+priority\s+task\s+(.+)$`),
		Action:  command.CreateTask,
		Extract: ExtractPriorityTask,
	},
	{
		Name:   "create-task-bare",
		Re:     regexp.MustCompile(`(?i)\bcreate\b.*\btask`),
		Action: command.CreateTask,
	},
	{
		Name:   "list-tasks",
		Re:     regexp.MustCompile(`(?i)^(?:show|list|get)\b.*\btasks?\b|^my\s+tasks?\b`),
		Action: command.GetTasks,
	},
	{
		Name:   "pending-tasks",
		Re:     regexp.MustCompile(`(?i)\bpending\s+tasks?\b`),
		Action: command.GetTasks,
		Static: map[string]command.Value{"status": command.StatusValue("pending")},
	},
	{
		Name:   "completed-tasks",
		Re:     regexp.MustCompile(`(?i)\bcompleted\s+tasks?\b`),
		Action: command.GetTasks,
		Static: map[string]command.Value{"status": command.StatusValue("completed")},
	},
	{
		Name:   "in-progress-tasks",
		Re:     regexp.MustCompile(`(?i)\bin[_\s]?progress\s+tasks?\b`),
		Action: command.GetTasks,
		Static: map[string]command.Value{"status": command.StatusValue("in_progress")},
	},
	{
		Name:   "high-priority-tasks",
		Re:     regexp.MustCompile(`(?i)\bhigh\s+priority\s+tasks?\b`),
		Action: command.GetTasks,
		Static: map[string]command.Value{"priority": command.PriorityValue("high")},
	},

	// Projects
	{
		Name:    "create-project",
		Re:      regexp.MustCompile(`(?i)create\s+(?:an?\s+)?project\s+(?:called\s+|named\s+)?(.+?)\s+for\s+(.+)$`),
		Action:  command.CreateProject,
		Extract: ExtractProjectForClient,
	},
	{
		Name:   "list-projects",
		Re:     regexp.MustCompile(`(?i)^(?:show|list|get)\b.*\bprojects?\b`),
		Action: command.GetProjects,
	},
	{
		Name:   "active-projects",
		Re:     regexp.MustCompile(`(?i)\bactive\s+projects?\b`),
		Action: command.GetProjects,
		Static: map[string]command.Value{"status": command.StatusValue("active")},
	},
	{
		Name:   "ongoing-projects",
		Re:     regexp.MustCompile(`(?i)\bongoing\s+projects?\b`),
		Action: command.GetProjects,
		Static: map[string]command.Value{"status": command.StatusValue("ongoing")},
	},
	{
		Name:   "completed-projects",
		Re:     regexp.MustCompile(`(?i)\bcompleted\s+projects?\b`),
		Action: command.GetProjects,
		Static: map[string]command.Value{"status": command.StatusValue("completed")},
	},

	// Employees
	{
		Name:   "list-employees",
		Re:     regexp.MustCompile(`(?i)^(?:show|list|get)\b.*\bemployees?\b|^list\b.*\bteam\b`),
		Action: command.GetEmployees,
	},
	{
		Name:    "employees-by-role",
		Re:      regexp.MustCompile(`(?i)\b(\w+)\s+employees?\b`),
		Action:  command.GetEmployees,
		Extract: ExtractEmployeeRole,
	},
	{
		Name:    "employees-by-dept",
		Re:      regexp.MustCompile(`(?i)\bemployees?\s+in\s+(.+)$`),
		Action:  command.GetEmployees,
		Extract: ExtractEmployeeDept,
	},

	// Clients
	{
		Name:   "list-clients",
		Re:     regexp.MustCompile(`(?i)^(?:show|list|get)\b.*\bclients?\b`),
		Action: command.GetClients,
	},
	{
		Name:   "active-clients",
		Re:     regexp.MustCompile(`(?i)\bactive\s+clients?\b`),
		Action: command.GetClients,
		Static: map[string]command.Value{"status": command.StatusValue("active")},
	},
	{
		Name:    "create-client",
		Re:      regexp.MustCompile(`(?i)(?:create|add)\s+(?:an?\s+)?client\s+(.+)$`),
		Action:  command.CreateClient,
		Extract: ExtractClientNamed,
	},

	// Attendance
	{
		Name:    "attendance-today",
		Re:      regexp.MustCompile(`(?i)\battendance\b.*\btoday\b`),
		Action:  command.GetAttendance,
		Extract: ExtractAttendanceToday,
	},
	{
		Name:   "attendance-this-week",
		Re:     regexp.MustCompile(`(?i)\battendance\b.*\bthis\s+week\b`),
		Action: command.GetAttendance,
		Static: map[string]command.Value{"limit": command.NumberValue(7)},
	},
	{
		Name:   "attendance-this-month",
		Re:     regexp.MustCompile(`(?i)\battendance\b.*\bthis\s+month\b`),
		Action: command.GetAttendance,
		Static: map[string]command.Value{"limit": command.NumberValue(30)},
	},
	{
		Name:   "my-attendance",
		Re:     regexp.MustCompile(`(?i)^my\s+attendance\b|^(?:show|check)\b.*\battendance\b`),
		Action: command.GetAttendance,
	},

	// Leave
	{
		Name:    "leave-range",
		Re:      regexp.MustCompile(`(?i)(?:request|apply|take)\s+leave\s+from\s+(.+?)\s+to\s+(.+?)(?:\s+for\s+(.+))?$`),
		Action:  command.CreateLeave,
		Extract: ExtractLeaveRange,
	},
	{
		Name:    "leave-typed",
		Re:      regexp.MustCompile(`(?i)(?:request|apply)\s+(\w+)\s+leave\b`),
		Action:  command.CreateLeave,
		Extract: ExtractLeaveTyped,
	},
	{
		Name:   "list-leaves",
		Re:     regexp.MustCompile(`(?i)^my\s+leaves?\b|^show\b.*\bleaves?\b`),
		Action: command.GetLeaves,
	},
	{
		Name:   "pending-leaves",
		Re:     regexp.MustCompile(`(?i)\bpending\s+leaves?\b`),
		Action: command.GetLeaves,
		Static: map[string]command.Value{"status": command.StatusValue("pending")},
	},

	// Analytics
	{
		Name:   "analytics",
		Re:     regexp.MustCompile(`(?i)\b(?:analytics|statistics|stats|reports?)\b`),
		Action: command.GetAnalytics,
	},
}

// ============================================================================
// Matching
// ============================================================================

// Table matches utterances against the rule list.
type Table struct {
	rules []Rule
	index *synonyms.Index
}

// NewTable builds the table; the index resolves captured enum words
// ("urgent" -> priority high).
func NewTable(index *synonyms.Index) *Table {
	return &Table{rules: rules, index: index}
}

// Rules exposes the table for inspection and tests.
func (t *Table) Rules() []Rule { return t.rules }

// Match runs the text through the table in order. The text is cleaned but
// not lowercased before matching, so capture groups keep the caller's
// casing. A hit yields a complete command at confidence 1.0.
func (t *Table) Match(text string, now time.Time) (*command.Command, bool) {
	clean := lexical.Clean(text)
	if clean == "" {
		return nil, false
	}

	for _, rule := range t.rules {
		m := rule.Re.FindStringSubmatch(clean)
		if m == nil {
			continue
		}

		p := make(map[string]command.Value, len(rule.Static)+4)
		for k, v := range rule.Static {
			p[k] = v
		}
		if fn := extractors[rule.Extract]; fn != nil {
			for k, v := range fn(t, m, now) {
				p[k] = v
			}
		}

		return &command.Command{
			Action:     rule.Action,
			Params:     p,
			Confidence: 1.0,
			Method:     command.MethodRegex,
		}, true
	}

	return nil, false
}

// ============================================================================
// Extractor dispatch
// ============================================================================

type extractFunc func(t *Table, m []string, now time.Time) map[string]command.Value

var extractors = map[ExtractorKind]extractFunc{
	ExtractTaskFull:         extractTaskFull,
	ExtractPriorityTask:     extractPriorityTask,
	ExtractProjectForClient: extractProjectForClient,
	ExtractClientNamed:      extractClientNamed,
	ExtractLeaveRange:       extractLeaveRange,
	ExtractLeaveTyped:       extractLeaveTyped,
	ExtractEmployeeRole:     extractEmployeeRole,
	ExtractEmployeeDept:     extractEmployeeDept,
	ExtractAttendanceToday:  extractAttendanceToday,
}

func extractTaskFull(t *Table, m []string, now time.Time) map[string]command.Value {
	p := map[string]command.Value{
		"assigneeName": command.PersonValue(m[1]),
		"title":        command.TextValue(m[2]),
	}
	if m[3] != "" {
		if due, ok := params.ParseDate(m[3], now); ok {
			p["dueDate"] = command.DateValue(due)
		}
	}
	if m[4] != "" {
		p["priority"] = command.PriorityValue(t.canonicalPriority(m[4]))
	}
	return p
}

func extractPriorityTask(t *Table, m []string, _ time.Time) map[string]command.Value {
	return map[string]command.Value{
		"priority": command.PriorityValue(t.canonicalPriority(m[1])),
		"title":    command.TextValue(m[2]),
	}
}

func extractProjectForClient(_ *Table, m []string, _ time.Time) map[string]command.Value {
	return map[string]command.Value{
		"projectName": command.TextValue(m[1]),
		"clientName":  command.TextValue(m[2]),
	}
}

func extractClientNamed(_ *Table, m []string, _ time.Time) map[string]command.Value {
	return map[string]command.Value{"clientName": command.TextValue(m[1])}
}

func extractLeaveRange(_ *Table, m []string, now time.Time) map[string]command.Value {
	p := make(map[string]command.Value, 3)
	if start, ok := params.ParseDate(m[1], now); ok {
		p["startDate"] = command.DateValue(start)
	}
	if end, ok := params.ParseDate(m[2], now); ok {
		p["endDate"] = command.DateValue(end)
	}
	reason := m[3]
	if reason == "" {
		reason = "Personal"
	}
	p["reason"] = command.TextValue(reason)
	return p
}

func extractLeaveTyped(_ *Table, m []string, _ time.Time) map[string]command.Value {
	return map[string]command.Value{"leaveType": command.TextValue(strings.ToLower(m[1]))}
}

func extractEmployeeRole(_ *Table, m []string, _ time.Time) map[string]command.Value {
	return map[string]command.Value{"role": command.TextValue(strings.ToLower(m[1]))}
}

func extractEmployeeDept(_ *Table, m []string, _ time.Time) map[string]command.Value {
	return map[string]command.Value{"department": command.TextValue(m[1])}
}

func extractAttendanceToday(_ *Table, _ []string, now time.Time) map[string]command.Value {
	return map[string]command.Value{"date": command.DateValue(now)}
}

// canonicalPriority resolves a captured priority word through the synonym
// index, falling back to the lowercased literal.
func (t *Table) canonicalPriority(raw string) string {
	if canonical, ok := t.index.Lookup(synonyms.CategoryPriority, strings.ToLower(raw)); ok {
		return canonical
	}
	return strings.ToLower(raw)
}
