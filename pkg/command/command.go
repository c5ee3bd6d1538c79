// Package command defines the typed output of interpretation: actions,
// parameter values, and the resolver from classified concepts to actions.
package command

import (
	"encoding/json"
	"fmt"
	"time"
)

// ============================================================================
// Actions
// ============================================================================

// Action identifies an executable back-office operation.
type Action string

const (
	CreateTask       Action = "CREATE_TASK"
	AssignTask       Action = "ASSIGN_TASK"
	UpdateTaskStatus Action = "UPDATE_TASK_STATUS"
	GetTasks         Action = "GET_TASKS"
	CreateProject    Action = "CREATE_PROJECT"
	GetProjects      Action = "GET_PROJECTS"
	GetEmployees     Action = "GET_EMPLOYEES"
	CreateClient     Action = "CREATE_CLIENT"
	GetClients       Action = "GET_CLIENTS"
	GetAttendance    Action = "GET_ATTENDANCE"
	CreateLeave      Action = "CREATE_LEAVE"
	GetLeaves        Action = "GET_LEAVES"
	ApproveLeave     Action = "APPROVE_LEAVE"
	RejectLeave      Action = "REJECT_LEAVE"
	GetAnalytics     Action = "GET_ANALYTICS"
)

// ActionInfo describes a registered action for downstream dispatchers.
type ActionInfo struct {
	Action  Action
	Label   string // human label used in rendered replies
	Entity  string // primary entity the action operates on
	Mutates bool   // false for read-only queries
}

// Registry lists every dispatchable action. Resolver outputs are checked
// against it at package init.
var Registry = []ActionInfo{
	{CreateTask, "create a task", "task", true},
	{AssignTask, "assign a task", "task", true},
	{UpdateTaskStatus, "update task status", "task", true},
	{GetTasks, "list tasks", "task", false},
	{CreateProject, "create a project", "project", true},
	{GetProjects, "list projects", "project", false},
	{GetEmployees, "list employees", "employee", false},
	{CreateClient, "add a client", "client", true},
	{GetClients, "list clients", "client", false},
	{GetAttendance, "show attendance", "attendance", false},
	{CreateLeave, "request leave", "leave", true},
	{GetLeaves, "list leave requests", "leave", false},
	{ApproveLeave, "approve leave", "leave", true},
	{RejectLeave, "reject leave", "leave", true},
	{GetAnalytics, "show analytics", "analytics", false},
}

var registryByAction = func() map[Action]ActionInfo {
	m := make(map[Action]ActionInfo, len(Registry))
	for _, info := range Registry {
		m[info.Action] = info
	}
	return m
}()

// Info returns the registry entry for an action.
func Info(a Action) (ActionInfo, bool) {
	info, ok := registryByAction[a]
	return info, ok
}

// ============================================================================
// Values - tagged union for parameters
// ============================================================================

// Kind discriminates the payload of a Value.
type Kind int

const (
	KindText Kind = iota
	KindDate
	KindPerson
	KindPriority
	KindStatus
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindDate:
		return "date"
	case KindPerson:
		return "person"
	case KindPriority:
		return "priority"
	case KindStatus:
		return "status"
	case KindNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Value is one command parameter. Exactly one payload field is meaningful,
// selected by Kind, so dispatchers can switch exhaustively instead of
// sniffing an interface{} bag.
type Value struct {
	Kind   Kind
	Text   string
	Date   time.Time
	Number int
}

// Text builds a plain text value.
func TextValue(s string) Value { return Value{Kind: KindText, Text: s} }

// Person builds a person-name reference.
func PersonValue(name string) Value { return Value{Kind: KindPerson, Text: name} }

// Priority builds a canonical priority value ("high", "medium", "low").
func PriorityValue(p string) Value { return Value{Kind: KindPriority, Text: p} }

// Status builds a canonical status value.
func StatusValue(s string) Value { return Value{Kind: KindStatus, Text: s} }

// Date builds a calendar-date value, truncated to midnight.
func DateValue(t time.Time) Value {
	y, m, d := t.Date()
	return Value{Kind: KindDate, Date: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

// Number builds an integer value (row limits, counts).
func NumberValue(n int) Value { return Value{Kind: KindNumber, Number: n} }

// String renders the payload for replies and logs.
func (v Value) String() string {
	switch v.Kind {
	case KindDate:
		return v.Date.Format("2006-01-02")
	case KindNumber:
		return fmt.Sprintf("%d", v.Number)
	default:
		return v.Text
	}
}

// MarshalJSON encodes as {"kind":"date","value":"2026-09-01"}.
func (v Value) MarshalJSON() ([]byte, error) {
	var payload interface{}
	switch v.Kind {
	case KindDate:
		payload = v.Date.Format("2006-01-02")
	case KindNumber:
		payload = v.Number
	default:
		payload = v.Text
	}
	return json.Marshal(struct {
		Kind  string      `json:"kind"`
		Value interface{} `json:"value"`
	}{v.Kind.String(), payload})
}

// ============================================================================
// Commands
// ============================================================================

// Method records which tier produced a command.
type Method string

const (
	MethodRegex       Method = "regex"
	MethodFuzzyPair   Method = "fuzzy-pair"
	MethodFuzzyEntity Method = "fuzzy-entity-only"
)

// Command is the interpreted form of one utterance.
type Command struct {
	Action     Action           `json:"action"`
	Params     map[string]Value `json:"params,omitempty"`
	Confidence float64          `json:"confidence"`
	Method     Method           `json:"method"`
}
