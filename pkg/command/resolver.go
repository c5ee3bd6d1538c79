package command

import "fmt"

// pairKey joins a classified intent and entity.
type pairKey struct {
	intent string
	entity string
}

// pairActions maps (intent, entity) to an action. Pairs absent here fall
// back to the entity default, then to nothing.
var pairActions = map[pairKey]Action{
	{"create", "task"}:    CreateTask,
	{"create", "project"}: CreateProject,
	{"create", "client"}:  CreateClient,
	{"create", "leave"}:   CreateLeave,

	{"view", "task"}:       GetTasks,
	{"view", "project"}:    GetProjects,
	{"view", "employee"}:   GetEmployees,
	{"view", "client"}:     GetClients,
	{"view", "attendance"}: GetAttendance,
	{"view", "leave"}:      GetLeaves,
	{"view", "analytics"}:  GetAnalytics,

	{"filter", "task"}:     GetTasks,
	{"filter", "project"}:  GetProjects,
	{"filter", "employee"}: GetEmployees,

	{"update", "task"}: UpdateTaskStatus,
	{"assign", "task"}: AssignTask,

	{"approve", "leave"}: ApproveLeave,
	{"reject", "leave"}:  RejectLeave,
}

// entityDefaults maps a lone entity to its read-only view action.
var entityDefaults = map[string]Action{
	"task":       GetTasks,
	"project":    GetProjects,
	"employee":   GetEmployees,
	"client":     GetClients,
	"attendance": GetAttendance,
	"leave":      GetLeaves,
	"analytics":  GetAnalytics,
}

// ResolvePair maps an intent+entity pair to an action.
func ResolvePair(intent, entity string) (Action, bool) {
	a, ok := pairActions[pairKey{intent, entity}]
	return a, ok
}

// ResolveEntity maps a lone entity to its default view action.
func ResolveEntity(entity string) (Action, bool) {
	a, ok := entityDefaults[entity]
	return a, ok
}

// Every resolver output must be a registered action; a miss here is a
// programming error, caught before anything interprets.
func init() {
	for key, a := range pairActions {
		if _, ok := registryByAction[a]; !ok {
			panic(fmt.Sprintf("command: pair %s-%s resolves to unregistered action %s", key.intent, key.entity, a))
		}
	}
	for entity, a := range entityDefaults {
		if _, ok := registryByAction[a]; !ok {
			panic(fmt.Sprintf("command: entity %s resolves to unregistered action %s", entity, a))
		}
	}
}
