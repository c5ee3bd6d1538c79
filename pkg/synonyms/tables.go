package synonyms

// Concept maps a canonical term to its accepted synonyms. The canonical
// term always resolves to itself; it does not need to be repeated in the
// synonym list.
type Concept struct {
	Canonical string
	Synonyms  []string
}

// The tables are ordered slices, not maps: iteration order is declaration
// order, which makes collision resolution and fuzzy tie-breaking
// deterministic (earlier declaration wins).

var intentConcepts = []Concept{
	{"create", []string{"make", "add", "new", "start", "begin", "initiate", "setup", "build", "generate"}},
	{"view", []string{"show", "display", "list", "see", "get", "fetch", "retrieve", "find"}},
	{"update", []string{"edit", "modify", "change", "alter", "revise", "adjust"}},
	{"delete", []string{"remove", "erase", "clear", "drop", "cancel"}},
	{"filter", []string{"search", "find", "query", "lookup", "sort"}},
	{"approve", []string{"accept", "confirm", "allow", "permit", "ok", "yes"}},
	{"reject", []string{"deny", "decline", "refuse", "dismiss", "no"}},
	{"assign", []string{"give", "allocate", "delegate", "set"}},
	{"complete", []string{"finish", "done", "complete", "end", "close"}},
	{"status", []string{"check", "info", "information", "details", "state"}},
}

var entityConcepts = []Concept{
	{"task", []string{"todo", "work", "job", "assignment", "activity", "item"}},
	{"project", []string{"proj", "initiative", "program", "venture"}},
	{"employee", []string{"emp", "staff", "worker", "team", "member", "person", "user"}},
	{"client", []string{"customer", "consumer", "account", "buyer"}},
	{"leave", []string{"vacation", "pto", "absence", "holiday", "off", "timeoff"}},
	{"attendance", []string{"presence", "checkin", "punch", "clock"}},
	{"analytics", []string{"stats", "statistics", "reports", "metrics", "insights", "data"}},
}

var priorityConcepts = []Concept{
	{"high", []string{"urgent", "critical", "important", "asap", "priority", "top"}},
	{"medium", []string{"normal", "moderate", "regular", "standard", "mid"}},
	{"low", []string{"minor", "trivial", "small", "basic", "least"}},
}

var statusConcepts = []Concept{
	{"pending", []string{"waiting", "open", "todo", "incomplete", "unfinished"}},
	{"approved", []string{"accepted", "confirmed", "ok", "good", "yes"}},
	{"rejected", []string{"denied", "declined", "refused", "no"}},
	{"completed", []string{"done", "finished", "closed", "complete", "ended"}},
}

// Multi-token surface forms that tokenization would split apart. Matched
// whole via the automaton scan; each maps into the Entity category.
var entitySurfaces = []Concept{
	{"leave", []string{"time off", "day off", "days off"}},
	{"attendance", []string{"check in", "clock in", "sign in"}},
	{"employee", []string{"team member"}},
}
