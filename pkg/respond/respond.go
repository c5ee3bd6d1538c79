// Package respond renders interpreted commands into replies and into the
// minimal JSON shape API consumers read.
package respond

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/tapvera/gotap/pkg/command"
)

// RenderHelp is the reply for utterances neither tier recognized.
func RenderHelp() string {
	return strings.Join([]string{
		"I'm not sure what you want me to do. Try:",
		"• 'Show my tasks'",
		"• 'List all employees'",
		"• 'Create a task'",
		"• 'Get attendance'",
		"• 'Show projects'",
	}, "\n")
}

// Render produces a short human reply describing the recognized command.
func Render(cmd *command.Command) string {
	if cmd == nil {
		return RenderHelp()
	}

	info, ok := command.Info(cmd.Action)
	label := string(cmd.Action)
	if ok {
		label = info.Label
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Got it. I'll %s", label)

	if len(cmd.Params) > 0 {
		parts := make([]string, 0, len(cmd.Params))
		for _, k := range sortedKeys(cmd.Params) {
			parts = append(parts, fmt.Sprintf("%s: %s", k, cmd.Params[k].String()))
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(parts, ", "))
	}

	if cmd.Confidence < 1.0 {
		fmt.Fprintf(&b, " [confidence %d%%]", int(cmd.Confidence*100))
	}

	return b.String()
}

// SlimCommand is the wire shape of one interpreted command. Only the fields
// consumers actually read.
type SlimCommand struct {
	Action     string                   `json:"action"`
	Params     map[string]command.Value `json:"params,omitempty"`
	Confidence float64                  `json:"confidence"`
	Method     string                   `json:"method"`
}

// SlimResponse wraps a command (or its absence) with the rendered reply.
type SlimResponse struct {
	Recognized bool         `json:"recognized"`
	Command    *SlimCommand `json:"command,omitempty"`
	Reply      string       `json:"reply"`
}

// Slim converts a command to its wire shape.
func Slim(cmd *command.Command) *SlimCommand {
	if cmd == nil {
		return nil
	}
	return &SlimCommand{
		Action:     string(cmd.Action),
		Params:     cmd.Params,
		Confidence: cmd.Confidence,
		Method:     string(cmd.Method),
	}
}

// MarshalSlimResponse builds the JSON reply for one interpretation result.
func MarshalSlimResponse(cmd *command.Command) ([]byte, error) {
	resp := SlimResponse{
		Recognized: cmd != nil,
		Command:    Slim(cmd),
		Reply:      Render(cmd),
	}
	return json.Marshal(resp)
}

func sortedKeys(m map[string]command.Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
