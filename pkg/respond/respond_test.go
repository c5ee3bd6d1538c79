package respond

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/tapvera/gotap/pkg/command"
)

func TestRenderNil(t *testing.T) {
	got := Render(nil)
	if !strings.Contains(got, "not sure") || !strings.Contains(got, "Show my tasks") {
		t.Fatalf("nil render missing help text: %q", got)
	}
}

func TestRenderCommand(t *testing.T) {
	cmd := &command.Command{
		Action: command.CreateTask,
		Params: map[string]command.Value{
			"title":    command.TextValue("review contract"),
			"priority": command.PriorityValue("high"),
		},
		Confidence: 1.0,
		Method:     command.MethodRegex,
	}

	got := Render(cmd)
	if !strings.Contains(got, "create a task") {
		t.Errorf("reply missing action label: %q", got)
	}
	if !strings.Contains(got, "priority: high") || !strings.Contains(got, "title: review contract") {
		t.Errorf("reply missing params: %q", got)
	}
	if strings.Contains(got, "confidence") {
		t.Errorf("full-confidence reply should not mention confidence: %q", got)
	}
}

func TestRenderMentionsLowConfidence(t *testing.T) {
	cmd := &command.Command{Action: command.GetTasks, Confidence: 0.75, Method: command.MethodFuzzyEntity}
	if got := Render(cmd); !strings.Contains(got, "75%") {
		t.Errorf("reply missing confidence note: %q", got)
	}
}

func TestMarshalSlimResponse(t *testing.T) {
	cmd := &command.Command{
		Action:     command.GetTasks,
		Params:     map[string]command.Value{"status": command.StatusValue("pending")},
		Confidence: 1.0,
		Method:     command.MethodRegex,
	}

	raw, err := MarshalSlimResponse(cmd)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["recognized"] != true {
		t.Error("recognized != true")
	}
	inner, ok := decoded["command"].(map[string]interface{})
	if !ok || inner["action"] != "GET_TASKS" || inner["method"] != "regex" {
		t.Errorf("command payload = %+v", decoded["command"])
	}

	raw, err = MarshalSlimResponse(nil)
	if err != nil {
		t.Fatalf("marshal nil: %v", err)
	}
	decoded = map[string]interface{}{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal nil: %v", err)
	}
	if decoded["recognized"] != false {
		t.Error("nil command should not be recognized")
	}
	if _, present := decoded["command"]; present {
		t.Error("nil command should omit the command field")
	}
}
