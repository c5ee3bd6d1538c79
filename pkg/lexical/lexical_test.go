package lexical

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Create a Task!", "create a task"},
		{"  show   my  tasks?? ", "show my tasks"},
		{"aprove, leave.", "aprove leave"},
		{"", ""},
		{"!!!", ""},
		{"in-progress tasks", "in progress tasks"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Create a Task!", "what's   up", "request leave from monday to friday"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestCleanPreservesCase(t *testing.T) {
	got := Clean("create a task for John, please!")
	want := "create a task for John please"
	if got != want {
		t.Fatalf("Clean = %q, want %q", got, want)
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Show my   tasks!")
	want := []string{"show", "my", "tasks"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}

	if got := Tokenize("   "); got != nil {
		t.Fatalf("Tokenize(blank) = %v, want nil", got)
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"tasks", "task"},
		{"task", "task"},
		{"creating", "creat"},
		{"created", "creat"},
		{"creates", "creat"},
		{"create", "creat"},
		{"priorities", "priority"},
		{"priority", "priority"},
		{"pending", "pend"},
		{"done", "done"},
		{"yes", "yes"},
		{"shw", "shw"},
		{"staff", "staff"},
		{"worker", "worker"}, // agent nouns keep their suffix
	}

	for _, tt := range tests {
		if got := Stem(tt.in); got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Inflected forms must land on the same stem as their base form; the
// classifier's exact lookup depends on it.
func TestStemFamiliesAgree(t *testing.T) {
	families := [][]string{
		{"leave", "leaves"},
		{"employee", "employees"},
		{"status", "statuses"},
		{"approve", "approved", "approves"},
		{"project", "projects"},
	}

	for _, family := range families {
		base := Stem(family[0])
		for _, w := range family[1:] {
			if got := Stem(w); got != base {
				t.Errorf("Stem(%q) = %q, want %q (stem of %q)", w, got, base, family[0])
			}
		}
	}
}

func TestIsStopword(t *testing.T) {
	if !IsStopword("the") {
		t.Error("expected 'the' to be a stopword")
	}
	if IsStopword("task") {
		t.Error("did not expect 'task' to be a stopword")
	}
}
