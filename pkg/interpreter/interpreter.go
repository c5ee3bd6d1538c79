// Package interpreter wires the two interpretation tiers behind one facade:
// pattern rules first, fuzzy classification second, with per-caller
// conversation history recorded along the way.
package interpreter

import (
	"fmt"
	"time"

	"github.com/tapvera/gotap/internal/store"
	"github.com/tapvera/gotap/pkg/classify"
	"github.com/tapvera/gotap/pkg/command"
	"github.com/tapvera/gotap/pkg/params"
	"github.com/tapvera/gotap/pkg/patterns"
	"github.com/tapvera/gotap/pkg/respond"
	"github.com/tapvera/gotap/pkg/synonyms"
)

// CallerRef identifies who is talking. Interpretation reads the ID for
// history keying and never mutates the rest.
type CallerRef struct {
	ID   string
	Name string
	Role string
}

// Config carries the tunables.
type Config struct {
	// Threshold is the minimum fuzzy similarity the classifier accepts.
	Threshold float64
	// MaxTurns bounds history at 2×MaxTurns entries (a turn and its reply
	// are separate entries).
	MaxTurns int
}

// DefaultConfig returns the shipped tuning.
func DefaultConfig() Config {
	return Config{Threshold: classify.DefaultThreshold, MaxTurns: 10}
}

// HistoryCapacity is the entry bound implied by MaxTurns.
func (c Config) HistoryCapacity() int {
	maxTurns := c.MaxTurns
	if maxTurns <= 0 {
		maxTurns = DefaultConfig().MaxTurns
	}
	return 2 * maxTurns
}

// Interpreter turns utterances into commands.
type Interpreter struct {
	table      *patterns.Table
	classifier *classify.Classifier
	extractor  *params.Extractor
	history    store.Storer
	now        func() time.Time
}

// New builds an interpreter. A nil history selects an in-memory store
// bounded by the config.
func New(cfg Config, history store.Storer) (*Interpreter, error) {
	index, err := synonyms.New()
	if err != nil {
		return nil, fmt.Errorf("interpreter: build lexicon: %w", err)
	}

	if history == nil {
		history = store.NewMemoryStore(cfg.HistoryCapacity())
	}

	return &Interpreter{
		table:      patterns.NewTable(index),
		classifier: classify.New(index, cfg.Threshold),
		extractor:  params.NewExtractor(cfg.Threshold),
		history:    history,
		now:        time.Now,
	}, nil
}

// SetClock replaces the time source. Tests pin it so relative dates are
// reproducible; with a fixed clock the same text always yields an
// identical command.
func (i *Interpreter) SetClock(now func() time.Time) {
	i.now = now
}

// Interpret resolves one utterance. ok=false means neither tier recognized
// it; err reports history persistence failures only. Both outcomes append
// the exchange to the caller's history.
func (i *Interpreter) Interpret(callerID, text string) (cmd *command.Command, ok bool, err error) {
	now := i.now()

	cmd, ok = i.table.Match(text, now)
	if !ok {
		cmd, ok = i.classifyCommand(text, now)
	}

	if herr := i.record(callerID, text, cmd, now); herr != nil {
		return cmd, ok, herr
	}
	return cmd, ok, nil
}

// classifyCommand is the fuzzy tier: intent+entity resolves through the
// pair table at the mean of both confidences; a lone entity falls back to
// its default view action.
func (i *Interpreter) classifyCommand(text string, now time.Time) (*command.Command, bool) {
	ents := i.classifier.Classify(text)

	if ents.Intent != nil && ents.Entity != nil {
		if action, ok := command.ResolvePair(ents.Intent.Canonical, ents.Entity.Canonical); ok {
			return &command.Command{
				Action:     action,
				Params:     i.extractor.Extract(text, ents, now),
				Confidence: (ents.Intent.Confidence + ents.Entity.Confidence) / 2,
				Method:     command.MethodFuzzyPair,
			}, true
		}
	}

	if ents.Entity != nil {
		if action, ok := command.ResolveEntity(ents.Entity.Canonical); ok {
			return &command.Command{
				Action:     action,
				Params:     map[string]command.Value{},
				Confidence: ents.Entity.Confidence,
				Method:     command.MethodFuzzyEntity,
			}, true
		}
	}

	return nil, false
}

// record appends the caller's utterance and the rendered reply.
func (i *Interpreter) record(callerID, text string, cmd *command.Command, now time.Time) error {
	if err := i.history.Append(callerID, store.Turn{
		Role: store.RoleUser, Content: text, CreatedAt: now,
	}); err != nil {
		return fmt.Errorf("interpreter: record turn: %w", err)
	}
	if err := i.history.Append(callerID, store.Turn{
		Role: store.RoleAssistant, Content: respond.Render(cmd), CreatedAt: now,
	}); err != nil {
		return fmt.Errorf("interpreter: record reply: %w", err)
	}
	return nil
}

// History returns the caller's retained turns, oldest first.
func (i *Interpreter) History(callerID string) ([]store.Turn, error) {
	return i.history.Recent(callerID)
}

// ClearHistory drops the caller's history.
func (i *Interpreter) ClearHistory(callerID string) error {
	return i.history.Clear(callerID)
}
