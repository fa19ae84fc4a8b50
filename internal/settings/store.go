package settings

import (
	"context"
	"errors"
	"math"
)

type ActionType int

const (
	ActionIncrement ActionType = iota
	ActionDecrement
	ActionReset
	ActionReplace
)

// Action is a store mutation. Build one with Increment, Decrement, Reset or Replace.
type Action struct {
	Type   ActionType
	Field  Field
	Value  float64
	Config GridConfig
}

func Increment(f Field, v float64) Action { return Action{Type: ActionIncrement, Field: f, Value: v} }
func Decrement(f Field, v float64) Action { return Action{Type: ActionDecrement, Field: f, Value: v} }
func Reset() Action                       { return Action{Type: ActionReset} }

// Replace swaps in a whole config, as loaded from a file.
func Replace(c GridConfig) Action { return Action{Type: ActionReplace, Config: c} }

// Reduce returns the state that results from applying a to s.
// Unknown fields, non-finite deltas and unknown action types leave the state
// unchanged.
func Reduce(s GridConfig, a Action) GridConfig {
	switch a.Type {
	case ActionIncrement, ActionDecrement:
		if !validField(a.Field) || !finite(a.Value) {
			return s
		}
		delta := a.Value
		if a.Type == ActionDecrement {
			delta = -delta
		}
		// the buffer moves in whole tiles; any non-zero step moves at least one
		if a.Field == BufferTiles && delta != 0 {
			delta = math.Copysign(max(1, math.Round(math.Abs(delta))), delta)
		}
		return s.with(a.Field, s.Get(a.Field)+delta).normalize(a.Field)
	case ActionReset:
		return Defaults()
	case ActionReplace:
		return a.Config.normalize("")
	}
	return s
}

// Store is the single shared owner of the grid configuration. Readers keep a
// pointer and observe every dispatch immediately.
type Store struct {
	state GridConfig
}

func NewStore(initial GridConfig) *Store {
	return &Store{state: initial.normalize("")}
}

func (s *Store) State() GridConfig { return s.state }

// Dispatch applies a and returns the new state.
func (s *Store) Dispatch(a Action) GridConfig {
	s.state = Reduce(s.state, a)
	return s.state
}

type storeKey struct{}

// ErrNoProvider is returned when the store is looked up outside Provide.
var ErrNoProvider = errors.New("settings: store used outside of a settings provider")

// Provide returns a context that carries s for the lifetime of its consumers.
func Provide(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, storeKey{}, s)
}

func Lookup(ctx context.Context) (*Store, error) {
	s, _ := ctx.Value(storeKey{}).(*Store)
	if s == nil {
		return nil, ErrNoProvider
	}
	return s, nil
}

// Use returns the provided store and panics when there is none. Consumers
// must be constructed after the provider.
func Use(ctx context.Context) *Store {
	s, err := Lookup(ctx)
	if err != nil {
		panic("settings.Use must be called within a settings.Provide context: " + err.Error())
	}
	return s
}
