// internal/game/types.go
//
// Core type definitions for the Mastermind game engine.
// Defines:
//   - Code:    an ordered sequence of palette symbols (secret or guess).
//   - State:   coarse lifecycle of a game (playing/won/lost).
//   - Outcome: structured result of a single turn.
//   - Game:    state for a single in-progress or finished game.

package game

import (
	"errors"
	"fmt"
)

// Code is an ordered sequence of palette symbols.
type Code []rune

// String renders the code as its concatenated symbols, e.g. "RGBY".
func (c Code) String() string { return string(c) }

// State is the lifecycle of a game.
//   - "playing": guesses are still accepted.
//   - "won":     the secret was guessed.
//   - "lost":    the try budget ran out.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// OutcomeKind tags the variant carried by an Outcome.
type OutcomeKind int

const (
	OutcomeRejected OutcomeKind = iota
	OutcomeContinuing
	OutcomeWon
	OutcomeLost
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeRejected:
		return "rejected"
	case OutcomeContinuing:
		return "continuing"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Outcome is the result of one turn.
// Which fields are meaningful depends on Kind:
//   - Rejected:   Err holds the reason; nothing else is set.
//   - Continuing: Exact, Color, Tries.
//   - Won:        Exact, Tries.
//   - Lost:       Exact, Color, Tries, Secret.
type Outcome struct {
	Kind   OutcomeKind
	Exact  int   // "black pegs"
	Color  int   // "white pegs"
	Tries  int   // tries used after this turn
	Secret Code  // revealed only on loss
	Err    error // set only when Kind == OutcomeRejected
}

// Accepted reports whether the guess counted as a try.
func (o Outcome) Accepted() bool { return o.Kind != OutcomeRejected }

// Message renders the outcome as user-facing prose.
func (o Outcome) Message() string {
	switch o.Kind {
	case OutcomeWon:
		return fmt.Sprintf("Congratulations! You've won in %d tries!", o.Tries)
	case OutcomeLost:
		return fmt.Sprintf("Game Over! The secret code was %s", o.Secret)
	case OutcomeContinuing:
		return fmt.Sprintf("Exact matches: %d, Color matches: %d", o.Exact, o.Color)
	}
	if errors.Is(o.Err, ErrGameOver) {
		return "The game is over."
	}
	return "Invalid guess! Please use valid colors and correct length."
}

// Game holds the state of a single Mastermind game.
// Fields are unexported; callers go through Apply/PlayTurn and the accessors.
type Game struct {
	id     string // unique game identifier (uuid)
	cfg    Config // resolved configuration, owned by the game
	secret Code   // immutable once generated
	tries  int    // accepted guesses so far
	won    bool   // set at most once
}
