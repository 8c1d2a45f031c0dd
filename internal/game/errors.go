package game

import (
	"errors"
	"fmt"
)

var (
	// ErrGameOver is returned when a guess is submitted to a finished game.
	ErrGameOver = errors.New("game is over")
	// ErrWrongLength means the guess does not have CodeLength symbols.
	ErrWrongLength = errors.New("wrong guess length")
	// ErrUnknownSymbol means the guess uses a symbol outside the palette.
	ErrUnknownSymbol = errors.New("symbol not in palette")
)

// ConfigError reports a malformed configuration. It is fatal at construction.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

// InvalidGuessError reports a guess that was rejected without consuming a try.
type InvalidGuessError struct {
	Guess  string
	Symbol rune  // offending symbol for ErrUnknownSymbol, 0 otherwise
	Reason error // ErrWrongLength or ErrUnknownSymbol
}

func (e *InvalidGuessError) Error() string {
	if e.Symbol != 0 {
		return fmt.Sprintf("invalid guess %q: %v: %q", e.Guess, e.Reason, e.Symbol)
	}
	return fmt.Sprintf("invalid guess %q: %v", e.Guess, e.Reason)
}

func (e *InvalidGuessError) Unwrap() error { return e.Reason }
