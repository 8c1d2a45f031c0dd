// internal/game/engine.go
//
// Core game engine for a single Mastermind game.
// Responsibilities:
//   - Create new games with a random (or fixed) secret code.
//   - Validate and apply guesses (length, palette membership).
//   - Score guesses using the two-pass exact/color algorithm.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Rejected guesses are free: nothing is mutated before validation passes.
//   - The engine performs no I/O; rendering is left to the caller
//     (Outcome.Message gives the canonical prose).

package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// New constructs a game with a secret drawn from src.
// A nil src falls back to CryptoSource.
func New(cfg Config, src Source) (*Game, error) {
	cfg, err := resolve(cfg)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = CryptoSource()
	}
	secret, err := generateSecret(cfg, src)
	if err != nil {
		return nil, err
	}
	return &Game{id: uuid.NewString(), cfg: cfg, secret: secret}, nil
}

// NewWithSecret constructs a game with a fixed secret.
// The secret must satisfy the same rules as a guess.
func NewWithSecret(cfg Config, secret string) (*Game, error) {
	cfg, err := resolve(cfg)
	if err != nil {
		return nil, err
	}
	code, err := parseCode(cfg, secret)
	if err != nil {
		return nil, fmt.Errorf("secret: %w", err)
	}
	return &Game{id: uuid.NewString(), cfg: cfg, secret: code}, nil
}

// resolve copies cfg so the game owns its palette, then validates it.
func resolve(cfg Config) (Config, error) {
	cfg = cfg.clone()
	cfg.Palette = normalizePalette(cfg.Palette)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// generateSecret draws CodeLength symbols from the palette, with repetition.
func generateSecret(cfg Config, src Source) (Code, error) {
	code := make(Code, cfg.CodeLength)
	for i := range code {
		j, err := src.Intn(len(cfg.Palette))
		if err != nil {
			return nil, fmt.Errorf("generate secret: %w", err)
		}
		code[i] = cfg.Palette[j]
	}
	return code, nil
}

// Apply validates and scores a guess, mutating the game state.
//
// Validation rules:
//   - Game must not be finished (ErrGameOver).
//   - Guess must be exactly CodeLength symbols (ErrWrongLength).
//   - Every symbol must be in the palette (ErrUnknownSymbol).
//
// A rejected guess returns an Outcome of kind OutcomeRejected together with
// the error and leaves the game untouched.
//
// State transitions:
//   - All symbols exact → won.
//   - Else if tries reach MaxTries → lost; the secret is revealed.
func (g *Game) Apply(guess string) (Outcome, error) {
	if g.State() != StatePlaying {
		return Outcome{Kind: OutcomeRejected, Err: ErrGameOver}, ErrGameOver
	}
	code, err := parseCode(g.cfg, guess)
	if err != nil {
		return Outcome{Kind: OutcomeRejected, Err: err}, err
	}

	g.tries++
	exact, color := Score(g.secret, code)

	switch {
	case exact == g.cfg.CodeLength:
		g.won = true
		return Outcome{Kind: OutcomeWon, Exact: exact, Tries: g.tries}, nil
	case g.tries >= g.cfg.MaxTries:
		return Outcome{
			Kind:   OutcomeLost,
			Exact:  exact,
			Color:  color,
			Tries:  g.tries,
			Secret: g.Reveal(),
		}, nil
	}
	return Outcome{Kind: OutcomeContinuing, Exact: exact, Color: color, Tries: g.tries}, nil
}

// PlayTurn is the prose form of Apply: it reports whether the guess was
// accepted and the message to show the player.
func (g *Game) PlayTurn(guess string) (bool, string) {
	o, _ := g.Apply(guess)
	return o.Accepted(), o.Message()
}

// State reports the current lifecycle state.
func (g *Game) State() State {
	if g.won {
		return StateWon
	}
	if g.tries >= g.cfg.MaxTries {
		return StateLost
	}
	return StatePlaying
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.id }

// Config returns a copy of the resolved configuration.
func (g *Game) Config() Config { return g.cfg.clone() }

// Tries returns the number of accepted guesses.
func (g *Game) Tries() int { return g.tries }

// Remaining returns how many tries are left.
func (g *Game) Remaining() int { return g.cfg.MaxTries - g.tries }

// Won reports whether the secret has been guessed.
func (g *Game) Won() bool { return g.won }

// Reveal returns a copy of the secret once the game is lost, nil otherwise.
func (g *Game) Reveal() Code {
	if g.State() != StateLost {
		return nil
	}
	return append(Code(nil), g.secret...)
}

// parseCode normalizes text to upper case and checks it against cfg.
func parseCode(cfg Config, text string) (Code, error) {
	text = strings.TrimSpace(text)
	code := Code(strings.ToUpper(text))
	if len(code) != cfg.CodeLength {
		return nil, &InvalidGuessError{Guess: text, Reason: ErrWrongLength}
	}
	for _, r := range code {
		if !cfg.Has(r) {
			return nil, &InvalidGuessError{Guess: text, Symbol: r, Reason: ErrUnknownSymbol}
		}
	}
	return code, nil
}

// Score compares guess against secret and returns the number of exact
// ("black peg") and color ("white peg") matches.
//
// Pass 1:
//   - Position-synchronous: guess[i] == secret[i] counts as exact and
//     consumes slot i on both sides.
//
// Pass 2:
//   - Left to right over unconsumed guess slots, search left to right over
//     unconsumed secret slots; the first equal symbol counts as a color match
//     and consumes that secret slot.
//
// Each secret slot is consumed at most once, so exact+color never exceeds
// len(secret), even with repeated symbols.
func Score(secret, guess Code) (exact, color int) {
	n := len(secret)
	if len(guess) != n {
		return 0, 0
	}
	usedS := make([]bool, n)
	usedG := make([]bool, n)

	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			exact++
			usedS[i], usedG[i] = true, true
		}
	}

	for i := 0; i < n; i++ {
		if usedG[i] {
			continue
		}
		for j := 0; j < n; j++ {
			if !usedS[j] && secret[j] == guess[i] {
				color++
				usedS[j] = true
				break
			}
		}
	}
	return exact, color
}
