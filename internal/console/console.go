// internal/console/console.go
//
// Interactive console loop for a single game.
// Responsibilities:
//   - Print the instructions (palette, code length, max tries).
//   - Prompt for guesses, numbered by the next try.
//   - Handle the quit sentinel ("q", any case) and end of input.
//   - Render each turn's Outcome; rejected guesses are re-prompted with the
//     same try number.
//
// The loop only talks to io.Reader/io.Writer so tests can drive it with a
// scripted transcript.

package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/FKLaben/Mastermind/internal/game"
)

// QuitSentinel ends the game early.
const QuitSentinel = "q"

// Ending says how a console session finished.
type Ending string

const (
	EndingQuit Ending = "quit"
	EndingWon  Ending = "won"
	EndingLost Ending = "lost"
)

// Result summarizes a finished session.
type Result struct {
	Ending Ending
	Tries  int
}

// PrintInstructions writes the banner shown before play begins.
func PrintInstructions(w io.Writer, cfg game.Config) {
	fmt.Fprintln(w, "\n=== MASTERMIND ===")
	fmt.Fprintln(w, "\nTry to guess the secret code!")
	fmt.Fprintf(w, "Available colors: %s\n", cfg.PaletteString())
	fmt.Fprintf(w, "Code length: %d\n", cfg.CodeLength)
	fmt.Fprintf(w, "Maximum tries: %d\n", cfg.MaxTries)
	fmt.Fprintf(w, "\nEnter your guess using color initials (e.g., %s)\n", example(cfg))
	fmt.Fprintf(w, "Press '%s' to quit the game\n", QuitSentinel)
	fmt.Fprintln(w, strings.Repeat("=", 20)+"\n")
}

// example builds a sample guess from the palette, cycling if the code is
// longer than the palette.
func example(cfg game.Config) string {
	code := make(game.Code, cfg.CodeLength)
	for i := range code {
		code[i] = cfg.Palette[i%len(cfg.Palette)]
	}
	return code.String()
}

// Run plays g to completion against in/out.
// It returns when the game is won or lost, the player quits, or input ends.
// Only read/write failures are returned as errors.
func Run(g *game.Game, in io.Reader, out io.Writer) (Result, error) {
	logger := log.With().Str("game_id", g.ID()).Logger()
	cfg := g.Config()

	PrintInstructions(out, cfg)
	logger.Debug().Int("code_length", cfg.CodeLength).Int("max_tries", cfg.MaxTries).Msg("game started")

	sc := bufio.NewScanner(in)
	for g.State() == game.StatePlaying {
		if _, err := fmt.Fprintf(out, "\nEnter guess #%d: ", g.Tries()+1); err != nil {
			return Result{}, err
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return Result{}, fmt.Errorf("read guess: %w", err)
			}
			logger.Debug().Int("tries", g.Tries()).Msg("input closed")
			return quit(out, g)
		}
		guess := strings.TrimSpace(sc.Text())
		if strings.EqualFold(guess, QuitSentinel) {
			logger.Debug().Int("tries", g.Tries()).Msg("player quit")
			return quit(out, g)
		}

		o, err := g.Apply(guess)
		if err != nil {
			logger.Debug().Err(err).Msg("guess rejected")
		}
		if _, err := fmt.Fprintln(out, o.Message()); err != nil {
			return Result{}, err
		}
		if o.Kind == game.OutcomeContinuing {
			fmt.Fprintf(out, "Tries left: %d\n", g.Remaining())
		}
	}

	res := Result{Ending: EndingLost, Tries: g.Tries()}
	if g.Won() {
		res.Ending = EndingWon
	}
	logger.Info().Str("state", string(g.State())).Int("tries", res.Tries).Msg("game finished")
	return res, nil
}

func quit(out io.Writer, g *game.Game) (Result, error) {
	_, err := fmt.Fprintln(out, "Thanks for playing!")
	return Result{Ending: EndingQuit, Tries: g.Tries()}, err
}
