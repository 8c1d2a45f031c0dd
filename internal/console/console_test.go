package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FKLaben/Mastermind/internal/game"
)

func newGame(t *testing.T, secret string, opts ...game.Option) *game.Game {
	t.Helper()
	cfg, err := game.NewConfig(opts...)
	require.NoError(t, err)
	g, err := game.NewWithSecret(cfg, secret)
	require.NoError(t, err)
	return g
}

func play(t *testing.T, g *game.Game, lines ...string) (Result, string) {
	t.Helper()
	var out bytes.Buffer
	res, err := Run(g, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	require.NoError(t, err)
	return res, out.String()
}

func TestRunPrintsInstructions(t *testing.T) {
	_, out := play(t, newGame(t, "RGBY"), "q")

	require.Contains(t, out, "=== MASTERMIND ===")
	require.Contains(t, out, "Available colors: R, G, B, Y, W, O")
	require.Contains(t, out, "Code length: 4")
	require.Contains(t, out, "Maximum tries: 10")
	require.Contains(t, out, "(e.g., RGBY)")
	require.Contains(t, out, "Press 'q' to quit the game")
}

func TestRunWin(t *testing.T) {
	res, out := play(t, newGame(t, "RGBY"), "ybgr", "RGBY")

	require.Equal(t, Result{Ending: EndingWon, Tries: 2}, res)
	require.Contains(t, out, "Enter guess #1: ")
	require.Contains(t, out, "Exact matches: 0, Color matches: 4")
	require.Contains(t, out, "Tries left: 9")
	require.Contains(t, out, "Enter guess #2: ")
	require.Contains(t, out, "Congratulations! You've won in 2 tries!")
	require.NotContains(t, out, "Enter guess #3")
}

func TestRunRejectedGuessKeepsTryNumber(t *testing.T) {
	res, out := play(t, newGame(t, "RGBY"), "RG", "RGBX", "RGBY")

	require.Equal(t, EndingWon, res.Ending)
	require.Equal(t, 1, res.Tries)
	require.Equal(t, 3, strings.Count(out, "Enter guess #1: "))
	require.Equal(t, 2, strings.Count(out, "Invalid guess!"))
	require.Contains(t, out, "Congratulations! You've won in 1 tries!")
}

func TestRunLoss(t *testing.T) {
	res, out := play(t, newGame(t, "RGBY", game.WithMaxTries(2)), "WWWW", "OOOO", "RGBY")

	require.Equal(t, Result{Ending: EndingLost, Tries: 2}, res)
	require.Contains(t, out, "Game Over! The secret code was RGBY")
	require.NotContains(t, out, "Congratulations")
}

func TestRunQuit(t *testing.T) {
	for _, sentinel := range []string{"q", "Q", "  q  "} {
		t.Run(sentinel, func(t *testing.T) {
			res, out := play(t, newGame(t, "RGBY"), "WWWW", sentinel, "RGBY")

			require.Equal(t, Result{Ending: EndingQuit, Tries: 1}, res)
			require.Contains(t, out, "Thanks for playing!")
			require.NotContains(t, out, "Congratulations")
		})
	}
}

func TestRunEndOfInputQuits(t *testing.T) {
	var out bytes.Buffer
	res, err := Run(newGame(t, "RGBY"), strings.NewReader("WWWW"), &out)
	require.NoError(t, err)
	require.Equal(t, Result{Ending: EndingQuit, Tries: 1}, res)
	require.Contains(t, out.String(), "Thanks for playing!")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestRunReadError(t *testing.T) {
	_, err := Run(newGame(t, "RGBY"), failingReader{}, &bytes.Buffer{})
	require.ErrorContains(t, err, "boom")
}

func TestExampleCyclesPalette(t *testing.T) {
	cfg, err := game.NewConfig(game.WithPalette([]rune("AB")), game.WithCodeLength(5))
	require.NoError(t, err)
	require.Equal(t, "ABABA", example(cfg))
}
