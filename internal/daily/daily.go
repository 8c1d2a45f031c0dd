// internal/daily/daily.go
//
// Deterministic "daily" secrets.
//
// Everyone playing on the same UTC date with the same salt gets the same
// secret code. The date key and salt feed HKDF-SHA256, and the resulting byte
// stream drives a game.Source.

package daily

import (
	"crypto/sha256"
	"time"

	"golang.org/x/crypto/hkdf"

	"github.com/FKLaben/Mastermind/internal/game"
)

const info = "mastermind daily secret"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Source returns a game.Source seeded from salt and the UTC date of t.
func Source(salt string, t time.Time) game.Source {
	r := hkdf.New(sha256.New, []byte(DateKey(t)), []byte(salt), []byte(info))
	return game.NewReaderSource(r)
}

// New starts the daily game for t.
func New(cfg game.Config, salt string, t time.Time) (*game.Game, error) {
	return game.New(cfg, Source(salt, t))
}
