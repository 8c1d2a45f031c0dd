// internal/config/config.go
//
// Process configuration loaded from the environment.
//
// Load reads an optional .env file (development) and then parses the
// variables below into Config. Unset variables keep their defaults; an empty
// MASTERMIND_COLORS means "use the game's default palette".
//
// Environment variables:
//   MASTERMIND_COLORS=RGBYWO        palette symbols; commas and spaces are ignored
//   MASTERMIND_CODE_LENGTH=4
//   MASTERMIND_MAX_TRIES=10
//   MASTERMIND_DAILY=false          play the deterministic daily secret
//   MASTERMIND_DAILY_SALT=...       salt mixed into the daily secret
//   LOG_LEVEL=info

package config

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/FKLaben/Mastermind/internal/game"
)

// Config holds everything main needs to start a game.
type Config struct {
	Colors     string `env:"MASTERMIND_COLORS"`
	CodeLength int    `env:"MASTERMIND_CODE_LENGTH" envDefault:"4"`
	MaxTries   int    `env:"MASTERMIND_MAX_TRIES"   envDefault:"10"`
	Daily      bool   `env:"MASTERMIND_DAILY"       envDefault:"false"`
	DailySalt  string `env:"MASTERMIND_DAILY_SALT"  envDefault:"local_dev_salt"`
	LogLevel   string `env:"LOG_LEVEL"              envDefault:"info"`
}

// Load reads .env (if present) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse parses the current environment without touching .env files.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// GameConfig converts to a validated game.Config.
func (c Config) GameConfig() (game.Config, error) {
	opts := []game.Option{
		game.WithCodeLength(c.CodeLength),
		game.WithMaxTries(c.MaxTries),
	}
	if p := ParsePalette(c.Colors); len(p) > 0 {
		opts = append(opts, game.WithPalette(p))
	}
	return game.NewConfig(opts...)
}

// ParsePalette turns "RGBY", "R,G,B,Y" or "r g b y" into symbols.
func ParsePalette(s string) []rune {
	var out []rune
	for _, r := range s {
		if r == ',' || unicode.IsSpace(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Palette renders the configured colors the way ParsePalette accepts them.
func (c Config) Palette() string {
	return strings.ToUpper(string(ParsePalette(c.Colors)))
}
