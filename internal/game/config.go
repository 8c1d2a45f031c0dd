// internal/game/config.go
//
// Game configuration: palette, code length and try budget.
//
// Construction goes through NewConfig with functional options. Anything left
// unset falls back to the defaults below; the default palette is produced by
// a factory so no two configurations share a backing array.

package game

import (
	"strings"
	"unicode"
)

const (
	DefaultCodeLength = 4
	DefaultMaxTries   = 10
)

// DefaultPalette returns a fresh copy of the six classic colors:
// Red, Green, Blue, Yellow, White, Orange.
func DefaultPalette() []rune {
	return []rune{'R', 'G', 'B', 'Y', 'W', 'O'}
}

// Config is the resolved configuration of a game.
type Config struct {
	Palette    []rune // unique upper-case symbols, display order
	CodeLength int
	MaxTries   int
}

// Option overrides one Config field in NewConfig.
type Option func(*Config)

// WithPalette sets the palette. Symbols are upper-cased; the slice is copied.
func WithPalette(p []rune) Option {
	return func(c *Config) { c.Palette = normalizePalette(p) }
}

// WithCodeLength sets the number of symbols in the secret and in each guess.
func WithCodeLength(n int) Option {
	return func(c *Config) { c.CodeLength = n }
}

// WithMaxTries sets the try budget.
func WithMaxTries(n int) Option {
	return func(c *Config) { c.MaxTries = n }
}

// NewConfig resolves options over the defaults and validates the result.
func NewConfig(opts ...Option) (Config, error) {
	cfg := Config{
		CodeLength: DefaultCodeLength,
		MaxTries:   DefaultMaxTries,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Palette == nil {
		cfg.Palette = DefaultPalette()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects degenerate configurations with a *ConfigError.
func (c Config) Validate() error {
	if len(c.Palette) == 0 {
		return &ConfigError{Field: "palette", Reason: "must not be empty"}
	}
	seen := make(map[rune]struct{}, len(c.Palette))
	for _, r := range c.Palette {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return &ConfigError{Field: "palette", Reason: "symbols must be printable and not whitespace"}
		}
		if _, dup := seen[r]; dup {
			return &ConfigError{Field: "palette", Reason: "duplicate symbol " + string(r)}
		}
		seen[r] = struct{}{}
	}
	if c.CodeLength < 1 {
		return &ConfigError{Field: "code length", Reason: "must be positive"}
	}
	if c.MaxTries < 1 {
		return &ConfigError{Field: "max tries", Reason: "must be positive"}
	}
	return nil
}

// Has reports whether r is a palette symbol.
func (c Config) Has(r rune) bool {
	for _, p := range c.Palette {
		if p == r {
			return true
		}
	}
	return false
}

// PaletteString joins the palette for display, e.g. "R, G, B, Y, W, O".
func (c Config) PaletteString() string {
	parts := make([]string, len(c.Palette))
	for i, r := range c.Palette {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

// clone returns a copy that shares no memory with c.
func (c Config) clone() Config {
	c.Palette = append([]rune(nil), c.Palette...)
	return c
}

// normalizePalette copies p and upper-cases every symbol.
func normalizePalette(p []rune) []rune {
	out := make([]rune, len(p))
	for i, r := range p {
		out[i] = unicode.ToUpper(r)
	}
	return out
}
