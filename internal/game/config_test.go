package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, []rune("RGBYWO"), cfg.Palette)
	require.Equal(t, 4, cfg.CodeLength)
	require.Equal(t, 10, cfg.MaxTries)
	require.Equal(t, "R, G, B, Y, W, O", cfg.PaletteString())
}

func TestDefaultPaletteIsFreshPerConfig(t *testing.T) {
	a, err := NewConfig()
	require.NoError(t, err)
	b, err := NewConfig()
	require.NoError(t, err)

	a.Palette[0] = 'X'
	require.Equal(t, 'R', b.Palette[0])
	require.Equal(t, 'R', DefaultPalette()[0])
}

func TestNewConfigOverrides(t *testing.T) {
	src := []rune("abcd")
	cfg, err := NewConfig(WithPalette(src), WithCodeLength(5), WithMaxTries(3))
	require.NoError(t, err)
	require.Equal(t, []rune("ABCD"), cfg.Palette)
	require.Equal(t, 5, cfg.CodeLength)
	require.Equal(t, 3, cfg.MaxTries)

	src[0] = 'z'
	require.Equal(t, 'A', cfg.Palette[0], "palette must not alias the caller's slice")
}

func TestNewConfigRejectsDegenerateValues(t *testing.T) {
	cases := []struct {
		name  string
		opts  []Option
		field string
	}{
		{"empty palette", []Option{WithPalette([]rune{})}, "palette"},
		{"duplicate symbols", []Option{WithPalette([]rune("RGr"))}, "palette"},
		{"whitespace symbol", []Option{WithPalette([]rune("R G"))}, "palette"},
		{"zero length", []Option{WithCodeLength(0)}, "code length"},
		{"negative length", []Option{WithCodeLength(-2)}, "code length"},
		{"zero tries", []Option{WithMaxTries(0)}, "max tries"},
		{"negative tries", []Option{WithMaxTries(-1)}, "max tries"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewConfig(tc.opts...)
			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
			require.Equal(t, tc.field, cerr.Field)
		})
	}
}
