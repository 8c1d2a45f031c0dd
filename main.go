package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/FKLaben/Mastermind/internal/config"
	"github.com/FKLaben/Mastermind/internal/console"
	"github.com/FKLaben/Mastermind/internal/daily"
	"github.com/FKLaben/Mastermind/internal/game"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	flag.StringVar(&cfg.Colors, "colors", cfg.Colors, "palette symbols, e.g. RGBYWO")
	flag.IntVar(&cfg.CodeLength, "length", cfg.CodeLength, "symbols per code")
	flag.IntVar(&cfg.MaxTries, "tries", cfg.MaxTries, "maximum number of guesses")
	flag.BoolVar(&cfg.Daily, "daily", cfg.Daily, "play today's shared secret")
	flag.Parse()

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	gc, err := cfg.GameConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid game configuration")
	}

	var g *game.Game
	if cfg.Daily {
		now := time.Now()
		log.Info().Str("date", daily.DateKey(now)).Msg("daily game")
		g, err = daily.New(gc, cfg.DailySalt, now)
	} else {
		g, err = game.New(gc, game.CryptoSource())
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}

	log.Debug().
		Str("game_id", g.ID()).
		Str("palette", string(gc.Palette)).
		Int("code_length", gc.CodeLength).
		Int("max_tries", gc.MaxTries).
		Msg("starting mastermind")

	if _, err := console.Run(g, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("console exited")
	}
}
