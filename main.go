package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"isolation/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Tournament config (YAML); built-in defaults when empty")
	matches := flag.Int("matches", 0, "Matches per test agent and opponent pair")
	timeLimit := flag.Duration("time", 0, "Time limit per move")
	concurrency := flag.Int("concurrency", 0, "Number of games played at the same time")
	output := flag.String("out", "", "Directory for CSV results")
	verbose := flag.Bool("v", false, "Log every search depth")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := experiments.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *matches > 0 {
		cfg.Matches = *matches
	}
	if *timeLimit > 0 {
		cfg.TimeLimit = *timeLimit
	}
	if *concurrency > 0 {
		cfg.Concurrency = *concurrency
	}
	if *output != "" {
		cfg.Output = *output
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := experiments.Run(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}

	for _, s := range experiments.Standings(results) {
		log.Info().Msgf("%-14s won %3d of %3d (%5.1f%%) %v", s.Agent, s.Wins, s.Games, 100*s.Rate, s.ByFoe)
	}

	dir, err := experiments.Save(cfg, results)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to save results")
	}
	log.Info().Msgf("results written to %s", dir)
}
