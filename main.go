// main.go
//
// Terminal driver for the Set game core.
// Subcommands (first argument, default "play"):
//   - play:     interactive game on stdin/stdout
//   - daily:    interactive game with today's shared deal (DAILY_SALT)
//   - autoplay: the computer plays one game to the end
//   - simulate: autoplays SIM_GAMES games on SIM_WORKERS goroutines
//
// Configuration comes from the environment, optionally via a .env file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/setgame/internal/cards"
	"github.com/robalobadob/setgame/internal/config"
	"github.com/robalobadob/setgame/internal/daily"
	"github.com/robalobadob/setgame/internal/session"
	"github.com/robalobadob/setgame/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: cfg.NoColor, TimeFormat: time.Kitchen})

	cmd := "play"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cmd, cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Str("cmd", cmd).Msg("game exited")
	}
}

func run(ctx context.Context, cmd string, cfg config.Config, in io.Reader, out io.Writer) error {
	newRNG := func() cards.RNG {
		if cfg.Seed != 0 {
			return cards.NewRNG(cfg.Seed)
		}
		return cards.SystemRNG()
	}

	switch cmd {
	case "play":
		s := session.New(store.NewID(), newRNG())
		log.Info().Str("session", s.ID).Msg("starting game")
		return newPlayer(s, in, out, newRNG, cfg.NoColor).run()

	case "daily":
		now := time.Now()
		seed := daily.Seed(now, cfg.DailySalt)
		dailyRNG := func() cards.RNG { return cards.NewRNG(seed) }
		s := session.New(store.NewID(), dailyRNG())
		log.Info().Str("session", s.ID).Str("date", daily.DateKey(now)).Msg("starting daily game")
		return newPlayer(s, in, out, dailyRNG, cfg.NoColor).run()

	case "autoplay":
		s := session.New(store.NewID(), newRNG())
		return autoplay(out, s, cfg.AutoplayMaxSteps, cfg.NoColor)

	case "simulate":
		base := cfg.Seed
		if base == 0 {
			base = uint64(time.Now().UnixNano())
		}
		start := time.Now()
		stats, err := simulate(ctx, store.NewMemoryStore(), cfg.SimGames, cfg.SimWorkers, cfg.AutoplayMaxSteps, base)
		if err != nil {
			return err
		}
		log.Info().
			Int("games", stats.Games).
			Int("sets", stats.SetsFound).
			Int("cleared", stats.Cleared).
			Int("min_leftover", stats.MinLeftover).
			Int("max_leftover", stats.MaxLeftover).
			Uint64("base_seed", base).
			Dur("elapsed", time.Since(start)).
			Msg("simulation finished")
		if stats.Games > 0 {
			fmt.Fprintf(out, "%d games, %.2f sets per game, %d cleared the table\n",
				stats.Games, float64(stats.SetsFound)/float64(stats.Games), stats.Cleared)
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q (play, daily, autoplay, simulate)", cmd)
	}
}

// autoplay lets the computer play s to the end, printing every move.
func autoplay(w io.Writer, s *session.Session, maxSteps int, noColor bool) error {
	renderTable(w, s, noColor)
	for i := 0; i < maxSteps; i++ {
		var taken []string
		if set, ok := s.Table.Hint(); ok {
			taken = slotsOf(s, set[:])
		}
		out, err := s.AutoplayStep()
		if err != nil {
			return err
		}
		if out == session.OutcomeOver {
			break
		}
		if out == session.OutcomeMatched {
			fmt.Fprintf(w, "%3d: set %v\n", i+1, taken)
		} else {
			fmt.Fprintf(w, "%3d: %s\n", i+1, out)
		}
	}
	fmt.Fprintln(w)
	renderTable(w, s, noColor)
	renderStatus(w, s)
	log.Info().Str("session", s.ID).Int("sets", s.Found).Int("leftover", s.Table.Size()).Msg("autoplay finished")
	return nil
}
