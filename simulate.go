package main

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/setgame/internal/cards"
	"github.com/robalobadob/setgame/internal/session"
	"github.com/robalobadob/setgame/internal/store"
)

// simStats aggregates autoplayed games.
type simStats struct {
	Games       int
	SetsFound   int
	Cleared     int // games that ended with an empty table
	MinLeftover int
	MaxLeftover int
}

// simulate autoplays games sessions on workers goroutines. Game i is seeded
// with baseSeed+i, so a run is reproducible for a fixed base seed.
// Every session is registered in st while it plays and dropped afterwards.
func simulate(ctx context.Context, st store.Store, games, workers, maxSteps int, baseSeed uint64) (simStats, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int)
	results := make(chan *session.Session)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				s := session.New(store.NewID(), cards.NewRNG(baseSeed+uint64(i)))
				if err := st.Save(ctx, s); err != nil {
					errs <- err
					cancel()
					return
				}
				if _, err := s.Autoplay(maxSteps); err != nil {
					errs <- err
					cancel()
					return
				}
				results <- s
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := 0; i < games; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	stats := simStats{MinLeftover: cards.NumCards}
	for s := range results {
		left := s.Table.Size()
		stats.Games++
		stats.SetsFound += s.Found
		if left == 0 {
			stats.Cleared++
		}
		stats.MinLeftover = min(stats.MinLeftover, left)
		stats.MaxLeftover = max(stats.MaxLeftover, left)
		log.Debug().Str("session", s.ID).Int("sets", s.Found).Int("leftover", left).Msg("game finished")
		if err := st.Delete(ctx, s.ID); err != nil {
			log.Warn().Err(err).Str("session", s.ID).Msg("drop finished session")
		}
	}
	if stats.Games == 0 {
		stats.MinLeftover = 0
	}

	select {
	case err := <-errs:
		return stats, err
	default:
	}
	return stats, ctx.Err()
}
