package simulator

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/Anko59/Skull/internal/game"
	"github.com/Anko59/Skull/internal/randutil"
	"github.com/Anko59/Skull/internal/statistics"
)

// Simulator runs batches of self-play Skull games with random agents
type Simulator struct {
	config Config
	logger *log.Logger
	clock  quartz.Clock
}

// New creates a simulator. A nil clock means the real one.
func New(config Config, logger *log.Logger, clock quartz.Clock) *Simulator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Simulator{config: config, logger: logger, clock: clock}
}

// Run executes the configured number of games and returns aggregate
// results. Each game derives its own seed from the base seed, and the
// seat order rotates per game to cancel first-mover bias, so results
// are reproducible regardless of concurrency.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if err := s.config.Validate(); err != nil {
		return nil, err
	}

	start := s.clock.Now()
	stats := statistics.New()
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Concurrency)

	for i := 0; i < s.config.Games; i++ {
		gameIndex := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := s.playGame(gameIndex)
			if err != nil {
				return fmt.Errorf("game %d: %w", gameIndex+1, err)
			}
			mu.Lock()
			stats.Add(result)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	elapsed := s.clock.Now().Sub(start)
	s.logger.Info("simulation complete",
		"games", stats.Games,
		"meanActions", fmt.Sprintf("%.1f", stats.MeanActions()),
		"elapsed", elapsed)
	return stats, nil
}

// playGame runs one game with a deterministic per-game seed
func (s *Simulator) playGame(gameIndex int) (statistics.GameResult, error) {
	gameSeed := s.config.Seed + int64(gameIndex)
	rng := randutil.New(gameSeed)

	// Rotate the lead seat so no name always acts first
	seats := rotate(s.config.Seats, gameIndex%len(s.config.Seats))

	board, err := game.NewBoard(randutil.FromRand(rng), seats...)
	if err != nil {
		return statistics.GameResult{}, err
	}

	engine := game.NewGameEngine(board, nil, game.NewRandomAgent(rng), s.logger)
	result, err := engine.Play()
	if err != nil {
		return statistics.GameResult{}, err
	}

	s.logger.Debug("game finished",
		"game", gameIndex+1, "seed", gameSeed,
		"winner", result.Winner, "actions", len(result.Actions))
	return statistics.GameResult{
		Winner:  result.Winner,
		Actions: len(result.Actions),
		Seed:    gameSeed,
	}, nil
}

func rotate(names []string, by int) []string {
	out := make([]string, 0, len(names))
	out = append(out, names[by:]...)
	out = append(out, names[:by]...)
	return out
}
