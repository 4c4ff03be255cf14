package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/diegolorenzo12/foxpoker/internal/bot"
	"github.com/diegolorenzo12/foxpoker/internal/game"
	"github.com/diegolorenzo12/foxpoker/internal/randutil"
	"github.com/diegolorenzo12/foxpoker/internal/statistics"
	"github.com/diegolorenzo12/foxpoker/solitaire"
)

// Config holds configuration for running simulations
type Config struct {
	Games    int
	Workers  int
	Seed     int64
	Strategy string
	MaxMoves int
	Scoring  game.Scoring
	Timeout  time.Duration // whole run; zero means no limit
	Logger   *log.Logger
}

// Simulator plays many seeded deals with a bot and aggregates the results
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Simulator{config: config}
}

// Run plays every game and returns the merged statistics. Game n is always
// dealt from randutil.Derive(Seed, n), so a run is reproducible for a given
// seed and strategy.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", s.config.Games)
	}
	if s.config.MaxMoves <= 0 {
		return nil, fmt.Errorf("max moves must be positive, got %d", s.config.MaxMoves)
	}
	if _, err := bot.New(s.config.Strategy, randutil.New(s.config.Seed), s.config.Logger); err != nil {
		return nil, err
	}

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	workers := min(s.config.Workers, s.config.Games)
	perWorker := make([]*statistics.Statistics, workers)

	logger := s.config.Logger.WithPrefix("sim")
	logger.Info("Starting simulation", "games", s.config.Games, "workers", workers,
		"strategy", s.config.Strategy, "seed", s.config.Seed)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		stats := &statistics.Statistics{}
		perWorker[w] = stats

		g.Go(func() error {
			// Worker w plays games w, w+workers, w+2*workers...
			for n := w; n < s.config.Games; n += workers {
				result, err := s.playGame(ctx, n)
				if err != nil {
					return err
				}
				stats.Add(result)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &statistics.Statistics{}
	for _, stats := range perWorker {
		total.Merge(stats)
	}

	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	logger.Info("Simulation complete", "games", total.Games, "wins", total.Wins,
		"win_rate", fmt.Sprintf("%.1f%%", total.WinRate()*100))
	return total, nil
}

// playGame plays game n to a win, a stall or the move limit
func (s *Simulator) playGame(ctx context.Context, n int) (statistics.GameResult, error) {
	seed := randutil.Derive(s.config.Seed, n)

	// Session chatter is per game; keep it out of the run's log unless debugging
	logger := s.config.Logger.With()
	if logger.GetLevel() > log.DebugLevel {
		logger.SetLevel(log.WarnLevel)
	}

	agent, err := bot.New(s.config.Strategy, randutil.New(randutil.Derive(seed, 1)), logger)
	if err != nil {
		return statistics.GameResult{}, err
	}

	session := game.NewSession(seed,
		game.WithLogger(logger),
		game.WithScoring(s.config.Scoring),
		game.WithIntegrityChecks(true),
	)

	stalled := false
	draws := 0
	for !session.Won() && session.Moves() < s.config.MaxMoves {
		if err := ctx.Err(); err != nil {
			return statistics.GameResult{}, fmt.Errorf("game %d (seed %d): %w", n, seed, err)
		}

		state := session.State()
		decision, ok := agent.MakeDecision(state, solitaire.LegalMoves(state))
		if !ok {
			stalled = true
			break
		}

		if _, isDraw := decision.Move.(solitaire.DrawStock); isDraw {
			// A full pass through stock and waste with nothing else to play
			draws++
			if draws > state.Stock.Len()+state.Waste.Len() {
				stalled = true
				break
			}
		} else {
			draws = 0
		}

		if err := session.Apply(decision.Move); err != nil {
			return statistics.GameResult{}, fmt.Errorf("game %d (seed %d) move %s: %w", n, seed, decision.Move, err)
		}
	}

	return statistics.GameResult{
		Seed:            seed,
		Won:             session.Won(),
		Stalled:         stalled,
		Score:           session.Score(),
		Moves:           session.Moves(),
		FoundationCards: session.State().FoundationCount(),
	}, nil
}

// RunSimulation is a convenience function for running a simulation with basic parameters
func RunSimulation(ctx context.Context, games int, strategy string, seed int64, logger *log.Logger) (*statistics.Statistics, error) {
	return New(Config{
		Games:    games,
		Workers:  1,
		Seed:     seed,
		Strategy: strategy,
		MaxMoves: 1000,
		Scoring:  game.DefaultScoring(),
		Logger:   logger,
	}).Run(ctx)
}

// ErrNoGames is returned by PrintSummary for empty statistics
var ErrNoGames = errors.New("no games played")

// PrintSummary writes a summary of simulation results to w
func PrintSummary(w io.Writer, stats *statistics.Statistics, strategy string) error {
	if stats == nil || stats.Games == 0 {
		return ErrNoGames
	}

	winLow, winHigh := stats.WinRateCI95()
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== FINAL RESULTS for %s-bot ===\n", strategy)
	fmt.Fprintf(w, "Games played: %d\n", stats.Games)
	fmt.Fprintf(w, "Won: %d (%.2f%%), 95%% CI [%.2f%%, %.2f%%]\n",
		stats.Wins, stats.WinRate()*100, winLow*100, winHigh*100)
	fmt.Fprintf(w, "Stalled: %d, hit move limit: %d\n", stats.Stalled, stats.Capped)

	fmt.Fprintf(w, "\n=== SCORE ===\n")
	fmt.Fprintf(w, "Mean: %.2f (std dev %.2f), 95%% CI [%.2f, %.2f]\n", stats.Mean(), stats.StdDev(), low, high)
	fmt.Fprintf(w, "Median: %.1f\n", stats.Median())
	fmt.Fprintf(w, "Percentiles: P5=%.1f, P25=%.1f, P75=%.1f, P95=%.1f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))

	fmt.Fprintf(w, "\n=== PROGRESS ===\n")
	fmt.Fprintf(w, "Average moves: %.1f\n", stats.AvgMoves())
	fmt.Fprintf(w, "Average foundation cards: %.2f / %d\n", stats.AvgFoundationCards(), solitaire.DeckSize)
	if stats.Wins > 0 {
		fmt.Fprintf(w, "Longest win: %d moves\n", stats.MaxMovesToWin)
	}
	return nil
}
