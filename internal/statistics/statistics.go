package statistics

import (
	"fmt"
	"math"
	"sort"
)

// GameResult represents the outcome of a single simulated game
type GameResult struct {
	Seed            int64 // deal seed (for replay)
	Won             bool  // all 52 cards reached the foundations
	Stalled         bool  // stopped because no progress was possible
	Score           int   // session score at the end
	Moves           int   // moves applied
	FoundationCards int   // cards on the foundations at the end
}

// Statistics aggregates game results. Scores drive the distribution figures.
type Statistics struct {
	Games     int
	SumScore  float64
	SumScore2 float64   // Sum of squares for variance calculation
	Values    []float64 // Store all scores for median/percentile calculation

	Wins    int
	Stalled int
	// Capped counts games that hit the move limit
	Capped int

	SumMoves      int
	SumFoundation int
	MaxMovesToWin int
	// FoundationHistogram[n] counts games that ended with n foundation cards
	FoundationHistogram [53]int
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	score := float64(result.Score)
	s.Games++
	s.SumScore += score
	s.SumScore2 += score * score
	s.Values = append(s.Values, score)

	switch {
	case result.Won:
		s.Wins++
		if result.Moves > s.MaxMovesToWin {
			s.MaxMovesToWin = result.Moves
		}
	case result.Stalled:
		s.Stalled++
	default:
		s.Capped++
	}

	s.SumMoves += result.Moves
	s.SumFoundation += result.FoundationCards
	if result.FoundationCards >= 0 && result.FoundationCards < len(s.FoundationHistogram) {
		s.FoundationHistogram[result.FoundationCards]++
	}
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	s.SumScore += other.SumScore
	s.SumScore2 += other.SumScore2
	s.Values = append(s.Values, other.Values...)
	s.Wins += other.Wins
	s.Stalled += other.Stalled
	s.Capped += other.Capped
	s.SumMoves += other.SumMoves
	s.SumFoundation += other.SumFoundation
	s.MaxMovesToWin = max(s.MaxMovesToWin, other.MaxMovesToWin)
	for i, n := range other.FoundationHistogram {
		s.FoundationHistogram[i] += n
	}
}

// Mean returns the mean score per game
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumScore / float64(s.Games)
}

// Variance returns the sample variance of the scores
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumScore2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of the scores
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean score
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean score
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// WinRate returns the fraction of games won
func (s *Statistics) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// WinRateCI95 returns the Wilson score 95% interval for the win rate. Unlike
// the normal approximation it stays non-degenerate with no wins or all wins.
func (s *Statistics) WinRateCI95() (float64, float64) {
	if s.Games == 0 {
		return 0, 0
	}
	const z = 1.96
	n := float64(s.Games)
	p := s.WinRate()

	denom := 1 + z*z/n
	center := (p + z*z/(2*n)) / denom
	margin := z / denom * math.Sqrt(p*(1-p)/n+z*z/(4*n*n))

	low, high := math.Max(0, center-margin), math.Min(1, center+margin)
	if s.Wins == 0 {
		low = 0
	}
	if s.Wins == s.Games {
		high = 1
	}
	return low, high
}

// AvgMoves returns the mean number of moves per game
func (s *Statistics) AvgMoves() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.SumMoves) / float64(s.Games)
}

// AvgFoundationCards returns the mean number of foundation cards at game end
func (s *Statistics) AvgFoundationCards() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.SumFoundation) / float64(s.Games)
}

// Median returns the median score
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the score at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks that the counters agree with each other
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)",
			len(s.Values), s.Games)
	}
	if s.Wins+s.Stalled+s.Capped != s.Games {
		return fmt.Errorf("outcomes (%d won, %d stalled, %d capped) do not add up to %d games",
			s.Wins, s.Stalled, s.Capped, s.Games)
	}

	histogram := 0
	for _, n := range s.FoundationHistogram {
		histogram += n
	}
	if histogram != s.Games {
		return fmt.Errorf("foundation histogram total (%d) does not match games count (%d)", histogram, s.Games)
	}
	if s.FoundationHistogram[52] != s.Wins {
		return fmt.Errorf("%d games finished with 52 foundation cards but %d were won",
			s.FoundationHistogram[52], s.Wins)
	}
	return nil
}
