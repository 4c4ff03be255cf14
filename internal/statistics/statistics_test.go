package statistics

import (
	"math"
	"testing"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	if stats.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty stats, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance())
	}
	if stats.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty stats, got %f", stats.StdError())
	}
	if stats.Median() != 0 {
		t.Errorf("Expected median of 0 for empty stats, got %f", stats.Median())
	}
	if stats.WinRate() != 0 {
		t.Errorf("Expected win rate of 0 for empty stats, got %f", stats.WinRate())
	}
	if stats.AvgMoves() != 0 || stats.AvgFoundationCards() != 0 {
		t.Errorf("Expected zero averages for empty stats")
	}
	if err := stats.Validate(); err == nil {
		t.Error("Expected empty stats to fail validation")
	}
}

func TestStatistics_SingleWin(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameResult{Seed: 12345, Won: true, Score: 520, Moves: 140, FoundationCards: 52})

	if stats.Games != 1 {
		t.Errorf("Expected 1 game, got %d", stats.Games)
	}
	if stats.Mean() != 520 {
		t.Errorf("Expected mean of 520, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for single value, got %f", stats.Variance())
	}
	if stats.WinRate() != 1 {
		t.Errorf("Expected win rate of 1, got %f", stats.WinRate())
	}
	if stats.MaxMovesToWin != 140 {
		t.Errorf("Expected 140 moves to win, got %d", stats.MaxMovesToWin)
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestStatistics_Outcomes(t *testing.T) {
	stats := &Statistics{}

	results := []GameResult{
		{Won: true, Score: 500, Moves: 120, FoundationCards: 52},
		{Stalled: true, Score: 40, Moves: 60, FoundationCards: 4},
		{Stalled: true, Score: 0, Moves: 30, FoundationCards: 0},
		{Score: 100, Moves: 1000, FoundationCards: 10},
	}
	for _, result := range results {
		stats.Add(result)
	}

	if stats.Wins != 1 || stats.Stalled != 2 || stats.Capped != 1 {
		t.Errorf("Expected 1/2/1 won/stalled/capped, got %d/%d/%d", stats.Wins, stats.Stalled, stats.Capped)
	}
	if math.Abs(stats.WinRate()-0.25) > 1e-9 {
		t.Errorf("Expected win rate of 0.25, got %f", stats.WinRate())
	}
	if math.Abs(stats.AvgMoves()-302.5) > 1e-9 {
		t.Errorf("Expected 302.5 average moves, got %f", stats.AvgMoves())
	}
	if math.Abs(stats.AvgFoundationCards()-16.5) > 1e-9 {
		t.Errorf("Expected 16.5 average foundation cards, got %f", stats.AvgFoundationCards())
	}
	if stats.FoundationHistogram[52] != 1 || stats.FoundationHistogram[0] != 1 {
		t.Errorf("Unexpected histogram: %v", stats.FoundationHistogram)
	}
	// Sorted scores: 0, 40, 100, 500
	if stats.Median() != 70 {
		t.Errorf("Expected median of 70, got %f", stats.Median())
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestStatistics_Percentiles(t *testing.T) {
	stats := &Statistics{}

	for i := 1; i <= 5; i++ {
		stats.Add(GameResult{Score: i, Stalled: true})
	}

	tests := []struct {
		percentile float64
		expected   float64
	}{
		{0.0, 1.0},
		{0.25, 2.0},
		{0.5, 3.0},
		{0.75, 4.0},
		{1.0, 5.0},
	}

	for _, test := range tests {
		result := stats.Percentile(test.percentile)
		if math.Abs(result-test.expected) > 1e-9 {
			t.Errorf("Percentile %.2f: expected %f, got %f", test.percentile, test.expected, result)
		}
	}
}

func TestStatistics_ConfidenceIntervals(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameResult{Score: 10, Won: true, FoundationCards: 52})
	for _, score := range []int{20, 30, 40, 50} {
		stats.Add(GameResult{Score: score, Stalled: true, FoundationCards: 8})
	}

	low, high := stats.ConfidenceInterval95()
	mean := stats.Mean()
	if math.Abs((low+high)/2-mean) > 1e-9 {
		t.Errorf("Confidence interval not symmetric around mean. Low: %f, High: %f, Mean: %f", low, high, mean)
	}
	if high-low <= 0 {
		t.Errorf("Confidence interval should be positive width, got %f", high-low)
	}

	wlow, whigh := stats.WinRateCI95()
	if wlow < 0 || whigh > 1 || wlow > stats.WinRate() || whigh < stats.WinRate() {
		t.Errorf("Win rate interval [%f, %f] does not bracket %f", wlow, whigh, stats.WinRate())
	}
}

func TestStatistics_WinRateWilsonInterval(t *testing.T) {
	noWins := &Statistics{}
	for range 20 {
		noWins.Add(GameResult{Score: 15, Stalled: true, FoundationCards: 3})
	}
	low, high := noWins.WinRateCI95()
	if low != 0 {
		t.Errorf("Expected lower bound 0 with no wins, got %f", low)
	}
	// Wilson upper bound for 0/20 is z^2/(n+z^2)
	want := 1.96 * 1.96 / (20 + 1.96*1.96)
	if math.Abs(high-want) > 1e-9 {
		t.Errorf("Expected upper bound %f with no wins, got %f", want, high)
	}

	allWins := &Statistics{}
	for range 20 {
		allWins.Add(GameResult{Score: 500, Won: true, Moves: 120, FoundationCards: 52})
	}
	low, high = allWins.WinRateCI95()
	if high != 1 {
		t.Errorf("Expected upper bound 1 with all wins, got %f", high)
	}
	if math.Abs(low-(1-want)) > 1e-9 {
		t.Errorf("Expected lower bound %f with all wins, got %f", 1-want, low)
	}

	half := &Statistics{}
	for i := range 100 {
		half.Add(GameResult{Won: i%2 == 0, Stalled: i%2 == 1, FoundationCards: 52 * ((i + 1) % 2)})
	}
	low, high = half.WinRateCI95()
	if math.Abs((low+high)/2-0.5) > 1e-9 {
		t.Errorf("Expected interval centred on 0.5, got [%f, %f]", low, high)
	}
}

func TestStatistics_Merge(t *testing.T) {
	a := &Statistics{}
	a.Add(GameResult{Won: true, Score: 500, Moves: 150, FoundationCards: 52})
	a.Add(GameResult{Stalled: true, Score: 20, Moves: 40, FoundationCards: 2})

	b := &Statistics{}
	b.Add(GameResult{Won: true, Score: 480, Moves: 170, FoundationCards: 52})

	a.Merge(b)

	if a.Games != 3 || a.Wins != 2 {
		t.Errorf("Expected 3 games and 2 wins after merge, got %d and %d", a.Games, a.Wins)
	}
	if a.MaxMovesToWin != 170 {
		t.Errorf("Expected max moves to win of 170, got %d", a.MaxMovesToWin)
	}
	if len(a.Values) != 3 {
		t.Errorf("Expected 3 values, got %d", len(a.Values))
	}
	if err := a.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestStatistics_ValidateDetectsMismatch(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameResult{Stalled: true, FoundationCards: 3})

	stats.Wins++
	if err := stats.Validate(); err == nil {
		t.Error("Expected validation failure for inconsistent outcome counters")
	}
}
