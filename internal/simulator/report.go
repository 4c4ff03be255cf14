package simulator

import (
	"github.com/diegolorenzo12/foxpoker/internal/fileutil"
	"github.com/diegolorenzo12/foxpoker/internal/statistics"
)

// Report is the machine-readable form of a simulation run
type Report struct {
	Strategy string `json:"strategy"`
	Seed     int64  `json:"seed"`
	Games    int    `json:"games"`

	Wins      int        `json:"wins"`
	Stalled   int        `json:"stalled"`
	Capped    int        `json:"capped"`
	WinRate   float64    `json:"winRate"`
	WinRateCI [2]float64 `json:"winRateCI95"`

	MeanScore   float64    `json:"meanScore"`
	StdDevScore float64    `json:"stdDevScore"`
	MedianScore float64    `json:"medianScore"`
	ScoreCI     [2]float64 `json:"scoreCI95"`

	AvgMoves            float64 `json:"avgMoves"`
	AvgFoundationCards  float64 `json:"avgFoundationCards"`
	MaxMovesToWin       int     `json:"maxMovesToWin"`
	FoundationHistogram []int   `json:"foundationHistogram"`
}

// NewReport summarises stats for a run with the given strategy and base seed
func NewReport(stats *statistics.Statistics, strategy string, seed int64) Report {
	winLow, winHigh := stats.WinRateCI95()
	low, high := stats.ConfidenceInterval95()
	return Report{
		Strategy:            strategy,
		Seed:                seed,
		Games:               stats.Games,
		Wins:                stats.Wins,
		Stalled:             stats.Stalled,
		Capped:              stats.Capped,
		WinRate:             stats.WinRate(),
		WinRateCI:           [2]float64{winLow, winHigh},
		MeanScore:           stats.Mean(),
		StdDevScore:         stats.StdDev(),
		MedianScore:         stats.Median(),
		ScoreCI:             [2]float64{low, high},
		AvgMoves:            stats.AvgMoves(),
		AvgFoundationCards:  stats.AvgFoundationCards(),
		MaxMovesToWin:       stats.MaxMovesToWin,
		FoundationHistogram: stats.FoundationHistogram[:],
	}
}

// WriteReport writes the report for stats to path as JSON
func WriteReport(path string, stats *statistics.Statistics, strategy string, seed int64) error {
	if stats == nil || stats.Games == 0 {
		return ErrNoGames
	}
	return fileutil.WriteJSONAtomic(path, NewReport(stats, strategy, seed))
}
