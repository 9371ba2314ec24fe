package simulation

import (
	"github.com/twanvl/battlegrounds-sim/pkg/battle"
	"github.com/twanvl/battlegrounds-sim/pkg/rng"
)

// DefaultNumRuns is the run count used when a caller doesn't specify one.
const DefaultNumRuns = 1000

// Simulate runs numRuns independent battles between board0 and board1,
// sharing src across runs (src.Start() resets any per-run variance-reduction
// state between runs, but its underlying base stream keeps advancing), and
// returns a ScoreSummary from each side's perspective.
func Simulate(board0, board1 battle.Board, src rng.Source, numRuns int) (ScoreSummary, ScoreSummary) {
	return runMany(board0, board1, src, numRuns)
}

// SimulateDeterministic runs numRuns battles like Simulate, but first clones
// seed and builds a fresh Source via newSource, so that two calls with the
// same boards, seed value, and newSource produce byte-identical results
// regardless of what RNG consumption happened before this call. This is
// what lets OptimizeMinionOrder compare many permutations against the same
// underlying "luck".
func SimulateDeterministic(board0, board1 battle.Board, seed *rng.Xoroshiro, newSource func(*rng.Xoroshiro) rng.Source, numRuns int) (ScoreSummary, ScoreSummary) {
	return runMany(board0, board1, newSource(seed.Clone()), numRuns)
}

func runMany(board0, board1 battle.Board, src rng.Source, numRuns int) (ScoreSummary, ScoreSummary) {
	var s0, s1 ScoreSummary
	for i := 0; i < numRuns; i++ {
		src.Start()
		bt := battle.NewBattle(board0, board1, src)
		bt.Run()
		score := bt.Score()
		// Burn damage is the winning board's remaining stars plus the
		// winner's tavern level; the loser "dies" when that meets or exceeds
		// their remaining hero health.
		dmg0, dmg1 := 0, 0
		died0, died1 := false, false
		if stars := bt.Board[1].TotalStars(); score < 0 && stars > 0 {
			dmg0 = stars + bt.Board[1].Level
			died0 = dmg0 >= bt.Board[0].Health
		}
		if stars := bt.Board[0].TotalStars(); score > 0 && stars > 0 {
			dmg1 = stars + bt.Board[0].Level
			died1 = dmg1 >= bt.Board[1].Health
		}
		s0.AddRun(score, dmg0, died0)
		s1.AddRun(-score, dmg1, died1)
	}
	return s0, s1
}
