package simulation_test

import (
	"testing"

	"github.com/twanvl/battlegrounds-sim/pkg/battle"
	"github.com/twanvl/battlegrounds-sim/pkg/battle/catalogue"
	"github.com/twanvl/battlegrounds-sim/pkg/rng"
	"github.com/twanvl/battlegrounds-sim/pkg/simulation"
)

func sampleBoards() (battle.Board, battle.Board) {
	b0 := battle.NewBoard()
	b0.Append(battle.NewMinion(catalogue.MinionImpGangBoss, false))
	b0.Append(battle.NewMinion(catalogue.MinionInfestedWolf, false))
	b1 := battle.NewBoard()
	b1.Append(battle.NewMinion(catalogue.MinionKaboomBot, false))
	b1.Append(battle.NewMinion(catalogue.MinionAnnoyOTron, false))
	return *b0, *b1
}

func TestSimulateWinRatesSumToOne(t *testing.T) {
	b0, b1 := sampleBoards()
	src := rng.NewLowVarianceRNG(rng.NewXoroshiro(), rng.DefaultBudget)
	s0, s1 := simulation.Simulate(b0, b1, src, 200)

	if s0.NumRuns != 200 || s1.NumRuns != 200 {
		t.Fatalf("NumRuns = %d, %d, want 200, 200", s0.NumRuns, s1.NumRuns)
	}
	total := s0.WinRate() + s1.WinRate() + s0.DrawRate()
	if diff := total - 1.0; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("win/win/draw should sum to 1, got %v", total)
	}
	if s0.DrawRate() != s1.DrawRate() {
		t.Fatalf("draw rate should agree between sides: %v != %v", s0.DrawRate(), s1.DrawRate())
	}
}

func TestSimulateDeterministicRepeatable(t *testing.T) {
	b0, b1 := sampleBoards()
	seed := rng.NewXoroshiro()
	newSource := func(s *rng.Xoroshiro) rng.Source { return rng.NewLowVarianceRNG(s, rng.DefaultBudget) }

	s0a, s1a := simulation.SimulateDeterministic(b0, b1, seed, newSource, 100)
	s0b, s1b := simulation.SimulateDeterministic(b0, b1, seed, newSource, 100)

	if s0a.MeanScore() != s0b.MeanScore() || s1a.MeanScore() != s1b.MeanScore() {
		t.Fatalf("SimulateDeterministic should reproduce identical results regardless of prior RNG consumption: (%v,%v) != (%v,%v)",
			s0a.MeanScore(), s1a.MeanScore(), s0b.MeanScore(), s1b.MeanScore())
	}
}

func TestScoreSummaryBalancedWinRate(t *testing.T) {
	var s simulation.ScoreSummary
	s.AddRun(1, 0, false)
	s.AddRun(-1, 3, false)
	s.AddRun(0, 0, false)
	if got, want := s.WinRate(), 1.0/3; got != want {
		t.Fatalf("WinRate() = %v, want %v", got, want)
	}
	if got, want := s.DrawRate(), 1.0/3; got != want {
		t.Fatalf("DrawRate() = %v, want %v", got, want)
	}
	if got, want := s.BalancedWinRate(), 1.0/3+0.5*(1.0/3); got != want {
		t.Fatalf("BalancedWinRate() = %v, want %v", got, want)
	}
}

func TestScoreSummaryPercentileMonotonic(t *testing.T) {
	var s simulation.ScoreSummary
	for _, v := range []int{-3, -1, 0, 2, 5} {
		s.AddRun(v, 0, false)
	}
	p0 := s.Percentile(0)
	p50 := s.Percentile(50)
	p100 := s.Percentile(100)
	if p0 > p50 || p50 > p100 {
		t.Fatalf("percentiles should be non-decreasing: p0=%v p50=%v p100=%v", p0, p50, p100)
	}
	if p0 != -3 {
		t.Fatalf("Percentile(0) = %v, want the minimum -3", p0)
	}
	if p100 != 5 {
		t.Fatalf("Percentile(100) = %v, want the maximum 5", p100)
	}
}

func TestObjectiveValueOrientation(t *testing.T) {
	var s simulation.ScoreSummary
	s.AddRun(-1, 4, true) // a loss with damage taken and death
	if v := simulation.ObjectiveDamageTaken.Value(s); v >= 0 {
		t.Fatalf("ObjectiveDamageTaken.Value should negate damage taken so higher is better, got %v", v)
	}
	if v := simulation.ObjectiveDeathRate.Value(s); v >= 0 {
		t.Fatalf("ObjectiveDeathRate.Value should negate death rate so higher is better, got %v", v)
	}
	if simulation.ObjectiveDamageTaken.DisplayValue(s) <= 0 {
		t.Fatal("ObjectiveDamageTaken.DisplayValue should report the natural (positive) sign")
	}
}

func TestOptimizeMinionOrderReturnsEveryOriginalSlot(t *testing.T) {
	b0 := battle.NewBoard()
	// A weak minion in front, a strong one behind: the search result must
	// list both original slots and report a positive run count.
	b0.Append(battle.NewMinion(catalogue.MinionAlleyCat, false))
	b0.Append(battle.NewMinion(catalogue.MinionGoldrinnTheGreatWolf, false))
	enemy := battle.NewBoard()
	enemy.Append(battle.NewMinion(catalogue.MinionRockpoolHunter, false))

	seed := rng.NewXoroshiro()
	newSource := func(s *rng.Xoroshiro) rng.Source { return rng.NewLowVarianceRNG(s, rng.DefaultBudget) }
	result := simulation.OptimizeMinionOrder(*b0, *enemy, 0, seed, newSource, simulation.ObjectiveWinRate, 2000)

	if len(result.Order) != 2 {
		t.Fatalf("Order should list both original slots, got %v", result.Order)
	}
	if result.Runs <= 0 {
		t.Fatalf("Runs = %d, want > 0", result.Runs)
	}
}

func TestOptimizeMinionOrderSingleMinionIsIdentity(t *testing.T) {
	b0 := battle.NewBoard()
	b0.Append(battle.NewMinion(catalogue.MinionAlleyCat, false))
	enemy := battle.NewBoard()
	enemy.Append(battle.NewMinion(catalogue.MinionRockpoolHunter, false))

	seed := rng.NewXoroshiro()
	newSource := func(s *rng.Xoroshiro) rng.Source { return rng.NewLowVarianceRNG(s, rng.DefaultBudget) }
	result := simulation.OptimizeMinionOrder(*b0, *enemy, 0, seed, newSource, simulation.ObjectiveScore, 100)

	if len(result.Order) != 1 || result.Order[0] != 0 {
		t.Fatalf("a single-minion board has only one order, got %v", result.Order)
	}
}
