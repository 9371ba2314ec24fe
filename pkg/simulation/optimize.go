package simulation

import (
	"github.com/twanvl/battlegrounds-sim/pkg/battle"
	"github.com/twanvl/battlegrounds-sim/pkg/rng"
)

// OptimizeResult is the outcome of an OptimizeMinionOrder search.
type OptimizeResult struct {
	// Order lists original board slot indices in their best-found order:
	// Order[i] is the slot whose minion should end up at position i.
	Order []int
	Value float64
	// Current is the objective value of the board as given (the identity
	// order), evaluated with the full budget, for "is reordering worth it"
	// comparisons.
	Current float64
	Runs    int
}

// OptimizeMinionOrder searches permutations of the minions on board (enemy
// held fixed) for the arrangement that maximizes objective. player selects
// which side board represents (0 or 1), so the search evaluates
// ScoreSummary from the correct perspective.
//
// budget is the run count for the baseline (identity) order; each other
// permutation gets max(10, min(budget, budget*50/nperm)) runs during the
// search, so the total number of simulated battles is not capped by budget.
// A winner that displaced the baseline on fewer than budget runs is
// re-evaluated once more with the full budget to reduce its reported noise.
// seed is advanced via Jump at the end so a caller's subsequent RNG use
// does not retrace ground this search already covered.
func OptimizeMinionOrder(board, enemy battle.Board, player int, seed *rng.Xoroshiro, newSource func(*rng.Xoroshiro) rng.Source, objective Objective, budget int) OptimizeResult {
	n := board.Minions.Size()
	order := identityOrder(n)

	nperm := factorial(n)
	runs := budget * 50 / nperm
	if runs > budget {
		runs = budget
	}
	if runs < 10 {
		runs = 10
	}

	// Baseline: the board as given, at the full budget. Candidate
	// permutations must beat this (estimated with fewer runs) to displace it.
	current := objective.Value(evaluateOrder(board, enemy, player, order, seed, newSource, budget))
	bestOrder := append([]int(nil), order...)
	bestValue := current
	for nextPermutation(order) {
		v := objective.Value(evaluateOrder(board, enemy, player, order, seed, newSource, runs))
		if v > bestValue {
			bestValue = v
			bestOrder = append([]int(nil), order...)
		}
	}

	// Re-check the winner with the full budget, also to dampen
	// multiple-testing bias from comparing many noisy estimates.
	if runs < budget && bestValue > current {
		bestValue = objective.Value(evaluateOrder(board, enemy, player, bestOrder, seed, newSource, budget))
	}
	seed.Jump()
	return OptimizeResult{Order: bestOrder, Value: bestValue, Current: current, Runs: budget}
}

func evaluateOrder(board, enemy battle.Board, player int, order []int, seed *rng.Xoroshiro, newSource func(*rng.Xoroshiro) rng.Source, runs int) ScoreSummary {
	reordered := permuteBoard(board, order)
	if player == 0 {
		s0, _ := SimulateDeterministic(reordered, enemy, seed, newSource, runs)
		return s0
	}
	_, s1 := SimulateDeterministic(enemy, reordered, seed, newSource, runs)
	return s1
}

func permuteBoard(board battle.Board, order []int) battle.Board {
	out := board
	out.Minions = battle.MinionArray{}
	for i, src := range order {
		out.Minions.Set(i, board.Minions.At(src))
	}
	out.NextAttacker = 0
	for i := range out.TrackPos {
		out.TrackPos[i] = -1
	}
	return out
}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}

// nextPermutation rearranges a in place into the lexicographically next
// permutation and reports true, or wraps back to the sorted (identity)
// permutation and reports false if a was already the last one. Mirrors
// C++'s std::next_permutation.
func nextPermutation(a []int) bool {
	n := len(a)
	if n < 2 {
		return false
	}
	i := n - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		reverse(a, 0, n-1)
		return false
	}
	j := n - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	reverse(a, i+1, n-1)
	return true
}

func reverse(a []int, i, j int) {
	for i < j {
		a[i], a[j] = a[j], a[i]
		i++
		j--
	}
}
