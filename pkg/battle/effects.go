package battle

import "github.com/twanvl/battlegrounds-sim/pkg/battle/catalogue"

// recomputeAuraFrom applies m's aura (if it grants one) to board, and
// reports whether m is an aura-granting type at all (used by Board to decide
// whether it still needs RecomputeAuras called on future changes).
func recomputeAuraFrom(m *Minion, pos int, board, enemy *Board) bool {
	switch m.Type {
	case catalogue.MinionDireWolfAlpha:
		amt := catalogue.DoubleIfGolden(1, m.Golden)
		board.AuraBuffAdjacent(amt, 0, pos)
		return true

	case catalogue.MinionMurlocWarleader:
		amt := catalogue.DoubleIfGolden(2, m.Golden)
		board.AuraBuffOthersIf(amt, 0, pos, func(o Minion) bool {
			return o.HasTribe(catalogue.TribeMurloc)
		})
		return true

	case catalogue.MinionOldMurkEye:
		count := 0
		board.Minions.ForEach(func(i int, o *Minion) {
			if i != pos && o.HasTribe(catalogue.TribeMurloc) {
				count++
			}
		})
		enemy.Minions.ForEach(func(i int, o *Minion) {
			if o.HasTribe(catalogue.TribeMurloc) {
				count++
			}
		})
		amt := catalogue.DoubleIfGolden(1, m.Golden)
		// Tracked in AttackAura so a recompute re-derives the bonus from the
		// current Murloc population rather than accumulating across calls.
		m.AuraBuff(amt*count, 0)
		return true

	case catalogue.MinionPhalanxCommander:
		amt := catalogue.DoubleIfGolden(2, m.Golden)
		board.AuraBuffOthersIf(amt, 0, pos, func(o Minion) bool { return o.Taunt })
		return true

	case catalogue.MinionSiegebreaker:
		amt := catalogue.DoubleIfGolden(1, m.Golden)
		board.AuraBuffOthersIf(amt, 0, pos, func(o Minion) bool {
			return o.HasTribe(catalogue.TribeDemon)
		})
		return true

	case catalogue.MinionMalGanis:
		amt := catalogue.DoubleIfGolden(2, m.Golden)
		board.AuraBuffOthersIf(amt, amt, pos, func(o Minion) bool {
			return o.HasTribe(catalogue.TribeDemon)
		})
		return true

	default:
		return false
	}
}
