package battle

import (
	"fmt"
	"strings"

	"github.com/twanvl/battlegrounds-sim/pkg/battle/catalogue"
	"github.com/twanvl/battlegrounds-sim/pkg/rng"
)

// numTrackPos is the number of positions a Board remembers across a single
// attack resolution: the primary target and, for cleave, its two neighbors.
const numTrackPos = 3

// Board holds one side's minions plus the bookkeeping a Battle needs to
// resolve an attack round: which minion attacks next, which positions are
// currently "interesting" (attacker/target/cleave targets, fixed up on every
// insert and remove), and the hero's state.
type Board struct {
	Minions MinionArray

	NextAttacker int
	TrackPos     [numTrackPos]int

	Hero         catalogue.HeroType
	UseHeroPower bool
	Level        int
	Health       int

	anyAuras bool
}

// NewBoard returns an empty board with no hero power queued and all
// tracked positions unset.
func NewBoard() *Board {
	b := &Board{}
	for i := range b.TrackPos {
		b.TrackPos[i] = -1
	}
	return b
}

// Full reports whether the board already holds BoardSize minions.
func (b *Board) Full() bool { return b.Minions.Full() }

// Append adds m after the last occupied slot.
func (b *Board) Append(m Minion) int {
	pos := b.Minions.Append(m)
	if pos < BoardSize {
		b.noteAuraMinion(m)
	}
	return pos
}

// Insert adds m at pos, fixing up NextAttacker and every tracked position:
// any tracked index at or after pos shifts right by one.
func (b *Board) Insert(pos int, m Minion) bool {
	if !b.Minions.Insert(pos, m) {
		return false
	}
	// Strictly greater: a minion inserted exactly at NextAttacker becomes
	// the next attacker.
	if b.NextAttacker > pos {
		b.NextAttacker++
	}
	for i := range b.TrackPos {
		if b.TrackPos[i] >= pos {
			b.TrackPos[i]++
		}
	}
	b.noteAuraMinion(m)
	return true
}

// Remove deletes the minion at pos, fixing up NextAttacker (decrements if
// past pos) and every tracked position (decrements if past pos, invalidates
// to -1 if it pointed at pos itself).
func (b *Board) Remove(pos int) {
	b.Minions.Remove(pos)
	if b.NextAttacker > pos {
		b.NextAttacker--
	}
	for i := range b.TrackPos {
		switch {
		case b.TrackPos[i] == pos:
			b.TrackPos[i] = -1
		case b.TrackPos[i] > pos:
			b.TrackPos[i]--
		}
	}
}

func (b *Board) noteAuraMinion(m Minion) {
	if isAuraMinionType(m.Type) || m.InvalidAura {
		b.anyAuras = true
	}
}

// isAuraMinionType reports whether minions of this type contribute a live
// aura in recomputeAuraFrom.
func isAuraMinionType(t catalogue.MinionType) bool {
	switch t {
	case catalogue.MinionDireWolfAlpha, catalogue.MinionMurlocWarleader,
		catalogue.MinionOldMurkEye, catalogue.MinionPhalanxCommander,
		catalogue.MinionSiegebreaker, catalogue.MinionMalGanis:
		return true
	default:
		return false
	}
}

// RecomputeAuras clears every aura contribution on this board and
// recomputes it from scratch against the current state of both boards. It
// is a no-op when the board has never held an aura-granting minion.
func (b *Board) RecomputeAuras(enemy *Board) {
	if !b.anyAuras {
		return
	}
	b.Minions.ForEach(func(i int, m *Minion) { m.ClearAuraBuff() })
	b.anyAuras = false
	b.Minions.ForEach(func(pos int, m *Minion) {
		if recomputeAuraFrom(m, pos, b, enemy) {
			b.anyAuras = true
		}
	})
	b.Minions.ForEach(func(i int, m *Minion) {
		if m.InvalidAura {
			// The caller-supplied stats already included aura effects, so the
			// re-applied contribution above would double-count; back it out
			// while keeping AttackAura/HealthAura as the record of what is
			// currently applied.
			m.InvalidAura = false
			m.Attack -= m.AttackAura
			m.Health -= m.HealthAura
		}
	})
}

// AuraBuffAdjacent applies an aura buff to the minions immediately to the
// left and right of pos, if they exist.
func (b *Board) AuraBuffAdjacent(attack, health, pos int) {
	if b.Minions.Contains(pos - 1) {
		b.Minions.Get(pos - 1).AuraBuff(attack, health)
	}
	if b.Minions.Contains(pos + 1) {
		b.Minions.Get(pos + 1).AuraBuff(attack, health)
	}
}

// AuraBuffOthersIf applies an aura buff to every minion other than pos that
// satisfies cond. This deliberately does not skip dead minions: an aura
// recompute buffs every occupied slot uniformly.
func (b *Board) AuraBuffOthersIf(attack, health, pos int, cond func(Minion) bool) {
	b.Minions.ForEach(func(i int, m *Minion) {
		if i != pos && cond(*m) {
			m.AuraBuff(attack, health)
		}
	})
}

// BuffAll permanently buffs every living minion.
func (b *Board) BuffAll(attack, health int) {
	b.Minions.ForEachAlive(func(i int, m *Minion) { m.Buff(attack, health) })
}

// BuffAllIf permanently buffs every living minion satisfying cond.
func (b *Board) BuffAllIf(attack, health int, cond func(Minion) bool) {
	b.Minions.ForEachAlive(func(i int, m *Minion) {
		if cond(*m) {
			m.Buff(attack, health)
		}
	})
}

// RandomLivingMinion returns the index of a uniformly random living minion,
// or -1 if none exist.
func (b *Board) RandomLivingMinion(src rng.Source, key rng.Key) int {
	n := 0
	b.Minions.ForEachAlive(func(i int, m *Minion) { n++ })
	if n == 0 {
		return -1
	}
	pick := src.Random(n, key)
	found := -1
	b.Minions.ForEachAlive(func(i int, m *Minion) {
		if found == -1 {
			if pick == 0 {
				found = i
			}
			pick--
		}
	})
	return found
}

// forRandomLivingMinion applies fn to a uniformly random living minion, if
// one exists.
func (b *Board) forRandomLivingMinion(fn func(*Minion), src rng.Source, key rng.Key) {
	i := b.RandomLivingMinion(src, key)
	if i != -1 {
		fn(b.Minions.Get(i))
	}
}

// GiveRandomMinionDivineShield grants divine shield to a uniformly random
// living minion on this board.
func (b *Board) GiveRandomMinionDivineShield(src rng.Source, player int) {
	b.forRandomLivingMinion(func(m *Minion) { m.DivineShield = true },
		src, rng.KeyForPlayer(rng.EventGiveDivineShield, player))
}

// BuffRandomMinion permanently buffs a uniformly random living minion on
// this board.
func (b *Board) BuffRandomMinion(attack, health int, src rng.Source, player int) {
	key := rng.KeyForPlayerAmount(rng.EventBuff, player, attack+health<<8)
	b.forRandomLivingMinion(func(m *Minion) { m.Buff(attack, health) }, src, key)
}

// RandomAttackTarget picks a defender: if any living minion has taunt,
// attacks are restricted to those; otherwise any living minion is eligible.
// Returns -1 if the board has no living minions.
func (b *Board) RandomAttackTarget(src rng.Source, key rng.Key) int {
	numTaunts, numMinions := 0, 0
	b.Minions.ForEachAlive(func(i int, m *Minion) {
		numMinions++
		if m.Taunt {
			numTaunts++
		}
	})
	if numMinions == 0 {
		return -1
	}
	if numTaunts > 0 {
		pick := src.Random(numTaunts, key)
		found := -1
		b.Minions.ForEachAlive(func(i int, m *Minion) {
			if found == -1 && m.Taunt {
				if pick == 0 {
					found = i
				}
				pick--
			}
		})
		return found
	}
	pick := src.Random(numMinions, key)
	found := -1
	b.Minions.ForEachAlive(func(i int, m *Minion) {
		if found == -1 {
			if pick == 0 {
				found = i
			}
			pick--
		}
	})
	return found
}

// LowestAttackTarget returns a uniformly random choice among the taunted
// (or, absent taunt, any) living minions tied for the lowest attack. Used
// by Zapp Slywick, which always targets the weakest enemy.
func (b *Board) LowestAttackTarget(src rng.Source, key rng.Key) int {
	hasTaunt := false
	b.Minions.ForEachAlive(func(i int, m *Minion) {
		if m.Taunt {
			hasTaunt = true
		}
	})
	eligible := func(m Minion) bool { return !hasTaunt || m.Taunt }
	lowest := int16(0)
	first := true
	b.Minions.ForEachAlive(func(i int, m *Minion) {
		if !eligible(*m) {
			return
		}
		if first || m.Attack < lowest {
			lowest = m.Attack
			first = false
		}
	})
	if first {
		return -1
	}
	n := 0
	b.Minions.ForEachAlive(func(i int, m *Minion) {
		if eligible(*m) && m.Attack == lowest {
			n++
		}
	})
	pick := src.Random(n, key)
	found := -1
	b.Minions.ForEachAlive(func(i int, m *Minion) {
		if found == -1 && eligible(*m) && m.Attack == lowest {
			if pick == 0 {
				found = i
			}
			pick--
		}
	})
	return found
}

// ExtraSummonCount returns how many copies to summon per deathrattle/token
// trigger: 2 with a living Khadgar (3 if golden), else 1.
func (b *Board) ExtraSummonCount() int {
	return 1 + b.HasMinion(catalogue.MinionKhadgar)
}

// ExtraDeathrattleCount returns how many times to fire a dying minion's
// deathrattle: 2 with a living Baron Rivendare (3 if golden), else 1.
func (b *Board) ExtraDeathrattleCount() int {
	return 1 + b.HasMinion(catalogue.MinionBaronRivendare)
}

// ExtraBattlecryCount returns how many times a battlecry fires: 2 with a
// living Brann Bronzebeard (3 if golden), else 1.
func (b *Board) ExtraBattlecryCount() int {
	return 1 + b.HasMinion(catalogue.MinionBrannBronzebeard)
}

// HasMinion returns 0 if no living minion of type t is on this board, 1 if
// a normal one is, or 2 if a golden one is (golden counts twice for the
// duplication effects above).
func (b *Board) HasMinion(t catalogue.MinionType) int {
	have := 0
	b.Minions.ForEachAlive(func(i int, m *Minion) {
		if m.Type == t {
			n := 1
			if m.Golden {
				n = 2
			}
			if n > have {
				have = n
			}
		}
	})
	return have
}

// TotalStars sums the tavern tier of every minion on the board.
func (b *Board) TotalStars() int {
	sum := 0
	b.Minions.ForEach(func(i int, m *Minion) { sum += m.Stars() })
	return sum
}

// TotalStats sums attack plus health over every minion on the board, used
// to break ties when ordering boards in a text dump.
func (b *Board) TotalStats() int {
	sum := 0
	b.Minions.ForEach(func(i int, m *Minion) { sum += int(m.Attack) + int(m.Health) })
	return sum
}

func (b *Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "hp %d", b.Health)
	if b.Hero != catalogue.HeroNone {
		fmt.Fprintf(&sb, " hero %s", b.Hero)
	}
	if b.Level != 0 {
		fmt.Fprintf(&sb, " level %d", b.Level)
	}
	b.Minions.ForEach(func(i int, m *Minion) {
		fmt.Fprintf(&sb, "\n* %s", m)
	})
	return sb.String()
}
