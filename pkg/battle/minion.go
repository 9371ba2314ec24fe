// Package battle implements the attack-turn state machine, the cascading
// damage/death/deathrattle/aura/summon event pipeline, and the per-minion
// effect dispatch table for a two-sided Hearthstone-Battlegrounds-style
// combat simulation.
package battle

import (
	"fmt"

	"github.com/twanvl/battlegrounds-sim/pkg/battle/catalogue"
)

// maxDeathrattleCount caps every generic deathrattle-payload counter.
const maxDeathrattleCount = 7

// Minion is a trivially-copyable value: current stats, keywords, and
// deathrattle payload counters. It carries no back-pointer to its board or
// slot index; effect dispatch always receives the board and position
// explicitly, which keeps a Minion cheap enough to copy wholesale every
// time a Battle is cloned for one more Monte-Carlo run.
type Minion struct {
	Type   catalogue.MinionType
	Golden bool

	// Attack and Health include current aura contribution (AttackAura,
	// HealthAura); see RecomputeAuras.
	Attack int16
	Health int16

	Taunt        bool
	DivineShield bool
	Poison       bool
	Windfury     bool
	Reborn       bool

	DeathrattleMurlocs         int8
	DeathrattleMicrobots       int8
	DeathrattleGoldenMicrobots int8
	DeathrattlePlants          int8

	AttackAura int16
	HealthAura int16

	// InvalidAura marks a minion constructed with stats that already
	// include aura effects (e.g. loaded from a snapshot taken mid-battle);
	// the next RecomputeAuras must compensate for the double count.
	InvalidAura bool
}

// NewMinion constructs a fresh minion of the given type from the catalogue
// row, optionally doubled for golden.
func NewMinion(t catalogue.MinionType, golden bool) Minion {
	info := catalogue.InfoFor(t)
	return Minion{
		Type:         t,
		Golden:       golden,
		Attack:       int16(info.AttackFor(golden)),
		Health:       int16(info.HealthFor(golden)),
		Taunt:        info.Taunt,
		DivineShield: info.DivineShield,
		Poison:       info.Poison,
		Windfury:     info.Windfury,
	}
}

// Exists reports whether this slot holds a minion (false for the zero
// value / MinionNone, which denotes an empty board slot).
func (m Minion) Exists() bool { return m.Type != catalogue.MinionNone }

// Dead reports whether this slot is occupied by a minion whose health has
// dropped to zero or below; it is still "in" the array until
// Battle.CheckForDeaths removes it.
func (m Minion) Dead() bool { return m.Exists() && m.Health <= 0 }

// Alive reports whether this slot holds a minion with positive health.
func (m Minion) Alive() bool { return m.Exists() && m.Health > 0 }

// Stars returns the catalogue tier of this minion's type.
func (m Minion) Stars() int { return catalogue.InfoFor(m.Type).Stars }

// Tribe returns this minion's catalogue tribe.
func (m Minion) Tribe() catalogue.Tribe { return catalogue.InfoFor(m.Type).Tribe }

// HasTribe reports whether this minion belongs to tribe query.
func (m Minion) HasTribe(query catalogue.Tribe) bool { return m.Tribe().HasTribe(query) }

// Cleave reports whether this minion's attacks hit its target's neighbors.
func (m Minion) Cleave() bool { return catalogue.InfoFor(m.Type).Cleave }

// NewCopy returns an independent value copy, for effects (e.g. Kangor's
// Apprentice) that resurrect a previously recorded minion unchanged.
func (m Minion) NewCopy() Minion { return m }

// RebornCopy returns a copy suitable for a reborn resummon: health forced
// to 1, reborn cleared so the copy does not reborn again.
func (m Minion) RebornCopy() Minion {
	out := m
	out.Health = 1
	out.Reborn = false
	return out
}

// Clear resets the slot to empty (MinionNone).
func (m *Minion) Clear() { *m = Minion{} }

// Buff permanently adds to attack and health.
func (m *Minion) Buff(attack, health int) {
	m.Attack += int16(attack)
	m.Health += int16(health)
}

// BuffFrom merges another minion's stats and keywords into this one
// (magnetize): stats and Tier-1-mech-ish boolean keywords are additive/OR'd,
// deathrattle counters take the max (murlocs, which are a 0/1 flag) or a
// capped sum (microbots, golden microbots, plants).
func (m *Minion) BuffFrom(other Minion) {
	m.Attack += other.Attack
	m.Health += other.Health
	m.Taunt = m.Taunt || other.Taunt
	m.DivineShield = m.DivineShield || other.DivineShield
	m.Poison = m.Poison || other.Poison
	m.Windfury = m.Windfury || other.Windfury
	if other.DeathrattleMurlocs > m.DeathrattleMurlocs {
		m.DeathrattleMurlocs = other.DeathrattleMurlocs
	}
	m.AddDeathrattleMicrobots(int(other.DeathrattleMicrobots))
	m.AddDeathrattleGoldenMicrobots(int(other.DeathrattleGoldenMicrobots))
	m.AddDeathrattlePlants(int(other.DeathrattlePlants))
}

func clampDeathrattleCount(cur int8, add int) int8 {
	v := int(cur) + add
	if v > maxDeathrattleCount {
		v = maxDeathrattleCount
	}
	if v < 0 {
		v = 0
	}
	return int8(v)
}

// AddDeathrattleMicrobots adds n to the microbot counter, capped at 7.
func (m *Minion) AddDeathrattleMicrobots(n int) {
	m.DeathrattleMicrobots = clampDeathrattleCount(m.DeathrattleMicrobots, n)
}

// AddDeathrattleGoldenMicrobots adds n to the golden-microbot counter,
// capped at 7.
func (m *Minion) AddDeathrattleGoldenMicrobots(n int) {
	m.DeathrattleGoldenMicrobots = clampDeathrattleCount(m.DeathrattleGoldenMicrobots, n)
}

// AddDeathrattlePlants adds n to the plant counter, capped at 7.
func (m *Minion) AddDeathrattlePlants(n int) {
	m.DeathrattlePlants = clampDeathrattleCount(m.DeathrattlePlants, n)
}

// AuraBuff adds an aura contribution to attack/health, tracked separately in
// AttackAura/HealthAura so a later ClearAuraBuff can remove exactly this
// amount.
func (m *Minion) AuraBuff(attack, health int) {
	m.Attack += int16(attack)
	m.Health += int16(health)
	m.AttackAura += int16(attack)
	m.HealthAura += int16(health)
}

// ClearAuraBuff removes the currently tracked aura contribution.
func (m *Minion) ClearAuraBuff() {
	m.Attack -= m.AttackAura
	m.Health -= m.HealthAura
	m.AttackAura = 0
	m.HealthAura = 0
}

func (m Minion) String() string {
	if !m.Exists() {
		return "(empty)"
	}
	name := m.Type.String()
	if m.Golden {
		name = "Golden " + name
	}
	s := fmt.Sprintf("%d/%d %s", m.Attack, m.Health, name)
	for _, kw := range m.keywordList() {
		s += ", " + kw
	}
	return s
}

func (m Minion) keywordList() []string {
	var kws []string
	if m.Taunt {
		kws = append(kws, "taunt")
	}
	if m.DivineShield {
		kws = append(kws, "divine shield")
	}
	if m.Poison {
		kws = append(kws, "poisonous")
	}
	if m.Windfury {
		kws = append(kws, "windfury")
	}
	if m.Reborn {
		kws = append(kws, "reborn")
	}
	if m.DeathrattleMicrobots > 0 {
		kws = append(kws, "microbots")
	}
	if m.DeathrattleGoldenMicrobots > 0 {
		kws = append(kws, "golden microbots")
	}
	if m.DeathrattlePlants > 0 {
		kws = append(kws, "plants")
	}
	return kws
}
