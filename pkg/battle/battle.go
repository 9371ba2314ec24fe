package battle

import (
	"fmt"
	"io"

	"github.com/twanvl/battlegrounds-sim/pkg/battle/catalogue"
	"github.com/twanvl/battlegrounds-sim/pkg/rng"
)

// maxMechsThatDied bounds the FIFO of mechs remembered per side for Kangor's
// Apprentice.
const maxMechsThatDied = 4

// maxRounds guards against a combat that never terminates (e.g. two
// Reborn-only boards that keep resurrecting each other); hitting it forces
// a draw rather than looping forever.
const maxRounds = 1_000_000

// deathFifo remembers up to maxMechsThatDied minions in arrival order,
// oldest first, without ever growing past capacity.
type deathFifo struct {
	items [maxMechsThatDied]Minion
	count int
}

func (f *deathFifo) Full() bool { return f.count >= maxMechsThatDied }

func (f *deathFifo) Append(m Minion) {
	if f.count < maxMechsThatDied {
		f.items[f.count] = m
		f.count++
	}
}

func (f *deathFifo) Exists(i int) bool { return i >= 0 && i < f.count }

func (f *deathFifo) At(i int) Minion {
	if !f.Exists(i) {
		return Minion{}
	}
	return f.items[i]
}

// Battle is the state machine that resolves one Monte-Carlo combat between
// two boards. Turn is -1 before Start, 0 or 1 for "it is this player's turn
// to attack", and 2 once combat has ended in a draw with minions left on
// both sides (neither side could attack, or the round limit was hit).
type Battle struct {
	Turn  int8
	Board [2]Board

	// TargetRNG drives targeting/damage/first-player decisions; SummonRNG
	// drives summon-order decisions (which random minion, which random
	// slot). Both default to the same Source but may be split to use
	// independent variance-reduction streams.
	TargetRNG rng.Source
	SummonRNG rng.Source

	MechsThatDied [2]deathFifo

	// AttackerFirstDeathOrder selects whether simultaneous deaths trigger
	// attacker-side-first or always player-0-first. The real game's
	// ordering rule is not fully known; attacker-first is the reproducible
	// default, kept tunable so callers can compare both.
	AttackerFirstDeathOrder bool

	// Verbose selects how much play-by-play is written to Log; 0 is
	// silent.
	Verbose int
	Log     io.Writer
}

// NewBattle constructs a battle ready to Run, with aura state computed for
// the starting boards.
func NewBattle(b0, b1 Board, src rng.Source) *Battle {
	b := &Battle{
		Turn:                    -1,
		Board:                   [2]Board{b0, b1},
		TargetRNG:               src,
		SummonRNG:               src,
		AttackerFirstDeathOrder: true,
	}
	b.RecomputeAuras()
	return b
}

// Started reports whether Start has run.
func (b *Battle) Started() bool { return b.Turn >= 0 }

// Done reports whether combat has concluded: one side is wiped out, neither
// side could attack in two consecutive rounds, or the maxRounds safety valve
// fired.
func (b *Battle) Done() bool {
	return b.Turn == 2 || b.Board[0].Minions.Empty() || b.Board[1].Minions.Empty()
}

// Score returns the tavern-tier-based result: positive favors player 0,
// negative favors player 1, zero is a draw.
func (b *Battle) Score() int {
	if b.Turn == 2 {
		return 0
	}
	return b.Board[0].TotalStars() - b.Board[1].TotalStars()
}

// Run drives the battle from Start to conclusion.
func (b *Battle) Run() {
	b.Start()
	missedPrevious := false
	for round := 0; !b.Done(); round++ {
		if round > maxRounds {
			if b.Log != nil {
				fmt.Fprintln(b.Log, "battle: exceeded round limit, forcing draw")
			}
			b.Turn = 2
			return
		}
		attacked := b.AttackRound()
		if missedPrevious && !attacked {
			b.Turn = 2
			return
		}
		missedPrevious = !attacked
	}
}

// Start decides who attacks first (the side with more minions, or a coin
// flip on a tie) and fires both sides' queued hero powers.
func (b *Battle) Start() {
	if b.Started() {
		return
	}
	n0 := b.Board[0].Minions.Size()
	n1 := b.Board[1].Minions.Size()
	switch {
	case n0 > n1:
		b.Turn = 0
	case n0 < n1:
		b.Turn = 1
	default:
		b.Turn = int8(b.TargetRNG.Random(2, rng.KeyFor(rng.EventFirstPlayer)))
	}
	b.Board[0].NextAttacker = 0
	b.Board[1].NextAttacker = 0
	b.DoHeroPowers()
}

// DoHeroPowers fires each side's queued hero power exactly once.
func (b *Battle) DoHeroPowers() {
	for player := 0; player < 2; player++ {
		if b.Board[player].UseHeroPower {
			b.DoHeroPower(b.Board[player].Hero, player)
			b.Board[player].UseHeroPower = false
		}
	}
}

// findAttacker scans board starting at NextAttacker, wrapping once around,
// for the first occupied slot with positive attack. Returns -1 if the
// board has no minion able to attack.
func findAttacker(board *Board) int {
	from := board.NextAttacker
	for tries := 0; tries < BoardSize; tries++ {
		if from >= BoardSize || !board.Minions.Contains(from) {
			from = 0
		}
		if board.Minions.Contains(from) && board.Minions.At(from).Attack > 0 {
			return from
		}
		from++
	}
	return -1
}

// AttackRound resolves one attacker's turn (including a windfury re-attack)
// and flips Turn to the other player. It reports false if the active side
// had nothing able to attack.
func (b *Battle) AttackRound() bool {
	player := int(b.Turn)
	active := &b.Board[player]
	from := findAttacker(active)
	if from == -1 {
		b.Turn = 1 - b.Turn
		return false
	}
	windfury := active.Minions.At(from).Windfury
	active.TrackPos[0] = from
	// Advance before attacking: deaths and summons during the attack rewrite
	// NextAttacker along with the tracked positions, so it stays pointed at
	// the minion after the attacker no matter how the board shifts.
	active.NextAttacker = from + 1
	b.SingleAttackBy(player, from)
	if windfury && active.TrackPos[0] >= 0 {
		from = active.TrackPos[0]
		b.SingleAttackBy(player, from)
	}
	b.Turn = 1 - b.Turn
	return true
}

// SingleAttackBy resolves one attack by the minion at from on player's
// board: pick a target (cleave hits its neighbors too), apply damage both
// ways, fire on-kill/post-attack triggers, then resolve any deaths.
func (b *Battle) SingleAttackBy(player, from int) {
	active := &b.Board[player]
	enemy := &b.Board[1-player]
	if enemy.Minions.Empty() {
		return
	}
	attacker := active.Minions.At(from)
	key := rng.KeyForAttacker(rng.EventAttack, player, int(attacker.Type), attacker.Golden)
	var target int
	if attacker.Type == catalogue.MinionZappSlywick {
		target = enemy.LowestAttackTarget(b.TargetRNG, key)
	} else {
		target = enemy.RandomAttackTarget(b.TargetRNG, key)
	}
	if target == -1 {
		return
	}
	if b.Log != nil && b.Verbose > 0 {
		fmt.Fprintf(b.Log, "player %d: %s attacks %s\n", player, attacker, enemy.Minions.At(target))
	}
	defender := enemy.Minions.At(target)
	enemy.TrackPos[0] = target
	n := 1
	if attacker.Cleave() {
		enemy.TrackPos[1] = target - 1
		enemy.TrackPos[2] = target + 1
		n = 3
	}
	kills, overkill := 0, false
	for i := 0; i < n; i++ {
		pos := enemy.TrackPos[i]
		if !enemy.Minions.Contains(pos) {
			continue
		}
		b.Damage(1-player, pos, int(attacker.Attack), attacker.Poison)
		pos = enemy.TrackPos[i]
		if enemy.Minions.Contains(pos) && enemy.Minions.At(pos).Dead() {
			kills++
			if enemy.Minions.At(pos).Health < 0 {
				overkill = true
			}
		}
	}
	b.Damage(player, from, int(defender.Attack), defender.Poison)
	if kills > 0 {
		b.onAttackAndKill(active.Minions.Get(from), player, from, overkill)
	}
	b.OnAfterFriendlyAttack(attacker, player)
	b.CheckForDeaths()
}

// OnAfterFriendlyAttack fires against every living minion on player's side
// after attacker (one of them) has attacked.
func (b *Battle) OnAfterFriendlyAttack(attacker Minion, player int) {
	b.Board[player].Minions.ForEachAlive(func(i int, m *Minion) {
		b.onAfterFriendlyAttack(m, attacker)
	})
}

// Damage applies amount damage to the minion at pos on player's board,
// consuming divine shield instead of losing health if present, and
// flooring health at zero for poison damage. It reports whether health was
// actually reduced.
func (b *Battle) Damage(player, pos, amount int, poison bool) bool {
	if amount <= 0 || !b.Board[player].Minions.Contains(pos) {
		return false
	}
	m := b.Board[player].Minions.Get(pos)
	if m.DivineShield {
		m.DivineShield = false
		b.OnBreakDivineShield(player)
		return false
	}
	m.Health -= int16(amount)
	if m.Health > 0 && poison {
		m.Health = 0
	}
	b.onDamaged(*m, player, pos)
	return true
}

// DamageRandomMinion damages a uniformly random living minion on player's
// board.
func (b *Battle) DamageRandomMinion(player, amount int) {
	i := b.Board[player].RandomLivingMinion(b.TargetRNG, rng.KeyForPlayerAmount(rng.EventDamage, player, amount))
	if i != -1 {
		b.Damage(player, i, amount, false)
	}
}

// DamageAll damages every living minion on player's board.
func (b *Battle) DamageAll(player, amount int) {
	b.Board[player].Minions.ForEach(func(i int, m *Minion) {
		if !m.Dead() {
			b.Damage(player, i, amount, false)
		}
	})
}

// OnBreakDivineShield fires against every living friendly when one of
// them's divine shield is consumed.
func (b *Battle) OnBreakDivineShield(player int) {
	b.Board[player].Minions.ForEachAlive(func(i int, m *Minion) {
		b.onBreakFriendlyDivineShield(m, player)
	})
}

// CheckForDeaths runs the two-phase fixpoint death resolution: compact dead
// minions out of both boards while fixing up tracked positions, recompute
// auras, then fire on_death for every minion that just died (attacker's
// side first by default), repeating until a pass produces no new deaths.
func (b *Battle) CheckForDeaths() {
	for {
		var deadMinions [2][]Minion
		var deadPositions [2][]int

		for player := 0; player < 2; player++ {
			board := &b.Board[player]
			next := 0
			for i := 0; board.Minions.Contains(i); i++ {
				if board.NextAttacker == i {
					board.NextAttacker = next
				}
				if board.Minions.At(i).Dead() {
					deadPositions[player] = append(deadPositions[player], next)
					deadMinions[player] = append(deadMinions[player], board.Minions.At(i))
					for j := range board.TrackPos {
						if board.TrackPos[j] == i {
							board.TrackPos[j] = -1
						}
					}
				} else {
					if next < i {
						*board.Minions.Get(next) = board.Minions.At(i)
						for j := range board.TrackPos {
							if board.TrackPos[j] == i {
								board.TrackPos[j] = next
							}
						}
					}
					next++
				}
			}
			board.Minions.RemoveAllFrom(next)
		}

		if len(deadMinions[0]) == 0 && len(deadMinions[1]) == 0 {
			return
		}

		b.RecomputeAuras()

		order := [2]int{0, 1}
		if b.AttackerFirstDeathOrder {
			order = [2]int{int(b.Turn), 1 - int(b.Turn)}
		}
		for _, player := range order {
			for i, dead := range deadMinions[player] {
				b.OnDeath(dead, player, deadPositions[player][i])
			}
		}
	}
}

// OnDeath fires a dying minion's deathrattle, notifies friendly on-death
// triggers, and records it for Kangor's Apprentice if it was a mech.
func (b *Battle) OnDeath(dead Minion, player, pos int) {
	if b.Log != nil && b.Verbose > 0 {
		fmt.Fprintf(b.Log, "player %d: %s dies\n", player, dead)
	}
	b.DoDeathrattle(dead, player, pos)
	b.Board[player].Minions.ForEachAlive(func(i int, m *Minion) {
		b.onFriendlyDeath(m, dead, player)
	})
	if dead.HasTribe(catalogue.TribeMech) {
		b.MechsThatDied[player].Append(dead)
	}
}

// DoDeathrattle fires dead's deathrattle: the type-specific effect plus the
// generic murloc/microbot/golden-microbot/plant/reborn payloads, each
// repeated ExtraDeathrattleCount times (Baron Rivendare).
func (b *Battle) DoDeathrattle(dead Minion, player, pos int) {
	count := b.Board[player].ExtraDeathrattleCount()
	for i := 0; i < count; i++ {
		b.doBaseDeathrattle(dead, player, pos)
		b.SummonMany(int(dead.DeathrattleMurlocs), NewMinion(catalogue.MinionMurlocScout, false), player, pos)
		b.SummonMany(int(dead.DeathrattleMicrobots), NewMinion(catalogue.MinionMicrobot, false), player, pos)
		b.SummonMany(int(dead.DeathrattleGoldenMicrobots), NewMinion(catalogue.MinionMicrobot, true), player, pos)
		b.SummonMany(int(dead.DeathrattlePlants), NewMinion(catalogue.MinionPlant, false), player, pos)
		if dead.Reborn {
			b.Summon(dead.RebornCopy(), player, pos)
		}
	}
}

// Summon inserts one copy of m at pos on player's board (or
// ExtraSummonCount copies, with Khadgar), firing on-summon triggers for
// each.
func (b *Battle) Summon(m Minion, player, pos int) {
	b.SummonMany(1, m, player, pos)
}

// SummonMany inserts count copies of m at pos on player's board (multiplied
// by ExtraSummonCount), stopping early if the board fills up.
func (b *Battle) SummonMany(count int, m Minion, player, pos int) {
	if count <= 0 {
		return
	}
	count *= b.Board[player].ExtraSummonCount()
	for i := 0; i < count && !b.Board[player].Full(); i++ {
		if !b.Board[player].Insert(pos, m) {
			break
		}
		b.OnSummoned(player, pos)
	}
	b.RecomputeAuras()
}

// SummonForOpponent appends m to 1-player's board (The Beast's Finkle
// Einhorn payload), ExtraSummonCount times.
func (b *Battle) SummonForOpponent(m Minion, player int) {
	opponent := 1 - player
	count := b.Board[player].ExtraSummonCount()
	for i := 0; i < count && !b.Board[opponent].Full(); i++ {
		pos := b.Board[opponent].Append(m)
		b.OnSummoned(opponent, pos)
	}
	b.RecomputeAuras()
}

// OnSummoned fires every living friendly's on-summon trigger (including the
// newly summoned minion itself) against the minion at pos on player's
// board.
func (b *Battle) OnSummoned(player, pos int) {
	summoned := b.Board[player].Minions.Get(pos)
	b.Board[player].Minions.ForEachAlive(func(i int, m *Minion) {
		b.onFriendlySummon(m, summoned, player)
	})
}

// RecomputeAuras recomputes aura state on both boards.
func (b *Battle) RecomputeAuras() {
	b.Board[0].RecomputeAuras(&b.Board[1])
	b.Board[1].RecomputeAuras(&b.Board[0])
}
