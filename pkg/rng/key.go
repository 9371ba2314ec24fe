package rng

// Key identifies a sampling call site for the variance-reduced RNG variants.
// Two calls with the same Key (and the same n) are treated as "the same
// kind of decision" and draw from the same permutation deck.
type Key int

// EventType enumerates the call sites that construct a Key.
type EventType int

const (
	EventOneCostMinion EventType = iota + 1
	EventTwoCostMinion
	EventFourCostMinion
	EventLegendaryMinion
	EventDeathrattleMinion
	EventFirstPlayer
	EventDamage
	EventAttack
	EventGiveDivineShield
	EventBuff
)

// KeyFor builds a Key from just the event type.
func KeyFor(t EventType) Key {
	return Key(t)
}

// KeyForPlayer builds a Key scoped to one player.
func KeyForPlayer(t EventType, player int) Key {
	return Key(int(t) ^ (player << 8))
}

// KeyForPlayerAmount builds a Key scoped to a player and a small integer
// payload (e.g. a damage or buff amount).
func KeyForPlayerAmount(t EventType, player, amount int) Key {
	return Key(int(t) ^ (player << 8) ^ (amount << 9))
}

// KeyForAttacker builds a Key scoped to a player and an attacking minion's
// type/golden-ness, used for target selection so that two permutations with
// the same attacker draw from the same targeting deck.
func KeyForAttacker(t EventType, player int, minionType int, golden bool) Key {
	g := 0
	if golden {
		g = 1
	}
	return Key(int(t) ^ (player << 8) ^ (minionType << 9) ^ (g << 20))
}
