// Package catalogue holds the read-only minion and hero-power data table:
// names, tiers, base stats, keywords, and the tribe/cost/rarity index tables
// used by random-minion sampling and duplication effects.
package catalogue

// Tribe groups minions for tribe-wide auras and deathrattle conditions.
type Tribe int

const (
	TribeNone Tribe = iota
	TribeBeast
	TribeDemon
	TribeDragon
	TribeMech
	TribeMurloc
	TribeAll
)

var tribeNames = [...]string{"None", "Beast", "Demon", "Dragon", "Mech", "Murloc", "All"}

func (t Tribe) String() string {
	if int(t) < 0 || int(t) >= len(tribeNames) {
		return "Unknown"
	}
	return tribeNames[t]
}

// HasTribe reports whether t matches query, treating TribeAll as a wildcard.
func (t Tribe) HasTribe(query Tribe) bool {
	return t == TribeAll || t == query
}

var tribeByName = func() map[string]Tribe {
	m := make(map[string]Tribe, len(tribeNames))
	for i, n := range tribeNames {
		m[n] = Tribe(i)
	}
	return m
}()

// TribeByName looks up a tribe by its display name, case-sensitive exact match.
func TribeByName(name string) (Tribe, bool) {
	t, ok := tribeByName[name]
	return t, ok
}
