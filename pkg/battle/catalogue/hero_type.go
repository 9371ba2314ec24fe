package catalogue

// HeroType selects the one-shot pre-battle hero power a board starts with.
type HeroType int

const (
	HeroNone HeroType = iota
	HeroNeffarian
	HeroRagnarosTheFirelord
	HeroPatchesThePirate
	HeroTheLichKing
	HeroGiantfin
	HeroProfessorPutricide

	heroTypeCount
)

var heroTypeNames = [...]string{
	"None",
	"Neffarian",
	"Ragnaros the Firelord",
	"Patches the Pirate",
	"The Lich King",
	"Giantfin",
	"Professor Putricide",
}

func (h HeroType) String() string {
	if int(h) < 0 || int(h) >= len(heroTypeNames) {
		return "Unknown"
	}
	return heroTypeNames[h]
}

var heroTypeByName = func() map[string]HeroType {
	m := make(map[string]HeroType, len(heroTypeNames))
	for i, n := range heroTypeNames {
		m[n] = HeroType(i)
	}
	return m
}()

// HeroTypeByName looks up a hero power by its display name.
func HeroTypeByName(name string) (HeroType, bool) {
	h, ok := heroTypeByName[name]
	return h, ok
}

// PatchesThePirateDamage is the damage dealt by each of Patches' two hits.
// The hero power has shipped as both 3 and 4 at different times; it is a
// named constant so callers can override it without touching the dispatch
// table.
const PatchesThePirateDamage = 3
