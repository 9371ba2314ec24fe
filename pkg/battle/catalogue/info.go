package catalogue

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed minions.yaml
var minionsYAML []byte

// Info is one row of the minion catalogue: base stats and keywords shared by
// every (non-golden) instance of a MinionType.
type Info struct {
	Name         string
	Stars        int
	Tribe        Tribe
	Attack       int
	Health       int
	Taunt        bool
	DivineShield bool
	Poison       bool
	Windfury     bool
	Cleave       bool
}

// DoubleIfGolden doubles x when golden is set; used throughout the effect
// dispatch tables to scale magnitudes for golden minions.
func DoubleIfGolden(x int, golden bool) int {
	if golden {
		return 2 * x
	}
	return x
}

// AttackFor returns the base attack for a (possibly golden) instance.
func (i Info) AttackFor(golden bool) int { return DoubleIfGolden(i.Attack, golden) }

// HealthFor returns the base health for a (possibly golden) instance.
func (i Info) HealthFor(golden bool) int { return DoubleIfGolden(i.Health, golden) }

type rawRow struct {
	Name         string `yaml:"name"`
	Stars        int    `yaml:"stars"`
	TribeName    string `yaml:"tribe"`
	Attack       int    `yaml:"attack"`
	Health       int    `yaml:"health"`
	Taunt        bool   `yaml:"taunt"`
	DivineShield bool   `yaml:"divine_shield"`
	Poison       bool   `yaml:"poison"`
	Windfury     bool   `yaml:"windfury"`
	Cleave       bool   `yaml:"cleave"`
}

type rawCatalogue struct {
	Minions []rawRow `yaml:"minions"`
}

var table []Info
var nameIndex map[string]MinionType

func init() {
	var raw rawCatalogue
	if err := yaml.Unmarshal(minionsYAML, &raw); err != nil {
		panic(fmt.Sprintf("catalogue: failed to parse embedded minion table: %v", err))
	}
	if len(raw.Minions) != Count() {
		panic(fmt.Sprintf("catalogue: minions.yaml has %d rows, MinionType enumerates %d", len(raw.Minions), Count()))
	}
	table = make([]Info, len(raw.Minions))
	nameIndex = make(map[string]MinionType, len(raw.Minions))
	for i, row := range raw.Minions {
		tribeName := row.TribeName
		if tribeName == "" {
			tribeName = "None"
		}
		tribe, ok := TribeByName(tribeName)
		if !ok {
			panic(fmt.Sprintf("catalogue: unknown tribe %q for row %d (%s)", tribeName, i, row.Name))
		}
		table[i] = Info{
			Name:         row.Name,
			Stars:        row.Stars,
			Tribe:        tribe,
			Attack:       row.Attack,
			Health:       row.Health,
			Taunt:        row.Taunt,
			DivineShield: row.DivineShield,
			Poison:       row.Poison,
			Windfury:     row.Windfury,
			Cleave:       row.Cleave,
		}
		nameIndex[row.Name] = MinionType(i)
	}
}

// InfoFor returns the catalogue row for t. Out-of-range values return the
// MinionNone row.
func InfoFor(t MinionType) Info {
	if int(t) < 0 || int(t) >= len(table) {
		return table[MinionNone]
	}
	return table[t]
}

func (t MinionType) String() string { return InfoFor(t).Name }

// TypeByName looks up a minion type by its catalogue display name.
func TypeByName(name string) (MinionType, bool) {
	t, ok := nameIndex[name]
	return t, ok
}

// HasTribe reports whether minion type t belongs to tribe query.
func (t MinionType) HasTribe(query Tribe) bool {
	return InfoFor(t).Tribe.HasTribe(query)
}

// Random-sampling tables for the "summon a random X" deathrattles.
// Picking a random element from these (by index, via the battle package's
// RNG service) implements the Mounted Raptor / Piloted Shredder / Piloted
// Sky Golem / Ghastcoiler / Sneed's Old Shredder pools.

var OneCostMinions = []MinionType{
	MinionAlleyCat,
	MinionMecharoo,
	MinionMurlocTidecaller,
	MinionRighteousProtector,
	MinionSelflessHero,
	MinionVoidwalker,
	MinionPogoHopper,
	MinionShifterZerus,
	MinionToxfin,
}

var TwoCostMinions = []MinionType{
	MinionDireWolfAlpha,
	MinionMicroMachine,
	MinionMurlocTidehunter,
	MinionRockpoolHunter,
	MinionVulgarHomunculus,
	MinionAnnoyOTron,
	MinionKindlyGrandmother,
	MinionScavengingHyena,
	MinionShieldedMinibot,
	MinionKhadgar,
}

var FourCostMinions = []MinionType{
	MinionOldMurkEye,
	MinionCrowdFavorite,
	MinionCrystalweaver,
	MinionHoundmaster,
	MinionInfestedWolf,
	MinionPilotedShredder,
	MinionReplicatingMenace,
	MinionScrewjankClunker,
	MinionTortollanShellraiser,
	MinionAnnoyOModule,
	MinionDefenderOfArgus,
	MinionBaronRivendare,
	MinionStrongshellScavenger,
	MinionGentleMegasaur,
}

var DeathrattleMinions = []MinionType{
	MinionMecharoo,
	MinionSelflessHero,
	MinionHarvestGolem,
	MinionKaboomBot,
	MinionKindlyGrandmother,
	MinionMountedRaptor,
	MinionRatPack,
	MinionSpawnOfNZoth,
	MinionInfestedWolf,
	MinionPilotedShredder,
	MinionReplicatingMenace,
	MinionTortollanShellraiser,
	MinionPilotedSkyGolem,
	MinionTheBeast,
	MinionGoldrinnTheGreatWolf,
	MinionMechanoEgg,
	MinionSatedThreshadon,
	MinionSavannahHighmane,
	MinionGhastcoiler,
	MinionKangorsApprentice,
	MinionSneedsOldShredder,
	MinionVoidlord,
}

var LegendaryMinions = []MinionType{
	MinionOldMurkEye,
	MinionShifterZerus,
	MinionBolvarFireblood,
	MinionBaronRivendare,
	MinionBrannBronzebeard,
	MinionGoldrinnTheGreatWolf,
	MinionMalGanis,
	MinionTheBoogeymonster,
	MinionFoeReaper4000,
	MinionMaexxna,
	MinionSneedsOldShredder,
	MinionZappSlywick,
}
