package catalogue

// MinionType tags which catalogue row a Minion value refers to. The zero
// value, MinionNone, denotes an empty array slot.
type MinionType int

const (
	MinionNone MinionType = iota
	// Tier 1
	MinionAlleyCat
	MinionDireWolfAlpha
	MinionMecharoo
	MinionMicroMachine
	MinionMurlocTidecaller
	MinionMurlocTidehunter
	MinionRighteousProtector
	MinionRockpoolHunter
	MinionSelflessHero
	MinionVoidwalker
	MinionVulgarHomunculus
	MinionWrathWeaver
	// Tier 1 tokens
	MinionTabbyCat
	MinionJoEBot
	MinionMurlocScout
	MinionAmalgam
	MinionPlant
	// Tier 2
	MinionAnnoyOTron
	MinionHarvestGolem
	MinionKaboomBot
	MinionKindlyGrandmother
	MinionMetaltoothLeaper
	MinionMountedRaptor
	MinionMurlocWarleader
	MinionNethrezimOverseer
	MinionNightmareAmalgam
	MinionOldMurkEye
	MinionPogoHopper
	MinionRatPack
	MinionScavengingHyena
	MinionShieldedMinibot
	MinionSpawnOfNZoth
	MinionZoobot
	// Tier 2 tokens
	MinionDamagedGolem
	MinionBigBadWolf
	MinionRat
	// Tier 3
	MinionCobaltGuardian
	MinionColdlightSeer
	MinionCrowdFavorite
	MinionCrystalweaver
	MinionHoundmaster
	MinionImpGangBoss
	MinionInfestedWolf
	MinionKhadgar
	MinionPackLeader
	MinionPhalanxCommander
	MinionPilotedShredder
	MinionPsychOTron
	MinionReplicatingMenace
	MinionScrewjankClunker
	MinionShifterZerus
	MinionSoulJuggler
	MinionTortollanShellraiser
	// Tier 3 tokens
	MinionMicrobot
	MinionSpider
	MinionImp
	// Tier 4
	MinionAnnoyOModule
	MinionBolvarFireblood
	MinionCaveHydra
	MinionDefenderOfArgus
	MinionFesterootHulk
	MinionIronSensei
	MinionJunkbot
	MinionManagerieMagician
	MinionPilotedSkyGolem
	MinionSecurityRover
	MinionSiegebreaker
	MinionTheBeast
	MinionToxfin
	MinionVirmenSensei
	// Tier 4 tokens
	MinionGuardBot
	MinionFinkleEinhorn
	// Tier 5
	MinionAnnihilanBattlemaster
	MinionBaronRivendare
	MinionBrannBronzebeard
	MinionGoldrinnTheGreatWolf
	MinionIronhideDirehorn
	MinionLightfangEnforcer
	MinionMalGanis
	MinionMechanoEgg
	MinionPrimalfinLookout
	MinionSatedThreshadon
	MinionSavannahHighmane
	MinionStrongshellScavenger
	MinionTheBoogeymonster
	// Tier 5 tokens
	MinionIronhideRunt
	MinionRobosaur
	MinionHyena
	// Tier 6
	MinionFoeReaper4000
	MinionGentleMegasaur
	MinionGhastcoiler
	MinionKangorsApprentice
	MinionMaexxna
	MinionMamaBear
	MinionPreNerfMamaBear
	MinionSneedsOldShredder
	MinionVoidlord
	MinionZappSlywick

	minionTypeCount
)

// Count is the number of catalogue rows, including the MinionNone sentinel.
func Count() int { return int(minionTypeCount) }
