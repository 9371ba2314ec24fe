package battle

import "github.com/twanvl/battlegrounds-sim/pkg/battle/catalogue"

// doBaseDeathrattle fires the type-specific half of a dying minion's
// deathrattle; the generic microbot/murloc/plant/reborn payloads are
// handled separately in Battle.DoDeathrattle.
func (b *Battle) doBaseDeathrattle(m Minion, player, pos int) {
	switch m.Type {
	case catalogue.MinionMecharoo:
		b.Summon(NewMinion(catalogue.MinionJoEBot, m.Golden), player, pos)

	case catalogue.MinionSelflessHero:
		repeat(m.Golden, func() { b.Board[player].GiveRandomMinionDivineShield(b.SummonRNG, player) })

	case catalogue.MinionHarvestGolem:
		b.Summon(NewMinion(catalogue.MinionDamagedGolem, m.Golden), player, pos)

	case catalogue.MinionKaboomBot:
		repeat(m.Golden, func() { b.DamageRandomMinion(1-player, 4) })

	case catalogue.MinionKindlyGrandmother:
		b.Summon(NewMinion(catalogue.MinionBigBadWolf, m.Golden), player, pos)

	case catalogue.MinionMountedRaptor:
		repeat(m.Golden, func() {
			b.Summon(NewMinion(randomOneCostMinion(b.SummonRNG), false), player, pos)
		})

	case catalogue.MinionRatPack:
		b.SummonMany(int(m.Attack), NewMinion(catalogue.MinionRat, m.Golden), player, pos)

	case catalogue.MinionSpawnOfNZoth:
		amt := catalogue.DoubleIfGolden(1, m.Golden)
		b.Board[player].BuffAll(amt, amt)

	case catalogue.MinionInfestedWolf:
		b.SummonMany(2, NewMinion(catalogue.MinionSpider, m.Golden), player, pos)

	case catalogue.MinionPilotedShredder:
		repeat(m.Golden, func() {
			b.Summon(NewMinion(randomTwoCostMinion(b.SummonRNG), false), player, pos)
		})

	case catalogue.MinionReplicatingMenace:
		b.SummonMany(3, NewMinion(catalogue.MinionMicrobot, m.Golden), player, pos)

	case catalogue.MinionTortollanShellraiser:
		amt := catalogue.DoubleIfGolden(1, m.Golden)
		b.Board[player].BuffRandomMinion(amt, amt, b.SummonRNG, player)

	case catalogue.MinionPilotedSkyGolem:
		repeat(m.Golden, func() {
			b.Summon(NewMinion(randomFourCostMinion(b.SummonRNG), false), player, pos)
		})

	case catalogue.MinionTheBeast:
		b.SummonForOpponent(NewMinion(catalogue.MinionFinkleEinhorn, false), player)

	case catalogue.MinionGoldrinnTheGreatWolf:
		amt := catalogue.DoubleIfGolden(4, m.Golden)
		b.Board[player].BuffAllIf(amt, amt, func(o Minion) bool { return o.HasTribe(catalogue.TribeBeast) })

	case catalogue.MinionMechanoEgg:
		b.Summon(NewMinion(catalogue.MinionRobosaur, m.Golden), player, pos)

	case catalogue.MinionSatedThreshadon:
		b.SummonMany(3, NewMinion(catalogue.MinionMurlocScout, m.Golden), player, pos)

	case catalogue.MinionSavannahHighmane:
		b.SummonMany(2, NewMinion(catalogue.MinionHyena, m.Golden), player, pos)

	case catalogue.MinionGhastcoiler:
		n := catalogue.DoubleIfGolden(2, m.Golden)
		for i := 0; i < n; i++ {
			b.Summon(NewMinion(randomDeathrattleMinion(b.SummonRNG), false), player, pos)
		}

	case catalogue.MinionKangorsApprentice:
		n := catalogue.DoubleIfGolden(2, m.Golden)
		for i := 0; i < n && b.MechsThatDied[player].Exists(i); i++ {
			b.Summon(b.MechsThatDied[player].At(i).NewCopy(), player, pos)
		}

	case catalogue.MinionSneedsOldShredder:
		repeat(m.Golden, func() {
			b.Summon(NewMinion(randomLegendaryMinion(b.SummonRNG), false), player, pos)
		})
	}
}

// onFriendlySummon fires when a minion is summoned onto player's board,
// against every living friendly (including the one just summoned),
// transcribed from minion_events.cpp's on_friendly_summon.
func (b *Battle) onFriendlySummon(m *Minion, summoned *Minion, player int) {
	switch m.Type {
	case catalogue.MinionMurlocTidecaller:
		if summoned.HasTribe(catalogue.TribeMurloc) {
			m.Buff(catalogue.DoubleIfGolden(1, m.Golden), 0)
		}
	case catalogue.MinionCobaltGuardian:
		if summoned.HasTribe(catalogue.TribeMech) {
			m.DivineShield = true
		}
	case catalogue.MinionPackLeader:
		if summoned.HasTribe(catalogue.TribeBeast) {
			summoned.Buff(catalogue.DoubleIfGolden(3, m.Golden), 0)
		}
	case catalogue.MinionMamaBear:
		if summoned.HasTribe(catalogue.TribeBeast) {
			amt := catalogue.DoubleIfGolden(4, m.Golden)
			summoned.Buff(amt, amt)
		}
	case catalogue.MinionPreNerfMamaBear:
		if summoned.HasTribe(catalogue.TribeBeast) {
			amt := catalogue.DoubleIfGolden(5, m.Golden)
			summoned.Buff(amt, amt)
		}
	}
}

// onFriendlyDeath fires against every living friendly when dead died on
// player's board, transcribed from minion_events.cpp's on_friendly_death.
func (b *Battle) onFriendlyDeath(m *Minion, dead Minion, player int) {
	switch m.Type {
	case catalogue.MinionScavengingHyena:
		if dead.HasTribe(catalogue.TribeBeast) {
			m.Buff(catalogue.DoubleIfGolden(2, m.Golden), catalogue.DoubleIfGolden(1, m.Golden))
		}
	case catalogue.MinionSoulJuggler:
		if dead.HasTribe(catalogue.TribeDemon) {
			b.DamageRandomMinion(1-player, catalogue.DoubleIfGolden(3, m.Golden))
		}
	case catalogue.MinionJunkbot:
		if dead.HasTribe(catalogue.TribeMech) {
			amt := catalogue.DoubleIfGolden(2, m.Golden)
			m.Buff(amt, amt)
		}
	}
}

// onDamaged fires once per damage application (regardless of the amount)
// against the minion that was damaged, transcribed from minion_events.cpp's on_damaged.
func (b *Battle) onDamaged(m Minion, player, pos int) {
	switch m.Type {
	case catalogue.MinionImpGangBoss:
		b.Summon(NewMinion(catalogue.MinionImp, m.Golden), player, pos+1)
	case catalogue.MinionSecurityRover:
		b.Summon(NewMinion(catalogue.MinionGuardBot, m.Golden), player, pos+1)
	}
}

// onAttackAndKill fires against the attacker itself when its attack killed
// at least one defender, transcribed from minion_events.cpp's
// on_attack_and_kill.
func (b *Battle) onAttackAndKill(m *Minion, player, pos int, overkill bool) {
	switch m.Type {
	case catalogue.MinionIronhideDirehorn:
		if overkill {
			b.Summon(NewMinion(catalogue.MinionIronhideRunt, m.Golden), player, pos+1)
		}
	case catalogue.MinionTheBoogeymonster:
		amt := catalogue.DoubleIfGolden(2, m.Golden)
		m.Buff(amt, amt)
	}
}

// onAfterFriendlyAttack fires against every living friendly after one of
// them attacks, transcribed from minion_events.cpp's
// on_after_friendly_attack.
func (b *Battle) onAfterFriendlyAttack(m *Minion, attacker Minion) {
	switch m.Type {
	case catalogue.MinionFesterootHulk:
		m.Buff(catalogue.DoubleIfGolden(1, m.Golden), 0)
	}
}

// onBreakFriendlyDivineShield fires against every living friendly when one
// of them loses its divine shield, transcribed from minion_events.cpp's
// on_break_friendly_divine_shield.
func (b *Battle) onBreakFriendlyDivineShield(m *Minion, player int) {
	switch m.Type {
	case catalogue.MinionBolvarFireblood:
		m.Buff(catalogue.DoubleIfGolden(2, m.Golden), 0)
	}
}

// DoHeroPower fires player's queued hero power.
func (b *Battle) DoHeroPower(hero catalogue.HeroType, player int) {
	switch hero {
	case catalogue.HeroNeffarian:
		b.DamageAll(1-player, 1)

	case catalogue.HeroRagnarosTheFirelord:
		b.DamageRandomMinion(1-player, 8)
		b.DamageRandomMinion(1-player, 8)

	case catalogue.HeroPatchesThePirate:
		b.DamageRandomMinion(1-player, catalogue.PatchesThePirateDamage)
		b.DamageRandomMinion(1-player, catalogue.PatchesThePirateDamage)

	case catalogue.HeroTheLichKing:
		if i := b.Board[player].Minions.Size() - 1; i >= 0 {
			b.Board[player].Minions.Get(i).Reborn = true
		}

	case catalogue.HeroGiantfin:
		b.Board[player].Minions.ForEach(func(i int, m *Minion) { m.DeathrattleMurlocs = 1 })

	case catalogue.HeroProfessorPutricide:
		if b.Board[player].Minions.Contains(0) {
			b.Board[player].Minions.Get(0).Attack += 10
		}
	}
}
