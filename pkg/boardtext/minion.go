package boardtext

import (
	"strings"

	"github.com/twanvl/battlegrounds-sim/pkg/battle"
	"github.com/twanvl/battlegrounds-sim/pkg/battle/catalogue"
)

// matchMinionType tries every catalogue name as a fuzzy prefix match
// against p's remaining input, in declaration order.
func matchMinionType(p *stringParser) (catalogue.MinionType, bool) {
	for i := 0; i < catalogue.Count(); i++ {
		t := catalogue.MinionType(i)
		if t == catalogue.MinionNone {
			continue
		}
		if p.match(catalogue.InfoFor(t).Name) {
			return t, true
		}
	}
	return catalogue.MinionNone, false
}

func matchTribe(p *stringParser) (catalogue.Tribe, bool) {
	for _, name := range []string{"None", "Beast", "Demon", "Dragon", "Mech", "Murloc", "All"} {
		if p.match(name) {
			t, _ := catalogue.TribeByName(name)
			return t, true
		}
	}
	return catalogue.TribeNone, false
}

func matchHeroType(p *stringParser) (catalogue.HeroType, bool) {
	for i := 0; i < heroTypeCountExported(); i++ {
		h := catalogue.HeroType(i)
		if h == catalogue.HeroNone {
			continue
		}
		if p.match(h.String()) {
			return h, true
		}
	}
	return catalogue.HeroNone, false
}

// heroTypeCountExported hard-codes the small, stable hero catalogue size;
// catalogue does not export a HeroType count because it has no array-backed
// table the way minions do.
func heroTypeCountExported() int { return 7 }

// ParseHeroType fuzzily matches line against a hero power name, for the
// REPL's "HP <name>" and "give ... heropower" forms.
func ParseHeroType(line string, eh *ErrorHandler) (catalogue.HeroType, bool) {
	p := newStringParser(line, eh)
	p.skipWS()
	h, ok := matchHeroType(p)
	if !ok {
		p.unknown("hero power")
		return catalogue.HeroNone, false
	}
	return h, true
}

// ParseMinion parses one minion specification: "[A/H] [golden] <name>[,
// <buff> ...]". A leading "A/H" pair marks the stats as already including
// aura contribution (InvalidAura).
func ParseMinion(line string, eh *ErrorHandler) (battle.Minion, bool) {
	p := newStringParser(line, eh)
	return parseMinionFrom(p)
}

func parseMinionFrom(p *stringParser) (battle.Minion, bool) {
	attack, health := -1, -1
	p.skipWS()
	if isDigit(p.peek()) {
		save := p.str
		a, ok1 := p.matchInt()
		slash := p.matchExact("/")
		h, ok2 := p.matchInt()
		if !ok1 || !slash || !ok2 {
			p.str = save
			p.expected("'attack/health'")
			return battle.Minion{}, false
		}
		attack, health = a, h
	}

	golden := p.match("gold") || p.match("golden")

	p.skipWS()
	if p.end() {
		if p.err != nil {
			p.err.errorf("Expected minion, see help command for the syntax")
		}
		return battle.Minion{}, false
	}
	t, ok := matchMinionType(p)
	if !ok {
		p.unknown("minion type")
		return battle.Minion{}, false
	}

	m := battle.NewMinion(t, golden)
	if attack != -1 {
		m.Attack = int16(attack)
		m.Health = int16(health)
		m.InvalidAura = true
	}

	if p.match(",") {
		if !parseBuffs(p, &m) {
			return battle.Minion{}, false
		}
	}
	return m, true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// ApplyBuffs parses a comma-separated buff list (the same grammar a minion
// definition's trailing buffs use) and applies it directly to an existing
// minion, for the REPL's "give <ref> <buffs>" command.
func ApplyBuffs(m *battle.Minion, buffText string, eh *ErrorHandler) bool {
	buffText = strings.TrimSpace(buffText)
	if buffText == "" {
		return true
	}
	p := newStringParser(buffText, eh)
	return parseBuffs(p, m)
}

// parseBuffs parses a comma-separated list of buffs and applies each to m,
// transcribed from parser.hpp's parse_buffs.
func parseBuffs(p *stringParser, m *battle.Minion) bool {
	for {
		p.skipWS()
		switch {
		case p.peek() == '+' || p.peek() == '-':
			save := p.str
			attack, ok := p.matchInt()
			if !ok {
				p.str = save
				p.unknown("minion buff")
				return false
			}
			switch {
			case p.matchExact("/"):
				health, ok := p.matchInt()
				if !ok {
					p.str = save
					p.unknown("minion buff")
					return false
				}
				m.Buff(attack, health)
			case p.match("attack"):
				m.Buff(attack, 0)
			case p.match("health"):
				m.Buff(0, attack)
			default:
				p.str = save
				p.unknown("minion buff")
				return false
			}
		case p.match("taunt"):
			m.Taunt = true
		case p.match("divine shield"):
			m.DivineShield = true
		case p.match("poisonous") || p.match("poison"):
			m.Poison = true
		case p.match("windfury"):
			m.Windfury = true
		case p.match("reborn"):
			m.Reborn = true
		case p.match("golden microbots"):
			m.AddDeathrattleGoldenMicrobots(1)
		case p.match("microbots"):
			m.AddDeathrattleMicrobots(1)
		case p.match("plants"):
			m.AddDeathrattlePlants(1)
		default:
			// Magnetize: merge another minion's base stats/keywords in, by
			// name ("<minion-name>" merges target
			// stats/keywords/deathrattles)").
			if t, ok := matchMinionType(p); ok {
				other := battle.NewMinion(t, m.Golden)
				m.BuffFrom(other)
				break
			}
			if p.end() {
				p.expected("a buff")
				return false
			}
			p.unknown("minion buff")
			return false
		}
		if !p.match(",") {
			return true
		}
	}
}
