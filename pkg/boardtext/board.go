package boardtext

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/twanvl/battlegrounds-sim/pkg/battle"
	"github.com/twanvl/battlegrounds-sim/pkg/battle/catalogue"
)

// Group is one parsed "board"/"vs" section from the text format: a board
// snapshot plus the turn number and label attached by an optional
// "turn <n> <label>" header line, used by multi-board game-log ingestion,
// per board_parser.hpp's BoardWithLabel.
type Group struct {
	Turn  int // 0 if unset
	Label string
	Side  int // 0 for "board", 1 for "vs"
	Board *battle.Board
}

// ParseBoards reads a sequence of "board"/"vs" sections from r, returning
// one Group per section. Bad lines are
// reported through eh and skipped; parsing continues with the next line,
// matching the "never fatal" parser error-handling rule.
func ParseBoards(r io.Reader, eh *ErrorHandler) []Group {
	var groups []Group
	var cur *Group

	closeGroup := func() {
		if cur != nil {
			groups = append(groups, *cur)
			cur = nil
		}
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if eh != nil {
			eh.Line = lineNo
		}
		raw := sc.Text()
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p := newStringParser(line, eh)
		switch {
		case p.match("board"):
			closeGroup()
			cur = &Group{Side: 0, Board: battle.NewBoard()}
			p.matchExact(":")
			label := strings.TrimSpace(p.str)
			if label != "" {
				cur.Label = label
			}

		case p.match("vs"):
			closeGroup()
			cur = &Group{Side: 1, Board: battle.NewBoard()}
			p.matchExact(":")
			label := strings.TrimSpace(p.str)
			if label != "" {
				cur.Label = label
			}

		case line == "=":
			closeGroup()

		case p.match("turn"):
			if cur == nil {
				p.expected("a preceding 'board' or 'vs' line")
				continue
			}
			p.matchExact(":")
			p.skipWS()
			n, ok := p.matchInt()
			if !ok {
				p.expected("a turn number")
				continue
			}
			p.skipWS()
			cur.Turn = n
			if label := strings.TrimSpace(p.str); label != "" {
				cur.Label = label
			}

		case p.matchExact("*"):
			if cur == nil {
				p.expected("a preceding 'board' or 'vs' line")
				continue
			}
			p.skipWS()
			m, ok := parseMinionFrom(p)
			if !ok {
				continue
			}
			if !cur.Board.Full() {
				cur.Board.Append(m)
			} else if eh != nil {
				eh.errorf("Board is full, dropping minion %s", m.Type.String())
			}

		case p.match("HP"):
			if cur == nil {
				p.expected("a preceding 'board' or 'vs' line")
				continue
			}
			p.skipWS()
			h, ok := matchHeroType(p)
			if !ok {
				p.unknown("hero power")
				continue
			}
			cur.Board.Hero = h
			cur.Board.UseHeroPower = true

		case p.match("level"):
			if cur == nil {
				p.expected("a preceding 'board' or 'vs' line")
				continue
			}
			p.skipWS()
			n, ok := p.parseNonNegative()
			if ok {
				cur.Board.Level = n
			}

		case p.match("health"):
			if cur == nil {
				p.expected("a preceding 'board' or 'vs' line")
				continue
			}
			p.skipWS()
			n, ok := p.parseNonNegative()
			if ok {
				cur.Board.Health = n
			}

		default:
			if eh != nil {
				eh.errorf("Unknown line: %s", line)
			}
		}
	}
	closeGroup()
	return groups
}

// WriteBoard serializes b back into the text format, as the inverse of
// ParseBoards for a single side (used by the REPL's "show" command).
func WriteBoard(w io.Writer, keyword string, b *battle.Board) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	io.WriteString(bw, keyword+"\n")
	if b.Hero != catalogue.HeroNone {
		io.WriteString(bw, "HP "+b.Hero.String()+"\n")
	}
	if b.Level != 0 {
		bw.WriteString("level ")
		bw.WriteString(strconv.Itoa(b.Level))
		bw.WriteString("\n")
	}
	if b.Health != 0 {
		bw.WriteString("health ")
		bw.WriteString(strconv.Itoa(b.Health))
		bw.WriteString("\n")
	}
	b.Minions.ForEachAlive(func(i int, m *battle.Minion) {
		bw.WriteString("* ")
		bw.WriteString(formatMinion(*m))
		bw.WriteString("\n")
	})
	io.WriteString(bw, "=\n")
}

func formatMinion(m battle.Minion) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(int(m.Attack)))
	b.WriteString("/")
	b.WriteString(strconv.Itoa(int(m.Health)))
	b.WriteString(" ")
	if m.Golden {
		b.WriteString("golden ")
	}
	b.WriteString(m.Type.String())
	for _, buff := range minionBuffSuffixes(m) {
		b.WriteString(", ")
		b.WriteString(buff)
	}
	return b.String()
}

func minionBuffSuffixes(m battle.Minion) []string {
	var out []string
	if m.Taunt {
		out = append(out, "taunt")
	}
	if m.DivineShield {
		out = append(out, "divine shield")
	}
	if m.Poison {
		out = append(out, "poisonous")
	}
	if m.Windfury {
		out = append(out, "windfury")
	}
	if m.Reborn {
		out = append(out, "reborn")
	}
	if m.DeathrattleMicrobots > 0 {
		out = append(out, "microbots")
	}
	if m.DeathrattleGoldenMicrobots > 0 {
		out = append(out, "golden microbots")
	}
	if m.DeathrattlePlants > 0 {
		out = append(out, "plants")
	}
	return out
}
