// Package replshell implements the interactive command loop:
// build two boards line by line, run bulk Monte-Carlo simulations, or step
// a single battle attack-by-attack. Repl.Dispatch routes the first word of
// each input line to a do* handler.
package replshell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/twanvl/battlegrounds-sim/pkg/battle"
	"github.com/twanvl/battlegrounds-sim/pkg/battle/catalogue"
	"github.com/twanvl/battlegrounds-sim/pkg/boardtext"
	"github.com/twanvl/battlegrounds-sim/pkg/rng"
	"github.com/twanvl/battlegrounds-sim/pkg/simulation"
)

// DefaultRuns is the run count used by a bare "run" command with no count.
const DefaultRuns = 1000

// Repl holds one REPL session's state: the two boards under construction,
// the in-progress single-step battle and its undo history, and the
// objective used by "optimize".
type Repl struct {
	Out io.Writer
	Eh  *boardtext.ErrorHandler

	boards  [2]*battle.Board
	current int
	used    bool

	actualOutcomes []int

	battleStarted bool
	stepBattle    *battle.Battle
	history       []battle.Battle

	objective simulation.Objective
	rngKind   string

	seed *rng.Xoroshiro
}

// New creates a Repl with empty boards, the default objective (win rate),
// and a freshly seeded RNG.
func New(out io.Writer) *Repl {
	r := &Repl{
		Out:       out,
		Eh:        &boardtext.ErrorHandler{Out: out},
		objective: simulation.ObjectiveWinRate,
		rngKind:   "lowvariance",
		seed:      rng.NewXoroshiro(),
	}
	r.boards[0] = battle.NewBoard()
	r.boards[1] = battle.NewBoard()
	return r
}

func (r *Repl) newSource(seed *rng.Xoroshiro) rng.Source {
	switch r.rngKind {
	case "keyed":
		return rng.NewKeyedRNG(seed)
	case "base":
		return seed
	default:
		return rng.NewLowVarianceRNG(seed, rng.DefaultBudget)
	}
}

// Run feeds lines from in to Dispatch, optionally printing a "> " prompt
// before each one (interactive mode) and stopping on io.EOF, a "quit"
// command, or an error from the underlying reader.
func (r *Repl) Run(in io.Reader, prompt bool) {
	sc := bufio.NewScanner(in)
	lineNo := 0
	for {
		if prompt {
			fmt.Fprint(r.Out, "> ")
		} else {
			lineNo++
			r.Eh.Line = lineNo
		}
		if !sc.Scan() {
			break
		}
		if !r.Dispatch(sc.Text()) {
			break
		}
	}
	r.endInput()
}

// Dispatch parses and executes one line, returning false if the session
// should stop ("quit").
func (r *Repl) Dispatch(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return true
	}
	if trimmed == "=" {
		r.endInput()
		fmt.Fprintln(r.Out)
		return true
	}
	if strings.HasPrefix(trimmed, "*") {
		r.addMinionLine(strings.TrimSpace(trimmed[1:]))
		return true
	}

	fields := strings.Fields(trimmed)
	cmd := strings.ToLower(strings.TrimSuffix(fields[0], ":"))
	rest := strings.TrimSpace(trimmed[len(fields[0]):])

	switch cmd {
	case "quit", "q":
		return false
	case "help", "h", "?":
		r.doHelp()
	case "board", "clear":
		r.doBoard(0)
	case "vs":
		r.doBoard(1)
	case "swap":
		r.boards[0], r.boards[1] = r.boards[1], r.boards[0]
		r.doReset()
	case "info", "msg", "message", "print", "echo":
		fmt.Fprintln(r.Out, rest)
	case "hp", "hero-power", "heropower":
		if h, ok := boardtext.ParseHeroType(rest, r.Eh); ok {
			r.boards[r.current].Hero = h
			r.boards[r.current].UseHeroPower = true
		}
	case "level":
		if n, err := strconv.Atoi(rest); err == nil {
			r.boards[r.current].Level = n
		}
	case "health":
		if n, err := strconv.Atoi(rest); err == nil {
			r.boards[r.current].Health = n
		}
	case "give":
		r.doGive(rest)
	case "actual", "outcome":
		n, err := strconv.Atoi(rest)
		if err != nil {
			fmt.Fprintln(r.Out, "Error: Expected outcome value, usage: actual <score>")
		} else {
			r.actualOutcomes = append(r.actualOutcomes, n)
		}
	case "run", "simulate":
		n := DefaultRuns
		if rest != "" {
			if v, err := strconv.Atoi(rest); err == nil {
				n = v
			}
		}
		r.doRun(n)
	case "runs":
		if n, err := strconv.Atoi(rest); err == nil {
			r.doRun(n)
		}
	case "objective":
		r.doObjective(rest)
	case "objectives":
		r.doObjectives()
	case "optimize":
		r.doOptimize(rest)
	case "minions":
		r.doMinions()
	case "heropowers":
		r.doHeroPowers()
	case "show":
		r.doShow()
	case "reset":
		r.doReset()
	case "step":
		r.doStep()
	case "steps", "trace":
		r.doTrace()
	case "back":
		r.doBack()
	default:
		fmt.Fprintf(r.Out, "Unknown command: %s\n", cmd)
	}
	return true
}

func (r *Repl) addMinionLine(rest string) {
	m, ok := boardtext.ParseMinion(rest, r.Eh)
	if !ok {
		fmt.Fprintln(r.Out, "Error: Expected minion, see help command for the syntax")
		return
	}
	board := r.boards[r.current]
	if board.Full() {
		fmt.Fprintln(r.Out, "Error: Player already has a full board")
		return
	}
	board.Append(m)
	r.used = false
}

func (r *Repl) doGive(rest string) {
	parts := strings.SplitN(rest, ",", 2)
	refText := strings.TrimSpace(parts[0])
	ref, ok := boardtext.ParseRef(refText, r.Eh)
	if !ok {
		return
	}
	side := r.current
	if ref.Enemy {
		side = 1 - side
	}
	board := r.boards[side]
	positions := boardtext.Resolve(ref, board)
	if len(positions) == 0 {
		fmt.Fprintln(r.Out, "Error: no minion matched that reference")
		return
	}
	buffText := ""
	if len(parts) > 1 {
		buffText = parts[1]
	}
	for _, pos := range positions {
		m := board.Minions.Get(pos)
		applyBuffText(m, buffText)
	}
	board.RecomputeAuras(r.boards[1-side])
}

func (r *Repl) doHelp() {
	fmt.Fprintln(r.Out, "Commands:")
	fmt.Fprintln(r.Out)
	fmt.Fprintln(r.Out, "-- Defining the board")
	fmt.Fprintln(r.Out, "board        = begin defining player board")
	fmt.Fprintln(r.Out, "vs           = begin defining opposing board")
	fmt.Fprintln(r.Out, "swap         = swap the two boards")
	fmt.Fprintln(r.Out, "* <minion>   = give the next minion")
	fmt.Fprintln(r.Out, "HP <hero>    = set the hero power")
	fmt.Fprintln(r.Out, "level <n>    = set the tavern level")
	fmt.Fprintln(r.Out, "health <n>   = set the hero health")
	fmt.Fprintln(r.Out, "give <ref> <buffs> = buff one or more minions")
	fmt.Fprintln(r.Out)
	fmt.Fprintln(r.Out, "-- Running simulations")
	fmt.Fprintln(r.Out, "actual <i>   = record an observed outcome for percentile comparison")
	fmt.Fprintln(r.Out, "run [<n>]    = run n simulations (default 1000)")
	fmt.Fprintln(r.Out, "objective <name> = select the optimization objective")
	fmt.Fprintln(r.Out, "optimize [objective] [buff <buffs>] = search for the best minion order, or the best minion to give a buff to")
	fmt.Fprintln(r.Out)
	fmt.Fprintln(r.Out, "-- Stepping through a single battle")
	fmt.Fprintln(r.Out, "show         = show the board state")
	fmt.Fprintln(r.Out, "reset        = reset battle")
	fmt.Fprintln(r.Out, "step         = do 1 attack step, or start if not started yet")
	fmt.Fprintln(r.Out, "trace        = do steps until the battle ends")
	fmt.Fprintln(r.Out, "back         = step backward")
	fmt.Fprintln(r.Out)
	fmt.Fprintln(r.Out, "-- Other")
	fmt.Fprintln(r.Out, "minions      = list all minions")
	fmt.Fprintln(r.Out, "heropowers   = list all hero powers")
	fmt.Fprintln(r.Out, "objectives   = list all optimization objectives")
	fmt.Fprintln(r.Out, "info <text>  = print a message")
	fmt.Fprintln(r.Out, "help         = show this help message")
	fmt.Fprintln(r.Out, "quit         = quit the simulator")
}

func (r *Repl) doBoard(player int) {
	r.boards[player] = battle.NewBoard()
	r.current = player
	r.actualOutcomes = nil
	r.doReset()
	r.used = false
}

func (r *Repl) endInput() {
	if !r.used && !r.boards[0].Minions.Empty() {
		r.doRun(DefaultRuns)
	}
	r.actualOutcomes = nil
	r.doReset()
	r.current = 0
}

func (r *Repl) doRun(n int) {
	if n <= 0 {
		n = DefaultRuns
	}
	src := r.newSource(r.seed.Clone())
	r.seed.Jump()
	s0, _ := simulation.Simulate(*r.boards[0], *r.boards[1], src, n)

	fmt.Fprintln(r.Out, "--------------------------------")
	printStats(r.Out, &s0)
	for _, o := range r.actualOutcomes {
		p := s0.Percentile(float64(o))
		note := ""
		if p < 15 {
			note = ", you got unlucky"
		} else if p > 85 {
			note = ", you got lucky"
		}
		fmt.Fprintf(r.Out, "actual outcome: %d, is at the %.0f-th percentile%s\n", o, p, note)
	}
	fmt.Fprintln(r.Out, "--------------------------------")
	r.used = true
}

func printStats(out io.Writer, s *simulation.ScoreSummary) {
	fmt.Fprintf(out, "win: %.1f%%, draw: %.1f%%, lose: %.1f%%\n",
		s.WinRate()*100, s.DrawRate()*100, (1-s.WinRate()-s.DrawRate())*100)
	fmt.Fprintf(out, "mean score: %.2f, median score: %.2f\n", s.MeanScore(), s.Percentile(50))
	fmt.Fprint(out, "percentiles: ")
	for i := 0; i <= 10; i++ {
		fmt.Fprintf(out, "%.0f ", s.Percentile(float64(i*10)))
	}
	fmt.Fprintln(out)
}

func parseObjectiveName(name string) (simulation.Objective, bool) {
	switch strings.TrimSpace(strings.ToLower(name)) {
	case "score":
		return simulation.ObjectiveScore, true
	case "winrate", "win rate", "win":
		return simulation.ObjectiveWinRate, true
	case "damagetaken", "damage taken", "damage":
		return simulation.ObjectiveDamageTaken, true
	case "deathrate", "death rate", "death":
		return simulation.ObjectiveDeathRate, true
	default:
		return 0, false
	}
}

func (r *Repl) doObjective(name string) {
	o, ok := parseObjectiveName(name)
	if !ok {
		fmt.Fprintf(r.Out, "Unknown objective: %s\n", strings.TrimSpace(name))
		return
	}
	r.objective = o
	fmt.Fprintf(r.Out, "Objective set to %s\n", r.objective)
}

func (r *Repl) doObjectives() {
	for _, o := range []simulation.Objective{
		simulation.ObjectiveScore,
		simulation.ObjectiveWinRate,
		simulation.ObjectiveDamageTaken,
		simulation.ObjectiveDeathRate,
	} {
		fmt.Fprintln(r.Out, o.String())
	}
}

// doOptimize handles "optimize [objective] [buff <buffs>]": with a buff
// list it searches which minion to place the buff on; otherwise it searches
// minion orderings.
func (r *Repl) doOptimize(rest string) {
	const budget = 10000
	objective := r.objective
	args := strings.TrimSpace(rest)
	if fields := strings.Fields(args); len(fields) > 0 {
		if o, ok := parseObjectiveName(fields[0]); ok {
			objective = o
			args = strings.TrimSpace(args[len(fields[0]):])
		}
	}
	if lower := strings.ToLower(args); lower == "buff" || strings.HasPrefix(lower, "buff ") {
		r.optimizeBuffPlacement(objective, strings.TrimSpace(args[len("buff"):]), budget)
		return
	}

	seed := r.seed.Clone()
	result := simulation.OptimizeMinionOrder(*r.boards[0], *r.boards[1], 0, seed, r.newSource, objective, budget)
	fmt.Fprintf(r.Out, "Current %s: %.4f\n", objective, result.Current)
	fmt.Fprintf(r.Out, "Best order: %v (value %.4f over %d runs)\n", result.Order, result.Value, result.Runs)
}

// optimizeBuffPlacement tries giving the buff list to each minion in turn
// and reports which placement maximizes the objective.
func (r *Repl) optimizeBuffPlacement(objective simulation.Objective, buffText string, budget int) {
	n := r.boards[0].Minions.Size()
	if n == 0 {
		fmt.Fprintln(r.Out, "Error: Player board is empty")
		return
	}
	seed := r.seed.Clone()
	bestPos, bestValue := -1, 0.0
	for pos := 0; pos < n; pos++ {
		candidate := *r.boards[0]
		if !boardtext.ApplyBuffs(candidate.Minions.Get(pos), buffText, r.Eh) {
			return
		}
		s0, _ := simulation.SimulateDeterministic(candidate, *r.boards[1], seed, r.newSource, budget)
		v := objective.Value(s0)
		if bestPos == -1 || v > bestValue {
			bestPos, bestValue = pos, v
		}
	}
	r.seed.Jump()
	fmt.Fprintf(r.Out, "Best buff target: minion %d, %s (%s %.4f over %d runs each)\n",
		bestPos+1, r.boards[0].Minions.At(bestPos).Type, objective, bestValue, budget)
}

func (r *Repl) doMinions() {
	for i := 0; i < catalogue.Count(); i++ {
		t := catalogue.MinionType(i)
		if t == catalogue.MinionNone {
			continue
		}
		info := catalogue.InfoFor(t)
		fmt.Fprintf(r.Out, "%-28s %d/%-3d tier %d %s\n", info.Name, info.Attack, info.Health, info.Stars, info.Tribe)
	}
}

func (r *Repl) doHeroPowers() {
	fmt.Fprintln(r.Out, "Neffarian, Ragnaros the Firelord, Patches the Pirate, The Lich King, Giantfin, Professor Putricide")
}

func (r *Repl) doShow() {
	if !r.battleStarted {
		r.stepBattle = battle.NewBattle(*r.boards[0], *r.boards[1], r.newSource(r.seed.Clone()))
	}
	fmt.Fprintln(r.Out, r.stepBattle.Board[0].String())
	fmt.Fprintln(r.Out, r.stepBattle.Board[1].String())
}

func (r *Repl) doReset() {
	r.battleStarted = false
	r.history = nil
}

func (r *Repl) doStep() {
	if !r.battleStarted {
		r.history = nil
		r.stepBattle = battle.NewBattle(*r.boards[0], *r.boards[1], r.newSource(r.seed.Clone()))
		r.stepBattle.Verbose = 2
		r.stepBattle.Log = r.Out
		r.history = append(r.history, *r.stepBattle)
		r.stepBattle.Start()
		r.battleStarted = true
	} else if !r.stepBattle.Done() {
		r.history = append(r.history, *r.stepBattle)
		r.stepBattle.AttackRound()
	} else {
		fmt.Fprintf(r.Out, "Battle is done, score: %d\n", r.stepBattle.Score())
		return
	}
	fmt.Fprintln(r.Out, r.stepBattle.Board[0].String())
	fmt.Fprintln(r.Out, r.stepBattle.Board[1].String())
}

func (r *Repl) doTrace() {
	if !r.battleStarted {
		r.doStep()
	}
	for !r.stepBattle.Done() {
		r.doStep()
	}
	r.doStep()
}

func (r *Repl) doBack() {
	if len(r.history) == 0 {
		fmt.Fprintln(r.Out, "Error: History is empty")
		return
	}
	last := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	r.stepBattle = &last
	if len(r.history) == 0 {
		r.battleStarted = false
	}
	fmt.Fprintln(r.Out, r.stepBattle.Board[0].String())
	fmt.Fprintln(r.Out, r.stepBattle.Board[1].String())
}

// applyBuffText applies a comma-separated buff list (the same grammar as a
// minion definition's trailing buffs) directly to an existing minion, used
// by "give".
func applyBuffText(m *battle.Minion, buffText string) {
	boardtext.ApplyBuffs(m, buffText, nil)
}
