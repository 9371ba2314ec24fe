package replshell_test

import (
	"strings"
	"testing"

	"github.com/twanvl/battlegrounds-sim/pkg/replshell"
)

func runScript(t *testing.T, script string) string {
	t.Helper()
	var out strings.Builder
	r := replshell.New(&out)
	r.Run(strings.NewReader(script), false)
	return out.String()
}

func TestBoardAndVsBuildTwoSides(t *testing.T) {
	out := runScript(t, "board\n* Alley Cat\nvs\n* Rockpool Hunter\n=\n")
	if strings.Contains(out, "Unknown command") {
		t.Fatalf("unexpected unknown-command output: %s", out)
	}
}

func TestAddMinionLineRejectsUnknownName(t *testing.T) {
	out := runScript(t, "board\n* Not A Real Minion\n")
	if !strings.Contains(out, "Error") {
		t.Fatalf("adding an unknown minion should print an error, got %q", out)
	}
}

func TestInfoCommandEchoesMessage(t *testing.T) {
	out := runScript(t, "info hello world\n")
	if !strings.Contains(out, "hello world") {
		t.Fatalf("info should echo its argument, got %q", out)
	}
}

func TestQuitStopsDispatchLoop(t *testing.T) {
	out := runScript(t, "info before\nquit\ninfo after\n")
	if !strings.Contains(out, "before") {
		t.Fatal("the line before quit should have run")
	}
	if strings.Contains(out, "after") {
		t.Fatal("quit should stop processing further lines")
	}
}

func TestUnknownCommandReportsError(t *testing.T) {
	out := runScript(t, "boguscommand\n")
	if !strings.Contains(out, "Unknown command") {
		t.Fatalf("an unrecognized verb should report 'Unknown command', got %q", out)
	}
}

func TestObjectiveCommandAcceptsKnownNames(t *testing.T) {
	out := runScript(t, "objective score\n")
	if !strings.Contains(out, "Objective set to") {
		t.Fatalf("a known objective name should confirm the change, got %q", out)
	}
}

func TestObjectiveCommandRejectsUnknownName(t *testing.T) {
	out := runScript(t, "objective nonsense\n")
	if !strings.Contains(out, "Unknown objective") {
		t.Fatalf("an unrecognized objective should report an error, got %q", out)
	}
}

func TestObjectivesListsAllFour(t *testing.T) {
	out := runScript(t, "objectives\n")
	for _, want := range []string{"score", "win rate", "damage taken", "death rate"} {
		if !strings.Contains(out, want) {
			t.Fatalf("objectives listing should mention %q, got %q", want, out)
		}
	}
}

func TestHelpListsCoreCommands(t *testing.T) {
	out := runScript(t, "help\n")
	for _, want := range []string{"board", "vs", "run", "optimize", "quit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("help output should mention %q, got %q", want, out)
		}
	}
}

func TestGiveAppliesBuffToReferencedMinion(t *testing.T) {
	out := runScript(t, "board\n* Alley Cat\ngive 1, +3/+2\nshow\n")
	if strings.Contains(out, "Error") {
		t.Fatalf("give on a valid reference should not error, got %q", out)
	}
	if !strings.Contains(out, "4/3") {
		t.Fatalf("give should have applied +3/+2 to the 1/1 Alley Cat, got %q", out)
	}
}

func TestGiveReportsErrorOnEmptyBoard(t *testing.T) {
	out := runScript(t, "board\ngive 1, +1/+1\n")
	if !strings.Contains(out, "Error") {
		t.Fatalf("give against an empty board should report an error, got %q", out)
	}
}

func TestStepThenBackAreRecognized(t *testing.T) {
	out := runScript(t, "board\n* Voidwalker\nvs\n* Alley Cat\n=\nreset\nstep\nback\n")
	if strings.Contains(out, "Unknown command") {
		t.Fatalf("step/back should be recognized commands, got %q", out)
	}
}

func TestBackWithEmptyHistoryReportsError(t *testing.T) {
	out := runScript(t, "reset\nback\n")
	if !strings.Contains(out, "History is empty") {
		t.Fatalf("back with no prior step should report an empty-history error, got %q", out)
	}
}

func TestRunProducesWinDrawLoseStats(t *testing.T) {
	out := runScript(t, "board\n* Voidwalker\nvs\n* Alley Cat\nrun 50\n")
	if !strings.Contains(out, "win:") || !strings.Contains(out, "draw:") || !strings.Contains(out, "lose:") {
		t.Fatalf("run should print win/draw/lose stats, got %q", out)
	}
}

func TestSwapExchangesBoards(t *testing.T) {
	out := runScript(t, "board\n* Voidwalker\nvs\n* Alley Cat\nswap\nshow\n")
	if !strings.Contains(out, "Alley Cat") {
		t.Fatalf("after swap, 'show' should reflect the swapped boards, got %q", out)
	}
}

func TestMinionsAndHeroPowersAreInformational(t *testing.T) {
	out := runScript(t, "minions\nheropowers\n")
	if !strings.Contains(out, "Alley Cat") || !strings.Contains(out, "Zapp Slywick") {
		t.Fatalf("minions should list the whole catalogue, got %q", out)
	}
	if !strings.Contains(out, "Neffarian") {
		t.Fatalf("heropowers should list hero power names, got %q", out)
	}
}

func TestOptimizeBuffPlacementReportsTarget(t *testing.T) {
	out := runScript(t, "board\n* Alley Cat\n* Voidwalker\nvs\n* Rockpool Hunter\noptimize winrate buff +2/+2\n")
	if !strings.Contains(out, "Best buff target") {
		t.Fatalf("optimize buff should report the best placement, got %q", out)
	}
}
