package battle

import (
	"github.com/twanvl/battlegrounds-sim/pkg/battle/catalogue"
	"github.com/twanvl/battlegrounds-sim/pkg/rng"
)

func randomOneCostMinion(src rng.Source) catalogue.MinionType {
	list := catalogue.OneCostMinions
	return list[src.Random(len(list), rng.KeyFor(rng.EventOneCostMinion))]
}

func randomTwoCostMinion(src rng.Source) catalogue.MinionType {
	list := catalogue.TwoCostMinions
	return list[src.Random(len(list), rng.KeyFor(rng.EventTwoCostMinion))]
}

func randomFourCostMinion(src rng.Source) catalogue.MinionType {
	list := catalogue.FourCostMinions
	return list[src.Random(len(list), rng.KeyFor(rng.EventFourCostMinion))]
}

func randomDeathrattleMinion(src rng.Source) catalogue.MinionType {
	list := catalogue.DeathrattleMinions
	return list[src.Random(len(list), rng.KeyFor(rng.EventDeathrattleMinion))]
}

func randomLegendaryMinion(src rng.Source) catalogue.MinionType {
	list := catalogue.LegendaryMinions
	return list[src.Random(len(list), rng.KeyFor(rng.EventLegendaryMinion))]
}

// repeat calls fn once, or twice if golden.
func repeat(golden bool, fn func()) {
	fn()
	if golden {
		fn()
	}
}
