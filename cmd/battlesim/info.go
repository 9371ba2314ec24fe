package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/twanvl/battlegrounds-sim/pkg/battle/catalogue"
)

var infoCmd = &cobra.Command{
	Use:   "info [query]",
	Args:  cobra.ArbitraryArgs,
	Short: "Print minion and hero-power catalogue entries",
	Long:  `Without a query, lists every minion and hero power. With a query, prints catalogue rows whose name contains it (case-insensitive).`,
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	query := strings.ToLower(strings.Join(args, " "))

	fmt.Println("Minions:")
	for i := 0; i < catalogue.Count(); i++ {
		t := catalogue.MinionType(i)
		if t == catalogue.MinionNone {
			continue
		}
		info := catalogue.InfoFor(t)
		if query != "" && !strings.Contains(strings.ToLower(info.Name), query) {
			continue
		}
		fmt.Printf("  %-28s %d/%-3d tier %d %-8s%s\n",
			info.Name, info.Attack, info.Health, info.Stars, info.Tribe, keywordSummary(info))
	}

	fmt.Println("\nHero powers:")
	for _, name := range []string{
		"Neffarian", "Ragnaros the Firelord", "Patches the Pirate",
		"The Lich King", "Giantfin", "Professor Putricide",
	} {
		if query == "" || strings.Contains(strings.ToLower(name), query) {
			fmt.Printf("  %s\n", name)
		}
	}
	return nil
}

func keywordSummary(info catalogue.Info) string {
	var kws []string
	if info.Taunt {
		kws = append(kws, "taunt")
	}
	if info.DivineShield {
		kws = append(kws, "divine shield")
	}
	if info.Poison {
		kws = append(kws, "poisonous")
	}
	if info.Windfury {
		kws = append(kws, "windfury")
	}
	if info.Cleave {
		kws = append(kws, "cleave")
	}
	if len(kws) == 0 {
		return ""
	}
	return " (" + strings.Join(kws, ", ") + ")"
}
