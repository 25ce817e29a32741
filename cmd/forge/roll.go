package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	rollKind  string
	rollLevel int
	rollCount int
)

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll affixes for an item kind",
	Long:  `Spawn an item of the given kind and print a fresh draw of affixes from its table.`,
	RunE:  runRoll,
}

func init() {
	rollCmd.Flags().StringVar(&rollKind, "kind", "helmet", "item kind")
	rollCmd.Flags().IntVar(&rollLevel, "level", 0, "item level, defaults to loot.item_level")
	rollCmd.Flags().IntVar(&rollCount, "count", 3, "number of affixes to draw")
}

func runRoll(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	kind, err := parseEquipmentKind(rollKind)
	if err != nil {
		return err
	}
	level := rollLevel
	if level == 0 {
		level = cfg.Loot.ItemLevel
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	item, display, err := a.items.SpawnEquipment(ctx, kind, level)
	if err != nil {
		return err
	}
	affixes, err := a.items.RollAffixes(item, rollCount)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s, item level %d\n", display.Title, level)
	fmt.Fprintf(out, "  implicit: %s\n", item.Equipment.Implicit)
	for _, affix := range affixes {
		fmt.Fprintf(out, "  T%d %s\n", affix.Tier+1, affix.Modifier())
	}
	if len(affixes) < rollCount {
		fmt.Fprintf(out, "  (table exhausted after %d affixes)\n", len(affixes))
	}
	return nil
}
