package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
	"github.com/KirkDiggler/rpg-forge/internal/orchestrators/crafting"
	itemsrepo "github.com/KirkDiggler/rpg-forge/internal/repositories/items"
	"github.com/KirkDiggler/rpg-forge/internal/world"
)

var (
	craftKind  string
	craftLevel int
	craftOrbs  []string
	craftSave  bool
	craftOwner string
)

var craftCmd = &cobra.Command{
	Use:   "craft",
	Short: "Apply a sequence of orbs to a fresh item",
	Long: `Drop a Normal item of the given kind and apply each orb in order, printing
the item after every step. Rejected orbs are reported and skipped.`,
	RunE: runCraft,
}

func init() {
	craftCmd.Flags().StringVar(&craftKind, "kind", "amulet", "item kind")
	craftCmd.Flags().IntVar(&craftLevel, "level", 0, "item level, defaults to loot.item_level")
	craftCmd.Flags().StringSliceVar(&craftOrbs, "orbs", []string{"transmutation", "regal", "chaos"}, "orbs to apply in order")
	craftCmd.Flags().BoolVar(&craftSave, "save", false, "persist the crafted item")
	craftCmd.Flags().StringVar(&craftOwner, "owner", "player", "owner id used with --save")
}

func runCraft(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	kind, err := parseEquipmentKind(craftKind)
	if err != nil {
		return err
	}
	orbs := make([]entities.OrbKind, 0, len(craftOrbs))
	for _, name := range craftOrbs {
		orb := entities.OrbKind(name)
		if !orb.IsValid() {
			return errors.InvalidArgumentf("unknown orb %q", name)
		}
		orbs = append(orbs, orb)
	}
	level := craftLevel
	if level == 0 {
		level = cfg.Loot.ItemLevel
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	item, display, err := a.items.SpawnLoot(ctx, kind, level)
	if err != nil {
		return err
	}
	printDisplay(out, display, item.Equipment.Rarity)

	for _, orbKind := range orbs {
		orb, _, err := a.items.SpawnOrb(ctx, orbKind)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "\n> %s orb\n", orbKind)
		applied, err := a.crafting.Apply(ctx, &crafting.ApplyInput{Orb: orb.ID(), Item: item.ID()})
		if err != nil {
			if errors.IsFailedPrecondition(err) {
				fmt.Fprintf(out, "  rejected: %s orb does not fit a %s item\n", orbKind, item.Equipment.Rarity)
				a.world.Despawn(orb.ID())
				continue
			}
			return err
		}
		printDisplay(out, applied.Display, applied.Rarity)
	}

	if !craftSave {
		return nil
	}

	repo, closeRepo, err := openRepository(ctx, true)
	if err != nil {
		return err
	}
	defer closeRepo()

	snapshot, err := a.saveItem(ctx, repo, item, craftOwner)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nsaved %s for %s\n", snapshot.ItemID, craftOwner)
	return nil
}

// saveItem persists the item's snapshot under an owner
func (a *app) saveItem(ctx context.Context, repo itemsrepo.Repository, item *world.Entity, owner string) (*entities.ItemSnapshot, error) {
	snapshot, err := a.items.Snapshot(item, owner)
	if err != nil {
		return nil, err
	}
	if _, err := repo.Save(ctx, itemsrepo.SaveInput{Snapshot: snapshot}); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "Item saved", "item_id", snapshot.ItemID, "owner_id", owner)
	return snapshot, nil
}
