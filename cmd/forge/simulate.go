package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-forge/internal/engine"
	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
	"github.com/KirkDiggler/rpg-forge/internal/orchestrators/crafting"
	"github.com/KirkDiggler/rpg-forge/internal/orchestrators/inventory"
	"github.com/KirkDiggler/rpg-forge/internal/world"
)

var (
	simulateTicks    int
	simulateRealtime bool
	simulateUpgrades int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Equip a player and run the stat resolution loop",
	Long: `Spawn a player wearing a freshly dropped set, craft each piece to Magic,
run the engine and print the resolved stat sheet.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simulateTicks, "ticks", 0, "ticks to run, defaults to simulation.ticks")
	simulateCmd.Flags().BoolVar(&simulateRealtime, "realtime", false, "pace ticks at simulation.tick_rate")
	simulateCmd.Flags().IntVar(&simulateUpgrades, "upgrades", 1, "passive upgrades to take before running")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	ticks := simulateTicks
	if ticks == 0 {
		ticks = cfg.Simulation.Ticks
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	player, err := engine.SpawnPlayer(a.world, &engine.PlayerConfig{
		Name:              "player",
		BaseLife:          cfg.Player.BaseLife,
		BaseMovementSpeed: cfg.Player.BaseMovementSpeed,
		BaseArmour:        cfg.Player.BaseArmour,
		Skills:            []entities.SkillKind{entities.SkillShuriken, entities.SkillFireball, entities.SkillDeathAura},
	})
	if err != nil {
		return err
	}

	if err := a.equipStarterSet(ctx, player); err != nil {
		return err
	}

	offers, err := a.items.RollUpgradeOffers(cfg.Loot.ItemLevel, simulateUpgrades)
	if err != nil {
		return err
	}
	for _, offer := range offers {
		if _, err := a.items.AttachUpgrade(player, offer); err != nil {
			return err
		}
		slog.InfoContext(ctx, "Upgrade taken", "upgrade", offer.String())
	}

	watcher, err := inventory.NewWatcher(&inventory.Config{World: a.world, EventBus: a.bus})
	if err != nil {
		return err
	}
	eng, err := engine.New(&engine.Config{World: a.world, Crafting: a.crafting, Watcher: watcher})
	if err != nil {
		return err
	}

	var result *engine.RunOutput
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		out, err := eng.Run(gctx, &engine.RunInput{
			Ticks:    ticks,
			Delta:    cfg.Simulation.TickDelta(),
			Realtime: simulateRealtime,
		})
		result = out
		return err
	})

	g.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		select {
		case <-sigChan:
			slog.Info("Received shutdown signal, stopping simulation")
			cancel()
		case <-gctx.Done():
		}
		return nil
	})

	runErr := g.Wait()
	if runErr != nil && !errors.IsCanceled(runErr) {
		return runErr
	}

	out := cmd.OutOrStdout()
	if result != nil {
		fmt.Fprintf(out, "ran %d ticks (%s simulated)\n\n", result.Ticks, result.Elapsed)
	}
	printStatSheet(out, a.world, player, result)
	return nil
}

// equipStarterSet drops one item per slot, crafts it to Magic through the bus
// and parents it under the player
func (a *app) equipStarterSet(ctx context.Context, player *world.Entity) error {
	for _, kind := range []entities.EquipmentKind{
		entities.KindHelmet,
		entities.KindBodyArmour,
		entities.KindBoots,
		entities.KindAmulet,
	} {
		item, _, err := a.items.SpawnLoot(ctx, kind, cfg.Loot.ItemLevel)
		if err != nil {
			return err
		}
		if err := a.world.Attach(item.ID(), player.ID()); err != nil {
			return err
		}

		orb, _, err := a.items.SpawnOrb(ctx, entities.OrbTransmutation)
		if err != nil {
			return err
		}
		if err := crafting.Activate(ctx, a.bus, orb, item); err != nil {
			return err
		}
	}
	return nil
}

func printStatSheet(out io.Writer, w *world.World, player *world.Entity, result *engine.RunOutput) {
	stats := player.Character
	fmt.Fprintf(out, "%s\n", player.Name)
	fmt.Fprintf(out, "  life            %s\n", stats.LifeString())
	fmt.Fprintf(out, "  life regen      %.1f/s\n", stats.LifeRegen)
	fmt.Fprintf(out, "  armour          %s\n", stats.Armour)
	fmt.Fprintf(out, "  movement speed  %s\n", stats.MovementSpeed)
	fmt.Fprintf(out, "  pierce chance   %s\n", stats.PierceChance)

	for _, slot := range entities.AllEquipmentSlots() {
		item := engine.Equipped(w, player, slot)
		if item == nil {
			continue
		}
		fmt.Fprintf(out, "\n  [%s] %s (%s)\n", slot, item.Name, item.Equipment.Rarity)
		fmt.Fprintf(out, "    %s\n", item.Equipment.Implicit)
	}

	for _, child := range w.Children(player.ID()) {
		if child.Kind() != world.KindWeapon || child.Weapon == nil {
			continue
		}
		weapon := child.Weapon
		fmt.Fprintf(out, "\n  %s\n", weapon.Skill)
		fmt.Fprintf(out, "    attack speed  %s\n", weapon.AttackSpeed)
		if weapon.HitDamageRange.Max > 0 {
			fmt.Fprintf(out, "    hit damage    %s\n", weapon.HitDamageRange)
		}
		if weapon.DamageOverTime > 0 {
			fmt.Fprintf(out, "    damage/s      %.1f\n", weapon.DamageOverTime)
		}
		if weapon.AreaOfEffect > 0 {
			fmt.Fprintf(out, "    area          %.2f\n", weapon.AreaOfEffect)
		}
		if result != nil {
			fmt.Fprintf(out, "    attacks       %d\n", result.Attacks[weapon.Skill])
		}
	}
}
