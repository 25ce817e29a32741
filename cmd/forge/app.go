package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/alicebob/miniredis/v2"

	"github.com/KirkDiggler/rpg-forge/internal/engine/affixgen"
	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
	"github.com/KirkDiggler/rpg-forge/internal/items"
	"github.com/KirkDiggler/rpg-forge/internal/orchestrators/crafting"
	"github.com/KirkDiggler/rpg-forge/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-forge/internal/redis"
	itemsrepo "github.com/KirkDiggler/rpg-forge/internal/repositories/items"
	"github.com/KirkDiggler/rpg-forge/internal/world"
)

// app holds the wiring shared by the subcommands
type app struct {
	world    *world.World
	bus      events.EventBus
	items    *items.Factory
	crafting crafting.Service
}

func newApp() (*app, error) {
	w := world.New()
	bus := events.NewBus()

	gen, err := affixgen.NewGenerator(&affixgen.Config{Roller: dice.DefaultRoller})
	if err != nil {
		return nil, err
	}

	factory, err := items.NewFactory(&items.Config{
		World:       w,
		Generator:   gen,
		IDGenerator: idgen.NewUUID("item"),
		EventBus:    bus,
	})
	if err != nil {
		return nil, err
	}

	service, err := crafting.NewService(&crafting.Config{
		World:    w,
		Items:    factory,
		EventBus: bus,
	})
	if err != nil {
		return nil, err
	}

	return &app{
		world:    w,
		bus:      bus,
		items:    factory,
		crafting: service,
	}, nil
}

// openRepository connects to the configured Redis. With no address configured and
// allowMemory set, an in-process miniredis is started instead.
func openRepository(ctx context.Context, allowMemory bool) (itemsrepo.Repository, func(), error) {
	addr := cfg.Redis.Addr
	stop := func() {}

	if addr == "" {
		if !allowMemory {
			return nil, nil, errors.FailedPrecondition("redis.addr is not configured")
		}
		mr, err := miniredis.Run()
		if err != nil {
			return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to start in-memory redis")
		}
		slog.InfoContext(ctx, "Using in-memory redis", "addr", mr.Addr())
		addr = mr.Addr()
		stop = mr.Close
	}

	client, err := redis.NewClient(addr, nil)
	if err != nil {
		stop()
		return nil, nil, err
	}
	if err := redis.Ping(ctx, client); err != nil {
		_ = client.Close()
		stop()
		return nil, nil, err
	}

	repo, err := itemsrepo.NewRedis(&itemsrepo.RedisConfig{Client: client})
	if err != nil {
		_ = client.Close()
		stop()
		return nil, nil, err
	}

	return repo, func() {
		_ = client.Close()
		stop()
	}, nil
}

func parseEquipmentKind(s string) (entities.EquipmentKind, error) {
	kind, ok := entities.EquipmentKindFromString(s)
	if !ok {
		names := make([]string, 0, len(entities.AllEquipmentKinds()))
		for _, k := range entities.AllEquipmentKinds() {
			names = append(names, k.String())
		}
		return "", errors.InvalidArgumentf("unknown item kind %q, expected one of %s", s, strings.Join(names, ", "))
	}
	return kind, nil
}

func printDisplay(out io.Writer, display entities.Display, rarity entities.Rarity) {
	fmt.Fprintf(out, "%s (%s, tile %d)\n", display.Title, rarity, display.TileIndex)
	for _, line := range strings.Split(display.Description, "\n") {
		if line != "" {
			fmt.Fprintf(out, "  %s\n", line)
		}
	}
}

func printSnapshot(out io.Writer, snapshot *entities.ItemSnapshot) {
	fmt.Fprintf(out, "%s  %s ilvl %d (%s)\n", snapshot.ItemID, snapshot.Kind, snapshot.Level, snapshot.Rarity)
	fmt.Fprintf(out, "  %s\n", snapshot.Implicit)
	for _, affix := range snapshot.Affixes {
		fmt.Fprintf(out, "  %s\n", affix)
	}
}
