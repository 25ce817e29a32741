package engine_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-forge/internal/engine"
	"github.com/KirkDiggler/rpg-forge/internal/engine/affixgen"
	"github.com/KirkDiggler/rpg-forge/internal/entities"
	forgeerrors "github.com/KirkDiggler/rpg-forge/internal/errors"
	"github.com/KirkDiggler/rpg-forge/internal/items"
	"github.com/KirkDiggler/rpg-forge/internal/orchestrators/crafting"
	craftingmock "github.com/KirkDiggler/rpg-forge/internal/orchestrators/crafting/mock"
	"github.com/KirkDiggler/rpg-forge/internal/orchestrators/inventory"
	"github.com/KirkDiggler/rpg-forge/internal/pkg/clock"
	mockclock "github.com/KirkDiggler/rpg-forge/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-forge/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-forge/internal/testutils"
	"github.com/KirkDiggler/rpg-forge/internal/world"
)

type EngineTestSuite struct {
	suite.Suite
	ctx      context.Context
	world    *world.World
	bus      *testutils.RecordingBus
	factory  *items.Factory
	crafting crafting.Service
	watcher  *inventory.Watcher
	engine   engine.Engine
	player   *world.Entity
}

func (s *EngineTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.world = world.New()
	s.bus = testutils.NewRecordingBus()

	gen, err := affixgen.NewGenerator(&affixgen.Config{Roller: dice.DefaultRoller})
	s.Require().NoError(err)
	s.factory, err = items.NewFactory(&items.Config{
		World:       s.world,
		Generator:   gen,
		IDGenerator: idgen.NewSequential("item"),
		EventBus:    s.bus,
	})
	s.Require().NoError(err)
	s.crafting, err = crafting.NewService(&crafting.Config{World: s.world, Items: s.factory, EventBus: s.bus})
	s.Require().NoError(err)
	s.watcher, err = inventory.NewWatcher(&inventory.Config{World: s.world, EventBus: s.bus})
	s.Require().NoError(err)
	s.engine, err = engine.New(&engine.Config{World: s.world, Crafting: s.crafting, Watcher: s.watcher})
	s.Require().NoError(err)

	s.player, err = engine.SpawnPlayer(s.world, &engine.PlayerConfig{
		Name:              "wanderer",
		BaseLife:          100,
		BaseMovementSpeed: 100,
		Skills:            []entities.SkillKind{entities.SkillShuriken},
	})
	s.Require().NoError(err)
}

func (s *EngineTestSuite) equip(kind entities.EquipmentKind) *world.Entity {
	item, _, err := s.factory.SpawnEquipment(s.ctx, kind, 10)
	s.Require().NoError(err)
	s.Require().NoError(s.world.Attach(item.ID(), s.player.ID()))
	return item
}

func (s *EngineTestSuite) shuriken() *world.Entity {
	var weapon *world.Entity
	for _, child := range s.world.Children(s.player.ID()) {
		if child.Kind() == world.KindWeapon {
			weapon = child
		}
	}
	s.Require().NotNil(weapon)
	return weapon
}

func (s *EngineTestSuite) TestNewValidation() {
	e, err := engine.New(&engine.Config{})
	s.Nil(e)
	s.True(forgeerrors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestSpawnPlayer() {
	s.True(s.player.Player)
	s.Equal("wanderer", s.player.Name)

	bag, err := engine.InventoryOf(s.world, s.player)
	s.Require().NoError(err)
	s.Equal(world.KindInventory, bag.Kind())
	s.Equal(entities.SkillShuriken, s.shuriken().Weapon.Skill)

	_, err = engine.SpawnPlayer(s.world, &engine.PlayerConfig{Name: "", BaseLife: 0})
	s.True(forgeerrors.IsInvalidArgument(err))

	_, err = engine.SpawnPlayer(s.world, &engine.PlayerConfig{
		Name:     "x",
		BaseLife: 1,
		Skills:   []entities.SkillKind{"meteor"},
	})
	s.True(forgeerrors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestTickResolvesCharacterThenWeapon() {
	helmet := s.equip(entities.KindHelmet)
	_, err := s.factory.AttachUpgrade(s.player, entities.Modifier{Kind: entities.ModifierIncreaseAttackSpeed, Value: 100})
	s.Require().NoError(err)

	output, err := s.engine.Tick(s.ctx, &engine.TickInput{Delta: 100 * time.Millisecond})
	s.Require().NoError(err)
	s.Equal(uint64(1), output.Tick)

	s.Equal(helmet.Equipment.Armour, s.player.Character.Armour)
	s.Equal(entities.Armour(helmet.Equipment.Implicit.Value), s.player.Character.Armour)
	s.InDelta(3.0, float64(s.shuriken().Weapon.AttackSpeed), 1e-9)

	s.Equal(helmet, engine.Equipped(s.world, s.player, entities.SlotHelmet))
	s.Nil(engine.Equipped(s.world, s.player, entities.SlotBoots))
}

func (s *EngineTestSuite) TestCraftingAppliesBeforeAggregation() {
	helmet := s.equip(entities.KindHelmet)
	orb, _, err := s.factory.SpawnOrb(s.ctx, entities.OrbTransmutation)
	s.Require().NoError(err)
	_, err = s.engine.Tick(s.ctx, &engine.TickInput{Delta: time.Millisecond})
	s.Require().NoError(err)
	s.bus.Reset()

	s.Require().NoError(crafting.Activate(s.ctx, s.bus, orb, helmet))
	output, err := s.engine.Tick(s.ctx, &engine.TickInput{Delta: time.Millisecond})
	s.Require().NoError(err)

	s.Equal(1, output.Crafting.Applied)
	s.Equal(entities.RarityMagic, helmet.Equipment.Rarity)

	var block entities.StatBlock
	block.AddModifier(helmet.Equipment.Implicit)
	for _, affix := range s.factory.Affixes(helmet) {
		block.AddModifier(affix)
	}
	expected := (block.Get(entities.ModifierBaseArmour) + block.Get(entities.ModifierMoreArmour)) *
		block.Multiplier(entities.ModifierIncreaseArmour)
	s.InDelta(expected, float64(helmet.Equipment.Armour), 1e-9)
	s.InDelta(expected, float64(s.player.Character.Armour), 1e-9)

	s.Contains(s.bus.Types(), entities.EventInventoryChanged)
	s.Contains(s.bus.Types(), entities.EventPlayerEquipmentChanged)
}

func (s *EngineTestSuite) TestEquipIsObservedOnNextTick() {
	_, err := s.engine.Tick(s.ctx, &engine.TickInput{Delta: time.Millisecond})
	s.Require().NoError(err)
	s.bus.Reset()

	s.equip(entities.KindBoots)
	output, err := s.engine.Tick(s.ctx, &engine.TickInput{Delta: time.Millisecond})
	s.Require().NoError(err)

	s.True(output.Inventory.PlayerEquipmentChanged)
	s.Contains(s.bus.Types(), entities.EventPlayerEquipmentChanged)
	s.Greater(s.player.Character.MovementSpeed.Value, 100.0)
}

func (s *EngineTestSuite) TestLifeRegenerates() {
	_, err := s.factory.AttachUpgrade(s.player, entities.Modifier{Kind: entities.ModifierLifeRegen, Value: 5})
	s.Require().NoError(err)
	s.player.Character.Life = 50

	_, err = s.engine.Tick(s.ctx, &engine.TickInput{Delta: time.Second})
	s.Require().NoError(err)
	s.Equal(55.0, s.player.Character.Life)
}

func (s *EngineTestSuite) TestRunCountsAttacks() {
	output, err := s.engine.Run(s.ctx, &engine.RunInput{Ticks: 20, Delta: 100 * time.Millisecond})
	s.Require().NoError(err)
	s.Equal(20, output.Ticks)
	s.Equal(2*time.Second, output.Elapsed)
	s.Equal(3, output.Attacks[entities.SkillShuriken])
}

func (s *EngineTestSuite) TestDeadCharactersDoNotAttack() {
	s.player.Character.Life = 0
	output, err := s.engine.Run(s.ctx, &engine.RunInput{Ticks: 20, Delta: 100 * time.Millisecond})
	s.Require().NoError(err)
	s.Zero(output.Attacks[entities.SkillShuriken])
}

func (s *EngineTestSuite) TestRunHonoursCancellation() {
	ctx, cancel := context.WithCancel(s.ctx)
	ticks := 0
	output, err := s.engine.Run(ctx, &engine.RunInput{
		Ticks: 10,
		Delta: time.Millisecond,
		OnTick: func(*engine.TickOutput) {
			ticks++
			if ticks == 3 {
				cancel()
			}
		},
	})
	s.Equal(forgeerrors.CodeCanceled, forgeerrors.GetCode(err))
	s.Equal(3, output.Ticks)
}

func (s *EngineTestSuite) TestRunRealtime() {
	output, err := s.engine.Run(s.ctx, &engine.RunInput{Ticks: 3, Delta: time.Millisecond, Realtime: true})
	s.Require().NoError(err)
	s.Equal(3, output.Ticks)
	s.Greater(output.Elapsed, time.Duration(0))
}

func (s *EngineTestSuite) TestRunRealtimeMeasuresStepsWithClock() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mockClock := mockclock.NewMockClock(ctrl)
	gomock.InOrder(
		mockClock.EXPECT().Now().Return(start),
		mockClock.EXPECT().Now().Return(start.Add(250*time.Millisecond)),
		mockClock.EXPECT().Now().Return(start.Add(500*time.Millisecond)),
		mockClock.EXPECT().Now().Return(start.Add(750*time.Millisecond)),
	)

	e, err := engine.New(&engine.Config{World: s.world, Crafting: s.crafting, Watcher: s.watcher, Clock: mockClock})
	s.Require().NoError(err)

	output, err := e.Run(s.ctx, &engine.RunInput{Ticks: 3, Delta: time.Millisecond, Realtime: true})
	s.Require().NoError(err)
	s.Equal(750*time.Millisecond, output.Elapsed)
	s.Equal(1, output.Attacks[entities.SkillShuriken])
}

func (s *EngineTestSuite) TestRunRealtimeWithManualClock() {
	manual := clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	e, err := engine.New(&engine.Config{World: s.world, Crafting: s.crafting, Watcher: s.watcher, Clock: manual})
	s.Require().NoError(err)

	var seen []uint64
	output, err := e.Run(s.ctx, &engine.RunInput{
		Ticks:    3,
		Delta:    time.Millisecond,
		Realtime: true,
		OnTick: func(tick *engine.TickOutput) {
			seen = append(seen, tick.Tick)
			manual.Advance(100 * time.Millisecond)
		},
	})
	s.Require().NoError(err)
	s.Equal([]uint64{1, 2, 3}, seen)
	s.Equal(200*time.Millisecond, output.Elapsed)
}

func (s *EngineTestSuite) TestRunValidation() {
	_, err := s.engine.Run(s.ctx, &engine.RunInput{Ticks: -1, Delta: time.Millisecond})
	s.True(forgeerrors.IsInvalidArgument(err))

	_, err = s.engine.Run(s.ctx, &engine.RunInput{Ticks: 1})
	s.True(forgeerrors.IsInvalidArgument(err))

	_, err = s.engine.Tick(s.ctx, &engine.TickInput{Delta: -time.Second})
	s.True(forgeerrors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestCraftingFailureStopsTheTick() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	service := craftingmock.NewMockService(ctrl)
	service.EXPECT().ProcessPending(gomock.Any()).Return(nil, errors.New("queue corrupted"))

	e, err := engine.New(&engine.Config{World: s.world, Crafting: service, Watcher: s.watcher})
	s.Require().NoError(err)

	_, err = e.Tick(s.ctx, &engine.TickInput{Delta: time.Millisecond})
	s.Error(err)
	s.Contains(err.Error(), "queue corrupted")
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}
