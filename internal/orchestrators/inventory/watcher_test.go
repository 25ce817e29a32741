package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
	forgeerrors "github.com/KirkDiggler/rpg-forge/internal/errors"
	"github.com/KirkDiggler/rpg-forge/internal/orchestrators/inventory"
	"github.com/KirkDiggler/rpg-forge/internal/testutils"
	"github.com/KirkDiggler/rpg-forge/internal/world"
)

type WatcherTestSuite struct {
	suite.Suite
	ctx     context.Context
	world   *world.World
	bus     *testutils.RecordingBus
	watcher *inventory.Watcher
	player  *world.Entity
	bag     *world.Entity
}

func (s *WatcherTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.world = world.New()
	s.bus = testutils.NewRecordingBus()

	var err error
	s.watcher, err = inventory.NewWatcher(&inventory.Config{World: s.world, EventBus: s.bus})
	s.Require().NoError(err)

	s.player = s.world.Spawn(world.KindCharacter)
	s.player.Player = true
	s.player.Character = entities.NewCharacterStats(100, 100, 0)
	s.bag = s.world.Spawn(world.KindInventory)
	s.Require().NoError(s.world.Attach(s.bag.ID(), s.player.ID()))
	s.world.DrainChanges()
}

func (s *WatcherTestSuite) TestNewWatcherValidation() {
	watcher, err := inventory.NewWatcher(&inventory.Config{})
	s.Nil(watcher)
	s.True(forgeerrors.IsInvalidArgument(err))
}

func (s *WatcherTestSuite) TestNoChangesPublishesNothing() {
	output, err := s.watcher.Observe(s.ctx)
	s.Require().NoError(err)
	s.Equal(&inventory.ObserveOutput{}, output)
	s.Empty(s.bus.Types())
}

func (s *WatcherTestSuite) TestPickupIsInventoryChange() {
	helmet := s.world.Spawn(world.KindEquipment)
	s.Require().NoError(s.world.Attach(helmet.ID(), s.bag.ID()))

	output, err := s.watcher.Observe(s.ctx)
	s.Require().NoError(err)
	s.True(output.InventoryChanged)
	s.False(output.PlayerEquipmentChanged)
	s.Equal([]string{entities.EventInventoryChanged}, s.bus.Types())
}

func (s *WatcherTestSuite) TestEquipAndUnequip() {
	helmet := s.world.Spawn(world.KindEquipment)
	boots := s.world.Spawn(world.KindEquipment)
	s.Require().NoError(s.world.Attach(helmet.ID(), s.bag.ID()))
	s.Require().NoError(s.world.Attach(boots.ID(), s.bag.ID()))
	s.world.DrainChanges()

	// two equips in one tick raise each notification once
	s.Require().NoError(s.world.Attach(helmet.ID(), s.player.ID()))
	s.Require().NoError(s.world.Attach(boots.ID(), s.player.ID()))

	output, err := s.watcher.Observe(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, output.Changes)
	s.True(output.PlayerEquipmentChanged)
	s.Equal([]string{
		entities.EventInventoryChanged,
		entities.EventPlayerEquipmentChanged,
	}, s.bus.Types())

	s.bus.Reset()
	s.Require().NoError(s.world.Attach(helmet.ID(), s.bag.ID()))

	output, err = s.watcher.Observe(s.ctx)
	s.Require().NoError(err)
	s.True(output.PlayerEquipmentChanged)
}

func (s *WatcherTestSuite) TestModifierChangesAreIgnored() {
	helmet := s.world.Spawn(world.KindEquipment)
	affix := s.world.Spawn(world.KindModifier)
	s.Require().NoError(s.world.Attach(affix.ID(), helmet.ID()))

	output, err := s.watcher.Observe(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, output.Changes)
	s.False(output.InventoryChanged)
	s.Empty(s.bus.Types())
}

func (s *WatcherTestSuite) TestConsumedOrbsAreIgnored() {
	orb := s.world.Spawn(world.KindOrb)
	s.Require().NoError(s.world.Attach(orb.ID(), s.bag.ID()))
	s.world.DrainChanges()
	s.world.Despawn(orb.ID())

	output, err := s.watcher.Observe(s.ctx)
	s.Require().NoError(err)
	s.False(output.InventoryChanged)
}

func (s *WatcherTestSuite) TestDestroyedEquippedItem() {
	helmet := s.world.Spawn(world.KindEquipment)
	s.Require().NoError(s.world.Attach(helmet.ID(), s.player.ID()))
	s.world.DrainChanges()
	s.world.Despawn(helmet.ID())

	output, err := s.watcher.Observe(s.ctx)
	s.Require().NoError(err)
	s.True(output.InventoryChanged)
	s.True(output.PlayerEquipmentChanged)
}

func (s *WatcherTestSuite) TestWithoutPlayerOnlyInventoryChanges() {
	s.player.Player = false
	helmet := s.world.Spawn(world.KindEquipment)
	s.Require().NoError(s.world.Attach(helmet.ID(), s.player.ID()))

	output, err := s.watcher.Observe(s.ctx)
	s.Require().NoError(err)
	s.True(output.InventoryChanged)
	s.False(output.PlayerEquipmentChanged)
}

func (s *WatcherTestSuite) TestFindPlayer() {
	player, err := inventory.FindPlayer(s.world)
	s.Require().NoError(err)
	s.Same(s.player, player)

	other := s.world.Spawn(world.KindCharacter)
	other.Player = true
	_, err = inventory.FindPlayer(s.world)
	s.True(forgeerrors.IsFailedPrecondition(err))

	_, err = inventory.FindPlayer(world.New())
	s.True(forgeerrors.IsNotFound(err))
}

func TestWatcherTestSuite(t *testing.T) {
	suite.Run(t, new(WatcherTestSuite))
}
