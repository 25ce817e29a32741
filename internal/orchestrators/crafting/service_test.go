package crafting_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-forge/internal/engine/affixgen"
	affixgenmock "github.com/KirkDiggler/rpg-forge/internal/engine/affixgen/mock"
	"github.com/KirkDiggler/rpg-forge/internal/entities"
	forgeerrors "github.com/KirkDiggler/rpg-forge/internal/errors"
	"github.com/KirkDiggler/rpg-forge/internal/items"
	"github.com/KirkDiggler/rpg-forge/internal/orchestrators/crafting"
	"github.com/KirkDiggler/rpg-forge/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-forge/internal/testutils"
	"github.com/KirkDiggler/rpg-forge/internal/world"
)

type CraftingTestSuite struct {
	suite.Suite
	ctx     context.Context
	world   *world.World
	bus     *testutils.RecordingBus
	factory *items.Factory
	service crafting.Service
}

func (s *CraftingTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.world = world.New()
	s.bus = testutils.NewRecordingBus()

	gen, err := affixgen.NewGenerator(&affixgen.Config{Roller: dice.DefaultRoller})
	s.Require().NoError(err)
	s.setup(gen)
}

func (s *CraftingTestSuite) setup(gen affixgen.Generator) {
	var err error
	s.factory, err = items.NewFactory(&items.Config{
		World:       s.world,
		Generator:   gen,
		IDGenerator: idgen.NewSequential("item"),
		EventBus:    s.bus,
	})
	s.Require().NoError(err)

	s.service, err = crafting.NewService(&crafting.Config{
		World:    s.world,
		Items:    s.factory,
		EventBus: s.bus,
	})
	s.Require().NoError(err)
}

func (s *CraftingTestSuite) spawnItem(rarity entities.Rarity) *world.Entity {
	item, _, err := s.factory.SpawnEquipment(s.ctx, entities.KindAmulet, 20)
	s.Require().NoError(err)
	s.Require().NoError(s.factory.GenerateAffixes(item, rarity, rarity.NAffix()))
	return item
}

func (s *CraftingTestSuite) spawnOrb(kind entities.OrbKind) *world.Entity {
	orb, _, err := s.factory.SpawnOrb(s.ctx, kind)
	s.Require().NoError(err)
	return orb
}

func (s *CraftingTestSuite) affixIDs(item *world.Entity) []world.EntityID {
	var ids []world.EntityID
	for _, child := range s.world.Children(item.ID()) {
		if child.Kind() == world.KindModifier {
			ids = append(ids, child.ID())
		}
	}
	return ids
}

func (s *CraftingTestSuite) TestNewServiceValidation() {
	service, err := crafting.NewService(&crafting.Config{})
	s.Nil(service)
	s.True(forgeerrors.IsInvalidArgument(err))
}

func (s *CraftingTestSuite) TestTransitionTable() {
	rarities := []entities.Rarity{entities.RarityNormal, entities.RarityMagic, entities.RarityRare}
	valid := map[entities.OrbKind]entities.Rarity{
		entities.OrbTransmutation: entities.RarityNormal,
		entities.OrbRegal:         entities.RarityMagic,
		entities.OrbChaos:         entities.RarityRare,
	}
	next := map[entities.OrbKind]entities.Rarity{
		entities.OrbTransmutation: entities.RarityMagic,
		entities.OrbRegal:         entities.RarityRare,
		entities.OrbChaos:         entities.RarityRare,
	}

	for _, orbKind := range entities.AllOrbKinds() {
		for _, rarity := range rarities {
			s.Run(orbKind.String()+"_on_"+rarity.String(), func() {
				s.SetupTest()
				item := s.spawnItem(rarity)
				orb := s.spawnOrb(orbKind)
				before := s.factory.Affixes(item)
				s.bus.Reset()

				output, err := s.service.Apply(s.ctx, &crafting.ApplyInput{Orb: orb.ID(), Item: item.ID()})

				if valid[orbKind] != rarity {
					s.True(forgeerrors.IsFailedPrecondition(err))
					s.Nil(output)
					s.Equal(rarity, item.Equipment.Rarity)
					s.Equal(before, s.factory.Affixes(item))
					s.True(s.world.IsAlive(orb.ID()), "rejected orb must not be consumed")
					s.Equal([]string{entities.EventOrbRejected}, s.bus.Types())
					return
				}

				s.Require().NoError(err)
				s.Equal(next[orbKind], item.Equipment.Rarity)
				s.Equal(next[orbKind], output.Rarity)
				s.Equal(rarity, output.Previous)
				s.Len(s.factory.Affixes(item), next[orbKind].NAffix())
				s.Equal(s.factory.Affixes(item), output.Affixes)
				s.False(s.world.IsAlive(orb.ID()), "applied orb must be consumed")
				s.Equal([]string{
					entities.EventInventoryChanged,
					entities.EventPlayerEquipmentChanged,
				}, s.bus.Types())
			})
		}
	}
}

func (s *CraftingTestSuite) TestFullProgression() {
	item, _, err := s.factory.SpawnEquipment(s.ctx, entities.KindHelmet, 12)
	s.Require().NoError(err)
	s.Empty(s.factory.Affixes(item))

	output, err := s.service.Apply(s.ctx, &crafting.ApplyInput{Orb: s.spawnOrb(entities.OrbTransmutation).ID(), Item: item.ID()})
	s.Require().NoError(err)
	s.Equal(entities.RarityMagic, output.Rarity)
	s.Len(output.Affixes, 2)
	s.Equal(10, output.Display.TileIndex)

	_, err = s.service.Apply(s.ctx, &crafting.ApplyInput{Orb: s.spawnOrb(entities.OrbTransmutation).ID(), Item: item.ID()})
	s.True(forgeerrors.IsFailedPrecondition(err))

	output, err = s.service.Apply(s.ctx, &crafting.ApplyInput{Orb: s.spawnOrb(entities.OrbRegal).ID(), Item: item.ID()})
	s.Require().NoError(err)
	s.Equal(entities.RarityRare, output.Rarity)
	s.Len(output.Affixes, 3)

	for i := 0; i < 5; i++ {
		output, err = s.service.Apply(s.ctx, &crafting.ApplyInput{Orb: s.spawnOrb(entities.OrbChaos).ID(), Item: item.ID()})
		s.Require().NoError(err)
		s.Equal(entities.RarityRare, output.Rarity)
		s.Len(output.Affixes, 3)
	}

	_, err = s.service.Apply(s.ctx, &crafting.ApplyInput{Orb: s.spawnOrb(entities.OrbRegal).ID(), Item: item.ID()})
	s.True(forgeerrors.IsFailedPrecondition(err))
}

func (s *CraftingTestSuite) TestRegalKeepsExistingAffixes() {
	item := s.spawnItem(entities.RarityMagic)
	existing := s.affixIDs(item)
	values := s.factory.Affixes(item)

	_, err := s.service.Apply(s.ctx, &crafting.ApplyInput{Orb: s.spawnOrb(entities.OrbRegal).ID(), Item: item.ID()})
	s.Require().NoError(err)

	after := s.affixIDs(item)
	s.Require().Len(after, 3)
	s.Equal(existing, after[:2])
	s.Equal(values, s.factory.Affixes(item)[:2])
}

func (s *CraftingTestSuite) TestChaosReplacesEveryAffix() {
	item := s.spawnItem(entities.RarityRare)
	existing := s.affixIDs(item)

	_, err := s.service.Apply(s.ctx, &crafting.ApplyInput{Orb: s.spawnOrb(entities.OrbChaos).ID(), Item: item.ID()})
	s.Require().NoError(err)

	for _, id := range existing {
		s.False(s.world.IsAlive(id))
	}
	s.Len(s.affixIDs(item), 3)
}

func (s *CraftingTestSuite) TestFailedRollLeavesItemUntouched() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	gen := affixgenmock.NewMockGenerator(ctrl)
	s.world = world.New()
	s.setup(gen)

	gen.EXPECT().RollRange(gomock.Any(), gomock.Any()).Return(1, nil)
	gen.EXPECT().Generate(gomock.Any(), 3, 1).Return([]affixgen.Affix{
		{Kind: entities.ModifierMoreArmour, Value: 2},
	}, nil)
	item, _, err := s.factory.SpawnLoot(s.ctx, entities.KindHelmet, 3)
	s.Require().NoError(err)

	gen.EXPECT().Generate(gomock.Any(), 3, 2).Return(nil, errors.New("pool corrupted"))
	orb := s.spawnOrb(entities.OrbTransmutation)

	_, err = s.service.Apply(s.ctx, &crafting.ApplyInput{Orb: orb.ID(), Item: item.ID()})
	s.Require().Error(err)
	s.Contains(err.Error(), "pool corrupted")

	s.Equal(entities.RarityNormal, item.Equipment.Rarity)
	s.Equal([]entities.Modifier{{Kind: entities.ModifierMoreArmour, Value: 2}}, s.factory.Affixes(item))
	s.True(s.world.IsAlive(orb.ID()))
}

func (s *CraftingTestSuite) TestApplyLookupErrors() {
	item := s.spawnItem(entities.RarityNormal)
	orb := s.spawnOrb(entities.OrbTransmutation)

	_, err := s.service.Apply(s.ctx, nil)
	s.True(forgeerrors.IsInvalidArgument(err))

	_, err = s.service.Apply(s.ctx, &crafting.ApplyInput{Orb: world.EntityID{}, Item: item.ID()})
	s.True(forgeerrors.IsNotFound(err))

	_, err = s.service.Apply(s.ctx, &crafting.ApplyInput{Orb: item.ID(), Item: item.ID()})
	s.True(forgeerrors.IsInvalidArgument(err))

	_, err = s.service.Apply(s.ctx, &crafting.ApplyInput{Orb: orb.ID(), Item: world.EntityID{}})
	s.True(forgeerrors.IsNotFound(err))

	_, err = s.service.Apply(s.ctx, &crafting.ApplyInput{Orb: orb.ID(), Item: orb.ID()})
	s.True(forgeerrors.IsInvalidArgument(err))
}

func (s *CraftingTestSuite) TestActivationThroughBus() {
	item := s.spawnItem(entities.RarityNormal)
	good := s.spawnOrb(entities.OrbTransmutation)
	wrong := s.spawnOrb(entities.OrbChaos)

	s.Require().NoError(crafting.Activate(s.ctx, s.bus, good, item))
	s.Require().NoError(crafting.Activate(s.ctx, s.bus, wrong, item))
	s.Equal(2, s.service.Pending())
	s.Equal(entities.RarityNormal, item.Equipment.Rarity, "activations apply on the next tick")

	output, err := s.service.ProcessPending(s.ctx)
	s.Require().NoError(err)
	s.Equal(&crafting.ProcessPendingOutput{Applied: 1, Rejected: 1}, output)
	s.Equal(0, s.service.Pending())
	s.Equal(entities.RarityMagic, item.Equipment.Rarity)
	s.False(s.world.IsAlive(good.ID()))
	s.True(s.world.IsAlive(wrong.ID()))
}

func (s *CraftingTestSuite) TestStaleActivationFails() {
	item := s.spawnItem(entities.RarityNormal)
	orb := s.spawnOrb(entities.OrbTransmutation)
	s.Require().NoError(crafting.Activate(s.ctx, s.bus, orb, item))
	s.world.Despawn(orb.ID())

	output, err := s.service.ProcessPending(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, output.Failed)
}

func (s *CraftingTestSuite) TestProcessPendingHonoursCancellation() {
	item := s.spawnItem(entities.RarityNormal)
	s.Require().NoError(crafting.Activate(s.ctx, s.bus, s.spawnOrb(entities.OrbTransmutation), item))

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.service.ProcessPending(ctx)
	s.Error(err)
	s.Equal(forgeerrors.CodeCanceled, forgeerrors.GetCode(err))
	s.Equal(1, s.service.Pending())
}

func TestCraftingTestSuite(t *testing.T) {
	suite.Run(t, new(CraftingTestSuite))
}
