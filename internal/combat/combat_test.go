package combat_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-forge/internal/combat"
	"github.com/KirkDiggler/rpg-forge/internal/entities"
	forgeerrors "github.com/KirkDiggler/rpg-forge/internal/errors"
	"github.com/KirkDiggler/rpg-forge/internal/testutils"
	"github.com/KirkDiggler/rpg-forge/internal/world"
)

type CombatTestSuite struct {
	suite.Suite
	world  *world.World
	player *world.Entity
	target *world.Entity
}

func (s *CombatTestSuite) SetupTest() {
	s.world = world.New()

	s.player = s.world.Spawn(world.KindCharacter)
	s.player.Character = entities.NewCharacterStats(100, 100, 0)

	s.target = s.world.Spawn(world.KindCharacter)
	s.target.Character = entities.NewCharacterStats(50, 100, 0)
}

func (s *CombatTestSuite) TestApplyHitUsesMitigation() {
	testCases := []struct {
		name     string
		armour   entities.Armour
		damage   float64
		expected float64
	}{
		{name: "zero armour takes full damage", armour: 0, damage: 10, expected: 10},
		{name: "armour mitigates", armour: 50, damage: 10, expected: 5},
		{name: "zero damage", armour: 50, damage: 0, expected: 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.target.Character.Armour = tc.armour

			dealt, err := combat.ApplyHit(s.target, tc.damage)
			s.Require().NoError(err)
			s.InDelta(tc.expected, dealt, 1e-9)
			s.InDelta(50-tc.expected, s.target.Character.Life, 1e-9)
		})
	}
}

func (s *CombatTestSuite) TestApplyHitFloorsLifeAtZero() {
	dealt, err := combat.ApplyHit(s.target, 80)
	s.Require().NoError(err)
	s.Equal(80.0, dealt)
	s.Equal(0.0, s.target.Character.Life)
	s.True(s.target.Character.IsDead())
}

func (s *CombatTestSuite) TestApplyHitRejectsNonCharacters() {
	orb := s.world.Spawn(world.KindOrb)
	_, err := combat.ApplyHit(orb, 10)
	s.True(forgeerrors.IsInvalidArgument(err))
}

func (s *CombatTestSuite) TestRegenerateLife() {
	s.player.Character.Life = 90
	s.player.Character.LifeRegen = 4

	combat.RegenerateLife(s.world, 500*time.Millisecond)
	s.Equal(92.0, s.player.Character.Life)

	combat.RegenerateLife(s.world, 10*time.Second)
	s.Equal(100.0, s.player.Character.Life)

	s.target.Character.Life = 0
	s.target.Character.LifeRegen = 10
	combat.RegenerateLife(s.world, time.Second)
	s.Equal(0.0, s.target.Character.Life)
}

func (s *CombatTestSuite) TestRollDamage() {
	value, err := combat.RollDamage(testutils.NewScriptedRoller(3), entities.DamageRange{Min: 2, Max: 5})
	s.Require().NoError(err)
	s.Equal(4.0, value)

	roller := testutils.NewScriptedRoller()
	value, err = combat.RollDamage(roller, entities.DamageRange{Min: 7, Max: 7})
	s.Require().NoError(err)
	s.Equal(7.0, value)
	s.Empty(roller.Sizes())
}

func (s *CombatTestSuite) shuriken() *world.Entity {
	weapon := s.world.Spawn(world.KindWeapon)
	weapon.Weapon = entities.NewWeaponStats(entities.SkillShuriken)
	s.Require().NoError(s.world.Attach(weapon.ID(), s.player.ID()))
	return weapon
}

func (s *CombatTestSuite) TestProjectileSpendsPierceChance() {
	s.player.Character.PierceChance = 150
	weapon := s.shuriken()

	// damage 2 on a d4, then pierce rolls 1 (0), 50 (49), 100 (99)
	roller := testutils.NewScriptedRoller(1, 1, 50, 100)
	projectile, err := combat.Fire(s.world, weapon, roller)
	s.Require().NoError(err)
	s.Equal(2.0, projectile.Damage)
	s.Equal(s.player.ID(), projectile.Owner)

	result, err := projectile.Hit(s.target, roller)
	s.Require().NoError(err)
	s.True(result.Pierced)
	s.Equal(entities.PierceChance(50), projectile.Pierce)

	result, err = projectile.Hit(s.target, roller)
	s.Require().NoError(err)
	s.True(result.Pierced)
	s.Equal(entities.PierceChance(-50), projectile.Pierce)

	result, err = projectile.Hit(s.target, roller)
	s.Require().NoError(err)
	s.False(result.Pierced)
	s.True(projectile.Spent)
	s.Equal(3, projectile.Hits)

	_, err = projectile.Hit(s.target, roller)
	s.True(forgeerrors.IsFailedPrecondition(err))

	// the character's own chance is untouched; the pipeline owns it
	s.Equal(entities.PierceChance(150), s.player.Character.PierceChance)
}

func (s *CombatTestSuite) TestFireRequiresCarrier() {
	orphan := s.world.Spawn(world.KindWeapon)
	orphan.Weapon = entities.NewWeaponStats(entities.SkillFireball)

	_, err := combat.Fire(s.world, orphan, testutils.NewScriptedRoller())
	s.True(forgeerrors.IsFailedPrecondition(err))

	_, err = combat.Fire(s.world, s.player, testutils.NewScriptedRoller())
	s.True(forgeerrors.IsInvalidArgument(err))
}

func TestCombatTestSuite(t *testing.T) {
	suite.Run(t, new(CombatTestSuite))
}
