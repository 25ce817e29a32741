package items

import (
	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
	"github.com/KirkDiggler/rpg-forge/internal/world"
)

// RollUpgradeOffers draws count distinct passive upgrades for a character level
func (f *Factory) RollUpgradeOffers(level, count int) ([]entities.Modifier, error) {
	affixes, err := f.generator.Generate(upgradeAffixes, level, count)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll upgrade offers")
	}

	offers := make([]entities.Modifier, 0, len(affixes))
	for _, affix := range affixes {
		offers = append(offers, affix.Modifier())
	}
	return offers, nil
}

// AttachUpgrade gives a character the chosen upgrade as a direct modifier child
func (f *Factory) AttachUpgrade(character *world.Entity, offer entities.Modifier) (*world.Entity, error) {
	if character == nil || character.Kind() != world.KindCharacter {
		return nil, errors.InvalidArgument("upgrades attach to characters")
	}
	if !offer.Kind.IsValid() {
		return nil, errors.InvalidArgumentf("unknown modifier %d", offer.Kind)
	}

	upgrade := f.world.Spawn(world.KindUpgrade)
	upgrade.Name = offer.Kind.String()
	upgrade.Modifier = &offer
	if err := f.world.Attach(upgrade.ID(), character.ID()); err != nil {
		f.world.Despawn(upgrade.ID())
		return nil, errors.Wrap(err, "failed to attach upgrade")
	}
	return upgrade, nil
}
