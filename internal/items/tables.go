package items

import (
	"github.com/KirkDiggler/rpg-forge/internal/engine/affixgen"
	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

// Tier rows shared by several slots. Each row is {max item level, min, max, weight}.
var (
	moreArmourTiers = affixgen.TierTable{
		{MaxItemLevel: 5, Min: 1, Max: 3, Weight: 100},
		{MaxItemLevel: 15, Min: 4, Max: 8, Weight: 60},
		{MaxItemLevel: 30, Min: 9, Max: 15, Weight: 25},
		{MaxItemLevel: 50, Min: 16, Max: 24, Weight: 10},
	}
	increaseArmourTiers = affixgen.TierTable{
		{MaxItemLevel: 5, Min: 5, Max: 10, Weight: 80},
		{MaxItemLevel: 15, Min: 11, Max: 20, Weight: 50},
		{MaxItemLevel: 30, Min: 21, Max: 35, Weight: 20},
		{MaxItemLevel: 50, Min: 36, Max: 50, Weight: 8},
	}
	moreLifeTiers = affixgen.TierTable{
		{MaxItemLevel: 5, Min: 3, Max: 8, Weight: 100},
		{MaxItemLevel: 15, Min: 9, Max: 18, Weight: 60},
		{MaxItemLevel: 30, Min: 19, Max: 30, Weight: 25},
		{MaxItemLevel: 50, Min: 31, Max: 45, Weight: 10},
	}
	increaseMaxLifeTiers = affixgen.TierTable{
		{MaxItemLevel: 10, Min: 3, Max: 6, Weight: 60},
		{MaxItemLevel: 25, Min: 7, Max: 12, Weight: 30},
		{MaxItemLevel: 50, Min: 13, Max: 20, Weight: 10},
	}
	lifeRegenTiers = affixgen.TierTable{
		{MaxItemLevel: 10, Min: 1, Max: 2, Weight: 50},
		{MaxItemLevel: 25, Min: 3, Max: 5, Weight: 25},
		{MaxItemLevel: 50, Min: 6, Max: 9, Weight: 8},
	}
	movementSpeedTiers = affixgen.TierTable{
		{MaxItemLevel: 5, Min: 5, Max: 10, Weight: 80},
		{MaxItemLevel: 20, Min: 11, Max: 20, Weight: 40},
		{MaxItemLevel: 50, Min: 21, Max: 30, Weight: 10},
	}
	attackSpeedTiers = affixgen.TierTable{
		{MaxItemLevel: 10, Min: 5, Max: 10, Weight: 60},
		{MaxItemLevel: 25, Min: 11, Max: 18, Weight: 30},
		{MaxItemLevel: 50, Min: 19, Max: 27, Weight: 10},
	}
	pierceChanceTiers = affixgen.TierTable{
		{MaxItemLevel: 10, Min: 10, Max: 25, Weight: 40},
		{MaxItemLevel: 25, Min: 26, Max: 50, Weight: 20},
		{MaxItemLevel: 50, Min: 51, Max: 100, Weight: 5},
	}
	moreDamageTiers = affixgen.TierTable{
		{MaxItemLevel: 5, Min: 1, Max: 2, Weight: 100},
		{MaxItemLevel: 15, Min: 3, Max: 5, Weight: 60},
		{MaxItemLevel: 30, Min: 6, Max: 9, Weight: 25},
		{MaxItemLevel: 50, Min: 10, Max: 14, Weight: 10},
	}
	increaseDamageTiers = affixgen.TierTable{
		{MaxItemLevel: 10, Min: 5, Max: 12, Weight: 70},
		{MaxItemLevel: 25, Min: 13, Max: 25, Weight: 35},
		{MaxItemLevel: 50, Min: 26, Max: 40, Weight: 10},
	}
	areaOfEffectTiers = affixgen.TierTable{
		{MaxItemLevel: 10, Min: 5, Max: 10, Weight: 40},
		{MaxItemLevel: 30, Min: 11, Max: 20, Weight: 20},
		{MaxItemLevel: 50, Min: 21, Max: 30, Weight: 6},
	}
)

var (
	helmetAffixes = affixgen.Table{
		{Kind: entities.ModifierMoreArmour, Tiers: moreArmourTiers},
		{Kind: entities.ModifierIncreaseArmour, Tiers: increaseArmourTiers},
		{Kind: entities.ModifierMoreLife, Tiers: moreLifeTiers},
		{Kind: entities.ModifierIncreaseMaxLife, Tiers: increaseMaxLifeTiers},
		{Kind: entities.ModifierLifeRegen, Tiers: lifeRegenTiers},
	}

	bodyArmourAffixes = affixgen.Table{
		{Kind: entities.ModifierMoreArmour, Tiers: moreArmourTiers},
		{Kind: entities.ModifierIncreaseArmour, Tiers: increaseArmourTiers},
		{Kind: entities.ModifierMoreLife, Tiers: moreLifeTiers},
		{Kind: entities.ModifierIncreaseMaxLife, Tiers: increaseMaxLifeTiers},
		{Kind: entities.ModifierLifeRegen, Tiers: lifeRegenTiers},
		{Kind: entities.ModifierPierceChance, Tiers: affixgen.TierTable{
			{MaxItemLevel: 30, Min: 5, Max: 15, Weight: 5},
		}},
	}

	bootsAffixes = affixgen.Table{
		{Kind: entities.ModifierIncreaseMovementSpeed, Tiers: movementSpeedTiers},
		{Kind: entities.ModifierMoreArmour, Tiers: moreArmourTiers},
		{Kind: entities.ModifierIncreaseArmour, Tiers: increaseArmourTiers},
		{Kind: entities.ModifierMoreLife, Tiers: moreLifeTiers},
		{Kind: entities.ModifierLifeRegen, Tiers: lifeRegenTiers},
	}

	amuletAffixes = affixgen.Table{
		{Kind: entities.ModifierMoreLife, Tiers: moreLifeTiers},
		{Kind: entities.ModifierIncreaseMaxLife, Tiers: increaseMaxLifeTiers},
		{Kind: entities.ModifierLifeRegen, Tiers: lifeRegenTiers},
		{Kind: entities.ModifierIncreaseAttackSpeed, Tiers: attackSpeedTiers},
		{Kind: entities.ModifierPierceChance, Tiers: pierceChanceTiers},
		{Kind: entities.ModifierIncreaseDamage, Tiers: increaseDamageTiers},
		{Kind: entities.ModifierIncreaseAreaOfEffect, Tiers: areaOfEffectTiers},
	}

	weaponAffixes = affixgen.Table{
		{Kind: entities.ModifierMoreDamage, Tiers: moreDamageTiers},
		{Kind: entities.ModifierIncreaseDamage, Tiers: increaseDamageTiers},
		{Kind: entities.ModifierIncreaseAttackSpeed, Tiers: attackSpeedTiers},
		{Kind: entities.ModifierPierceChance, Tiers: pierceChanceTiers},
		{Kind: entities.ModifierIncreaseAreaOfEffect, Tiers: areaOfEffectTiers},
	}

	// upgradeAffixes are the passive upgrades offered to a character on level up
	upgradeAffixes = affixgen.Table{
		{Kind: entities.ModifierMoreLife, Tiers: moreLifeTiers},
		{Kind: entities.ModifierIncreaseMaxLife, Tiers: increaseMaxLifeTiers},
		{Kind: entities.ModifierLifeRegen, Tiers: lifeRegenTiers},
		{Kind: entities.ModifierMoreArmour, Tiers: moreArmourTiers},
		{Kind: entities.ModifierIncreaseArmour, Tiers: increaseArmourTiers},
		{Kind: entities.ModifierIncreaseMovementSpeed, Tiers: movementSpeedTiers},
		{Kind: entities.ModifierIncreaseAttackSpeed, Tiers: attackSpeedTiers},
		{Kind: entities.ModifierPierceChance, Tiers: pierceChanceTiers},
		{Kind: entities.ModifierMoreDamage, Tiers: moreDamageTiers},
		{Kind: entities.ModifierIncreaseDamage, Tiers: increaseDamageTiers},
		{Kind: entities.ModifierIncreaseAreaOfEffect, Tiers: areaOfEffectTiers},
	}
)

// UpgradeTable returns the passive upgrade table
func UpgradeTable() affixgen.Table {
	return upgradeAffixes
}
