package progression

import "github.com/osse101/EmberForge_Go/internal/domain"

// StatsAtLevel is a pure function of (archetype, level). Level 1 returns the
// base stats unchanged; every field is non-decreasing in level.
func StatsAtLevel(archetype domain.ItemArchetype, level int) domain.Stats {
	steps := ClampLevel(level) - domain.MinItemLevel
	if steps == 0 {
		return archetype.BaseStats
	}

	primary := steps / PrimaryStatDivisor
	agility := steps / AgilityStatDivisor
	critical := steps / CriticalStatDivisor

	return archetype.BaseStats.Add(domain.Stats{
		HP:          primary,
		Mana:        primary,
		Attack:      primary,
		Defense:     primary,
		AttackSpeed: agility,
		CritChance:  critical,
		CritDamage:  critical,
		Luck:        steps / LuckStatDivisor,
		Dexterity:   agility,
	})
}
