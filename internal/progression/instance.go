package progression

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/osse101/EmberForge_Go/internal/domain"
)

// Instance is a per-player leveled copy of an archetype. It refers to its
// archetype by key so catalog reloads never leave it holding a stale handle.
// The level is kept in [domain.MinItemLevel, domain.MaxItemLevel] by every
// mutator.
type Instance struct {
	id           string
	archetypeKey string
	level        int
}

// NewInstance creates a level-1 instance with a fresh identifier
func NewInstance(archetypeKey string) *Instance {
	return Restore(uuid.NewString(), archetypeKey, domain.MinItemLevel)
}

// Restore rebuilds an instance with a known identifier, clamping the level
func Restore(id, archetypeKey string, level int) *Instance {
	inst := &Instance{id: id, archetypeKey: archetypeKey}
	inst.SetLevel(level)
	return inst
}

func (i *Instance) ID() string { return i.id }

func (i *Instance) ArchetypeKey() string { return i.archetypeKey }

func (i *Instance) Level() int { return i.level }

// IsMaxLevel reports whether the instance can no longer level up
func (i *Instance) IsMaxLevel() bool {
	return i.level >= domain.MaxItemLevel
}

// LevelUp raises the level by one. It returns false and changes nothing
// when the instance is already at the cap.
func (i *Instance) LevelUp() bool {
	if i.IsMaxLevel() {
		return false
	}
	i.level++
	return true
}

// SetLevel clamps level into the valid range and stores it
func (i *Instance) SetLevel(level int) {
	i.level = ClampLevel(level)
}

// Clone returns an independent copy with the same identity
func (i *Instance) Clone() *Instance {
	c := *i
	return &c
}

// Stats computes the instance's stats from its archetype
func (i *Instance) Stats(archetype domain.ItemArchetype) domain.Stats {
	return StatsAtLevel(archetype, i.level)
}

type instanceJSON struct {
	ID        string `json:"id"`
	Archetype string `json:"archetype"`
	Level     int    `json:"level"`
}

func (i *Instance) MarshalJSON() ([]byte, error) {
	return json.Marshal(instanceJSON{ID: i.id, Archetype: i.archetypeKey, Level: i.level})
}

// ClampLevel forces level into [domain.MinItemLevel, domain.MaxItemLevel]
func ClampLevel(level int) int {
	switch {
	case level < domain.MinItemLevel:
		return domain.MinItemLevel
	case level > domain.MaxItemLevel:
		return domain.MaxItemLevel
	default:
		return level
	}
}
