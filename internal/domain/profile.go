package domain

import "time"

// SlotRecord is one persisted inventory slot. Encoding is either an
// "archetypeKey|level" string or EmptySlot.
type SlotRecord struct {
	InstanceID string `json:"instance_id,omitempty"`
	Encoding   string `json:"encoding"`
}

// IsEmpty reports whether the slot holds no instance
func (s SlotRecord) IsEmpty() bool {
	return s.Encoding == EmptySlot
}

// Profile is the persistent player record owned by a single save slot
type Profile struct {
	ID        string        `json:"id"`
	Balance   int           `json:"balance"`
	Slots     []SlotRecord  `json:"slots"`
	Energy    EnergyProfile `json:"energy"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Clone returns a deep copy so cached profiles are never mutated in place.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	c.Slots = make([]SlotRecord, len(p.Slots))
	copy(c.Slots, p.Slots)
	if p.Energy.SleepStartedAt != nil {
		t := *p.Energy.SleepStartedAt
		c.Energy.SleepStartedAt = &t
	}
	return &c
}

// FreeSlot returns the index of the first empty slot, or -1 when full.
func (p *Profile) FreeSlot() int {
	for i, s := range p.Slots {
		if s.IsEmpty() {
			return i
		}
	}
	return -1
}

// Store places rec in the first empty slot and returns its index
func (p *Profile) Store(rec SlotRecord) (int, error) {
	free := p.FreeSlot()
	if free < 0 {
		return -1, ErrNoFreeSlot
	}
	p.Slots[free] = rec
	return free, nil
}
