package progression

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/EmberForge_Go/internal/archetype"
	"github.com/osse101/EmberForge_Go/internal/domain"
)

// Encode serializes an instance as "archetypeKey|level"
func Encode(inst *Instance) string {
	return inst.archetypeKey + domain.EncodingSeparator + strconv.Itoa(inst.level)
}

// Decode parses an encoding produced by Encode and gives the result a fresh
// identifier. Any failure is reported as an error and never as an instance.
func Decode(text string, finder archetype.Finder) (*Instance, error) {
	key, level, err := parseEncoding(text, finder)
	if err != nil {
		return nil, err
	}
	return Restore(uuid.NewString(), key, level), nil
}

// DecodeWithID is Decode for records that persist the identifier separately
func DecodeWithID(id, text string, finder archetype.Finder) (*Instance, error) {
	key, level, err := parseEncoding(text, finder)
	if err != nil {
		return nil, err
	}
	if id == "" {
		id = uuid.NewString()
	}
	return Restore(id, key, level), nil
}

// EncodeSlot converts an instance, or nil for an empty slot, to its record
func EncodeSlot(inst *Instance) domain.SlotRecord {
	if inst == nil {
		return domain.SlotRecord{Encoding: domain.EmptySlot}
	}
	return domain.SlotRecord{InstanceID: inst.id, Encoding: Encode(inst)}
}

// DecodeSlot converts a record back. An empty record yields (nil, nil).
func DecodeSlot(rec domain.SlotRecord, finder archetype.Finder) (*Instance, error) {
	if rec.IsEmpty() {
		return nil, nil
	}
	return DecodeWithID(rec.InstanceID, rec.Encoding, finder)
}

func parseEncoding(text string, finder archetype.Finder) (string, int, error) {
	fields := strings.Split(text, domain.EncodingSeparator)
	if len(fields) != encodingFieldCount {
		return "", 0, fmt.Errorf(errFmtFieldCount, domain.ErrInvalidEncoding, encodingFieldCount, len(fields))
	}

	level, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return "", 0, fmt.Errorf(errFmtLevelNotNumber, domain.ErrInvalidEncoding, fields[1])
	}

	key := fields[0]
	if _, ok := finder.Find(key); !ok {
		return "", 0, fmt.Errorf("%w: %s", domain.ErrArchetypeNotFound, key)
	}
	return key, level, nil
}
