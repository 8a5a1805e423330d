package domain

// Stats is the stat bundle carried by an archetype and computed for an instance.
type Stats struct {
	HP          int `json:"hp" yaml:"hp"`
	Mana        int `json:"mana" yaml:"mana"`
	Attack      int `json:"attack" yaml:"attack"`
	Defense     int `json:"defense" yaml:"defense"`
	AttackSpeed int `json:"attack_speed" yaml:"attack_speed"`
	CritChance  int `json:"crit_chance" yaml:"crit_chance"`
	CritDamage  int `json:"crit_damage" yaml:"crit_damage"`
	Luck        int `json:"luck" yaml:"luck"`
	Dexterity   int `json:"dexterity" yaml:"dexterity"`
}

// Add returns the field-wise sum of s and other.
func (s Stats) Add(other Stats) Stats {
	return Stats{
		HP:          s.HP + other.HP,
		Mana:        s.Mana + other.Mana,
		Attack:      s.Attack + other.Attack,
		Defense:     s.Defense + other.Defense,
		AttackSpeed: s.AttackSpeed + other.AttackSpeed,
		CritChance:  s.CritChance + other.CritChance,
		CritDamage:  s.CritDamage + other.CritDamage,
		Luck:        s.Luck + other.Luck,
		Dexterity:   s.Dexterity + other.Dexterity,
	}
}

// EquipSlot is the equipment category an archetype occupies
type EquipSlot string

const (
	EquipSlotWeapon    EquipSlot = "weapon"
	EquipSlotHelmet    EquipSlot = "helmet"
	EquipSlotArmor     EquipSlot = "armor"
	EquipSlotBoots     EquipSlot = "boots"
	EquipSlotAccessory EquipSlot = "accessory"
)

// Rarity is the display rarity tag of an archetype
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
)

// ItemArchetype is the immutable definition of an item type, shared by every
// instance of it. Name is the unique key used by persistence and lookups:
// - Name: stable code identifier (e.g., "sword_iron")
// - DisplayText: user-facing label (e.g., "Iron Sword")
type ItemArchetype struct {
	Name        string    `json:"name"`
	DisplayText string    `json:"display_text"`
	Description string    `json:"description,omitempty"`
	BaseStats   Stats     `json:"base_stats"`
	Price       int       `json:"price"`
	Slot        EquipSlot `json:"slot"`
	Rarity      Rarity    `json:"rarity"`
}
