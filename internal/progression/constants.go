package progression

// Per-level stat divisors. A stat gains floor((level-1)/divisor) above its
// base. The coefficients are provisional; only monotonicity and determinism
// are contractual.
const (
	PrimaryStatDivisor  = 1 // hp, mana, attack, defense
	AgilityStatDivisor  = 2 // attack speed, dexterity
	LuckStatDivisor     = 3
	CriticalStatDivisor = 5 // crit chance, crit damage
)

const encodingFieldCount = 2

const (
	errFmtFieldCount     = "%w: expected %d fields, got %d"
	errFmtLevelNotNumber = "%w: level %q is not an integer"
)
