package component

import "strings"

// Archetype identifies a fighter class. The set is closed: every archetype
// has exactly one profile and exactly one skill effect.
type Archetype int

const (
	ArchetypeKnight Archetype = iota
	ArchetypeNinja
	ArchetypeMage
)

var archetypeNames = [...]string{
	ArchetypeKnight: "knight",
	ArchetypeNinja:  "ninja",
	ArchetypeMage:   "mage",
}

// Archetypes lists every archetype in table order.
func Archetypes() []Archetype {
	return []Archetype{ArchetypeKnight, ArchetypeNinja, ArchetypeMage}
}

func (a Archetype) String() string {
	if a < 0 || int(a) >= len(archetypeNames) {
		return "unknown"
	}
	return archetypeNames[a]
}

// Valid reports whether a is one of the known archetypes.
func (a Archetype) Valid() bool {
	return a >= 0 && int(a) < len(archetypeNames)
}

// ParseArchetype resolves a case-insensitive archetype name.
func ParseArchetype(s string) (Archetype, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range archetypeNames {
		if name == s {
			return Archetype(i), true
		}
	}
	return 0, false
}

// SkillEffect is the closed set of skill behaviours.
type SkillEffect int

const (
	SkillNone SkillEffect = iota
	// SkillDash moves the caster forward instantly.
	SkillDash
	// SkillReposition teleports the caster just behind the opponent.
	SkillReposition
	// SkillProjectile launches one projectile away from the caster.
	SkillProjectile
)

var skillNames = [...]string{
	SkillNone:       "none",
	SkillDash:       "dash",
	SkillReposition: "reposition",
	SkillProjectile: "projectile",
}

func (s SkillEffect) String() string {
	if s < 0 || int(s) >= len(skillNames) {
		return "unknown"
	}
	return skillNames[s]
}

// ParseSkillEffect resolves a skill effect name. "none" is not accepted.
func ParseSkillEffect(s string) (SkillEffect, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range skillNames {
		if i != int(SkillNone) && name == s {
			return SkillEffect(i), true
		}
	}
	return SkillNone, false
}

// MovementStyle selects how a fighter moves vertically.
type MovementStyle int

const (
	// MovementGround fighters fall under gravity and jump.
	MovementGround MovementStyle = iota
	// MovementFlight fighters rise while up is held and drift down otherwise.
	MovementFlight
)

func (m MovementStyle) String() string {
	if m == MovementFlight {
		return "flight"
	}
	return "ground"
}

// ParseMovementStyle resolves "ground" or "flight".
func ParseMovementStyle(s string) (MovementStyle, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ground", "":
		return MovementGround, true
	case "flight":
		return MovementFlight, true
	}
	return MovementGround, false
}
