package component

// BlockStats describes an archetype's guard.
type BlockStats struct {
	DurationTicks int
	// Mitigation is the fraction of basic attack damage removed while blocking.
	Mitigation float64
}

// AttackStats describes one basic attack swing. A copy is captured when the
// swing starts so later profile reloads never change a swing in flight.
type AttackStats struct {
	Range         float64
	Damage        float64
	StartupTicks  int
	ActiveTicks   int
	RecoveryTicks int
	// Knockback pushes the target away horizontally on hit.
	Knockback float64
	// SmashVelocity, when non-zero, is forced onto the target's vertical
	// velocity if the attacker lands the hit while airborne.
	SmashVelocity float64
	EnergyCost    float64
	EnergyOnHit   float64
}

// SkillStats describes an archetype's single skill.
type SkillStats struct {
	Effect           SkillEffect
	EnergyCost       float64
	DashDistance     float64
	ProjectileSpeed  float64
	ProjectileDamage float64
	ProjectileWidth  float64
	ProjectileHeight float64
}

// MovementStats selects locomotion rules.
type MovementStats struct {
	Style      MovementStyle
	DoubleJump bool
	// StaminaMovement makes horizontal movement drain stamina and stop when
	// stamina is depleted.
	StaminaMovement bool
}

// ClassProfile holds the immutable constants of an archetype.
type ClassProfile struct {
	Archetype  Archetype
	MoveSpeed  float64
	BaseHP     float64
	MaxStamina float64
	Width      float64
	Height     float64
	Block      BlockStats
	Attack     AttackStats
	Skill      SkillStats
	Movement   MovementStats
}

// ProfileTable maps every archetype to its profile.
type ProfileTable map[Archetype]*ClassProfile

// Get returns the profile for a, or nil.
func (t ProfileTable) Get(a Archetype) *ClassProfile {
	if t == nil {
		return nil
	}
	return t[a]
}
