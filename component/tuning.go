package component

import "github.com/milk9111/arenaduel/common"

// Tuning holds match-wide constants. Velocities and rates named "per
// second" scale with delta time; everything counted in ticks does not.
type Tuning struct {
	ArenaWidth   float64
	ArenaHeight  float64
	GroundHeight float64

	// Gravity in units/s^2, downward positive.
	Gravity         float64
	JumpImpulse     float64
	JumpStaminaCost float64

	// StaminaRegen and StaminaDrain are per second.
	StaminaRegen float64
	StaminaDrain float64

	EnergyMax float64
	// ChargeRate is energy gained per tick while charging.
	ChargeRate float64

	BlockCooldownTicks int
	ComboWindowTicks   int
	ComboMax           int
	ComboDamageStep    float64

	// SkillBlockMultiplier scales skill damage that lands on a guard.
	SkillBlockMultiplier float64

	ProjectileMargin float64

	// FlightLift is the upward speed while up is held; FlightFallAccel and
	// FlightMaxFall shape the slow descent otherwise.
	FlightLift      float64
	FlightFallAccel float64
	FlightMaxFall   float64

	RepositionGap float64

	// MaxDelta caps a single tick's delta time in seconds.
	MaxDelta float64

	AIApproachDistance float64
	AIAttackDistance   float64
	AIStaminaFactor    float64
	AISkillChance      float64
	// AIEnergyRegen is per second.
	AIEnergyRegen float64
}

// FloorY is the y coordinate of the ground line.
func (t Tuning) FloorY() float64 {
	return t.ArenaHeight - t.GroundHeight
}

// Bounds is the playable area.
func (t Tuning) Bounds() common.Rect {
	return common.Rect{Width: t.ArenaWidth, Height: t.ArenaHeight}
}
