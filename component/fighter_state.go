package component

import "github.com/jakecoffman/cp"

// Move displaces the fighter horizontally by dir*MoveSpeed*dt. Archetypes
// that pay for movement with stamina cannot move once stamina is depleted,
// and drain StaminaDrain*drainFactor per second while they do move.
// Turning to face dir is free. It reports whether the fighter moved.
func (f *Fighter) Move(dir, dt float64, t Tuning, drainFactor float64) bool {
	if dir == 0 || dt <= 0 {
		return false
	}
	if dir < 0 {
		f.Facing = FacingLeft
	} else {
		f.Facing = FacingRight
	}
	if f.Profile.Movement.StaminaMovement {
		if f.Stamina <= 0 {
			return false
		}
		f.Stamina = cp.Clamp(f.Stamina-t.StaminaDrain*drainFactor*dt, 0, f.MaxStamina)
		f.staminaUsed = true
	}
	f.ShiftX(dir*f.Profile.MoveSpeed*dt, t.ArenaWidth)
	return true
}

// Jump feeds the current state of the jump input. A jump only starts on
// the press edge. Grounded fighters take the primary jump; double-jump
// archetypes get one more while airborne. Both cost JumpStaminaCost.
func (f *Fighter) Jump(held bool, t Tuning) bool {
	pressed := held && !f.jumpHeld
	f.jumpHeld = held
	if !pressed || f.Profile.Movement.Style != MovementGround {
		return false
	}
	if f.Stamina < t.JumpStaminaCost {
		return false
	}

	switch {
	case f.Grounded:
		f.JumpCount = 1
	case f.Profile.Movement.DoubleJump && f.JumpCount > 0 && f.JumpCount < 2:
		f.JumpCount = 2
	default:
		return false
	}

	f.VelY = -t.JumpImpulse
	f.Grounded = false
	f.Stamina = cp.Clamp(f.Stamina-t.JumpStaminaCost, 0, f.MaxStamina)
	f.staminaUsed = true
	return true
}

// StepVertical integrates vertical motion for one tick. Ground fighters
// fall under gravity; flight fighters rise at FlightLift while up is held
// and otherwise drift down, faster when down is held.
func (f *Fighter) StepVertical(up, down bool, dt float64, t Tuning) {
	if dt <= 0 {
		return
	}
	switch f.Profile.Movement.Style {
	case MovementFlight:
		if up {
			f.VelY = -t.FlightLift
			break
		}
		accel := t.FlightFallAccel
		maxFall := t.FlightMaxFall
		if down {
			accel *= 2
			maxFall *= 2
		}
		if f.VelY < maxFall {
			f.VelY = min(f.VelY+accel*dt, maxFall)
		}
	default:
		f.VelY += t.Gravity * dt
	}

	f.Pos.Y += f.VelY * dt
	if f.Pos.Y < 0 {
		f.Pos.Y = 0
		if f.VelY < 0 {
			f.VelY = 0
		}
	}
}

// ClampToGround lands the fighter on the floor line. A fighter that is
// still moving upward off the floor is left airborne.
func (f *Fighter) ClampToGround(t Tuning) {
	floor := t.FloorY() - f.Size.Y
	if f.Pos.Y > floor {
		f.Pos.Y = floor
	}
	if f.Pos.Y < floor || f.VelY < 0 {
		f.Grounded = false
		return
	}
	f.VelY = 0
	f.Grounded = true
	f.JumpCount = 0
}

// RegenStamina refills stamina unless something consumed it this tick,
// then resets the consumption marker for the next tick.
func (f *Fighter) RegenStamina(dt float64, t Tuning) {
	if !f.staminaUsed && dt > 0 {
		f.Stamina = cp.Clamp(f.Stamina+t.StaminaRegen*dt, 0, f.MaxStamina)
	}
	f.staminaUsed = false
}

// StartAttack begins a swing in Startup. It is refused while attacking or
// blocking and, for attacks with an energy cost, when energy is short.
// No collision happens here; the swing only connects in Active.
func (f *Fighter) StartAttack(t Tuning) bool {
	if f.Attacking() || f.Blocking {
		return false
	}
	atk := f.Profile.Attack
	if atk.EnergyCost > 0 && !f.SpendEnergy(atk.EnergyCost) {
		return false
	}

	if f.ComboWindow > 0 {
		f.ComboIndex = min(f.ComboIndex+1, t.ComboMax)
	} else {
		f.ComboIndex = 0
	}
	f.ComboWindow = 0
	f.Charging = false

	f.swing = atk
	f.HasHit = false
	f.hitbox = nil
	f.Phase = PhaseStartup
	f.PhaseTimer = atk.StartupTicks
	f.attackArmed = true
	if f.PhaseTimer <= 0 {
		f.advancePhase(t)
	}
	return true
}

// AdvanceAttack counts the current phase down by one tick. The tick a
// swing starts on is not counted, so each phase lasts exactly its
// declared number of ticks.
func (f *Fighter) AdvanceAttack(t Tuning) {
	if f.Phase == PhaseNone {
		return
	}
	if f.attackArmed {
		f.attackArmed = false
		return
	}
	f.PhaseTimer--
	if f.PhaseTimer > 0 {
		return
	}
	f.advancePhase(t)
}

func (f *Fighter) advancePhase(t Tuning) {
	for {
		switch f.Phase {
		case PhaseStartup:
			f.Phase, f.PhaseTimer = PhaseActive, f.swing.ActiveTicks
		case PhaseActive:
			f.hitbox = nil
			f.Phase, f.PhaseTimer = PhaseRecovery, f.swing.RecoveryTicks
		case PhaseRecovery:
			f.Phase, f.PhaseTimer = PhaseNone, 0
			f.ComboWindow = t.ComboWindowTicks
			return
		default:
			return
		}
		if f.PhaseTimer > 0 {
			return
		}
	}
}

// StartBlock raises the guard for the archetype's block duration. It is
// refused while attacking, already blocking, or during the block cooldown.
func (f *Fighter) StartBlock() bool {
	if f.Attacking() || f.Blocking || f.BlockCooldown > 0 {
		return false
	}
	f.Blocking = true
	f.BlockTimer = f.Profile.Block.DurationTicks
	f.blockArmed = true
	f.Charging = false
	return true
}

// AdvanceBlock ticks the block cooldown and the guard timer. An expiring
// guard starts the cooldown.
func (f *Fighter) AdvanceBlock(t Tuning) {
	if f.BlockCooldown > 0 {
		f.BlockCooldown--
	}
	if !f.Blocking {
		return
	}
	if f.blockArmed {
		f.blockArmed = false
		if f.BlockTimer > 0 {
			return
		}
	}
	f.BlockTimer--
	if f.BlockTimer > 0 {
		return
	}
	f.Blocking = false
	f.BlockTimer = 0
	f.BlockCooldown = t.BlockCooldownTicks
}

// SetCharging updates the charge state. Charging only holds while neither
// attacking nor blocking and adds ChargeRate energy per tick.
func (f *Fighter) SetCharging(held bool, t Tuning) bool {
	if !held || f.Attacking() || f.Blocking {
		f.Charging = false
		return false
	}
	f.Charging = true
	f.GainEnergy(t.ChargeRate)
	return true
}

// AdvanceCombo counts the combo window down; an expired window resets the
// combo index.
func (f *Fighter) AdvanceCombo() {
	if f.ComboWindow <= 0 {
		return
	}
	f.ComboWindow--
	if f.ComboWindow == 0 {
		f.ComboIndex = 0
	}
}
