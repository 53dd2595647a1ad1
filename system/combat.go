package system

import (
	"github.com/milk9111/arenaduel/arena"
	"github.com/milk9111/arenaduel/common"
	"github.com/milk9111/arenaduel/component"
)

// CombatSystem resolves melee collisions for the tick.
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem { return &CombatSystem{} }

func (s *CombatSystem) Update(m *arena.Match) {
	if m == nil {
		return
	}
	ResolveCollisions(m)
}

// ActivateAttack starts a swing for slot. Nothing collides here; the
// swing only connects once it reaches the Active phase.
func ActivateAttack(m *arena.Match, slot arena.Slot) bool {
	f := m.Fighter(slot)
	if f == nil || !f.StartAttack(m.Tuning) {
		return false
	}
	m.Emit(component.CombatEvent{
		Type:       component.EventAttack,
		AttackerID: int(slot),
		TargetID:   int(slot.Other()),
		PosX:       f.CenterX(),
		PosY:       f.Pos.Y,
	})
	return true
}

// ResolveCollisions tests each Active swing that has not connected yet
// against the other fighter's hurtbox, player first.
func ResolveCollisions(m *arena.Match) {
	t := m.Tuning
	for _, slot := range arena.Slots {
		a := m.Fighter(slot)
		target := m.Fighter(slot.Other())
		if a == nil || target == nil {
			continue
		}
		if a.Phase != component.PhaseActive || a.HasHit {
			continue
		}
		if !common.Overlaps(a.Hitbox(), m.Hurtbox(slot.Other())) {
			continue
		}

		a.HasHit = true
		swing := a.Swing()
		ApplyDamage(m, slot.Other(), slot, swing.Damage*ComboMultiplier(a, t), false)
		a.GainEnergy(swing.EnergyOnHit)

		if swing.Knockback != 0 {
			dir := a.Facing.Sign()
			switch {
			case target.CenterX() > a.CenterX():
				dir = 1
			case target.CenterX() < a.CenterX():
				dir = -1
			}
			target.ShiftX(dir*swing.Knockback, t.ArenaWidth)
			m.SyncHurtbox(slot.Other())
			UpdateHitbox(target)
		}

		if !a.Grounded && swing.SmashVelocity != 0 {
			target.VelY = swing.SmashVelocity
		}
	}
}

// ApplyDamage hits the fighter in target. A guard absorbs basic attacks by
// its mitigation and stays up; a skill breaks the guard and lands at the
// skill-vs-block multiplier. It returns the damage after those modifiers.
func ApplyDamage(m *arena.Match, target, attacker arena.Slot, amount float64, isSkill bool) float64 {
	f := m.Fighter(target)
	if f == nil || amount <= 0 {
		return 0
	}
	t := m.Tuning

	evt := component.CombatEvent{
		AttackerID: int(attacker),
		TargetID:   int(target),
		PosX:       f.CenterX(),
		PosY:       f.Pos.Y,
	}

	var dmg float64
	switch {
	case f.Blocking && !isSkill:
		dmg = amount * (1 - f.Profile.Block.Mitigation)
		f.TakeDamage(dmg, true)
		evt.Type = component.EventBlocked
	case f.Blocking && isSkill:
		dmg = amount * t.SkillBlockMultiplier
		f.BreakGuard(t.BlockCooldownTicks)
		f.TakeDamage(dmg, false)
		evt.Type = component.EventBlockBreak
	default:
		dmg = amount
		f.TakeDamage(dmg, false)
		evt.Type = component.EventHit
	}
	if isSkill {
		if a := m.Fighter(attacker); a != nil {
			evt.Skill = a.Profile.Skill.Effect
		}
	}

	evt.Damage = dmg
	m.Emit(evt)
	return dmg
}

// ActivateSkill fires the archetype's skill. It is refused while attacking
// or blocking and when energy is short, in which case nothing changes.
func ActivateSkill(m *arena.Match, slot arena.Slot) bool {
	f := m.Fighter(slot)
	foe := m.Fighter(slot.Other())
	if f == nil || foe == nil {
		return false
	}
	if f.Attacking() || f.Blocking {
		return false
	}
	sk := f.Profile.Skill
	if sk.Effect == component.SkillNone {
		return false
	}
	if !f.SpendEnergy(sk.EnergyCost) {
		return false
	}
	f.Charging = false

	t := m.Tuning
	switch sk.Effect {
	case component.SkillDash:
		f.ShiftX(f.Facing.Sign()*sk.DashDistance, t.ArenaWidth)
		m.SyncHurtbox(slot)
	case component.SkillReposition:
		reposition(f, foe, t)
		m.SyncHurtbox(slot)
	case component.SkillProjectile:
		spawnProjectile(m, slot)
	}

	m.Emit(component.CombatEvent{
		Type:       component.EventSkill,
		AttackerID: int(slot),
		TargetID:   int(slot.Other()),
		Skill:      sk.Effect,
		PosX:       f.CenterX(),
		PosY:       f.Pos.Y,
	})
	return true
}

// reposition puts f on the far side of foe, RepositionGap away, facing it.
func reposition(f, foe *component.Fighter, t component.Tuning) {
	if f.CenterX() <= foe.CenterX() {
		f.SetX(foe.Pos.X+foe.Size.X+t.RepositionGap, t.ArenaWidth)
	} else {
		f.SetX(foe.Pos.X-t.RepositionGap-f.Size.X, t.ArenaWidth)
	}
	f.FaceTowards(foe.CenterX())
}
