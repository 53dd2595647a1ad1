package system

import (
	"math"
	"math/rand"

	"github.com/milk9111/arenaduel/arena"
	"github.com/milk9111/arenaduel/component"
)

// AI is the built-in opponent heuristic. Decide plans the tick's intent
// before it runs; Update applies the action half at the intent step,
// always facing the foe and regenerating a trickle of energy.
type AI struct {
	Slot arena.Slot
	rng  *rand.Rand
}

func NewAI(slot arena.Slot, seed int64) *AI {
	return &AI{Slot: slot, rng: rand.New(rand.NewSource(seed))}
}

// Decide approaches while out of reach and stamina allows, swings when in
// reach and spends energy on the skill by chance once it can afford it.
func (a *AI) Decide(m *arena.Match, slot arena.Slot) component.Intent {
	var in component.Intent
	if a == nil || m == nil || m.Over {
		return in
	}
	f := m.Fighter(slot)
	foe := m.Fighter(slot.Other())
	if f == nil || foe == nil {
		return in
	}
	t := m.Tuning

	dx := foe.CenterX() - f.CenterX()
	dist := math.Abs(dx)

	canMove := !f.Profile.Movement.StaminaMovement || f.Stamina > 0
	if dist > t.AIApproachDistance && canMove {
		in.Left = dx < 0
		in.Right = dx > 0
	}
	if dist <= t.AIAttackDistance {
		in.Attack = true
	}
	if f.Profile.Movement.Style == component.MovementFlight && foe.Pos.Y+foe.Size.Y/2 < f.Pos.Y {
		in.Up = true
	}

	cost := f.Profile.Skill.EnergyCost
	if f.Profile.Skill.Effect != component.SkillNone && f.Energy >= cost && a.rng.Float64() < t.AISkillChance {
		in.Skill = true
	}
	return in
}

func (a *AI) Update(m *arena.Match) {
	if a == nil || m == nil || m.Over {
		return
	}
	f := m.Fighter(a.Slot)
	foe := m.Fighter(a.Slot.Other())
	if f == nil || foe == nil {
		return
	}
	f.FaceTowards(foe.CenterX())
	f.GainEnergy(m.Tuning.AIEnergyRegen * m.Dt)
	dispatchIntent(m, a.Slot)
}
