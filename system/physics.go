package system

import (
	"github.com/milk9111/arenaduel/arena"
	"github.com/milk9111/arenaduel/component"
)

// PhysicsSystem applies the movement half of each intent, then jump or
// flight, gravity, the ground clamp and stamina regeneration.
type PhysicsSystem struct {
	// DrainFactor scales stamina drain per slot. Zero means 1.
	DrainFactor [2]float64
}

func NewPhysicsSystem() *PhysicsSystem { return &PhysicsSystem{} }

func (s *PhysicsSystem) Update(m *arena.Match) {
	if s == nil || m == nil {
		return
	}
	t := m.Tuning
	for _, slot := range arena.Slots {
		f := m.Fighter(slot)
		if f == nil {
			continue
		}
		in := m.Intents[slot]
		if m.Over {
			in = component.Intent{}
		}

		factor := s.DrainFactor[slot]
		if factor == 0 {
			factor = 1
		}
		f.Move(in.MoveX(), m.Dt, t, factor)
		f.Jump(in.Up, t)
		f.StepVertical(in.Up, in.Down, m.Dt, t)
		f.ClampToGround(t)
		f.RegenStamina(m.Dt, t)
	}
}
