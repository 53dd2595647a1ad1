package system

import (
	"github.com/milk9111/arenaduel/arena"
	"github.com/milk9111/arenaduel/common"
	"github.com/milk9111/arenaduel/component"
)

// HitboxSystem places the hitbox of every fighter in the Active phase.
type HitboxSystem struct{}

func NewHitboxSystem() *HitboxSystem { return &HitboxSystem{} }

func (s *HitboxSystem) Update(m *arena.Match) {
	if m == nil {
		return
	}
	for _, f := range m.Fighters {
		if f != nil {
			UpdateHitbox(f)
		}
	}
}

// UpdateHitbox installs the swing box in front of an Active fighter.
// Outside the Active phase it does nothing.
func UpdateHitbox(f *component.Fighter) bool {
	if f.Phase != component.PhaseActive {
		return false
	}
	return f.SetHitbox(AttackBox(f))
}

// AttackBox is the reach of the fighter's current swing: range wide, half
// the body tall, starting a quarter of the way down the body.
func AttackBox(f *component.Fighter) common.Rect {
	reach := f.Swing().Range
	x := f.Pos.X + f.Size.X
	if f.Facing == component.FacingLeft {
		x = f.Pos.X - reach
	}
	return common.Rect{
		X:      x,
		Y:      f.Pos.Y + f.Size.Y/4,
		Width:  reach,
		Height: f.Size.Y / 2,
	}
}
