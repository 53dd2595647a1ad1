package system

import "github.com/milk9111/arenaduel/arena"

// HurtboxSystem re-projects both hurtboxes from the settled positions.
type HurtboxSystem struct{}

func NewHurtboxSystem() *HurtboxSystem { return &HurtboxSystem{} }

func (s *HurtboxSystem) Update(m *arena.Match) {
	if m == nil {
		return
	}
	for _, slot := range arena.Slots {
		if m.Fighter(slot) != nil {
			m.SyncHurtbox(slot)
		}
	}
}
