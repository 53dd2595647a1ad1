package system

import "github.com/milk9111/arenaduel/arena"

// StateSystem counts block timers, block cooldowns and attack phases.
type StateSystem struct{}

func NewStateSystem() *StateSystem { return &StateSystem{} }

func (s *StateSystem) Update(m *arena.Match) {
	if m == nil {
		return
	}
	for _, f := range m.Fighters {
		if f == nil {
			continue
		}
		f.AdvanceBlock(m.Tuning)
		f.AdvanceAttack(m.Tuning)
	}
}
