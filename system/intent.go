package system

import "github.com/milk9111/arenaduel/arena"

// IntentSystem applies the action half of one slot's intent.
type IntentSystem struct {
	Slot arena.Slot
}

func NewIntentSystem(slot arena.Slot) *IntentSystem {
	return &IntentSystem{Slot: slot}
}

func (s *IntentSystem) Update(m *arena.Match) {
	if s == nil || m == nil || m.Over {
		return
	}
	dispatchIntent(m, s.Slot)
}

// dispatchIntent tries block, then skill, then attack; the first accepted
// action wins. Charging only holds when no action was taken.
func dispatchIntent(m *arena.Match, slot arena.Slot) {
	f := m.Fighter(slot)
	if f == nil {
		return
	}
	in := m.Intents[slot]

	acted := false
	switch {
	case in.Block && f.StartBlock():
		acted = true
	case in.Skill && ActivateSkill(m, slot):
		acted = true
	case in.Attack && ActivateAttack(m, slot):
		acted = true
	}
	f.SetCharging(in.Charge && !acted, m.Tuning)
}
