package system

import (
	"github.com/milk9111/arenaduel/arena"
	"github.com/milk9111/arenaduel/component"
)

// MatchOverSystem detects a knockout and closes the tick. The match keeps
// ticking after a KO; only intents stop being applied.
type MatchOverSystem struct{}

func NewMatchOverSystem() *MatchOverSystem { return &MatchOverSystem{} }

func (s *MatchOverSystem) Update(m *arena.Match) {
	if m == nil {
		return
	}
	if !m.Over {
		checkKO(m)
	}
	m.Tick++
	m.Elapsed += m.Dt
}

func checkKO(m *arena.Match) {
	p, o := m.Player(), m.Opponent()
	if p == nil || o == nil {
		return
	}
	pDown, oDown := !p.Alive(), !o.Alive()
	if !pDown && !oDown {
		return
	}

	m.Over = true
	evt := component.CombatEvent{Type: component.EventKO, AttackerID: -1, TargetID: -1}
	switch {
	case pDown && oDown:
		m.Draw = true
	case pDown:
		m.Winner = arena.SlotOpponent
		evt.AttackerID, evt.TargetID = int(arena.SlotOpponent), int(arena.SlotPlayer)
		evt.PosX, evt.PosY = p.CenterX(), p.Pos.Y
	default:
		m.Winner = arena.SlotPlayer
		evt.AttackerID, evt.TargetID = int(arena.SlotPlayer), int(arena.SlotOpponent)
		evt.PosX, evt.PosY = o.CenterX(), o.Pos.Y
	}
	m.Emit(evt)
}
